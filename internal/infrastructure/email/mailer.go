package email

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"net"
	"net/smtp"
	"strings"
	"time"

	"bookrack.backend/internal/config"
)

// Mailer dispatches transactional mail
type Mailer interface {
	SendVerification(to, confirmLink string) error
}

// SMTPMailer implements Mailer over SMTP
type SMTPMailer struct {
	cfg       config.SMTPConfig
	templates *template.Template
}

// New creates a new SMTPMailer
func New(cfg config.SMTPConfig) (*SMTPMailer, error) {
	tmpl, err := template.New("emails").Parse(emailTemplates)
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &SMTPMailer{
		cfg:       cfg,
		templates: tmpl,
	}, nil
}

// VerificationData feeds the verification template
type VerificationData struct {
	ConfirmLink string
	AppName     string
}

// SendVerification sends the email-confirmation message
func (m *SMTPMailer) SendVerification(to, confirmLink string) error {
	body, err := m.renderTemplate("verification", VerificationData{
		ConfirmLink: confirmLink,
		AppName:     m.cfg.FromName,
	})
	if err != nil {
		return fmt.Errorf("failed to render verification template: %w", err)
	}

	return m.send(to, "Confirm your email address", body)
}

func (m *SMTPMailer) send(to, subject, body string) error {
	from := m.cfg.From
	if m.cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", m.cfg.FromName, m.cfg.From)
	}

	var msg strings.Builder
	msg.WriteString("From: " + from + "\r\n")
	msg.WriteString("To: " + to + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	if m.cfg.UseTLS {
		return m.sendWithTLS(to, msg.String())
	}
	return m.sendPlain(to, msg.String())
}

// sendWithTLS delivers via STARTTLS (port 587 style servers)
func (m *SMTPMailer) sendWithTLS(to, message string) error {
	addr := m.cfg.Addr()
	host := m.cfg.Host

	dialer := &net.Dialer{Timeout: 30 * time.Second}
	netConn, err := dialer.Dial("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to dial SMTP server %s: %w", addr, err)
	}
	netConn.SetDeadline(time.Now().Add(30 * time.Second))

	conn, err := smtp.NewClient(netConn, host)
	if err != nil {
		netConn.Close()
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	defer conn.Close()

	if err = conn.Hello("localhost"); err != nil {
		return fmt.Errorf("failed to send HELO: %w", err)
	}

	if err = conn.StartTLS(&tls.Config{ServerName: host}); err != nil {
		return fmt.Errorf("failed to start TLS: %w", err)
	}

	if m.cfg.Username != "" && m.cfg.Password != "" {
		auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, host)
		if err = conn.Auth(auth); err != nil {
			return fmt.Errorf("failed to authenticate: %w", err)
		}
	}

	if err = conn.Mail(m.cfg.From); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err = conn.Rcpt(to); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	w, err := conn.Data()
	if err != nil {
		return fmt.Errorf("failed to get data writer: %w", err)
	}
	if _, err = w.Write([]byte(message)); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("failed to close data writer: %w", err)
	}

	return conn.Quit()
}

func (m *SMTPMailer) sendPlain(to, message string) error {
	var auth smtp.Auth
	if m.cfg.Username != "" && m.cfg.Password != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	if err := smtp.SendMail(m.cfg.Addr(), auth, m.cfg.From, []string{to}, []byte(message)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (m *SMTPMailer) renderTemplate(name string, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := m.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
