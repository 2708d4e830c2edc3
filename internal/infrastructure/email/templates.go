package email

const emailTemplates = `
{{define "verification"}}
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Welcome to {{.AppName}}</h2>
  <p>Please confirm your email address by clicking the link below:</p>
  <p><a href="{{.ConfirmLink}}">Confirm email</a></p>
  <p>If the link does not work, copy this address into your browser:</p>
  <p>{{.ConfirmLink}}</p>
  <p>If you did not create an account, you can ignore this message.</p>
</body>
</html>
{{end}}
`
