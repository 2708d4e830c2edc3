package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"bookrack.backend/internal/infrastructure/repositories"
	"bookrack.backend/internal/infrastructure/storage"
	"bookrack.backend/internal/interfaces/http/handlers"
	"bookrack.backend/internal/interfaces/http/middleware"
	"bookrack.backend/internal/usecases"
	"bookrack.backend/pkg/crypto"
	"bookrack.backend/pkg/jwt"
)

const testSecret = "handler-test-secret"

type stubMailer struct {
	to    []string
	links []string
	err   error
}

func (m *stubMailer) SendVerification(to, confirmLink string) error {
	if m.err != nil {
		return m.err
	}
	m.to = append(m.to, to)
	m.links = append(m.links, confirmLink)
	return nil
}

type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
	tokens *jwt.TokenService
	mailer *stubMailer
	store  *storage.AvatarStore
}

// newTestEnv wires handlers over sqlite-backed repositories and registers
// the production route shapes, mutating routes behind the auth middleware.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_fk=1", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "open sqlite")
	createTables(t, db)

	store, err := storage.NewAvatarStore(t.TempDir())
	require.NoError(t, err)

	tokens := jwt.NewTokenService(testSecret, time.Hour, time.Hour)
	mailer := &stubMailer{}
	baseURL := "http://localhost:8080"

	authorUsecase := usecases.NewAuthorUsecase(repositories.NewAuthorRepository(db), store, baseURL)
	bookUsecase := usecases.NewBookUsecase(repositories.NewBookRepository(db))
	userUsecase := usecases.NewUserUsecase(repositories.NewUserRepository(db), tokens, mailer, baseURL)

	authorHandler := handlers.NewAuthorHandler(authorUsecase)
	bookHandler := handlers.NewBookHandler(bookUsecase)
	userHandler := handlers.NewUserHandler(userUsecase)

	router := gin.New()
	auth := middleware.AuthMiddleware(tokens)
	v1 := router.Group("/api/v1")

	authorGroup := v1.Group("/authors")
	authorGroup.POST("/", auth, authorHandler.Create)
	authorGroup.GET("/", authorHandler.List)
	authorGroup.GET("/:id/", authorHandler.Get)
	authorGroup.PUT("/:id/", auth, authorHandler.Update)
	authorGroup.PATCH("/:id/", auth, authorHandler.Patch)
	authorGroup.DELETE("/:id/", auth, authorHandler.Delete)
	authorGroup.POST("/avatar/:id", auth, authorHandler.UpsertAvatar)
	authorGroup.DELETE("/avatar/:id", auth, authorHandler.DeleteAvatar)
	authorGroup.GET("/uploads/:filename", authorHandler.ServeAvatar)

	bookGroup := v1.Group("/books")
	bookGroup.POST("/", auth, bookHandler.Create)
	bookGroup.GET("/", bookHandler.List)
	bookGroup.GET("/:id/", bookHandler.Get)
	bookGroup.PUT("/:id/", auth, bookHandler.Update)
	bookGroup.PATCH("/:id/", auth, bookHandler.Patch)
	bookGroup.DELETE("/:id/", auth, bookHandler.Delete)

	userGroup := v1.Group("/users")
	userGroup.POST("/", userHandler.Register)
	userGroup.POST("/login", userHandler.Login)
	userGroup.GET("/confirm/:token", userHandler.Confirm)

	return &testEnv{router: router, db: db, tokens: tokens, mailer: mailer, store: store}
}

func createTables(t *testing.T, db *gorm.DB) {
	t.Helper()
	for _, q := range []string{
		`CREATE TABLE users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT NOT NULL UNIQUE,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			is_verified BOOLEAN NOT NULL DEFAULT 0,
			created_at DATETIME,
			updated_at DATETIME
		);`,
		`CREATE TABLE authors (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			created DATETIME,
			avatar VARCHAR(512)
		);`,
		`CREATE TABLE books (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			year INTEGER NOT NULL,
			author_id INTEGER NOT NULL REFERENCES authors(id) ON DELETE CASCADE
		);`,
	} {
		require.NoError(t, db.Exec(q).Error)
	}
}

// bearer returns an Authorization header value for a fresh access token.
func (e *testEnv) bearer(t *testing.T) string {
	t.Helper()
	token, err := e.tokens.GenerateAccessToken("tester")
	require.NoError(t, err)
	return "Bearer " + token
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) doAuthed(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	return e.do(t, method, path, body, map[string]string{"Authorization": e.bearer(t)})
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope), "body: %s", w.Body.String())
	return envelope
}

func valueOf(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	envelope := decodeEnvelope(t, w)
	value, ok := envelope["value"].(map[string]interface{})
	require.True(t, ok, "envelope has no value object: %s", w.Body.String())
	return value
}

// seedAuthor inserts an author directly and returns its id.
func (e *testEnv) seedAuthor(t *testing.T, first, last string) uint {
	t.Helper()
	require.NoError(t, e.db.Exec(
		`INSERT INTO authors (first_name, last_name, created) VALUES (?, ?, ?)`,
		first, last, time.Now(),
	).Error)
	var id uint
	require.NoError(t, e.db.Raw(`SELECT id FROM authors ORDER BY id DESC LIMIT 1`).Scan(&id).Error)
	return id
}

func (e *testEnv) seedBook(t *testing.T, title string, year int, authorID uint) uint {
	t.Helper()
	require.NoError(t, e.db.Exec(
		`INSERT INTO books (title, year, author_id) VALUES (?, ?, ?)`,
		title, year, authorID,
	).Error)
	var id uint
	require.NoError(t, e.db.Raw(`SELECT id FROM books ORDER BY id DESC LIMIT 1`).Scan(&id).Error)
	return id
}

// seedUser inserts a user with a real bcrypt digest for password.
func (e *testEnv) seedUser(t *testing.T, username, emailAddr, password string, verified bool) {
	t.Helper()
	digest, err := crypto.HashPassword(password)
	require.NoError(t, err)
	require.NoError(t, e.db.Exec(
		`INSERT INTO users (username, email, password_hash, is_verified, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		username, emailAddr, digest, verified, time.Now(), time.Now(),
	).Error)
}

// multipartAvatar builds a multipart body with an avatar file part.
func multipartAvatar(t *testing.T, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("avatar", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func (e *testEnv) uploadAvatar(t *testing.T, id uint, filename string, content []byte) *httptest.ResponseRecorder {
	t.Helper()
	body, contentType := multipartAvatar(t, filename, content)
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/v1/authors/avatar/%d", id), body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", e.bearer(t))
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// avatarFilename extracts the stored filename from an author's avatar URL.
func avatarFilename(t *testing.T, author map[string]interface{}) string {
	t.Helper()
	url, _ := author["avatar"].(string)
	require.NotEmpty(t, url, "author has no avatar: %v", author)
	return url[strings.LastIndex(url, "/")+1:]
}
