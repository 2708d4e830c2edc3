package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"bookrack.backend/internal/interfaces/http/handlers"
)

func TestRegisterAPIV1Routes_RegistersKeyRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	registerAPIV1Routes(r, routeDeps{
		authorHandler:  &handlers.AuthorHandler{},
		bookHandler:    &handlers.BookHandler{},
		userHandler:    &handlers.UserHandler{},
		authMiddleware: func(c *gin.Context) { c.Next() },
	})

	expects := []struct {
		method string
		path   string
	}{
		{"POST", "/api/v1/authors/"},
		{"GET", "/api/v1/authors/"},
		{"GET", "/api/v1/authors/:id/"},
		{"PUT", "/api/v1/authors/:id/"},
		{"PATCH", "/api/v1/authors/:id/"},
		{"DELETE", "/api/v1/authors/:id/"},
		{"POST", "/api/v1/authors/avatar/:id"},
		{"DELETE", "/api/v1/authors/avatar/:id"},
		{"GET", "/api/v1/authors/uploads/:filename"},
		{"POST", "/api/v1/books/"},
		{"GET", "/api/v1/books/"},
		{"GET", "/api/v1/books/:id/"},
		{"PUT", "/api/v1/books/:id/"},
		{"PATCH", "/api/v1/books/:id/"},
		{"DELETE", "/api/v1/books/:id/"},
		{"POST", "/api/v1/users/"},
		{"POST", "/api/v1/users/login"},
		{"GET", "/api/v1/users/confirm/:token"},
	}

	routes := r.Routes()
	for _, exp := range expects {
		found := false
		for _, route := range routes {
			if route.Method == exp.method && route.Path == exp.path {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("route %s %s not registered", exp.method, exp.path)
		}
	}
}

func TestRegisterHealthRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	registerHealthRoute(r)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRegisterMetricsRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	registerMetricsRoute(r)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestApplyCORSMiddleware_Preflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	applyCORSMiddleware(r)
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204 for preflight, got %d", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Fatal("expected CORS headers on preflight response")
	}
}
