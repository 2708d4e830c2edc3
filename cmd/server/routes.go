package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"bookrack.backend/internal/interfaces/http/handlers"
)

type routeDeps struct {
	authorHandler  *handlers.AuthorHandler
	bookHandler    *handlers.BookHandler
	userHandler    *handlers.UserHandler
	authMiddleware gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Author routes; reads are public, mutations require a bearer token
		authors := v1.Group("/authors")
		{
			authors.POST("/", d.authMiddleware, d.authorHandler.Create)
			authors.GET("/", d.authorHandler.List)
			authors.GET("/:id/", d.authorHandler.Get)
			authors.PUT("/:id/", d.authMiddleware, d.authorHandler.Update)
			authors.PATCH("/:id/", d.authMiddleware, d.authorHandler.Patch)
			authors.DELETE("/:id/", d.authMiddleware, d.authorHandler.Delete)
			authors.POST("/avatar/:id", d.authMiddleware, d.authorHandler.UpsertAvatar)
			authors.DELETE("/avatar/:id", d.authMiddleware, d.authorHandler.DeleteAvatar)
			authors.GET("/uploads/:filename", d.authorHandler.ServeAvatar)
		}

		// Book routes mirror the author semantics
		books := v1.Group("/books")
		{
			books.POST("/", d.authMiddleware, d.bookHandler.Create)
			books.GET("/", d.bookHandler.List)
			books.GET("/:id/", d.bookHandler.Get)
			books.PUT("/:id/", d.authMiddleware, d.bookHandler.Update)
			books.PATCH("/:id/", d.authMiddleware, d.bookHandler.Patch)
			books.DELETE("/:id/", d.authMiddleware, d.bookHandler.Delete)
		}

		// Account routes (public)
		users := v1.Group("/users")
		{
			users.POST("/", d.userHandler.Register)
			users.POST("/login", d.userHandler.Login)
			users.GET("/confirm/:token", d.userHandler.Confirm)
		}
	}
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}
