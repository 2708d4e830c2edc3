package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"bookrack.backend/internal/config"
	"bookrack.backend/internal/infrastructure/email"
	"bookrack.backend/internal/infrastructure/models"
	"bookrack.backend/internal/infrastructure/repositories"
	"bookrack.backend/internal/infrastructure/storage"
	"bookrack.backend/internal/interfaces/http/handlers"
	"bookrack.backend/internal/interfaces/http/middleware"
	"bookrack.backend/internal/usecases"
	"bookrack.backend/pkg/jwt"
	"bookrack.backend/pkg/logger"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			TranslateError: true,
		})
	}
	newMailer = func(cfg config.SMTPConfig) (email.Mailer, error) { return email.New(cfg) }
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
	migrate   = func(db *gorm.DB) error {
		return db.AutoMigrate(&models.User{}, &models.Author{}, &models.Book{})
	}
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("database not available: %w", err)
	}

	if err := migrate(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	store, err := storage.NewAvatarStore(cfg.Storage.UploadDir)
	if err != nil {
		return fmt.Errorf("failed to initialize avatar storage: %w", err)
	}

	mailer, err := newMailer(cfg.SMTP)
	if err != nil {
		return fmt.Errorf("failed to initialize mailer: %w", err)
	}

	tokenService := jwt.NewTokenService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.VerificationMaxAge,
	)

	authorRepo := repositories.NewAuthorRepository(db)
	bookRepo := repositories.NewBookRepository(db)
	userRepo := repositories.NewUserRepository(db)

	authorUsecase := usecases.NewAuthorUsecase(authorRepo, store, cfg.Server.BaseURL)
	bookUsecase := usecases.NewBookUsecase(bookRepo)
	userUsecase := usecases.NewUserUsecase(userRepo, tokenService, mailer, cfg.Server.BaseURL)

	authorHandler := handlers.NewAuthorHandler(authorUsecase)
	bookHandler := handlers.NewBookHandler(bookUsecase)
	userHandler := handlers.NewUserHandler(userUsecase)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authorHandler:  authorHandler,
		bookHandler:    bookHandler,
		userHandler:    userHandler,
		authMiddleware: middleware.AuthMiddleware(tokenService),
	})

	log.Printf("Bookrack backend starting on port %s", cfg.Server.Port)
	log.Printf("API: %s/api/v1", cfg.Server.BaseURL)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
