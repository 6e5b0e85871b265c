package server

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"

	"voxql/internal/database"
	"voxql/internal/handlers"
	"voxql/internal/repositories"
	"voxql/internal/routes"
	"voxql/internal/services"
	"voxql/internal/utils"
)

const defaultNLQTimeout = 120 * time.Second

func NewServer() *http.Server {
	port, _ := strconv.Atoi(os.Getenv("PORT"))
	if port == 0 {
		port = 8080
	}

	pool, err := database.Connect()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := database.RunMigrations(pool); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	encryptor, err := utils.NewEncryptor(os.Getenv("CREDENTIAL_KEY"))
	if err != nil {
		log.Fatalf("invalid CREDENTIAL_KEY: %v", err)
	}

	nlqURL := os.Getenv("NLQ_SERVICE_URL")
	if nlqURL == "" {
		log.Fatal("NLQ_SERVICE_URL environment variable is required")
	}
	nlqTimeout := defaultNLQTimeout
	if secs, err := strconv.Atoi(os.Getenv("NLQ_TIMEOUT_SECONDS")); err == nil && secs > 0 {
		nlqTimeout = time.Duration(secs) * time.Second
	}

	// Dependency injection
	userRepo := repositories.NewUserRepository(pool)
	connRepo := repositories.NewConnectionRepository(pool)
	sessionRepo := repositories.NewSessionRepository(pool)
	messageRepo := repositories.NewMessageRepository(pool)

	nlqService := services.NewNLQService(nlqURL, nlqTimeout)
	authService := services.NewAuthService(userRepo)
	userService := services.NewUserService(userRepo)
	connectionService := services.NewConnectionService(connRepo, encryptor)
	sessionService := services.NewSessionService(sessionRepo)
	messageService := services.NewMessageService(connRepo, sessionRepo, messageRepo, nlqService, encryptor)

	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	connectionHandler := handlers.NewConnectionHandler(connectionService)
	sessionHandler := handlers.NewSessionHandler(sessionService)
	messageHandler := handlers.NewMessageHandler(messageService)

	router := gin.Default()

	corsOrigin := os.Getenv("CORS_ORIGIN")
	if corsOrigin == "" {
		corsOrigin = "http://localhost:5173"
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{corsOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(router, authHandler, userHandler, connectionHandler, sessionHandler, messageHandler)

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: nlqTimeout + 30*time.Second,
	}
}
