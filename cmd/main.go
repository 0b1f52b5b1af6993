package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"

	"github.com/mkarasev/loginapp/internal/handlers"
	"github.com/mkarasev/loginapp/internal/jwt"
	"github.com/mkarasev/loginapp/internal/logger"
	"github.com/mkarasev/loginapp/internal/middlewares"
	"github.com/mkarasev/loginapp/internal/models"
	"github.com/mkarasev/loginapp/internal/password"
	"github.com/mkarasev/loginapp/internal/repositories"
	"github.com/mkarasev/loginapp/internal/services"
	"github.com/mkarasev/loginapp/internal/sessions"

	_ "github.com/mattn/go-sqlite3"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title loginapp API
// @version 1.0.0
// @description Credential service: registration, login and sessions over a local SQLite store
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel, dbPath,
		jwtSecret, jwtExpSecond,
		sessionTTLSecond, bcryptCost,
		adminPassword,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel, dbPath,
		jwtSecret, jwtExpSecond,
		sessionTTLSecond, bcryptCost,
		adminPassword,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// application, store, token and session configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel, dbPath string,
	jwtSecretKey string, jwtExpSecond int,
	sessionTTLSecond, bcryptCost int,
	adminPassword string,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// Store config
	dbPath = getEnv("DATABASE_PATH", "users.db")
	if bcryptCost, err = strconv.Atoi(getEnv("BCRYPT_COST", "10")); err != nil {
		return
	}

	// The default is a documented operational exposure; override it in
	// any real deployment.
	adminPassword = getEnv("ADMIN_PASSWORD", "password123")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	// Session config
	if sessionTTLSecond, err = strconv.Atoi(getEnv("SESSION_TTL_SECOND", "3600")); err != nil {
		return
	}

	return
}

// run initializes the logger, the SQLite store and the HTTP server,
// sets up routes and middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel, dbPath string,
	jwtSecretKey string, jwtExpSecond int,
	sessionTTLSecond, bcryptCost int,
	adminPassword string,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Open the SQLite store
	logger.Log.Infof("Opening SQLite store at %s", dbPath)
	db, err := sqlx.ConnectContext(ctx, "sqlite3", dbPath)
	if err != nil {
		logger.Log.Fatal("SQLite connection error: ", err)
	}
	defer db.Close()
	if _, err := db.ExecContext(ctx, `PRAGMA busy_timeout=5000`); err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx, `PRAGMA foreign_keys=ON`); err != nil {
		return err
	}

	// Initialize hasher and bootstrap the store (schema + seed admin)
	hasher := password.New(password.WithCost(bcryptCost))
	if err := repositories.Bootstrap(ctx, db, hasher, adminPassword); err != nil {
		logger.Log.Fatal("store bootstrap failed: ", err)
	}

	// Initialize token and session services
	tokens := jwt.New(
		jwt.WithSecretKey(jwtSecretKey),
		jwt.WithExpiration(time.Duration(jwtExpSecond)*time.Second),
	)
	sessionStore := sessions.New(
		sessions.WithTTL(time.Duration(sessionTTLSecond) * time.Second),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, hasher)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService, sessionStore, tokens)
	logoutHandler := handlers.NewLogoutHandler(sessionStore)
	sessionHandler := handlers.NewSessionHandler(sessionStore)
	usersHandler := handlers.NewUsersHandler(authService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/register", registerHandler)
		r.Post("/login", loginHandler)
		r.Post("/logout", logoutHandler)
		r.Get("/session", sessionHandler)

		// Admin routes
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(sessionStore, tokens))
			r.Use(middlewares.RequireRole(models.RoleAdmin))
			r.Get("/users", usersHandler)
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
