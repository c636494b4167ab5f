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
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/akarpov87/job-tracker-api/docs"
	"github.com/akarpov87/job-tracker-api/internal/db"
	"github.com/akarpov87/job-tracker-api/internal/events"
	"github.com/akarpov87/job-tracker-api/internal/facades"
	"github.com/akarpov87/job-tracker-api/internal/handlers"
	"github.com/akarpov87/job-tracker-api/internal/jwt"
	"github.com/akarpov87/job-tracker-api/internal/logger"
	"github.com/akarpov87/job-tracker-api/internal/middlewares"
	"github.com/akarpov87/job-tracker-api/internal/repositories"
	"github.com/akarpov87/job-tracker-api/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "1.0.0" // Version of the service
	buildDate    = "N/A"   // Build date
	buildCommit  = "N/A"   // Git commit hash
)

const statsCacheTTL = 30 * time.Second

// @title Job Application Tracker API
// @version 1.0.0
// @description REST API for tracking job applications with JWT authentication
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel, environment, allowedOrigins,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		kafkaAddrs, kafkaTopic,
		jwtSecret, jwtExp,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel, environment, allowedOrigins,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		kafkaAddrs, kafkaTopic,
		jwtSecret, jwtExp,
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

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, logging, and JWT configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel, environment string,
	allowedOrigins []string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	kafkaAddrs []string, kafkaTopic string,
	jwtSecretKey string, jwtExpSecond int,
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
	environment = getEnv("ENVIRONMENT", "development")

	// In development any origin is allowed; in production origins come
	// from ALLOWED_ORIGINS (comma-separated).
	if environment == "development" {
		allowedOrigins = []string{"*"}
	} else if raw := getEnv("ALLOWED_ORIGINS", ""); raw != "" {
		allowedOrigins = strings.Split(raw, ",")
	}

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "jobtracker")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}

	// Kafka config; empty KAFKA_ADDRS disables event publishing
	if raw := getEnv("KAFKA_ADDRS", ""); raw != "" {
		kafkaAddrs = strings.Split(raw, ",")
	}
	kafkaTopic = getEnv("KAFKA_TOPIC", "job-tracker-events")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel, environment string,
	allowedOrigins []string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	kafkaAddrs []string, kafkaTopic string,
	jwtSecretKey string, jwtExpSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s, environment %s", logLevel, environment)

	// Connect to PostgreSQL and apply migrations
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", pgHost, pgPort, pgDB)

	database, err := db.Connect(ctx, dsn, pgMaxOpenConns, pgMaxIdleConns)
	if err != nil {
		logger.Log.Error("PostgreSQL connection error: ", err)
		return err
	}
	defer database.Close()

	if err := db.Migrate(dsn); err != nil {
		logger.Log.Error("migration error: ", err)
		return err
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password:     redisPassword,
		DB:           redisDB,
		PoolSize:     redisPoolSize,
		MinIdleConns: redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Error("Redis connection error: ", err)
		return err
	}
	defer rdb.Close()

	// Kafka event publisher
	var publisher services.EventPublisher
	if len(kafkaAddrs) > 0 {
		writer := events.NewKafkaWriter(kafkaAddrs, kafkaTopic)
		defer writer.Close()
		publisher = events.NewPublisher(writer)
		logger.Log.Infof("Kafka event publishing enabled, topic %s", kafkaTopic)
	} else {
		publisher = events.NewNopPublisher()
		logger.Log.Info("Kafka event publishing disabled")
	}

	// Initialize JWT service
	tokens := jwt.New(
		jwt.WithSecretKey(jwtSecretKey),
		jwt.WithExpiration(time.Duration(jwtExpSecond)*time.Second),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(database)
	userWriteRepo := repositories.NewUserWriteRepository(database)
	appReadRepo := repositories.NewApplicationReadRepository(database)
	appWriteRepo := repositories.NewApplicationWriteRepository(database, middlewares.GetTxFromContext)

	// Stats go through the Redis cache-aside facade
	statsFacade := facades.NewStatsCacheFacade(appReadRepo, facades.NewRedisCache(rdb), statsCacheTTL)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens)
	appService := services.NewApplicationService(appReadRepo, appWriteRepo, statsFacade, publisher)

	validate := validator.New()

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService, validate)
	loginHandler := handlers.NewLoginHandler(authService, validate)
	profileHandler := handlers.NewProfileHandler(authService, tokens)
	createHandler := handlers.NewCreateApplicationHandler(appService, tokens, validate)
	listHandler := handlers.NewListApplicationsHandler(appService, tokens)
	getHandler := handlers.NewGetApplicationHandler(appService, tokens)
	updateHandler := handlers.NewUpdateApplicationHandler(appService, tokens, validate)
	deleteHandler := handlers.NewDeleteApplicationHandler(appService, tokens)
	statsHandler := handlers.NewStatsHandler(appService, tokens)
	healthHandler := handlers.NewHealthHandler(database, buildVersion)
	rootHandler := handlers.NewRootHandler(buildVersion)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(middlewares.CORSMiddleware(allowedOrigins))

	r.Get("/", rootHandler)
	r.Get("/health", healthHandler)

	r.Get("/docs", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/docs/index.html", http.StatusMovedPermanently)
	})
	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/docs/doc.json", appHost, appPort)),
	))

	authMiddleware := middlewares.AuthMiddleware(tokens)
	txMiddleware := middlewares.TxMiddleware(database)

	// Public auth routes, rate-limited per IP
	r.Route("/api/auth", func(r chi.Router) {
		r.With(httprate.LimitByIP(5, time.Hour)).Post("/register", registerHandler)
		r.With(httprate.LimitByIP(10, 5*time.Minute)).Post("/login", loginHandler)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Get("/profile", profileHandler)
		})
	})

	// Protected application routes
	r.Route("/api/jobs", func(r chi.Router) {
		r.Use(authMiddleware)

		r.Get("/", listHandler)
		r.With(txMiddleware).Post("/", createHandler)
		r.Get("/stats/summary", statsHandler)
		r.Get("/{id}", getHandler)
		r.With(txMiddleware).Put("/{id}", updateHandler)
		r.With(txMiddleware).Delete("/{id}", deleteHandler)
	})

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
