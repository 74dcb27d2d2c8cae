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
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/hawkerwatch/hygiene-api/internal/handlers"
	"github.com/hawkerwatch/hygiene-api/internal/jwt"
	"github.com/hawkerwatch/hygiene-api/internal/logger"
	"github.com/hawkerwatch/hygiene-api/internal/middlewares"
	"github.com/hawkerwatch/hygiene-api/internal/repositories"
	"github.com/hawkerwatch/hygiene-api/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title hygiene-api
// @version 1.0.0
// @description Backend for the street-stall hygiene rating platform
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		cacheTTLSecond,
		kafkaHost, kafkaPort, kafkaTopic, logLevel,
		jwtSecret, jwtExpHour,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		cacheTTLSecond,
		kafkaHost, kafkaPort, kafkaTopic,
		logLevel,
		jwtSecret, jwtExpHour,
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

// parseConfig loads environment variables from a file and returns
// all application, database, Redis, Kafka, logging, and JWT configuration.
func parseConfig(path string) (
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort int, redisDB int, redisPassword string,
	cacheTTLSecond int,
	kafkaHost, kafkaPort, kafkaTopic, logLevel string,
	jwtSecretKey string, jwtExpHour int,
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

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "hygiene")
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
	if cacheTTLSecond, err = strconv.Atoi(getEnv("LEADERBOARD_CACHE_TTL_SECOND", "30")); err != nil {
		return
	}

	// Kafka config
	kafkaHost = getEnv("KAFKA_HOST", "localhost")
	kafkaPort = getEnv("KAFKA_PORT", "9092")
	kafkaTopic = getEnv("KAFKA_RATINGS_TOPIC", "stall-ratings")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpHour, err = strconv.Atoi(getEnv("JWT_EXP_HOUR", "720")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka writer, and HTTP
// server. It sets up routes, applies middleware, and handles graceful
// shutdown.
func run(ctx context.Context,
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	cacheTTLSecond int,
	kafkaHost, kafkaPort, kafkaTopic, logLevel string,
	jwtSecretKey string, jwtExpHour int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL: %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer for accepted ratings
	kafkaWriter := &kafka.Writer{
		Addr:     kafka.TCP(fmt.Sprintf("%s:%s", kafkaHost, kafkaPort)),
		Topic:    kafkaTopic,
		Balancer: &kafka.LeastBytes{},
	}
	defer kafkaWriter.Close()

	// Initialize JWT service
	jwt := jwt.New(jwtSecretKey, time.Duration(jwtExpHour)*time.Hour)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	stallReadRepo := repositories.NewStallReadRepository(db)
	stallWriteRepo := repositories.NewStallWriteRepository(db)
	ratingReadRepo := repositories.NewRatingReadRepository(db)
	ratingWriteRepo := repositories.NewRatingWriteRepository(db)
	reviewReadRepo := repositories.NewReviewReadRepository(db)
	reviewWriteRepo := repositories.NewReviewWriteRepository(db)
	leaderboardCache := repositories.NewLeaderboardCacheRepository(rdb, time.Duration(cacheTTLSecond)*time.Second)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, jwt)
	stallService := services.NewStallService(stallReadRepo, stallWriteRepo, leaderboardCache)
	ratingService := services.NewRatingService(stallReadRepo, stallWriteRepo, ratingReadRepo, ratingWriteRepo, leaderboardCache, kafkaWriter)
	reviewService := services.NewReviewService(stallReadRepo, reviewReadRepo, reviewWriteRepo)
	qrService := services.NewQRCodeService(stallReadRepo)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	meHandler := handlers.NewMeHandler()
	createStallHandler := handlers.NewCreateStallHandler(stallService)
	listStallsHandler := handlers.NewListStallsHandler(stallService)
	getStallHandler := handlers.NewGetStallHandler(stallService)
	createRatingHandler := handlers.NewCreateRatingHandler(ratingService)
	listRatingsHandler := handlers.NewListRatingsHandler(ratingService)
	createReviewHandler := handlers.NewCreateReviewHandler(reviewService)
	listReviewsHandler := handlers.NewListReviewsHandler(reviewService)
	leaderboardHandler := handlers.NewLeaderboardHandler(stallService)
	qrCodeHandler := handlers.NewQRCodeHandler(qrService)
	uploadPhotoHandler := handlers.NewUploadPhotoHandler()

	// Setup router
	authMiddleware := middlewares.AuthMiddleware(jwt, authService)
	txMiddleware := middlewares.TxMiddleware(db)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Post("/auth/register", registerHandler)
		r.Post("/auth/login", loginHandler)
		r.Get("/stalls", listStallsHandler)
		r.Get("/stalls/{id}", getStallHandler)
		r.Get("/ratings/stall/{id}", listRatingsHandler)
		r.Get("/reviews/stall/{id}", listReviewsHandler)
		r.Get("/leaderboard", leaderboardHandler)
		r.Get("/qrcode/{id}", qrCodeHandler)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Get("/auth/me", meHandler)
			r.Post("/stalls", createStallHandler)
			r.Post("/reviews", createReviewHandler)
			r.Post("/upload-photo", uploadPhotoHandler)

			// Rating submission runs inside a transaction so the
			// ledger upsert and the aggregate recompute commit as one.
			r.Group(func(r chi.Router) {
				r.Use(txMiddleware)
				r.Post("/ratings", createRatingHandler)
			})
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
