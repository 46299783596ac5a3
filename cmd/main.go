package main

import (
	"context"
	"errors"
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

	"github.com/joho/godotenv"
	"github.com/segmentio/kafka-go"

	_ "github.com/sbilibin2017/recipe-api/docs"
	"github.com/sbilibin2017/recipe-api/internal/db"
	"github.com/sbilibin2017/recipe-api/internal/handlers"
	"github.com/sbilibin2017/recipe-api/internal/logger"
	"github.com/sbilibin2017/recipe-api/internal/middlewares"
	"github.com/sbilibin2017/recipe-api/internal/models"
	"github.com/sbilibin2017/recipe-api/internal/repositories"
	"github.com/sbilibin2017/recipe-api/internal/services"
	"github.com/sbilibin2017/recipe-api/internal/storage"
	"github.com/sbilibin2017/recipe-api/internal/token"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

const (
	storageDriverLocal = "local"
	storageDriverS3    = "s3"
)

// config holds everything the server reads from the environment.
type config struct {
	appHost  string
	appPort  string
	logLevel string

	db             db.Options
	dbWaitAttempts int
	dbWaitInterval time.Duration

	storageDriver   string
	storageLocalDir string
	storagePublic   string
	s3              storage.S3Config

	kafkaBrokers []string
	kafkaTopic   string

	rateLimitRPS   float64
	rateLimitBurst int
	uploadMaxBytes int64
}

// @title recipe-api
// @version 1.0.0
// @description REST API for managing personal recipes, tags and ingredients
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
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

func getEnv(key, defaultValue string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultValue
}

// parseConfig loads environment variables from a file and returns the
// application, database, storage, Kafka and rate limit configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	// Application config
	cfg.appHost = getEnv("APP_HOST", "localhost")
	cfg.appPort = getEnv("APP_PORT", "8080")
	cfg.logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.db.Host = getEnv("POSTGRES_HOST", "localhost")
	cfg.db.User = getEnv("POSTGRES_USER", "user")
	cfg.db.Password = getEnv("POSTGRES_PASSWORD", "password")
	cfg.db.Database = getEnv("POSTGRES_DB", "database")
	if cfg.db.Port, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if cfg.db.MaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if cfg.db.MaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}
	if cfg.dbWaitAttempts, err = strconv.Atoi(getEnv("DB_WAIT_ATTEMPTS", "30")); err != nil {
		return
	}
	waitSeconds, err := strconv.Atoi(getEnv("DB_WAIT_INTERVAL_SECOND", "1"))
	if err != nil {
		return
	}
	cfg.dbWaitInterval = time.Duration(waitSeconds) * time.Second

	// Storage config
	cfg.storageDriver = getEnv("STORAGE_DRIVER", storageDriverLocal)
	if cfg.storageDriver != storageDriverLocal && cfg.storageDriver != storageDriverS3 {
		err = fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.storageDriver)
		return
	}
	cfg.storageLocalDir = getEnv("STORAGE_LOCAL_DIR", "media")
	cfg.storagePublic = getEnv("STORAGE_PUBLIC_URL", "/media")
	cfg.s3 = storage.S3Config{
		Region:    getEnv("S3_REGION", "us-east-1"),
		Bucket:    getEnv("S3_BUCKET", "recipes"),
		AccessKey: getEnv("S3_ACCESS_KEY", ""),
		SecretKey: getEnv("S3_SECRET_KEY", ""),
		Endpoint:  getEnv("S3_ENDPOINT", ""),
		PublicURL: getEnv("STORAGE_PUBLIC_URL", ""),
	}

	// Kafka config
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.kafkaBrokers = append(cfg.kafkaBrokers, b)
			}
		}
	}
	cfg.kafkaTopic = getEnv("KAFKA_TOPIC", "recipe-events")

	// Limits
	if cfg.rateLimitRPS, err = strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "5"), 64); err != nil {
		return
	}
	if cfg.rateLimitBurst, err = strconv.Atoi(getEnv("RATE_LIMIT_BURST", "10")); err != nil {
		return
	}
	if cfg.uploadMaxBytes, err = strconv.ParseInt(getEnv("UPLOAD_MAX_BYTES", strconv.Itoa(handlers.DefaultUploadMaxBytes)), 10, 64); err != nil {
		return
	}

	return
}

// newStorage builds the configured image backend. The local backend is also
// returned so its root can be served over HTTP.
func newStorage(ctx context.Context, cfg config) (storage.Storage, *storage.LocalStorage, error) {
	if cfg.storageDriver == storageDriverS3 {
		s, err := storage.NewS3Storage(ctx, cfg.s3)
		if err != nil {
			return nil, nil, err
		}
		return s, nil, nil
	}

	local, err := storage.NewLocalStorage(cfg.storageLocalDir, cfg.storagePublic)
	if err != nil {
		return nil, nil, err
	}
	return local, local, nil
}

// newKafkaWriter returns nil when no brokers are configured.
func newKafkaWriter(cfg config) *kafka.Writer {
	if len(cfg.kafkaBrokers) == 0 {
		return nil
	}
	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.kafkaBrokers...),
		Topic:                  cfg.kafkaTopic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}
}

// run initializes the logger, database, storage, Kafka writer and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.logLevel)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	// Connect to PostgreSQL
	logger.Log.Infow("Connecting to PostgreSQL", "host", cfg.db.Host, "port", cfg.db.Port, "database", cfg.db.Database)
	conn, err := db.Open(cfg.db)
	if err != nil {
		return err
	}
	defer conn.Close()
	if err := db.WaitForDB(ctx, conn, cfg.dbWaitAttempts, cfg.dbWaitInterval); err != nil {
		return err
	}
	if err := db.Migrate(conn.DB); err != nil {
		return err
	}

	// Initialize storage
	files, local, err := newStorage(ctx, cfg)
	if err != nil {
		return err
	}

	// Initialize Kafka writer
	var events services.KafkaWriter
	if w := newKafkaWriter(cfg); w != nil {
		defer w.Close()
		events = w
		logger.Log.Infow("Publishing recipe events", "brokers", cfg.kafkaBrokers, "topic", cfg.kafkaTopic)
	}

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(conn)
	userWriteRepo := repositories.NewUserWriteRepository(conn)
	tokenRepo := repositories.NewTokenRepository(conn)
	tagRepo := repositories.NewTagRepository(conn, middlewares.GetTxFromContext)
	ingredientRepo := repositories.NewIngredientRepository(conn, middlewares.GetTxFromContext)
	recipeRepo := repositories.NewRecipeRepository(conn, middlewares.GetTxFromContext)

	// Initialize services
	keys := token.New()
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokenRepo, keys)
	tagService := services.NewAttributeService(models.KindTag, tagRepo)
	ingredientService := services.NewAttributeService(models.KindIngredient, ingredientRepo)
	recipeService := services.NewRecipeService(recipeRepo, tagRepo, ingredientRepo, files, events,
		services.WithAfterCommit(middlewares.AfterCommit),
	)

	r := newRouter(ctx, routerDeps{
		db:             conn,
		tokener:        keys,
		auth:           authService,
		tags:           tagService,
		ingredients:    ingredientService,
		recipes:        recipeService,
		local:          local,
		mediaURL:       cfg.storagePublic,
		rateLimitRPS:   cfg.rateLimitRPS,
		rateLimitBurst: cfg.rateLimitBurst,
		uploadMaxBytes: cfg.uploadMaxBytes,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.appHost, cfg.appPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.appHost, cfg.appPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
