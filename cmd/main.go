package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-app-catalog/internal/apperrors"
	"github.com/sbilibin2017/gw-app-catalog/internal/handlers"
	"github.com/sbilibin2017/gw-app-catalog/internal/jwt"
	"github.com/sbilibin2017/gw-app-catalog/internal/logger"
	"github.com/sbilibin2017/gw-app-catalog/internal/middlewares"
	"github.com/sbilibin2017/gw-app-catalog/internal/repositories"
	"github.com/sbilibin2017/gw-app-catalog/internal/services"
	"github.com/sbilibin2017/gw-app-catalog/internal/uploads"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/sbilibin2017/gw-app-catalog/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds everything read from the environment.
type config struct {
	appHost  string
	appPort  string
	logLevel string
	logFile  string

	pgHost         string
	pgPort         int
	pgUser         string
	pgPassword     string
	pgDB           string
	pgMaxOpenConns int
	pgMaxIdleConns int

	jwtSecret    string
	jwtExpSecond int

	mediaRoot      string
	uploadMaxBytes int64

	redisHost          string // empty disables the app cache
	redisPort          int
	redisDB            int
	redisPassword      string
	appCacheTTLSeconds int

	kafkaBrokers []string // empty disables event publishing
	kafkaTopic   string

	rateLimitRPS   float64
	rateLimitBurst int
}

// @title gw-app-catalog API
// @version 1.0.0
// @description Service for registering users and publishing apps to a catalog
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
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file (if present) and
// returns the service configuration. Missing required variables are
// reported together.
func parseConfig(path string) (*config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	var missing []string
	mustGet := func(key string) string {
		val := getEnv(key, "")
		if val == "" {
			missing = append(missing, key)
		}
		return val
	}

	var parseErr error
	getInt := func(key string, defaultValue int) int {
		raw := getEnv(key, strconv.Itoa(defaultValue))
		v, err := strconv.Atoi(raw)
		if err != nil && parseErr == nil {
			parseErr = fmt.Errorf("%w: %s: %q is not an integer", apperrors.ErrConfig, key, raw)
		}
		return v
	}

	cfg := &config{}

	// Required
	cfg.pgHost = mustGet("DATABASE_HOST")
	mustGet("DATABASE_PORT")
	cfg.pgUser = mustGet("DATABASE_USER")
	cfg.pgPassword = mustGet("DATABASE_PASSWORD")
	cfg.pgDB = mustGet("DATABASE_NAME")
	cfg.jwtSecret = mustGet("JWT_SECRET")

	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing required variables: %s", apperrors.ErrConfig, strings.Join(missing, ", "))
	}
	cfg.pgPort = getInt("DATABASE_PORT", 5432)

	// Application
	cfg.appHost = getEnv("APP_HOST", "0.0.0.0")
	cfg.appPort = getEnv("APP_PORT", "8080")
	cfg.logLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.logFile = getEnv("APP_LOG_FILE", "")

	// PostgreSQL pool
	cfg.pgMaxOpenConns = getInt("POSTGRES_MAX_OPEN_CONNS", 16)
	cfg.pgMaxIdleConns = getInt("POSTGRES_MAX_IDLE_CONNS", 8)

	// JWT
	cfg.jwtExpSecond = getInt("JWT_EXP_SECOND", int(jwt.DefaultExpiration/time.Second))

	// Uploads
	cfg.mediaRoot = getEnv("MEDIA_ROOT", uploads.DefaultRoot)
	cfg.uploadMaxBytes = int64(getInt("UPLOAD_MAX_BYTES", int(handlers.DefaultUploadMaxBytes)))

	// Redis
	cfg.redisHost = getEnv("REDIS_HOST", "")
	cfg.redisPort = getInt("REDIS_PORT", 6379)
	cfg.redisDB = getInt("REDIS_DB", 0)
	cfg.redisPassword = getEnv("REDIS_PASSWORD", "")
	cfg.appCacheTTLSeconds = getInt("APP_CACHE_TTL_SECOND", 300)

	// Kafka
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.kafkaBrokers = append(cfg.kafkaBrokers, b)
			}
		}
	}
	cfg.kafkaTopic = getEnv("KAFKA_TOPIC", "app-catalog-events")

	// Rate limiting
	rps, err := strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "5"), 64)
	if err != nil && parseErr == nil {
		parseErr = fmt.Errorf("%w: RATE_LIMIT_RPS: %w", apperrors.ErrConfig, err)
	}
	cfg.rateLimitRPS = rps
	cfg.rateLimitBurst = getInt("RATE_LIMIT_BURST", 10)

	if parseErr != nil {
		return nil, parseErr
	}
	return cfg, nil
}

// postgresDSN builds a connection URL. The password is escaped.
func postgresDSN(cfg *config) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.pgUser, cfg.pgPassword),
		Host:     net.JoinHostPort(cfg.pgHost, strconv.Itoa(cfg.pgPort)),
		Path:     "/" + cfg.pgDB,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// newKafkaWriter builds an asynchronous event writer. Delivery errors are
// reported through Completion since WriteMessages returns before the batch
// reaches the broker.
func newKafkaWriter(cfg *config) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.kafkaBrokers...),
		Topic:                  cfg.kafkaTopic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
		Async:                  true,
		BatchTimeout:           10 * time.Millisecond,
		WriteTimeout:           5 * time.Second,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				logger.Log.Errorw("Kafka delivery failed", "messages", len(messages), "error", err)
			}
		},
	}
}

type authService interface {
	handlers.Registerer
	handlers.Loginer
	handlers.UserGetter
}

type appService interface {
	handlers.AppGetter
	handlers.AppLister
	handlers.AppCreator
}

// routerConfig holds the dependencies of the HTTP router.
type routerConfig struct {
	auth           authService
	apps           appService
	tokener        middlewares.Tokener
	limiter        *middlewares.RateLimiter
	db             handlers.Pinger
	mediaDir       string
	uploadMaxBytes int64
}

// newRouter registers every route of the service.
func newRouter(rc routerConfig) http.Handler {
	authMiddleware := middlewares.AuthMiddleware(rc.tokener)

	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Get("/healthz", handlers.NewHealthHandler(rc.db))

	r.Route("/api", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.With(rc.limiter.Middleware).Post("/register", handlers.NewRegisterHandler(rc.auth))
			r.With(rc.limiter.Middleware).Post("/login", handlers.NewLoginHandler(rc.auth))
			r.With(authMiddleware).Get("/", handlers.NewGetCurrentUserHandler(rc.auth))
		})

		r.Route("/apps", func(r chi.Router) {
			r.With(authMiddleware).Post("/", handlers.NewCreateAppHandler(rc.apps, rc.uploadMaxBytes))
			r.Get("/user/{id}", handlers.NewListUserAppsHandler(rc.apps))
			r.Get("/{id}", handlers.NewGetAppHandler(rc.apps))
		})
	})

	r.Handle("/media/images/*", http.StripPrefix("/media/images/", mediaServer(rc.mediaDir)))

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	return r
}

// mediaServer serves stored images without directory listings.
func mediaServer(dir string) http.Handler {
	fs := http.FileServer(http.Dir(dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "" || strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		fs.ServeHTTP(w, r)
	})
}

// run initializes the logger, database, optional Redis cache and Kafka
// writer, and the HTTP server. It blocks until ctx is cancelled or a
// shutdown signal arrives.
func run(ctx context.Context, cfg *config) error {
	var logPaths []string
	if cfg.logFile != "" {
		logPaths = append(logPaths, cfg.logFile)
	}
	if err := logger.Initialize(cfg.logLevel, logPaths...); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.logLevel)

	// Connect to PostgreSQL
	logger.Log.Infow("Connecting to PostgreSQL", "host", cfg.pgHost, "port", cfg.pgPort, "database", cfg.pgDB)
	db, err := sqlx.ConnectContext(ctx, "pgx", postgresDSN(cfg))
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.pgMaxOpenConns)
	db.SetMaxIdleConns(cfg.pgMaxIdleConns)

	if err := repositories.CreateSchema(ctx, db); err != nil {
		return fmt.Errorf("schema bootstrap failed: %w", err)
	}

	// Connect to Redis
	var appCache services.AppCache
	if cfg.redisHost != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     net.JoinHostPort(cfg.redisHost, strconv.Itoa(cfg.redisPort)),
			Password: cfg.redisPassword,
			DB:       cfg.redisDB,
		})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Log.Warnw("Redis unavailable, app cache disabled", "error", err)
		} else {
			appCache = repositories.NewAppCacheRepository(rdb, time.Duration(cfg.appCacheTTLSeconds)*time.Second)
			logger.Log.Info("App cache enabled")
		}
	}

	// Kafka writer
	var kafkaWriter services.KafkaWriter
	if len(cfg.kafkaBrokers) > 0 {
		w := newKafkaWriter(cfg)
		defer func() {
			if err := w.Close(); err != nil {
				logger.Log.Errorw("Kafka writer close error", "error", err)
			}
		}()
		kafkaWriter = w
		logger.Log.Infow("Event publishing enabled", "brokers", cfg.kafkaBrokers, "topic", cfg.kafkaTopic)
	}

	tokens := jwt.New(
		jwt.WithSecretKey(cfg.jwtSecret),
		jwt.WithExpiration(time.Duration(cfg.jwtExpSecond)*time.Second),
	)
	images := uploads.NewSaver(cfg.mediaRoot)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	appReadRepo := repositories.NewAppReadRepository(db)
	appWriteRepo := repositories.NewAppWriteRepository(db)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens, kafkaWriter)
	appService := services.NewAppService(appReadRepo, appWriteRepo, appCache, images, kafkaWriter)

	router := newRouter(routerConfig{
		auth:           authService,
		apps:           appService,
		tokener:        tokens,
		limiter:        middlewares.NewRateLimiter(cfg.rateLimitRPS, cfg.rateLimitBurst),
		db:             db,
		mediaDir:       images.Dir(),
		uploadMaxBytes: cfg.uploadMaxBytes,
	})

	addr := net.JoinHostPort(cfg.appHost, cfg.appPort)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
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
