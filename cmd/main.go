package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-spin-settlement/internal/attest"
	"github.com/sbilibin2017/gw-spin-settlement/internal/guard"
	"github.com/sbilibin2017/gw-spin-settlement/internal/handlers"
	"github.com/sbilibin2017/gw-spin-settlement/internal/jwt"
	"github.com/sbilibin2017/gw-spin-settlement/internal/logger"
	"github.com/sbilibin2017/gw-spin-settlement/internal/metrics"
	"github.com/sbilibin2017/gw-spin-settlement/internal/middlewares"
	"github.com/sbilibin2017/gw-spin-settlement/internal/repositories"
	"github.com/sbilibin2017/gw-spin-settlement/internal/services"
	"github.com/sbilibin2017/gw-spin-settlement/internal/transaction"
	"github.com/sbilibin2017/gw-spin-settlement/internal/wheel"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

//go:generate swag init -d .. -g cmd/main.go -o ../docs

const serviceName = "gw-spin-settlement"

// @title gw-spin-settlement API
// @version 1.0.0
// @description Settlement engine for the prize wheel: spins, wallets and audit
// @host localhost:8080
// @BasePath /api/v1
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

// config is the full process configuration.
type config struct {
	AppHost  string
	AppPort  string
	GRPCPort string
	LogLevel string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int
	RedisExpSecond    int

	KafkaBrokers          []string
	KafkaSpinTopic        string
	KafkaBigWinTopic      string
	KafkaTransactionTopic string

	JWTSecretKey string
	JWTExpSecond int

	SpinSigningKey      string
	SpinCooldownSeconds int
	SpinDailyWinLimit   int64
	SpinLossStreak      int
	SpinWinStreak       int
	SpinStreakShift     float64
	SpinMaxShift        float64
	SpinDowngradePolicy wheel.DowngradePolicy
	SpinBigWinThreshold int64
	WheelConfigPath     string

	AuditCron          string
	AuditWindowMinutes int
}

// String renders the configuration with secrets redacted.
func (c config) String() string {
	redacted := c
	redacted.PGPassword = "***"
	redacted.RedisPassword = "***"
	redacted.JWTSecretKey = "***"
	redacted.SpinSigningKey = "***"
	type plain config
	return fmt.Sprintf("%+v", plain(redacted))
}

// parseConfig loads environment variables from a file and returns the
// application, database, Redis, Kafka, JWT, wheel and audit configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) int {
		if err != nil {
			return 0
		}
		var n int
		if n, err = strconv.Atoi(getEnv(key, defaultValue)); err != nil {
			err = fmt.Errorf("%s: %w", key, err)
		}
		return n
	}
	getFloat := func(key, defaultValue string) float64 {
		if err != nil {
			return 0
		}
		var f float64
		if f, err = strconv.ParseFloat(getEnv(key, defaultValue), 64); err != nil {
			err = fmt.Errorf("%s: %w", key, err)
		}
		return f
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.GRPCPort = getEnv("GRPC_PORT", "50051")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGPort = getInt("POSTGRES_PORT", "5432")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	cfg.PGMaxOpenConns = getInt("POSTGRES_MAX_OPEN_CONNS", "16")
	cfg.PGMaxIdleConns = getInt("POSTGRES_MAX_IDLE_CONNS", "8")

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	cfg.RedisPort = getInt("REDIS_PORT", "6379")
	cfg.RedisDB = getInt("REDIS_DB", "0")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	cfg.RedisPoolSize = getInt("REDIS_POOL_SIZE", "10")
	cfg.RedisMinIdleConns = getInt("REDIS_MIN_IDLE_CONNS", "2")
	cfg.RedisExpSecond = getInt("REDIS_EXP_SECOND", "60")

	// Kafka config
	for _, broker := range strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ",") {
		if broker = strings.TrimSpace(broker); broker != "" {
			cfg.KafkaBrokers = append(cfg.KafkaBrokers, broker)
		}
	}
	cfg.KafkaSpinTopic = getEnv("KAFKA_SPIN_TOPIC", "spins")
	cfg.KafkaBigWinTopic = getEnv("KAFKA_BIG_WIN_TOPIC", "big-wins")
	cfg.KafkaTransactionTopic = getEnv("KAFKA_TRANSACTION_TOPIC", "wallet-transactions")

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	cfg.JWTExpSecond = getInt("JWT_EXP_SECOND", "3600")

	// Wheel config
	cfg.SpinSigningKey = getEnv("SPIN_SIGNING_KEY", "")
	cfg.SpinCooldownSeconds = getInt("SPIN_COOLDOWN_SECONDS", "10")
	cfg.SpinDailyWinLimit = int64(getInt("SPIN_DAILY_WIN_LIMIT", "0"))
	cfg.SpinLossStreak = getInt("SPIN_LOSS_STREAK_THRESHOLD", "3")
	cfg.SpinWinStreak = getInt("SPIN_WIN_STREAK_THRESHOLD", "2")
	cfg.SpinStreakShift = getFloat("SPIN_STREAK_SHIFT", "0.05")
	cfg.SpinMaxShift = getFloat("SPIN_MAX_SHIFT", "0.20")
	cfg.SpinBigWinThreshold = int64(getInt("SPIN_BIG_WIN_THRESHOLD", "1000"))
	cfg.WheelConfigPath = getEnv("WHEEL_CONFIG_PATH", "")
	if err != nil {
		return
	}
	if cfg.SpinDowngradePolicy, err = wheel.ParseDowngradePolicy(getEnv("SPIN_DOWNGRADE_POLICY", "cap")); err != nil {
		return
	}

	// Audit config
	cfg.AuditCron = getEnv("AUDIT_CRON", "@every 10m")
	cfg.AuditWindowMinutes = getInt("AUDIT_WINDOW_MINUTES", "15")

	return
}

// run initializes the logger, database, Redis, Kafka, the settlement engine
// and the HTTP and gRPC servers. It blocks until ctx is cancelled or a
// shutdown signal arrives.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel, serviceName); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infow("configuration loaded", "config", cfg.String())

	if cfg.SpinSigningKey == "" {
		return errors.New("SPIN_SIGNING_KEY must be set")
	}

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.PGHost, cfg.PGPort, cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("PostgreSQL ping failed: %w", err)
	}
	if err := repositories.Migrate(ctx, db); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka writer. Messages carry their own topic.
	kafkaWriter := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.KafkaBrokers...),
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
		BatchTimeout:           50 * time.Millisecond,
	}
	defer kafkaWriter.Close()

	// Wheel
	table := wheel.DefaultTable()
	if cfg.WheelConfigPath != "" {
		if table, err = wheel.LoadTable(cfg.WheelConfigPath); err != nil {
			return fmt.Errorf("failed to load wheel table: %w", err)
		}
	}
	resolver, err := wheel.NewResolver(table, wheel.Config{
		LossStreakThreshold: cfg.SpinLossStreak,
		WinStreakThreshold:  cfg.SpinWinStreak,
		StreakShift:         cfg.SpinStreakShift,
		MaxShift:            cfg.SpinMaxShift,
	}, nil)
	if err != nil {
		return fmt.Errorf("invalid wheel configuration: %w", err)
	}
	attestor, err := attest.New(cfg.SpinSigningKey)
	if err != nil {
		return err
	}
	cooldown := time.Duration(cfg.SpinCooldownSeconds) * time.Second
	spinGuard := guard.New(guard.DefaultConfig(cooldown, table.WinningMass()))
	logger.Log.Infow("wheel ready", "segments", len(table), "guard", spinGuard.Cooldown().String())

	m := metrics.New(prometheus.DefaultRegisterer)

	// Initialize JWT service
	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(time.Duration(cfg.JWTExpSecond)*time.Second),
	)

	// Initialize repositories
	userRepo := repositories.NewUserReadRepository(db)
	walletRepo := repositories.NewWalletRepository(db)
	spinRepo := repositories.NewSpinRepository(db)
	statsRepo := repositories.NewStatsRepository(db)
	activityRepo := repositories.NewActivityRepository(db)
	spinCache := repositories.NewSpinCacheRepository(rdb, time.Duration(cfg.RedisExpSecond)*time.Second)
	txManager := transaction.NewManager(db)

	// Initialize services
	spinService := services.NewSpinService(
		userRepo, walletRepo, spinRepo, statsRepo, activityRepo, spinCache,
		txManager, resolver, attestor, spinGuard, kafkaWriter,
		services.SpinConfig{
			DailyWinLimit:   cfg.SpinDailyWinLimit,
			DowngradePolicy: cfg.SpinDowngradePolicy,
			BigWinThreshold: cfg.SpinBigWinThreshold,
			SpinTopic:       cfg.KafkaSpinTopic,
			BigWinTopic:     cfg.KafkaBigWinTopic,
		},
		services.WithMetrics(m),
	)
	walletService := services.NewWalletService(walletRepo, activityRepo, txManager, kafkaWriter, cfg.KafkaTransactionTopic)
	auditService := services.NewAuditService(spinRepo, attestor, activityRepo, m, time.Duration(cfg.AuditWindowMinutes)*time.Minute)
	reportService := services.NewReportService(activityRepo, statsRepo)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Device-ID", "X-Request-ID"},
		ExposedHeaders:   []string{"Retry-After", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           60 * 15,
	}))

	r.Get("/healthz", handlers.NewHealthHandler(db))
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(tokens))
			r.Post("/spin", handlers.NewSpinHandler(spinService, tokens))
			r.Get("/wallet", handlers.NewGetWalletHandler(walletService, tokens))
			r.Post("/wallet/withdrawals", handlers.NewRequestWithdrawalHandler(walletService, tokens))
			r.Get("/spins", handlers.NewHistoryHandler(auditService, tokens))
			r.Post("/spins/verify", handlers.NewVerifyHandler(auditService, tokens))
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(middlewares.AdminMiddleware(tokens))
			r.Group(func(r chi.Router) {
				r.Use(middlewares.TxMiddleware(db))
				r.Post("/wallets/{userID}/spins", handlers.NewCreditSpinsHandler(walletService))
				r.Post("/wallets/{userID}/deposits", handlers.NewApproveDepositHandler(walletService))
				r.Post("/wallets/{userID}/withdrawals/{action}", handlers.NewWithdrawalDecisionHandler(walletService))
			})
			r.Get("/users/{userID}/activity", handlers.NewUserActivityHandler(reportService))
			r.Get("/stats/daily", handlers.NewDailyStatsHandler(reportService))
		})
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: r,
	}

	// gRPC health service
	grpcServer := grpc.NewServer()
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus(serviceName, healthpb.HealthCheckResponse_SERVING)

	grpcListener, err := net.Listen("tcp", fmt.Sprintf("%s:%s", cfg.AppHost, cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("gRPC listen failed: %w", err)
	}

	// Offline signature audit
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.AuditCron, func() {
		checked, mismatched, err := auditService.Run(ctx)
		if err != nil {
			logger.Log.Errorw("signature audit failed", "error", err)
			return
		}
		logger.Log.Infow("signature audit finished", "checked", checked, "mismatched", mismatched)
	}); err != nil {
		return fmt.Errorf("invalid AUDIT_CRON %q: %w", cfg.AuditCron, err)
	}
	scheduler.Start()

	// Graceful shutdown
	errChan := make(chan error, 2)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	go func() {
		logger.Log.Infof("gRPC health server listening on %s:%s", cfg.AppHost, cfg.GRPCPort)
		if err := grpcServer.Serve(grpcListener); err != nil {
			errChan <- fmt.Errorf("gRPC server failed: %w", err)
		}
	}()

	var serveErr error
	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping servers...")
	case serveErr = <-errChan:
		logger.Log.Errorw("server failed, shutting down", "error", serveErr)
	}

	healthServer.Shutdown()
	<-scheduler.Stop().Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}
	grpcServer.GracefulStop()

	logger.Log.Info("Servers stopped gracefully")
	return serveErr
}
