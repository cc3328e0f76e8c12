package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lax56237/Daily-Drop/api"
	"github.com/lax56237/Daily-Drop/cmd"
	httpin "github.com/lax56237/Daily-Drop/internal/adapters/in/http"
	"github.com/lax56237/Daily-Drop/internal/adapters/out/natsnotify"
	"github.com/lax56237/Daily-Drop/internal/adapters/out/otpstore"
	"github.com/lax56237/Daily-Drop/internal/adapters/out/postgres"
	"github.com/lax56237/Daily-Drop/internal/core/ports"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	configs := getConfigs()
	if err := configs.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gormDB, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		log.Fatalf("Failed to connect to postgres: %v", err)
	}
	if err = postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}

	otpStore, closeStore := newOtpStore(ctx, configs)
	defer closeStore()

	notifier, closeNotifier := newNotifier(configs, logger)
	defer closeNotifier()

	app := cmd.NewCompositionRoot(configs, gormDB, otpStore, notifier, logger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, &app, configs, logger)
}

func getConfigs() cmd.Config {
	// .env is optional; containers inject the environment directly.
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	accountOtpTTL := time.Duration(0)
	if raw := os.Getenv("ACCOUNT_OTP_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			log.Fatalf("Invalid ACCOUNT_OTP_TTL %q: %v", raw, err)
		}
		accountOtpTTL = ttl
	}

	return cmd.Config{
		HTTPPort:          os.Getenv("HTTP_PORT"),
		DBHost:            os.Getenv("DB_HOST"),
		DBPort:            os.Getenv("DB_PORT"),
		DBUser:            os.Getenv("DB_USER"),
		DBPassword:        os.Getenv("DB_PASSWORD"),
		DBName:            os.Getenv("DB_NAME"),
		DBSslMode:         os.Getenv("DB_SSLMODE"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		AllowedOrigins:    cmd.SplitList(os.Getenv("ALLOWED_ORIGINS")),
		OtpStore:          os.Getenv("OTP_STORE"),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		NATSURL:           os.Getenv("NATS_URL"),
		NATSClusterID:     os.Getenv("NATS_CLUSTER_ID"),
		NATSClientID:      os.Getenv("NATS_CLIENT_ID"),
		NotifySubject:     os.Getenv("NOTIFY_SUBJECT"),
		AccountOtpTTL:     accountOtpTTL,
		OtpSweepSchedule:  os.Getenv("OTP_SWEEP_SCHEDULE"),
		ReconcileSchedule: os.Getenv("RECONCILE_SCHEDULE"),
	}
}

func newOtpStore(ctx context.Context, configs cmd.Config) (ports.OtpStore, func()) {
	if configs.OtpStore != "redis" {
		return otpstore.NewMemoryStore(), func() {}
	}

	rdb := redis.NewClient(&redis.Options{Addr: configs.RedisAddr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to redis: %v", err)
	}
	return otpstore.NewRedisStore(rdb), func() { _ = rdb.Close() }
}

func newNotifier(configs cmd.Config, logger *slog.Logger) (ports.Notifier, func()) {
	if configs.NATSURL == "" {
		return natsnotify.NewLogNotifier(logger), func() {}
	}

	conn, err := natsnotify.Connect(configs.NATSClusterID, configs.NATSClientID, configs.NATSURL)
	if err != nil {
		log.Fatalf("Failed to connect to NATS: %v", err)
	}

	subject := configs.NotifySubject
	if subject == "" {
		subject = "dailydrop.notifications"
	}
	return natsnotify.NewPublisher(conn, subject), func() { _ = conn.Close() }
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) {
	doc, err := api.Load(ctx)
	if err != nil {
		log.Fatalf("Failed to load OpenAPI document: %v", err)
	}

	server := httpin.NewServer(app.CreateHTTPHandlers(), logger)
	e, err := httpin.NewRouter(server, doc, httpin.RouterConfig{
		JWTSecret:      []byte(configs.JWTSecret),
		AllowedOrigins: configs.AllowedOrigins,
	}, logger)
	if err != nil {
		log.Fatalf("Failed to build router: %v", err)
	}

	go func() {
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); startErr != nil &&
			!errors.Is(startErr, http.ErrServerClosed) {
			log.Fatalf("HTTP server failed: %v", startErr)
		}
	}()
	logger.Info("HTTP server started", "port", configs.HTTPPort)

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
	logger.Info("HTTP server stopped")
}
