package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/careflow-uk/fostermatch/internal/async"
	"github.com/careflow-uk/fostermatch/internal/common"
	"github.com/careflow-uk/fostermatch/internal/email"
	"github.com/careflow-uk/fostermatch/internal/export"
	"github.com/careflow-uk/fostermatch/internal/matching"
	"github.com/careflow-uk/fostermatch/internal/pdftext"
	repo "github.com/careflow-uk/fostermatch/internal/repository"
	"github.com/careflow-uk/fostermatch/internal/server"
	"github.com/careflow-uk/fostermatch/internal/webhook"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := common.LoadConfig()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 3*time.Second, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}
	if err := repo.Migrate(ctx, entc, logger); err != nil {
		logger.Error("migration failed", "error", err)
		os.Exit(1)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer func() { _ = redisClient.Close() }()

	// repositories
	carers := repo.NewCarerRepository(entc, logger)
	referrals := repo.NewReferralRepository(entc, logger)
	audit := repo.NewAuditRepository(entc, logger)

	// services
	matcher := matching.NewService(referrals, carers, audit, logger)
	exporter := export.NewService(referrals, logger)
	converter := pdftext.NewExtractor(pdftext.Config{Pdftotext: cfg.Ingest.PdftotextPath}, logger)
	processor := email.NewProcessor(
		email.ProcessorConfig{AttachmentDir: cfg.Ingest.AttachmentDir},
		email.NewRedisDeduper(redisClient, cfg.Redis.DedupTTL),
		converter, referrals, matcher, audit, logger,
	)
	queue := async.NewEmailQueue(processor, logger,
		async.WithWorkers(cfg.Ingest.Workers),
		async.WithQueueSize(cfg.Ingest.QueueSize),
		async.WithProcessTimeout(cfg.Ingest.ProcessTimeout),
	)

	// webhook HTTP server
	gin.SetMode(gin.ReleaseMode)
	router := webhook.NewRouter(logger, queue, func(c *gin.Context) error {
		return repo.HealthCheck(c.Request.Context(), pool, time.Second, logger)
	})
	httpSrv := &http.Server{Addr: cfg.Server.HTTPAddr, Handler: router}
	go func() {
		logger.Info("webhook server listening", "addr", cfg.Server.HTTPAddr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("webhook server failed", "error", err)
			stop()
		}
	}()

	// gRPC API
	grpcSrv := server.New(server.Deps{
		Carers:    server.NewCarersServer(carers, audit, logger),
		Referrals: server.NewReferralsServer(referrals, carers, audit, logger),
		Matching:  server.NewMatchingServer(matcher, referrals, logger),
		Export:    server.NewExportServer(exporter, logger),
	}, logger)
	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	go func() {
		if err := grpcSrv.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	_ = httpSrv.Shutdown(shutdownCtx)
	grpcSrv.GracefulStop()
	queue.Shutdown(shutdownCtx)
	logger.Info("stopped")
}
