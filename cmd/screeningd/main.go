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

	"github.com/bibbank/screening-service/internal/application/usecase"
	"github.com/bibbank/screening-service/internal/domain/port"
	"github.com/bibbank/screening-service/internal/domain/service"
	"github.com/bibbank/screening-service/internal/infrastructure/config"
	"github.com/bibbank/screening-service/internal/infrastructure/messaging"
	"github.com/bibbank/screening-service/internal/infrastructure/metrics"
	grpcpresentation "github.com/bibbank/screening-service/internal/presentation/grpc"
	"github.com/bibbank/screening-service/internal/presentation/rest"
	"github.com/bibbank/screening-service/pkg/auth"
	"github.com/bibbank/screening-service/pkg/kafka"
	"github.com/bibbank/screening-service/pkg/observability"
	"github.com/bibbank/screening-service/pkg/tlsutil"
)

const serviceName = "screening-service"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		slog.Error("screening-service exited with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := observability.InitLogger(observability.LogConfig{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: serviceName,
		Environment: cfg.Environment,
	})

	logger.Info("starting screening-service",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
	)

	tracerProvider, err := observability.InitTracer(ctx, observability.TracingConfig{
		ServiceName: serviceName,
		Environment: cfg.Environment,
		Endpoint:    cfg.OTLPEndpoint,
		Insecure:    !cfg.IsProduction(),
	})
	if err != nil {
		logger.Warn("failed to initialize tracer, continuing without tracing", "error", err)
	} else {
		defer shutdownWithTimeout(logger, "tracer", tracerProvider.Shutdown)
	}

	meterProvider, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: serviceName,
		Environment: cfg.Environment,
	})
	if err != nil {
		return fmt.Errorf("init metrics: %w", err)
	}
	defer shutdownWithTimeout(logger, "meter provider", meterProvider.Shutdown)

	recorder, err := metrics.NewRecorder(meterProvider)
	if err != nil {
		return fmt.Errorf("init recorder: %w", err)
	}

	healthHandler := rest.NewHealthHandler(serviceName, logger)

	// Wire infrastructure adapters.
	var publisher port.EventPublisher
	if cfg.EventsEnabled {
		producer, err := kafka.NewProducer(kafka.Config{
			Brokers:       cfg.KafkaBrokers,
			ClientID:      cfg.KafkaClientID,
			TLS:           cfg.KafkaTLS,
			SASLEnabled:   cfg.KafkaSASLEnabled(),
			SASLMechanism: cfg.KafkaSASLMech,
			SASLUsername:  cfg.KafkaSASLUsername,
			SASLPassword:  cfg.KafkaSASLPassword,
		})
		if err != nil {
			return fmt.Errorf("init kafka producer: %w", err)
		}
		defer func() {
			if err := producer.Close(); err != nil {
				logger.Error("kafka producer close error", "error", err)
			}
		}()

		publisher = messaging.NewKafkaPublisher(producer, cfg.EventsTopic, logger)
		healthHandler.AddCheck("kafka", producer.Ping)
	} else {
		logger.Warn("event publishing disabled, events will only be logged")
		publisher = messaging.NewLogPublisher(logger)
	}

	// Wire domain services.
	riskScorer := service.NewRiskScorer()
	duplicateDetector := service.NewDuplicateDetector(service.WithThreshold(cfg.DuplicateThreshold))
	queryAnalyzer := service.NewQueryAnalyzer()

	// Wire use cases.
	scoreRisk := usecase.NewScoreRisk(riskScorer, publisher, recorder, logger)
	useCases := grpcpresentation.UseCases{
		ScoreRisk:       scoreRisk,
		ScoreRiskBatch:  usecase.NewScoreRiskBatch(scoreRisk, cfg.BatchConcurrency),
		DetectDuplicate: usecase.NewDetectDuplicate(duplicateDetector, publisher, recorder, logger),
		AnalyzeQuery:    usecase.NewAnalyzeQuery(queryAnalyzer, recorder, logger),
		MatchBiometric:  usecase.NewMatchBiometric(),
	}

	// gRPC server.
	serverOpts := grpcpresentation.ServerOptions{
		Address:    cfg.GRPCAddress(),
		Reflection: cfg.GRPCReflection,
	}
	if cfg.AuthEnabled() {
		jwtService, err := newJWTService(cfg)
		if err != nil {
			return fmt.Errorf("init jwt: %w", err)
		}
		serverOpts.JWT = jwtService
	}
	if cfg.TLSEnabled() {
		creds, err := tlsutil.ServerTLSConfig(cfg.TLSCertFile, cfg.TLSKeyFile)
		if err != nil {
			return fmt.Errorf("load TLS credentials: %w", err)
		}
		serverOpts.Creds = creds
	}

	grpcHandler := grpcpresentation.NewScreeningServiceHandler(useCases, logger, cfg.AuthEnabled())
	grpcServer := grpcpresentation.NewServer(grpcHandler, serverOpts, logger)

	// HTTP server (health checks and metrics).
	httpMux := http.NewServeMux()
	healthHandler.RegisterRoutes(httpMux, metricsHandler)

	httpServer := &http.Server{
		Addr:         cfg.HTTPAddress(),
		Handler:      httpMux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start servers.
	errCh := make(chan error, 2)

	go func() {
		if err := grpcServer.Start(); err != nil {
			errCh <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	go func() {
		logger.Info("HTTP server starting", "address", cfg.HTTPAddress())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	logger.Info("screening-service started",
		"grpc_address", cfg.GRPCAddress(),
		"http_address", cfg.HTTPAddress(),
		"environment", cfg.Environment,
		"events_enabled", cfg.EventsEnabled,
		"duplicate_threshold", cfg.DuplicateThreshold,
	)

	var serveErr error
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case serveErr = <-errCh:
		logger.Error("server error", "error", serveErr)
	}

	// Graceful shutdown.
	logger.Info("shutting down screening-service")

	grpcServer.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("screening-service stopped")
	return serveErr
}

func newJWTService(cfg *config.Config) (*auth.JWTService, error) {
	jwtCfg := auth.JWTConfig{
		Secret: cfg.JWTSecret,
		Issuer: cfg.JWTIssuer,
	}
	if cfg.JWTPublicKeyFile != "" {
		pem, err := auth.LoadKeyFromFile(cfg.JWTPublicKeyFile)
		if err != nil {
			return nil, err
		}
		jwtCfg.PublicKeyPEM = string(pem)
	}
	return auth.NewJWTService(jwtCfg)
}

func shutdownWithTimeout(logger *slog.Logger, name string, fn func(context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := fn(ctx); err != nil {
		logger.Error("shutdown error", "component", name, "error", err)
	}
}
