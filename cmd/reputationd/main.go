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

	"google.golang.org/grpc/credentials"

	"github.com/NuriAnaliserDev/myCyberapp/internal/application/usecase"
	"github.com/NuriAnaliserDev/myCyberapp/internal/domain/port"
	"github.com/NuriAnaliserDev/myCyberapp/internal/domain/service"
	"github.com/NuriAnaliserDev/myCyberapp/internal/infrastructure/config"
	"github.com/NuriAnaliserDev/myCyberapp/internal/infrastructure/feed"
	"github.com/NuriAnaliserDev/myCyberapp/internal/infrastructure/kafka"
	"github.com/NuriAnaliserDev/myCyberapp/internal/infrastructure/messaging"
	"github.com/NuriAnaliserDev/myCyberapp/internal/infrastructure/metrics"
	"github.com/NuriAnaliserDev/myCyberapp/internal/infrastructure/storage"
	grpcpresentation "github.com/NuriAnaliserDev/myCyberapp/internal/presentation/grpc"
	"github.com/NuriAnaliserDev/myCyberapp/internal/presentation/rest"
	"github.com/NuriAnaliserDev/myCyberapp/pkg/auth"
	pkgkafka "github.com/NuriAnaliserDev/myCyberapp/pkg/kafka"
	"github.com/NuriAnaliserDev/myCyberapp/pkg/observability"
	"github.com/NuriAnaliserDev/myCyberapp/pkg/tlsutil"
)

const serviceName = "reputationd"

var version = "dev"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Load configuration.
	cfg := config.Load()

	// Initialize structured logger via shared observability package.
	logger := observability.InitLogger(observability.LogConfig{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: serviceName,
	})

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger.Info("starting reputationd",
		"version", version,
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
		"store", cfg.StoreDriver,
	)

	// Initialize tracing.
	shutdownTracer, err := observability.InitTracer(ctx, observability.TracingConfig{
		ServiceName:    serviceName,
		ServiceVersion: version,
		Endpoint:       cfg.OTLPEndpoint,
		Insecure:       true,
		SampleRatio:    cfg.TraceSampleRatio,
	})
	if err != nil {
		logger.Warn("failed to initialize tracer, continuing without tracing", "error", err)
	} else {
		defer func() {
			flushCtx, flushCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer flushCancel()
			_ = shutdownTracer(flushCtx)
		}()
	}

	// Initialize metrics.
	meterProvider, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName:    serviceName,
		ServiceVersion: version,
	})
	if err != nil {
		logger.Error("failed to initialize metrics", "error", err)
		os.Exit(1)
	}
	defer func() { _ = meterProvider.Shutdown(context.Background()) }()

	checkMetrics, err := metrics.NewRecorder(meterProvider.Meter(serviceName))
	if err != nil {
		logger.Error("failed to register check metrics", "error", err)
		os.Exit(1)
	}

	// Engine rules.
	rules := service.DefaultRules()
	if cfg.RulesFile != "" {
		rules, err = config.LoadRules(cfg.RulesFile)
		if err != nil {
			logger.Error("failed to load rules", "path", cfg.RulesFile, "error", err)
			os.Exit(1)
		}
		logger.Info("loaded engine rules", "path", cfg.RulesFile)
	}

	// Store.
	dbCtx, dbCancel := context.WithTimeout(ctx, 30*time.Second)
	stores, err := storage.Open(dbCtx, cfg, logger)
	dbCancel()
	if err != nil {
		logger.Error("failed to open store", "error", err)
		os.Exit(1)
	}
	defer stores.Close()

	// Reputation feed.
	var reputationFeed port.ReputationFeed
	if cfg.SafeBrowsingAPIKey != "" {
		reputationFeed = feed.NewSafeBrowsingClient(cfg.SafeBrowsingAPIKey, cfg.SafeBrowsingURL, version)
		logger.Info("safe browsing feed enabled", "timeout", cfg.FeedTimeout)
	}

	engine, err := service.NewEngine(rules, service.EngineDeps{
		Blacklist:   stores.Blacklist,
		Feed:        reputationFeed,
		FeedTimeout: cfg.FeedTimeout,
		Logger:      logger,
	})
	if err != nil {
		logger.Error("failed to build engine", "error", err)
		os.Exit(1)
	}

	// Event publishing.
	kafkaCfg := pkgkafka.Config{
		Brokers:       pkgkafka.ParseBrokers(cfg.KafkaBrokers),
		ClientID:      serviceName,
		ConsumerGroup: cfg.KafkaConsumerGroup,
		TLS:           cfg.KafkaTLS,
		SASLEnabled:   cfg.KafkaSASLMechanism != "",
		SASLMechanism: cfg.KafkaSASLMechanism,
		SASLUsername:  cfg.KafkaSASLUsername,
		SASLPassword:  cfg.KafkaSASLPassword,
	}

	var publisher port.EventPublisher = messaging.NewLogPublisher(logger)
	if kafkaCfg.Enabled() {
		producer, err := pkgkafka.NewProducer(kafkaCfg)
		if err != nil {
			logger.Error("failed to create kafka producer", "error", err)
			os.Exit(1)
		}
		defer producer.Close()
		publisher = kafka.NewPublisher(producer, cfg.KafkaTopic, logger)
		logger.Info("publishing events to kafka", "topic", cfg.KafkaTopic)
	}

	// Wire use cases.
	recorder := usecase.NewCheckRecorder(stores.RequestLog, stores.Statistics, publisher, checkMetrics, logger)
	checkURLUC := usecase.NewCheckURL(engine, recorder)
	checkHashUC := usecase.NewCheckHash(engine, recorder)
	statisticsUC := usecase.NewGetStatistics(stores.Statistics)
	blacklistUC := usecase.NewManageBlacklist(stores.Blacklist, logger)

	// Authentication.
	jwtService, err := newJWTService(cfg)
	if err != nil {
		logger.Error("failed to configure authentication", "error", err)
		os.Exit(1)
	}
	if jwtService == nil {
		logger.Warn("JWT_SECRET and JWT_PUBLIC_KEY_FILE unset, serving anonymous checks only")
	}

	// Transport security.
	var grpcCreds credentials.TransportCredentials
	if cfg.TLSEnabled() {
		grpcCreds, err = tlsutil.ServerCredentials(cfg.TLSCertFile, cfg.TLSKeyFile)
		if err != nil {
			logger.Error("failed to load TLS credentials", "error", err)
			os.Exit(1)
		}
	}

	// gRPC server.
	grpcHandler := grpcpresentation.NewReputationServiceHandler(checkURLUC, checkHashUC, logger)
	grpcServer := grpcpresentation.NewServer(grpcHandler, grpcpresentation.ServerConfig{
		Creds:      grpcCreds,
		JWT:        jwtService,
		Address:    cfg.GRPCAddress(),
		Reflection: cfg.GRPCReflection,
	}, logger)

	// HTTP server.
	router := rest.NewRouter(rest.RouterConfig{
		CheckURL:   checkURLUC,
		CheckHash:  checkHashUC,
		Statistics: statisticsUC,
		Blacklist:  blacklistUC,
		JWT:        jwtService,
		Metrics:    metricsHandler,
		Readiness:  map[string]port.Pinger{"store": stores.Pinger},
		Logger:     logger,
		RateLimit:  cfg.RateLimit,
		RateBurst:  cfg.RateBurst,
	})

	httpServer := &http.Server{
		Addr:         cfg.HTTPAddress(),
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start servers.
	errCh := make(chan error, 3)

	go func() {
		if err := grpcServer.Start(); err != nil {
			errCh <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	go func() {
		logger.Info("HTTP server starting", "address", cfg.HTTPAddress(), "tls", cfg.TLSEnabled())
		var err error
		if cfg.TLSEnabled() {
			err = httpServer.ListenAndServeTLS(cfg.TLSCertFile, cfg.TLSKeyFile)
		} else {
			err = httpServer.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Blacklist updates from threat-intel producers.
	if kafkaCfg.Enabled() && cfg.KafkaBlacklistTopic != "" {
		consumer, err := pkgkafka.NewConsumer(kafkaCfg, cfg.KafkaBlacklistTopic,
			kafka.NewBlacklistHandler(blacklistUC, logger), logger)
		if err != nil {
			logger.Error("failed to create blacklist consumer", "error", err)
			os.Exit(1)
		}
		defer consumer.Close()

		go func() {
			if err := consumer.Start(ctx); err != nil {
				errCh <- fmt.Errorf("blacklist consumer error: %w", err)
			}
		}()
	}

	logger.Info("reputationd started",
		"grpc_address", cfg.GRPCAddress(),
		"http_address", cfg.HTTPAddress(),
		"environment", cfg.Environment,
	)

	// Wait for shutdown signal.
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	// Graceful shutdown.
	logger.Info("shutting down reputationd")
	cancel()

	grpcServer.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("reputationd stopped")
}

// newJWTService returns nil when no key material is configured.
func newJWTService(cfg *config.Config) (*auth.JWTService, error) {
	if !cfg.AuthEnabled() {
		return nil, nil
	}

	jwtCfg := auth.JWTConfig{Secret: cfg.JWTSecret, Issuer: cfg.JWTIssuer}
	if cfg.JWTPublicKeyFile != "" {
		pem, err := auth.LoadKeyFromFile(cfg.JWTPublicKeyFile)
		if err != nil {
			return nil, err
		}
		jwtCfg.PublicKeyPEM = string(pem)
	}
	return auth.NewJWTService(jwtCfg)
}
