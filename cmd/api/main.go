package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"health-record-vault/config"
	s3Blob "health-record-vault/internal/adapter/blob/s3"
	httpHandler "health-record-vault/internal/adapter/http/handler"
	"health-record-vault/internal/adapter/http/middleware"
	"health-record-vault/internal/adapter/keys"
	memStorage "health-record-vault/internal/adapter/storage/memory"
	pgStorage "health-record-vault/internal/adapter/storage/postgres"
	redisStorage "health-record-vault/internal/adapter/storage/redis"
	"health-record-vault/internal/core/domain"
	"health-record-vault/internal/core/ports"
	"health-record-vault/internal/metrics"
	"health-record-vault/internal/service"
	"health-record-vault/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// backends groups the persistence and TTL stores selected by config.
type backends struct {
	records    ports.RecordRepository
	audit      ports.AuditRepository
	stats      ports.UserStatsRepository
	transactor ports.DBTransactor
	nonces     ports.NonceStore
	attempts   ports.AttemptCounter
	replay     ports.PurchaseReplayCache
	rateLimit  *redisStorage.RateLimitStore
	checkers   []ports.HealthChecker
	closers    []func()
}

func (b *backends) close() {
	for i := len(b.closers) - 1; i >= 0; i-- {
		b.closers[i]()
	}
}

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Str("store", cfg.Store.Driver).
		Int("port", cfg.Server.Port).
		Msg("Starting Health Record Vault")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("jwt.secret is required")
	}

	ctx := context.Background()

	// Storage backends
	be, err := newBackends(ctx, cfg, logger.Component(log, "storage"))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize storage")
	}
	defer be.close()

	// Record key
	keyProvider, err := newKeyProvider(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize key provider")
	}
	keyCtx, keyCancel := context.WithTimeout(ctx, 10*time.Second)
	key, err := keyProvider.Key(keyCtx)
	keyCancel()
	if err != nil {
		log.Fatal().Err(err).Str("source", cfg.Encryption.KeySource).Msg("Failed to load record key")
	}

	// Attachment store
	var blobs ports.BlobStore
	if cfg.Blob.Driver == "s3" {
		s3Client, err := s3Blob.NewClient(ctx, cfg.Blob, logger.Component(log, "blob"))
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize S3 client")
		}
		blobStore := s3Blob.NewBlobStore(s3Client, cfg.Blob.Bucket, cfg.Blob.Prefix)
		blobs = blobStore
		be.checkers = append(be.checkers, blobStore)
	}

	m := metrics.New(prometheus.DefaultRegisterer)
	retry := service.RetryPolicy{MaxRetries: cfg.Retry.MaxRetries, Backoff: cfg.Retry.Backoff, Metrics: m}

	// Initialize core services
	envelopeSvc, err := service.NewEnvelopeService(key, domain.AlgorithmVersion(cfg.Encryption.Version))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize envelope service")
	}
	integritySvc := service.NewChecksumService()
	phiDetector := service.NewRegexPHIDetector(service.DefaultPHIRules()...)
	signer := service.NewHMACNotificationSigner()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	notifier := service.NewHTTPNotifier(
		cfg.Notification.URL,
		cfg.Notification.Secret,
		signer,
		&http.Client{Timeout: cfg.Notification.Timeout},
		logger.Component(log, "notifier"),
	)

	// Initialize business services
	auditSvc := service.NewAuditService(be.audit, be.transactor, service.AuditPolicy{
		Retention:         cfg.Audit.Retention,
		BusinessStartHour: cfg.Audit.BusinessStartHour,
		BusinessEndHour:   cfg.Audit.BusinessEndHour,
		Location:          cfg.Audit.Location(),
	}, m, logger.Component(log, "audit"))
	accessSvc := service.NewAccessControlService(be.records, auditSvc, be.transactor, retry, m, logger.Component(log, "access"))
	recordSvc := service.NewRecordService(service.RecordServiceDeps{
		Records:    be.records,
		Stats:      be.stats,
		Audit:      auditSvc,
		Access:     accessSvc,
		Envelope:   envelopeSvc,
		Integrity:  integritySvc,
		PHI:        phiDetector,
		Blobs:      blobs,
		Attempts:   be.attempts,
		Transactor: be.transactor,
		Retry:      retry,
		Attempt: service.AttemptPolicy{
			Window:    cfg.Access.AttemptWindow,
			Threshold: cfg.Access.AttemptThreshold,
		},
		Metrics: m,
	}, logger.Component(log, "records"))
	purchaseSvc := service.NewPurchaseService(
		be.records,
		be.stats,
		auditSvc,
		accessSvc,
		be.replay,
		be.transactor,
		retry,
		service.PurchasePolicy{
			AccessDuration:   cfg.Access.PurchaseDuration,
			MinConfirmations: cfg.Access.MinConfirmations,
		},
		m,
		logger.Component(log, "purchase"),
	)
	emergencySvc := service.NewEmergencyService(
		be.records,
		accessSvc,
		auditSvc,
		notifier,
		be.transactor,
		retry,
		cfg.Notification.Timeout,
		m,
		logger.Component(log, "emergency"),
	)
	statsSvc := service.NewStatsService(be.stats)

	rules := middleware.DefaultRateLimitRules()
	if cfg.Server.RateLimit > 0 {
		rules["records_read"] = middleware.RateLimitRule{Limit: int64(cfg.Server.RateLimit), Window: time.Minute}
	}

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		RecordSvc:      recordSvc,
		AccessSvc:      accessSvc,
		PurchaseSvc:    purchaseSvc,
		EmergencySvc:   emergencySvc,
		StatsSvc:       statsSvc,
		TokenSvc:       tokenSvc,
		NonceStore:     be.nonces,
		NonceTTL:       cfg.Server.NonceTTL,
		RateLimitStore: be.rateLimit,
		RateLimitRules: rules,
		HealthCheckers: be.checkers,
		Gatherer:       prometheus.DefaultGatherer,
		MaxBodyBytes:   cfg.Server.MaxBodyBytes,
		Mode:           cfg.Server.Mode,
		IssueTokens:    cfg.Server.Mode == gin.DebugMode,
		Logger:         logger.Component(log, "http"),
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// newBackends connects the configured store. The memory driver keeps
// everything in process and disables rate limiting.
func newBackends(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*backends, error) {
	switch cfg.Store.Driver {
	case "memory":
		store := memStorage.New()
		counters := memStorage.NewCounters()
		log.Warn().Msg("Using in-memory store; data is lost on restart")
		return &backends{
			records:    memStorage.NewRecordRepo(store),
			audit:      memStorage.NewAuditRepo(store),
			stats:      memStorage.NewUserStatsRepo(store),
			transactor: store,
			nonces:     counters,
			attempts:   counters,
			replay:     counters,
			checkers:   []ports.HealthChecker{store},
		}, nil

	case "postgres", "":
		be := &backends{}

		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			return nil, fmt.Errorf("connecting to postgres: %w", err)
		}
		be.closers = append(be.closers, pool.Close)
		log.Info().Msg("PostgreSQL connected")

		if err := pgStorage.Migrate(ctx, pool, log); err != nil {
			be.close()
			return nil, fmt.Errorf("migrating schema: %w", err)
		}

		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			be.close()
			return nil, fmt.Errorf("connecting to redis: %w", err)
		}
		be.closers = append(be.closers, func() { _ = rdb.Close() })
		log.Info().Msg("Redis connected")

		be.records = pgStorage.NewRecordRepo(pool)
		be.audit = pgStorage.NewAuditRepo(pool)
		be.stats = pgStorage.NewUserStatsRepo(pool)
		be.transactor = pgStorage.NewTransactor(pool)
		be.nonces = redisStorage.NewNonceStore(rdb)
		be.attempts = redisStorage.NewAttemptCounter(rdb)
		be.replay = redisStorage.NewPurchaseReplayCache(rdb)
		be.rateLimit = redisStorage.NewRateLimitStore(rdb)
		be.checkers = []ports.HealthChecker{
			pgStorage.NewHealthCheck(pool),
			redisStorage.NewHealthCheck(rdb),
		}
		return be, nil

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

// newKeyProvider selects the record key source.
func newKeyProvider(cfg *config.Config) (ports.KeyProvider, error) {
	switch cfg.Encryption.KeySource {
	case "static", "":
		return keys.NewStaticProvider(cfg.Encryption.Key)
	case "passphrase":
		return keys.NewPassphraseProvider(cfg.Encryption.Passphrase, cfg.Encryption.Salt)
	case "vault":
		client, err := keys.NewVaultClient(cfg.Vault)
		if err != nil {
			return nil, err
		}
		return keys.NewVaultProvider(client, cfg.Encryption.VaultPath, cfg.Encryption.VaultField), nil
	default:
		return nil, fmt.Errorf("unknown encryption key source %q", cfg.Encryption.KeySource)
	}
}
