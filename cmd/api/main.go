// Package main is the entry point for the mentoria platform API.
//
// The service pairs volunteer mentors with mentees, guarded by an admin
// approval and matching workflow:
// - Domain: scoring, selection, and the request/mentorship state machines
// - Application: commands, queries, and the access gate
// - Infrastructure: Postgres, Redis, SMTP
// - Interface: the REST API
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mentoria-hub/mentoria-platform/config"
	"github.com/mentoria-hub/mentoria-platform/internal/application/auth"
	"github.com/mentoria-hub/mentoria-platform/internal/application/command"
	"github.com/mentoria-hub/mentoria-platform/internal/application/query"
	"github.com/mentoria-hub/mentoria-platform/internal/domain/matching"
	"github.com/mentoria-hub/mentoria-platform/internal/infrastructure/notification"
	"github.com/mentoria-hub/mentoria-platform/internal/infrastructure/persistence/postgres"
	"github.com/mentoria-hub/mentoria-platform/internal/infrastructure/persistence/redis"
	httpserver "github.com/mentoria-hub/mentoria-platform/internal/interface/http"
	"github.com/mentoria-hub/mentoria-platform/pkg/logger"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// ─────────────────────────────────────────────────────────────────────────
	// 1. CONFIGURATION
	// ─────────────────────────────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 2. LOGGING
	// ─────────────────────────────────────────────────────────────────────────
	log := setupLogger(cfg)
	log.Info("starting mentoria platform API",
		logger.String("env", string(cfg.App.Environment)),
		logger.String("version", cfg.App.Version),
	)

	// ─────────────────────────────────────────────────────────────────────────
	// 3. POSTGRES
	// ─────────────────────────────────────────────────────────────────────────
	log.Info("connecting to database")
	dbConn, err := postgres.Connect(ctx, cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		log.Info("closing database connection")
		dbConn.Close()
	}()

	log.Info("running database migrations")
	if err := postgres.NewMigrator(dbConn).Migrate(ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 4. REDIS (optional identity cache)
	// ─────────────────────────────────────────────────────────────────────────
	var identityCache auth.IdentityCache
	var redisPinger httpserver.Pinger

	if !cfg.Redis.Disabled {
		log.Info("connecting to Redis")
		redisCache, err := redis.NewCache(redis.Config{
			Host:         cfg.Redis.Host,
			Port:         cfg.Redis.Port,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
		})
		if err != nil {
			// The gate falls back to resolving identities from Postgres.
			log.Warn("failed to connect to Redis, identity caching disabled", logger.Err(err))
		} else {
			defer redisCache.Close()
			identityCache = redis.NewIdentityCache(redisCache)
			redisPinger = redisCache
		}
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 5. REPOSITORIES
	// ─────────────────────────────────────────────────────────────────────────
	users := postgres.NewUserRepository(dbConn)
	roles := postgres.NewRoleResolver(dbConn)
	mentors := postgres.NewMentorRepository(dbConn)
	mentees := postgres.NewMenteeRepository(dbConn)
	universities := postgres.NewUniversityRepository(dbConn)
	requests := postgres.NewMatchRequestRepository(dbConn)
	mentorships := postgres.NewMentorshipRepository(dbConn)
	meetings := postgres.NewMeetingRepository(dbConn)
	certificates := postgres.NewCertificateRepository(dbConn)
	uowFactory := postgres.NewUnitOfWorkFactory(dbConn)

	// ─────────────────────────────────────────────────────────────────────────
	// 6. NOTIFICATION
	// ─────────────────────────────────────────────────────────────────────────
	var notifier command.MatchNotifier
	if cfg.SMTP.Disabled || cfg.SMTP.Host == "" {
		log.Info("SMTP disabled, match proposals are logged only")
		notifier = notification.NewLogMailer(log)
	} else {
		notifier = notification.NewMailer(cfg.SMTP, log)
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 7. MATCHING ENGINE
	// ─────────────────────────────────────────────────────────────────────────
	var scorer matching.Scorer
	switch cfg.Matching.Scorer {
	case "token":
		scorer = matching.NewTokenScorer()
	default:
		scorer = matching.NewLiteralScorer()
	}
	selector := matching.NewSelector(scorer)
	defaults := matching.SelectionOptions{
		TopK:     cfg.Matching.TopK,
		MinScore: cfg.Matching.MinScore,
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 8. APPLICATION LAYER
	// ─────────────────────────────────────────────────────────────────────────
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	gate := auth.NewGate(users, roles, tokens, identityCache, cfg.Auth.IdentityCacheTTL, log)
	registrar := auth.NewRegistrar(users, mentors, mentees, cfg.Auth.BcryptCost, log)

	eligibility := command.NewEligibilityChecker(requests, mentorships)
	createRequest := command.NewCreateMatchRequestHandler(mentors, mentees, users, requests, eligibility, scorer, notifier, log)
	pendingQueue := query.NewPendingQueueHandler(requests, mentors, mentees, users, log)

	// ─────────────────────────────────────────────────────────────────────────
	// 9. HTTP SERVER
	// ─────────────────────────────────────────────────────────────────────────
	httpConfig := httpserver.DefaultConfig()
	httpConfig.Host = cfg.HTTP.Host
	httpConfig.Port = cfg.HTTP.Port
	httpConfig.ReadTimeout = cfg.HTTP.ReadTimeout
	httpConfig.WriteTimeout = cfg.HTTP.WriteTimeout
	httpConfig.IdleTimeout = cfg.HTTP.IdleTimeout

	server := httpserver.NewServer(httpConfig, httpserver.Dependencies{
		Gate:      gate,
		Registrar: registrar,

		CreateRequest:    createRequest,
		AcceptRequest:    command.NewAcceptMatchRequestHandler(uowFactory, mentors, mentees, log),
		RejectRequest:    command.NewRejectMatchRequestHandler(requests, log),
		DeleteRequest:    command.NewDeleteMatchRequestHandler(requests, log),
		BulkMatch:        command.NewBulkMatchHandler(mentors, mentees, eligibility, selector, createRequest, defaults, log),
		ApproveAccount:   command.NewApproveAccountHandler(mentors, mentees, gate, log),
		UpdateMentorship: command.NewUpdateMentorshipHandler(mentorships, log),
		Universities:     command.NewUniversityHandler(universities, log),
		Meetings:         command.NewMeetingHandler(meetings, log),
		Certificates:     command.NewCertificateHandler(certificates, mentees, log),

		PendingQueue:    pendingQueue,
		GetRequest:      query.NewGetRequestHandler(pendingQueue, requests),
		Suggestions:     query.NewSuggestionsHandler(mentors, mentees, users, requests, mentorships, selector, defaults),
		Approvals:       query.NewApprovalsHandler(mentors, mentees, users, log),
		Mentorships:     query.NewMentorshipsHandler(mentorships),
		UniversityViews: query.NewUniversitiesHandler(universities),
		Engagement:      query.NewEngagementHandler(meetings, certificates),

		Postgres: dbConn,
		Redis:    redisPinger,
		Logger:   log,
	})

	errCh := server.StartAsync()

	// ─────────────────────────────────────────────────────────────────────────
	// 10. GRACEFUL SHUTDOWN
	// ─────────────────────────────────────────────────────────────────────────
	log.Info("mentoria platform API is running", logger.String("address", httpConfig.Address()))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("received shutdown signal", logger.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil {
			log.Error("server error", logger.Err(err))
			return err
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to stop HTTP server gracefully", logger.Err(err))
		return err
	}

	log.Info("shutdown completed")
	return nil
}

// setupLogger builds the root logger from observability settings.
func setupLogger(cfg *config.Config) *logger.Logger {
	return logger.New(logger.Options{
		Output:    os.Stdout,
		Level:     logger.ParseLevel(cfg.Observability.LogLevel),
		AddCaller: cfg.App.Debug,
	})
}
