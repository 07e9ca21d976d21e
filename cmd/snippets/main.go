package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/snippets/pkg/auth"
	"github.com/dmitrymomot/snippets/pkg/clientip"
	"github.com/dmitrymomot/snippets/pkg/config"
	"github.com/dmitrymomot/snippets/pkg/email"
	"github.com/dmitrymomot/snippets/pkg/environment"
	"github.com/dmitrymomot/snippets/pkg/httpserver"
	"github.com/dmitrymomot/snippets/pkg/jwt"
	"github.com/dmitrymomot/snippets/pkg/logger"
	"github.com/dmitrymomot/snippets/pkg/password"
	"github.com/dmitrymomot/snippets/pkg/pg"
	"github.com/dmitrymomot/snippets/pkg/ratelimiter"
	"github.com/dmitrymomot/snippets/pkg/redis"
	"github.com/dmitrymomot/snippets/pkg/requestid"
	"github.com/dmitrymomot/snippets/pkg/response"
	"github.com/dmitrymomot/snippets/pkg/session"
	"github.com/dmitrymomot/snippets/pkg/userstore"
)

const sessionCleanupInterval = time.Hour

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		slog.Error("snippets stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var (
		appCfg     config.App
		logCfg     logger.Config
		sessionCfg session.Config
		authCfg    auth.Config
		pgCfg      pg.Config
		redisCfg   redis.Config
		emailCfg   email.Config
		serverCfg  httpserver.Config
		limitCfg   ratelimiter.Config
	)
	for _, load := range []func() error{
		func() error { return config.Load(&appCfg) },
		func() error { return config.Load(&logCfg) },
		func() error { return config.Load(&sessionCfg) },
		func() error { return config.Load(&authCfg) },
		func() error { return config.Load(&pgCfg) },
		func() error { return config.Load(&redisCfg) },
		func() error { return config.Load(&emailCfg) },
		func() error { return config.Load(&serverCfg) },
		func() error { return config.Load(&limitCfg) },
	} {
		if err := load(); err != nil {
			return err
		}
	}

	env := appCfg.Environment()
	log := logger.NewFromConfig(logCfg, env, appCfg.Service,
		logger.WithContextExtractors(environment.LoggerExtractor(), requestid.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	pool, err := pg.Connect(ctx, pgCfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := pg.Migrate(ctx, pool, userstore.Migrations, userstore.MigrationsDir, pgCfg, log); err != nil {
		return err
	}

	pgStore := userstore.NewPostgres(pool)
	var store auth.Store = pgStore
	checks := []httpserver.Check{pg.Healthcheck(pool)}

	var limitStore ratelimiter.Store

	if redisCfg.Enabled() {
		client, err := redis.Connect(ctx, redisCfg)
		if err != nil {
			return err
		}
		defer func() { _ = client.Close() }()

		store = userstore.NewRedisSessionCache(pgStore, client,
			userstore.WithKeyPrefix(redisCfg.KeyPrefix),
			userstore.WithCacheLogger(log),
		)
		checks = append(checks, redis.Healthcheck(client))
		limitStore = ratelimiter.NewRedisStore(client, ratelimiter.WithKeyPrefix(redisCfg.KeyPrefix+"ratelimit:"))
	} else {
		mem := ratelimiter.NewMemoryStore()
		defer mem.Close()
		limitStore = mem
	}

	limiter, err := ratelimiter.NewBucket(limitStore, limitCfg)
	if err != nil {
		return err
	}

	sessionCfg.SecureCookies = sessionCfg.SecureCookies || appCfg.SecureCookies()
	sessions, err := session.NewFromConfig(sessionCfg)
	if err != nil {
		return fmt.Errorf("session manager: %w", err)
	}

	hasher, err := password.NewHasher()
	if err != nil {
		return fmt.Errorf("password hasher: %w", err)
	}

	tokens, err := jwt.NewFromString(sessionCfg.Secret)
	if err != nil {
		return fmt.Errorf("jwt service: %w", err)
	}

	sender, err := newEmailSender(emailCfg, env, log)
	if err != nil {
		return err
	}
	mailer := email.NewVerificationMailer(
		email.WithRetry(sender, emailCfg.RetryAttempts, emailCfg.RetryDelay),
		appCfg.Name, appCfg.URL,
		email.WithLogger(log),
	)

	svc, err := auth.NewService(store, sessions, hasher, tokens, mailer,
		auth.WithConfig(authCfg),
		auth.WithLogger(log.With(logger.Component("auth"))),
	)
	if err != nil {
		return fmt.Errorf("auth service: %w", err)
	}
	defer svc.Wait()

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(clientip.Middleware)
	r.Use(environment.Middleware(env))
	r.Use(sessions.Middleware)
	r.NotFound(response.NotFound)
	r.MethodNotAllowed(response.MethodNotAllowed)
	r.Get("/health/live", httpserver.LivenessHandler())
	r.Get("/health/ready", httpserver.ReadinessHandler(log, checks...))
	r.Mount("/api/v1/auth", auth.NewHandler(svc,
		auth.WithCredentialsMiddleware(ratelimiter.Middleware(limiter,
			ratelimiter.Composite(ratelimiter.ByIP, ratelimiter.ByPath),
			ratelimiter.WithLogger(log),
		)),
	).Routes())

	srv := httpserver.NewFromConfig(serverCfg, httpserver.WithLogger(log))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		return srv.Run(ctx, r)
	})
	g.Go(func() error {
		return cleanupSessions(ctx, pgStore, log)
	})

	log.InfoContext(ctx, "snippets started",
		slog.String("addr", serverCfg.Addr()),
		slog.String("env", env.String()),
	)

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func newEmailSender(cfg email.Config, env environment.Environment, log *slog.Logger) (email.EmailSender, error) {
	if cfg.UsePostmark() {
		sender, err := email.NewPostmarkClient(cfg)
		if err != nil {
			return nil, err
		}
		return sender, nil
	}
	if env.IsProduction() {
		return nil, fmt.Errorf("%w: postmark tokens are required in production", email.ErrInvalidConfig)
	}
	log.Warn("postmark is not configured, writing emails to disk", slog.String("dir", cfg.DevDir))
	return email.NewDevSender(cfg.DevDir), nil
}

// cleanupSessions drops expired session rows until ctx is done.
func cleanupSessions(ctx context.Context, store *userstore.Postgres, log *slog.Logger) error {
	ticker := time.NewTicker(sessionCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			n, err := store.DeleteExpiredSessions(ctx)
			if err != nil {
				log.ErrorContext(ctx, "failed to delete expired sessions", logger.Error(err))
				continue
			}
			if n > 0 {
				log.DebugContext(ctx, "expired sessions deleted", slog.Int("count", n))
			}
		}
	}
}
