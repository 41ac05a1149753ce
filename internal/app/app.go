package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/storefront-backend/internal/adapter/postgres"
	"github.com/heartmarshall/storefront-backend/internal/adapter/postgres/item"
	"github.com/heartmarshall/storefront-backend/internal/adapter/postgres/page"
	"github.com/heartmarshall/storefront-backend/internal/adapter/postgres/profile"
	"github.com/heartmarshall/storefront-backend/internal/adapter/postgres/reply"
	"github.com/heartmarshall/storefront-backend/internal/adapter/postgres/suggestion"
	"github.com/heartmarshall/storefront-backend/internal/adapter/postgres/upvote"
	"github.com/heartmarshall/storefront-backend/internal/adapter/postgres/version"
	"github.com/heartmarshall/storefront-backend/internal/adapter/postgres/vote"
	"github.com/heartmarshall/storefront-backend/internal/auth"
	"github.com/heartmarshall/storefront-backend/internal/config"
	"github.com/heartmarshall/storefront-backend/internal/live"
	"github.com/heartmarshall/storefront-backend/internal/loader"
	"github.com/heartmarshall/storefront-backend/internal/service/forum"
	"github.com/heartmarshall/storefront-backend/internal/service/roadmap"
	"github.com/heartmarshall/storefront-backend/internal/service/storefront"
	"github.com/heartmarshall/storefront-backend/internal/transport/middleware"
	"github.com/heartmarshall/storefront-backend/internal/transport/rest"
	"github.com/heartmarshall/storefront-backend/internal/transport/ws"
)

// Run is the application entry point. It loads configuration, connects to
// the database, serves HTTP until ctx is cancelled and then shuts down
// gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log, os.Stderr)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	srv := NewServer(cfg, pool, logger)
	defer srv.Close()

	httpSrv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      srv.Handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", httpSrv.Addr))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Hijacked WebSocket connections are not tracked by Shutdown.
	srv.hub.Close()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("stopped")
	return nil
}

// Server is the fully wired HTTP application.
type Server struct {
	Handler http.Handler

	hub     *ws.Hub
	limiter *middleware.RateLimiter
}

// NewServer wires repositories, services and transport on top of pool.
func NewServer(cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) *Server {
	txm := postgres.NewTxManager(pool)

	// Repositories.
	versionRepo := version.New(pool)
	itemRepo := item.New(pool)
	voteRepo := vote.New(pool)
	suggestionRepo := suggestion.New(pool)
	replyRepo := reply.New(pool)
	upvoteRepo := upvote.New(pool)
	profileRepo := profile.New(pool)
	pageRepo := page.New(pool)

	// Services.
	roadmapService := roadmap.NewService(logger, versionRepo, itemRepo, voteRepo, suggestionRepo, txm)
	forumService := forum.NewService(logger, suggestionRepo, replyRepo, upvoteRepo, profileRepo, txm)
	storefrontService := storefront.NewService(logger, pageRepo, storefront.Defaults{
		Theme:       cfg.Roadmap.DefaultTheme,
		CardOpacity: cfg.Roadmap.DefaultCardOpacity,
		Expanded:    cfg.Roadmap.DefaultExpanded,
	})

	svcs := live.Services{
		Roadmap: roadmapService,
		Forum:   forumService,
		Pages:   storefrontService,
		Log:     logger,
	}

	jwtMgr := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	hub := ws.NewHub(logger)
	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)

	router := rest.NewRouter(rest.RouterDeps{
		Health:      rest.NewHealthHandler(pool, BuildVersion()),
		Roadmap:     rest.NewRoadmapHandler(roadmapService, storefrontService, logger),
		Forum:       rest.NewForumHandler(forumService, logger),
		Storefront:  rest.NewStorefrontHandler(storefrontService, logger),
		Page:        rest.NewPageHandler(svcs, hub, logger),
		Live:        ws.NewHandler(hub, svcs, cfg.WebSocket, cfg.CORS, logger),
		Loaders:     &loader.Repos{Profile: profileRepo},
		Changes:     hub,
		SubmitLimit: limiter.Limit(cfg.RateLimit.SubmitPerMinute),
	})

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwtMgr),
	)(router)

	return &Server{Handler: handler, hub: hub, limiter: limiter}
}

// Close disconnects live sessions and stops background cleanup.
func (s *Server) Close() {
	s.hub.Close()
	s.limiter.Stop()
}
