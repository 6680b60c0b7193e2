package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gitea.com/go-chi/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/blogem/visitlog/authenticator"
	"github.com/blogem/visitlog/config"
	"github.com/blogem/visitlog/controllers"
	"github.com/blogem/visitlog/database"
	"github.com/blogem/visitlog/logger"
	authmiddleware "github.com/blogem/visitlog/middleware"
	"github.com/blogem/visitlog/repositories"
	"github.com/blogem/visitlog/services"
	"github.com/blogem/visitlog/visitor"
)

// redisMaxEntries caps the visit list kept in redis
const redisMaxEntries = 100000

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()
	log := logger.Get()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalw("failed to load configuration", "error", err)
	}

	repos, closeStore, err := openStore(cfg)
	if err != nil {
		log.Fatalw("failed to open visitor log store", "store", cfg.Store, "error", err)
	}
	defer closeStore()

	// Initialize services
	srvs := services.NewServices(repos)

	// Initialize controllers
	ctrl := controllers.NewControllers(srvs)

	dispatcher := visitor.NewDispatcher(visitor.DispatcherConfig{
		Workers:    cfg.Audit.Workers,
		BufferSize: cfg.Audit.BufferSize,
		DropIfFull: cfg.Audit.DropIfFull,
		Timeout:    cfg.Audit.Timeout,
	}, repos.Visits, log)

	registry := visitor.NewRegistry()
	registry.RegisterTitles(controllers.DefaultTitles)
	registry.RegisterTitles(cfg.Audit.Titles)

	interceptor := visitor.NewInterceptor(registry, dispatcher, log)

	var auth authenticator.Provider
	if cfg.OIDC.Enabled() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		p, err := authenticator.NewOIDCProvider(ctx, authenticator.Config{
			Domain:       cfg.OIDC.Domain,
			ClientID:     cfg.OIDC.ClientID,
			ClientSecret: cfg.OIDC.ClientSecret,
			CallbackURL:  cfg.OIDC.CallbackURL,
		})
		cancel()
		if err != nil {
			log.Fatalw("failed to initialize OIDC provider", "domain", cfg.OIDC.Domain, "error", err)
		}
		auth = p
	} else {
		log.Warn("OIDC is not configured, admin routes are unreachable")
	}

	r, err := setupRouter(cfg, ctrl, interceptor, auth)
	if err != nil {
		log.Fatalw("failed to setup router", "error", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infow("visitlog starting", "port", cfg.Port, "store", cfg.Store, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("server failed", "error", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server shutdown failed", "error", err)
	}

	// Handlers are done; flush what is still queued
	dispatcher.Close()
	log.Infow("visitor log dispatcher stopped", "dropped", dispatcher.Dropped(), "failed", dispatcher.Failed())
}

// openStore builds the repositories for the configured store kind
func openStore(cfg *config.Config) (*repositories.Repositories, func(), error) {
	switch cfg.Store {
	case config.StoreRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := rdb.Ping(ctx).Err(); err != nil {
			rdb.Close()
			return nil, nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Redis.Addr, err)
		}

		return repositories.NewRedisRepositories(rdb, redisMaxEntries), func() { rdb.Close() }, nil

	default:
		db, err := database.Initialize(cfg.Database.Path)
		if err != nil {
			return nil, nil, err
		}
		return repositories.NewRepositories(db), func() { db.Close() }, nil
	}
}

// setupRouter configures all routes
func setupRouter(cfg *config.Config, ctrl *controllers.Controllers, interceptor *visitor.Interceptor, auth authenticator.Provider) (*chi.Mux, error) {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second)) // 60 second timeout for OAuth callbacks
	r.Use(middleware.Compress(5))

	// Session middleware
	sessionHandler, err := session.Sessioner(session.Options{
		Provider:       "memory",
		ProviderConfig: "",
		CookieName:     "visitlog_session",
		Secure:         cfg.UseHTTPS,
		Gclifetime:     3600,
		Maxlifetime:    3600,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session: %w", err)
	}
	r.Use(sessionHandler)

	// PUBLIC ROUTES
	r.Get("/", ctrl.Health.Index)
	r.Get("/health", ctrl.Health.Check)

	// Audited blog routes
	r.Get("/blog/{id}", controllers.Handle(interceptor.Wrap(controllers.ArticleHandler, ctrl.Blog.Article)))
	r.Get("/blog/{id}/stats", controllers.Handle(interceptor.WrapHandler(controllers.StatsHandler, ctrl.Blog.Stats())))
	r.Get("/archives", controllers.Handle(interceptor.Wrap(controllers.ArchivesHandler, ctrl.Blog.Archives)))

	if auth != nil {
		r.Get("/login", ctrl.Auth.Login(auth))
		r.Get("/callback", ctrl.Auth.Callback(auth))
		r.Get("/logout", ctrl.Auth.Logout)
	}

	// PROTECTED ROUTES (authentication required)
	r.Group(func(r chi.Router) {
		r.Use(authmiddleware.RequireAuth)

		r.Route("/admin/visits", func(r chi.Router) {
			r.Get("/", controllers.Handle(ctrl.Visits.List))
			r.Get("/entities/{id}", controllers.Handle(ctrl.Visits.EntityViews))
		})
	})

	return r, nil
}
