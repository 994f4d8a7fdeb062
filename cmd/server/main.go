package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/terroir-ai/backend/internal/config"
	"github.com/terroir-ai/backend/internal/handler"
	"github.com/terroir-ai/backend/internal/logging"
	"github.com/terroir-ai/backend/internal/repository"
	"github.com/terroir-ai/backend/internal/service"
	"github.com/terroir-ai/backend/pkg/auth"
	"github.com/terroir-ai/backend/pkg/mail"
)

// maxBodySize caps JSON request bodies on the public API.
const maxBodySize = 64 * 1024

func main() {
	_ = godotenv.Load()
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("failed to load configuration", "error", err)
	}

	pool, err := repository.NewPool(context.Background(), cfg.DatabaseURL, cfg.DBMaxConnections)
	if err != nil {
		logging.Fatal("failed to connect to database", "error", err)
	}
	defer pool.Close()

	blogRepo := repository.NewPgBlogRepository(pool)
	contactRepo := repository.NewPgContactRepository(pool)
	waitlistRepo := repository.NewPgWaitlistRepository(pool)
	analyticsRepo := repository.NewPgAnalyticsRepository(pool)
	experimentRepo := repository.NewPgExperimentRepository(pool)
	statsRepo := repository.NewPgStatsRepository(pool)

	mailer := mail.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.AdminEmail, cfg.AppBaseURL)
	if !mailer.Enabled() {
		slog.Info("email notifications disabled, SMTP settings incomplete")
	}

	blogService := service.NewBlogService(blogRepo)
	contactService := service.NewContactService(contactRepo, mailer)
	waitlistService := service.NewWaitlistService(waitlistRepo, mailer)
	analyticsService := service.NewAnalyticsService(analyticsRepo)
	experimentService := service.NewExperimentService(experimentRepo)
	statsService := service.NewStatsService(statsRepo)

	healthHandler := handler.NewHealthHandler(pool)
	blogHandler := handler.NewBlogHandler(blogService)
	contactHandler := handler.NewContactHandler(contactService)
	waitlistHandler := handler.NewWaitlistHandler(waitlistService)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)
	experimentHandler := handler.NewExperimentHandler(experimentService)
	adminHandler := handler.NewAdminHandler(contactService, waitlistService, statsService)
	sitemapHandler := handler.NewSitemapHandler(blogService, cfg.AppBaseURL)

	submitLimiter := handler.NewIPRateLimiter(1, 5)

	r := chi.NewRouter()
	r.Use(handler.RequestLogger)
	r.Use(handler.Metrics)
	r.Use(handler.SecurityHeaders)
	r.Use(handler.CORS(cfg.CORSOrigin))
	r.Use(handler.MaxBodyBytes(maxBodySize))

	r.Get("/sitemap.xml", sitemapHandler.Sitemap)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.Health)
		r.Get("/blog", blogHandler.List)
		r.Get("/blog/{slug}", blogHandler.Get)
		r.Get("/experiments", experimentHandler.List)
		r.Post("/experiments", experimentHandler.Create)

		// Public write endpoints get the coarse per-IP shield on top of
		// the per-email quota the services enforce.
		r.Group(func(r chi.Router) {
			r.Use(submitLimiter.Middleware)
			r.Post("/contact", contactHandler.Submit)
			r.Post("/waitlist", waitlistHandler.Signup)
			r.Post("/analytics/pageview", analyticsHandler.PageView)
			r.Post("/analytics/event", analyticsHandler.Event)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(auth.RequireAdminToken(cfg.AdminToken))
			r.Get("/stats", adminHandler.Stats)
			r.Get("/contacts", adminHandler.Contacts)
			r.Get("/waitlist", adminHandler.Waitlist)
		})
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr, "environment", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
