package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/sec-engineering/site-api/internal/content"
	"github.com/sec-engineering/site-api/internal/guard"
	"github.com/sec-engineering/site-api/internal/handler"
	"github.com/sec-engineering/site-api/internal/logging"
	"github.com/sec-engineering/site-api/pkg/sheets"
)

func main() {
	_ = godotenv.Load()
	logging.Setup("site-api")

	addr := ":" + envOr("PORT", "8080")
	frontendURL := envOr("FRONTEND_URL", "http://localhost:3009")
	siteURL := envOr("SITE_URL", "http://localhost:3009")

	sink := sheets.NewClient(sheets.Config{
		ClientEmail:   os.Getenv("GOOGLE_SERVICE_ACCOUNT_EMAIL"),
		PrivateKey:    os.Getenv("GOOGLE_SERVICE_ACCOUNT_PRIVATE_KEY"),
		SpreadsheetID: os.Getenv("GOOGLE_SHEET_ID"),
		TabName:       os.Getenv("GOOGLE_SHEET_TAB_NAME"),
	})
	if !sink.IsConfigured() {
		slog.Warn("google sheets credentials missing, submissions will fail until configured")
	}

	contentClient := content.NewClient(content.Config{
		BaseURL:       os.Getenv("WORDPRESS_BASE_URL"),
		WriteUser:     os.Getenv("WORDPRESS_API_USER"),
		WritePassword: os.Getenv("WORDPRESS_API_APP_PASSWORD"),
	})
	if !contentClient.IsConfigured() {
		slog.Warn("wordpress base url missing, content queries will return unconfigured envelopes")
	}
	queries := content.NewQueries(contentClient)

	// Attempts are tracked in Redis when a shared store is configured
	// (multi-instance deployments), otherwise in process memory.
	var attemptStore guard.AttemptStore
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		store, err := guard.NewRedisStore(redisURL)
		if err != nil {
			logging.Fatal("failed to connect attempt store", "error", err)
		}
		defer store.Close()
		attemptStore = store
	} else {
		attemptStore = guard.NewMemoryStore(guard.DefaultWindow)
	}
	submissionGuard := guard.New(attemptStore)

	h := handler.New(sink, contentClient, frontendURL)
	careersHandler := handler.NewCareersHandler(submissionGuard, sink)
	contactHandler := handler.NewContactHandler(submissionGuard, sink)
	sheetsTestHandler := handler.NewSheetsTestHandler(sink, os.Getenv("SHEETS_TEST_TOKEN"))
	contentHandler := handler.NewContentHandler(queries)
	sitemapHandler := handler.NewSitemapHandler(queries, siteURL)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", h.Health)

	mux.HandleFunc("POST /api/careers-application", careersHandler.Submit)
	mux.HandleFunc("POST /api/contact-inquiry", contactHandler.Submit)
	mux.HandleFunc("POST /api/sheets-test", sheetsTestHandler.Run)

	mux.HandleFunc("GET /api/content/projects", contentHandler.Projects)
	mux.HandleFunc("GET /api/content/projects/{slug}", contentHandler.ProjectBySlug)
	mux.HandleFunc("GET /api/content/featured-projects", contentHandler.FeaturedProjects)
	mux.HandleFunc("GET /api/content/team", contentHandler.Team)
	mux.HandleFunc("GET /api/content/services", contentHandler.Services)
	mux.HandleFunc("GET /api/content/about", contentHandler.About)
	mux.HandleFunc("GET /api/content/careers", contentHandler.Careers)
	mux.HandleFunc("GET /api/content/contact", contentHandler.Contact)

	mux.HandleFunc("GET /sitemap.xml", sitemapHandler.Serve)

	server := &http.Server{
		Addr:         addr,
		Handler:      handler.SecurityHeaders(h.CORS(handler.RequestLogger(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr)
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

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
