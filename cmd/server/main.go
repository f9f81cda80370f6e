package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"cutiplan/internal/cloud"
	"cutiplan/internal/config"
	"cutiplan/internal/db"
	"cutiplan/internal/domain/planner"
	"cutiplan/internal/middleware"
	insightshandler "cutiplan/internal/transport/http/handlers/insights"
	planhandler "cutiplan/internal/transport/http/handlers/plan"
	synchandler "cutiplan/internal/transport/http/handlers/sync"
	"cutiplan/internal/store"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	table := planner.Malaysia2026
	if cfg.HolidayFile != "" {
		loaded, err := planner.LoadTable(cfg.HolidayFile)
		if err != nil {
			log.Fatalf("holiday table failed: %v", err)
		}
		table = loaded
	}

	ctx := context.Background()

	var planStore planner.Store
	var pool interface{ Ping(context.Context) error }
	if cfg.DatabaseURL != "" {
		pgPool, err := db.Connect(ctx, cfg)
		if err != nil {
			log.Fatalf("db connect failed: %v", err)
		}
		defer pgPool.Close()

		if cfg.RunMigrations {
			if err := db.Migrate(ctx, pgPool, cfg.MigrationsDir); err != nil {
				log.Fatalf("migrations failed: %v", err)
			}
		}
		planStore = store.NewPostgresStore(pgPool)
		pool = pgPool
	} else {
		planStore = store.NewFileStore(cfg.DataFile)
	}

	service := planner.NewService(planStore, table)
	cloudService := cloud.New(cfg.SessionSecret, cfg.CloudLatency)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if pool != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := pool.Ping(ctx); err != nil {
				http.Error(w, "db not ready", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.Route("/api/v1", func(r chi.Router) {
		planhandler.NewHandler(service).RegisterRoutes(r)
		insightshandler.NewHandler(service).RegisterRoutes(r)
		synchandler.NewHandler(cloudService, service, cfg.SessionSecret).RegisterRoutes(r)
	})

	log.Printf("cutiplan server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
