package main

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"

	"github.com/esatto/customer-records-api/internal/config"
	"github.com/esatto/customer-records-api/internal/db"
	"github.com/esatto/customer-records-api/internal/domains/customers"
	"github.com/esatto/customer-records-api/internal/health"
	accessmw "github.com/esatto/customer-records-api/internal/middleware"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	client, err := db.Connect(ctx, cfg.MongoURI)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to document store")
	}
	defer client.Disconnect(context.Background())

	store := client.Database(cfg.MongoDB)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{cfg.AllowedOrigin},
		AllowedMethods: []string{"GET", "PUT", "POST", "DELETE"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "static/index.html")
	})

	policy := accessmw.AccessPolicy{
		Mode:          accessmw.PolicyMode(cfg.AccessPolicy),
		AllowedOrigin: cfg.AllowedOrigin,
	}

	customerHandler := customers.NewHandler(store, customers.IdentityPolicy(cfg.IdentityPolicy))
	r.Route("/api/customers", func(r chi.Router) {
		r.Use(policy.Restrict)
		customerHandler.RegisterCustomerRoutes(r)
	})

	healthHandler := health.NewHandler(client)
	r.Get("/health", healthHandler.Health)

	log.Info().Msg("server starting on :" + cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
