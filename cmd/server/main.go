package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"

	"github.com/renotari/powers-explorer/internal/adapters/cache"
	"github.com/renotari/powers-explorer/internal/adapters/repositories"
	"github.com/renotari/powers-explorer/internal/api"
	"github.com/renotari/powers-explorer/internal/config"
	"github.com/renotari/powers-explorer/internal/domain"
	"github.com/renotari/powers-explorer/internal/platform/db"
	"github.com/renotari/powers-explorer/internal/ports"
	"github.com/renotari/powers-explorer/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (Postgres, Redis) behind ports, loads the
// catalog into the in-memory distance index, and starts the HTTP server.
func main() {
	cfg := config.Load()

	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	pg, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer pg.Close()

	// Initialize schema and seed demo data on startup for local runs.
	if err := initAndSeed(pg, cfg.SeedPath); err != nil {
		log.Fatal(err)
	}

	repo := repositories.NewSQLObjectRepository(pg)

	// The catalog is static per deployment; distances are loaded once
	// and served from the in-memory index.
	records, err := repo.ListDistances(context.Background())
	if err != nil {
		log.Fatal(err)
	}
	index := domain.BuildDistanceIndex(records, cfg.SpeedOfLightMPS)
	log.Printf("Distance index ready pairs=%d", index.Len())

	planner, err := services.NewLightTravelPlanner(cfg.SpeedOfLightMPS, cfg.MaxAnimationMs)
	if err != nil {
		log.Fatal(err)
	}

	sessions, err := services.NewSessionManager(cfg.SelectionCapacity)
	if err != nil {
		log.Fatal(err)
	}

	scaler := services.NewScaler(cfg.MinObjectPx, cfg.MaxWidthRatio)

	// Redis is optional; without it travel plans are recomputed per call.
	var planCache ports.TravelPlanCache
	if cfg.RedisURL != "" {
		client, err := openRedis(cfg.RedisURL)
		if err != nil {
			log.Fatal(err)
		}
		defer client.Close()
		planCache = cache.NewRedisTravelPlanCache(client, 24*time.Hour)
	}

	router := api.NewRouter(repo, index, planner, scaler, sessions, planCache)

	log.Printf("Server listening addr=:%s", cfg.Port)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func openRedis(redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("open redis: parse url: %w", err)
	}

	client := redis.NewClient(opt)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("open redis: verify connection: %w", err)
	}

	return client, nil
}

func initAndSeed(pg *sql.DB, seedPath string) error {
	if err := repositories.InitSchema(pg); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromJSON(pg, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
