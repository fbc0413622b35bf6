package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"

	"natal-chart-service/internal/adapters/ephemeris"
	"natal-chart-service/internal/adapters/tzindex"
	"natal-chart-service/internal/api"
	"natal-chart-service/internal/domain"
	"natal-chart-service/internal/platform/obs"
)

// main is the application composition root.
// It wires concrete adapters (tzf polygon index, Swiss Ephemeris sidecar)
// behind ports and starts the HTTP server. The blank time/tzdata import
// embeds the zone rule tables so conversions do not depend on host tzdata.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := getEnv("PORT", "4000")
	version := getEnv("APP_VERSION", "1.0.0")
	systemName := getEnv("HOUSE_SYSTEM", domain.WholeSign.String())

	ephemerisURL := os.Getenv("EPHEMERIS_URL")
	if strings.TrimSpace(ephemerisURL) == "" {
		log.Fatal("EPHEMERIS_URL is required")
	}

	system, err := domain.ParseHouseSystem(systemName)
	if err != nil {
		log.Fatalf("HOUSE_SYSTEM: %v", err)
	}

	// The polygon index is built once and shared read-only by all requests.
	zoneIndex, err := tzindex.NewIndex()
	if err != nil {
		log.Fatal(err)
	}

	provider, err := ephemeris.NewSwissProvider(ephemerisURL)
	if err != nil {
		log.Fatal(err)
	}

	router := api.NewRouter(api.RouterDeps{
		ServiceName:   "natal-chart-service",
		Version:       version,
		Ephemeris:     provider,
		ZoneLookup:    zoneIndex,
		DefaultSystem: system,
		Metrics:       obs.NewMetrics(),
	})

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server listening addr=:%s house_system=%s", port, system)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("graceful shutdown failed: %v", err)
	}
	log.Println("Server stopped")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
