package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"go.uber.org/zap"

	httpapi "github.com/i474232898/india-weather-history/internal/api/http"
	"github.com/i474232898/india-weather-history/internal/cities"
	"github.com/i474232898/india-weather-history/internal/config"
	"github.com/i474232898/india-weather-history/internal/logging"
	"github.com/i474232898/india-weather-history/internal/resolution"
	"github.com/i474232898/india-weather-history/internal/scheduler"
	"github.com/i474232898/india-weather-history/internal/store"
	"github.com/i474232898/india-weather-history/internal/weather"
	"github.com/i474232898/india-weather-history/internal/weather/providers"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	sugar, err := logging.New(cfg.LogLevel, cfg.AppEnv)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = sugar.Sync() }()

	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	registry, err := loadRegistry(cfg)
	if err != nil {
		sugar.Fatalw("failed to load cities", "error", err)
	}
	var geo cities.Geocoder
	if cfg.GoogleGeocoderAPIKey != "" {
		geo = cities.NewGoogleGeocoder(cfg.GoogleGeocoderAPIKey)
	}
	locator := cities.NewLocator(registry, geo, sugar.Named("cities"))

	// In-memory store with configured retention.
	memStore := store.NewMemoryStore(cfg.StoreMaxHistory, cfg.StoreMaxAge)

	// Providers with resilience (backoff + circuit breaker). Open-Meteo needs no key.
	provs := []weather.Provider{providers.NewOpenMeteoProvider(httpClient)}
	if cfg.OpenWeatherAPIKey != "" {
		provs = append(provs, providers.NewOpenWeatherProvider(httpClient, cfg.OpenWeatherAPIKey))
	}
	if cfg.WeatherAPIKey != "" {
		provs = append(provs, providers.NewWeatherAPIProvider(httpClient, cfg.WeatherAPIKey))
	}

	resolver := resolution.NewResolver(historySource(cfg, httpClient, sugar), resolverOptions(cfg, sugar)...)

	historyCache, closeCache := buildHistoryCache(cfg, sugar)
	defer closeCache()

	// Core service orchestrating providers, store and history resolution.
	service := weather.NewService(memStore, provs, resolver, historyCache, sugar.Named("service"))

	window := weather.HistoryWindow{Days: cfg.HistoryDays, EndLagDays: cfg.HistoryEndLagDays}

	// Scheduler that periodically refreshes tracked cities.
	var tracked []weather.Location
	for _, name := range cfg.TrackedCities {
		loc, err := registry.Lookup(name)
		if err != nil {
			sugar.Warnw("tracked city skipped", "city", name, "error", err)
			continue
		}
		tracked = append(tracked, loc)
	}
	sched := scheduler.New(tracked, cfg.FetchInterval, window, service, sugar.Named("scheduler"))
	if err := sched.Start(); err != nil {
		sugar.Fatalw("failed to start scheduler", "error", err)
	}
	defer sched.Stop()

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "india-weather-history",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          2 * time.Minute,
		ErrorHandler:          httpapi.ErrorHandler(sugar.Named("http")),
	})

	// Global middleware
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(recover.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "india-weather-history",
			"cities":  registry.Len(),
			"tracked": memStore.Keys(),
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, httpapi.NewHandler(service, locator, window))

	go func() {
		sugar.Infow("listening", "port", cfg.Port, "historySource", cfg.HistorySource)
		if err := app.Listen(":" + cfg.Port); err != nil {
			sugar.Errorw("fiber server stopped", "error", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		sugar.Errorw("error during shutdown", "error", err)
	}
}

func loadRegistry(cfg *config.AppConfig) (*cities.Registry, error) {
	if cfg.CitiesFile == "" {
		return cities.Default(), nil
	}
	return cities.LoadFile(cfg.CitiesFile)
}

func historySource(cfg *config.AppConfig, client *http.Client, sugar *zap.SugaredLogger) weather.HistoricalSource {
	if cfg.HistorySource == "openmeteo" {
		return providers.NewOpenMeteoArchiveSource(client)
	}
	if cfg.MeteostatAPIKey == "" {
		sugar.Warnw("METEOSTAT_API_KEY is not set; history will fall back to synthetic estimates")
	}
	return providers.NewMeteostatSource(client, cfg.MeteostatAPIKey)
}

func resolverOptions(cfg *config.AppConfig, sugar *zap.SugaredLogger) []resolution.Option {
	var genOpts []resolution.GeneratorOption
	if cfg.SyntheticSeed != nil {
		genOpts = append(genOpts, resolution.WithSeed(uint64(*cfg.SyntheticSeed)))
	}

	opts := []resolution.Option{
		resolution.WithGenerator(resolution.NewGenerator(genOpts...)),
		resolution.WithNearbyParallelism(cfg.NearbyParallelism),
		resolution.WithLogger(sugar.Named("resolution")),
	}
	if cfg.HistoryAcceptPartial {
		opts = append(opts, resolution.WithPartialCoverage())
	}
	return opts
}

// buildHistoryCache layers the in-memory cache over SQLite. When the database
// cannot be opened the service runs with the memory layer only.
func buildHistoryCache(cfg *config.AppConfig, sugar *zap.SugaredLogger) (weather.HistoryCache, func()) {
	memory := store.NewHistoryMemoryCache(cfg.HistoryCacheTTL)

	durable, err := store.OpenSQLiteHistoryCache(cfg.HistoryCachePath, cfg.HistoryCacheTTL)
	if err != nil {
		sugar.Warnw("persistent history cache disabled", "path", cfg.HistoryCachePath, "error", err)
		return memory, func() {}
	}

	if n, err := durable.Prune(context.Background()); err != nil {
		sugar.Warnw("history cache prune failed", "error", err)
	} else if n > 0 {
		sugar.Infow("history cache pruned", "removed", n)
	}

	closeFn := func() {
		if err := durable.Close(); err != nil {
			sugar.Warnw("closing history cache", "error", err)
		}
	}
	return store.NewTieredHistoryCache(memory, durable, sugar.Named("cache")), closeFn
}
