package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/fxlens/fxlens_backend/internal/adapters/catalogsource"
	"github.com/fxlens/fxlens_backend/internal/adapters/ratesource"
	"github.com/fxlens/fxlens_backend/internal/core/ports"
	"github.com/fxlens/fxlens_backend/internal/core/services"
	"github.com/fxlens/fxlens_backend/internal/handlers"
	"github.com/fxlens/fxlens_backend/internal/middleware"
	"github.com/fxlens/fxlens_backend/internal/platform/config"
	"github.com/fxlens/fxlens_backend/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	limitermem "github.com/ulule/limiter/v3/drivers/store/memory"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	catalogSource, cleanup, err := buildCatalogSource(cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize catalog source", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer cleanup()

	rateProvider := buildRateProvider(cfg, logger)

	container := services.NewContainer(catalogSource, rateProvider, cfg.DefaultCurrency)

	if cfg.CatalogLoadOnBoot {
		if _, err := container.Catalog.Load(context.Background()); err != nil {
			// The catalog can still be loaded later via /catalog/reload,
			// so boot continues and reads return 503 until then.
			logger.Warn("Initial catalog load failed", slog.String("error", err.Error()))
		} else {
			logger.Info("Currency catalog loaded.")
		}
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	rate, err := limiter.NewRateFromFormatted(cfg.APIRateLimit)
	if err != nil {
		logger.Error("Invalid API_RATE_LIMIT", slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(limiter.New(limitermem.NewStore(), rate)))

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	handlers.RegisterRoutes(r, cfg, container)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// buildCatalogSource picks Postgres when PGSQL_URL is configured (running
// migrations first), falling back to the HTTP catalog endpoint.
func buildCatalogSource(cfg *config.Config, logger *slog.Logger) (ports.CatalogSource, func(), error) {
	if cfg.DatabaseURL != "" {
		pool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := runMigrations(cfg.DatabaseURL, logger); err != nil {
			pool.Close()
			return nil, nil, err
		}
		logger.Info("Catalog source: PostgreSQL")
		return catalogsource.NewPgxSource(pool), pool.Close, nil
	}

	logger.Info("Catalog source: HTTP", slog.String("url", cfg.CatalogSourceURL))
	return catalogsource.NewHTTPSource(cfg.CatalogSourceURL, cfg.CatalogTimeout), func() {}, nil
}

// buildRateProvider wires the HTTP rate source, wrapped in a Redis
// read-through cache when one is configured.
func buildRateProvider(cfg *config.Config, logger *slog.Logger) ports.RateProvider {
	if cfg.RateSourceURL == "" {
		logger.Warn("No rate source configured; conversions will degrade to source amounts.")
		return ratesource.NewUnavailableProvider()
	}

	var provider ports.RateProvider = ratesource.NewHTTPProvider(cfg.RateSourceURL, cfg.RateTimeout)

	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr: cfg.RedisAddr,
			DB:   cfg.RedisDB,
		})
		provider = ratesource.NewCachedProvider(provider, client, cfg.RateCacheTTL)
		logger.Info("Rate cache enabled", slog.String("redis_addr", cfg.RedisAddr))
	}

	return provider
}

// runMigrations applies all pending "up" migrations using a temporary
// database/sql connection over the pgx stdlib driver.
func runMigrations(databaseURL string, logger *slog.Logger) error {
	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return err
	}
	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
