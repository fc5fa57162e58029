package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// Catalog source. When DatabaseURL is set the catalog is loaded from
	// Postgres; otherwise CatalogSourceURL is fetched over HTTP.
	DatabaseURL       string
	CatalogSourceURL  string
	CatalogTimeout    time.Duration
	CatalogLoadOnBoot bool

	// Rate source.
	RateSourceURL  string
	RateTimeout    time.Duration
	RedisAddr      string
	RedisDB        int
	RateCacheTTL   time.Duration

	// Engine defaults.
	DefaultCurrency string

	// API rate limiting, e.g. "100-M" for 100 requests/minute per IP.
	APIRateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("CATALOG_SOURCE_URL", "")
	viper.SetDefault("CATALOG_TIMEOUT", "10s")
	viper.SetDefault("CATALOG_LOAD_ON_BOOT", true)
	viper.SetDefault("RATE_SOURCE_URL", "")
	viper.SetDefault("RATE_TIMEOUT", "5s")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("RATE_CACHE_TTL", "5m")
	viper.SetDefault("DEFAULT_CURRENCY", "USD")
	viper.SetDefault("API_RATE_LIMIT", "300-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	cfg.CatalogSourceURL = viper.GetString("CATALOG_SOURCE_URL")
	cfg.CatalogLoadOnBoot = viper.GetBool("CATALOG_LOAD_ON_BOOT")
	cfg.RateSourceURL = viper.GetString("RATE_SOURCE_URL")
	cfg.RedisAddr = viper.GetString("REDIS_ADDR")
	cfg.RedisDB = viper.GetInt("REDIS_DB")
	cfg.DefaultCurrency = viper.GetString("DEFAULT_CURRENCY")
	cfg.APIRateLimit = viper.GetString("API_RATE_LIMIT")

	if cfg.DatabaseURL == "" && cfg.CatalogSourceURL == "" {
		log.Println("Warning: neither PGSQL_URL nor CATALOG_SOURCE_URL is set; the catalog cannot load.")
	}
	if cfg.RateSourceURL == "" {
		log.Println("Warning: RATE_SOURCE_URL not set; all conversions will degrade to source amounts.")
	}

	catalogTimeout, err := time.ParseDuration(viper.GetString("CATALOG_TIMEOUT"))
	if err != nil {
		log.Printf("Warning: invalid CATALOG_TIMEOUT, defaulting to 10s: %v\n", err)
		catalogTimeout = 10 * time.Second
	}
	cfg.CatalogTimeout = catalogTimeout

	rateTimeout, err := time.ParseDuration(viper.GetString("RATE_TIMEOUT"))
	if err != nil {
		log.Printf("Warning: invalid RATE_TIMEOUT, defaulting to 5s: %v\n", err)
		rateTimeout = 5 * time.Second
	}
	cfg.RateTimeout = rateTimeout

	cacheTTL, err := time.ParseDuration(viper.GetString("RATE_CACHE_TTL"))
	if err != nil {
		log.Printf("Warning: invalid RATE_CACHE_TTL, defaulting to 5m: %v\n", err)
		cacheTTL = 5 * time.Minute
	}
	cfg.RateCacheTTL = cacheTTL

	return cfg, nil
}
