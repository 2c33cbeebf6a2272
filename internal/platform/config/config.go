package config

import (
	"fmt"
	"net/url"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	DBHost       string
	DBPort       string
	DBName       string
	DBUser       string
	DBPassword   string
	Port         string
	IsProduction bool
	RateLimitRPM int64
}

// LoadConfig loads configuration from environment variables and a .env file
// if present. Each service passes its own default database name so both
// binaries can share the same loader.
//
// Recognized variables and defaults:
//
//	DB_HOST        localhost
//	DB_PORT        5432
//	DB_NAME        per service (journaldb / shopdb)
//	DB_USER        postgres
//	DB_PASSWORD    password
//	PORT           8080
//	IS_PRODUCTION  false
//	RATE_LIMIT_RPM 300
func LoadConfig(defaultDBName string) (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_NAME", defaultDBName)
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "password")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("RATE_LIMIT_RPM", 300)

	viper.AutomaticEnv()

	cfg := &Config{
		DBHost:       viper.GetString("DB_HOST"),
		DBPort:       viper.GetString("DB_PORT"),
		DBName:       viper.GetString("DB_NAME"),
		DBUser:       viper.GetString("DB_USER"),
		DBPassword:   viper.GetString("DB_PASSWORD"),
		Port:         viper.GetString("PORT"),
		IsProduction: viper.GetBool("IS_PRODUCTION"),
		RateLimitRPM: viper.GetInt64("RATE_LIMIT_RPM"),
	}

	if cfg.DBName == "" {
		return nil, fmt.Errorf("database name is not configured")
	}

	cfg.DatabaseURL = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		url.QueryEscape(cfg.DBUser),
		url.QueryEscape(cfg.DBPassword),
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBName,
	)

	return cfg, nil
}
