package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of every environment variable read by Load.
const EnvPrefix = "XONADON"

// minJWTSecretLength is the shortest HMAC secret accepted when auth is enabled.
const minJWTSecretLength = 32

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	// Optional config file in the working directory
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// XONADON_SERVER_PORT -> server.port
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks struct tags and the cross-field rules that tags do not
// express.
func Validate(cfg *Config) error {
	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if cfg.Database.Driver == "postgres" && cfg.Database.URL == "" {
		return fmt.Errorf("config validation failed: database.url is required for the postgres driver")
	}

	if cfg.Auth.Enabled && len(cfg.Auth.JWTSecret) < minJWTSecretLength {
		return fmt.Errorf(
			"config validation failed: auth.jwt_secret must be at least %d characters when auth is enabled",
			minJWTSecretLength,
		)
	}

	if cfg.Database.Driver == "redis" && cfg.Database.Redis.Addr == "" {
		return fmt.Errorf("config validation failed: database.redis.addr is required for the redis driver")
	}

	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")

	v.SetDefault("database.driver", "memory")
	v.SetDefault("database.url", "")
	v.SetDefault("database.redis.addr", "")
	v.SetDefault("database.redis.password", "")
	v.SetDefault("database.redis.db", 0)
	v.SetDefault("database.redis.key_prefix", "xonadon:")

	v.SetDefault("auth.enabled", false)
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_lifetime_minutes", 60)

	v.SetDefault("material.hot_waste_percent", 0.10)
	v.SetDefault("material.cold_waste_percent", 0.07)
	v.SetDefault("material.default_weather", "hot")

	v.SetDefault("locale.default", "uz")

	v.SetDefault("apartment.seed_default", true)
	v.SetDefault("apartment.default_id", "apt-1")
	v.SetDefault("apartment.default_name", "Xonadon")
}
