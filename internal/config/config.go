package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"    validate:"required"`
	Database  DatabaseConfig  `mapstructure:"database"  validate:"required"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Material  MaterialConfig  `mapstructure:"material"  validate:"required"`
	Locale    LocaleConfig    `mapstructure:"locale"    validate:"required"`
	Apartment ApartmentConfig `mapstructure:"apartment"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig selects the apartment store backend.
type DatabaseConfig struct {
	Driver string `mapstructure:"driver" validate:"required,oneof=memory postgres redis"`
	// URL is required when Driver is postgres.
	URL   string      `mapstructure:"url"   validate:"omitempty,url"`
	Redis RedisConfig `mapstructure:"redis"`
}

// RedisConfig holds the connection settings for the redis driver.
// Addr is required when Driver is redis.
type RedisConfig struct {
	Addr      string `mapstructure:"addr"       validate:"omitempty,hostname_port"`
	Password  string `mapstructure:"password"`
	DB        int    `mapstructure:"db"         validate:"gte=0"`
	KeyPrefix string `mapstructure:"key_prefix"`
}

// AuthConfig contains settings for the JWT-protected mutation routes.
type AuthConfig struct {
	Enabled bool `mapstructure:"enabled"`
	// JWTSecret must be at least 32 characters when Enabled is true.
	JWTSecret            string `mapstructure:"jwt_secret"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"gt=0"`
}

// MaterialConfig holds the loss fractions applied to net area per weather,
// and the weather used when a request does not name one.
type MaterialConfig struct {
	HotWastePercent  float64 `mapstructure:"hot_waste_percent"  validate:"gt=0,lt=1"`
	ColdWastePercent float64 `mapstructure:"cold_waste_percent" validate:"gt=0,lt=1"`
	DefaultWeather   string  `mapstructure:"default_weather"    validate:"required,oneof=hot cold"`
}

// LocaleConfig holds the fallback language for rendered reports.
type LocaleConfig struct {
	Default string `mapstructure:"default" validate:"required,oneof=uz ru en"`
}

// ApartmentConfig controls the apartment seeded at startup.
type ApartmentConfig struct {
	SeedDefault bool   `mapstructure:"seed_default"`
	DefaultID   string `mapstructure:"default_id"   validate:"required_if=SeedDefault true"`
	DefaultName string `mapstructure:"default_name"`
}
