package config

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`

	// Database holds the parcel store configuration.
	Database DatabaseConfig `mapstructure:",squash"`

	// Cache holds the Redis configuration.
	Cache CacheConfig `mapstructure:",squash"`

	// Parcels holds defaults applied to newly tracked parcels.
	Parcels ParcelsConfig `mapstructure:",squash"`

	// Rates holds the rate calculator pricing.
	Rates RatesConfig `mapstructure:",squash"`
}

// DatabaseConfig holds database connection details.
type DatabaseConfig struct {
	// URL is the Postgres connection string.
	URL string `mapstructure:"DATABASE_URL" required:"true"`
	// MaxConns caps the connection pool size.
	MaxConns int `mapstructure:"DB_MAX_CONNS" default:"10"`
}

// CacheConfig holds the Redis connection details.
type CacheConfig struct {
	// RedisURL is in the format redis://[:password@]host[:port][/database].
	RedisURL string `mapstructure:"REDIS_URL" default:"redis://localhost:6379/0"`
	// ParcelTTLSeconds is how long a parcel stays cached. 0 disables caching.
	ParcelTTLSeconds int `mapstructure:"PARCEL_CACHE_TTL_SECONDS" default:"60"`
}

// ParcelTTL returns the parcel cache TTL as a duration.
func (c CacheConfig) ParcelTTL() time.Duration {
	return time.Duration(c.ParcelTTLSeconds) * time.Second
}

// ParcelsConfig holds defaults for parcels created by tracking an unknown number.
type ParcelsConfig struct {
	// DefaultETADays is how far in the future a new parcel's ETA is set.
	DefaultETADays int `mapstructure:"DEFAULT_ETA_DAYS" default:"7"`
}

// DefaultETA returns the ETA offset for new parcels.
func (c ParcelsConfig) DefaultETA() time.Duration {
	return time.Duration(c.DefaultETADays) * 24 * time.Hour
}

// RatesConfig holds the rate calculator pricing in ZMW.
type RatesConfig struct {
	// BasePerKg is charged per kilogram for routes missing from the table.
	BasePerKg float64 `mapstructure:"RATE_BASE_PER_KG" default:"25"`
	// ServiceFee is added once to every quote.
	ServiceFee float64 `mapstructure:"RATE_SERVICE_FEE" default:"10"`
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// processTags iterates over the struct fields, binds env keys and sets default values in Viper.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		if key == "" {
			continue
		}

		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("failed to bind env %s: %w", key, err)
		}

		if defaultValue := field.Tag.Get("default"); defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		if field.Tag.Get("required") == "true" && val.Field(i).IsZero() {
			return fmt.Errorf("missing required configuration: %s", field.Tag.Get("mapstructure"))
		}
	}
	return nil
}
