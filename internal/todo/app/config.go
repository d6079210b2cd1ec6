package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// DefaultEnvFile is loaded when present and no other file is named.
const DefaultEnvFile = ".env"

type Config struct {
	DatabaseFile        string        // Optional: path to SQLite database file (default: ./todo.db)
	PepperFile          string        // Optional: path to file containing pepper for password hashing (default: ./pepper)
	TokenSecret         string        // Optional: HS256 signing secret, overrides TokenSecretFile (env only)
	TokenSecretFile     string        // Optional: secret file, generated on first start (default: ./token.secret)
	Issuer              string        // Optional: issuer claim for tokens (default: tabtodo)
	TokenTTL            time.Duration // Optional: access token lifetime (default: 30m)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

// LoadOptions names the files LoadConfig reads besides the environment.
type LoadOptions struct {
	// EnvFile is loaded into the environment without overriding variables
	// that are already set. Empty loads DefaultEnvFile if it exists.
	EnvFile string

	// ConfigFile is an optional TOML file. Falls back to TODO_CONFIG_FILE.
	ConfigFile string
}

// fileConfig is the TOML layout. Durations use time.ParseDuration syntax.
type fileConfig struct {
	DatabaseFile        string `toml:"database_file"`
	PepperFile          string `toml:"pepper_file"`
	TokenSecretFile     string `toml:"token_secret_file"`
	Issuer              string `toml:"issuer"`
	TokenTTL            string `toml:"token_ttl"`
	Env                 string `toml:"env"`
	LogLevel            string `toml:"log_level"`
	LogFormat           string `toml:"log_format"`
	Port                int    `toml:"port"`
	ShutdownGracePeriod string `toml:"shutdown_grace_period"`
}

func defaultConfig() Config {
	return Config{
		DatabaseFile:        "todo.db",
		PepperFile:          "pepper",
		TokenSecretFile:     "token.secret",
		Issuer:              "tabtodo",
		TokenTTL:            30 * time.Minute,
		Env:                 "dev",
		LogLevel:            "info",
		LogFormat:           "json",
		Port:                8080,
		ShutdownGracePeriod: 10 * time.Second,
	}
}

// LoadConfig resolves the configuration from, lowest priority first:
// defaults, the TOML config file, and the environment (including the env file).
func LoadConfig(opts LoadOptions) (Config, error) {
	if err := loadEnvFile(opts.EnvFile); err != nil {
		return Config{}, err
	}

	cfg := defaultConfig()

	configFile := opts.ConfigFile
	if configFile == "" {
		configFile = os.Getenv("TODO_CONFIG_FILE")
	}
	if configFile != "" {
		if err := loadConfigFile(&cfg, configFile); err != nil {
			return Config{}, err
		}
	}

	return Config{
		DatabaseFile:        getEnvOrDefault("TODO_DATABASE_FILE", cfg.DatabaseFile),
		PepperFile:          getEnvOrDefault("TODO_PEPPER_FILE", cfg.PepperFile),
		TokenSecret:         os.Getenv("TODO_TOKEN_SECRET"),
		TokenSecretFile:     getEnvOrDefault("TODO_TOKEN_SECRET_FILE", cfg.TokenSecretFile),
		Issuer:              getEnvOrDefault("TODO_ISSUER", cfg.Issuer),
		TokenTTL:            getEnvDurationOrDefault("TODO_TOKEN_TTL", cfg.TokenTTL),
		Env:                 getEnvOrDefault("ENV", cfg.Env),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", cfg.LogLevel),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", cfg.LogFormat),
		Port:                getEnvIntOrDefault("PORT", cfg.Port),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", cfg.ShutdownGracePeriod),
	}, nil
}

func loadEnvFile(envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("load env file %s: %w", envFile, err)
		}
		return nil
	}

	err := godotenv.Load(DefaultEnvFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load env file %s: %w", DefaultEnvFile, err)
	}
	return nil
}

// loadConfigFile overlays the non-empty values of a TOML file onto cfg.
func loadConfigFile(cfg *Config, path string) error {
	var fc fileConfig
	md, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return fmt.Errorf("load config file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("load config file %s: unknown key %q", path, undecoded[0].String())
	}

	setString(&cfg.DatabaseFile, fc.DatabaseFile)
	setString(&cfg.PepperFile, fc.PepperFile)
	setString(&cfg.TokenSecretFile, fc.TokenSecretFile)
	setString(&cfg.Issuer, fc.Issuer)
	setString(&cfg.Env, fc.Env)
	setString(&cfg.LogLevel, fc.LogLevel)
	setString(&cfg.LogFormat, fc.LogFormat)
	if fc.Port != 0 {
		cfg.Port = fc.Port
	}

	if err := setDuration(&cfg.TokenTTL, fc.TokenTTL, "token_ttl"); err != nil {
		return fmt.Errorf("load config file %s: %w", path, err)
	}
	if err := setDuration(&cfg.ShutdownGracePeriod, fc.ShutdownGracePeriod, "shutdown_grace_period"); err != nil {
		return fmt.Errorf("load config file %s: %w", path, err)
	}
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, v, key string) error {
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = d
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// "1h", "30m", "90s"
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// bare integers are minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
