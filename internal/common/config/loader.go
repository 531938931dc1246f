// internal/common/config/loader.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load reads configs/config.yaml, merges the environment-specific overlay
// (config.<env>.yaml) and environment variables, and validates the result.
func Load() (*Config, error) {
	loadEnvFile()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../../configs")
	viper.AddConfigPath(".")

	// Enable ENV overrides like STATUSSTORE_BACKEND or DATABASE_REDIS_ADDRESS.
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	env := os.Getenv("APP_ENVIRONMENT")
	if env == "" {
		env = "development"
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	viper.SetConfigName(fmt.Sprintf("config.%s", env))
	_ = viper.MergeInConfig() // overlay is optional

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func loadEnvFile() {
	possiblePaths := []string{
		".env",
		"../.env",
		"../../.env",
	}

	if rootDir := findProjectRoot(); rootDir != "" {
		possiblePaths = append(possiblePaths, filepath.Join(rootDir, ".env"))
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

// findProjectRoot walks up from the working directory looking for go.mod.
func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "cloud-advisor"
	}
	if cfg.App.Version == "" {
		cfg.App.Version = "0.1.0"
	}
	if cfg.App.Environment == "" {
		cfg.App.Environment = "development"
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8000
	}
	if cfg.Provisioning.Concurrency == 0 {
		cfg.Provisioning.Concurrency = 4
	}
	if cfg.Provisioning.ResourceDelay == 0 {
		cfg.Provisioning.ResourceDelay = 250 * time.Millisecond
	}
	if cfg.Provisioning.BatchTimeout == 0 {
		cfg.Provisioning.BatchTimeout = 10 * time.Minute
	}
	if cfg.Provisioning.EstimatedMinutes == 0 {
		cfg.Provisioning.EstimatedMinutes = 15
	}
	if cfg.StatusStore.Backend == "" {
		cfg.StatusStore.Backend = "memory"
	}
	if cfg.StatusStore.TTL == 0 {
		cfg.StatusStore.TTL = 24 * time.Hour
	}
	if cfg.Database.Postgres.SSLMode == "" {
		cfg.Database.Postgres.SSLMode = "disable"
	}
	if cfg.Database.Postgres.MaxConnections == 0 {
		cfg.Database.Postgres.MaxConnections = 10
	}
	if cfg.Database.Postgres.MaxIdle == 0 {
		cfg.Database.Postgres.MaxIdle = 5
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "console"
	}
}

func validateConfig(cfg *Config) error {
	switch cfg.StatusStore.Backend {
	case "memory", "redis":
	default:
		return fmt.Errorf("statusstore.backend must be \"memory\" or \"redis\", got %q", cfg.StatusStore.Backend)
	}

	if cfg.StatusStore.Backend == "redis" && cfg.Database.Redis.Address == "" {
		return fmt.Errorf("statusstore.backend is redis but database.redis.address is empty")
	}

	if cfg.Audit.Enabled && cfg.Database.Postgres.Host == "" {
		return fmt.Errorf("audit is enabled but database.postgres.host is empty")
	}

	if cfg.Provisioning.Concurrency < 1 {
		return fmt.Errorf("provisioning.concurrency must be at least 1")
	}

	return nil
}
