package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = "PSEG"

	configName  = "config"
	configType  = "toml"
	configDir   = ".pseg"
	sessionFile = "session.toml"

	KeySessionPath          = "session.path"
	KeyLogLevel             = "log.level"
	KeyLogFormat            = "log.format"
	KeyHTTPTimeout          = "http.timeout"
	KeyReconcileConcurrency = "reconcile.concurrency"
	KeyTimezone             = "timezone"
)

// DefaultEnvFiles are loaded, when present, before any other source.
var DefaultEnvFiles = []string{".env", ".env.local"}

type Config struct {
	SessionPath          string
	LogLevel             string
	LogFormat            string
	HTTPTimeout          time.Duration
	ReconcileConcurrency int
	Location             *time.Location
}

// LoadEnv loads the env files that exist and reports how many were read.
// Variables already set in the process win.
func LoadEnv(envFiles []string) (int, error) {
	existing := make([]string, 0, len(envFiles))
	for _, file := range envFiles {
		info, err := os.Stat(file)
		if err != nil || info.IsDir() {
			continue
		}
		existing = append(existing, file)
	}

	if len(existing) == 0 {
		return 0, nil
	}

	if err := godotenv.Load(existing...); err != nil {
		return 0, fmt.Errorf("load env files: %w", err)
	}
	return len(existing), nil
}

// Load reads ~/.pseg/config.toml (or configFile when set) and PSEG_* env
// vars into cfg and returns the resolved settings.
func Load(cfg *viper.Viper, configFile string) (Config, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg.SetEnvPrefix(EnvPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	cfg.SetDefault(KeySessionPath, filepath.Join(homeDir, configDir, sessionFile))
	cfg.SetDefault(KeyLogLevel, "warn")
	cfg.SetDefault(KeyLogFormat, "text")
	cfg.SetDefault(KeyHTTPTimeout, 30*time.Second)
	cfg.SetDefault(KeyReconcileConcurrency, 4)
	cfg.SetDefault(KeyTimezone, "")

	if configFile != "" {
		cfg.SetConfigFile(configFile)
	} else {
		cfg.SetConfigName(configName)
		cfg.SetConfigType(configType)
		cfg.AddConfigPath(filepath.Join(homeDir, configDir))
	}

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	sessionPath, err := expandPath(cfg.GetString(KeySessionPath), homeDir)
	if err != nil {
		return Config{}, err
	}

	location := time.Local
	if name := strings.TrimSpace(cfg.GetString(KeyTimezone)); name != "" {
		location, err = time.LoadLocation(name)
		if err != nil {
			return Config{}, fmt.Errorf("load timezone %q: %w", name, err)
		}
	}

	loaded := Config{
		SessionPath:          sessionPath,
		LogLevel:             cfg.GetString(KeyLogLevel),
		LogFormat:            cfg.GetString(KeyLogFormat),
		HTTPTimeout:          cfg.GetDuration(KeyHTTPTimeout),
		ReconcileConcurrency: cfg.GetInt(KeyReconcileConcurrency),
		Location:             location,
	}
	if loaded.HTTPTimeout <= 0 {
		return Config{}, fmt.Errorf("%s must be positive, got %s", KeyHTTPTimeout, loaded.HTTPTimeout)
	}
	if loaded.ReconcileConcurrency <= 0 {
		return Config{}, fmt.Errorf("%s must be positive, got %d", KeyReconcileConcurrency, loaded.ReconcileConcurrency)
	}

	return loaded, nil
}

func expandPath(path, homeDir string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", errors.New("session path is empty")
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		path = filepath.Join(homeDir, strings.TrimPrefix(path, "~"))
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve session path: %w", err)
	}
	return filepath.Clean(absPath), nil
}
