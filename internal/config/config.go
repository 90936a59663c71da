// README: Config loader; resolves the Gemini credential (env, then key file) and HTTP, AI, plan hand-off and maps settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

// ErrMissingCredential is returned when neither GEMINI_API_KEY nor the key file yields a value.
var ErrMissingCredential = errors.New("GEMINI_API_KEY must be set via environment variable or key file")

const (
	// CredentialEnv is the environment variable checked first for the Gemini API key.
	CredentialEnv = "GEMINI_API_KEY"
	// DefaultKeyFile is read when CredentialEnv is absent.
	DefaultKeyFile = "gemini.key"
)

type HTTPConfig struct {
	Addr        string
	GinMode     string
	CORSOrigins []string
}

type AIConfig struct {
	APIKey string
	// KeySource records where APIKey came from ("env" or the key file path). Never log APIKey itself.
	KeySource   string
	Model       string
	Temperature float32
	Timeout     time.Duration
}

type PlanConfig struct {
	RedisAddr string
	TTL       time.Duration
}

type MapsConfig struct {
	APIKey string
}

type Config struct {
	Env   string
	HTTP  HTTPConfig
	AI    AIConfig
	Plans PlanConfig
	Maps  MapsConfig
}

// IsProduction reports whether the process runs with production logging and gin release mode.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads settings from the environment (TRIPPLANNER_ prefix), an optional config
// file and defaults. configFile may be empty, in which case tripplanner.yaml is looked
// up in the working directory and ./config.
func Load(configFile string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("TRIPPLANNER")
	v.AutomaticEnv()

	v.SetDefault("env", "development")
	v.SetDefault("http_addr", ":5000")
	v.SetDefault("gin_mode", "")
	v.SetDefault("cors_origins", "*")
	v.SetDefault("key_file", DefaultKeyFile)
	v.SetDefault("model", "gemini-2.0-flash")
	v.SetDefault("temperature", 0.7)
	v.SetDefault("generate_timeout", 60*time.Second)
	v.SetDefault("redis_addr", "")
	v.SetDefault("plan_ttl", 15*time.Minute)
	v.SetDefault("maps_api_key", "")
	_ = v.BindEnv("gemini_api_key", CredentialEnv)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName("tripplanner")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	cfg.Env = strings.ToLower(strings.TrimSpace(v.GetString("env")))
	cfg.HTTP.Addr = v.GetString("http_addr")
	cfg.HTTP.GinMode = strings.TrimSpace(v.GetString("gin_mode"))
	cfg.HTTP.CORSOrigins = splitList(v.GetString("cors_origins"))
	cfg.AI.Model = v.GetString("model")
	cfg.AI.Temperature = float32(v.GetFloat64("temperature"))
	cfg.AI.Timeout = v.GetDuration("generate_timeout")
	cfg.Plans.RedisAddr = strings.TrimSpace(v.GetString("redis_addr"))
	cfg.Plans.TTL = v.GetDuration("plan_ttl")
	cfg.Maps.APIKey = strings.TrimSpace(v.GetString("maps_api_key"))

	key, source, err := resolveCredential(v.GetString("gemini_api_key"), v.GetString("key_file"))
	if err != nil {
		return Config{}, err
	}
	cfg.AI.APIKey = key
	cfg.AI.KeySource = source

	if cfg.Plans.TTL <= 0 {
		return Config{}, fmt.Errorf("plan_ttl must be positive, got %s", cfg.Plans.TTL)
	}
	switch cfg.HTTP.GinMode {
	case "", gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return Config{}, fmt.Errorf("gin_mode must be %s, %s or %s, got %q",
			gin.DebugMode, gin.ReleaseMode, gin.TestMode, cfg.HTTP.GinMode)
	}
	return cfg, nil
}

// resolveCredential prefers the environment value and falls back to the trimmed
// contents of keyFile.
func resolveCredential(envValue, keyFile string) (string, string, error) {
	if v := strings.TrimSpace(envValue); v != "" {
		return v, "env", nil
	}
	if keyFile == "" {
		return "", "", ErrMissingCredential
	}
	data, err := os.ReadFile(keyFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", "", ErrMissingCredential
		}
		return "", "", fmt.Errorf("read key file %s: %w", keyFile, err)
	}
	if v := strings.TrimSpace(string(data)); v != "" {
		return v, keyFile, nil
	}
	return "", "", ErrMissingCredential
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
