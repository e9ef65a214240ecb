package config

import (
	"fmt"
	"os"
	"path"
	"time"

	"github.com/caarlos0/env/v10"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

// Public holds settings that are safe to log or expose.
type Public struct {
	Port        int           `yaml:"port" env:"PORT"`
	JwtTTL      time.Duration `yaml:"jwt_ttl" env:"JWT_TTL"` // token lifetime, 168h in production
	LogLevel    string        `yaml:"log_level" env:"LOG_LEVEL"`
	LogJSON     bool          `yaml:"log_json" env:"LOG_JSON"`
	CORSOrigins []string      `yaml:"cors_origins" env:"CORS_ORIGINS" envSeparator:","`
}

// Private holds secrets. Loaded from private.yaml and overridable via
// environment so deployments don't need the file on disk.
type Private struct {
	JwtKey string `yaml:"jwt_key" env:"JWT_KEY"`
	Pg     Pg     `yaml:"pg"`
}

type Pg struct {
	Host     string `yaml:"host" env:"PG_HOST"`
	Port     int    `yaml:"port" env:"PG_PORT"`
	User     string `yaml:"user" env:"PG_USER"`
	Password string `yaml:"password" env:"PG_PASSWORD"`
	Dbname   string `yaml:"dbname" env:"PG_DBNAME"`
}

func (c *Config) JwtKey() string {
	return c.Private.JwtKey
}

func (c *Config) JwtTTL() time.Duration {
	return c.Public.JwtTTL
}

func loadPath(configPath string, output interface{}) error {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return fmt.Errorf("config file does not exist: %s", configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("can't read config file %s: %w", configPath, err)
	}
	if err := yaml.Unmarshal(configFile, output); err != nil {
		return fmt.Errorf("can't unmarshal config file %s: %w", configPath, err)
	}
	return nil
}

// Load reads public.yaml and private.yaml from configFolder, applies
// environment overrides on top and validates the result. The signing key
// is required: a server with an empty key would mint forgeable tokens,
// so startup fails instead.
func Load(configFolder string) (*Config, error) {
	var cfg Config
	if err := loadPath(path.Join(configFolder, "public.yaml"), &cfg.Public); err != nil {
		return nil, err
	}
	if err := loadPath(path.Join(configFolder, "private.yaml"), &cfg.Private); err != nil {
		return nil, err
	}

	if err := env.Parse(&cfg.Public); err != nil {
		return nil, fmt.Errorf("env overrides: %w", err)
	}
	if err := env.Parse(&cfg.Private); err != nil {
		return nil, fmt.Errorf("env overrides: %w", err)
	}

	if cfg.Private.JwtKey == "" {
		return nil, fmt.Errorf("jwt_key is not configured (set it in private.yaml or JWT_KEY)")
	}
	if cfg.Public.JwtTTL <= 0 {
		cfg.Public.JwtTTL = 7 * 24 * time.Hour
	}
	if cfg.Public.Port == 0 {
		cfg.Public.Port = 8080
	}
	return &cfg, nil
}

func MustLoad(configFolder string) *Config {
	cfg, err := Load(configFolder)
	if err != nil {
		panic(err)
	}
	return cfg
}
