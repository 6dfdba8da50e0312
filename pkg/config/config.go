package config

import (
	"os"
	"strconv"

	"github.com/goccy/go-yaml"
	"golang.org/x/crypto/bcrypt"
)

// Config represents the application configuration
type Config struct {
	Server ServerConfig `yaml:"server"`
	Auth   AuthConfig   `yaml:"auth"`
	Store  StoreConfig  `yaml:"store"`
}

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// AuthConfig represents authentication configuration
type AuthConfig struct {
	JWTSecret     string `yaml:"jwt_secret"`
	BcryptCost    int    `yaml:"bcrypt_cost"`
	TokenTTLHours int    `yaml:"token_ttl_hours"` // 0 means no expiry
}

// StoreConfig represents persistence configuration. An empty MongoURI
// selects the JSON file store rooted at DataDir.
type StoreConfig struct {
	MongoURI       string `yaml:"mongo_uri"`
	Database       string `yaml:"database"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	DataDir        string `yaml:"data_dir"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 5000,
		},
		Auth: AuthConfig{
			JWTSecret:     "todo-app-secret-key-change-me",
			BcryptCost:    bcrypt.DefaultCost,
			TokenTTLHours: 24,
		},
		Store: StoreConfig{
			Database:       "todoApp",
			TimeoutSeconds: 10,
			DataDir:        "./data",
		},
	}
}

// Load loads configuration from a YAML file
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnvOverrides(cfg)
			return cfg, nil // Return default config if file doesn't exist
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	// Override with environment variables
	applyEnvOverrides(cfg)

	return cfg, nil
}

// applyEnvOverrides overrides configuration with environment variables
func applyEnvOverrides(cfg *Config) {
	if host := os.Getenv("SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if port := os.Getenv("SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Server.Port = p
		}
	}
	if jwtSecret := os.Getenv("AUTH_JWT_SECRET"); jwtSecret != "" {
		cfg.Auth.JWTSecret = jwtSecret
	}
	if uri := os.Getenv("STORE_MONGO_URI"); uri != "" {
		cfg.Store.MongoURI = uri
	}
	if db := os.Getenv("STORE_DATABASE"); db != "" {
		cfg.Store.Database = db
	}
	if dataDir := os.Getenv("STORE_DATA_DIR"); dataDir != "" {
		cfg.Store.DataDir = dataDir
	}
}

// Save saves configuration to a YAML file
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
