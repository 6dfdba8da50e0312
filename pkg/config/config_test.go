package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	def := DefaultConfig()
	if cfg.Server.Port != def.Server.Port {
		t.Errorf("port = %d, want %d", cfg.Server.Port, def.Server.Port)
	}
	if cfg.Store.MongoURI != "" {
		t.Errorf("mongo_uri = %q, want empty", cfg.Store.MongoURI)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  host: 127.0.0.1
  port: 9000
auth:
  jwt_secret: file-secret
  token_ttl_hours: 48
store:
  mongo_uri: mongodb://localhost:27017
  database: todos_test
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("host = %q", cfg.Server.Host)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("port = %d", cfg.Server.Port)
	}
	if cfg.Auth.JWTSecret != "file-secret" {
		t.Errorf("jwt_secret = %q", cfg.Auth.JWTSecret)
	}
	if cfg.Auth.TokenTTLHours != 48 {
		t.Errorf("token_ttl_hours = %d", cfg.Auth.TokenTTLHours)
	}
	if cfg.Store.Database != "todos_test" {
		t.Errorf("database = %q", cfg.Store.Database)
	}
	// Unset fields keep their defaults
	if cfg.Auth.BcryptCost != DefaultConfig().Auth.BcryptCost {
		t.Errorf("bcrypt_cost = %d", cfg.Auth.BcryptCost)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "8123")
	t.Setenv("AUTH_JWT_SECRET", "env-secret")
	t.Setenv("STORE_MONGO_URI", "mongodb://env:27017")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 8123 {
		t.Errorf("port = %d, want 8123", cfg.Server.Port)
	}
	if cfg.Auth.JWTSecret != "env-secret" {
		t.Errorf("jwt_secret = %q", cfg.Auth.JWTSecret)
	}
	if cfg.Store.MongoURI != "mongodb://env:27017" {
		t.Errorf("mongo_uri = %q", cfg.Store.MongoURI)
	}
}
