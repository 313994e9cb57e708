package config

import (
	"os"
	"reflect"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"ENV", "POSTGRES_URI", "MONGO_URI", "REDIS_URI",
		"PORT", "ALLOWED_ORIGINS", "FRONTEND_URL",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.PostgresURI != "postgres://localhost:5432/enlist?sslmode=disable" {
		t.Errorf("PostgresURI = %q", cfg.PostgresURI)
	}
	// The optional stores are opt-in: without MONGO_URI the service runs
	// relational-only, without REDIS_URI rate limiting is off.
	if cfg.MongoURI != "" {
		t.Errorf("MongoURI = %q, want empty", cfg.MongoURI)
	}
	if cfg.RedisURI != "" {
		t.Errorf("RedisURI = %q, want empty", cfg.RedisURI)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.IsProduction() {
		t.Errorf("default environment should not be production")
	}
	if !reflect.DeepEqual(cfg.AllowedOrigins, []string{"http://localhost:3000"}) {
		t.Errorf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ENV", "Production")
	t.Setenv("POSTGRES_URI", "postgres://db:5432/app")
	t.Setenv("MONGO_URI", "mongodb://db:27017/app")
	t.Setenv("REDIS_URI", "redis://cache:6379/1")
	t.Setenv("PORT", "9000")
	t.Setenv("ALLOWED_ORIGINS", "https://app.example.com, https://www.example.com")

	cfg := Load()

	if cfg.PostgresURI != "postgres://db:5432/app" {
		t.Errorf("PostgresURI = %q", cfg.PostgresURI)
	}
	if cfg.MongoURI != "mongodb://db:27017/app" {
		t.Errorf("MongoURI = %q", cfg.MongoURI)
	}
	if cfg.RedisURI != "redis://cache:6379/1" {
		t.Errorf("RedisURI = %q", cfg.RedisURI)
	}
	if cfg.Port != "9000" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if !cfg.IsProduction() {
		t.Errorf("ENV=Production should report production")
	}
	want := []string{"https://app.example.com", "https://www.example.com"}
	if !reflect.DeepEqual(cfg.AllowedOrigins, want) {
		t.Errorf("AllowedOrigins = %v, want %v", cfg.AllowedOrigins, want)
	}
}

func TestLoad_OptionalStoresUnset(t *testing.T) {
	// t.Setenv registers the restore; Unsetenv makes the vars truly absent.
	t.Setenv("MONGO_URI", "placeholder")
	t.Setenv("REDIS_URI", "placeholder")
	os.Unsetenv("MONGO_URI")
	os.Unsetenv("REDIS_URI")

	cfg := Load()

	if cfg.MongoURI != "" {
		t.Errorf("MongoURI = %q, want empty when unset", cfg.MongoURI)
	}
	if cfg.RedisURI != "" {
		t.Errorf("RedisURI = %q, want empty when unset", cfg.RedisURI)
	}
}

func TestLoad_FrontendURLFallback(t *testing.T) {
	t.Setenv("ALLOWED_ORIGINS", "")
	t.Setenv("FRONTEND_URL", "https://front.example.com")

	cfg := Load()

	if !reflect.DeepEqual(cfg.AllowedOrigins, []string{"https://front.example.com"}) {
		t.Errorf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
}

func TestParseOrigins(t *testing.T) {
	if got := parseOrigins(""); got != nil {
		t.Errorf("parseOrigins(\"\") = %v, want nil", got)
	}
	got := parseOrigins("a.com, ,b.com,")
	want := []string{"a.com", "b.com"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parseOrigins = %v, want %v", got, want)
	}
}
