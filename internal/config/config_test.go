package config

import (
	"os"
	"testing"
)

func TestValidate_InvalidPort(t *testing.T) {
	cfg := Config{
		HTTP:     HTTPConfig{Port: 0},
		Database: DatabaseConfig{DSN: "postgres://localhost/lexfile"},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestValidate_MissingDSN(t *testing.T) {
	cfg := Config{
		HTTP: HTTPConfig{Port: 8080},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for missing database dsn")
	}
}

func TestValidate_CategoryLimits(t *testing.T) {
	cfg := Config{
		HTTP:     HTTPConfig{Port: 8080},
		Database: DatabaseConfig{DSN: "postgres://localhost/lexfile"},
		Search:   SearchConfig{DefaultCategory: 200, MaxCategory: 100},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for default_category > max_category")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("expected ReadTimeoutSec=10, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 10 {
		t.Errorf("expected WriteTimeoutSec=10, got %d", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.HTTP.ShutdownSec != 10 {
		t.Errorf("expected ShutdownSec=10, got %d", cfg.HTTP.ShutdownSec)
	}
	if cfg.Database.ReadinessTimeout != 10 {
		t.Errorf("expected ReadinessTimeout=10, got %d", cfg.Database.ReadinessTimeout)
	}
	if cfg.Analytics.KeyPrefix != "lexfile:" {
		t.Errorf("expected KeyPrefix=lexfile:, got %q", cfg.Analytics.KeyPrefix)
	}
	if cfg.Search.PerEntityLimit != 20 {
		t.Errorf("expected PerEntityLimit=20, got %d", cfg.Search.PerEntityLimit)
	}
	if cfg.Search.AccessWindow != 100 {
		t.Errorf("expected AccessWindow=100, got %d", cfg.Search.AccessWindow)
	}
	if cfg.Search.DefaultCategory != 10 {
		t.Errorf("expected DefaultCategory=10, got %d", cfg.Search.DefaultCategory)
	}
	if cfg.Search.MaxCategory != 100 {
		t.Errorf("expected MaxCategory=100, got %d", cfg.Search.MaxCategory)
	}
}

func TestExpandEnvVars(t *testing.T) {
	os.Setenv("LEXFILE_TEST_DSN", "postgres://db:5432/cases")
	defer os.Unsetenv("LEXFILE_TEST_DSN")

	in := []byte("dsn: ${LEXFILE_TEST_DSN}\nprefix: ${LEXFILE_TEST_MISSING:-lexfile:}")
	out := string(expandEnvVars(in))

	want := "dsn: postgres://db:5432/cases\nprefix: lexfile:"
	if out != want {
		t.Errorf("unexpected expansion:\ngot:  %q\nwant: %q", out, want)
	}
}

func TestGetEnv_Default(t *testing.T) {
	os.Unsetenv("ENV")
	if env := GetEnv(); env != "local" {
		t.Errorf("expected local, got %q", env)
	}
}
