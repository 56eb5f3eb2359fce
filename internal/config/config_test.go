package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"LISTEN_HOST", "PORT", "STORAGE", "DB_PATH", "DATABASE_URL", "REDIS_URL", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Storage != StorageSQLite {
		t.Fatalf("storage = %q, want %q", cfg.Storage, StorageSQLite)
	}
	if cfg.Addr() != "127.0.0.1:8080" {
		t.Fatalf("addr = %q, want 127.0.0.1:8080", cfg.Addr())
	}
}

func TestLoadRejectsIncompleteBackends(t *testing.T) {
	t.Setenv("PORT", "")

	t.Setenv("STORAGE", "postgres")
	t.Setenv("DATABASE_URL", "")
	if _, err := Load(); err == nil {
		t.Fatal("postgres without DATABASE_URL: expected error")
	}

	t.Setenv("STORAGE", "redis")
	t.Setenv("REDIS_URL", "")
	if _, err := Load(); err == nil {
		t.Fatal("redis without REDIS_URL: expected error")
	}

	t.Setenv("STORAGE", "etcd")
	if _, err := Load(); err == nil {
		t.Fatal("unknown backend: expected error")
	}
}

func TestLoadRejectsBadPort(t *testing.T) {
	t.Setenv("STORAGE", "memory")
	t.Setenv("PORT", "http")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for non-numeric port")
	}
}
