package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SNAPSHOT_SOURCE", "")
	t.Setenv("USD_TO_INR", "")
	t.Setenv("MAX_CONCURRENCY", "")

	cfg := Load()
	if cfg.SnapshotSource != SourceFile {
		t.Errorf("SnapshotSource: got %q, want %q", cfg.SnapshotSource, SourceFile)
	}
	if cfg.USDToINR != 83.0 {
		t.Errorf("USDToINR: got %.2f, want 83.00", cfg.USDToINR)
	}
	if cfg.MaxConcurrency != 4 {
		t.Errorf("MaxConcurrency: got %d, want 4", cfg.MaxConcurrency)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SNAPSHOT_SOURCE", SourcePostgres)
	t.Setenv("USD_TO_INR", "84.5")
	t.Setenv("MAX_RETRIES", "not-a-number")

	cfg := Load()
	if cfg.SnapshotSource != SourcePostgres {
		t.Errorf("SnapshotSource: got %q, want %q", cfg.SnapshotSource, SourcePostgres)
	}
	if cfg.USDToINR != 84.5 {
		t.Errorf("USDToINR: got %.2f, want 84.50", cfg.USDToINR)
	}
	if cfg.MaxRetries != 3 {
		t.Errorf("MaxRetries: got %d, want fallback 3", cfg.MaxRetries)
	}
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		PostgresHost: "db", PostgresPort: "5432", PostgresUser: "u",
		PostgresPassword: "p", PostgresDB: "d", PostgresSSLMode: "disable",
	}
	want := "host=db port=5432 user=u password=p dbname=d sslmode=disable"
	if got := cfg.DSN(); got != want {
		t.Errorf("DSN: got %q, want %q", got, want)
	}
}
