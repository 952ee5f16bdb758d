package database

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func exerciseKV(t *testing.T, kv KV) {
	t.Helper()
	ctx := context.Background()

	if _, ok, err := kv.Get(ctx, "invoices"); err != nil || ok {
		t.Fatalf("expected missing key, ok=%v err=%v", ok, err)
	}
	if err := kv.Set(ctx, "invoices", `[{"id":"a"}]`); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := kv.Set(ctx, "invoices", `[{"id":"b"}]`); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	v, ok, err := kv.Get(ctx, "invoices")
	if err != nil || !ok || v != `[{"id":"b"}]` {
		t.Fatalf("unexpected get: %q ok=%v err=%v", v, ok, err)
	}
}

func TestMemoryKV(t *testing.T) {
	exerciseKV(t, NewMemoryKV())
}

func TestFileKV(t *testing.T) {
	dir := t.TempDir()
	kv, err := NewFileKV(dir)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	exerciseKV(t, kv)

	if _, err := os.Stat(filepath.Join(dir, "invoices.json")); err != nil {
		t.Fatalf("expected invoices.json on disk: %v", err)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Fatalf("expected no temp files left, got %d entries", len(entries))
	}

	reopened, _ := NewFileKV(dir)
	if v, ok, _ := reopened.Get(context.Background(), "invoices"); !ok || v != `[{"id":"b"}]` {
		t.Fatalf("value did not survive reopen: %q", v)
	}
}

func TestFileKVRejectsPathKeys(t *testing.T) {
	kv, _ := NewFileKV(t.TempDir())
	if err := kv.Set(context.Background(), "../escape", "x"); err == nil {
		t.Fatalf("expected error for key with path separator")
	}
}

func TestRedisKV(t *testing.T) {
	// opt-in: REDIS_ADDR_TEST=host:port
	addr := os.Getenv("REDIS_ADDR_TEST")
	if addr == "" {
		t.Skip("redis tests are disabled; set REDIS_ADDR_TEST to enable")
	}
	ctx := context.Background()
	kv, err := NewRedisKV(ctx, addr, "", 15)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer kv.Close()
	_ = kv.internal.Del(ctx, "invoices").Err()
	exerciseKV(t, kv)
}

func TestSQLKV(t *testing.T) {
	// opt-in, same convention as the server integration tests: DB_DSN_TEST=1 plus DB_DSN
	if os.Getenv("DB_DSN_TEST") != "1" {
		t.Skip("sql tests are disabled; set DB_DSN_TEST=1 and DB_DSN to enable")
	}
	driver := os.Getenv("DB_DRIVER_TEST")
	if driver == "" {
		driver = "postgres"
	}
	db, err := Connect(driver, os.Getenv("DB_DSN"))
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	kv, err := NewSQLKV(db)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	defer kv.Close()
	db.Exec("DELETE FROM kv_entries WHERE name = ?", "invoices")
	exerciseKV(t, kv)
}
