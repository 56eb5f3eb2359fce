package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"carexpress-dispatch/internal/config"
)

func TestSeedExportImport(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	cfg := config.Config{Storage: config.StorageSQLite, DBPath: filepath.Join(dir, "carexpress.db")}

	seed := filepath.Join(dir, "seed.json")
	doc := `{"locations":[{"name":"A","x":0,"y":0},{"name":"B","x":3,"y":4}],
		"vehicles":[{"plate":"P1","model":"Van","status":"available","currentLocation":"A"}],
		"orders":[{"id":3,"originLocation":"A","destinationLocation":"B","weight":1}]}`
	if err := os.WriteFile(seed, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := run(ctx, cfg, "init", nil); err != nil {
		t.Fatalf("init: %v", err)
	}
	if err := run(ctx, cfg, "seed", []string{seed}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := run(ctx, cfg, "seed", []string{seed}); err == nil {
		t.Fatal("seeding a populated store must fail")
	}

	out := filepath.Join(dir, "export.json")
	if err := run(ctx, cfg, "export", []string{"-o", out}); err != nil {
		t.Fatalf("export: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"plate": "P1"`) {
		t.Fatalf("export lacks the seeded vehicle:\n%s", data)
	}

	other := config.Config{Storage: config.StorageSQLite, DBPath: filepath.Join(dir, "other.db")}
	if err := run(ctx, other, "import", []string{out}); err != nil {
		t.Fatalf("import: %v", err)
	}
}

func TestUnknownCommand(t *testing.T) {
	cfg := config.Config{Storage: config.StorageMemory}
	if err := run(context.Background(), cfg, "drop", nil); err == nil {
		t.Fatal("expected an error for an unknown command")
	}
	if err := run(context.Background(), cfg, "import", nil); err == nil {
		t.Fatal("expected an error for a missing file argument")
	}
}
