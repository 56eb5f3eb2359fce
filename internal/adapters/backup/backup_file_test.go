package backup

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"carexpress-dispatch/internal/adapters/kv"
	"carexpress-dispatch/internal/domain"
	"carexpress-dispatch/internal/store"
)

func TestFileName(t *testing.T) {
	ts := time.Date(2026, 3, 9, 23, 30, 0, 0, time.FixedZone("BRT", -3*3600))
	if got, want := FileName(ts), "carexpress-backup-2026-03-10.json"; got != want {
		t.Fatalf("FileName = %q, want %q", got, want)
	}
}

func TestWriteIndentsTwoSpaces(t *testing.T) {
	var buf bytes.Buffer
	b := domain.Backup{
		Locations: []domain.Location{{Name: "A", X: 1, Y: 2}},
		Vehicles:  []domain.Vehicle{},
		Orders:    []domain.Order{},
		Timestamp: "2026-01-01T08:00:00.000Z",
	}
	if err := Write(&buf, b); err != nil {
		t.Fatalf("write: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "{\n  \"locations\": [\n    {\n      \"name\": \"A\"") {
		t.Fatalf("unexpected layout:\n%s", out)
	}
	if !strings.Contains(out, `"timestamp": "2026-01-01T08:00:00.000Z"`) {
		t.Fatalf("timestamp missing:\n%s", out)
	}
}

func TestReadKeepsMissingCollectionsNil(t *testing.T) {
	snap, err := Read(strings.NewReader(`{"vehicles":[{"plate":"P1","model":"Van","status":"available","currentLocation":"A"}]}`))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if snap.Locations != nil || snap.Orders != nil {
		t.Fatalf("absent collections must stay nil: %+v", snap)
	}
	if snap.Vehicles == nil || len(*snap.Vehicles) != 1 || (*snap.Vehicles)[0].Plate != "P1" {
		t.Fatalf("vehicles = %+v", snap.Vehicles)
	}
}

func TestReadRejectsInvalidDocuments(t *testing.T) {
	docs := map[string]string{
		"empty":         "",
		"not json":      "hello",
		"array":         `[{"name":"A"}]`,
		"no collection": `{"timestamp":"2026-01-01T00:00:00.000Z"}`,
		"wrong type":    `{"locations":"A"}`,
		"truncated":     `{"locations":[`,
	}

	for name, doc := range docs {
		if _, err := Read(strings.NewReader(doc)); !errors.Is(err, domain.ErrInvalidBackup) {
			t.Errorf("%s: expected ErrInvalidBackup, got %v", name, err)
		}
	}
}

func TestWriteFileThenSeed(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "seed.json")

	b := domain.Backup{
		Locations: []domain.Location{{Name: "A"}, {Name: "B", X: 3, Y: 4}},
		Vehicles:  []domain.Vehicle{{Plate: "P1", Model: "Van", Status: domain.StatusAvailable, CurrentLocation: "A"}},
		Orders:    []domain.Order{{ID: 7, OriginLocation: "A", DestinationLocation: "B", Weight: 2}},
		Timestamp: "2026-01-01T08:00:00.000Z",
	}
	if err := WriteFile(path, b); err != nil {
		t.Fatalf("write file: %v", err)
	}

	s := store.New(kv.NewMemoryKeyValueStore())
	if err := s.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := SeedFromJSON(ctx, s, path); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if len(s.ListLocations()) != 2 || len(s.ListVehicles()) != 1 || len(s.ListOrders()) != 1 {
		t.Fatalf("seeded store = %+v", s.Summary())
	}
	if s.NextOrderID() != 8 {
		t.Fatalf("next order id = %d, want 8", s.NextOrderID())
	}

	if err := SeedFromJSON(ctx, s, path); !errors.Is(err, ErrStoreNotEmpty) {
		t.Fatalf("second seed: expected ErrStoreNotEmpty, got %v", err)
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, err := ReadFile(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
