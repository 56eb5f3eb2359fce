package kv

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"

	"carexpress-dispatch/internal/config"
)

func TestOpenBackends(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)

	cases := map[string]config.Config{
		"sqlite": {Storage: config.StorageSQLite, DBPath: filepath.Join(t.TempDir(), "nested", "carexpress.db")},
		"redis":  {Storage: config.StorageRedis, RedisURL: "redis://" + mr.Addr(), RedisPrefix: "open:"},
		"memory": {Storage: config.StorageMemory},
	}

	for name, cfg := range cases {
		t.Run(name, func(t *testing.T) {
			b, err := Open(ctx, cfg)
			if err != nil {
				t.Fatalf("open: %v", err)
			}
			defer b.Close()

			if err := b.Store.Set(ctx, "k", []byte(`"v"`)); err != nil {
				t.Fatalf("set: %v", err)
			}
			got, ok, err := b.Store.Get(ctx, "k")
			if err != nil || !ok || string(got) != `"v"` {
				t.Fatalf("get = %q ok=%v err=%v", got, ok, err)
			}
		})
	}
}

func TestOpenUnknownBackend(t *testing.T) {
	if _, err := Open(context.Background(), config.Config{Storage: "etcd"}); err == nil {
		t.Fatal("expected an error for an unknown backend")
	}
}
