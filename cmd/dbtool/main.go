package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"carexpress-dispatch/internal/adapters/backup"
	"carexpress-dispatch/internal/adapters/kv"
	"carexpress-dispatch/internal/config"
	"carexpress-dispatch/internal/platform/obs"
	"carexpress-dispatch/internal/store"
)

const usage = `usage: dbtool <command> [args]

commands:
  init              create the storage schema
  seed <file>       load a backup file into an empty store
  export [-o file]  write a backup of the store
  import <file>     restore the collections present in a backup file
`

func main() {
	log := obs.Logger
	if !config.LoadDotEnv() {
		log.Info("No .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if err := obs.Configure(cfg.LogLevel, cfg.LogFormat); err != nil {
		log.Fatal(err)
	}

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if err := run(context.Background(), cfg, os.Args[1], os.Args[2:]); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cfg config.Config, cmd string, args []string) error {
	log := obs.Logger.WithFields(logrus.Fields{"cmd": cmd, "storage": cfg.Storage})

	backend, err := kv.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer backend.Close()

	s := store.New(backend.Store)
	if err := s.Load(ctx); err != nil {
		return err
	}

	switch cmd {
	case "init":
		// kv.Open already created the schema.
		log.Info("Schema ready.")
		return nil

	case "seed":
		path, err := fileArg(cmd, args)
		if err != nil {
			return err
		}
		log.WithField("file", path).Info("Seeding store...")
		if err := backup.SeedFromJSON(ctx, s, path); err != nil {
			return err
		}
		log.Info("Seeding complete.")
		return nil

	case "export":
		fs := flag.NewFlagSet("export", flag.ContinueOnError)
		out := fs.String("o", backup.FileName(time.Now()), "output file")
		if err := fs.Parse(args); err != nil {
			return err
		}
		if err := backup.WriteFile(*out, s.Backup()); err != nil {
			return err
		}
		log.WithField("file", *out).Info("Backup written.")
		return nil

	case "import":
		path, err := fileArg(cmd, args)
		if err != nil {
			return err
		}
		snap, err := backup.ReadFile(path)
		if err != nil {
			return err
		}
		if err := s.Restore(ctx, snap); err != nil {
			return err
		}
		sum := s.Summary()
		log.WithFields(logrus.Fields{
			"file":      path,
			"locations": sum.Locations,
			"vehicles":  sum.Vehicles,
			"orders":    sum.Orders,
		}).Info("Backup restored.")
		return nil
	}

	return fmt.Errorf("unknown command %q\n%s", cmd, usage)
}

func fileArg(cmd string, args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("%s: expected exactly one file argument", cmd)
	}
	return args[0], nil
}
