package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"

	"realestate/internal/catalog/seed"
	"realestate/internal/catalog/store/mongostore"
	"realestate/internal/platform/logger"
	"realestate/internal/platform/mongodb"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := seedCommand().Run(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}

func seedCommand() *cli.Command {
	def := seed.DefaultOptions()
	return &cli.Command{
		Name:  "seed",
		Usage: "Fill the catalog database with generated owners, properties, images and traces",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "mongo-uri", Value: "mongodb://localhost:27017", Sources: cli.EnvVars("MONGO_URI"), Usage: "MongoDB connection string"},
			&cli.StringFlag{Name: "database", Value: "realestate", Sources: cli.EnvVars("MONGO_DATABASE"), Usage: "database name"},
			&cli.DurationFlag{Name: "timeout", Value: 30 * time.Second, Sources: cli.EnvVars("MONGO_TIMEOUT"), Usage: "per-operation timeout"},
			&cli.IntFlag{Name: "owners", Value: def.Owners},
			&cli.IntFlag{Name: "properties", Value: def.Properties},
			&cli.IntFlag{Name: "images", Value: def.Images},
			&cli.IntFlag{Name: "traces", Value: def.Traces},
			&cli.IntFlag{Name: "batch-size", Value: def.BatchSize},
			&cli.IntFlag{Name: "concurrency", Value: def.Concurrency, Usage: "batches inserted in parallel"},
			&cli.Uint64Flag{Name: "seed", Value: def.Seed, Usage: "random seed for generated values"},
			&cli.BoolFlag{Name: "drop", Usage: "drop the database before seeding"},
			&cli.StringFlag{Name: "log-level", Value: "info", Sources: cli.EnvVars("LOG_LEVEL")},
		},
		Action: runSeed,
	}
}

func runSeed(ctx context.Context, c *cli.Command) error {
	log := logger.New(c.String("log-level"))

	client, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      c.String("mongo-uri"),
		Database: c.String("database"),
		Timeout:  c.Duration("timeout"),
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Close(context.Background()); err != nil {
			log.Warn("failed to close mongodb client", "error", err)
		}
	}()

	if c.Bool("drop") {
		log.Info("dropping database", "database", c.String("database"))
		if err := client.DropDatabase(ctx); err != nil {
			return err
		}
	}

	store := mongostore.New(client.Database(), mongostore.WithLogger(log))
	seeder := seed.New(seed.Targets{
		Owners:     store.Owners,
		Properties: store.Properties,
		Images:     store.Images,
		Traces:     store.Traces,
		Indexes:    store,
	}, log)

	_, err = seeder.Seed(ctx, seed.Options{
		Owners:      c.Int("owners"),
		Properties:  c.Int("properties"),
		Images:      c.Int("images"),
		Traces:      c.Int("traces"),
		BatchSize:   c.Int("batch-size"),
		Concurrency: c.Int("concurrency"),
		Seed:        c.Uint64("seed"),
	})
	return err
}
