package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"eurojackpot/cmd"
	"eurojackpot/config"
	"eurojackpot/database"

	log "github.com/sirupsen/logrus"
)

func main() {
	config.SetupLogging(config.Get())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var err error
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "migrate":
			err = handleMigrationCommand(os.Args[2:])
		case "import":
			err = handleImportCommand(ctx, os.Args[2:])
		case "generate":
			err = handleGenerateCommand(ctx, os.Args[2:])
		default:
			err = fmt.Errorf("unknown command: %s (expected migrate, import or generate)", os.Args[1])
		}
	} else {
		err = cmd.Run(ctx)
	}

	if err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

func handleMigrationCommand(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: eurojackpot migrate [up|down|status] [args...]")
	}

	databaseURL := config.Get().GetDatabaseURL()
	switch args[0] {
	case "up":
		return database.MigrateUp(databaseURL)
	case "down":
		steps := "1"
		if len(args) > 1 {
			steps = args[1]
		}
		return database.MigrateDown(databaseURL, steps)
	case "status":
		return database.MigrateStatus(databaseURL)
	default:
		return fmt.Errorf("unknown migration command: %s", args[0])
	}
}

func handleImportCommand(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	exportPath := fs.String("export", "", "write the stored history to this JSON file after importing")
	if err := fs.Parse(args); err != nil {
		return err
	}

	return cmd.Import(ctx, cmd.ImportOptions{ExportPath: *exportPath})
}

func handleGenerateCommand(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	seed := fs.String("seed", "", "seed for a reproducible ticket")
	strategy := fs.String("strategy", "", "strategy id to force instead of a random pick")
	if err := fs.Parse(args); err != nil {
		return err
	}

	opts := cmd.GenerateOptions{Strategy: *strategy}
	if *seed != "" {
		value, err := strconv.ParseUint(*seed, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid seed %q: %w", *seed, err)
		}
		opts.Seed = value
		opts.Seeded = true
	}

	return cmd.Generate(ctx, os.Stdout, opts)
}
