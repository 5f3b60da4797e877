package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/infrastructure/config"
	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/infrastructure/logger"
	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/infrastructure/migration"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

func usage() {
	fmt.Fprint(os.Stderr, `Usage: migrate [-dir <path>] <command> [args]

Commands:
  up                    apply all pending migrations
  down                  roll back all migrations
  step <n>              apply n migrations (negative rolls back)
  goto <version>        migrate to an exact version
  version               print the current version
  force <version>       overwrite the recorded version after a failed run
  create <name> [desc]  write an empty up/down migration pair
  list                  list the migration files in the directory

Database settings come from config.toml or BAGFACTORY_DATABASE_* variables.
`)
	flag.PrintDefaults()
}

func main() {
	dir := flag.String("dir", "migrations", "migrations directory")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.Log.Level, Format: "console", Output: "stdout"})
	defer func() {
		_ = log.Sync()
	}()

	if err := run(*dir, flag.Args(), cfg, log); err != nil {
		log.Fatal("Migration command failed", zap.Error(err))
	}
}

func run(dir string, args []string, cfg *config.Config, log *zap.Logger) error {
	command, rest := args[0], args[1:]

	// create and list only touch the filesystem
	switch command {
	case "create":
		if len(rest) == 0 {
			return fmt.Errorf("create needs a migration name")
		}
		description := ""
		if len(rest) > 1 {
			description = rest[1]
		}
		mf, err := migration.CreateMigration(dir, rest[0], description)
		if err != nil {
			return err
		}
		log.Info("Migration pair created",
			zap.String("version", mf.Version),
			zap.String("up", mf.UpPath),
			zap.String("down", mf.DownPath),
		)
		return nil

	case "list":
		names, err := migration.ListMigrations(dir)
		if err != nil {
			return err
		}
		if len(names) == 0 {
			log.Info("No migrations found", zap.String("dir", dir))
			return nil
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	m, err := migration.New(db, dir, log)
	if err != nil {
		return err
	}
	defer m.Close()

	switch command {
	case "up":
		return m.Up()
	case "down":
		return m.Down()
	case "step":
		n, err := intArg(rest, "step count")
		if err != nil {
			return err
		}
		return m.Steps(n)
	case "goto":
		v, err := intArg(rest, "target version")
		if err != nil || v < 0 {
			return fmt.Errorf("goto needs a non-negative version")
		}
		return m.GoTo(uint(v))
	case "version":
		version, dirty, err := m.Version()
		if err != nil {
			return err
		}
		if version == 0 {
			log.Info("No migrations applied yet")
		} else {
			log.Info("Schema version", zap.Uint("version", version), zap.Bool("dirty", dirty))
		}
		return nil
	case "force":
		v, err := intArg(rest, "version")
		if err != nil {
			return err
		}
		log.Warn("Overwriting the recorded schema version", zap.Int("version", v))
		return m.Force(v)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func intArg(rest []string, what string) (int, error) {
	if len(rest) == 0 {
		return 0, fmt.Errorf("missing %s", what)
	}
	n, err := strconv.Atoi(rest[0])
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", what, rest[0])
	}
	return n, nil
}
