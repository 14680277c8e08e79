package database

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"jobSearchTracker/internal/logging"
)

//go:embed schema.sql
var defaultSchema string

// Pragmas forced ON for every connection.
var enforcedPragmas = []string{"foreign_keys", "recursive_triggers"}

// Connection parameters understood by go-sqlite3; they apply the same pragmas
// to any connection the pool opens later.
const connectionParams = "?_foreign_keys=on&_recursive_triggers=on"

// Options configures Open
type Options struct {
	// InitScriptPath overrides the embedded schema applied to new stores.
	InitScriptPath string
	Logger         *logging.Logger
}

// DefaultSchema returns the embedded initialization script
func DefaultSchema() string {
	return defaultSchema
}

// Open opens the store at path. An existing file is opened unchanged;
// otherwise a new store is created (in memory when path is empty) and the
// initialization script is applied to it once.
func Open(ctx context.Context, path string, opts Options) (*sqlx.DB, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}

	location := path
	create := true
	if path == "" {
		location = ":memory:"
	} else if fileExists(path) {
		create = false
	}

	var script string
	if create {
		var err error
		if script, err = readInitScript(opts.InitScriptPath); err != nil {
			return nil, err
		}
	}

	db, err := sqlx.Open("sqlite3", location+connectionParams)
	if err != nil {
		return nil, StorageError("failed to open database", err)
	}

	// one caller-owned connection; an in-memory store lives only as long as it does
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, StorageError("failed to ping database", err)
	}

	if create {
		if _, err := db.ExecContext(ctx, script); err != nil {
			db.Close()
			if path != "" {
				if rmErr := os.Remove(path); rmErr != nil {
					logger.WithError(rmErr).WithField("path", path).Warn("Failed to remove partially initialized database")
				}
			}
			return nil, StorageError("failed to apply initialization script", err)
		}
		logger.WithField("path", location).Info("Created and initialized database")
	}

	changed, err := EnsurePragmas(ctx, db)
	if err != nil {
		db.Close()
		return nil, err
	}
	if len(changed) > 0 {
		logger.WithField("pragmas", changed).Debug("Enabled connection pragmas")
	}

	return db, nil
}

// EnsurePragmas turns on referential integrity and trigger enforcement,
// setting only those that are currently off. It returns the pragmas it changed.
func EnsurePragmas(ctx context.Context, db sqlx.ExtContext) ([]string, error) {
	var changed []string
	for _, name := range enforcedPragmas {
		var enabled int
		if err := sqlx.GetContext(ctx, db, &enabled, "PRAGMA "+name); err != nil {
			return changed, StorageError(fmt.Sprintf("failed to read pragma %s", name), err)
		}
		if enabled != 0 {
			continue
		}
		if _, err := db.ExecContext(ctx, "PRAGMA "+name+" = ON"); err != nil {
			return changed, StorageError(fmt.Sprintf("failed to enable pragma %s", name), err)
		}
		changed = append(changed, name)
	}
	return changed, nil
}

func readInitScript(path string) (string, error) {
	if path == "" {
		return defaultSchema, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read init script: %w", err)
	}
	return string(data), nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
