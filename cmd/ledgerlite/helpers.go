package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/viper"

	"github.com/ledgerlite/ledgerlite/internal/config"
	"github.com/ledgerlite/ledgerlite/internal/service"
	"github.com/ledgerlite/ledgerlite/internal/storage"
)

const defaultDBPath = "~/.local/share/ledgerlite/ledger.db"

// initStorage opens the configured database and brings its schema up to
// date. Callers own the returned storage and must Close it.
func initStorage(ctx context.Context) (service.Storage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = defaultDBPath
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database at %s: %w", dbPath, err)
	}

	if err := store.Migrate(ctx); err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

const dateLayout = "2006-01-02"

func parseDate(arg string) (time.Time, error) {
	t, err := time.Parse(dateLayout, arg)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", arg)
	}
	return t, nil
}

// parseEndDate parses the end of an inclusive date range. Transactions carry
// full timestamps, so the returned bound is the last instant of the named
// day; a plain midnight bound would drop anything recorded later that day.
func parseEndDate(arg string) (time.Time, error) {
	t, err := parseDate(arg)
	if err != nil {
		return time.Time{}, err
	}
	return t.AddDate(0, 0, 1).Add(-time.Nanosecond), nil
}
