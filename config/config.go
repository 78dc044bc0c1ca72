package config

import (
	"fmt"
	"os"

	"github.com/dgraph-io/badger/v4"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DefaultStorePath is where the embedded store lives when STORE_PATH is
// not set.
const DefaultStorePath = "./data"

// StorePath returns the directory for the embedded badger store.
func StorePath() string {
	path := os.Getenv("STORE_PATH")
	if path == "" {
		path = DefaultStorePath
	}
	return path
}

// SeedPath returns the configured seed source: a local JSON file path or
// an http(s) URL. Empty means the bundled default.
func SeedPath() string {
	return os.Getenv("SEED_DATA_PATH")
}

// OpenStore opens the embedded badger database holding the durable
// snapshot record, creating the directory if needed.
func OpenStore() (*badger.DB, error) {
	path := StorePath()
	if err := os.MkdirAll(path, 0750); err != nil {
		return nil, fmt.Errorf("create store directory %s: %w", path, err)
	}

	opts := badger.DefaultOptions(path).
		WithSyncWrites(true).
		WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return db, nil
}

// OpenStoreInMemory opens a throwaway in-memory store for tests.
func OpenStoreInMemory() (*badger.DB, error) {
	opts := badger.DefaultOptions("").
		WithInMemory(true).
		WithLogger(nil)
	return badger.Open(opts)
}

// ConnectDatabase connects to the optional shared Postgres database. The
// remote data source is enabled only when DATABASE_URL is set.
func ConnectDatabase() (*gorm.DB, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return nil, nil
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	return db, nil
}
