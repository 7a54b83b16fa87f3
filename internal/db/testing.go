package db

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

const (
	TEST_POSTGRESQL_URL  = "TEST_POSTGRESQL_URL"
	TEST_MIGRATIONS_PATH = "TEST_MIGRATIONS_PATH"
)

// SkipWithoutTestDB skips tests that need a real database when none is
// configured.
func SkipWithoutTestDB(t testing.TB) {
	if os.Getenv(TEST_POSTGRESQL_URL) == "" {
		t.Skipf("%s is not set", TEST_POSTGRESQL_URL)
	}
}

func applyMigrations(connString string) error {
	migrationsPath := os.Getenv(TEST_MIGRATIONS_PATH)
	if migrationsPath == "" {
		return fmt.Errorf("%s must be set", TEST_MIGRATIONS_PATH)
	}
	m, err := migrate.New("file://"+migrationsPath, connString)
	if err != nil {
		return fmt.Errorf("could not connect to DB for applying migrations: %w", err)
	}
	defer m.Close()
	err = m.Up()
	if !errors.Is(err, migrate.ErrNoChange) && err != nil {
		return fmt.Errorf("could not apply DB migrations: %w", err)
	}
	return nil
}

func CreateTestPool(t testing.TB) *pgxpool.Pool {
	connString := os.Getenv(TEST_POSTGRESQL_URL)
	if connString == "" {
		t.Fatalf("%s must be set", TEST_POSTGRESQL_URL)
	}
	if err := applyMigrations(connString); err != nil {
		t.Fatal(err)
	}

	pool, err := pgxpool.Connect(context.Background(), connString)
	if err != nil {
		t.Fatalf("could not connect to the database: %v", err)
	}
	return pool
}

func TruncateTables(t testing.TB, pool *pgxpool.Pool, tables ...string) {
	_, err := pool.Exec(context.Background(), "TRUNCATE "+strings.Join(tables, ", "))
	if err != nil {
		t.Fatalf("could not truncate DB tables: %v", err)
	}
}
