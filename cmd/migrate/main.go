package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

func main() {
	path := flag.String("path", "migrations", "directory with migration files")
	down := flag.Bool("down", false, "revert all migrations")
	flag.Parse()

	connString := os.Getenv("POSTGRESQL_URL")
	if connString == "" {
		fmt.Fprintln(os.Stderr, "error: POSTGRESQL_URL must be set")
		os.Exit(1)
	}

	m, err := migrate.New("file://"+*path, connString)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not connect to DB for applying migrations: %v\n", err)
		os.Exit(1)
	}
	defer m.Close()

	if *down {
		err = m.Down()
	} else {
		err = m.Up()
	}
	if errors.Is(err, migrate.ErrNoChange) {
		fmt.Println("No migrations to apply.")
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not apply DB migrations: %v\n", err)
		os.Exit(1)
	}

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		fmt.Println("All migrations reverted.")
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not read DB version: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("DB is at version %d (dirty: %v).\n", version, dirty)
}
