package storage

import (
	"database/sql"
	"time"

	_ "github.com/lib/pq"
)

// Open opens a Postgres database handle for the given DSN and verifies the
// connection. The handle is a process-wide pool; request-scoped connections
// are checked out of it per request via Stores.Acquire.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}
