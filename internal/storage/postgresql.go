package storage

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"game_store/internal/pkg/logger"
)

const (
	createTableQuery = `CREATE TABLE IF NOT EXISTS client_storage (key TEXT PRIMARY KEY, value BYTEA NOT NULL, updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW());`
	getValueQuery    = `SELECT value FROM client_storage WHERE key = $1;`
	setValueQuery    = `INSERT INTO client_storage (key, value) VALUES ($1, $2) ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW();`
	deleteValueQuery = `DELETE FROM client_storage WHERE key = $1;`
)

// PostgreSQL implements the Storage interface using a PostgreSQL table.
type PostgreSQL struct {
	db  *sql.DB        // Connection to the database.
	log *logger.Logger // Logger for recording events and errors.
}

// NewPostgreSQL opens the connection, pings the database and creates the storage table.
func NewPostgreSQL(configDBString string, l *logger.Logger) (*PostgreSQL, error) {
	db, err := sql.Open("pgx", configDBString)
	if err != nil {
		l.Sugar().Errorf("Failed to open a database: %s", err)
		return nil, err
	}

	const defaultTimeout = 10 * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		l.Sugar().Errorf("Database ping failed: %s", err)
		db.Close()
		return nil, err
	}

	if _, err := db.ExecContext(ctx, createTableQuery); err != nil {
		l.Sugar().Errorf("Failed to execute a query createTableQuery: %s", err)
		db.Close()
		return nil, err
	}

	return &PostgreSQL{db: db, log: l}, nil
}

// Close closes the database connection if it is open.
func (postgresql *PostgreSQL) Close() {
	if postgresql.db != nil {
		postgresql.db.Close()
	}
}

// Get returns the value stored under key. A dropped table reads as an empty store.
func (postgresql *PostgreSQL) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := postgresql.db.QueryRowContext(ctx, getValueQuery, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) || isUndefinedTable(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query getValueQuery: %s", err)
		return nil, err
	}
	return value, nil
}

// Set upserts the value stored under key, recreating the table if it was dropped.
func (postgresql *PostgreSQL) Set(ctx context.Context, key string, value []byte) error {
	_, err := postgresql.db.ExecContext(ctx, setValueQuery, key, value)
	if isUndefinedTable(err) {
		if _, err = postgresql.db.ExecContext(ctx, createTableQuery); err == nil {
			_, err = postgresql.db.ExecContext(ctx, setValueQuery, key, value)
		}
	}
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query setValueQuery: %s", err)
		return err
	}
	return nil
}

// Delete removes key.
func (postgresql *PostgreSQL) Delete(ctx context.Context, key string) error {
	_, err := postgresql.db.ExecContext(ctx, deleteValueQuery, key)
	if err != nil && !isUndefinedTable(err) {
		postgresql.log.Sugar().Errorf("Failed to execute a query deleteValueQuery: %s", err)
		return err
	}
	return nil
}

func isUndefinedTable(err error) bool {
	var pgError *pgconn.PgError
	return errors.As(err, &pgError) && pgError.Code == pgerrcode.UndefinedTable
}
