// Package store persists issued Guids in MySQL.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Lzww0608/guid"
	"github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
)

// mysqlDuplicateEntry is ER_DUP_ENTRY
const mysqlDuplicateEntry = 1062

// ErrNotFound is returned when no record exists for a Guid.
var ErrNotFound = errors.New("store: guid not found")

// Record is a stored Guid. Seed is empty for randomly generated Guids.
type Record struct {
	ID        guid.Guid
	Seed      string
	CreatedAt time.Time
}

// Repository is the persistence used by Registry.
type Repository interface {
	Save(ctx context.Context, rec Record) error
	Find(ctx context.Context, id guid.Guid) (Record, error)
	Delete(ctx context.Context, id guid.Guid) error
}

// DAO implements Repository on a MySQL table. Ids are kept in a
// BINARY(12) column.
type DAO struct {
	db    *sql.DB
	table string
}

// Open connects to the database described by cfg.
func Open(cfg Config) (*DAO, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	db, err := sql.Open("mysql", cfg.DSN())
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return NewDAO(db, cfg.Table)
}

// NewDAO wraps an existing connection pool.
func NewDAO(db *sql.DB, table string) (*DAO, error) {
	if !tableName.MatchString(table) {
		return nil, fmt.Errorf("store: invalid table name %q", table)
	}
	return &DAO{db: db, table: table}, nil
}

// Close closes the underlying pool.
func (dao *DAO) Close() error {
	return dao.db.Close()
}

// CreateTable creates the table if it does not exist yet.
func (dao *DAO) CreateTable(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id BINARY(%d) PRIMARY KEY,
			seed VARCHAR(255) NULL,
			created_at DATETIME NOT NULL
		)`, dao.table, guid.ByteLength)
	if _, err := dao.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("store: create table: %w", err)
	}
	return nil
}

// Save inserts rec. Saving an id that is already stored is not an error.
func (dao *DAO) Save(ctx context.Context, rec Record) error {
	id, err := rec.ID.Bytes()
	if err != nil {
		return err
	}
	seed := sql.NullString{String: rec.Seed, Valid: rec.Seed != ""}

	query := fmt.Sprintf("INSERT INTO %s (id, seed, created_at) VALUES (?, ?, ?)", dao.table)
	_, err = dao.db.ExecContext(ctx, query, id, seed, rec.CreatedAt.UTC())
	if err != nil {
		var myErr *mysql.MySQLError
		if errors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry {
			log.Trace().Str("id", rec.ID.String()).Msg("guid already stored")
			return nil
		}
		return fmt.Errorf("store: save %s: %w", rec.ID, err)
	}

	log.Trace().
		Str("id", rec.ID.String()).
		Str("seed", rec.Seed).
		Msg("guid stored")
	return nil
}

// Find returns the record stored for id.
func (dao *DAO) Find(ctx context.Context, id guid.Guid) (Record, error) {
	key, err := id.Bytes()
	if err != nil {
		return Record{}, err
	}

	query := fmt.Sprintf("SELECT id, seed, created_at FROM %s WHERE id = ?", dao.table)
	var rec Record
	var seed sql.NullString
	err = dao.db.QueryRowContext(ctx, query, key).Scan(&rec.ID, &seed, &rec.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, fmt.Errorf("store: find %s: %w", id, err)
	}
	rec.Seed = seed.String
	return rec, nil
}

// Delete removes the record for id.
func (dao *DAO) Delete(ctx context.Context, id guid.Guid) error {
	key, err := id.Bytes()
	if err != nil {
		return err
	}

	query := fmt.Sprintf("DELETE FROM %s WHERE id = ?", dao.table)
	res, err := dao.db.ExecContext(ctx, query, key)
	if err != nil {
		return fmt.Errorf("store: delete %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("store: delete %s: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
