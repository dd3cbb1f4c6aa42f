// Package repository handles all interactions with the database.
//
// Every portfolio resource is one JSONB document per row. The generic
// DocumentStore holds the shared SQL; the per-kind repositories add
// the lookups only one resource needs.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/deppfellow/portfolio-backend/internal/model"
	"github.com/deppfellow/portfolio-backend/internal/sqlerr"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the part of pgxpool.Pool the repositories use.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Table names double as entity names in "<Entity> not found" errors.
const (
	TableOwners       = "owners"
	TableProjects     = "projects"
	TableBlogs        = "blogs"
	TableExperiences  = "experiences"
	TableAchievements = "achievements"
)

const documentColumns = "id, created_at, updated_at, doc"

// DocumentStore implements create/read/update for one document table.
// PT is the pointer type of T so scanned rows can receive their metadata.
type DocumentStore[T any, PT interface {
	*T
	model.Document
}] struct {
	db    DBTX
	table string
}

func NewDocumentStore[T any, PT interface {
	*T
	model.Document
}](db DBTX, table string) *DocumentStore[T, PT] {
	return &DocumentStore[T, PT]{db: db, table: table}
}

// Create stores fields as a new document and returns it with its id and timestamps.
func (s *DocumentStore[T, PT]) Create(ctx context.Context, fields any) (*T, error) {
	doc, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("encoding %s document: %w", s.table, err)
	}

	stmt := fmt.Sprintf(`
		INSERT INTO %s (doc)
		VALUES ($1::jsonb)
		RETURNING %s
	`, s.table, documentColumns)

	return s.one(s.db.QueryRow(ctx, stmt, string(doc)))
}

// CreateWithID is Create with a caller-chosen id. Inserting an id twice is
// a unique violation.
func (s *DocumentStore[T, PT]) CreateWithID(ctx context.Context, id uuid.UUID, fields any) (*T, error) {
	doc, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("encoding %s document: %w", s.table, err)
	}

	stmt := fmt.Sprintf(`
		INSERT INTO %s (id, doc)
		VALUES ($1, $2::jsonb)
		RETURNING %s
	`, s.table, documentColumns)

	return s.one(s.db.QueryRow(ctx, stmt, id, string(doc)))
}

// GetAll returns every document in insertion order.
func (s *DocumentStore[T, PT]) GetAll(ctx context.Context) ([]T, error) {
	stmt := fmt.Sprintf(`SELECT %s FROM %s ORDER BY seq`, documentColumns, s.table)
	return s.many(ctx, stmt)
}

// Latest returns the n most recently created documents, newest first.
func (s *DocumentStore[T, PT]) Latest(ctx context.Context, n int) ([]T, error) {
	stmt := fmt.Sprintf(`
		SELECT %s FROM %s
		ORDER BY created_at DESC, seq DESC
		LIMIT $1
	`, documentColumns, s.table)
	return s.many(ctx, stmt, n)
}

func (s *DocumentStore[T, PT]) GetByID(ctx context.Context, id uuid.UUID) (*T, error) {
	stmt := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, documentColumns, s.table)
	return s.one(s.db.QueryRow(ctx, stmt, id))
}

// UpdateByID merges patch into the stored document. Keys absent from the
// patch keep their stored value.
func (s *DocumentStore[T, PT]) UpdateByID(ctx context.Context, id uuid.UUID, patch any) (*T, error) {
	doc, err := json.Marshal(patch)
	if err != nil {
		return nil, fmt.Errorf("encoding %s patch: %w", s.table, err)
	}

	stmt := fmt.Sprintf(`
		UPDATE %s
		SET doc = doc || $2::jsonb,
		    updated_at = now()
		WHERE id = $1
		RETURNING %s
	`, s.table, documentColumns)

	return s.one(s.db.QueryRow(ctx, stmt, id, string(doc)))
}

// findOne returns the first document matching a WHERE clause.
func (s *DocumentStore[T, PT]) findOne(ctx context.Context, where string, args ...any) (*T, error) {
	stmt := fmt.Sprintf(`SELECT %s FROM %s WHERE %s ORDER BY seq LIMIT 1`, documentColumns, s.table, where)
	return s.one(s.db.QueryRow(ctx, stmt, args...))
}

func (s *DocumentStore[T, PT]) one(row pgx.Row) (*T, error) {
	item, err := scanDocument[T, PT](row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sqlerr.NoRows(s.table)
		}
		return nil, fmt.Errorf("scanning %s document: %w", s.table, err)
	}
	return item, nil
}

func (s *DocumentStore[T, PT]) many(ctx context.Context, stmt string, args ...any) ([]T, error) {
	rows, err := s.db.Query(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", s.table, err)
	}

	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (T, error) {
		item, err := scanDocument[T, PT](row)
		if err != nil {
			var zero T
			return zero, err
		}
		return *item, nil
	})
	if err != nil {
		return nil, fmt.Errorf("collecting %s: %w", s.table, err)
	}

	return items, nil
}

func scanDocument[T any, PT interface {
	*T
	model.Document
}](row pgx.Row) (*T, error) {
	var (
		id        uuid.UUID
		createdAt time.Time
		updatedAt time.Time
		raw       []byte
	)
	if err := row.Scan(&id, &createdAt, &updatedAt, &raw); err != nil {
		return nil, err
	}

	return decodeDocument[T, PT](id, createdAt, updatedAt, raw)
}

// decodeDocument unmarshals the JSONB content and attaches the column metadata.
// Metadata keys stored inside the document are overridden by the columns.
func decodeDocument[T any, PT interface {
	*T
	model.Document
}](id uuid.UUID, createdAt, updatedAt time.Time, raw []byte) (*T, error) {
	item := PT(new(T))
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, item); err != nil {
			return nil, fmt.Errorf("decoding document %s: %w", id, err)
		}
	}
	item.SetMeta(id, createdAt, updatedAt)
	return (*T)(item), nil
}
