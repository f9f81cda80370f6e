package store

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"cutiplan/internal/domain/planner"
)

// DefaultDocumentID identifies the single-user planner document.
const DefaultDocumentID = "default"

// Querier is the subset of pgxpool.Pool the store needs; pgxmock
// satisfies it in tests.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PostgresStore keeps the planner document as one JSONB row.
type PostgresStore struct {
	db    Querier
	docID string
}

func NewPostgresStore(db Querier) *PostgresStore {
	return &PostgresStore{db: db, docID: DefaultDocumentID}
}

func (s *PostgresStore) Load(ctx context.Context) (planner.UserData, error) {
	var raw []byte
	err := s.db.QueryRow(ctx, `
    SELECT doc
    FROM planner_documents
    WHERE id = $1
  `, s.docID).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return planner.DefaultUserData(), nil
	}
	if err != nil {
		return planner.UserData{}, err
	}
	return planner.DecodeUserData(raw), nil
}

func (s *PostgresStore) Save(ctx context.Context, data planner.UserData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(ctx, `
    INSERT INTO planner_documents (id, doc)
    VALUES ($1, $2)
    ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc, updated_at = now()
  `, s.docID, raw)
	return err
}
