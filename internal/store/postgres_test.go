package store

import (
	"context"
	"encoding/json"
	"reflect"
	"regexp"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"

	"cutiplan/internal/domain/planner"
)

var (
	loadQuery = regexp.QuoteMeta(`
    SELECT doc
    FROM planner_documents
    WHERE id = $1
  `)
	saveQuery = regexp.QuoteMeta(`
    INSERT INTO planner_documents (id, doc)
    VALUES ($1, $2)
    ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc, updated_at = now()
  `)
)

func TestPostgresStoreLoad(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	want := planner.DefaultUserData()
	want.Entitlement = 12
	raw, _ := json.Marshal(want)

	mock.ExpectQuery(loadQuery).
		WithArgs(DefaultDocumentID).
		WillReturnRows(pgxmock.NewRows([]string{"doc"}).AddRow(raw))

	got, err := NewPostgresStore(mock).Load(context.Background())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected document:\n%+v\n%+v", got, want)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPostgresStoreLoadMissingRowDefaults(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(loadQuery).
		WithArgs(DefaultDocumentID).
		WillReturnRows(pgxmock.NewRows([]string{"doc"}))

	got, err := NewPostgresStore(mock).Load(context.Background())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !reflect.DeepEqual(got, planner.DefaultUserData()) {
		t.Fatalf("expected defaults, got %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPostgresStoreSave(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	data := planner.DefaultUserData()
	data.Leaves = []planner.LeaveEntry{{ID: "l1", Date: "2026-03-02", Type: planner.LeaveAnnual}}
	raw, _ := json.Marshal(data)

	mock.ExpectExec(saveQuery).
		WithArgs(DefaultDocumentID, raw).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	if err := NewPostgresStore(mock).Save(context.Background(), data); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
