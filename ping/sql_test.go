package ping

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	_ "modernc.org/sqlite"
)

// TestSQL_Passing verifies a live database handle passes.
func TestSQL_Passing(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer db.Close()

	probe := SQL(db)
	if err := probe(context.Background()); err != nil {
		t.Errorf("expected pass, got %v", err)
	}
}

// TestSQL_Closed verifies a closed handle fails.
func TestSQL_Closed(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	db.Close()

	probe := SQL(db)
	if err := probe(context.Background()); err == nil {
		t.Error("expected failure for closed handle")
	}
}

// TestSQL_NilHandle verifies a nil handle is reported, not dereferenced.
func TestSQL_NilHandle(t *testing.T) {
	probe := SQL(nil)
	if err := probe(context.Background()); !errors.Is(err, ErrNilClient) {
		t.Errorf("expected ErrNilClient, got %v", err)
	}
}
