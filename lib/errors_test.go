package lib

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestMapDBError(t *testing.T) {
	unique := MapDBError(&pgconn.PgError{Code: "23505"})
	if !errors.Is(unique, ErrDuplicate) || !errors.Is(unique, ErrConflict) {
		t.Fatalf("unique violation mapped to %v, want ErrDuplicate", unique)
	}

	fk := MapDBError(&pgconn.PgError{Code: "23503"})
	if !errors.Is(fk, ErrForeignKey) || !errors.Is(fk, ErrConflict) {
		t.Fatalf("foreign key violation mapped to %v, want ErrForeignKey", fk)
	}
	if errors.Is(fk, ErrDuplicate) {
		t.Fatal("foreign key violation must not read as a duplicate")
	}

	noData := &pgconn.PgError{Code: "P0002"}
	if got := MapDBError(noData); !errors.Is(got, ErrNotFound) {
		t.Fatalf("no_data_found mapped to %v, want ErrNotFound", got)
	}
}

func TestMapDBErrorPassthrough(t *testing.T) {
	if got := MapDBError(nil); got != nil {
		t.Fatalf("MapDBError(nil) = %v, want nil", got)
	}

	plain := errors.New("connection refused")
	if got := MapDBError(plain); got != plain {
		t.Fatalf("unrelated error mapped to %v, want original", got)
	}

	other := &pgconn.PgError{Code: "42P01"}
	if got := MapDBError(other); !errors.Is(got, other) {
		t.Fatalf("unmapped SQLSTATE changed to %v", got)
	}
}

func TestMapDBErrorWrapped(t *testing.T) {
	wrapped := fmt.Errorf("insert user: %w", &pgconn.PgError{Code: "23505"})
	if got := MapDBError(wrapped); !errors.Is(got, ErrDuplicate) {
		t.Fatalf("wrapped unique violation mapped to %v, want ErrDuplicate", got)
	}
}

func TestIsHelpers(t *testing.T) {
	if !IsNotFound(fmt.Errorf("lookup: %w", ErrNotFound)) {
		t.Fatal("IsNotFound missed wrapped ErrNotFound")
	}
	if !IsUniqueViolation(fmt.Errorf("insert: %w", ErrDuplicate)) {
		t.Fatal("IsUniqueViolation missed wrapped ErrDuplicate")
	}
	if IsUniqueViolation(ErrForeignKey) {
		t.Fatal("IsUniqueViolation matched ErrForeignKey")
	}
	if IsNotFound(ErrConflict) {
		t.Fatal("IsNotFound matched ErrConflict")
	}
}
