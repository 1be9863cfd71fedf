package lib

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/uptrace/bun/driver/pgdriver"
)

// Database errors. ErrDuplicate and ErrForeignKey wrap ErrConflict so
// handlers can map either to a 409 without caring which constraint fired.
var (
	ErrConflict   = errors.New("conflict")
	ErrNotFound   = errors.New("not found")
	ErrDuplicate  = fmt.Errorf("%w: duplicate row", ErrConflict)
	ErrForeignKey = fmt.Errorf("%w: referenced row missing", ErrConflict)
)

// Auth errors
var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("expired token")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Storefront errors
var (
	ErrEmptyCart           = errors.New("cart is empty")
	ErrOutOfStock          = errors.New("insufficient stock")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrOrderNotCancellable = errors.New("order can no longer be cancelled")
	ErrGateway             = errors.New("payment gateway error")
	ErrNothingToReconcile  = errors.New("nothing to reconcile")
)

// MapDBError maps Postgres driver errors to user-friendly sentinel errors.
// Errors without a known SQLSTATE are returned unchanged.
func MapDBError(err error) error {
	if err == nil {
		return nil
	}
	switch sqlState(err) {
	case "23505": // unique_violation
		return ErrDuplicate
	case "23503": // foreign_key_violation
		return ErrForeignKey
	case "P0002": // no_data_found
		return ErrNotFound
	}
	return err
}

func sqlState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	var drvErr pgdriver.Error
	if errors.As(err, &drvErr) {
		return drvErr.Field('C')
	}
	return ""
}

// IsNotFound reports whether the error indicates a missing row.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsUniqueViolation reports whether the error indicates a duplicate row.
// Foreign key violations also map to ErrConflict but are not duplicates.
func IsUniqueViolation(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// GetDetailForLogging returns a log-safe description of an error.
func GetDetailForLogging(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
