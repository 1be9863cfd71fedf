package handling

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Chi-G/JPATHNEC-sub000/lib"
	"github.com/MonkyMars/gecho"
)

func testLogger() *gecho.Logger {
	return gecho.NewLogger(gecho.NewConfig(gecho.WithLogLevel(gecho.ParseLogLevel("error"))))
}

func TestHandleErrorStatusCodes(t *testing.T) {
	logger := testLogger()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", lib.ErrNotFound, http.StatusNotFound},
		{"conflict", lib.ErrConflict, http.StatusConflict},
		{"duplicate row", lib.ErrDuplicate, http.StatusConflict},
		{"invalid credentials", lib.ErrInvalidCredentials, http.StatusUnauthorized},
		{"expired token", lib.ErrExpiredToken, http.StatusUnauthorized},
		{"empty cart", lib.ErrEmptyCart, http.StatusBadRequest},
		{"out of stock", lib.ErrOutOfStock, http.StatusConflict},
		{"order not cancellable", lib.ErrOrderNotCancellable, http.StatusConflict},
		{"nothing to reconcile", lib.ErrNothingToReconcile, http.StatusNotFound},
		{"gateway down", lib.ErrGateway, http.StatusServiceUnavailable},
		{"wrapped sentinel", fmt.Errorf("fetch order: %w", lib.ErrNotFound), http.StatusNotFound},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		rec := httptest.NewRecorder()
		HandleError(tt.err, "Something went wrong", logger, rec)
		if rec.Code != tt.want {
			t.Errorf("%s: status %d, want %d", tt.name, rec.Code, tt.want)
		}
	}
}

// A mapped sentinel must produce exactly one response, not a response
// followed by a 500.
func TestHandleErrorWritesSingleResponse(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(lib.ErrNotFound, "Order not found", testLogger(), rec)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status %d, want %d", rec.Code, http.StatusNotFound)
	}
	if !json.Valid(rec.Body.Bytes()) {
		t.Fatalf("body is not a single JSON document: %s", rec.Body.String())
	}
}

func TestHandleErrorValidation(t *testing.T) {
	rec := httptest.NewRecorder()
	vErr := &lib.ValidationError{Errors: []lib.FieldError{{Field: "email", Message: "must be a valid email address"}}}
	HandleError(fmt.Errorf("register: %w", vErr), "Validation failed", testLogger(), rec)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
