package lib

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Chi-G/JPATHNEC-sub000/structs"
)

func TestExtractAndValidateBody(t *testing.T) {
	r := httptest.NewRequest("POST", "/auth/login", strings.NewReader(`{"email":"jane@example.com","password":"supersecret"}`))

	body, err := ExtractAndValidateBody[structs.LoginRequest](r)
	if err != nil {
		t.Fatalf("ExtractAndValidateBody returned error: %v", err)
	}
	if body.Email != "jane@example.com" {
		t.Fatalf("Email = %q, want jane@example.com", body.Email)
	}
}

func TestExtractAndValidateBodyRejectsUnknownFields(t *testing.T) {
	r := httptest.NewRequest("POST", "/auth/login", strings.NewReader(`{"email":"jane@example.com","password":"supersecret","admin":true}`))

	if _, err := ExtractAndValidateBody[structs.LoginRequest](r); err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestExtractAndValidateBodyValidationErrors(t *testing.T) {
	r := httptest.NewRequest("POST", "/auth/login", strings.NewReader(`{"email":"not-an-email","password":"short"}`))

	_, err := ExtractAndValidateBody[structs.LoginRequest](r)
	if err == nil {
		t.Fatal("expected validation error")
	}

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("error type = %T, want *ValidationError", err)
	}
	if len(ve.Errors) != 2 {
		t.Fatalf("got %d field errors, want 2", len(ve.Errors))
	}

	byField := make(map[string]string)
	for _, fe := range ve.Errors {
		byField[fe.Field] = fe.Message
	}
	if byField["email"] != "must be a valid email address" {
		t.Fatalf("email message = %q", byField["email"])
	}
	if byField["password"] != "must be at least 8" {
		t.Fatalf("password message = %q", byField["password"])
	}
}

func TestValidateStructCartRequest(t *testing.T) {
	req := structs.AddToCartRequest{
		ProductId: "not-a-uuid",
		Quantity:  0,
	}

	err := ValidateStruct(req)
	if err == nil {
		t.Fatal("expected validation error")
	}

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("error type = %T, want *ValidationError", err)
	}
	if len(ve.Errors) != 2 {
		t.Fatalf("got %d field errors, want 2", len(ve.Errors))
	}
}
