package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Chi-G/JPATHNEC-sub000/lib"
	"github.com/Chi-G/JPATHNEC-sub000/structs"
	"github.com/MonkyMars/gecho"
)

func newTestGateway(t *testing.T, handler http.HandlerFunc) *PaystackClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := gecho.NewLogger(gecho.NewConfig(gecho.WithLogLevel(gecho.ParseLogLevel("error"))))
	return NewPaystackClient(logger, &structs.PaymentConfig{
		SecretKey: "sk_test_secret",
		BaseURL:   server.URL,
		Currency:  "NGN",
		Timeout:   5 * time.Second,
	})
}

func TestInitializeTransaction(t *testing.T) {
	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/transaction/initialize" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sk_test_secret" {
			t.Fatalf("Authorization header = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": true,
			"message": "Authorization URL created",
			"data": {
				"authorization_url": "https://checkout.paystack.com/abc123",
				"access_code": "abc123",
				"reference": "JPREF-AAAABBBBCCCC"
			}
		}`))
	})

	out, err := gateway.InitializeTransaction(context.Background(), "jane@example.com", 6598, "JPREF-AAAABBBBCCCC", TransactionMetadata{
		UserID:      "7f3a0d9e-0000-0000-0000-000000000000",
		OrderNumber: "JP-AAAA1111",
	})
	if err != nil {
		t.Fatalf("InitializeTransaction returned error: %v", err)
	}
	if out.AuthorizationURL != "https://checkout.paystack.com/abc123" {
		t.Fatalf("AuthorizationURL = %q", out.AuthorizationURL)
	}
	if out.Reference != "JPREF-AAAABBBBCCCC" {
		t.Fatalf("Reference = %q", out.Reference)
	}
}

func TestInitializeTransactionAPIError(t *testing.T) {
	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"status": false, "message": "Invalid key"}`))
	})

	_, err := gateway.InitializeTransaction(context.Background(), "jane@example.com", 6598, "JPREF-AAAABBBBCCCC", TransactionMetadata{})
	if !errors.Is(err, lib.ErrGateway) {
		t.Fatalf("error = %v, want ErrGateway", err)
	}
}

func TestVerifyTransactionSuccess(t *testing.T) {
	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/transaction/verify/JPREF-AAAABBBBCCCC" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": true,
			"message": "Verification successful",
			"data": {
				"status": "success",
				"reference": "JPREF-AAAABBBBCCCC",
				"amount": 6598,
				"currency": "NGN",
				"channel": "card",
				"metadata": {"user_id": "7f3a0d9e-0000-0000-0000-000000000000", "order_number": "JP-AAAA1111"}
			}
		}`))
	})

	out, err := gateway.VerifyTransaction(context.Background(), "JPREF-AAAABBBBCCCC")
	if err != nil {
		t.Fatalf("VerifyTransaction returned error: %v", err)
	}
	if !out.IsSuccessful() {
		t.Fatal("expected transaction to be successful")
	}
	if out.Amount != 6598 {
		t.Fatalf("Amount = %d, want 6598", out.Amount)
	}
	if out.Metadata.OrderNumber != "JP-AAAA1111" {
		t.Fatalf("Metadata.OrderNumber = %q", out.Metadata.OrderNumber)
	}
}

func TestVerifyTransactionFailedCharge(t *testing.T) {
	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": true,
			"message": "Verification successful",
			"data": {
				"status": "failed",
				"reference": "JPREF-AAAABBBBCCCC",
				"amount": 6598,
				"gateway_response": "Declined"
			}
		}`))
	})

	out, err := gateway.VerifyTransaction(context.Background(), "JPREF-AAAABBBBCCCC")
	if err != nil {
		t.Fatalf("VerifyTransaction returned error: %v", err)
	}
	if out.IsSuccessful() {
		t.Fatal("declined charge reported as successful")
	}
}

func TestVerifyTransactionMalformedResponse(t *testing.T) {
	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>bad gateway</html>"))
	})

	_, err := gateway.VerifyTransaction(context.Background(), "JPREF-AAAABBBBCCCC")
	if !errors.Is(err, lib.ErrGateway) {
		t.Fatalf("error = %v, want ErrGateway", err)
	}
}
