package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/Chi-G/JPATHNEC-sub000/lib"
	"github.com/Chi-G/JPATHNEC-sub000/structs"
	"github.com/MonkyMars/gecho"
)

// PaystackClient is a thin typed client for the Paystack transaction API.
type PaystackClient struct {
	logger     *gecho.Logger
	cfg        *structs.PaymentConfig
	httpClient *http.Client
}

func NewPaystackClient(logger *gecho.Logger, cfg *structs.PaymentConfig) *PaystackClient {
	return &PaystackClient{
		logger: logger,
		cfg:    cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// TransactionMetadata travels with the transaction and comes back on verify,
// it is what lets reconciliation rebuild an order when the original row is missing.
type TransactionMetadata struct {
	UserID      string `json:"user_id"`
	OrderNumber string `json:"order_number"`
}

type initializeTransactionRequest struct {
	Email       string              `json:"email"`
	Amount      int64               `json:"amount"` // subunits (cents/kobo)
	Reference   string              `json:"reference"`
	Currency    string              `json:"currency,omitempty"`
	CallbackURL string              `json:"callback_url,omitempty"`
	Channels    []string            `json:"channels,omitempty"`
	Metadata    TransactionMetadata `json:"metadata"`
}

// InitializedTransaction is the hosted-checkout handle returned by the gateway.
type InitializedTransaction struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

// VerifiedTransaction is the authoritative transaction state from the gateway.
type VerifiedTransaction struct {
	Status          string              `json:"status"` // success, failed, abandoned
	Reference       string              `json:"reference"`
	Amount          int64               `json:"amount"`
	Currency        string              `json:"currency"`
	Channel         string              `json:"channel"`
	PaidAt          string              `json:"paid_at"`
	GatewayResponse string              `json:"gateway_response"`
	Metadata        TransactionMetadata `json:"metadata"`
}

// IsSuccessful reports whether the gateway settled the charge.
func (vt *VerifiedTransaction) IsSuccessful() bool {
	return vt.Status == "success"
}

// IsTerminalFailure reports whether the charge is dead. Statuses like
// "pending" and "ongoing" mean the customer may still complete payment.
func (vt *VerifiedTransaction) IsTerminalFailure() bool {
	switch vt.Status {
	case "failed", "abandoned", "reversed":
		return true
	}
	return false
}

type apiEnvelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// InitializeTransaction creates a hosted checkout session for the given amount.
func (pc *PaystackClient) InitializeTransaction(ctx context.Context, email string, amount int64, reference string, metadata TransactionMetadata) (*InitializedTransaction, error) {
	payload := initializeTransactionRequest{
		Email:       email,
		Amount:      amount,
		Reference:   reference,
		Currency:    pc.cfg.Currency,
		CallbackURL: pc.cfg.CallbackURL,
		Metadata:    metadata,
	}

	var out InitializedTransaction
	if err := pc.post(ctx, "/transaction/initialize", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// VerifyTransaction fetches the authoritative state of a transaction.
func (pc *PaystackClient) VerifyTransaction(ctx context.Context, reference string) (*VerifiedTransaction, error) {
	var out VerifiedTransaction
	if err := pc.get(ctx, "/transaction/verify/"+reference, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (pc *PaystackClient) post(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, pc.cfg.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	return pc.do(req, out)
}

func (pc *PaystackClient) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pc.cfg.BaseURL+path, nil)
	if err != nil {
		return err
	}

	return pc.do(req, out)
}

func (pc *PaystackClient) do(req *http.Request, out any) error {
	req.Header.Set("Authorization", "Bearer "+pc.cfg.SecretKey)
	req.Header.Set("Accept", "application/json")

	resp, err := pc.httpClient.Do(req)
	if err != nil {
		pc.logger.Error("Gateway request failed",
			gecho.Field("error", err),
			gecho.Field("path", req.URL.Path))
		return fmt.Errorf("%w: %v", lib.ErrGateway, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("%w: reading response: %v", lib.ErrGateway, err)
	}

	var envelope apiEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		pc.logger.Error("Gateway returned malformed response",
			gecho.Field("status_code", resp.StatusCode),
			gecho.Field("path", req.URL.Path))
		return fmt.Errorf("%w: malformed response (status %d)", lib.ErrGateway, resp.StatusCode)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !envelope.Status {
		pc.logger.Warn("Gateway rejected request",
			gecho.Field("status_code", resp.StatusCode),
			gecho.Field("message", envelope.Message),
			gecho.Field("path", req.URL.Path))
		return fmt.Errorf("%w: %s", lib.ErrGateway, envelope.Message)
	}

	if out != nil {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("%w: decoding data: %v", lib.ErrGateway, err)
		}
	}
	return nil
}
