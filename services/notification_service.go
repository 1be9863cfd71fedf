package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Chi-G/JPATHNEC-sub000/database"
	"github.com/Chi-G/JPATHNEC-sub000/lib"
	"github.com/Chi-G/JPATHNEC-sub000/structs"
	"github.com/Chi-G/JPATHNEC-sub000/structs/tables"
	"github.com/MonkyMars/gecho"
)

// NotificationService fans order events out to the channels the store uses:
// email always, WhatsApp when a message API is configured.
type NotificationService struct {
	logger       *gecho.Logger
	cfg          *structs.Config
	db           *database.DB
	emailService *EmailService
	httpClient   *http.Client
}

func NewNotificationService(logger *gecho.Logger, cfg *structs.Config, db *database.DB, emailService *EmailService) *NotificationService {
	return &NotificationService{
		logger:       logger,
		cfg:          cfg,
		db:           db,
		emailService: emailService,
		httpClient:   &http.Client{Timeout: 10 * time.Second},
	}
}

// NotifyOrderConfirmed runs after payment settles. Failures are logged, a
// missed notification never fails the payment flow.
func (ns *NotificationService) NotifyOrderConfirmed(order *tables.Order) {
	user, err := ns.orderCustomer(order)
	if err != nil {
		ns.logger.Error("Cannot notify, customer lookup failed",
			gecho.Field("error", err),
			gecho.Field("order_id", order.Id))
		return
	}

	if err := ns.emailService.SendOrderConfirmationEmail(order, user.Email); err != nil {
		ns.logger.Error("Failed to send order confirmation email",
			gecho.Field("error", err),
			gecho.Field("order_number", order.OrderNumber))
	}

	ns.sendWhatsApp(user.Phone, fmt.Sprintf(
		"JPATHNEC: your order %s is confirmed. Total $%s. Track it at %s/orders/%s",
		order.OrderNumber, lib.FormatAmount(order.Total), ns.cfg.Server.FrontendURL, order.OrderNumber))
}

// NotifyOrderStatusChanged runs after an admin moves the order along.
func (ns *NotificationService) NotifyOrderStatusChanged(order *tables.Order, location, description string) {
	user, err := ns.orderCustomer(order)
	if err != nil {
		ns.logger.Error("Cannot notify, customer lookup failed",
			gecho.Field("error", err),
			gecho.Field("order_id", order.Id))
		return
	}

	if err := ns.emailService.SendOrderStatusEmail(order, user.Email, location, description); err != nil {
		ns.logger.Error("Failed to send order status email",
			gecho.Field("error", err),
			gecho.Field("order_number", order.OrderNumber))
	}

	if order.Status == tables.OrderStatusShipped {
		msg := fmt.Sprintf("JPATHNEC: your order %s has shipped.", order.OrderNumber)
		if order.TrackingNumber != "" {
			msg += " Tracking: " + order.TrackingNumber
		}
		ns.sendWhatsApp(user.Phone, msg)
	}
}

func (ns *NotificationService) orderCustomer(order *tables.Order) (*tables.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	user, err := database.Query[tables.User](ns.db).Where("id", order.UserId).First(ctx)
	if err != nil {
		return nil, lib.MapDBError(err)
	}
	if user == nil {
		return nil, lib.ErrNotFound
	}
	return user, nil
}

// sendWhatsApp posts a text message to the configured WhatsApp message API.
// No-op when the channel is not configured or the customer has no phone.
func (ns *NotificationService) sendWhatsApp(phone, message string) {
	if ns.cfg.Payment.WhatsAppURL == "" || phone == "" {
		return
	}

	payload, err := json.Marshal(map[string]string{
		"to":   phone,
		"body": message,
	})
	if err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ns.cfg.Payment.WhatsAppURL, bytes.NewReader(payload))
	if err != nil {
		ns.logger.Warn("Failed to build WhatsApp request", gecho.Field("error", err))
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+ns.cfg.Payment.WhatsAppKey)

	resp, err := ns.httpClient.Do(req)
	if err != nil {
		ns.logger.Warn("WhatsApp notification failed", gecho.Field("error", err))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		ns.logger.Warn("WhatsApp API rejected message", gecho.Field("status_code", resp.StatusCode))
	}
}
