package services

import (
	"fmt"
	"strings"
	"sync"

	"github.com/Chi-G/JPATHNEC-sub000/lib"
	"github.com/Chi-G/JPATHNEC-sub000/structs"
	"github.com/Chi-G/JPATHNEC-sub000/structs/tables"
	"github.com/MonkyMars/gecho"
	"github.com/resend/resend-go/v3"
)

var (
	client     *resend.Client
	clientOnce = sync.Once{}
)

type EmailService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	client *resend.Client
}

func NewEmailService(logger *gecho.Logger, cfg *structs.Config) *EmailService {
	return &EmailService{
		logger: logger,
		cfg:    cfg,
		client: getEmailClient(cfg.Email.ApiKey),
	}
}

func getEmailClient(apiKey string) *resend.Client {
	clientOnce.Do(func() {
		client = resend.NewClient(apiKey)
	})
	return client
}

func (es *EmailService) SendEmail(to []string, subject string, body string) error {
	params := &resend.SendEmailRequest{
		From:    es.cfg.Email.From,
		To:      to,
		Html:    body,
		Subject: subject,
	}

	_, err := es.client.Emails.Send(params)
	if err != nil {
		es.logger.Error("Failed to send email", gecho.Field("error", err), gecho.Field("to", to))
		return err
	}

	return nil
}

// SendWelcomeEmail greets a newly registered customer.
func (es *EmailService) SendWelcomeEmail(user *tables.User) error {
	body := fmt.Sprintf(`%s
		<div class="header"><h1>Welcome to JPATHNEC</h1></div>
		<div class="content">
			<p>Hi %s,</p>
			<p>Your account is ready. Browse our latest arrivals and enjoy free shipping on qualifying orders.</p>
			<p style="text-align: center;">
				<a href="%s/shop" class="button">Start Shopping</a>
			</p>
		</div>
		%s`, emailHead, user.Name, es.cfg.Server.FrontendURL, es.emailFoot())

	return es.SendEmail([]string{user.Email}, "Welcome to JPATHNEC", body)
}

// SendOrderConfirmationEmail is sent once payment settles.
func (es *EmailService) SendOrderConfirmationEmail(order *tables.Order, email string) error {
	var lines strings.Builder
	for i := range order.Items {
		item := &order.Items[i]
		variant := ""
		if item.Size != "" || item.Color != "" {
			variant = fmt.Sprintf(" (%s)", strings.TrimPrefix(item.Size+" "+item.Color, " "))
		}
		lines.WriteString(fmt.Sprintf(
			`<tr><td>%s%s</td><td style="text-align: center;">%d</td><td style="text-align: right;">$%s</td></tr>`,
			item.ProductName, variant, item.Quantity, lib.FormatAmount(item.TotalPrice)))
	}

	body := fmt.Sprintf(`%s
		<div class="header"><h1>Order Confirmed</h1></div>
		<div class="content">
			<p>Thank you for your order <strong>%s</strong>. We're getting it ready.</p>
			<table style="width: 100%%; border-collapse: collapse;">
				<tr><th style="text-align: left;">Item</th><th>Qty</th><th style="text-align: right;">Total</th></tr>
				%s
			</table>
			<p style="text-align: right;">
				Subtotal: $%s<br>
				Tax: $%s<br>
				Shipping: $%s<br>
				<strong>Total: $%s</strong>
			</p>
			<p style="text-align: center;">
				<a href="%s/orders/%s" class="button">Track Your Order</a>
			</p>
		</div>
		%s`,
		emailHead,
		order.OrderNumber,
		lines.String(),
		lib.FormatAmount(order.Subtotal),
		lib.FormatAmount(order.Tax),
		lib.FormatAmount(order.Shipping),
		lib.FormatAmount(order.Total),
		es.cfg.Server.FrontendURL, order.OrderNumber,
		es.emailFoot())

	return es.SendEmail([]string{email}, fmt.Sprintf("Order %s confirmed", order.OrderNumber), body)
}

// SendOrderStatusEmail tells the customer their order moved along the pipeline.
func (es *EmailService) SendOrderStatusEmail(order *tables.Order, email, location, description string) error {
	var statusLine string
	switch order.Status {
	case tables.OrderStatusProcessing:
		statusLine = "Your order is being prepared."
	case tables.OrderStatusShipped:
		statusLine = "Your order is on its way."
		if order.TrackingNumber != "" {
			statusLine += fmt.Sprintf(" Tracking number: <strong>%s</strong>.", order.TrackingNumber)
		}
	case tables.OrderStatusDelivered:
		statusLine = "Your order has been delivered. We hope you love it."
	case tables.OrderStatusCancelled:
		statusLine = "Your order has been cancelled."
	default:
		statusLine = fmt.Sprintf("Your order status is now: %s.", order.Status)
	}

	extra := ""
	if location != "" {
		extra += fmt.Sprintf("<p>Current location: %s</p>", location)
	}
	if description != "" {
		extra += fmt.Sprintf("<p>%s</p>", description)
	}

	body := fmt.Sprintf(`%s
		<div class="header"><h1>Order Update</h1></div>
		<div class="content">
			<p>Order <strong>%s</strong></p>
			<p>%s</p>
			%s
			<p style="text-align: center;">
				<a href="%s/orders/%s" class="button">View Order</a>
			</p>
		</div>
		%s`,
		emailHead, order.OrderNumber, statusLine, extra,
		es.cfg.Server.FrontendURL, order.OrderNumber,
		es.emailFoot())

	return es.SendEmail([]string{email}, fmt.Sprintf("Order %s: %s", order.OrderNumber, order.Status), body)
}

// SendNewsletterWelcome confirms a newsletter signup.
func (es *EmailService) SendNewsletterWelcome(email string) error {
	body := fmt.Sprintf(`%s
		<div class="header"><h1>You're on the list</h1></div>
		<div class="content">
			<p>Thanks for subscribing to the JPATHNEC newsletter. Expect new arrivals, style picks and subscriber-only offers.</p>
			<p style="font-size: 12px; color: #666;">
				Changed your mind? <a href="%s/newsletter/unsubscribe?email=%s">Unsubscribe</a>.
			</p>
		</div>
		%s`, emailHead, es.cfg.Server.FrontendURL, email, es.emailFoot())

	return es.SendEmail([]string{email}, "Welcome to the JPATHNEC newsletter", body)
}

const emailHead = `<!DOCTYPE html>
	<html>
	<head>
		<meta charset="UTF-8">
		<style>
			body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
			.container { max-width: 600px; margin: 0 auto; padding: 20px; }
			.header { background-color: #1a1a2e; color: white; padding: 20px; text-align: center; }
			.content { padding: 20px; background-color: #f9f9f9; }
			.button { display: inline-block; padding: 15px 30px; background-color: #1a1a2e; color: white; text-decoration: none; border-radius: 5px; margin: 20px 0; }
			.footer { text-align: center; padding: 20px; color: #666; font-size: 12px; }
		</style>
	</head>
	<body>
	<div class="container">`

func (es *EmailService) emailFoot() string {
	return fmt.Sprintf(`<div class="footer">
			<p>JPATHNEC &middot; Questions? Contact us at %s</p>
		</div>
	</div>
	</body>
	</html>`, es.cfg.Email.SupportEmail)
}
