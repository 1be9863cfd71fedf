package structs

import "github.com/Chi-G/JPATHNEC-sub000/structs/tables"

type InitializePaymentRequest struct {
	ShippingAddress tables.OrderAddress `json:"shipping_address" validate:"required"`
	BillingAddress  tables.OrderAddress `json:"billing_address"`
	PaymentMethod   string              `json:"payment_method" validate:"omitempty,oneof=card bank_transfer ussd"`
}

type InitializePaymentResponse struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
	OrderNumber      string `json:"order_number"`
}

type VerifyPaymentRequest struct {
	Reference string `json:"reference" validate:"required,min=8,max=100"`
}

type UpdateOrderStatusRequest struct {
	Status         string `json:"status" validate:"required,oneof=pending processing shipped delivered cancelled"`
	TrackingNumber string `json:"tracking_number" validate:"omitempty,max=100"`
	Location       string `json:"location" validate:"omitempty,max=200"`
	Description    string `json:"description" validate:"omitempty,max=500"`
}
