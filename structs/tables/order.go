package tables

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// OrderAddress is the address snapshot embedded on the order row. Orders keep
// their own copy so later edits to the address book never change history.
type OrderAddress struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Phone      string `json:"phone,omitempty"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Country    string `json:"country"`
}

type Order struct {
	tableName   struct{}  `bun:"table:orders,alias:o"`
	Id          uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	UserId      uuid.UUID `bun:"user_id,notnull,type:uuid" json:"user_id"`
	OrderNumber string    `bun:"order_number,notnull,unique" json:"order_number"`

	Status        OrderStatus   `bun:"status,notnull,default:'pending'" json:"status"`
	PaymentStatus PaymentStatus `bun:"payment_status,notnull,default:'pending'" json:"payment_status"`

	// Monetary breakdown in cents.
	Subtotal int64 `bun:"subtotal,notnull" json:"subtotal"`
	Tax      int64 `bun:"tax,notnull" json:"tax"`
	Shipping int64 `bun:"shipping,notnull" json:"shipping"`
	Discount int64 `bun:"discount,notnull,default:0" json:"discount"`
	Total    int64 `bun:"total,notnull" json:"total"`

	ShippingAddress OrderAddress `bun:"shipping_address,type:jsonb" json:"shipping_address"`
	BillingAddress  OrderAddress `bun:"billing_address,type:jsonb" json:"billing_address"`

	// Correlation id assigned by the payment gateway, unique once set.
	PaymentReference string `bun:"payment_reference,nullzero,unique" json:"payment_reference,omitempty"`
	PaymentMethod    string `bun:"payment_method" json:"payment_method,omitempty"`

	TrackingNumber string     `bun:"tracking_number" json:"tracking_number,omitempty"`
	ShippedAt      *time.Time `bun:"shipped_at,nullzero" json:"shipped_at,omitempty"`
	DeliveredAt    *time.Time `bun:"delivered_at,nullzero" json:"delivered_at,omitempty"`

	CreatedAt time.Time  `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt time.Time  `bun:"updated_at,notnull,default:now()" json:"updated_at"`
	DeletedAt *time.Time `bun:"deleted_at,nullzero" json:"deleted_at,omitempty"`

	Items []OrderItem `bun:"rel:has-many,join:id=order_id" json:"items,omitempty"`
}

// ProgressPercentage maps the order status onto the tracking bar shown to
// the customer.
func (o *Order) ProgressPercentage() int {
	switch o.Status {
	case OrderStatusPending:
		return 25
	case OrderStatusProcessing:
		return 50
	case OrderStatusShipped:
		return 75
	case OrderStatusDelivered:
		return 100
	default:
		// cancelled, and any order whose payment was refunded
		return 0
	}
}

// IsCancellable reports whether the customer may still cancel the order.
func (o *Order) IsCancellable() bool {
	if o.PaymentStatus == PaymentStatusPaid {
		return false
	}
	return o.Status == OrderStatusPending || o.Status == OrderStatusProcessing
}

// OrderItem is an immutable snapshot of a product at purchase time, so
// historical orders stay stable against later product edits.
type OrderItem struct {
	tableName struct{}  `bun:"table:order_items,alias:oi"`
	Id        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	OrderId   uuid.UUID `bun:"order_id,notnull,type:uuid" json:"order_id"`
	ProductId uuid.UUID `bun:"product_id,notnull,type:uuid" json:"product_id"`

	ProductName string `bun:"product_name,notnull" json:"product_name"`
	ProductSKU  string `bun:"product_sku,notnull" json:"product_sku"`
	Size        string `bun:"size" json:"size,omitempty"`
	Color       string `bun:"color" json:"color,omitempty"`

	Quantity   int   `bun:"quantity,notnull" json:"quantity"`
	UnitPrice  int64 `bun:"unit_price,notnull" json:"unit_price"`   // cents
	TotalPrice int64 `bun:"total_price,notnull" json:"total_price"` // quantity * unit_price, set at creation
}
