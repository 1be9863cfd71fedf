package tables

import (
	"time"

	"github.com/google/uuid"
)

// CartItem is one row of a user's cart. Uniqueness over
// (user_id, product_id, size, color) is enforced by the database so that
// concurrent add-to-cart requests for the same variant increment the
// quantity instead of duplicating the row.
type CartItem struct {
	tableName struct{}  `bun:"table:cart_items,alias:ci"`
	Id        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	UserId    uuid.UUID `bun:"user_id,notnull,type:uuid" json:"user_id"`
	ProductId uuid.UUID `bun:"product_id,notnull,type:uuid" json:"product_id"`
	Quantity  int       `bun:"quantity,notnull" json:"quantity"`
	Size      string    `bun:"size,notnull,default:''" json:"size,omitempty"`
	Color     string    `bun:"color,notnull,default:''" json:"color,omitempty"`
	UnitPrice int64     `bun:"unit_price,notnull" json:"unit_price"` // cents, snapshot at add time
	CreatedAt time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:now()" json:"updated_at"`

	Product *Product `bun:"rel:belongs-to,join:product_id=id" json:"product,omitempty"`
}

// TotalPrice is the line total in cents.
func (ci *CartItem) TotalPrice() int64 {
	return int64(ci.Quantity) * ci.UnitPrice
}

type WishlistItem struct {
	tableName struct{}  `bun:"table:wishlist_items,alias:wi"`
	Id        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	UserId    uuid.UUID `bun:"user_id,notnull,type:uuid" json:"user_id"`
	ProductId uuid.UUID `bun:"product_id,notnull,type:uuid" json:"product_id"`
	CreatedAt time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`

	Product *Product `bun:"rel:belongs-to,join:product_id=id" json:"product,omitempty"`
}
