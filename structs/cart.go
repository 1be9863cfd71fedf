package structs

type AddToCartRequest struct {
	ProductId string `json:"product_id" validate:"required,uuid4"`
	Quantity  int    `json:"quantity" validate:"required,min=1,max=99"`
	Size      string `json:"size" validate:"omitempty,max=20"`
	Color     string `json:"color" validate:"omitempty,max=30"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1,max=99"`
}

// CartSummary is the monetary breakdown of the current cart, in cents.
type CartSummary struct {
	ItemCount int   `json:"item_count"`
	Subtotal  int64 `json:"subtotal"`
	Tax       int64 `json:"tax"`
	Shipping  int64 `json:"shipping"`
	Total     int64 `json:"total"`
}

type WishlistToggleRequest struct {
	ProductId string `json:"product_id" validate:"required,uuid4"`
}

type NewsletterSubscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}
