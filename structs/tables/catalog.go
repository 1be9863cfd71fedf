package tables

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	tableName struct{}   `bun:"table:categories,alias:c"`
	Id        uuid.UUID  `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	ParentId  *uuid.UUID `bun:"parent_id,type:uuid" json:"parent_id,omitempty"`
	Name      string     `bun:"name,notnull" json:"name"`
	Slug      string     `bun:"slug,notnull,unique" json:"slug"`
	SortOrder int        `bun:"sort_order,notnull,default:0" json:"sort_order"`
	IsActive  bool       `bun:"is_active,notnull,default:true" json:"is_active"`
	CreatedAt time.Time  `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt time.Time  `bun:"updated_at,notnull,default:now()" json:"updated_at"`

	Children []Category `bun:"rel:has-many,join:id=parent_id" json:"children,omitempty"`
}

type Product struct {
	tableName  struct{}  `bun:"table:products,alias:p"`
	Id         uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	CategoryId uuid.UUID `bun:"category_id,notnull,type:uuid" json:"category_id"`

	Name        string `bun:"name,notnull" json:"name"`
	Slug        string `bun:"slug,notnull,unique" json:"slug"`
	SKU         string `bun:"sku,notnull" json:"sku"`
	Description string `bun:"description" json:"description,omitempty"`

	Price        int64 `bun:"price,notnull" json:"price"`                   // cents
	ComparePrice int64 `bun:"compare_price" json:"compare_price,omitempty"` // cents, strike-through price
	StockQty     int   `bun:"stock_quantity,notnull,default:0" json:"stock_quantity"`

	IsActive     bool `bun:"is_active,notnull,default:true" json:"is_active"`
	IsFeatured   bool `bun:"is_featured,notnull,default:false" json:"is_featured"`
	IsNew        bool `bun:"is_new,notnull,default:false" json:"is_new"`
	IsBestseller bool `bun:"is_bestseller,notnull,default:false" json:"is_bestseller"`

	Sizes    []string `bun:"sizes,array" json:"sizes,omitempty"`
	Colors   []string `bun:"colors,array" json:"colors,omitempty"`
	Features []string `bun:"features,array" json:"features,omitempty"`

	CreatedAt time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:now()" json:"updated_at"`

	Category *Category      `bun:"rel:belongs-to,join:category_id=id" json:"category,omitempty"`
	Images   []ProductImage `bun:"rel:has-many,join:id=product_id" json:"images,omitempty"`
}

// PrimaryImageURL returns the primary image, or the first one when none is
// flagged primary.
func (p *Product) PrimaryImageURL() string {
	for _, img := range p.Images {
		if img.IsPrimary {
			return img.URL
		}
	}
	if len(p.Images) > 0 {
		return p.Images[0].URL
	}
	return ""
}

// InStock reports whether the product can be added to a cart.
func (p *Product) InStock(quantity int) bool {
	return p.IsActive && p.StockQty >= quantity
}

type ProductImage struct {
	tableName struct{}  `bun:"table:product_images,alias:pi"`
	Id        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	ProductId uuid.UUID `bun:"product_id,notnull,type:uuid" json:"product_id"`
	URL       string    `bun:"url,notnull" json:"url"`
	AltText   string    `bun:"alt_text" json:"alt_text,omitempty"`
	IsPrimary bool      `bun:"is_primary,notnull,default:false" json:"is_primary"`
	SortOrder int       `bun:"sort_order,notnull,default:0" json:"sort_order"`
}
