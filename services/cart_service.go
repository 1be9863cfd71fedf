package services

import (
	"context"
	"time"

	"github.com/Chi-G/JPATHNEC-sub000/database"
	"github.com/Chi-G/JPATHNEC-sub000/lib"
	"github.com/Chi-G/JPATHNEC-sub000/structs"
	"github.com/Chi-G/JPATHNEC-sub000/structs/tables"
	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type CartService struct {
	logger         *gecho.Logger
	cfg            *structs.Config
	db             *database.DB
	productService *ProductService
}

func NewCartService(logger *gecho.Logger, cfg *structs.Config, db *database.DB, productService *ProductService) *CartService {
	return &CartService{
		logger:         logger,
		cfg:            cfg,
		db:             db,
		productService: productService,
	}
}

// CartResponse is the cart page payload: line items plus the monetary summary.
type CartResponse struct {
	Items   []tables.CartItem   `json:"items"`
	Summary structs.CartSummary `json:"summary"`
}

// GetCart returns the user's cart items with product details and totals.
func (cs *CartService) GetCart(ctx context.Context, userId uuid.UUID) (*CartResponse, error) {
	items, err := database.Query[tables.CartItem](cs.db).
		Where("user_id", userId).
		Relation("Product").
		Relation("Product.Images").
		OrderBy("created_at", database.ASC).
		All(ctx)
	if err != nil {
		return nil, lib.MapDBError(err)
	}

	return &CartResponse{
		Items:   items,
		Summary: cs.Summarize(items),
	}, nil
}

// Summarize computes item count and totals for a set of cart items.
func (cs *CartService) Summarize(items []tables.CartItem) structs.CartSummary {
	var subtotal int64
	count := 0
	for i := range items {
		count += items[i].Quantity
		subtotal += items[i].TotalPrice()
	}
	return lib.ComputeSummary(count, subtotal, cs.cfg.Store)
}

// AddToCart adds a product variant to the cart. Adding the same variant again
// increments the existing row's quantity via the unique constraint on
// (user_id, product_id, size, color).
func (cs *CartService) AddToCart(ctx context.Context, userId uuid.UUID, req *structs.AddToCartRequest) (*tables.CartItem, error) {
	productId, err := uuid.Parse(req.ProductId)
	if err != nil {
		return nil, lib.ErrNotFound
	}

	product, err := cs.productService.GetProductByID(ctx, productId)
	if err != nil {
		return nil, err
	}

	if !product.InStock(req.Quantity) {
		cs.logger.Debug("Add to cart rejected, insufficient stock",
			gecho.Field("product_id", productId),
			gecho.Field("requested", req.Quantity),
			gecho.Field("available", product.StockQty))
		return nil, lib.ErrOutOfStock
	}

	item := &tables.CartItem{
		UserId:    userId,
		ProductId: productId,
		Quantity:  req.Quantity,
		Size:      req.Size,
		Color:     req.Color,
		UnitPrice: product.Price,
	}

	var inserted *tables.CartItem
	err = database.Transaction(ctx, cs.db, func(tx bun.Tx) error {
		_, txErr := tx.NewInsert().
			Model(item).
			On("CONFLICT (user_id, product_id, size, color) DO UPDATE").
			Set("quantity = ci.quantity + EXCLUDED.quantity").
			Set("unit_price = EXCLUDED.unit_price").
			Set("updated_at = ?", time.Now()).
			Returning("*").
			Exec(ctx)
		if txErr != nil {
			return txErr
		}
		inserted = item
		return nil
	})
	if err != nil {
		return nil, lib.MapDBError(err)
	}

	cs.logger.Debug("Cart item added",
		gecho.Field("user_id", userId),
		gecho.Field("product_id", productId),
		gecho.Field("quantity", inserted.Quantity))

	return inserted, nil
}

// UpdateItem changes the quantity of a cart line the user owns.
func (cs *CartService) UpdateItem(ctx context.Context, userId, itemId uuid.UUID, quantity int) (*tables.CartItem, error) {
	item, err := database.Query[tables.CartItem](cs.db).
		Where("id", itemId).
		Where("user_id", userId).
		First(ctx)
	if err != nil {
		return nil, lib.MapDBError(err)
	}
	if item == nil {
		return nil, lib.ErrNotFound
	}

	product, err := cs.productService.GetProductByID(ctx, item.ProductId)
	if err != nil {
		return nil, err
	}
	if !product.InStock(quantity) {
		return nil, lib.ErrOutOfStock
	}

	if _, err := database.Query[tables.CartItem](cs.db).
		Where("id", itemId).
		Where("user_id", userId).
		Update(ctx, map[string]any{
			"quantity":   quantity,
			"updated_at": time.Now(),
		}); err != nil {
		return nil, lib.MapDBError(err)
	}

	item.Quantity = quantity
	return item, nil
}

// RemoveItem deletes a cart line the user owns.
func (cs *CartService) RemoveItem(ctx context.Context, userId, itemId uuid.UUID) error {
	affected, err := database.Query[tables.CartItem](cs.db).
		Where("id", itemId).
		Where("user_id", userId).
		Delete(ctx)
	if err != nil {
		return lib.MapDBError(err)
	}
	if affected == 0 {
		return lib.ErrNotFound
	}
	return nil
}

// ClearCart removes all of the user's cart items.
func (cs *CartService) ClearCart(ctx context.Context, userId uuid.UUID) error {
	_, err := database.Query[tables.CartItem](cs.db).Where("user_id", userId).Delete(ctx)
	if err != nil {
		return lib.MapDBError(err)
	}
	return nil
}

// ClearCartTx removes the user's cart inside an existing transaction,
// used by checkout after order lines are written.
func (cs *CartService) ClearCartTx(ctx context.Context, tx bun.Tx, userId uuid.UUID) error {
	_, err := tx.NewDelete().
		Model((*tables.CartItem)(nil)).
		Where("user_id = ?", userId).
		Exec(ctx)
	if err != nil {
		return lib.MapDBError(err)
	}
	return nil
}

// GetCartItemsTx reads the user's cart with row locks inside a transaction.
// Product rows are fetched separately, FOR UPDATE does not mix with the
// outer join a relation preload would add.
func (cs *CartService) GetCartItemsTx(ctx context.Context, tx bun.Tx, userId uuid.UUID) ([]tables.CartItem, error) {
	items, err := database.QueryTx[tables.CartItem](tx).
		Where("user_id", userId).
		ForUpdate().
		All(ctx)
	if err != nil {
		return nil, lib.MapDBError(err)
	}
	return items, nil
}

// CountItems returns the badge count shown in the storefront header.
func (cs *CartService) CountItems(ctx context.Context, userId uuid.UUID) (int, error) {
	items, err := database.Query[tables.CartItem](cs.db).Where("user_id", userId).All(ctx)
	if err != nil {
		return 0, lib.MapDBError(err)
	}
	count := 0
	for i := range items {
		count += items[i].Quantity
	}
	return count, nil
}
