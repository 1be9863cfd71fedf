package services

import (
	"context"

	"github.com/Chi-G/JPATHNEC-sub000/database"
	"github.com/Chi-G/JPATHNEC-sub000/lib"
	"github.com/Chi-G/JPATHNEC-sub000/structs/tables"
	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

type WishlistService struct {
	logger         *gecho.Logger
	db             *database.DB
	productService *ProductService
}

func NewWishlistService(logger *gecho.Logger, db *database.DB, productService *ProductService) *WishlistService {
	return &WishlistService{
		logger:         logger,
		db:             db,
		productService: productService,
	}
}

// GetWishlist returns the user's saved products, newest first.
func (ws *WishlistService) GetWishlist(ctx context.Context, userId uuid.UUID) ([]tables.WishlistItem, error) {
	items, err := database.Query[tables.WishlistItem](ws.db).
		Where("user_id", userId).
		Relation("Product").
		Relation("Product.Images").
		OrderBy("created_at", database.DESC).
		All(ctx)
	if err != nil {
		return nil, lib.MapDBError(err)
	}
	return items, nil
}

// Toggle adds the product to the wishlist, or removes it when already saved.
// Returns true when the product ended up on the list.
func (ws *WishlistService) Toggle(ctx context.Context, userId, productId uuid.UUID) (bool, error) {
	affected, err := database.Query[tables.WishlistItem](ws.db).
		Where("user_id", userId).
		Where("product_id", productId).
		Delete(ctx)
	if err != nil {
		return false, lib.MapDBError(err)
	}
	if affected > 0 {
		ws.logger.Debug("Wishlist item removed",
			gecho.Field("user_id", userId),
			gecho.Field("product_id", productId))
		return false, nil
	}

	// Not on the list yet, verify the product exists then add it
	if _, err := ws.productService.GetProductByID(ctx, productId); err != nil {
		return false, err
	}

	item := &tables.WishlistItem{
		UserId:    userId,
		ProductId: productId,
	}
	if _, err := database.Query[tables.WishlistItem](ws.db).Insert(ctx, item); err != nil {
		mapped := lib.MapDBError(err)
		// Concurrent toggle already added it, treat as saved
		if lib.IsUniqueViolation(mapped) {
			return true, nil
		}
		return false, mapped
	}

	ws.logger.Debug("Wishlist item added",
		gecho.Field("user_id", userId),
		gecho.Field("product_id", productId))
	return true, nil
}

// Contains reports whether a product is on the user's wishlist.
func (ws *WishlistService) Contains(ctx context.Context, userId, productId uuid.UUID) (bool, error) {
	exists, err := database.Query[tables.WishlistItem](ws.db).
		Where("user_id", userId).
		Where("product_id", productId).
		Exists(ctx)
	if err != nil {
		return false, lib.MapDBError(err)
	}
	return exists, nil
}
