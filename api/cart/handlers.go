package cart

import (
	"net/http"

	"github.com/Chi-G/JPATHNEC-sub000/api/middleware"
	"github.com/Chi-G/JPATHNEC-sub000/handling"
	"github.com/Chi-G/JPATHNEC-sub000/lib"
	"github.com/Chi-G/JPATHNEC-sub000/structs"
	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (crm *CartRoutesManager) HandleGetCart(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.WithMessage("Please log in to view your cart"), gecho.Send())
		return
	}

	cart, err := crm.cartService.GetCart(r.Context(), claims.Sub)
	if err != nil {
		handling.HandleError(err, "Unable to load your cart", crm.logger, w)
		return
	}

	gecho.Success(w, gecho.WithData(cart), gecho.Send())
}

func (crm *CartRoutesManager) HandleAddItem(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.WithMessage("Please log in to use your cart"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.AddToCartRequest](r)
	if err != nil {
		handling.HandleError(err, "Please check the item details and try again", crm.logger, w)
		return
	}

	item, err := crm.cartService.AddToCart(r.Context(), claims.Sub, body)
	if err != nil {
		handling.HandleError(err, "Unable to add this item to your cart", crm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Item added to cart"),
		gecho.WithData(item),
		gecho.Send(),
	)
}

func (crm *CartRoutesManager) HandleUpdateItem(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.WithMessage("Please log in to use your cart"), gecho.Send())
		return
	}

	itemId, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid cart item id"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.UpdateCartItemRequest](r)
	if err != nil {
		handling.HandleError(err, "Please check the quantity and try again", crm.logger, w)
		return
	}

	item, err := crm.cartService.UpdateItem(r.Context(), claims.Sub, itemId, body.Quantity)
	if err != nil {
		handling.HandleError(err, "Unable to update this cart item", crm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Cart item updated"),
		gecho.WithData(item),
		gecho.Send(),
	)
}

func (crm *CartRoutesManager) HandleRemoveItem(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.WithMessage("Please log in to use your cart"), gecho.Send())
		return
	}

	itemId, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid cart item id"), gecho.Send())
		return
	}

	if err := crm.cartService.RemoveItem(r.Context(), claims.Sub, itemId); err != nil {
		handling.HandleError(err, "Unable to remove this cart item", crm.logger, w)
		return
	}

	gecho.Success(w, gecho.WithMessage("Item removed from cart"), gecho.Send())
}

func (crm *CartRoutesManager) HandleClearCart(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.WithMessage("Please log in to use your cart"), gecho.Send())
		return
	}

	if err := crm.cartService.ClearCart(r.Context(), claims.Sub); err != nil {
		handling.HandleError(err, "Unable to clear your cart", crm.logger, w)
		return
	}

	gecho.Success(w, gecho.WithMessage("Cart cleared"), gecho.Send())
}

func (crm *CartRoutesManager) HandleCountItems(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.WithMessage("Please log in to view your cart"), gecho.Send())
		return
	}

	count, err := crm.cartService.CountItems(r.Context(), claims.Sub)
	if err != nil {
		handling.HandleError(err, "Unable to count your cart items", crm.logger, w)
		return
	}

	gecho.Success(w, gecho.WithData(map[string]int{"count": count}), gecho.Send())
}
