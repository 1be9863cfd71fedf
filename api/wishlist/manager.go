package wishlist

import (
	"net/http"

	"github.com/Chi-G/JPATHNEC-sub000/api/middleware"
	"github.com/Chi-G/JPATHNEC-sub000/handling"
	"github.com/Chi-G/JPATHNEC-sub000/lib"
	"github.com/Chi-G/JPATHNEC-sub000/services"
	"github.com/Chi-G/JPATHNEC-sub000/structs"
	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type WishlistRoutesManager struct {
	logger          *gecho.Logger
	wishlistService *services.WishlistService
	mw              *middleware.Middleware
}

func NewWishlistRoutesManager(logger *gecho.Logger, wishlistService *services.WishlistService, mw *middleware.Middleware) *WishlistRoutesManager {
	return &WishlistRoutesManager{
		logger:          logger,
		wishlistService: wishlistService,
		mw:              mw,
	}
}

func (wrm *WishlistRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/wishlist", func(r chi.Router) {
		r.Use(wrm.mw.UserAuthMiddleware)

		r.Get("/", wrm.HandleGetWishlist)
		r.Post("/toggle", wrm.HandleToggle)
	})
}

func (wrm *WishlistRoutesManager) HandleGetWishlist(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.WithMessage("Please log in to view your wishlist"), gecho.Send())
		return
	}

	items, err := wrm.wishlistService.GetWishlist(r.Context(), claims.Sub)
	if err != nil {
		handling.HandleError(err, "Unable to load your wishlist", wrm.logger, w)
		return
	}

	gecho.Success(w, gecho.WithData(items), gecho.Send())
}

func (wrm *WishlistRoutesManager) HandleToggle(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.WithMessage("Please log in to use your wishlist"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.WishlistToggleRequest](r)
	if err != nil {
		handling.HandleError(err, "Please check the product and try again", wrm.logger, w)
		return
	}

	productId, err := uuid.Parse(body.ProductId)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid product id"), gecho.Send())
		return
	}

	added, err := wrm.wishlistService.Toggle(r.Context(), claims.Sub, productId)
	if err != nil {
		handling.HandleError(err, "Unable to update your wishlist", wrm.logger, w)
		return
	}

	message := "Removed from wishlist"
	if added {
		message = "Added to wishlist"
	}

	gecho.Success(w,
		gecho.WithMessage(message),
		gecho.WithData(map[string]bool{"in_wishlist": added}),
		gecho.Send(),
	)
}
