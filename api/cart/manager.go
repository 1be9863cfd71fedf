package cart

import (
	"github.com/Chi-G/JPATHNEC-sub000/api/middleware"
	"github.com/Chi-G/JPATHNEC-sub000/services"
	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type CartRoutesManager struct {
	logger      *gecho.Logger
	cartService *services.CartService
	mw          *middleware.Middleware
}

func NewCartRoutesManager(logger *gecho.Logger, cartService *services.CartService, mw *middleware.Middleware) *CartRoutesManager {
	return &CartRoutesManager{
		logger:      logger,
		cartService: cartService,
		mw:          mw,
	}
}

func (crm *CartRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/cart", func(r chi.Router) {
		r.Use(crm.mw.UserAuthMiddleware)

		r.Get("/", crm.HandleGetCart)
		r.Delete("/", crm.HandleClearCart)
		r.Get("/count", crm.HandleCountItems)
		r.Post("/add", crm.HandleAddItem)
		r.Put("/update/{id}", crm.HandleUpdateItem)
		r.Delete("/remove/{id}", crm.HandleRemoveItem)
	})
}
