package orders

import (
	"github.com/Chi-G/JPATHNEC-sub000/api/middleware"
	"github.com/Chi-G/JPATHNEC-sub000/services"
	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type OrderRoutesManager struct {
	logger       *gecho.Logger
	orderService *services.OrderService
	mw           *middleware.Middleware
}

func NewOrderRoutesManager(logger *gecho.Logger, orderService *services.OrderService, mw *middleware.Middleware) *OrderRoutesManager {
	return &OrderRoutesManager{
		logger:       logger,
		orderService: orderService,
		mw:           mw,
	}
}

func (orm *OrderRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Use(orm.mw.UserAuthMiddleware)

		r.Get("/", orm.HandleListOrders)
		r.Get("/{orderNumber}", orm.HandleGetOrder)
		r.Get("/{orderNumber}/track", orm.HandleTrackOrder)
		r.Post("/{orderNumber}/cancel", orm.HandleCancelOrder)
	})

	r.Route("/admin/orders", func(r chi.Router) {
		r.Use(orm.mw.AdminAuthMiddleware)

		r.Get("/", orm.HandleListAllOrders)
		r.Put("/{id}/status", orm.HandleUpdateOrderStatus)
	})
}
