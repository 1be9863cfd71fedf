package payments

import (
	"github.com/Chi-G/JPATHNEC-sub000/api/middleware"
	"github.com/Chi-G/JPATHNEC-sub000/services"
	"github.com/Chi-G/JPATHNEC-sub000/structs"
	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type PaymentRoutesManager struct {
	logger         *gecho.Logger
	cfg            *structs.Config
	paymentService *services.PaymentService
	authService    *services.AuthService
	mw             *middleware.Middleware
}

func NewPaymentRoutesManager(logger *gecho.Logger, cfg *structs.Config, paymentService *services.PaymentService, authService *services.AuthService, mw *middleware.Middleware) *PaymentRoutesManager {
	return &PaymentRoutesManager{
		logger:         logger,
		cfg:            cfg,
		paymentService: paymentService,
		authService:    authService,
		mw:             mw,
	}
}

func (prm *PaymentRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/payments", func(r chi.Router) {
		// The gateway redirects the customer here after checkout, so the
		// callback cannot require a session cookie.
		r.Get("/callback", prm.HandleCallback)
		r.Post("/verify", prm.HandleVerify)

		r.Group(func(r chi.Router) {
			r.Use(prm.mw.UserAuthMiddleware)
			r.Post("/initialize", prm.HandleInitialize)
		})
	})
}
