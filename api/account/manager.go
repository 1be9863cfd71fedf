package account

import (
	"github.com/Chi-G/JPATHNEC-sub000/api/middleware"
	"github.com/Chi-G/JPATHNEC-sub000/services"
	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type AccountRoutesManager struct {
	logger         *gecho.Logger
	accountService *services.AccountService
	authService    *services.AuthService
	mw             *middleware.Middleware
}

func NewAccountRoutesManager(logger *gecho.Logger, accountService *services.AccountService, authService *services.AuthService, mw *middleware.Middleware) *AccountRoutesManager {
	return &AccountRoutesManager{
		logger:         logger,
		accountService: accountService,
		authService:    authService,
		mw:             mw,
	}
}

func (arm *AccountRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/account", func(r chi.Router) {
		r.Use(arm.mw.UserAuthMiddleware)

		r.Get("/addresses", arm.HandleGetAddresses)
		r.Post("/addresses", arm.HandleCreateAddress)
		r.Put("/addresses/{id}", arm.HandleUpdateAddress)
		r.Delete("/addresses/{id}", arm.HandleDeleteAddress)
		r.Post("/addresses/{id}/default", arm.HandleSetDefaultAddress)

		r.Put("/profile", arm.HandleUpdateProfile)
		r.Put("/password", arm.HandleChangePassword)
		r.Get("/devices", arm.HandleGetDevices)
	})
}
