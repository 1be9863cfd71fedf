package auth

import (
	"github.com/Chi-G/JPATHNEC-sub000/api/middleware"
	"github.com/Chi-G/JPATHNEC-sub000/services"
	"github.com/Chi-G/JPATHNEC-sub000/structs"
	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type AuthRoutesManager struct {
	logger         *gecho.Logger
	authService    *services.AuthService
	accountService *services.AccountService
	emailService   *services.EmailService
	cfg            *structs.Config
	mw             *middleware.Middleware
}

func NewAuthRoutesManager(
	logger *gecho.Logger,
	authService *services.AuthService,
	accountService *services.AccountService,
	emailService *services.EmailService,
	cfg *structs.Config,
	mw *middleware.Middleware,
) *AuthRoutesManager {
	return &AuthRoutesManager{
		logger:         logger,
		authService:    authService,
		accountService: accountService,
		emailService:   emailService,
		cfg:            cfg,
		mw:             mw,
	}
}

func (arm *AuthRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", arm.HandleRegister)
		r.Post("/login", arm.HandleLogin)
		r.Post("/logout", arm.HandleLogout)
		r.Post("/refresh", arm.HandleRefresh)
		r.Get("/me", arm.HandleMe)
	})
}
