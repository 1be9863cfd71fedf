package api

import (
	"github.com/Chi-G/JPATHNEC-sub000/api/account"
	"github.com/Chi-G/JPATHNEC-sub000/api/auth"
	"github.com/Chi-G/JPATHNEC-sub000/api/cart"
	"github.com/Chi-G/JPATHNEC-sub000/api/health"
	"github.com/Chi-G/JPATHNEC-sub000/api/middleware"
	"github.com/Chi-G/JPATHNEC-sub000/api/newsletter"
	"github.com/Chi-G/JPATHNEC-sub000/api/orders"
	"github.com/Chi-G/JPATHNEC-sub000/api/payments"
	"github.com/Chi-G/JPATHNEC-sub000/api/products"
	"github.com/Chi-G/JPATHNEC-sub000/api/wishlist"
	"github.com/Chi-G/JPATHNEC-sub000/services"
	"github.com/Chi-G/JPATHNEC-sub000/structs"
	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type routerManager struct {
	healthRoutes     *health.HealthRoutesManager
	productRoutes    *products.ProductRoutesManager
	authRoutes       *auth.AuthRoutesManager
	accountRoutes    *account.AccountRoutesManager
	cartRoutes       *cart.CartRoutesManager
	orderRoutes      *orders.OrderRoutesManager
	paymentRoutes    *payments.PaymentRoutesManager
	wishlistRoutes   *wishlist.WishlistRoutesManager
	newsletterRoutes *newsletter.NewsletterRoutesManager
}

func NewRouterManager(logger *gecho.Logger, cfg *structs.Config, sm *services.ServiceManager, mw *middleware.Middleware) *routerManager {
	return &routerManager{
		healthRoutes:     health.NewHealthRoutesManager(sm.HealthService),
		productRoutes:    products.NewProductRoutesManager(logger, sm.ProductService),
		authRoutes:       auth.NewAuthRoutesManager(logger, sm.AuthService, sm.AccountService, sm.EmailService, cfg, mw),
		accountRoutes:    account.NewAccountRoutesManager(logger, sm.AccountService, sm.AuthService, mw),
		cartRoutes:       cart.NewCartRoutesManager(logger, sm.CartService, mw),
		orderRoutes:      orders.NewOrderRoutesManager(logger, sm.OrderService, mw),
		paymentRoutes:    payments.NewPaymentRoutesManager(logger, cfg, sm.PaymentService, sm.AuthService, mw),
		wishlistRoutes:   wishlist.NewWishlistRoutesManager(logger, sm.WishlistService, mw),
		newsletterRoutes: newsletter.NewNewsletterRoutesManager(logger, sm.NewsletterService),
	}
}

func (rm *routerManager) RegisterRoutes(r chi.Router) {
	rm.healthRoutes.RegisterRoutes(r)
	rm.productRoutes.RegisterRoutes(r)
	rm.authRoutes.RegisterRoutes(r)
	rm.accountRoutes.RegisterRoutes(r)
	rm.cartRoutes.RegisterRoutes(r)
	rm.orderRoutes.RegisterRoutes(r)
	rm.paymentRoutes.RegisterRoutes(r)
	rm.wishlistRoutes.RegisterRoutes(r)
	rm.newsletterRoutes.RegisterRoutes(r)
}
