package services

import (
	"github.com/Chi-G/JPATHNEC-sub000/database"
	"github.com/Chi-G/JPATHNEC-sub000/structs"
	"github.com/MonkyMars/gecho"
)

type ServiceManager struct {
	AuthService         *AuthService
	AccountService      *AccountService
	CacheService        *CacheService
	EmailService        *EmailService
	NotificationService *NotificationService
	HealthService       *HealthService
	ProductService      *ProductService
	CartService         *CartService
	OrderService        *OrderService
	PaymentService      *PaymentService
	WishlistService     *WishlistService
	NewsletterService   *NewsletterService
}

func NewServiceManager(logger *gecho.Logger, cfg *structs.Config, db *database.DB) *ServiceManager {
	cacheService := NewCacheService(logger, cfg)
	authService := NewAuthService(cfg, logger, db, cacheService)
	accountService := NewAccountService(logger, db)
	emailService := NewEmailService(logger, cfg)
	notificationService := NewNotificationService(logger, cfg, db, emailService)
	healthService := NewHealthService(logger, db, cacheService)
	productService := NewProductService(logger, db, cacheService)
	cartService := NewCartService(logger, cfg, db, productService)
	orderService := NewOrderService(logger, cfg, db, productService, cartService, notificationService)
	gateway := NewPaystackClient(logger, cfg.Payment)
	paymentService := NewPaymentService(logger, cfg, db, gateway, orderService, cartService, notificationService)
	wishlistService := NewWishlistService(logger, db, productService)
	newsletterService := NewNewsletterService(logger, db, emailService)

	return &ServiceManager{
		AuthService:         authService,
		AccountService:      accountService,
		CacheService:        cacheService,
		EmailService:        emailService,
		NotificationService: notificationService,
		HealthService:       healthService,
		ProductService:      productService,
		CartService:         cartService,
		OrderService:        orderService,
		PaymentService:      paymentService,
		WishlistService:     wishlistService,
		NewsletterService:   newsletterService,
	}
}
