package structs

import "time"

type Config struct {
	Server    *ServerConfig
	Cors      *CorsConfig
	Database  *DatabaseConfig
	Auth      *AuthConfig
	Cache     *CacheConfig
	Email     *EmailConfig
	Payment   *PaymentConfig
	Store     *StoreConfig
	RateLimit *RateLimitConfig
}

type ServerConfig struct {
	AppName        string        // JPATHNEC
	Environment    string        // development, production
	Port           string        // :8080
	ServerURL      string        // public base URL, used for gateway callbacks
	FrontendURL    string        // storefront origin, used in email links
	ReadTimeout    time.Duration // in seconds
	WriteTimeout   time.Duration // in seconds
	IdleTimeout    time.Duration // in seconds
	MaxHeaderBytes int           // in bytes
}

type CorsConfig struct {
	AllowOrigins     []string
	AllowMethods     []string
	AllowHeaders     []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	MaxConns     int
	MinConns     int
	MaxLifetime  time.Duration
	MaxIdleTime  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type AuthConfig struct {
	AccessTokenSecret  string
	AccessTokenExpiry  time.Duration
	RefreshTokenSecret string
	RefreshTokenExpiry time.Duration
	BlacklistCacheTTL  time.Duration
	CacheUserTTL       time.Duration
}

type CacheConfig struct {
	Address         string
	Username        string
	Password        string
	DB              int
	PoolSize        int
	MinIdleConns    int
	DialTimeout     time.Duration
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	MaxRetries      int
	MinRetryBackoff time.Duration
	MaxRetryBackoff time.Duration
	ProductTTL      time.Duration
}

type EmailConfig struct {
	ApiKey       string
	From         string
	SupportEmail string
}

// PaymentConfig holds the Paystack gateway credentials and endpoints.
type PaymentConfig struct {
	SecretKey   string
	BaseURL     string // https://api.paystack.co
	CallbackURL string // redirect target handed to the gateway
	Currency    string
	Timeout     time.Duration
	WhatsAppURL string // optional WhatsApp message API, empty disables it
	WhatsAppKey string
}

// StoreConfig holds the pricing rules applied at checkout. Amounts in cents.
type StoreConfig struct {
	TaxRatePercent        int64 // 10 => 10% of subtotal
	FreeShippingThreshold int64 // subtotal above this ships free
	ShippingFlatFee       int64
}

type RateLimitConfig struct {
	Enabled         bool
	GeneralLimit    int
	GeneralWindow   time.Duration
	AuthLimit       int
	AuthWindow      time.Duration
	ExpensiveLimit  int
	ExpensiveWindow time.Duration
}
