package services

import (
	"context"
	"strings"
	"time"

	"github.com/Chi-G/JPATHNEC-sub000/database"
	"github.com/Chi-G/JPATHNEC-sub000/lib"
	"github.com/Chi-G/JPATHNEC-sub000/structs/tables"
	"github.com/MonkyMars/gecho"
)

type NewsletterService struct {
	logger       *gecho.Logger
	db           *database.DB
	emailService *EmailService
}

func NewNewsletterService(logger *gecho.Logger, db *database.DB, emailService *EmailService) *NewsletterService {
	return &NewsletterService{
		logger:       logger,
		db:           db,
		emailService: emailService,
	}
}

// SubscribeResult tells the handler which message to show the visitor.
type SubscribeResult struct {
	Email   string `json:"email"`
	Message string `json:"message"`
}

const (
	msgSubscribed        = "Thanks for subscribing to our newsletter"
	msgReactivated       = "Welcome back, your subscription has been reactivated"
	msgAlreadySubscribed = "You are already subscribed to our newsletter"
)

type subscribeAction int

const (
	subscribeNew subscribeAction = iota
	subscribeReactivate
	subscribeAlreadyActive
)

// subscribeActionFor classifies what the signup form hit: a brand new address,
// a previously unsubscribed one, or one that is already on the list.
func subscribeActionFor(existing *tables.NewsletterSubscriber) subscribeAction {
	switch {
	case existing == nil:
		return subscribeNew
	case !existing.IsActive:
		return subscribeReactivate
	default:
		return subscribeAlreadyActive
	}
}

// Subscribe handles the three cases the signup form can hit: a brand new
// address, a previously unsubscribed one being reactivated, and one that is
// already on the list.
func (ns *NewsletterService) Subscribe(ctx context.Context, email string) (*SubscribeResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	existing, err := database.Query[tables.NewsletterSubscriber](ns.db).Where("email", email).First(ctx)
	if err != nil {
		return nil, lib.MapDBError(err)
	}

	switch subscribeActionFor(existing) {
	case subscribeNew:
		subscriber := &tables.NewsletterSubscriber{
			Email:    email,
			IsActive: true,
		}
		if _, err := database.Query[tables.NewsletterSubscriber](ns.db).Insert(ctx, subscriber); err != nil {
			mapped := lib.MapDBError(err)
			// Concurrent signup from the same address, treat as already subscribed
			if lib.IsUniqueViolation(mapped) {
				return &SubscribeResult{Email: email, Message: msgAlreadySubscribed}, nil
			}
			return nil, mapped
		}

		ns.logger.Info("Newsletter subscription", gecho.Field("email", email))
		ns.sendWelcome(email)
		return &SubscribeResult{Email: email, Message: msgSubscribed}, nil

	case subscribeReactivate:
		if _, err := database.Query[tables.NewsletterSubscriber](ns.db).Where("id", existing.Id).Update(ctx, map[string]any{
			"is_active":       true,
			"subscribed_at":   time.Now(),
			"unsubscribed_at": nil,
		}); err != nil {
			return nil, lib.MapDBError(err)
		}

		ns.logger.Info("Newsletter subscription reactivated", gecho.Field("email", email))
		ns.sendWelcome(email)
		return &SubscribeResult{Email: email, Message: msgReactivated}, nil

	default:
		return &SubscribeResult{Email: email, Message: msgAlreadySubscribed}, nil
	}
}

func (ns *NewsletterService) sendWelcome(email string) {
	go func() {
		if err := ns.emailService.SendNewsletterWelcome(email); err != nil {
			ns.logger.Warn("Failed to send newsletter welcome", gecho.Field("error", err), gecho.Field("email", email))
		}
	}()
}

// Unsubscribe flags the address inactive, keeping the row for audit.
func (ns *NewsletterService) Unsubscribe(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	affected, err := database.Query[tables.NewsletterSubscriber](ns.db).
		Where("email", email).
		Where("is_active", true).
		Update(ctx, map[string]any{
			"is_active":       false,
			"unsubscribed_at": time.Now(),
		})
	if err != nil {
		return lib.MapDBError(err)
	}
	if affected == 0 {
		return lib.ErrNotFound
	}

	ns.logger.Info("Newsletter unsubscribe", gecho.Field("email", email))
	return nil
}
