package tables

import (
	"time"

	"github.com/google/uuid"
)

type NewsletterSubscriber struct {
	tableName      struct{}   `bun:"table:newsletter_subscribers,alias:ns"`
	Id             uuid.UUID  `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Email          string     `bun:"email,notnull,unique" json:"email"`
	IsActive       bool       `bun:"is_active,notnull,default:true" json:"is_active"`
	SubscribedAt   time.Time  `bun:"subscribed_at,notnull,default:now()" json:"subscribed_at"`
	UnsubscribedAt *time.Time `bun:"unsubscribed_at,nullzero" json:"unsubscribed_at,omitempty"`
}
