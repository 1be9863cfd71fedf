package tables

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	tableName     struct{}  `bun:"table:users,alias:u"`
	Id            uuid.UUID `json:"id" bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	Name          string    `json:"name" bun:"name,notnull"`
	Email         string    `json:"email" bun:"email,unique,notnull"`
	PasswordHash  string    `json:"-" bun:"password_hash,notnull"`
	Phone         string    `json:"phone,omitempty" bun:"phone"`
	Role          string    `json:"role" bun:"role,notnull,default:'user'"`
	EmailVerified bool      `json:"email_verified" bun:"email_verified,notnull,default:false"`
	LastLogin     time.Time `json:"last_login" bun:"last_login,default:now()"`
	CreatedAt     time.Time `json:"created_at" bun:"created_at,notnull,default:now()"`
}

type AddressType string

const (
	AddressTypeShipping AddressType = "shipping"
	AddressTypeBilling  AddressType = "billing"
)

type Address struct {
	tableName  struct{}    `bun:"table:addresses,alias:a"`
	Id         uuid.UUID   `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	UserId     uuid.UUID   `bun:"user_id,notnull,type:uuid" json:"user_id"`
	Type       AddressType `bun:"type,notnull,default:'shipping'" json:"type" validate:"required,oneof=shipping billing"`
	FirstName  string      `bun:"first_name,notnull" json:"first_name" validate:"required,min=2,max=100"`
	LastName   string      `bun:"last_name,notnull" json:"last_name" validate:"required,min=2,max=100"`
	Phone      string      `bun:"phone" json:"phone,omitempty" validate:"omitempty,min=7,max=20"`
	Line1      string      `bun:"line1,notnull" json:"line1" validate:"required,min=3,max=200"`
	Line2      string      `bun:"line2" json:"line2,omitempty" validate:"omitempty,max=200"`
	City       string      `bun:"city,notnull" json:"city" validate:"required,min=2,max=100"`
	State      string      `bun:"state" json:"state,omitempty" validate:"omitempty,max=100"`
	PostalCode string      `bun:"postal_code" json:"postal_code,omitempty" validate:"omitempty,max=20"`
	Country    string      `bun:"country,notnull" json:"country" validate:"required,len=2"`
	IsDefault  bool        `bun:"is_default,notnull,default:false" json:"is_default"`
	CreatedAt  time.Time   `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt  time.Time   `bun:"updated_at,notnull,default:now()" json:"updated_at"`
}

// UserDevice records where a user last signed in from.
type UserDevice struct {
	tableName  struct{}  `bun:"table:user_devices,alias:ud"`
	Id         uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	UserId     uuid.UUID `bun:"user_id,notnull,type:uuid" json:"user_id"`
	DeviceName string    `bun:"device_name" json:"device_name,omitempty"`
	IPAddress  string    `bun:"ip_address" json:"ip_address,omitempty"`
	UserAgent  string    `bun:"user_agent" json:"user_agent,omitempty"`
	LastSeenAt time.Time `bun:"last_seen_at,notnull,default:now()" json:"last_seen_at"`
	CreatedAt  time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
}
