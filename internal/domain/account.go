package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Account Model
type Account struct {
	ID        uint            `gorm:"primaryKey" json:"id"`                                    // Primary key
	FullName  string          `gorm:"size:100;not null" json:"fullname"`                       // Holder's full name
	Email     string          `gorm:"size:255;uniqueIndex;not null" json:"email"`              // Unique email, stored lower-case
	Password  string          `gorm:"size:128;not null" json:"-"`                              // Bcrypt hash, never plaintext, never serialized
	Balance   decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"balance"`    // Account balance
	Role      string          `gorm:"size:20;default:user" json:"role"`                        // Role: user or admin
	CreatedAt time.Time       `json:"created_at"`                                              // Timestamp of creation
}
