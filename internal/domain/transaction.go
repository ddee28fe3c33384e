package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction Model. Rows are insert-only; a nil sender or recipient means
// the money moved to or from the platform itself.
type Transaction struct {
	ID          uint            `gorm:"primaryKey" json:"id"`                // Primary key
	SenderID    *uint           `gorm:"index" json:"sender_id"`              // Foreign key to the sending Account, nil = system
	RecipientID *uint           `gorm:"index" json:"recipient_id"`           // Foreign key to the receiving Account, nil = system
	Amount      decimal.Decimal `gorm:"type:decimal(12,2)" json:"amount"`    // Amount moved
	Description string          `gorm:"type:text" json:"description"`        // Free-form description
	CreatedAt   time.Time       `json:"created_at"`                          // Timestamp of creation
}
