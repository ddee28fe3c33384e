package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultPYUSDNetwork is used when a deposit is submitted without a
// network label.
const DefaultPYUSDNetwork = "PYUSD"

// PYUSDDeposit Model. A claimed stablecoin transfer awaiting
// administrative confirmation.
type PYUSDDeposit struct {
	ID        uint            `gorm:"primaryKey" json:"id"`                  // Primary key
	AccountID uint            `gorm:"index;not null" json:"account_id"`      // Foreign key to the owning Account
	PayPalID  string          `gorm:"size:255;not null" json:"paypal_id"`    // Claimed sender address / PayPal ID
	Amount    decimal.Decimal `gorm:"type:decimal(12,2)" json:"amount"`      // Claimed amount
	Network   string          `gorm:"size:50" json:"network"`                // Network label
	Status    string          `gorm:"size:20;default:Pending" json:"status"` // Pending, Successful or Failed
	CreatedAt time.Time       `json:"created_at"`                            // Timestamp of submission
}

// Deposit Model. Legacy fiat deposit path; rows are reviewed through the
// admin API only, there is no user submission endpoint.
type Deposit struct {
	ID        uint            `gorm:"primaryKey" json:"id"`                  // Primary key
	AccountID uint            `gorm:"index;not null" json:"account_id"`      // Foreign key to the owning Account
	Amount    decimal.Decimal `gorm:"type:decimal(12,2)" json:"amount"`      // Deposit amount
	Method    string          `gorm:"size:50" json:"method"`                 // Deposit method
	Status    string          `gorm:"size:20;default:Pending" json:"status"` // Pending, Successful or Failed
	Date      time.Time       `gorm:"autoCreateTime" json:"date"`            // Timestamp of the deposit
}
