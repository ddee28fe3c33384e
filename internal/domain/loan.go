package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// upfrontFeeRate is the fixed fraction of the requested loan amount charged
// up front before disbursement.
var upfrontFeeRate = decimal.NewFromFloat(0.2)

// UpfrontFeeAmount returns the upfront fee for a requested loan amount,
// computed in exact decimal arithmetic.
func UpfrontFeeAmount(loanAmount decimal.Decimal) decimal.Decimal {
	return loanAmount.Mul(upfrontFeeRate)
}

// LoanApplication Model
type LoanApplication struct {
	ID              uint            `gorm:"primaryKey" json:"id"`                                  // Primary key
	AccountID       uint            `gorm:"index;not null" json:"account_id"`                      // Foreign key to the owning Account
	FullName        string          `gorm:"size:255;not null" json:"full_name"`                    // Applicant's full name
	Email           string          `gorm:"size:255;not null" json:"email"`                        // Applicant's email
	Phone           string          `gorm:"size:20;not null" json:"phone"`                         // Applicant's phone
	Address         string          `gorm:"type:text" json:"address"`                              // Applicant's address
	EmploymentInfo  string          `gorm:"type:text" json:"employment_info"`                      // Employment details
	Income          decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"income"`            // Declared income
	LoanAmount      decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"loan_amount"`       // Requested amount
	LoanPurpose     string          `gorm:"type:text" json:"loan_purpose"`                         // Stated purpose
	GovernmentIDURL string          `gorm:"size:255" json:"government_id_url"`                     // Government ID upload URL
	FacePhotoURL    string          `gorm:"size:255" json:"face_photo_url"`                        // Face photo upload URL
	Status          string          `gorm:"size:20;default:Pending" json:"status"`                 // Pending, Approved or Rejected
	CreatedAt       time.Time       `json:"created_at"`                                            // Timestamp of application
}

// UpfrontFee Model. Exactly one fee exists per loan application; the two
// rows are created in the same transaction.
type UpfrontFee struct {
	ID            uint            `gorm:"primaryKey" json:"id"`                      // Primary key
	LoanID        uint            `gorm:"uniqueIndex;not null" json:"loan_id"`       // Foreign key to the LoanApplication, 1:1
	AccountID     uint            `gorm:"index;not null" json:"account_id"`          // Foreign key to the owning Account
	FeeAmount     decimal.Decimal `gorm:"type:decimal(12,2)" json:"fee_amount"`      // 20% of the requested loan amount
	ProofImageURL string          `gorm:"size:255" json:"proof_image_url"`           // Proof-of-payment upload URL
	TransactionID string          `gorm:"size:100" json:"transaction_id"`            // Payment reference, write-once by admin
	Status        string          `gorm:"size:20;default:Pending" json:"status"`     // Pending, Successful or Failed
	CreatedAt     time.Time       `json:"created_at"`                                // Timestamp of creation
}
