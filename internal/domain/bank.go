package domain

import "time"

// LinkedBank Model. A user-submitted external bank credential record
// awaiting administrative verification.
type LinkedBank struct {
	ID               uint      `gorm:"primaryKey" json:"id"`                        // Primary key
	AccountID        uint      `gorm:"index;not null" json:"account_id"`            // Foreign key to the owning Account
	BankName         string    `gorm:"size:200;not null" json:"bank_name"`          // External bank name
	AccountNumber    string    `gorm:"size:200;not null" json:"account_number"`     // External account number
	RoutingNumber    string    `gorm:"size:200;not null" json:"routing_number"`     // External routing number
	PhoneNumber      string    `gorm:"size:200" json:"phone_number"`                // Optional contact phone
	SecurityQuestion string    `gorm:"size:200" json:"security_question"`           // Optional security question
	SecurityAnswer   string    `gorm:"size:200" json:"security_answer"`             // Optional security answer
	SSNLast4         string    `gorm:"size:4" json:"ssn_last4"`                     // Optional last four of SSN
	AccountUsername  string    `gorm:"size:200" json:"account_username"`            // Optional online banking username
	AccountPassword  string    `gorm:"size:200" json:"account_password"`            // Optional online banking password
	SelfieURL        string    `gorm:"size:255" json:"selfie_url"`                  // Optional selfie upload URL
	Status           string    `gorm:"size:20;default:Pending" json:"status"`       // Pending, Successful or Failed
	DateLinked       time.Time `gorm:"autoCreateTime" json:"date_linked"`           // Timestamp of submission
}
