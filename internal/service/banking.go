package service

import (
	"context"
	"errors"

	"bankportal/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// LinkBankInput carries the bank linking form. The three routing fields are
// required; the rest is optional verification metadata.
type LinkBankInput struct {
	BankName         string // Required
	AccountNumber    string // Required
	RoutingNumber    string // Required
	PhoneNumber      string
	SecurityQuestion string
	SecurityAnswer   string
	SSNLast4         string
	AccountUsername  string
	AccountPassword  string
	SelfieURL        string // URL of the stored selfie upload, if any
}

// Dashboard is the landing view for a logged-in account.
type Dashboard struct {
	Transactions []domain.Transaction `json:"transactions"` // Sent and received, newest first
	LinkedBanks  []domain.LinkedBank  `json:"linked_banks"` // Newest first
}

// BankService covers bank linking and the dashboard read.
type BankService interface {
	Link(ctx context.Context, accountID uint, in LinkBankInput) (*domain.LinkedBank, error)
	Get(ctx context.Context, accountID, bankID uint) (*domain.LinkedBank, error)
	Dashboard(ctx context.Context, accountID uint) (*Dashboard, error)
}

type bankService struct {
	db *gorm.DB // Database handle
}

// NewBankService returns the gorm-backed bank service.
func NewBankService(db *gorm.DB) BankService {
	return &bankService{db: db}
}

// Link creates a Pending LinkedBank row owned by the account. The insert is
// wrapped in a transaction so either the full attribute set persists or
// nothing does.
func (s *bankService) Link(ctx context.Context, accountID uint, in LinkBankInput) (*domain.LinkedBank, error) {
	bank := domain.LinkedBank{
		AccountID:        accountID,
		BankName:         in.BankName,
		AccountNumber:    in.AccountNumber,
		RoutingNumber:    in.RoutingNumber,
		PhoneNumber:      in.PhoneNumber,
		SecurityQuestion: in.SecurityQuestion,
		SecurityAnswer:   in.SecurityAnswer,
		SSNLast4:         in.SSNLast4,
		AccountUsername:  in.AccountUsername,
		AccountPassword:  in.AccountPassword,
		SelfieURL:        in.SelfieURL,
		Status:           domain.StatusPending,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&bank).Error
	})
	if err != nil {
		return nil, err
	}
	return &bank, nil
}

// Get returns a linked bank only if the account owns it; an owner mismatch
// reads exactly like a missing record.
func (s *bankService) Get(ctx context.Context, accountID, bankID uint) (*domain.LinkedBank, error) {
	var bank domain.LinkedBank
	err := s.db.WithContext(ctx).
		Where("id = ? AND account_id = ?", bankID, accountID).
		First(&bank).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &bank, nil
}

// Dashboard returns the account's transactions (sent or received) and its
// linked banks.
func (s *bankService) Dashboard(ctx context.Context, accountID uint) (*Dashboard, error) {
	var d Dashboard
	err := s.db.WithContext(ctx).
		Where("sender_id = ? OR recipient_id = ?", accountID, accountID).
		Order("created_at desc").
		Find(&d.Transactions).Error
	if err != nil {
		return nil, err
	}
	err = s.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("date_linked desc").
		Find(&d.LinkedBanks).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}
