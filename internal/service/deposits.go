package service

import (
	"context"

	"bankportal/internal/domain" // Importing domain models

	"github.com/shopspring/decimal" // Exact decimal arithmetic
	"gorm.io/gorm"                  // GORM ORM library
)

// DepositService covers stablecoin deposit submission and history. The
// legacy fiat Deposit entity has no user submission path; it is reviewed
// through the admin service only.
type DepositService interface {
	SubmitPYUSD(ctx context.Context, accountID uint, paypalID string, amount decimal.Decimal, network string) (*domain.PYUSDDeposit, error)
	History(ctx context.Context, accountID uint) ([]domain.PYUSDDeposit, error)
}

type depositService struct {
	db *gorm.DB // Database handle
}

// NewDepositService returns the gorm-backed deposit service.
func NewDepositService(db *gorm.DB) DepositService {
	return &depositService{db: db}
}

// SubmitPYUSD records a Pending stablecoin deposit claim. Amount validation
// (positive, parseable) happens before this is called; no row is created on
// bad input.
func (s *depositService) SubmitPYUSD(ctx context.Context, accountID uint, paypalID string, amount decimal.Decimal, network string) (*domain.PYUSDDeposit, error) {
	if network == "" {
		network = domain.DefaultPYUSDNetwork
	}
	dep := domain.PYUSDDeposit{
		AccountID: accountID,
		PayPalID:  paypalID,
		Amount:    amount,
		Network:   network,
		Status:    domain.StatusPending,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&dep).Error
	})
	if err != nil {
		return nil, err
	}
	return &dep, nil
}

// History returns the account's stablecoin deposits, newest first.
func (s *depositService) History(ctx context.Context, accountID uint) ([]domain.PYUSDDeposit, error) {
	var deps []domain.PYUSDDeposit
	err := s.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at desc").
		Find(&deps).Error
	if err != nil {
		return nil, err
	}
	return deps, nil
}
