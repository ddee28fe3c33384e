package service

import (
	"context"
	"errors"

	"bankportal/internal/domain" // Importing domain models

	"github.com/shopspring/decimal" // Exact decimal arithmetic
	"gorm.io/gorm"                  // GORM ORM library
)

// LoanInput carries the loan application form.
type LoanInput struct {
	FullName        string
	Email           string
	Phone           string
	Address         string
	EmploymentInfo  string
	Income          decimal.Decimal
	LoanAmount      decimal.Decimal
	LoanPurpose     string
	GovernmentIDURL string // URL of the stored ID upload, if any
	FacePhotoURL    string // URL of the stored face photo, if any
}

// LoanService covers the loan application lifecycle on the applicant side.
// Status changes are administrative only.
type LoanService interface {
	Apply(ctx context.Context, accountID uint, in LoanInput) (*domain.LoanApplication, *domain.UpfrontFee, error)
	SubmitProof(ctx context.Context, accountID, loanID uint, proofURL string) (*domain.UpfrontFee, error)
	Status(ctx context.Context, accountID, loanID uint) (*domain.LoanApplication, *domain.UpfrontFee, error)
}

type loanService struct {
	db *gorm.DB // Database handle
}

// NewLoanService returns the gorm-backed loan service.
func NewLoanService(db *gorm.DB) LoanService {
	return &loanService{db: db}
}

// Apply creates the application and its upfront fee in one transaction. A
// loan never exists without its fee row, and vice versa.
func (s *loanService) Apply(ctx context.Context, accountID uint, in LoanInput) (*domain.LoanApplication, *domain.UpfrontFee, error) {
	loan := domain.LoanApplication{
		AccountID:       accountID,
		FullName:        in.FullName,
		Email:           in.Email,
		Phone:           in.Phone,
		Address:         in.Address,
		EmploymentInfo:  in.EmploymentInfo,
		Income:          in.Income,
		LoanAmount:      in.LoanAmount,
		LoanPurpose:     in.LoanPurpose,
		GovernmentIDURL: in.GovernmentIDURL,
		FacePhotoURL:    in.FacePhotoURL,
		Status:          domain.LoanStatusPending,
	}
	fee := domain.UpfrontFee{
		AccountID: accountID,
		FeeAmount: domain.UpfrontFeeAmount(in.LoanAmount),
		Status:    domain.StatusPending,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&loan).Error; err != nil {
			return err // Return error to rollback
		}
		fee.LoanID = loan.ID
		if err := tx.Create(&fee).Error; err != nil {
			return err // Return error to rollback
		}
		return nil // Commit transaction
	})
	if err != nil {
		return nil, nil, err
	}
	return &loan, &fee, nil
}

// SubmitProof attaches a proof-of-payment upload to the fee of a loan the
// account owns. The fee status is untouched; confirming payment is an
// administrative action.
func (s *loanService) SubmitProof(ctx context.Context, accountID, loanID uint, proofURL string) (*domain.UpfrontFee, error) {
	_, fee, err := s.Status(ctx, accountID, loanID)
	if err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(fee).Update("proof_image_url", proofURL).Error; err != nil {
		return nil, err
	}
	fee.ProofImageURL = proofURL
	return fee, nil
}

// Status returns a loan and its fee, scoped to the owning account. An owner
// mismatch reads exactly like a missing record.
func (s *loanService) Status(ctx context.Context, accountID, loanID uint) (*domain.LoanApplication, *domain.UpfrontFee, error) {
	var loan domain.LoanApplication
	err := s.db.WithContext(ctx).
		Where("id = ? AND account_id = ?", loanID, accountID).
		First(&loan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}
	var fee domain.UpfrontFee
	if err := s.db.WithContext(ctx).Where("loan_id = ?", loan.ID).First(&fee).Error; err != nil {
		return nil, nil, err
	}
	return &loan, &fee, nil
}
