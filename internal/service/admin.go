package service

import (
	"context"
	"errors"
	"fmt"

	"bankportal/internal/domain" // Importing domain models
	"bankportal/internal/notify" // Status-change notifications

	"gorm.io/gorm" // GORM ORM library
)

// AdminService is the administrative review surface: paginated review lists
// and direct status mutation. A status write that actually changes the value
// dispatches one best-effort notification to the owning account; a failed
// dispatch never rolls back or fails the write. Any value from the entity's
// allowed set may be written regardless of the current value.
type AdminService interface {
	SetLinkedBankStatus(ctx context.Context, id uint, status string) error
	SetLoanStatus(ctx context.Context, id uint, status string) error
	SetFeeStatus(ctx context.Context, id uint, status string) error
	SetFeeTransactionID(ctx context.Context, id uint, ref string) error
	SetPYUSDDepositStatus(ctx context.Context, id uint, status string) error
	SetDepositStatus(ctx context.Context, id uint, status string) error

	ListLoans(ctx context.Context, status string, offset, limit int) ([]domain.LoanApplication, int64, error)
	ListLinkedBanks(ctx context.Context, status string, offset, limit int) ([]domain.LinkedBank, int64, error)
	ListPYUSDDeposits(ctx context.Context, status string, offset, limit int) ([]domain.PYUSDDeposit, int64, error)
	ListDeposits(ctx context.Context, status string, offset, limit int) ([]domain.Deposit, int64, error)
}

type adminService struct {
	db       *gorm.DB         // Database handle
	notifier *notify.Notifier // Best-effort status mail
}

// NewAdminService returns the gorm-backed admin service.
func NewAdminService(db *gorm.DB, notifier *notify.Notifier) AdminService {
	return &adminService{db: db, notifier: notifier}
}

// SetLinkedBankStatus overwrites a linked bank's status and mails the owner
// when the value changed.
func (s *adminService) SetLinkedBankStatus(ctx context.Context, id uint, status string) error {
	if !domain.ValidReviewStatus(status) {
		return ErrInvalidStatus
	}
	var bank domain.LinkedBank
	if err := s.db.WithContext(ctx).First(&bank, id).Error; err != nil {
		return asNotFound(err)
	}
	if bank.Status == status {
		return nil // No change, no notification
	}
	if err := s.db.WithContext(ctx).Model(&bank).Update("status", status).Error; err != nil {
		return err
	}
	if account, err := s.owner(ctx, bank.AccountID); err == nil {
		s.notifier.StatusChanged(account.Email,
			fmt.Sprintf("Your Linked Bank Status Changed - %s", bank.BankName),
			fmt.Sprintf("Hi %s, your linked bank (%s) status is now '%s'.", account.FullName, bank.BankName, status))
	}
	return nil
}

// SetLoanStatus overwrites a loan application's status. Loan decisions are
// communicated through the fee review flow, so no mail is sent here.
func (s *adminService) SetLoanStatus(ctx context.Context, id uint, status string) error {
	if !domain.ValidLoanStatus(status) {
		return ErrInvalidStatus
	}
	var loan domain.LoanApplication
	if err := s.db.WithContext(ctx).First(&loan, id).Error; err != nil {
		return asNotFound(err)
	}
	if loan.Status == status {
		return nil
	}
	return s.db.WithContext(ctx).Model(&loan).Update("status", status).Error
}

// SetFeeStatus overwrites an upfront fee's status and mails the owner when
// the value changed.
func (s *adminService) SetFeeStatus(ctx context.Context, id uint, status string) error {
	if !domain.ValidReviewStatus(status) {
		return ErrInvalidStatus
	}
	var fee domain.UpfrontFee
	if err := s.db.WithContext(ctx).First(&fee, id).Error; err != nil {
		return asNotFound(err)
	}
	if fee.Status == status {
		return nil // No change, no notification
	}
	if err := s.db.WithContext(ctx).Model(&fee).Update("status", status).Error; err != nil {
		return err
	}
	if account, err := s.owner(ctx, fee.AccountID); err == nil {
		s.notifier.StatusChanged(account.Email,
			fmt.Sprintf("Upfront Fee Status Updated - %s", status),
			fmt.Sprintf("Hello %s, your upfront fee payment of $%s is now '%s'.", account.FullName, fee.FeeAmount.StringFixed(2), status))
	}
	return nil
}

// SetFeeTransactionID records the payment reference on a fee. The field is
// write-once: a previously set reference cannot be overwritten, and the
// applicant has no write path to it at all.
func (s *adminService) SetFeeTransactionID(ctx context.Context, id uint, ref string) error {
	var fee domain.UpfrontFee
	if err := s.db.WithContext(ctx).First(&fee, id).Error; err != nil {
		return asNotFound(err)
	}
	if fee.TransactionID != "" {
		return ErrTransactionRefSet
	}
	return s.db.WithContext(ctx).Model(&fee).Update("transaction_id", ref).Error
}

// SetPYUSDDepositStatus overwrites a stablecoin deposit's status and mails
// the owner when the value changed.
func (s *adminService) SetPYUSDDepositStatus(ctx context.Context, id uint, status string) error {
	if !domain.ValidReviewStatus(status) {
		return ErrInvalidStatus
	}
	var dep domain.PYUSDDeposit
	if err := s.db.WithContext(ctx).First(&dep, id).Error; err != nil {
		return asNotFound(err)
	}
	if dep.Status == status {
		return nil // No change, no notification
	}
	if err := s.db.WithContext(ctx).Model(&dep).Update("status", status).Error; err != nil {
		return err
	}
	if account, err := s.owner(ctx, dep.AccountID); err == nil {
		s.notifier.StatusChanged(account.Email,
			fmt.Sprintf("Deposit Status Updated - %s", status),
			fmt.Sprintf("Hello %s, your PYUSD deposit of $%s is now '%s'.", account.FullName, dep.Amount.StringFixed(2), status))
	}
	return nil
}

// SetDepositStatus overwrites a legacy fiat deposit's status. This path
// never carried a notification.
func (s *adminService) SetDepositStatus(ctx context.Context, id uint, status string) error {
	if !domain.ValidReviewStatus(status) {
		return ErrInvalidStatus
	}
	var dep domain.Deposit
	if err := s.db.WithContext(ctx).First(&dep, id).Error; err != nil {
		return asNotFound(err)
	}
	if dep.Status == status {
		return nil
	}
	return s.db.WithContext(ctx).Model(&dep).Update("status", status).Error
}

// ListLoans returns a page of loan applications, optionally filtered by
// status, newest first.
func (s *adminService) ListLoans(ctx context.Context, status string, offset, limit int) ([]domain.LoanApplication, int64, error) {
	var loans []domain.LoanApplication
	total, err := s.list(ctx, &domain.LoanApplication{}, status, offset, limit, "created_at desc", &loans)
	return loans, total, err
}

// ListLinkedBanks returns a page of linked banks, optionally filtered by
// status, newest first.
func (s *adminService) ListLinkedBanks(ctx context.Context, status string, offset, limit int) ([]domain.LinkedBank, int64, error) {
	var banks []domain.LinkedBank
	total, err := s.list(ctx, &domain.LinkedBank{}, status, offset, limit, "date_linked desc", &banks)
	return banks, total, err
}

// ListPYUSDDeposits returns a page of stablecoin deposits, optionally
// filtered by status, newest first.
func (s *adminService) ListPYUSDDeposits(ctx context.Context, status string, offset, limit int) ([]domain.PYUSDDeposit, int64, error) {
	var deps []domain.PYUSDDeposit
	total, err := s.list(ctx, &domain.PYUSDDeposit{}, status, offset, limit, "created_at desc", &deps)
	return deps, total, err
}

// ListDeposits returns a page of legacy fiat deposits, optionally filtered
// by status, newest first.
func (s *adminService) ListDeposits(ctx context.Context, status string, offset, limit int) ([]domain.Deposit, int64, error) {
	var deps []domain.Deposit
	total, err := s.list(ctx, &domain.Deposit{}, status, offset, limit, "date desc", &deps)
	return deps, total, err
}

// list runs the shared count + paginate query for the review lists.
func (s *adminService) list(ctx context.Context, model any, status string, offset, limit int, order string, dest any) (int64, error) {
	query := s.db.WithContext(ctx).Model(model)
	if status != "" {
		query = query.Where("status = ?", status) // Filter by status
	}
	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return 0, err
	}
	if err := query.Session(&gorm.Session{}).Order(order).Offset(offset).Limit(limit).Find(dest).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// owner loads the account that owns a reviewed record.
func (s *adminService) owner(ctx context.Context, accountID uint) (*domain.Account, error) {
	var account domain.Account
	if err := s.db.WithContext(ctx).First(&account, accountID).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// asNotFound maps gorm's record-not-found onto the service sentinel.
func asNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
