package service

import (
	"context"
	"errors"
	"strings"

	"bankportal/internal/domain" // Importing domain models

	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"               // GORM ORM library
)

// AccountService covers registration, credential checks and identity
// resolution for the session middleware.
type AccountService interface {
	Register(ctx context.Context, fullName, email, password string) (*domain.Account, error)
	Authenticate(ctx context.Context, email, password string) (*domain.Account, error)
	Get(ctx context.Context, id uint) (*domain.Account, error)
}

type accountService struct {
	db *gorm.DB // Database handle
}

// NewAccountService returns the gorm-backed account service.
func NewAccountService(db *gorm.DB) AccountService {
	return &accountService{db: db}
}

// Register creates an account with a hashed password. The email is
// normalized to lower case so duplicate checks are case-insensitive.
func (s *accountService) Register(ctx context.Context, fullName, email, password string) (*domain.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var existing domain.Account
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, ErrEmailTaken // An account with this email already exists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	account := domain.Account{
		FullName: fullName,
		Email:    email,
		Password: string(hash),
		Role:     domain.RoleUser,
	}
	if err := s.db.WithContext(ctx).Create(&account).Error; err != nil {
		// The unique index races with the existence check above; re-check so
		// a lost race still reads as a duplicate, and anything else surfaces
		// as the storage error it is.
		var count int64
		s.db.WithContext(ctx).Model(&domain.Account{}).Where("email = ?", email).Count(&count)
		if count > 0 {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return &account, nil
}

// Authenticate verifies the credentials for an email. A missing account and
// a wrong password return the same error.
func (s *accountService) Authenticate(ctx context.Context, email, password string) (*domain.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var account domain.Account
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&account).Error; err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &account, nil
}

// Get resolves an account by ID.
func (s *accountService) Get(ctx context.Context, id uint) (*domain.Account, error) {
	var account domain.Account
	if err := s.db.WithContext(ctx).First(&account, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &account, nil
}
