package service

import (
	"fmt"
	"strings"
	"testing"

	"bankportal/internal/domain"
	"bankportal/internal/notify"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB returns an in-memory sqlite database with the full schema. The
// shared-cache DSN keeps the database alive across the pool's connections;
// the name is derived from the test so parallel tests stay isolated.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	err = db.AutoMigrate(
		&domain.Account{},
		&domain.Transaction{},
		&domain.LinkedBank{},
		&domain.LoanApplication{},
		&domain.UpfrontFee{},
		&domain.PYUSDDeposit{},
		&domain.Deposit{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

// seedAccount inserts an account row directly, bypassing registration.
func seedAccount(t *testing.T, db *gorm.DB, email string) *domain.Account {
	t.Helper()
	account := domain.Account{
		FullName: "Jane Doe",
		Email:    email,
		Password: "not-a-real-hash",
		Balance:  decimal.Zero,
		Role:     domain.RoleUser,
	}
	if err := db.Create(&account).Error; err != nil {
		t.Fatalf("seed account: %v", err)
	}
	return &account
}

// recordingMailer counts delivery attempts and can be told to fail.
type recordingMailer struct {
	sent []string // One subject per attempted send
	err  error    // Returned by every send when set
}

func (m *recordingMailer) Send(subject, body, from string, to []string) error {
	m.sent = append(m.sent, subject)
	return m.err
}

func newTestNotifier(mailer notify.Mailer) *notify.Notifier {
	return notify.NewNotifier(mailer, "noreply@bankportal.test")
}
