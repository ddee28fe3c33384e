package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"bankportal/internal/domain"
	"bankportal/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// ---- mock implementation ----

type statusCall struct {
	id     uint
	status string
}

type mockAdminService struct {
	err       error        // Returned by every mutation when set
	calls     []statusCall // Recorded status mutations
	refCalls  []statusCall // Recorded reference writes
	loans     []domain.LoanApplication
	loanTotal int64
}

func (m *mockAdminService) set(id uint, status string) error {
	if m.err != nil {
		return m.err
	}
	m.calls = append(m.calls, statusCall{id: id, status: status})
	return nil
}

func (m *mockAdminService) SetLinkedBankStatus(_ context.Context, id uint, status string) error {
	return m.set(id, status)
}
func (m *mockAdminService) SetLoanStatus(_ context.Context, id uint, status string) error {
	return m.set(id, status)
}
func (m *mockAdminService) SetFeeStatus(_ context.Context, id uint, status string) error {
	return m.set(id, status)
}
func (m *mockAdminService) SetPYUSDDepositStatus(_ context.Context, id uint, status string) error {
	return m.set(id, status)
}
func (m *mockAdminService) SetDepositStatus(_ context.Context, id uint, status string) error {
	return m.set(id, status)
}

func (m *mockAdminService) SetFeeTransactionID(_ context.Context, id uint, ref string) error {
	if m.err != nil {
		return m.err
	}
	m.refCalls = append(m.refCalls, statusCall{id: id, status: ref})
	return nil
}

func (m *mockAdminService) ListLoans(_ context.Context, status string, offset, limit int) ([]domain.LoanApplication, int64, error) {
	return m.loans, m.loanTotal, nil
}
func (m *mockAdminService) ListLinkedBanks(_ context.Context, status string, offset, limit int) ([]domain.LinkedBank, int64, error) {
	return nil, 0, fmt.Errorf("not configured")
}
func (m *mockAdminService) ListPYUSDDeposits(_ context.Context, status string, offset, limit int) ([]domain.PYUSDDeposit, int64, error) {
	return nil, 0, fmt.Errorf("not configured")
}
func (m *mockAdminService) ListDeposits(_ context.Context, status string, offset, limit int) ([]domain.Deposit, int64, error) {
	return nil, 0, fmt.Errorf("not configured")
}

// ---- helper ----

// deadRedis returns a client with no server behind it; cache reads fail and
// the handlers fall through to the service, which is exactly what the tests
// want.
func deadRedis() *redis.Client {
	return redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
}

func newAdminTestRouter(admin service.AdminService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/loans", ListLoansHandler(admin, deadRedis()))
	r.PATCH("/admin/fees/:id/status", SetFeeStatusHandler(admin))
	r.PATCH("/admin/fees/:id/transaction-id", SetFeeTransactionIDHandler(admin))
	r.PATCH("/admin/linked-banks/:id/status", SetLinkedBankStatusHandler(admin, deadRedis()))
	return r
}

// ---- tests ----

func TestAdminLogin(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		authFn         func(email, password string) (*domain.Account, error)
		expectedStatus int
	}{
		{
			name: "success - staff account gets a token",
			body: `{"email":"ops@x.com","password":"secret"}`,
			authFn: func(email, password string) (*domain.Account, error) {
				return &domain.Account{ID: 1, Email: email, Role: domain.RoleAdmin}, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "forbidden - regular account",
			body: `{"email":"jane@x.com","password":"pw123"}`,
			authFn: func(email, password string) (*domain.Account, error) {
				return &domain.Account{ID: 7, Email: email, Role: domain.RoleUser}, nil
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name: "unauthorised - bad credentials",
			body: `{"email":"ops@x.com","password":"wrong"}`,
			authFn: func(email, password string) (*domain.Account, error) {
				return nil, service.ErrInvalidCredentials
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "bad request - missing password",
			body:           `{"email":"ops@x.com"}`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			r := gin.New()
			r.POST("/admin/login", AdminLoginHandler(&mockAccountService{authFn: tt.authFn}, "test-secret"))

			w := jsonBody(r, http.MethodPost, "/admin/login", tt.body)

			if w.Code != tt.expectedStatus {
				t.Fatalf("status = %d, want %d: %s", w.Code, tt.expectedStatus, w.Body.String())
			}
			if tt.expectedStatus == http.StatusOK && !strings.Contains(w.Body.String(), "token") {
				t.Errorf("body = %s, want a token", w.Body.String())
			}
		})
	}
}

func TestSetStatusEndpoints(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		body           string
		svcErr         error
		expectedStatus int
		expectCall     *statusCall
	}{
		{
			name:           "fee marked successful",
			path:           "/admin/fees/6/status",
			body:           `{"status":"Successful"}`,
			expectedStatus: http.StatusOK,
			expectCall:     &statusCall{id: 6, status: domain.StatusSuccessful},
		},
		{
			name:           "failed back to successful is allowed",
			path:           "/admin/linked-banks/11/status",
			body:           `{"status":"Successful"}`,
			expectedStatus: http.StatusOK,
			expectCall:     &statusCall{id: 11, status: domain.StatusSuccessful},
		},
		{
			name:           "invalid status value",
			path:           "/admin/fees/6/status",
			body:           `{"status":"Maybe"}`,
			svcErr:         service.ErrInvalidStatus,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing status field",
			path:           "/admin/fees/6/status",
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown record",
			path:           "/admin/fees/999/status",
			body:           `{"status":"Failed"}`,
			svcErr:         service.ErrNotFound,
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			admin := &mockAdminService{err: tt.svcErr}
			router := newAdminTestRouter(admin)

			w := jsonBody(router, http.MethodPatch, tt.path, tt.body)

			if w.Code != tt.expectedStatus {
				t.Fatalf("status = %d, want %d: %s", w.Code, tt.expectedStatus, w.Body.String())
			}
			if tt.expectCall != nil {
				if len(admin.calls) != 1 || admin.calls[0] != *tt.expectCall {
					t.Errorf("calls = %v, want [%v]", admin.calls, *tt.expectCall)
				}
			} else if len(admin.calls) != 0 {
				t.Errorf("calls = %v, want none", admin.calls)
			}
		})
	}
}

func TestSetStatusInvalidationIsBestEffort(t *testing.T) {
	// The linked-bank route is wired to invalidate its list cache after the
	// write; with no redis behind the client the delete fails, and the
	// mutation must still land and report success.
	admin := &mockAdminService{}
	router := newAdminTestRouter(admin)

	w := jsonBody(router, http.MethodPatch, "/admin/linked-banks/11/status", `{"status":"Failed"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", w.Code, http.StatusOK, w.Body.String())
	}
	if len(admin.calls) != 1 || admin.calls[0].status != domain.StatusFailed {
		t.Errorf("calls = %v, want one Failed write", admin.calls)
	}
}

func TestSetFeeTransactionID(t *testing.T) {
	t.Run("write-once - first write recorded", func(t *testing.T) {
		admin := &mockAdminService{}
		router := newAdminTestRouter(admin)

		w := jsonBody(router, http.MethodPatch, "/admin/fees/6/transaction-id", `{"transaction_id":"TX-9001"}`)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
		}
		if len(admin.refCalls) != 1 || admin.refCalls[0].status != "TX-9001" {
			t.Errorf("refCalls = %v, want one TX-9001 write", admin.refCalls)
		}
	})

	t.Run("conflict - reference already set", func(t *testing.T) {
		admin := &mockAdminService{err: service.ErrTransactionRefSet}
		router := newAdminTestRouter(admin)

		w := jsonBody(router, http.MethodPatch, "/admin/fees/6/transaction-id", `{"transaction_id":"TX-9002"}`)

		if w.Code != http.StatusConflict {
			t.Errorf("status = %d, want %d", w.Code, http.StatusConflict)
		}
	})
}

func TestListLoansFallsBackWhenCacheUnavailable(t *testing.T) {
	admin := &mockAdminService{
		loans: []domain.LoanApplication{
			{ID: 5, FullName: "Jane Doe", Status: domain.LoanStatusPending},
		},
		loanTotal: 1,
	}
	router := newAdminTestRouter(admin)

	w := getPath(router, "/admin/loans?page=1&page_size=20")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Jane Doe") || !strings.Contains(body, "\"total\":1") {
		t.Errorf("body = %s, want the loan page from the service", body)
	}
	if !strings.Contains(body, "\"cached\":false") {
		t.Errorf("body = %s, want a cache miss", body)
	}
}
