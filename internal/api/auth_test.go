package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"bankportal/internal/domain"
	"bankportal/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- mock implementation ----

type mockAccountService struct {
	registerFn func(fullName, email, password string) (*domain.Account, error)
	authFn     func(email, password string) (*domain.Account, error)
	getFn      func(id uint) (*domain.Account, error)
	registers  int
}

func (m *mockAccountService) Register(_ context.Context, fullName, email, password string) (*domain.Account, error) {
	m.registers++
	if m.registerFn != nil {
		return m.registerFn(fullName, email, password)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockAccountService) Authenticate(_ context.Context, email, password string) (*domain.Account, error) {
	if m.authFn != nil {
		return m.authFn(email, password)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockAccountService) Get(_ context.Context, id uint) (*domain.Account, error) {
	if m.getFn != nil {
		return m.getFn(id)
	}
	return nil, fmt.Errorf("not configured")
}

// ---- helper ----

func newAuthTestRouter(accounts service.AccountService, sessions *fakeSessions) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/open-account/", RegisterHandler(accounts))
	r.POST("/login/", LoginHandler(accounts, sessions, 3600))
	r.POST("/logout/", LogoutHandler(sessions))
	return r
}

// ---- tests ----

func TestRegister(t *testing.T) {
	tests := []struct {
		name           string
		form           url.Values
		registerFn     func(fullName, email, password string) (*domain.Account, error)
		expectedStatus int
		expectedBody   string
		expectCalled   bool
	}{
		{
			name: "success - account created",
			form: url.Values{"fullname": {"Jane Doe"}, "email": {"jane@x.com"}, "password": {"pw123"}},
			registerFn: func(fullName, email, password string) (*domain.Account, error) {
				return &domain.Account{ID: 1, FullName: fullName, Email: email}, nil
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   "Account created successfully. Please login.",
			expectCalled:   true,
		},
		{
			name:           "missing fullname - nothing created",
			form:           url.Values{"email": {"jane@x.com"}, "password": {"pw123"}},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "All fields are required.",
		},
		{
			name:           "missing password - nothing created",
			form:           url.Values{"fullname": {"Jane Doe"}, "email": {"jane@x.com"}},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "All fields are required.",
		},
		{
			name: "duplicate email - rejected",
			form: url.Values{"fullname": {"Jane Doe"}, "email": {"JANE@x.com"}, "password": {"pw123"}},
			registerFn: func(fullName, email, password string) (*domain.Account, error) {
				return nil, service.ErrEmailTaken
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Email already exists.",
			expectCalled:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accounts := &mockAccountService{registerFn: tt.registerFn}
			router := newAuthTestRouter(accounts, newFakeSessions())

			w := postForm(router, "/open-account/", tt.form)

			if w.Code != tt.expectedStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.expectedStatus)
			}
			if !strings.Contains(w.Body.String(), tt.expectedBody) {
				t.Errorf("body = %s, want it to contain %q", w.Body.String(), tt.expectedBody)
			}
			if tt.expectCalled && accounts.registers != 1 {
				t.Errorf("register calls = %d, want 1", accounts.registers)
			}
			if !tt.expectCalled && accounts.registers != 0 {
				t.Errorf("register calls = %d, want 0 on validation failure", accounts.registers)
			}
		})
	}
}

func TestLoginUniformFailureMessage(t *testing.T) {
	// An unknown email and a wrong password must be indistinguishable to the
	// caller.
	accounts := &mockAccountService{
		authFn: func(email, password string) (*domain.Account, error) {
			if email == "jane@x.com" && password == "pw123" {
				return testAccount(), nil
			}
			return nil, service.ErrInvalidCredentials
		},
	}
	router := newAuthTestRouter(accounts, newFakeSessions())

	unknown := postForm(router, "/login/", url.Values{"email": {"ghost@x.com"}, "password": {"pw123"}})
	wrongPw := postForm(router, "/login/", url.Values{"email": {"jane@x.com"}, "password": {"nope"}})

	if unknown.Code != http.StatusUnauthorized || wrongPw.Code != http.StatusUnauthorized {
		t.Fatalf("statuses = %d, %d, want both %d", unknown.Code, wrongPw.Code, http.StatusUnauthorized)
	}
	if unknown.Body.String() != wrongPw.Body.String() {
		t.Errorf("failure bodies differ: %s vs %s", unknown.Body.String(), wrongPw.Body.String())
	}
	if !strings.Contains(unknown.Body.String(), "Invalid email or password.") {
		t.Errorf("body = %s, want the uniform failure message", unknown.Body.String())
	}
}

func TestLoginSuccessOpensSession(t *testing.T) {
	sessions := newFakeSessions()
	accounts := &mockAccountService{
		authFn: func(email, password string) (*domain.Account, error) {
			return testAccount(), nil
		},
	}
	router := newAuthTestRouter(accounts, sessions)

	w := postForm(router, "/login/", url.Values{"email": {"jane@x.com"}, "password": {"pw123"}})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if len(sessions.tokens) != 1 {
		t.Fatalf("open sessions = %d, want 1", len(sessions.tokens))
	}
	cookie := w.Header().Get("Set-Cookie")
	if !strings.Contains(cookie, "session_id=") {
		t.Errorf("Set-Cookie = %q, want a session_id cookie", cookie)
	}
	if !strings.Contains(w.Body.String(), "Welcome back, Jane Doe!") {
		t.Errorf("body = %s, want the welcome message", w.Body.String())
	}
}

func TestLogoutDestroysSession(t *testing.T) {
	sessions := newFakeSessions()
	token, _ := sessions.Create(context.Background(), 7)
	accounts := &mockAccountService{}
	router := newAuthTestRouter(accounts, sessions)

	req, _ := http.NewRequest(http.MethodPost, "/logout/", nil)
	req.AddCookie(&http.Cookie{Name: "session_id", Value: token})
	w := newRecorderFor(router, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if len(sessions.destroyed) != 1 || sessions.destroyed[0] != token {
		t.Errorf("destroyed = %v, want [%s]", sessions.destroyed, token)
	}
}
