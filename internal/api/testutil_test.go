package api

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"bankportal/internal/domain"
	"bankportal/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ---- shared fakes ----

// withAccount stands in for the session middleware in handler tests.
func withAccount(a *domain.Account) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.CtxAccount, a)
		c.Set(middleware.CtxAccountID, a.ID)
		c.Next()
	}
}

func testAccount() *domain.Account {
	return &domain.Account{
		ID:       7,
		FullName: "Jane Doe",
		Email:    "jane@x.com",
		Balance:  decimal.Zero,
		Role:     domain.RoleUser,
	}
}

// fakeSessions is an in-memory session.Sessions.
type fakeSessions struct {
	tokens    map[string]uint
	destroyed []string
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{tokens: map[string]uint{}}
}

func (f *fakeSessions) Create(_ context.Context, accountID uint) (string, error) {
	token := "tok-" + strings.Repeat("x", int(accountID%5)+1)
	f.tokens[token] = accountID
	return token, nil
}

func (f *fakeSessions) Get(_ context.Context, token string) (uint, bool, error) {
	id, ok := f.tokens[token]
	return id, ok, nil
}

func (f *fakeSessions) Destroy(_ context.Context, token string) error {
	delete(f.tokens, token)
	f.destroyed = append(f.destroyed, token)
	return nil
}

// fakeFileStore records saved uploads without touching the filesystem.
type fakeFileStore struct {
	saved int
	fail  bool
}

func (f *fakeFileStore) Save(fh *multipart.FileHeader) (string, error) {
	if f.fail {
		return "", errFake
	}
	f.saved++
	return "/media/" + fh.Filename, nil
}

var errFake = &fakeError{}

type fakeError struct{}

func (*fakeError) Error() string { return "fake failure" }

// ---- request helpers ----

// postForm sends a url-encoded form POST through the router.
func postForm(router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// postMultipart sends a multipart form POST with optional file fields.
func postMultipart(router *gin.Engine, path string, fields map[string]string, fileFields map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		_ = mw.WriteField(k, v)
	}
	for field, name := range fileFields {
		fw, _ := mw.CreateFormFile(field, name)
		_, _ = fw.Write([]byte("binary-upload"))
	}
	_ = mw.Close()

	req, _ := http.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// getPath sends a GET through the router.
func getPath(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// newRecorderFor runs a prepared request through the router.
func newRecorderFor(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// jsonBody sends a request with a JSON body through the router.
func jsonBody(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
