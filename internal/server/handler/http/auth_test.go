package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/expensio/expensio/internal/models"
	"github.com/expensio/expensio/internal/service"
)

// fakeAuthService implements AuthService for testing.
type fakeAuthService struct {
	token string
	user  *models.PublicUser
	err   error
}

func (f *fakeAuthService) Register(ctx context.Context, username, email, password string) (string, *models.PublicUser, error) {
	return f.token, f.user, f.err
}

func (f *fakeAuthService) Login(ctx context.Context, email, password string) (string, *models.PublicUser, error) {
	return f.token, f.user, f.err
}

func TestAuthHandler_Register(t *testing.T) {
	alice := &models.PublicUser{ID: 1, Username: "alice", Email: "a@x.com"}

	tests := []struct {
		name           string
		body           string
		service        *fakeAuthService
		expectedCode   int
		expectedSubstr string
	}{
		{
			name:           "invalid JSON",
			body:           `not a json`,
			service:        &fakeAuthService{},
			expectedCode:   http.StatusBadRequest,
			expectedSubstr: "invalid request",
		},
		{
			name:           "empty field",
			body:           `{"username":"","email":"a@x.com","password":"pw1"}`,
			service:        &fakeAuthService{err: service.ErrEmptyField},
			expectedCode:   http.StatusBadRequest,
			expectedSubstr: "invalid request",
		},
		{
			name:           "email taken",
			body:           `{"username":"alice","email":"a@x.com","password":"pw1"}`,
			service:        &fakeAuthService{err: service.ErrEmailTaken},
			expectedCode:   http.StatusConflict,
			expectedSubstr: "user already exists",
		},
		{
			name:           "store error",
			body:           `{"username":"alice","email":"a@x.com","password":"pw1"}`,
			service:        &fakeAuthService{err: errors.New("db down")},
			expectedCode:   http.StatusInternalServerError,
			expectedSubstr: "Server error",
		},
		{
			name:           "success",
			body:           `{"username":"alice","email":"a@x.com","password":"pw1"}`,
			service:        &fakeAuthService{token: "t1", user: alice},
			expectedCode:   http.StatusOK,
			expectedSubstr: `"token":"t1"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/auth/register", bytes.NewBufferString(tt.body))
			h := &AuthHandler{AuthService: tt.service, Logger: zap.NewNop()}
			h.Register(rec, req)
			res := rec.Result()
			defer res.Body.Close()

			if res.StatusCode != tt.expectedCode {
				t.Fatalf("expected status %d, got %d", tt.expectedCode, res.StatusCode)
			}

			buf := new(bytes.Buffer)
			if _, err := buf.ReadFrom(res.Body); err != nil {
				t.Fatalf("failed to read body: %v", err)
			}
			if !bytes.Contains(buf.Bytes(), []byte(tt.expectedSubstr)) {
				t.Errorf("expected body to contain %q, got %q", tt.expectedSubstr, buf.String())
			}
		})
	}
}

// TestAuthHandler_RegisterNeverLeaksHash decodes a successful register
// response and checks the user object carries exactly the public fields.
func TestAuthHandler_RegisterNeverLeaksHash(t *testing.T) {
	h := &AuthHandler{
		AuthService: &fakeAuthService{token: "t1", user: &models.PublicUser{ID: 1, Username: "alice", Email: "a@x.com"}},
		Logger:      zap.NewNop(),
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/register", bytes.NewBufferString(`{"username":"alice","email":"a@x.com","password":"pw1"}`))
	h.Register(rec, req)

	var resp struct {
		Token string                 `json:"token"`
		User  map[string]interface{} `json:"user"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.User) != 3 {
		t.Errorf("expected exactly id, username, email in user view, got %v", resp.User)
	}
	for _, key := range []string{"password", "password_hash"} {
		if _, ok := resp.User[key]; ok {
			t.Errorf("user view must not contain %q", key)
		}
	}
}

func TestAuthHandler_Login(t *testing.T) {
	alice := &models.PublicUser{ID: 1, Username: "alice", Email: "a@x.com"}

	tests := []struct {
		name           string
		body           string
		service        *fakeAuthService
		expectedCode   int
		expectedSubstr string
	}{
		{
			name:           "invalid JSON",
			body:           `not a json`,
			service:        &fakeAuthService{},
			expectedCode:   http.StatusBadRequest,
			expectedSubstr: "invalid request",
		},
		{
			name:           "user not found",
			body:           `{"email":"b@x.com","password":"pw1"}`,
			service:        &fakeAuthService{err: service.ErrUserNotFound},
			expectedCode:   http.StatusBadRequest,
			expectedSubstr: "User not found",
		},
		{
			name:           "wrong password",
			body:           `{"email":"a@x.com","password":"nope"}`,
			service:        &fakeAuthService{err: service.ErrWrongPassword},
			expectedCode:   http.StatusBadRequest,
			expectedSubstr: "Wrong password",
		},
		{
			name:           "store error",
			body:           `{"email":"a@x.com","password":"pw1"}`,
			service:        &fakeAuthService{err: errors.New("db down")},
			expectedCode:   http.StatusInternalServerError,
			expectedSubstr: "Server error",
		},
		{
			name:           "success",
			body:           `{"email":"a@x.com","password":"pw1"}`,
			service:        &fakeAuthService{token: "t1", user: alice},
			expectedCode:   http.StatusOK,
			expectedSubstr: `"username":"alice"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/auth/login", bytes.NewBufferString(tt.body))
			h := &AuthHandler{AuthService: tt.service, Logger: zap.NewNop()}
			h.Login(rec, req)
			res := rec.Result()
			defer res.Body.Close()

			if res.StatusCode != tt.expectedCode {
				t.Fatalf("expected status %d, got %d", tt.expectedCode, res.StatusCode)
			}

			buf := new(bytes.Buffer)
			if _, err := buf.ReadFrom(res.Body); err != nil {
				t.Fatalf("failed to read body: %v", err)
			}
			if !bytes.Contains(buf.Bytes(), []byte(tt.expectedSubstr)) {
				t.Errorf("expected body to contain %q, got %q", tt.expectedSubstr, buf.String())
			}
		})
	}
}
