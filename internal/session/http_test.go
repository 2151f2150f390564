package session

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
)

func newTestRouter(tokens *TokenService) *chi.Mux {
	h := NewHandler(tokens)
	r := chi.NewRouter()
	r.Post("/jwt", h.Login)
	r.Post("/logout", h.Logout)
	r.With(RequireSession(tokens)).Get("/protected", func(w http.ResponseWriter, r *http.Request) {
		ident, ok := IdentityFrom(r.Context())
		if !ok {
			http.Error(w, "no identity", http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(ident.Email))
	})
	return r
}

func tokenCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == "token" {
			return c
		}
	}
	t.Fatal("no token cookie in response")
	return nil
}

func TestLoginSetsSessionCookie(t *testing.T) {
	r := newTestRouter(NewTokenService("test-secret", time.Hour))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(`{"email":"a@x.com"}`))
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"success":true`) {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
	c := tokenCookie(t, rec)
	if !c.HttpOnly || !c.Secure || c.SameSite != http.SameSiteNoneMode {
		t.Errorf("cookie attributes wrong: HttpOnly=%v Secure=%v SameSite=%v", c.HttpOnly, c.Secure, c.SameSite)
	}
	if c.Value == "" {
		t.Error("cookie value is empty")
	}
}

func TestLoginRequiresEmail(t *testing.T) {
	r := newTestRouter(NewTokenService("test-secret", time.Hour))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(`{}`))
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("got status %d, want 400", rec.Code)
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	r := newTestRouter(NewTokenService("test-secret", time.Hour))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", rec.Code)
	}
	c := tokenCookie(t, rec)
	if c.MaxAge >= 0 {
		t.Errorf("got MaxAge %d, want negative", c.MaxAge)
	}
	if c.Value != "" {
		t.Errorf("got cookie value %q, want empty", c.Value)
	}
}

func TestRequireSession(t *testing.T) {
	tokens := NewTokenService("test-secret", time.Hour)
	r := newTestRouter(tokens)

	signed, err := tokens.Issue("a@x.com")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	tests := []struct {
		name       string
		cookie     *http.Cookie
		wantStatus int
		wantBody   string
	}{
		{"no cookie", nil, http.StatusUnauthorized, "unauthorized access"},
		{"bad token", &http.Cookie{Name: "token", Value: "bogus"}, http.StatusUnauthorized, "unauthorized access"},
		{"valid token", &http.Cookie{Name: "token", Value: signed}, http.StatusOK, "a@x.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			r.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("got status %d, want %d", rec.Code, tt.wantStatus)
			}
			if !strings.Contains(rec.Body.String(), tt.wantBody) {
				t.Errorf("body %q does not contain %q", rec.Body.String(), tt.wantBody)
			}
		})
	}
}
