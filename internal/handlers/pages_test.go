package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"paywall/internal/models"
	"paywall/internal/service"
)

func getDashboard(r http.Handler, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestDashboard_AnonymousRedirectsToLogin(t *testing.T) {
	auth := &mockAuth{}
	r := newTestRouter(&service.Service{Authorization: auth})

	w := getDashboard(r, "")
	if w.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %q", loc)
	}
}

func TestDashboard_InvalidSessionRedirectsToLogin(t *testing.T) {
	auth := &mockAuth{parseErr: errors.New("expired")}
	r := newTestRouter(&service.Service{Authorization: auth})

	w := getDashboard(r, "stale")
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/login" {
		t.Fatalf("expected redirect to /login, got %d %q", w.Code, w.Header().Get("Location"))
	}
}

func TestDashboard_UnpaidRedirectsToPayment(t *testing.T) {
	auth := &mockAuth{parseSession: models.Session{UserID: 7, HasPaid: false}}
	r := newTestRouter(&service.Service{Authorization: auth})

	w := getDashboard(r, "tok")
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/payment" {
		t.Fatalf("expected redirect to /payment, got %d %q", w.Code, w.Header().Get("Location"))
	}
}

func TestDashboard_PaidSeesProtectedContent(t *testing.T) {
	auth := &mockAuth{parseSession: models.Session{UserID: 7, HasPaid: true}}
	r := newTestRouter(&service.Service{Authorization: auth})

	w := getDashboard(r, "tok")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "members-only") {
		t.Fatalf("expected protected content, got %q", w.Body.String())
	}
}

func TestPublicPages(t *testing.T) {
	r := newTestRouter(&service.Service{})

	for path, marker := range map[string]string{
		"/":        "Welcome",
		"/login":   "Log in",
		"/payment": "Unlock",
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, w.Code)
		}
		if !strings.Contains(w.Body.String(), marker) {
			t.Fatalf("%s: expected body to contain %q", path, marker)
		}
	}
}
