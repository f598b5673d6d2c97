// File: internal/handlers/auth_handlers_test.go
package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"

	"github.com/chadhq/chad-backend/internal/handlers"
	"github.com/chadhq/chad-backend/internal/middleware"
	"github.com/chadhq/chad-backend/internal/ratelimit"
	"github.com/chadhq/chad-backend/internal/services"
	"github.com/chadhq/chad-backend/internal/services/user_services"
)

func TestSessionPollingDoesNotTripAuthLimiter(t *testing.T) {
	limiter := ratelimit.NewMemoryRateLimiter(ratelimit.DefaultAuthConfig())
	defer limiter.Close()

	// Repositories are never reached: the session probe and an empty-body
	// sign-in both stop at local validation.
	svc := user_services.NewAuthService(nil, nil, "test-secret", &services.NoOpLogger{})
	h := handlers.NewAuthHandler(svc)

	// Mirrors the server wiring: the polled session probe sits outside the
	// rate-limited auth subrouter.
	r := mux.NewRouter()
	r.HandleFunc("/api/auth/session", h.Session).Methods("GET")
	auth := r.PathPrefix("/api/auth").Subrouter()
	auth.Use(middleware.RateLimitMiddleware(limiter, "auth"))
	auth.HandleFunc("/signin", h.SignIn).Methods("POST")

	// Well past the limiter's attempt budget; every poll still answers.
	for i := 0; i < 30; i++ {
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/auth/session", nil))
		if resp.Code != http.StatusOK {
			t.Fatalf("poll %d: got %d, want 200", i, resp.Code)
		}
	}

	// The same client can still attempt a sign-in afterwards.
	resp := postJSON(t, r, http.MethodPost, "/api/auth/signin", map[string]string{})
	if resp.Code == http.StatusTooManyRequests {
		t.Fatal("session polling consumed the sign-in rate budget")
	}
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("empty sign-in: got %d, want 401", resp.Code)
	}
}
