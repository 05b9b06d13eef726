package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"personal_profile/internal/models"
	"personal_profile/internal/service"
)

func TestSessionMiddleware_NoCookie(t *testing.T) {
	auth := &mockAuth{validateFn: func(string) (int64, error) {
		t.Fatal("ValidateToken should not be called without a cookie")
		return 0, nil
	}}
	router := newTestRouter(&service.Service{Authorization: auth})

	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "authentication required") {
		t.Fatalf("unexpected body: %s", w.Body)
	}
}

func TestSessionMiddleware_RejectedToken(t *testing.T) {
	auth := &mockAuth{validateFn: func(string) (int64, error) {
		return 0, models.ErrUnauthorized
	}}
	router := newTestRouter(&service.Service{Authorization: auth})

	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req.AddCookie(sessionOf("stale-or-forged"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "invalid or expired session") {
		t.Fatalf("unexpected body: %s", w.Body)
	}
}

func TestSessionMiddleware_ResolvedUserReachesHandlers(t *testing.T) {
	// the user id handlers see must come from token validation, never
	// from anything the client sent in the request itself
	auth := &mockAuth{validateFn: func(token string) (int64, error) {
		if token != "tok-7" {
			t.Fatalf("unexpected token: %q", token)
		}
		return 7, nil
	}}
	goals := &mockGoalSvc{listFn: func(userID int64, _ models.GoalFilter) ([]models.Goal, error) {
		if userID != 7 {
			t.Fatalf("handler received wrong user id: %d", userID)
		}
		return []models.Goal{}, nil
	}}
	router := newTestRouter(&service.Service{Authorization: auth, Goals: goals})

	req := httptest.NewRequest(http.MethodGet, "/api/goals?user_id=999", nil)
	req.AddCookie(sessionOf("tok-7"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body)
	}
}
