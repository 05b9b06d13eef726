package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"personal_profile/internal/models"

	"golang.org/x/crypto/bcrypt"
)

// in-test mocks for repository.Users and repository.Sessions

type mockUsers struct {
	createFn func(username, email, hash string) (models.User, error)
	users    map[string]*models.User // keyed by identifier
	byID     map[int64]*models.User

	createCalls []struct{ username, email, hash string }
}

func (m *mockUsers) Create(_ context.Context, username, email, hash string) (models.User, error) {
	m.createCalls = append(m.createCalls, struct{ username, email, hash string }{username, email, hash})
	return m.createFn(username, email, hash)
}

func (m *mockUsers) GetByIdentifier(_ context.Context, identifier string) (*models.User, error) {
	return m.users[identifier], nil
}

func (m *mockUsers) GetByID(_ context.Context, id int64) (*models.User, error) {
	return m.byID[id], nil
}

type mockSessions struct {
	store map[string]models.Session
}

func newMockSessions() *mockSessions {
	return &mockSessions{store: map[string]models.Session{}}
}

func (m *mockSessions) Create(_ context.Context, s models.Session) error {
	m.store[s.ID] = s
	return nil
}

func (m *mockSessions) Get(_ context.Context, id string) (*models.Session, error) {
	s, ok := m.store[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (m *mockSessions) Delete(_ context.Context, id string) error {
	delete(m.store, id)
	return nil
}

func newTestAuthService(users *mockUsers, sessions *mockSessions) *AuthService {
	return NewAuthService(users, sessions, AuthConfig{
		SigningKey: []byte("test-signing-key"),
		TokenTTL:   time.Hour,
	})
}

func hashFor(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return string(hash)
}

func TestAuthService_Register_HashesPasswordAndLogsIn(t *testing.T) {
	users := &mockUsers{
		createFn: func(username, email, hash string) (models.User, error) {
			return models.User{ID: 42, Username: username, Email: email, PasswordHash: hash}, nil
		},
	}
	sessions := newMockSessions()
	svc := newTestAuthService(users, sessions)

	user, token, err := svc.Register(context.Background(), RegisterInput{
		Username: " alice ", Email: "Alice@X.com", Password: "pw123456",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.ID != 42 {
		t.Fatalf("expected id 42, got %d", user.ID)
	}

	if len(users.createCalls) != 1 {
		t.Fatalf("expected 1 Create call, got %d", len(users.createCalls))
	}
	call := users.createCalls[0]
	if call.username != "alice" || call.email != "alice@x.com" {
		t.Errorf("expected trimmed/lowered identity, got %q %q", call.username, call.email)
	}
	if call.hash == "pw123456" {
		t.Errorf("password stored unhashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(call.hash), []byte("pw123456")); err != nil {
		t.Errorf("stored hash does not verify: %v", err)
	}

	// registration logs the user straight in
	if len(sessions.store) != 1 {
		t.Fatalf("expected 1 session, got %d", len(sessions.store))
	}
	uid, err := svc.ValidateToken(context.Background(), token)
	if err != nil {
		t.Fatalf("fresh token does not validate: %v", err)
	}
	if uid != 42 {
		t.Fatalf("token bound to wrong user: %d", uid)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	tests := []struct {
		name string
		in   RegisterInput
	}{
		{"short password", RegisterInput{Username: "alice", Email: "a@x.com", Password: "short"}},
		{"empty username", RegisterInput{Username: "  ", Email: "a@x.com", Password: "pw123456"}},
		{"empty email", RegisterInput{Username: "alice", Email: "", Password: "pw123456"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := &mockUsers{createFn: func(string, string, string) (models.User, error) {
				t.Fatal("Create should not be called for invalid input")
				return models.User{}, nil
			}}
			svc := newTestAuthService(users, newMockSessions())

			_, _, err := svc.Register(context.Background(), tt.in)
			if !errors.Is(err, models.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestAuthService_Login_GenericFailure(t *testing.T) {
	users := &mockUsers{users: map[string]*models.User{
		"alice": {ID: 7, Username: "alice", PasswordHash: hashFor(t, "pw123456")},
	}}
	svc := newTestAuthService(users, newMockSessions())

	// unknown user and wrong password fail with the very same error
	_, _, errUnknown := svc.Login(context.Background(), LoginInput{Username: "ghost", Password: "pw123456"})
	_, _, errWrongPw := svc.Login(context.Background(), LoginInput{Username: "alice", Password: "wrongpw"})

	if !errors.Is(errUnknown, models.ErrUnauthorized) || !errors.Is(errWrongPw, models.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for both, got %v / %v", errUnknown, errWrongPw)
	}
	if errUnknown.Error() != errWrongPw.Error() {
		t.Fatalf("error messages differ: %q vs %q", errUnknown, errWrongPw)
	}
}

func TestAuthService_Login_ByEmail(t *testing.T) {
	alice := &models.User{ID: 7, Username: "alice", Email: "alice@x.com", PasswordHash: hashFor(t, "pw123456")}
	users := &mockUsers{users: map[string]*models.User{"alice": alice, "alice@x.com": alice}}
	svc := newTestAuthService(users, newMockSessions())

	user, token, err := svc.Login(context.Background(), LoginInput{Username: "alice@x.com", Password: "pw123456"})
	if err != nil {
		t.Fatalf("login by email failed: %v", err)
	}
	if user.ID != 7 || token == "" {
		t.Fatalf("unexpected result: %+v, token=%q", user, token)
	}
}

func TestAuthService_Logout_InvalidatesServerSide(t *testing.T) {
	alice := &models.User{ID: 7, Username: "alice", PasswordHash: hashFor(t, "pw123456")}
	users := &mockUsers{users: map[string]*models.User{"alice": alice}}
	sessions := newMockSessions()
	svc := newTestAuthService(users, sessions)

	_, token, err := svc.Login(context.Background(), LoginInput{Username: "alice", Password: "pw123456"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if _, err := svc.ValidateToken(context.Background(), token); err != nil {
		t.Fatalf("token should validate before logout: %v", err)
	}

	if err := svc.Logout(context.Background(), token); err != nil {
		t.Fatalf("logout: %v", err)
	}

	// replaying the very same token must now fail, even though its
	// signature and expiry are still good
	if _, err := svc.ValidateToken(context.Background(), token); !errors.Is(err, models.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized after logout, got %v", err)
	}
}

func TestAuthService_ValidateToken_RejectsGarbage(t *testing.T) {
	svc := newTestAuthService(&mockUsers{}, newMockSessions())

	for _, token := range []string{"", "garbage", "a.b.c"} {
		if _, err := svc.ValidateToken(context.Background(), token); !errors.Is(err, models.ErrUnauthorized) {
			t.Fatalf("token %q: expected ErrUnauthorized, got %v", token, err)
		}
	}
}

func TestAuthService_Profile_OmitsHash(t *testing.T) {
	users := &mockUsers{byID: map[int64]*models.User{
		7: {ID: 7, Username: "alice", Email: "alice@x.com", PasswordHash: "h123"},
	}}
	svc := newTestAuthService(users, newMockSessions())

	profile, err := svc.Profile(context.Background(), 7)
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if profile.PasswordHash != "" {
		t.Fatalf("profile leaked the password hash")
	}
	if profile.Username != "alice" || profile.Email != "alice@x.com" {
		t.Fatalf("unexpected profile: %+v", profile)
	}
}
