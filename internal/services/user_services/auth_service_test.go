// File: internal/services/user_services/auth_service_test.go
package user_services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/chadhq/chad-backend/internal/domain"
	"github.com/chadhq/chad-backend/internal/services"
	"github.com/chadhq/chad-backend/internal/services/user_services"
)

// fakeUserRepo is an in-memory UserRepository that records how it is used.
type fakeUserRepo struct {
	users  map[string]*domain.User
	nextID uint
	calls  int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*domain.User{}, nextID: 1}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	f.calls++
	u.ID = f.nextID
	f.nextID++
	f.users[u.Email] = u
	return u, nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	f.calls++
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, errors.New("user not found")
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	f.calls++
	if u, ok := f.users[email]; ok {
		return u, nil
	}
	return nil, errors.New("user not found")
}

func (f *fakeUserRepo) Update(ctx context.Context, u *domain.User) error { f.calls++; return nil }
func (f *fakeUserRepo) Delete(ctx context.Context, id uint) error       { f.calls++; return nil }

// fakeProfileRepo records every profile written through it.
type fakeProfileRepo struct {
	written []*domain.Profile
	err     error
}

func (f *fakeProfileRepo) Write(ctx context.Context, p *domain.Profile) error {
	if f.err != nil {
		return f.err
	}
	f.written = append(f.written, p)
	return nil
}

func newTestAuthService() (*user_services.AuthService, *fakeUserRepo, *fakeProfileRepo) {
	users := newFakeUserRepo()
	profiles := &fakeProfileRepo{}
	svc := user_services.NewAuthService(users, profiles, "test-secret", &services.NoOpLogger{})
	return svc, users, profiles
}

func TestSignUpCreatesAccountAndWritesProfileOnce(t *testing.T) {
	svc, _, profiles := newTestAuthService()

	u, token, err := svc.SignUp(context.Background(), "Ada", "ada@example.com", "password123", "password123", "female")
	if err != nil {
		t.Fatalf("SignUp err: %v", err)
	}
	if u.ID == 0 {
		t.Fatal("expected a persisted user id")
	}
	if token == "" {
		t.Fatal("expected a token")
	}

	if len(profiles.written) != 1 {
		t.Fatalf("expected exactly one profile write, got %d", len(profiles.written))
	}
	p := profiles.written[0]
	if p.UserID != u.ID || p.Name != "Ada" || p.Gender != "female" {
		t.Fatalf("unexpected profile: %+v", p)
	}
}

func TestSignUpPasswordMismatchNeverReachesRepositories(t *testing.T) {
	svc, users, profiles := newTestAuthService()

	_, _, err := svc.SignUp(context.Background(), "Ada", "ada@example.com", "password123", "different", "female")
	if !errors.Is(err, user_services.ErrPasswordMismatch) {
		t.Fatalf("expected ErrPasswordMismatch, got %v", err)
	}
	if users.calls != 0 {
		t.Fatalf("user repository was called %d times", users.calls)
	}
	if len(profiles.written) != 0 {
		t.Fatal("profile was written despite the mismatch")
	}
}

func TestSignUpValidatesInputLocally(t *testing.T) {
	svc, users, _ := newTestAuthService()

	cases := []struct {
		name     string
		userName string
		email    string
		password string
	}{
		{"missing name", "", "ada@example.com", "password123"},
		{"bad email", "Ada", "not-an-email", "password123"},
		{"short password", "Ada", "ada@example.com", "short"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			before := users.calls
			_, _, err := svc.SignUp(context.Background(), tc.userName, tc.email, tc.password, tc.password, "")
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if users.calls != before {
				t.Fatal("validation failure reached the repository")
			}
		})
	}
}

func TestSignUpDuplicateEmailIsGenericFailure(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	if _, _, err := svc.SignUp(ctx, "Ada", "ada@example.com", "password123", "password123", ""); err != nil {
		t.Fatalf("first SignUp err: %v", err)
	}
	_, _, err := svc.SignUp(ctx, "Eve", "ada@example.com", "password456", "password456", "")
	if !errors.Is(err, user_services.ErrAuthFailed) {
		t.Fatalf("expected ErrAuthFailed, got %v", err)
	}
}

func TestSignInRoundTrip(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	created, _, err := svc.SignUp(ctx, "Ada", "ada@example.com", "password123", "password123", "")
	if err != nil {
		t.Fatalf("SignUp err: %v", err)
	}

	u, token, err := svc.SignIn(ctx, "ada@example.com", "password123")
	if err != nil {
		t.Fatalf("SignIn err: %v", err)
	}
	if u.ID != created.ID {
		t.Fatalf("signed in as %d, want %d", u.ID, created.ID)
	}

	userID, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken err: %v", err)
	}
	if userID != created.ID {
		t.Fatalf("token names user %d, want %d", userID, created.ID)
	}
}

func TestSignInFailuresAreGeneric(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	if _, _, err := svc.SignUp(ctx, "Ada", "ada@example.com", "password123", "password123", ""); err != nil {
		t.Fatalf("SignUp err: %v", err)
	}

	cases := []struct {
		name     string
		email    string
		password string
	}{
		{"unknown email", "nobody@example.com", "password123"},
		{"wrong password", "ada@example.com", "wrong-password"},
		{"empty credentials", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := svc.SignIn(ctx, tc.email, tc.password)
			if !errors.Is(err, user_services.ErrAuthFailed) {
				t.Fatalf("expected ErrAuthFailed, got %v", err)
			}
		})
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc, _, _ := newTestAuthService()

	for _, token := range []string{"", "not.a.jwt", "aaaa.bbbb.cccc"} {
		if _, err := svc.ValidateToken(token); err == nil {
			t.Fatalf("expected error for token %q", token)
		}
	}
}
