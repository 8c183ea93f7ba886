package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/z1f7/832301306-contacts-backend/internal/apperror"
	"github.com/z1f7/832301306-contacts-backend/internal/auth"
	"github.com/z1f7/832301306-contacts-backend/internal/model"
)

// =========================================================================
// FAKES AND HELPERS
// =========================================================================

// fakeUserRepo is an in-memory implementation of repository.UserRepository.
// A fake (not a mock framework) keeps tests dependency-free and readable —
// you can see exactly what it does.
type fakeUserRepo struct {
	byUsername map[string]*model.User
	nextID     int64
	// set to a non-nil error to simulate a database failure
	createErr error
	findErr   error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byUsername: make(map[string]*model.User),
		nextID:     1,
	}
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, user *model.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, taken := f.byUsername[user.Username]; taken {
		return apperror.Conflict("Username already exists")
	}
	user.ID = f.nextID
	f.nextID++
	copied := *user
	f.byUsername[user.Username] = &copied
	return nil
}

func (f *fakeUserRepo) FindByCredentials(ctx context.Context, username, passwordDigest string) (*model.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	u, ok := f.byUsername[username]
	if !ok || u.PasswordDigest != passwordDigest {
		return nil, apperror.InvalidCredentials()
	}
	return u, nil
}

// testLogger discards everything below error level so test output stays
// readable.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestAuthService(repo *fakeUserRepo) *AuthService {
	return NewAuthService(repo, auth.NewPasswordHasher(), testLogger())
}

// =========================================================================
// REGISTER TESTS
// =========================================================================

func TestRegister(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)

	user, err := svc.Register(context.Background(), "alice", "pw1")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if user.ID == 0 {
		t.Error("Register() did not assign an id")
	}
	if user.Username != "alice" {
		t.Errorf("Username = %q, want %q", user.Username, "alice")
	}
}

func TestRegister_StoresDigestNotPlaintext(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)

	if _, err := svc.Register(context.Background(), "alice", "pw1"); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	stored := repo.byUsername["alice"]
	if stored.PasswordDigest == "pw1" {
		t.Error("plaintext password was stored")
	}
	if len(stored.PasswordDigest) != 64 {
		t.Errorf("digest length = %d, want 64 (SHA-256 hex)", len(stored.PasswordDigest))
	}
}

func TestRegister_MissingFields(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)

	for _, tt := range []struct {
		name               string
		username, password string
	}{
		{"empty username", "", "pw1"},
		{"empty password", "alice", ""},
		{"both empty", "", ""},
	} {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.username, tt.password)
			if !errors.Is(err, apperror.ErrMissingField) {
				t.Errorf("Register() error = %v, want ErrMissingField", err)
			}
		})
	}

	if len(repo.byUsername) != 0 {
		t.Error("no user should be created when a field is missing")
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)

	if _, err := svc.Register(context.Background(), "alice", "pw1"); err != nil {
		t.Fatalf("first Register() error = %v", err)
	}

	_, err := svc.Register(context.Background(), "alice", "different-pw")
	if !errors.Is(err, apperror.ErrConflict) {
		t.Errorf("second Register() error = %v, want ErrConflict", err)
	}
}

func TestRegister_RepositoryError(t *testing.T) {
	repo := newFakeUserRepo()
	repo.createErr = errors.New("disk full")
	svc := newTestAuthService(repo)

	_, err := svc.Register(context.Background(), "alice", "pw1")
	if err == nil {
		t.Fatal("Register() should propagate repository errors")
	}
}

// =========================================================================
// LOGIN TESTS
// =========================================================================

func TestLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)

	registered, err := svc.Register(context.Background(), "alice", "pw1")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	user, err := svc.Login(context.Background(), "alice", "pw1")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if user.ID != registered.ID {
		t.Errorf("Login() id = %d, want %d", user.ID, registered.ID)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)

	if _, err := svc.Register(context.Background(), "alice", "pw1"); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	_, err := svc.Login(context.Background(), "alice", "wrong")
	if !errors.Is(err, apperror.ErrInvalidCredentials) {
		t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
	}
}

func TestLogin_UnknownUserLooksLikeWrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)

	if _, err := svc.Register(context.Background(), "alice", "pw1"); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	_, unknownErr := svc.Login(context.Background(), "nobody", "pw1")
	_, wrongPwErr := svc.Login(context.Background(), "alice", "wrong")

	// Both failures must collapse into the same category AND the same
	// message — no probing which usernames exist.
	if !errors.Is(unknownErr, apperror.ErrInvalidCredentials) {
		t.Errorf("unknown-user error = %v, want ErrInvalidCredentials", unknownErr)
	}
	if !errors.Is(wrongPwErr, apperror.ErrInvalidCredentials) {
		t.Errorf("wrong-password error = %v, want ErrInvalidCredentials", wrongPwErr)
	}

	var a, b *apperror.AppError
	if errors.As(unknownErr, &a) && errors.As(wrongPwErr, &b) && a.Message != b.Message {
		t.Errorf("messages differ: %q vs %q", a.Message, b.Message)
	}
}

func TestLogin_MissingFields(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)

	if _, err := svc.Login(context.Background(), "", "pw1"); !errors.Is(err, apperror.ErrMissingField) {
		t.Errorf("Login() with empty username error = %v, want ErrMissingField", err)
	}
	if _, err := svc.Login(context.Background(), "alice", ""); !errors.Is(err, apperror.ErrMissingField) {
		t.Errorf("Login() with empty password error = %v, want ErrMissingField", err)
	}
}
