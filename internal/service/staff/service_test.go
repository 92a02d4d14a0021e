package staff

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"zeneva/internal/domain"
	tokenrepo "zeneva/internal/repository/token"
)

type stubStaffRepo struct {
	byEmail    *domain.Staff
	byEmailErr error
	byID       *domain.Staff
	byIDErr    error
	created    *domain.Staff
}

func (s *stubStaffRepo) Create(_ context.Context, m *domain.Staff) (*domain.Staff, error) {
	s.created = m
	return m, nil
}

func (s *stubStaffRepo) GetByID(_ context.Context, _, _ string) (*domain.Staff, error) {
	return s.byID, s.byIDErr
}

func (s *stubStaffRepo) GetByEmail(_ context.Context, _, _ string) (*domain.Staff, error) {
	return s.byEmail, s.byEmailErr
}

type memTokenRepo struct {
	tokens map[string]tokenrepo.Token
}

func newMemTokenRepo() *memTokenRepo {
	return &memTokenRepo{tokens: make(map[string]tokenrepo.Token)}
}

func (m *memTokenRepo) Create(_ context.Context, t tokenrepo.Token) error {
	if _, ok := m.tokens[t.Token]; ok {
		return domain.ErrAlreadyExists
	}
	m.tokens[t.Token] = t
	return nil
}

func (m *memTokenRepo) Get(_ context.Context, token string) (*tokenrepo.Token, error) {
	t, ok := m.tokens[token]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &t, nil
}

func (m *memTokenRepo) Delete(_ context.Context, token string) error {
	delete(m.tokens, token)
	return nil
}

func TestSignupValidation(t *testing.T) {
	svc := New(&stubStaffRepo{}, newMemTokenRepo())
	if _, err := svc.Signup(context.Background(), "t1", SignupInput{Password: "longenough"}); err == nil {
		t.Fatal("expected email validation error")
	}
	if _, err := svc.Signup(context.Background(), "t1", SignupInput{Email: "a@b.c", Password: "short"}); err == nil {
		t.Fatal("expected password validation error")
	}
}

func TestSignupHashesPasswordAndDefaultsRole(t *testing.T) {
	repo := &stubStaffRepo{}
	svc := New(repo, newMemTokenRepo())
	_, err := svc.Signup(context.Background(), "t1", SignupInput{Email: "Ada@Example.com", Password: "secretpass", Name: "Ada"})
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if repo.created.Email != "ada@example.com" {
		t.Fatalf("email = %q", repo.created.Email)
	}
	if repo.created.Role != domain.RoleCashier {
		t.Fatalf("role = %q, want cashier default", repo.created.Role)
	}
	if bcrypt.CompareHashAndPassword([]byte(repo.created.PasswordHash), []byte("secretpass")) != nil {
		t.Fatal("stored hash does not match password")
	}
}

func TestLoginAndAuthenticate(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secretpass"), bcrypt.MinCost)
	member := &domain.Staff{ID: "st1", TenantID: "t1", Email: "ada@example.com", PasswordHash: string(hash)}
	repo := &stubStaffRepo{byEmail: member, byID: member}
	svc := New(repo, newMemTokenRepo())

	got, token, err := svc.Login(context.Background(), "t1", "ADA@example.com", "secretpass")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if got.ID != "st1" || token == "" {
		t.Fatalf("unexpected login result %+v token=%q", got, token)
	}

	authed, err := svc.Authenticate(context.Background(), "t1", token)
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if authed.ID != "st1" {
		t.Fatalf("unexpected staff %+v", authed)
	}

	// A token scoped to another tenant must not authenticate.
	if _, err := svc.Authenticate(context.Background(), "t2", token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secretpass"), bcrypt.MinCost)
	repo := &stubStaffRepo{byEmail: &domain.Staff{ID: "st1", PasswordHash: string(hash)}}
	svc := New(repo, newMemTokenRepo())
	if _, _, err := svc.Login(context.Background(), "t1", "a@b.c", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	repo := &stubStaffRepo{byEmailErr: domain.ErrNotFound}
	svc := New(repo, newMemTokenRepo())
	if _, _, err := svc.Login(context.Background(), "t1", "a@b.c", "x"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthenticateExpiredToken(t *testing.T) {
	tokens := newMemTokenRepo()
	tokens.tokens["tok"] = tokenrepo.Token{
		Token:     "tok",
		TenantID:  "t1",
		StaffID:   "st1",
		Kind:      "access",
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	svc := New(&stubStaffRepo{byID: &domain.Staff{ID: "st1"}}, tokens)
	if _, err := svc.Authenticate(context.Background(), "t1", "tok"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
	if _, ok := tokens.tokens["tok"]; ok {
		t.Fatal("expired token should be deleted")
	}
}
