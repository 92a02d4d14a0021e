package staff

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"zeneva/internal/domain"
	staffrepo "zeneva/internal/repository/staff"
	tokenrepo "zeneva/internal/repository/token"
)

var (
	// ErrInvalidCredentials is returned when email/password do not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken indicates the provided token could not be validated.
	ErrInvalidToken = errors.New("invalid token")
)

// Service handles staff signup/login for a tenant's back office.
type Service struct {
	repo        staffrepo.Repository
	tokens      *tokenManager
	accessTTL   time.Duration
	passwordMin int
}

// New creates a Service with sane defaults.
func New(repo staffrepo.Repository, tokens tokenrepo.Repository) *Service {
	return &Service{
		repo:        repo,
		tokens:      newTokenManager(tokens),
		accessTTL:   48 * time.Hour,
		passwordMin: 8,
	}
}

type SignupInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// Signup registers a staff account within the given tenant.
func (s *Service) Signup(ctx context.Context, tenantID string, in SignupInput) (*domain.Staff, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" {
		return nil, errors.New("email required")
	}
	password := strings.TrimSpace(in.Password)
	if len(password) < s.passwordMin {
		return nil, errors.New("password too short")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := strings.TrimSpace(strings.ToLower(in.Role))
	if role != domain.RoleOwner && role != domain.RoleCashier {
		role = domain.RoleCashier
	}

	return s.repo.Create(ctx, &domain.Staff{
		TenantID:     tenantID,
		Email:        email,
		PasswordHash: string(hashed),
		Name:         strings.TrimSpace(in.Name),
		Role:         role,
	})
}

// Login checks credentials and issues an access token.
func (s *Service) Login(ctx context.Context, tenantID, email, password string) (*domain.Staff, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	member, err := s.repo.GetByEmail(ctx, tenantID, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(ctx, tenantID, member.ID, "access", s.accessTTL)
	if err != nil {
		return nil, "", err
	}
	return member, token, nil
}

// Authenticate resolves an access token to the staff member it belongs
// to, scoped to the tenant on the request path.
func (s *Service) Authenticate(ctx context.Context, tenantID, token string) (*domain.Staff, error) {
	meta, ok := s.tokens.Validate(ctx, token)
	if !ok || meta.TenantID != tenantID {
		return nil, ErrInvalidToken
	}
	member, err := s.repo.GetByID(ctx, tenantID, meta.StaffID)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return member, nil
}

func (s *Service) AccessTTLSeconds() int {
	return int(s.accessTTL.Seconds())
}
