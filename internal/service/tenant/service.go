package tenant

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"zeneva/internal/domain"
	tenantrepo "zeneva/internal/repository/tenant"
)

const defaultTrialDays = 14

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Service manages business accounts: registration, storefront slug
// lookup, and trial/plan bookkeeping.
type Service struct {
	repo tenantrepo.Repository
	now  func() time.Time
}

func New(repo tenantrepo.Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

type RegisterInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Slug  string `json:"slug"`
}

// Register creates a tenant on the trial plan.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*domain.Tenant, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, errors.New("name required")
	}
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" {
		return nil, errors.New("email required")
	}
	slug := Slugify(in.Slug)
	if slug == "" {
		slug = Slugify(name)
	}
	if slug == "" {
		return nil, errors.New("slug required")
	}

	trialEnd := s.now().AddDate(0, 0, defaultTrialDays)
	return s.repo.Create(ctx, &domain.Tenant{
		Slug:        slug,
		Name:        name,
		Email:       email,
		Plan:        domain.PlanTrial,
		TrialEndsAt: &trialEnd,
	})
}

func (s *Service) GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	return s.repo.GetBySlug(ctx, Slugify(slug))
}

// ExtendTrial pushes the trial end out by days. An expired trial
// extends from now, a running one from its current end, so granting
// "7 more days" always means seven usable days.
func (s *Service) ExtendTrial(ctx context.Context, tenantID string, days int) (*domain.Tenant, error) {
	if days <= 0 {
		return nil, errors.New("days must be positive")
	}
	t, err := s.repo.GetByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	base := s.now()
	if t.TrialEndsAt != nil && t.TrialEndsAt.After(base) {
		base = *t.TrialEndsAt
	}
	newEnd := base.AddDate(0, 0, days)
	if err := s.repo.SetTrialEndsAt(ctx, tenantID, newEnd); err != nil {
		return nil, err
	}
	t.TrialEndsAt = &newEnd
	return t, nil
}

// ChangePlan switches the tenant's plan.
func (s *Service) ChangePlan(ctx context.Context, tenantID, plan string) error {
	switch plan {
	case domain.PlanTrial, domain.PlanStarter, domain.PlanGrowth:
	default:
		return errors.New("unknown plan")
	}
	return s.repo.SetPlan(ctx, tenantID, plan)
}

// Slugify lowercases and collapses everything non-alphanumeric into
// single dashes.
func Slugify(s string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), "-")
	return strings.Trim(slug, "-")
}
