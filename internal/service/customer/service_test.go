package customer

import (
	"context"
	"testing"

	"zeneva/internal/domain"
)

type stubRepo struct {
	last *domain.Customer
}

func (s *stubRepo) Create(_ context.Context, c *domain.Customer) (*domain.Customer, error) {
	s.last = c
	return c, nil
}

func (s *stubRepo) GetByID(_ context.Context, _, _ string) (*domain.Customer, error) {
	return s.last, nil
}

func (s *stubRepo) ListByTenant(_ context.Context, _ string) ([]domain.Customer, error) {
	return nil, nil
}

func (s *stubRepo) Update(_ context.Context, c *domain.Customer) (*domain.Customer, error) {
	s.last = c
	return c, nil
}

func (s *stubRepo) Delete(_ context.Context, _, _ string) error { return nil }

func TestCreateRequiresName(t *testing.T) {
	svc := New(&stubRepo{})
	if _, err := svc.Create(context.Background(), "t1", Input{Name: "   "}); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestCreateNormalizesEmail(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo)
	_, err := svc.Create(context.Background(), "t1", Input{Name: " Ada ", Email: " Ada@Example.COM "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.last.Name != "Ada" || repo.last.Email != "ada@example.com" {
		t.Fatalf("not normalized: %+v", repo.last)
	}
}
