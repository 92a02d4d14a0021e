package insights

import (
	"context"
	"fmt"
	"strings"
	"time"

	expenserepo "zeneva/internal/repository/expense"
	receiptrepo "zeneva/internal/repository/receipt"
)

const systemPrompt = "You are a retail business advisor for small shops. " +
	"Given a sales and expense summary, point out what is going well, what " +
	"looks risky, and two or three concrete next steps. Keep it under 200 words."

type generator interface {
	Generate(ctx context.Context, system, prompt string) (string, error)
}

type receiptRepo interface {
	SummaryBetween(ctx context.Context, tenantID string, from, to time.Time) (*receiptrepo.Summary, error)
}

type expenseRepo interface {
	TotalsByCategory(ctx context.Context, tenantID string, from, to time.Time) ([]expenserepo.CategoryTotal, error)
}

// Service assembles a period summary for a tenant and asks the model
// for advice on it.
type Service struct {
	client   generator
	receipts receiptRepo
	expenses expenseRepo
}

func New(client generator, receipts receiptRepo, expenses expenseRepo) *Service {
	return &Service{client: client, receipts: receipts, expenses: expenses}
}

// BusinessInsight generates advice for the trailing period.
func (s *Service) BusinessInsight(ctx context.Context, tenantID, tenantName string, days int) (string, error) {
	if days <= 0 {
		days = 30
	}
	to := time.Now()
	from := to.AddDate(0, 0, -days)

	sales, err := s.receipts.SummaryBetween(ctx, tenantID, from, to)
	if err != nil {
		return "", err
	}
	spending, err := s.expenses.TotalsByCategory(ctx, tenantID, from, to)
	if err != nil {
		return "", err
	}

	return s.client.Generate(ctx, systemPrompt, buildPrompt(tenantName, days, sales, spending))
}

func buildPrompt(tenantName string, days int, sales *receiptrepo.Summary, spending []expenserepo.CategoryTotal) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Business: %s\nPeriod: last %d days\n\n", tenantName, days)
	fmt.Fprintf(&b, "Sales: %d receipts, gross %s, discounts %s, tax collected %s\n",
		sales.ReceiptCount, money(sales.SubtotalCents), money(sales.DiscountCents), money(sales.TaxCents))

	if len(spending) == 0 {
		b.WriteString("Expenses: none recorded\n")
		return b.String()
	}
	b.WriteString("Expenses by category:\n")
	var total int64
	for _, ct := range spending {
		total += ct.AmountCents
		fmt.Fprintf(&b, "- %s: %s\n", ct.Category, money(ct.AmountCents))
	}
	fmt.Fprintf(&b, "Total expenses: %s\nNet: %s\n", money(total), money(sales.TotalCents-total))
	return b.String()
}

func money(cents int64) string {
	return fmt.Sprintf("%.2f", float64(cents)/100)
}
