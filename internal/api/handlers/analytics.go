package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	domain "github.com/donaldgifford/sales-tracker/pkg/types"
)

// MonthlySummarizer computes monthly StockX sales summaries.
type MonthlySummarizer interface {
	SummarizeMonth(ctx context.Context, yearMonth string) ([]domain.MonthlySummary, error)
	CurrentMonth() string
}

// AnalyticsHandler serves sales analytics.
type AnalyticsHandler struct {
	summarizer MonthlySummarizer
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(s MonthlySummarizer) *AnalyticsHandler {
	return &AnalyticsHandler{summarizer: s}
}

// MonthlySalesInput selects the month to summarize.
type MonthlySalesInput struct {
	Month string `query:"month" doc:"Month to summarize (YYYY-MM); defaults to the current month" example:"2025-01"`
}

// MonthlySalesOutput is the response body for the monthly sales endpoint.
type MonthlySalesOutput struct {
	Body []domain.MonthlySummary
}

// MonthlySales returns the order count and revenue for one month.
func (h *AnalyticsHandler) MonthlySales(ctx context.Context, input *MonthlySalesInput) (*MonthlySalesOutput, error) {
	month := input.Month
	if month == "" {
		month = h.summarizer.CurrentMonth()
	}

	summaries, err := h.summarizer.SummarizeMonth(ctx, month)
	if err != nil {
		return nil, stockxError("summarizing "+month, err)
	}

	if summaries == nil {
		summaries = []domain.MonthlySummary{}
	}
	return &MonthlySalesOutput{Body: summaries}, nil
}

// RegisterAnalyticsRoutes registers analytics endpoints with the Huma API.
func RegisterAnalyticsRoutes(api huma.API, h *AnalyticsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "monthly-sales",
		Method:      http.MethodGet,
		Path:        "/api/analytics/monthly-sales",
		Summary:     "Get monthly StockX sales",
		Description: "Counts the month's orders and sums their total payout.",
		Tags:        []string{"analytics"},
		Errors: []int{
			http.StatusUnauthorized,
			http.StatusUnprocessableEntity,
			http.StatusTooManyRequests,
			http.StatusBadGateway,
		},
	}, h.MonthlySales)
}
