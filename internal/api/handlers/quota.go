package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/sales-tracker/internal/stockx"
)

// QuotaHandler provides the StockX API quota status endpoint.
type QuotaHandler struct {
	rl *stockx.RateLimiter
}

// NewQuotaHandler creates a new QuotaHandler.
func NewQuotaHandler(rl *stockx.RateLimiter) *QuotaHandler {
	return &QuotaHandler{rl: rl}
}

// QuotaOutput is the response body for the quota endpoint.
type QuotaOutput struct {
	Body struct {
		DailyLimit int64     `json:"daily_limit" example:"25000"                doc:"Configured daily API call limit"`
		DailyUsed  int64     `json:"daily_used"  example:"142"                  doc:"API calls made in the current UTC day"`
		Remaining  int64     `json:"remaining"   example:"24858"                doc:"API calls remaining today"`
		ResetAt    time.Time `json:"reset_at"    example:"2025-06-16T00:00:00Z" doc:"Next UTC midnight, when the count resets"`
	}
}

// GetQuota returns the current StockX API quota status.
func (h *QuotaHandler) GetQuota(_ context.Context, _ *struct{}) (*QuotaOutput, error) {
	resp := &QuotaOutput{}
	if h.rl == nil {
		return resp, nil
	}

	resp.Body.DailyLimit = h.rl.MaxDaily()
	resp.Body.DailyUsed = h.rl.DailyCount()
	resp.Body.Remaining = h.rl.Remaining()
	resp.Body.ResetAt = h.rl.ResetAt()

	return resp, nil
}

// RegisterQuotaRoutes registers the quota endpoint with the Huma API.
func RegisterQuotaRoutes(api huma.API, h *QuotaHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-quota",
		Method:      http.MethodGet,
		Path:        "/api/v1/quota",
		Summary:     "Get StockX API quota status",
		Description: "Returns today's API call usage, remaining quota, and the UTC reset time.",
		Tags:        []string{"stockx"},
	}, h.GetQuota)
}
