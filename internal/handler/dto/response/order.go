package response

import (
	"time"

	"gemstore/internal/usecase/commands"
	"gemstore/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type OrderResponse struct {
	Number      string         `json:"number"`
	UserID      uuid.UUID      `json:"userId"`
	Lines       []LineResponse `json:"lines"`
	TotalCents  int64          `json:"totalCents"`
	State       string         `json:"state"`
	Transaction string         `json:"transaction"`
	CreatedAt   time.Time      `json:"createdAt"`
}

type IntentResponse struct {
	ID         string `json:"id"`
	Status     string `json:"status"`
	ApproveURL string `json:"approveUrl,omitempty"`
}

func FromOrderView(view *queries.OrderView) *OrderResponse {
	var resp OrderResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromOrderViews(views []*queries.OrderView) []*OrderResponse {
	resps := make([]*OrderResponse, len(views))
	for i, v := range views {
		resps[i] = FromOrderView(v)
	}
	return resps
}

func FromIntentResult(result *commands.IntentResult) *IntentResponse {
	return &IntentResponse{
		ID:         result.ID,
		Status:     result.Status,
		ApproveURL: result.ApproveURL,
	}
}
