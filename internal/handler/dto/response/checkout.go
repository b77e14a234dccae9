package response

import (
	"time"

	"gemstore/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type LineResponse struct {
	ItemNumber     string `json:"itemNumber"`
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	Quantity       int32  `json:"quantity"`
}

type CheckoutResponse struct {
	Number        string         `json:"number"`
	UserID        uuid.UUID      `json:"userId"`
	Lines         []LineResponse `json:"lines"`
	TotalCents    int64          `json:"totalCents"`
	Settled       bool           `json:"settled"`
	IntentCreated bool           `json:"intentCreated"`
	CreatedAt     time.Time      `json:"createdAt"`
}

func FromCheckoutView(view *queries.CheckoutView) *CheckoutResponse {
	var resp CheckoutResponse
	// field names line up with the view; copier handles the nested lines
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromCheckoutViews(views []*queries.CheckoutView) []*CheckoutResponse {
	resps := make([]*CheckoutResponse, len(views))
	for i, v := range views {
		resps[i] = FromCheckoutView(v)
	}
	return resps
}
