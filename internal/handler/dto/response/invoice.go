package response

import (
	"time"

	"gemstore/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type AddressResponse struct {
	Name       string `json:"name"`
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

type InvoiceResponse struct {
	Number               string          `json:"number"`
	IssueDate            time.Time       `json:"issueDate"`
	OrderDate            time.Time       `json:"orderDate"`
	OrderNumber          string          `json:"orderNumber"`
	BillingAddress       AddressResponse `json:"billingAddress"`
	ShippingAddress      AddressResponse `json:"shippingAddress"`
	Lines                []LineResponse  `json:"lines"`
	TotalCents           int64           `json:"totalCents"`
	TotalWithoutTaxCents int64           `json:"totalWithoutTaxCents"`
	Tax                  string          `json:"tax"`
	Payment              string          `json:"payment"`
}

func FromInvoiceView(view *queries.InvoiceView) *InvoiceResponse {
	var resp InvoiceResponse
	_ = copier.Copy(&resp, view)
	return &resp
}
