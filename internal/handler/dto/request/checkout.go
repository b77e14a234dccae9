package request

import (
	"gemstore/internal/usecase/commands"
)

type CheckoutLine struct {
	ItemNumber string `json:"item_number" binding:"required"`
	Quantity   int32  `json:"quantity" binding:"required,gt=0"`
}

type CreateCheckoutRequest struct {
	Lines []CheckoutLine `json:"lines" binding:"required,min=1,dive"`
}

func (r CreateCheckoutRequest) ToInputs() []commands.CheckoutLineInput {
	inputs := make([]commands.CheckoutLineInput, len(r.Lines))
	for i, l := range r.Lines {
		inputs[i] = commands.CheckoutLineInput{
			ItemNumber: l.ItemNumber,
			Quantity:   l.Quantity,
		}
	}
	return inputs
}
