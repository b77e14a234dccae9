package request

type CreateIntentRequest struct {
	CheckoutNumber string `json:"checkout_number" binding:"required"`
}

type CaptureIntentRequest struct {
	IntentID       string `json:"intent_id" binding:"required"`
	CheckoutNumber string `json:"checkout_number" binding:"required"`
}
