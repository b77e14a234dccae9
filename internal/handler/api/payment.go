package api

import (
	"errors"
	"net/http"

	reqdto "gemstore/internal/handler/dto/request"
	resdto "gemstore/internal/handler/dto/response"
	"gemstore/internal/handler/httperr"
	"gemstore/internal/handler/middleware"
	"gemstore/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	paymentCommands commands.PaymentCommands
}

func NewPaymentHandler(paymentCommands commands.PaymentCommands) *PaymentHandler {
	return &PaymentHandler{
		paymentCommands: paymentCommands,
	}
}

// @Summary Create payment intent
// @Description Open a payment intent at the provider for a checkout
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateIntentRequest true "Checkout to pay"
// @Success 201 {object} resdto.IntentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /payments/intent [post]
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error")
		return
	}

	var req reqdto.CreateIntentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	result, err := h.paymentCommands.CreateIntent(c.Request.Context(), actor, req.CheckoutNumber)
	if err != nil {
		h.writePaymentError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromIntentResult(result))
}

// @Summary Capture payment
// @Description Capture an approved payment intent and settle the checkout into an order
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CaptureIntentRequest true "Intent to capture"
// @Success 201 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /payments/capture [post]
func (h *PaymentHandler) CaptureIntent(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error")
		return
	}

	var req reqdto.CaptureIntentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	view, err := h.paymentCommands.CaptureIntent(c.Request.Context(), actor, req.IntentID, req.CheckoutNumber)
	if err != nil {
		h.writePaymentError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromOrderView(view))
}

func (h *PaymentHandler) writePaymentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrCheckoutNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Checkout not found")
	case errors.Is(err, commands.ErrItemNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Item not found")
	case errors.Is(err, commands.ErrForbidden):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Insufficient permissions")
	case errors.Is(err, commands.ErrCheckoutAlreadySettled):
		httperr.AbortWithError(c, http.StatusConflict, err, "Checkout already settled")
	case errors.Is(err, commands.ErrInsufficientStock):
		httperr.AbortWithError(c, http.StatusConflict, err, err.Error())
	case errors.Is(err, commands.ErrGatewayFailure):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Payment provider unavailable")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
	}
}
