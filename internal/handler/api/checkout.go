package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "gemstore/internal/handler/dto/request"
	resdto "gemstore/internal/handler/dto/response"
	"gemstore/internal/handler/httperr"
	"gemstore/internal/handler/middleware"
	"gemstore/internal/usecase/commands"
	"gemstore/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	checkoutCommands commands.CheckoutCommands
	checkoutQueries  queries.CheckoutQueries
}

func NewCheckoutHandler(checkoutCommands commands.CheckoutCommands, checkoutQueries queries.CheckoutQueries) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutCommands: checkoutCommands,
		checkoutQueries:  checkoutQueries,
	}
}

// @Summary Create checkout
// @Description Price the given items and freeze them as a checkout snapshot
// @Tags checkouts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCheckoutRequest true "Checkout lines"
// @Success 201 {object} resdto.CheckoutResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /checkouts [post]
func (h *CheckoutHandler) CreateCheckout(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error")
		return
	}

	var req reqdto.CreateCheckoutRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	view, err := h.checkoutCommands.CreateCheckout(c.Request.Context(), userID, req.ToInputs())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrEmptyCheckout), errors.Is(err, commands.ErrInvalidQuantity):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid checkout lines")
		case errors.Is(err, commands.ErrItemNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Item not found")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCheckoutView(view))
}

// @Summary Get checkout
// @Description Get a checkout snapshot by its sales number
// @Tags checkouts
// @Produce json
// @Security BearerAuth
// @Param number path string true "Checkout number"
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /checkouts/{number} [get]
func (h *CheckoutHandler) GetCheckout(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error")
		return
	}

	view, err := h.checkoutQueries.GetByNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Checkout not found")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	if view.UserID != actor.ID && !actor.CanViewAllSales() {
		httperr.AbortWithError(c, http.StatusForbidden, nil, "Insufficient permissions")
		return
	}

	c.JSON(http.StatusOK, resdto.FromCheckoutView(view))
}

// @Summary List checkouts
// @Description List all checkout snapshots, newest first
// @Tags checkouts
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (0-based)"
// @Param size query int false "Page size"
// @Success 200 {array} resdto.CheckoutResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /checkouts [get]
func (h *CheckoutHandler) ListCheckouts(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error")
		return
	}

	views, err := h.checkoutQueries.List(c.Request.Context(), actor, pageFromQuery(c))
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrForbidden):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Insufficient permissions")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCheckoutViews(views))
}

func pageFromQuery(c *gin.Context) queries.Page {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "50"))
	return queries.Page{Number: page, Size: size}
}
