package api

import (
	"errors"
	"net/http"

	resdto "gemstore/internal/handler/dto/response"
	"gemstore/internal/handler/httperr"
	"gemstore/internal/handler/middleware"
	"gemstore/internal/usecase/commands"
	"gemstore/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderCommands commands.OrderCommands
	orderQueries  queries.OrderQueries
}

func NewOrderHandler(orderCommands commands.OrderCommands, orderQueries queries.OrderQueries) *OrderHandler {
	return &OrderHandler{
		orderCommands: orderCommands,
		orderQueries:  orderQueries,
	}
}

// @Summary List orders
// @Description List all orders, newest first
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (0-based)"
// @Param size query int false "Page size"
// @Success 200 {array} resdto.OrderResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error")
		return
	}

	views, err := h.orderQueries.List(c.Request.Context(), actor, pageFromQuery(c))
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrForbidden):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Insufficient permissions")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderViews(views))
}

// @Summary List own orders
// @Description List the authenticated user's orders, newest first
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (0-based)"
// @Param size query int false "Page size"
// @Success 200 {array} resdto.OrderResponse
// @Failure 401 {object} map[string]string
// @Router /orders/mine [get]
func (h *OrderHandler) ListMyOrders(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error")
		return
	}

	views, err := h.orderQueries.ListByUser(c.Request.Context(), userID, pageFromQuery(c))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderViews(views))
}

// @Summary Get order
// @Description Get an order by its sales number
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param number path string true "Order number"
// @Success 200 {object} resdto.OrderResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /orders/{number} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error")
		return
	}

	view, err := h.orderQueries.GetByNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	if view.UserID != actor.ID && !actor.CanViewAllSales() {
		httperr.AbortWithError(c, http.StatusForbidden, nil, "Insufficient permissions")
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}

// @Summary Get order by transaction
// @Description Get an order by its gateway transaction id
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Gateway transaction id"
// @Success 200 {object} resdto.OrderResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /orders/transaction/{id} [get]
func (h *OrderHandler) GetOrderByTransaction(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error")
		return
	}

	view, err := h.orderQueries.GetByTransaction(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrForbidden):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Insufficient permissions")
		case errors.Is(err, queries.ErrNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}

// @Summary Cancel order
// @Description Cancel a waiting order and refund its capture
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param number path string true "Order number"
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /orders/{number}/cancel [post]
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error")
		return
	}

	err := h.orderCommands.CancelOrder(c.Request.Context(), actor, c.Param("number"))
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrOrderNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found")
		case errors.Is(err, commands.ErrForbidden):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Insufficient permissions")
		case errors.Is(err, commands.ErrInvalidState):
			httperr.AbortWithError(c, http.StatusConflict, err, "Order is not cancelable in its current state")
		case errors.Is(err, commands.ErrGatewayFailure):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Refund failed, order left unchanged")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order has been canceled and refunded",
	})
}
