package api

import (
	"errors"
	"fmt"
	"net/http"

	resdto "gemstore/internal/handler/dto/response"
	"gemstore/internal/handler/httperr"
	"gemstore/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type InvoiceHandler struct {
	invoiceQueries queries.InvoiceQueries
}

func NewInvoiceHandler(invoiceQueries queries.InvoiceQueries) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceQueries: invoiceQueries,
	}
}

// @Summary Get invoice
// @Description Get an invoice by its invoice number
// @Tags invoices
// @Produce json
// @Security BearerAuth
// @Param number path string true "Invoice number"
// @Success 200 {object} resdto.InvoiceResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /invoices/{number} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	view, err := h.invoiceQueries.GetByNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		h.writeInvoiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromInvoiceView(view))
}

// @Summary Get invoice by order
// @Description Get the invoice belonging to an order
// @Tags invoices
// @Produce json
// @Security BearerAuth
// @Param orderNumber path string true "Order number"
// @Success 200 {object} resdto.InvoiceResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /invoices/order/{orderNumber} [get]
func (h *InvoiceHandler) GetInvoiceByOrder(c *gin.Context) {
	view, err := h.invoiceQueries.GetByOrderNumber(c.Request.Context(), c.Param("orderNumber"))
	if err != nil {
		h.writeInvoiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromInvoiceView(view))
}

// @Summary Download invoice PDF
// @Description Render an invoice as a PDF document
// @Tags invoices
// @Produce application/pdf
// @Security BearerAuth
// @Param number path string true "Invoice number"
// @Success 200 {file} binary
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /invoices/{number}/pdf [get]
func (h *InvoiceHandler) GetInvoicePDF(c *gin.Context) {
	num := c.Param("number")
	data, err := h.invoiceQueries.RenderByNumber(c.Request.Context(), num)
	if err != nil {
		h.writeInvoiceError(c, err)
		return
	}

	h.writePDF(c, num, data)
}

// @Summary Download invoice PDF by order
// @Description Render the invoice belonging to an order as a PDF document
// @Tags invoices
// @Produce application/pdf
// @Security BearerAuth
// @Param orderNumber path string true "Order number"
// @Success 200 {file} binary
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /invoices/order/{orderNumber}/pdf [get]
func (h *InvoiceHandler) GetInvoicePDFByOrder(c *gin.Context) {
	num, data, err := h.invoiceQueries.RenderByOrderNumber(c.Request.Context(), c.Param("orderNumber"))
	if err != nil {
		h.writeInvoiceError(c, err)
		return
	}

	h.writePDF(c, num, data)
}

func (h *InvoiceHandler) writePDF(c *gin.Context, invoiceNumber string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.pdf"`, invoiceNumber))
	c.Data(http.StatusOK, "application/pdf", data)
}

func (h *InvoiceHandler) writeInvoiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queries.ErrNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Invoice not found")
	case errors.Is(err, queries.ErrRenderFailure):
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render invoice")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
	}
}
