package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"gemstore/internal/domain/user"
	"gemstore/internal/handler/api"
	"gemstore/internal/handler/middleware"
	"gemstore/internal/pkg/config"
	"gemstore/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	m *metrics.Metrics,
	checkoutHandler *api.CheckoutHandler,
	paymentHandler *api.PaymentHandler,
	orderHandler *api.OrderHandler,
	invoiceHandler *api.InvoiceHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, m, checkoutHandler, paymentHandler, orderHandler, invoiceHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	m *metrics.Metrics,
	checkoutHandler *api.CheckoutHandler,
	paymentHandler *api.PaymentHandler,
	orderHandler *api.OrderHandler,
	invoiceHandler *api.InvoiceHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(m.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		checkouts := apiGroup.Group("/checkouts")
		{
			addRoutes(checkouts, []route{
				{Method: http.MethodPost, Path: "", Handler: checkoutHandler.CreateCheckout},
				{Method: http.MethodGet, Path: "", Handler: checkoutHandler.ListCheckouts,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleOperator)}},
				{Method: http.MethodGet, Path: "/:number", Handler: checkoutHandler.GetCheckout},
			})
		}

		payments := apiGroup.Group("/payments")
		{
			addRoutes(payments, []route{
				{Method: http.MethodPost, Path: "/intent", Handler: paymentHandler.CreateIntent},
				{Method: http.MethodPost, Path: "/capture", Handler: paymentHandler.CaptureIntent},
			})
		}

		orders := apiGroup.Group("/orders")
		{
			addRoutes(orders, []route{
				{Method: http.MethodGet, Path: "", Handler: orderHandler.ListOrders,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleOperator)}},
				{Method: http.MethodGet, Path: "/mine", Handler: orderHandler.ListMyOrders},
				{Method: http.MethodGet, Path: "/transaction/:id", Handler: orderHandler.GetOrderByTransaction,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleOperator)}},
				{Method: http.MethodGet, Path: "/:number", Handler: orderHandler.GetOrder},
				{Method: http.MethodPost, Path: "/:number/cancel", Handler: orderHandler.CancelOrder},
			})
		}

		invoices := apiGroup.Group("/invoices")
		{
			addRoutes(invoices, []route{
				{Method: http.MethodGet, Path: "/order/:orderNumber", Handler: invoiceHandler.GetInvoiceByOrder},
				{Method: http.MethodGet, Path: "/order/:orderNumber/pdf", Handler: invoiceHandler.GetInvoicePDFByOrder},
				{Method: http.MethodGet, Path: "/:number", Handler: invoiceHandler.GetInvoice},
				{Method: http.MethodGet, Path: "/:number/pdf", Handler: invoiceHandler.GetInvoicePDF},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
