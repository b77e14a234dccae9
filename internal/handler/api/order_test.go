//go:build unit

package api_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"gemstore/internal/domain/user"
	"gemstore/internal/handler/api"
	resdto "gemstore/internal/handler/dto/response"
	"gemstore/internal/pkg/errs"
	"gemstore/internal/usecase/commands"
	"gemstore/internal/usecase/queries"
	"gemstore/internal/usecase/shared"
	"gemstore/tests/common/builder"
	"gemstore/tests/common/httptest"
	commandsmock "gemstore/tests/mock/commands"
	queriesmock "gemstore/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockOrderCommands
	mockQueries  *queriesmock.MockOrderQueries
	handler      *api.OrderHandler
	userID       uuid.UUID
	role         user.Role
}

func (s *OrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockOrderCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockOrderQueries(s.mockCtrl)
	s.handler = api.NewOrderHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()
	s.role = user.RoleCustomer

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", s.role)
		c.Next()
	}

	s.router.GET("/orders", authMiddleware, s.handler.ListOrders)
	s.router.GET("/orders/mine", authMiddleware, s.handler.ListMyOrders)
	s.router.GET("/orders/:number", authMiddleware, s.handler.GetOrder)
	s.router.GET("/orders/transaction/:id", authMiddleware, s.handler.GetOrderByTransaction)
	s.router.POST("/orders/:number/cancel", authMiddleware, s.handler.CancelOrder)
}

func (s *OrderHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

func (s *OrderHandlerTestSuite) TestListOrders() {
	s.Run("success: operator lists all orders", func() {
		s.role = user.RoleOperator
		views := []*queries.OrderView{
			builder.NewOrderBuilder().BuildView(),
			builder.NewOrderBuilder().WithNumber("104-552-890-331").BuildView(),
		}
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, actor shared.Actor, page queries.Page) ([]*queries.OrderView, error) {
				s.Equal(user.RoleOperator, actor.Role)
				s.Equal(1, page.Number)
				s.Equal(20, page.Size)
				return views, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders?page=1&size=20", nil, "bearer-token")

		var body []resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
		s.Equal("104-552-890-331", body[1].Number)
	})

	s.Run("error: 403 Forbidden for customers", func() {
		s.role = user.RoleCustomer
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, queries.ErrForbidden)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *OrderHandlerTestSuite) TestListMyOrders() {
	s.Run("success: returns only the caller's orders", func() {
		views := []*queries.OrderView{builder.NewOrderBuilder().WithUserID(s.userID).BuildView()}
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID, gomock.Any()).
			Return(views, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/mine", nil, "bearer-token")

		var body []resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
		s.Equal(s.userID, body[0].UserID)
	})

	s.Run("error: 500 records the cause for the error log", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID, gomock.Any()).
			Return(nil, errs.New("connection reset"))

		engine := gin.New()
		var recorded []*gin.Error
		engine.GET("/orders/mine", func(c *gin.Context) {
			c.Set("user_id", s.userID)
			c.Set("user_role", user.RoleCustomer)
			c.Next()
			recorded = c.Errors
		}, s.handler.ListMyOrders)

		rec := httptest.PerformRequest(s.T(), engine, http.MethodGet, "/orders/mine", nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
		s.Require().Len(recorded, 1)
		s.Contains(recorded[0].Err.Error(), "connection reset")
	})

	s.Run("success: empty result is an empty array", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID, gomock.Any()).
			Return([]*queries.OrderView{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/mine", nil, "bearer-token")

		var body []resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body)
	})
}

func (s *OrderHandlerTestSuite) TestGetOrder() {
	number := "736-920-114-582"
	url := "/orders/" + number

	s.Run("success: owner reads own order", func() {
		view := builder.NewOrderBuilder().WithUserID(s.userID).BuildView()
		s.mockQueries.EXPECT().GetByNumber(gomock.Any(), number).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(number, body.Number)
		s.Equal("CAP-7XY1234567890", body.Transaction)
	})

	s.Run("success: operator reads any order", func() {
		s.role = user.RoleOperator
		view := builder.NewOrderBuilder().BuildView()
		s.mockQueries.EXPECT().GetByNumber(gomock.Any(), number).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 403 Forbidden for another customer's order", func() {
		s.role = user.RoleCustomer
		view := builder.NewOrderBuilder().BuildView()
		s.mockQueries.EXPECT().GetByNumber(gomock.Any(), number).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("error: 404 Not Found for unknown number", func() {
		s.mockQueries.EXPECT().GetByNumber(gomock.Any(), number).Return(nil, queries.ErrNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Order not found")
	})
}

func (s *OrderHandlerTestSuite) TestGetOrderByTransaction() {
	transaction := "CAP-7XY1234567890"
	url := "/orders/transaction/" + transaction

	s.Run("success: operator resolves an order from its capture id", func() {
		s.role = user.RoleOperator
		view := builder.NewOrderBuilder().WithTransaction(transaction).BuildView()
		s.mockQueries.EXPECT().GetByTransaction(gomock.Any(), gomock.Any(), transaction).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(transaction, body.Transaction)
	})

	s.Run("error: 403 Forbidden for customers", func() {
		s.role = user.RoleCustomer
		s.mockQueries.EXPECT().GetByTransaction(gomock.Any(), gomock.Any(), transaction).
			Return(nil, queries.ErrForbidden)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("error: 404 Not Found for unknown capture id", func() {
		s.role = user.RoleOperator
		s.mockQueries.EXPECT().GetByTransaction(gomock.Any(), gomock.Any(), transaction).
			Return(nil, queries.ErrNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Order not found")
	})
}

func (s *OrderHandlerTestSuite) TestCancelOrder() {
	number := "736-920-114-582"
	url := fmt.Sprintf("/orders/%s/cancel", number)

	s.Run("success: cancels and refunds", func() {
		s.mockCommands.EXPECT().CancelOrder(gomock.Any(), gomock.Any(), number).
			DoAndReturn(func(_ context.Context, actor shared.Actor, num string) error {
				s.Equal(s.userID, actor.ID)
				return nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Order has been canceled and refunded", body["message"])
	})

	s.Run("error: maps cancellation failures to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "unknown order",
				commandsError:  commands.ErrOrderNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Order not found",
			},
			{
				name:           "not the owner",
				commandsError:  commands.ErrForbidden,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Insufficient permissions",
			},
			{
				name:           "already canceled",
				commandsError:  commands.ErrInvalidState,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "not cancelable",
			},
			{
				name:           "refund failed",
				commandsError:  commands.ErrGatewayFailure,
				expectedStatus: http.StatusBadGateway,
				expectedMsg:    "Refund failed, order left unchanged",
			},
			{
				name:           "internal error",
				commandsError:  errs.New("connection reset"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CancelOrder(gomock.Any(), gomock.Any(), number).
					Return(tc.commandsError)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
