//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"gemstore/internal/domain/user"
	"gemstore/internal/handler/api"
	reqdto "gemstore/internal/handler/dto/request"
	resdto "gemstore/internal/handler/dto/response"
	"gemstore/internal/pkg/errs"
	"gemstore/internal/usecase/commands"
	"gemstore/internal/usecase/queries"
	"gemstore/tests/common/builder"
	"gemstore/tests/common/httptest"
	"gemstore/tests/common/testutil"
	commandsmock "gemstore/tests/mock/commands"
	queriesmock "gemstore/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckoutHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCheckoutCommands
	mockQueries  *queriesmock.MockCheckoutQueries
	handler      *api.CheckoutHandler
	userID       uuid.UUID
	role         user.Role
}

func (s *CheckoutHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCheckoutCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCheckoutQueries(s.mockCtrl)
	s.handler = api.NewCheckoutHandler(s.mockCommands, s.mockQueries)
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

	s.router.POST("/checkouts", authMiddleware, s.handler.CreateCheckout)
	s.router.GET("/checkouts/:number", authMiddleware, s.handler.GetCheckout)
	s.router.GET("/checkouts", authMiddleware, s.handler.ListCheckouts)
}

func (s *CheckoutHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckoutHandlerSuite(t *testing.T) {
	suite.Run(t, new(CheckoutHandlerTestSuite))
}

func (s *CheckoutHandlerTestSuite) TestCreateCheckout() {
	url := "/checkouts"
	reqBody := builder.NewCheckoutBuilder().BuildDTO()

	s.Run("success: returns 201 with the priced snapshot", func() {
		view := builder.NewCheckoutBuilder().WithUserID(s.userID).BuildView()
		s.mockCommands.EXPECT().CreateCheckout(gomock.Any(), s.userID, gomock.Len(2)).
			Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.CheckoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(view.Number, body.Number)
		s.Equal(view.TotalCents, body.TotalCents)
		s.False(body.Settled)
		s.Len(body.Lines, 2)
	})

	s.Run("error: 400 Bad Request when lines are missing", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("lines", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 400 Bad Request when quantity is zero", func() {
		badBody := reqdto.CreateCheckoutRequest{
			Lines: []reqdto.CheckoutLine{{ItemNumber: "GEM-0001", Quantity: 0}},
		}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, badBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 400 Bad Request when the cart is rejected downstream", func() {
		s.mockCommands.EXPECT().CreateCheckout(gomock.Any(), s.userID, gomock.Any()).
			Return(nil, commands.ErrEmptyCheckout)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid checkout lines")
	})

	s.Run("error: 404 Not Found for an unknown item", func() {
		s.mockCommands.EXPECT().CreateCheckout(gomock.Any(), s.userID, gomock.Any()).
			Return(nil, errs.Mark(errs.New("item not found: GEM-9999"), commands.ErrItemNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Item not found")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *CheckoutHandlerTestSuite) TestGetCheckout() {
	number := "482-019-337-204"
	url := "/checkouts/" + number

	s.Run("success: owner reads own checkout", func() {
		view := builder.NewCheckoutBuilder().WithUserID(s.userID).BuildView()
		s.mockQueries.EXPECT().GetByNumber(gomock.Any(), number).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body resdto.CheckoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(number, body.Number)
		s.Equal(s.userID, body.UserID)
	})

	s.Run("success: operator reads any checkout", func() {
		s.role = user.RoleOperator
		view := builder.NewCheckoutBuilder().BuildView()
		s.mockQueries.EXPECT().GetByNumber(gomock.Any(), number).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 403 Forbidden for another customer's checkout", func() {
		s.role = user.RoleCustomer
		view := builder.NewCheckoutBuilder().BuildView()
		s.mockQueries.EXPECT().GetByNumber(gomock.Any(), number).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("error: 404 Not Found for unknown number", func() {
		s.mockQueries.EXPECT().GetByNumber(gomock.Any(), number).Return(nil, queries.ErrNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Checkout not found")
	})
}

func (s *CheckoutHandlerTestSuite) TestListCheckouts() {
	s.Run("success: operator lists all checkouts", func() {
		s.role = user.RoleOperator
		views := []*queries.CheckoutView{
			builder.NewCheckoutBuilder().BuildView(),
			builder.NewCheckoutBuilder().WithNumber("650-118-442-907").AsSettled().BuildView(),
		}
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).Return(views, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/checkouts", nil, "bearer-token")

		var body []resdto.CheckoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
		s.True(body[1].Settled)
	})

	s.Run("error: 403 Forbidden for customers", func() {
		s.role = user.RoleCustomer
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, queries.ErrForbidden)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/checkouts", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})
}
