//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"gemstore/internal/domain/user"
	"gemstore/internal/handler/api"
	resdto "gemstore/internal/handler/dto/response"
	"gemstore/internal/pkg/errs"
	"gemstore/internal/usecase/commands"
	"gemstore/tests/common/builder"
	"gemstore/tests/common/httptest"
	"gemstore/tests/common/testutil"
	commandsmock "gemstore/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PaymentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPaymentCommands
	handler      *api.PaymentHandler
	userID       uuid.UUID
	role         user.Role
}

func (s *PaymentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPaymentCommands(s.mockCtrl)
	s.handler = api.NewPaymentHandler(s.mockCommands)
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

	s.router.POST("/payments/intent", authMiddleware, s.handler.CreateIntent)
	s.router.POST("/payments/capture", authMiddleware, s.handler.CaptureIntent)
}

func (s *PaymentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}

func (s *PaymentHandlerTestSuite) TestCreateIntent() {
	url := "/payments/intent"
	reqBody := map[string]string{"checkout_number": "482-019-337-204"}

	s.Run("success: returns 201 with the approval link", func() {
		s.mockCommands.EXPECT().CreateIntent(gomock.Any(), gomock.Any(), "482-019-337-204").
			Return(&commands.IntentResult{ID: "INT-1", Status: "CREATED", ApproveURL: "https://provider.example/approve/INT-1"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.IntentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("INT-1", body.ID)
		s.Equal("https://provider.example/approve/INT-1", body.ApproveURL)
	})

	s.Run("error: 400 Bad Request when checkout number is missing", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("checkout_number", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "checkout not found",
				commandsError:  commands.ErrCheckoutNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Checkout not found",
			},
			{
				name:           "foreign checkout",
				commandsError:  commands.ErrForbidden,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Insufficient permissions",
			},
			{
				name:           "already settled",
				commandsError:  commands.ErrCheckoutAlreadySettled,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already settled",
			},
			{
				name:           "insufficient stock keeps the item name",
				commandsError:  errs.Mark(errs.New("insufficient stock for item: Amethyst Ring"), commands.ErrInsufficientStock),
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Amethyst Ring",
			},
			{
				name:           "provider down",
				commandsError:  commands.ErrGatewayFailure,
				expectedStatus: http.StatusBadGateway,
				expectedMsg:    "Payment provider unavailable",
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
				s.mockCommands.EXPECT().CreateIntent(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *PaymentHandlerTestSuite) TestCaptureIntent() {
	url := "/payments/capture"
	reqBody := map[string]string{"intent_id": "INT-1", "checkout_number": "482-019-337-204"}

	s.Run("success: returns 201 with the settled order", func() {
		view := builder.NewOrderBuilder().WithUserID(s.userID).BuildView()
		s.mockCommands.EXPECT().CaptureIntent(gomock.Any(), gomock.Any(), "INT-1", "482-019-337-204").
			Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(view.Number, body.Number)
		s.Equal("Waiting", body.State)
		s.Equal(view.Transaction, body.Transaction)
	})

	s.Run("error: 400 Bad Request when intent id is missing", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("intent_id", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 502 when the capture fails at the provider", func() {
		s.mockCommands.EXPECT().CaptureIntent(gomock.Any(), gomock.Any(), "INT-1", "482-019-337-204").
			Return(nil, commands.ErrGatewayFailure)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "Payment provider unavailable")
	})

	s.Run("error: 409 when stock ran out at settlement", func() {
		s.mockCommands.EXPECT().CaptureIntent(gomock.Any(), gomock.Any(), "INT-1", "482-019-337-204").
			Return(nil, errs.Mark(errs.New("insufficient stock for item: Opal Pendant"), commands.ErrInsufficientStock))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Opal Pendant")
	})
}
