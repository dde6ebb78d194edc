//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"styledecor/internal/domain/booking"
	"styledecor/internal/domain/review"
	"styledecor/internal/domain/user"
	"styledecor/internal/handler/api"
	resdto "styledecor/internal/handler/dto/response"
	"styledecor/internal/handler/middleware"
	"styledecor/internal/usecase"
	"styledecor/tests/common/builder"
	"styledecor/tests/common/httptest"
	"styledecor/tests/common/testutil"
	usecasemock "styledecor/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PaymentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCustomer *usecasemock.MockCustomerBookingUseCase
	principal    user.Principal
}

func (s *PaymentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCustomer = usecasemock.NewMockCustomerBookingUseCase(s.mockCtrl)
	s.principal = builder.NewPrincipalBuilder().Build()

	payments := api.NewPaymentHandler(s.mockCustomer)
	reviews := api.NewReviewHandler(s.mockCustomer)
	auth := fakeAuth(&s.principal)
	s.router.POST("/payment-checkout-session", auth, payments.Checkout)
	s.router.PATCH("/payment-success", auth, payments.Success)
	s.router.POST("/reviews", auth, reviews.Create)
}

func (s *PaymentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}

func (s *PaymentHandlerTestSuite) TestCheckout() {
	bookingID := uuid.New()

	s.Run("success", func() {
		s.SetupTest()
		s.mockCustomer.EXPECT().Pay(gomock.Any(), s.principal, bookingID).
			Return(&usecase.Checkout{SessionID: "cs_1", URL: "https://pay.example.com/cs_1"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/payment-checkout-session", map[string]any{"bookingId": bookingID}, "token")

		var body resdto.CheckoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(resdto.CheckoutResponse{URL: "https://pay.example.com/cs_1", SessionID: "cs_1"}, body)
	})

	s.Run("not completed yet", func() {
		s.SetupTest()
		s.mockCustomer.EXPECT().Pay(gomock.Any(), s.principal, bookingID).Return(nil, usecase.ErrNotPayable)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/payment-checkout-session", map[string]any{"bookingId": bookingID}, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "not awaiting payment")
	})
}

func (s *PaymentHandlerTestSuite) TestSuccess() {
	paid := builder.NewBookingBuilder().WithStatus(booking.StatusPaid).WithDecorator("decorator@example.com").BuildDomain()

	s.Run("receipt", func() {
		s.SetupTest()
		s.mockCustomer.EXPECT().ConfirmPayment(gomock.Any(), "cs_1").Return(&usecase.PaymentReceipt{
			TransactionID: "pi_1",
			TrackingID:    "SD-20260301-ABCDEF1234",
			Booking:       paid,
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/payment-success?session_id=cs_1", nil, "token")

		var body resdto.PaymentSuccessResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("pi_1", body.TransactionID)
		s.Equal("SD-20260301-ABCDEF1234", body.TrackingID)
		s.Equal("paid", body.Booking.Status)
	})

	s.Run("unpaid session", func() {
		s.SetupTest()
		s.mockCustomer.EXPECT().ConfirmPayment(gomock.Any(), "cs_2").Return(nil, usecase.ErrPaymentNotConfirmed)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/payment-success?session_id=cs_2", nil, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusPaymentRequired, "Payment not confirmed")
	})

	s.Run("missing session id", func() {
		s.SetupTest()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/payment-success", nil, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *PaymentHandlerTestSuite) TestReviewCreate() {
	reqBody := builder.NewReviewBuilder().BuildCreateRequestDTO()

	cases := []struct {
		name       string
		mutate     func(map[string]any)
		expectCode int
	}{
		{name: "rating boundary OK (1)", mutate: testutil.Field("rating", 1), expectCode: http.StatusCreated},
		{name: "rating boundary OK (5)", mutate: testutil.Field("rating", 5), expectCode: http.StatusCreated},
		{name: "rating boundary invalid (0)", mutate: testutil.Field("rating", 0), expectCode: http.StatusBadRequest},
		{name: "rating boundary invalid (6)", mutate: testutil.Field("rating", 6), expectCode: http.StatusBadRequest},
		{name: "missing field: bookingId", mutate: testutil.Field("bookingId", nil), expectCode: http.StatusBadRequest},
		{name: "empty comment", mutate: testutil.Field("comment", ""), expectCode: http.StatusBadRequest},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.SetupTest()
			if tc.expectCode == http.StatusCreated {
				s.mockCustomer.EXPECT().Review(gomock.Any(), s.principal, reqBody.BookingID, gomock.Any(), reqBody.Comment).
					Return(uuid.New(), nil)
			}
			body := testutil.DtoMap(s.T(), reqBody, tc.mutate)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reviews", body, "token")

			s.Equal(tc.expectCode, rec.Code, rec.Body.String())
		})
	}

	s.Run("second review", func() {
		s.SetupTest()
		s.mockCustomer.EXPECT().Review(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, review.ErrReviewAlreadyExists)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reviews", reqBody, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already reviewed")
	})
}
