//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"styledecor/internal/domain/booking"
	"styledecor/internal/domain/pricing"
	"styledecor/internal/domain/user"
	"styledecor/internal/handler/api"
	resdto "styledecor/internal/handler/dto/response"
	"styledecor/internal/handler/middleware"
	"styledecor/internal/usecase"
	"styledecor/internal/usecase/shared"
	"styledecor/tests/common/builder"
	"styledecor/tests/common/httptest"
	"styledecor/tests/common/testutil"
	usecasemock "styledecor/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockCustomer  *usecasemock.MockCustomerBookingUseCase
	mockDecorator *usecasemock.MockDecoratorBookingUseCase
	mockAdmin     *usecasemock.MockAdminBookingUseCase
	mockQuery     *usecasemock.MockBookingQueryUseCase
	handler       *api.BookingHandler
	principal     user.Principal
}

// fakeAuth stands in for the JWT middleware: any bearer token authenticates
// as whatever principal the test has set.
func fakeAuth(p *user.Principal) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		middleware.SetPrincipal(c, *p)
		c.Next()
	}
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCustomer = usecasemock.NewMockCustomerBookingUseCase(s.mockCtrl)
	s.mockDecorator = usecasemock.NewMockDecoratorBookingUseCase(s.mockCtrl)
	s.mockAdmin = usecasemock.NewMockAdminBookingUseCase(s.mockCtrl)
	s.mockQuery = usecasemock.NewMockBookingQueryUseCase(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCustomer, s.mockDecorator, s.mockAdmin, s.mockQuery)
	s.principal = builder.NewPrincipalBuilder().Build()

	auth := fakeAuth(&s.principal)
	s.router.GET("/bookings", auth, s.handler.List)
	s.router.POST("/bookings", auth, s.handler.Create)
	s.router.GET("/bookings/:id", auth, s.handler.Get)
	s.router.GET("/bookings/:id/tracking", auth, s.handler.Tracking)
	s.router.PATCH("/bookings/:id", auth, s.handler.Update)
	s.router.DELETE("/bookings/:id", auth, s.handler.Cancel)
	s.router.GET("/admin/stats", auth, s.handler.Stats)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// TestList
// ================================================================================

func (s *BookingHandlerTestSuite) TestList() {
	b := builder.NewBookingBuilder().BuildDomain()
	result := &usecase.ListResult{
		Items:     []usecase.BookingView{{Booking: b, UnreadCount: 2}},
		Total:     11,
		Page:      2,
		Limit:     10,
		PageCount: 2,
	}

	s.Run("customer lists own bookings", func() {
		s.SetupTest()
		s.mockCustomer.EXPECT().ListMine(gomock.Any(), s.principal, 2, 10).Return(result, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?page=2&limit=10", nil, "token")

		var body resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(11), body.Total)
		s.Equal(2, body.PageCount)
		s.Require().Len(body.Data, 1)
		s.Equal(b.ID(), body.Data[0].ID)
		s.Require().NotNil(body.Data[0].UnreadCount)
		s.Equal(2, *body.Data[0].UnreadCount)
	})

	s.Run("customer asking for another email", func() {
		s.SetupTest()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?email=other@example.com", nil, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Forbidden")
	})

	s.Run("decorator lists assignments", func() {
		s.SetupTest()
		s.principal = builder.NewPrincipalBuilder().AsDecorator().Build()
		s.mockDecorator.EXPECT().ListAssigned(gomock.Any(), s.principal, 1, 0).Return(result, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "token")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("admin filters by email", func() {
		s.SetupTest()
		s.principal = builder.NewPrincipalBuilder().AsAdmin().Build()
		s.mockAdmin.EXPECT().ListAll(gomock.Any(), s.principal, "customer@example.com", 1, 0).Return(result, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?email=customer@example.com", nil, "token")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("invalid page", func() {
		s.SetupTest()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?page=0", nil, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("no token", func() {
		s.SetupTest()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	bb := builder.NewBookingBuilder()
	reqBody := bb.BuildCreateRequestDTO()
	created := bb.BuildDomain()

	s.Run("success: returns 201 with the stored booking", func() {
		s.SetupTest()
		s.mockCustomer.EXPECT().Book(gomock.Any(), s.principal, bb.Service(), gomock.Any()).
			Return(&usecase.BookResult{InsertedID: created.ID(), Booking: created, Warnings: []string{"coupon ignored"}}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", reqBody, "token")

		var body resdto.BookResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(created.ID(), body.InsertedID)
		s.Equal([]string{"coupon ignored"}, body.Warnings)
		s.Equal(500.0, body.Booking.Price)
	})

	cases := []struct {
		name       string
		mutate     func(map[string]any)
		expectCode int
		expectMsg  string
	}{
		{name: "missing serviceId", mutate: testutil.Field("serviceId", nil), expectCode: http.StatusBadRequest, expectMsg: "Invalid request"},
		{name: "missing address", mutate: testutil.Field("address", nil), expectCode: http.StatusBadRequest, expectMsg: "Invalid request"},
		{name: "negative base price", mutate: testutil.Field("basePrice", -1), expectCode: http.StatusBadRequest, expectMsg: "Invalid request"},
		{name: "unparseable date", mutate: testutil.Field("date", "next tuesday"), expectCode: http.StatusUnprocessableEntity, expectMsg: "Validation failed"},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.SetupTest()
			body := testutil.DtoMap(s.T(), reqBody, tc.mutate)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", body, "token")

			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
		})
	}

	s.Run("use case validation maps to 422", func() {
		s.SetupTest()
		s.mockCustomer.EXPECT().Book(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, booking.ErrValidation)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", reqBody, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Validation failed")
	})
}

// ================================================================================
// TestUpdate
// ================================================================================

func (s *BookingHandlerTestSuite) TestUpdate() {
	bb := builder.NewBookingBuilder().WithStatus(booking.StatusConfirmed).WithDecorator("dana@example.com")
	updated := bb.BuildDomain()
	url := "/bookings/" + updated.ID().String()
	ok := &usecase.TransitionResult{ModifiedCount: 1, Booking: updated}

	s.Run("admin with decoratorEmail assigns", func() {
		s.SetupTest()
		s.principal = builder.NewPrincipalBuilder().AsAdmin().Build()
		s.mockAdmin.EXPECT().AssignDecorator(gomock.Any(), s.principal, updated.ID(), "dana@example.com").Return(ok, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"decoratorEmail": "dana@example.com"}, "token")

		var body resdto.TransitionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(1), body.ModifiedCount)
		s.Equal("confirmed", body.Booking.Status)
	})

	s.Run("admin with status forces it", func() {
		s.SetupTest()
		s.principal = builder.NewPrincipalBuilder().AsAdmin().Build()
		s.mockAdmin.EXPECT().ForceSetStatus(gomock.Any(), s.principal, updated.ID(), booking.StatusPlanning).Return(ok, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "planning"}, "token")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("decorator advances", func() {
		s.SetupTest()
		s.principal = builder.NewPrincipalBuilder().AsDecorator().Build()
		s.mockDecorator.EXPECT().AdvanceStatus(gomock.Any(), s.principal, updated.ID(), booking.StatusPlanning).Return(ok, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "planning"}, "token")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("illegal transition is a conflict", func() {
		s.SetupTest()
		s.principal = builder.NewPrincipalBuilder().AsDecorator().Build()
		s.mockDecorator.EXPECT().AdvanceStatus(gomock.Any(), s.principal, updated.ID(), booking.StatusCompleted).
			Return(nil, booking.ErrIllegalTransition)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "completed"}, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Illegal status transition")
	})

	s.Run("lost race returns the current booking", func() {
		s.SetupTest()
		s.principal = builder.NewPrincipalBuilder().AsDecorator().Build()
		moved := bb.WithStatus(booking.StatusCancelled).BuildDomain()
		s.mockDecorator.EXPECT().AdvanceStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&usecase.TransitionResult{Booking: moved}, &usecase.NoOpWriteWarning{Op: "advance status", BookingID: moved.ID(), Current: moved})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "planning"}, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "changed by someone else")
		s.Contains(rec.Body.String(), `"status":"cancelled"`)
	})

	s.Run("unknown status", func() {
		s.SetupTest()
		s.principal = builder.NewPrincipalBuilder().AsDecorator().Build()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "finished"}, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid status")
	})

	s.Run("customers cannot patch", func() {
		s.SetupTest()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "cancelled"}, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Forbidden")
	})

	s.Run("malformed id", func() {
		s.SetupTest()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/not-a-uuid", map[string]any{"status": "planning"}, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

// ================================================================================
// TestGet / TestCancel
// ================================================================================

func (s *BookingHandlerTestSuite) TestGet() {
	s.Run("not found", func() {
		s.SetupTest()
		id := uuid.New()
		s.mockQuery.EXPECT().Get(gomock.Any(), s.principal, id).Return(nil, usecase.ErrBookingNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String(), nil, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("tracking", func() {
		s.SetupTest()
		id := uuid.New()
		s.mockQuery.EXPECT().Tracking(gomock.Any(), s.principal, id).Return(booking.NewTracking(booking.StatusPaid), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String()+"/tracking", nil, "token")

		var body resdto.TrackingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Paid)
		s.Equal(6, body.CurrentIndex)
		s.Len(body.Steps, 7)
	})
}

func (s *BookingHandlerTestSuite) TestCancel() {
	id := uuid.New()

	s.Run("success", func() {
		s.SetupTest()
		s.mockCustomer.EXPECT().Cancel(gomock.Any(), s.principal, id).Return(&usecase.CancelResult{DeletedCount: 1}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/"+id.String(), nil, "token")

		var body resdto.CancelResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(1), body.DeletedCount)
	})

	s.Run("booking already confirmed", func() {
		s.SetupTest()
		s.mockCustomer.EXPECT().Cancel(gomock.Any(), s.principal, id).Return(nil, booking.ErrIllegalTransition)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/"+id.String(), nil, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Illegal status transition")
	})
}

// ================================================================================
// TestStats
// ================================================================================

func (s *BookingHandlerTestSuite) TestStats() {
	s.Run("admin gets totals", func() {
		s.SetupTest()
		s.principal = builder.NewPrincipalBuilder().AsAdmin().Build()
		s.mockAdmin.EXPECT().Stats(gomock.Any(), s.principal).Return(&shared.BookingStats{
			TotalBookings: 12,
			PaidBookings:  3,
			Revenue:       pricing.NewMoney(151250),
		}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/stats", nil, "token")

		var resp resdto.StatsResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(resdto.StatsResponse{TotalBookings: 12, PaidBookings: 3, Revenue: 1512.50}, resp)
	})

	s.Run("forbidden maps to 403", func() {
		s.SetupTest()
		s.mockAdmin.EXPECT().Stats(gomock.Any(), s.principal).Return(nil, usecase.ErrForbidden)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/stats", nil, "token")

		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Forbidden")
	})
}
