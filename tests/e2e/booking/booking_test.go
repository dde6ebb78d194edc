//go:build e2e

package booking_test

import (
	"bytes"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"testing"
	"time"

	"styledecor/internal/handler/dto/request"
	"styledecor/internal/handler/dto/response"
	"styledecor/internal/pkg/cookie"
	"styledecor/tests/common/authtest"
	"styledecor/tests/common/dbtest"
	"styledecor/tests/common/httptest"
	"styledecor/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL  = "/api/bookings"
	bookingURL   = "/api/bookings/%s"
	trackingURL  = "/api/bookings/%s/tracking"
	messagesURL  = "/api/messages"
	threadURL    = "/api/messages/%s"
	unreadURL    = "/api/messages/%s/unread"
	checkoutURL  = "/api/payment-checkout-session"
	successURL   = "/api/payment-success?session_id=%s"
	reviewsURL   = "/api/reviews"
	meURL        = "/api/users/me"
	statsURL     = "/api/admin/stats"
	customerMail = "ana@example.com"
	otherMail    = "ben@example.com"
	decoMail     = "deco@example.com"
	adminMail    = "admin@example.com"
)

var trackingIDPattern = regexp.MustCompile(`^SD-\d{8}-[0-9A-F]{10}$`)

type BookingSuite struct {
	e2e.SharedSuite

	customerToken  string
	otherToken     string
	decoratorToken string
	adminToken     string
}

func (s *BookingSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	jwt := authtest.NewJWTHelper(s.Config.JWT)
	t := s.T()
	s.customerToken = jwt.GenerateToken(t, authtest.Customer(customerMail))
	s.otherToken = jwt.GenerateToken(t, authtest.Customer(otherMail))
	s.decoratorToken = jwt.GenerateToken(t, authtest.Decorator(decoMail))
	s.adminToken = jwt.GenerateToken(t, authtest.Admin(adminMail))
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

func (s *BookingSuite) bookingRequest() request.CreateBookingRequest {
	return request.CreateBookingRequest{
		ServiceID:   "svc-living",
		ServiceName: "Living Room Makeover",
		BasePrice:   500,
		Address:     "12 Garden Road",
		Date:        time.Now().AddDate(0, 0, 14).Format(time.DateOnly),
		Slot:        "10:00",
		ServiceType: "on-site",
		AddOns:      []request.AddOnRequest{{Name: "Lighting", Price: 130}},
		CouponCode:  "style20",
	}
}

func (s *BookingSuite) book() uuid.UUID {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, s.bookingRequest(), s.customerToken)
	var resp response.BookResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &resp)
	return resp.InsertedID
}

func (s *BookingSuite) patch(id uuid.UUID, body request.UpdateBookingRequest, token string) *response.TransitionResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(bookingURL, id), body, token)
	var resp response.TransitionResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &resp)
	return &resp
}

func status(s string) request.UpdateBookingRequest {
	return request.UpdateBookingRequest{Status: &s}
}

func assign(email string) request.UpdateBookingRequest {
	return request.UpdateBookingRequest{DecoratorEmail: &email}
}

func (s *BookingSuite) TestFullLifecycle() {
	s.Run("Normal case: booking runs from pending through payment to review", func() {
		t := s.T()

		// book with coupon
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, s.bookingRequest(), s.customerToken)
		var booked response.BookResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &booked)
		require.Equal(t, "pending", booked.Booking.Status)
		require.InDelta(t, 504.0, booked.Booking.Price, 0.001)
		require.InDelta(t, 630.0, booked.Booking.OriginalPrice, 0.001)
		require.NotNil(t, booked.Booking.CouponCode)
		require.Equal(t, "STYLE20", *booked.Booking.CouponCode)
		id := booked.InsertedID

		// admin assigns, decorator walks the ladder
		assigned := s.patch(id, assign(decoMail), s.adminToken)
		require.Equal(t, int64(1), assigned.ModifiedCount)
		require.Equal(t, "confirmed", assigned.Booking.Status)

		for _, next := range []string{"planning", "materials", "on-way", "setup", "completed"} {
			res := s.patch(id, status(next), s.decoratorToken)
			require.Equal(t, next, res.Booking.Status)
		}

		// checkout and confirm
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL, request.CheckoutRequest{BookingID: id}, s.customerToken)
		var checkout response.CheckoutResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &checkout)
		require.NotEmpty(t, checkout.SessionID)
		require.Contains(t, checkout.URL, checkout.SessionID)

		confirmPath := fmt.Sprintf(successURL, url.QueryEscape(checkout.SessionID))
		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, confirmPath, nil, s.customerToken)
		var receipt response.PaymentSuccessResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &receipt)
		require.Regexp(t, trackingIDPattern, receipt.TrackingID)
		require.Equal(t, "paid", receipt.Booking.Status)

		// replay returns the same receipt
		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, confirmPath, nil, s.customerToken)
		var replay response.PaymentSuccessResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &replay)
		require.Equal(t, receipt.TrackingID, replay.TrackingID)
		require.Equal(t, receipt.TransactionID, replay.TransactionID)

		// tracking
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(trackingURL, id), nil, s.customerToken)
		var tracking response.TrackingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &tracking)
		require.True(t, tracking.Paid)
		require.Equal(t, len(tracking.Steps)-1, tracking.CurrentIndex)

		// review once
		review := request.CreateReviewRequest{BookingID: id, Rating: 5, Comment: "Lovely work"}
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, review, s.customerToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, review, s.customerToken)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

		// admin dashboard
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, statsURL, nil, s.adminToken)
		var stats response.StatsResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &stats)
		require.Equal(t, response.StatsResponse{TotalBookings: 1, PaidBookings: 1, Revenue: 504}, stats)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, statsURL, nil, s.customerToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Insufficient permissions")
	})
}

func (s *BookingSuite) TestIllegalTransitions() {
	s.Run("Exception case: decorator cannot skip a rung", func() {
		t := s.T()
		id := dbtest.CreateTestBooking(t, s.DB, dbtest.BookingFixture{
			CustomerEmail:  customerMail,
			DecoratorEmail: decoMail,
			Status:         "planning",
		})

		next := "setup"
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(bookingURL, id), status(next), s.decoratorToken)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Illegal status transition")
		require.Equal(t, "planning", dbtest.BookingStatus(t, s.DB, id))
	})

	s.Run("Exception case: customer cannot cancel a confirmed booking", func() {
		t := s.T()
		id := dbtest.CreateTestBooking(t, s.DB, dbtest.BookingFixture{
			CustomerEmail:  customerMail,
			DecoratorEmail: decoMail,
			Status:         "confirmed",
		})

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(bookingURL, id), nil, s.customerToken)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Illegal status transition")
		require.Equal(t, "confirmed", dbtest.BookingStatus(t, s.DB, id))
	})

	s.Run("Normal case: customer cancels a pending booking", func() {
		t := s.T()
		id := s.book()

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(bookingURL, id), nil, s.customerToken)
		var resp response.CancelResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &resp)
		require.Equal(t, int64(1), resp.DeletedCount)
		require.Equal(t, "cancelled", dbtest.BookingStatus(t, s.DB, id))
	})

	s.Run("Exception case: checkout before completion", func() {
		t := s.T()
		id := s.book()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL, request.CheckoutRequest{BookingID: id}, s.customerToken)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})
}

func (s *BookingSuite) TestListing() {
	s.Run("Normal case: each role sees its own slice", func() {
		t := s.T()
		mine := s.book()
		other := dbtest.CreateTestBooking(t, s.DB, dbtest.BookingFixture{CustomerEmail: otherMail})
		assigned := dbtest.CreateTestBooking(t, s.DB, dbtest.BookingFixture{
			CustomerEmail:  otherMail,
			DecoratorEmail: decoMail,
			Status:         "confirmed",
		})

		ids := func(token string) []uuid.UUID {
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"?limit=50", nil, token)
			var resp response.BookingListResponse
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &resp)
			out := make([]uuid.UUID, 0, len(resp.Data))
			for _, b := range resp.Data {
				out = append(out, b.ID)
			}
			return out
		}

		require.Equal(t, []uuid.UUID{mine}, ids(s.customerToken))
		require.Equal(t, []uuid.UUID{assigned}, ids(s.decoratorToken))
		require.ElementsMatch(t, []uuid.UUID{mine, other, assigned}, ids(s.adminToken))
	})

	s.Run("Exception case: another customer cannot read the booking", func() {
		t := s.T()
		id := s.book()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(bookingURL, id), nil, s.otherToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})
}

func (s *BookingSuite) TestChat() {
	s.Run("Normal case: unread count clears when the thread is opened", func() {
		t := s.T()
		id := dbtest.CreateTestBooking(t, s.DB, dbtest.BookingFixture{
			CustomerEmail:  customerMail,
			DecoratorEmail: decoMail,
			Status:         "confirmed",
		})

		for _, text := range []string{"Hi there", "Is Tuesday fine?"} {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, messagesURL,
				request.SendMessageRequest{BookingID: id, Text: text}, s.customerToken)
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		}

		unread := func(token string) int {
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(unreadURL, id), nil, token)
			var resp response.UnreadCountResponse
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &resp)
			return resp.UnreadCount
		}
		require.Equal(t, 2, unread(s.decoratorToken))
		require.Equal(t, 0, unread(s.customerToken))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(threadURL, id)+"?open=true", nil, s.decoratorToken)
		var thread []response.MessageResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &thread)
		texts := make([]string, len(thread))
		for i, m := range thread {
			texts[i] = m.Text
		}
		if diff := cmp.Diff([]string{"Hi there", "Is Tuesday fine?"}, texts); diff != "" {
			t.Errorf("thread order mismatch (-want +got):\n%s", diff)
		}

		require.Equal(t, 0, unread(s.decoratorToken))
	})

	s.Run("Exception case: outsider cannot post", func() {
		t := s.T()
		id := dbtest.CreateTestBooking(t, s.DB, dbtest.BookingFixture{CustomerEmail: customerMail})

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, messagesURL,
			request.SendMessageRequest{BookingID: id, Text: "hello"}, s.otherToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})
}

func (s *BookingSuite) TestWhoAmI() {
	s.Run("Normal case: access token cookie identifies the caller", func() {
		t := s.T()
		cookies := []*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: s.decoratorToken}}

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodGet, meURL, nil, cookies, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		httptest.AssertHeaders(t, w, map[string]string{"Content-Type": "application/json; charset=utf-8"})

		var me response.MeResponse
		require.NoError(t, httptest.DecodeResponseBody(t, bytes.NewBuffer(w.Body.Bytes()), &me))
		require.Equal(t, response.MeResponse{Email: decoMail, DisplayName: "Test Decorator", Role: "decorator"}, me)
	})

	s.Run("Exception case: no credentials", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Access token required")
	})
}
