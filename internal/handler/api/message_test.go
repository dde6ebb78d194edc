//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"styledecor/internal/domain/message"
	"styledecor/internal/domain/user"
	"styledecor/internal/handler/api"
	resdto "styledecor/internal/handler/dto/response"
	"styledecor/internal/handler/middleware"
	"styledecor/internal/infra/realtime"
	"styledecor/internal/usecase"
	"styledecor/tests/common/builder"
	"styledecor/tests/common/httptest"
	usecasemock "styledecor/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type noSockets struct{}

func (noSockets) ServeWS(context.Context, *websocket.Conn, user.Principal, realtime.Authorizer) {}

type MessageHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockMessaging *usecasemock.MockMessagingUseCase
	principal     user.Principal
}

func (s *MessageHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockMessaging = usecasemock.NewMockMessagingUseCase(s.mockCtrl)
	h := api.NewMessageHandler(s.mockMessaging, noSockets{})
	s.principal = builder.NewPrincipalBuilder().AsDecorator().Build()

	auth := fakeAuth(&s.principal)
	s.router.POST("/messages", auth, h.Send)
	s.router.GET("/messages/:bookingId", auth, h.List)
	s.router.GET("/messages/:bookingId/unread", auth, h.Unread)
	s.router.PATCH("/messages/mark-read/:bookingId", auth, h.MarkRead)
}

func (s *MessageHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestMessageHandlerSuite(t *testing.T) {
	suite.Run(t, new(MessageHandlerTestSuite))
}

func (s *MessageHandlerTestSuite) TestSend() {
	bookingID := uuid.New()
	stored := builder.NewMessageBuilder().With(func(m *builder.MessageBuilder) {
		m.BookingID = bookingID
	}).BuildDomain()

	s.Run("success: 201 with stored message", func() {
		s.SetupTest()
		s.mockMessaging.EXPECT().Send(gomock.Any(), s.principal, bookingID, "Materials arrive tomorrow").
			Return(&usecase.SendResult{InsertedID: stored.ID(), Message: stored}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/messages",
			map[string]any{"bookingId": bookingID, "text": "Materials arrive tomorrow"}, "token")

		var body resdto.SendMessageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(stored.ID(), body.InsertedID)
		s.Equal("decorator@example.com", body.Message.SenderEmail)
	})

	s.Run("closed chat", func() {
		s.SetupTest()
		s.mockMessaging.EXPECT().Send(gomock.Any(), gomock.Any(), bookingID, gomock.Any()).Return(nil, message.ErrThreadClosed)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/messages",
			map[string]any{"bookingId": bookingID, "text": "hello"}, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Chat is closed")
	})

	s.Run("missing text", func() {
		s.SetupTest()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/messages",
			map[string]any{"bookingId": bookingID}, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *MessageHandlerTestSuite) TestList() {
	bookingID := uuid.New()
	msgs := []*message.Message{
		builder.NewMessageBuilder().With(func(m *builder.MessageBuilder) { m.BookingID = bookingID }).BuildDomain(),
	}

	s.Run("plain listing does not mark read", func() {
		s.SetupTest()
		s.mockMessaging.EXPECT().ListMessages(gomock.Any(), s.principal, bookingID).Return(msgs, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/messages/"+bookingID.String(), nil, "token")

		var body []resdto.MessageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
	})

	s.Run("open=true marks the thread read", func() {
		s.SetupTest()
		thread := message.NewThread(bookingID, msgs)
		s.mockMessaging.EXPECT().Open(gomock.Any(), s.principal, bookingID).
			Return(&usecase.OpenResult{Thread: thread}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/messages/"+bookingID.String()+"?open=true", nil, "token")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("outsider", func() {
		s.SetupTest()
		s.mockMessaging.EXPECT().ListMessages(gomock.Any(), s.principal, bookingID).Return(nil, usecase.ErrForbidden)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/messages/"+bookingID.String(), nil, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Forbidden")
	})
}

func (s *MessageHandlerTestSuite) TestMarkReadAndUnread() {
	bookingID := uuid.New()

	s.Run("mark read", func() {
		s.SetupTest()
		s.mockMessaging.EXPECT().MarkRead(gomock.Any(), s.principal, bookingID).
			Return(&usecase.ReadResult{ModifiedCount: 3, UnreadCount: 0}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/messages/mark-read/"+bookingID.String(), nil, "token")

		var body resdto.MarkReadResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(resdto.MarkReadResponse{ModifiedCount: 3}, body)
	})

	s.Run("unread count", func() {
		s.SetupTest()
		s.mockMessaging.EXPECT().UnreadCount(gomock.Any(), s.principal, bookingID).Return(4, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/messages/"+bookingID.String()+"/unread", nil, "token")

		var body resdto.UnreadCountResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(4, body.UnreadCount)
	})
}
