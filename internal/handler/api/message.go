package api

import (
	"context"
	"net/http"

	"styledecor/internal/domain/user"
	reqdto "styledecor/internal/handler/dto/request"
	resdto "styledecor/internal/handler/dto/response"
	"styledecor/internal/infra/realtime"
	"styledecor/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// SocketServer runs an upgraded websocket connection for a principal.
type SocketServer interface {
	ServeWS(ctx context.Context, conn *websocket.Conn, p user.Principal, authorize realtime.Authorizer)
}

type MessageHandler struct {
	messaging usecase.MessagingUseCase
	sockets   SocketServer
	upgrader  websocket.Upgrader
}

func NewMessageHandler(messaging usecase.MessagingUseCase, sockets SocketServer) *MessageHandler {
	return &MessageHandler{
		messaging: messaging,
		sockets:   sockets,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// the socket is token-gated
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// @Summary List booking messages
// @Description Returns the thread in timestamp order. With open=true the thread is also marked read for the caller.
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param bookingId path string true "Booking ID"
// @Param open query bool false "Mark the thread read"
// @Success 200 {array} resdto.MessageResponse
// @Failure 403 {object} httperr.Response
// @Router /api/messages/{bookingId} [get]
func (h *MessageHandler) List(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	bookingID, ok := uuidParam(c, "bookingId")
	if !ok {
		return
	}

	if c.Query("open") == "true" {
		opened, err := h.messaging.Open(c.Request.Context(), p, bookingID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, resdto.FromMessages(opened.Thread.Messages()))
		return
	}

	msgs, err := h.messaging.ListMessages(c.Request.Context(), p, bookingID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMessages(msgs))
}

// @Summary Send a message
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SendMessageRequest true "Message"
// @Success 201 {object} resdto.SendMessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/messages [post]
func (h *MessageHandler) Send(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req reqdto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}
	result, err := h.messaging.Send(c.Request.Context(), p, req.BookingID, req.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromSendResult(result))
}

// @Summary Mark thread read
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param bookingId path string true "Booking ID"
// @Success 200 {object} resdto.MarkReadResponse
// @Router /api/messages/mark-read/{bookingId} [patch]
func (h *MessageHandler) MarkRead(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	bookingID, ok := uuidParam(c, "bookingId")
	if !ok {
		return
	}
	result, err := h.messaging.MarkRead(c.Request.Context(), p, bookingID)
	if err != nil {
		respondError(c, err)
		return
	}
	resp, err := resdto.FromReadResult(result)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Unread count
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param bookingId path string true "Booking ID"
// @Success 200 {object} resdto.UnreadCountResponse
// @Router /api/messages/{bookingId}/unread [get]
func (h *MessageHandler) Unread(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	bookingID, ok := uuidParam(c, "bookingId")
	if !ok {
		return
	}
	n, err := h.messaging.UnreadCount(c.Request.Context(), p, bookingID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.UnreadCountResponse{UnreadCount: n})
}

// @Summary Live message stream
// @Description Upgrades to a websocket. Clients send {"type":"subscribe","bookingId":"..."} to join a booking room.
// @Tags messages
// @Param token query string true "Access token"
// @Router /api/ws/messages [get]
func (h *MessageHandler) Stream(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already written the handshake error
		return
	}
	h.sockets.ServeWS(c.Request.Context(), conn, p, h.messaging.CanSubscribe)
}
