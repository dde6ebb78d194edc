package api

import (
	"net/http"

	resdto "styledecor/internal/handler/dto/response"

	"github.com/gin-gonic/gin"
)

type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// @Summary Current principal
// @Description Returns the identity and role carried by the access token
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.MeResponse
// @Failure 401 {object} httperr.Response
// @Router /api/users/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, resdto.FromPrincipal(p))
}
