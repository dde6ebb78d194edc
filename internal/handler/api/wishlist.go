package api

import (
	"net/http"

	reqdto "styledecor/internal/handler/dto/request"
	resdto "styledecor/internal/handler/dto/response"
	"styledecor/internal/usecase"

	"github.com/gin-gonic/gin"
)

type WishlistHandler struct {
	wishlist usecase.WishlistUseCase
}

func NewWishlistHandler(wishlist usecase.WishlistUseCase) *WishlistHandler {
	return &WishlistHandler{wishlist: wishlist}
}

// @Summary List wishlist
// @Tags wishlist
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.WishlistItemResponse
// @Router /api/wishlist [get]
func (h *WishlistHandler) List(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	items, err := h.wishlist.List(c.Request.Context(), p)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWishlist(items))
}

// @Summary Add to wishlist
// @Tags wishlist
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AddWishlistRequest true "Service"
// @Success 201 {object} resdto.InsertedResponse
// @Failure 409 {object} httperr.Response
// @Router /api/wishlist [post]
func (h *WishlistHandler) Add(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req reqdto.AddWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}
	service, err := req.ToDomain()
	if err != nil {
		respondError(c, err)
		return
	}
	id, err := h.wishlist.Add(c.Request.Context(), p, service)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.InsertedResponse{InsertedID: id})
}

// @Summary Remove from wishlist
// @Tags wishlist
// @Produce json
// @Security BearerAuth
// @Param id path string true "Wishlist item ID"
// @Success 200 {object} resdto.DeletedResponse
// @Failure 404 {object} httperr.Response
// @Router /api/wishlist/{id} [delete]
func (h *WishlistHandler) Remove(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	n, err := h.wishlist.Remove(c.Request.Context(), p, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.DeletedResponse{DeletedCount: n})
}
