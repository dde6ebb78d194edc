package api

import (
	"errors"
	"net/http"

	"styledecor/internal/domain/booking"
	"styledecor/internal/domain/coupon"
	"styledecor/internal/domain/message"
	"styledecor/internal/domain/pricing"
	"styledecor/internal/domain/review"
	"styledecor/internal/domain/user"
	"styledecor/internal/domain/wishlist"
	resdto "styledecor/internal/handler/dto/response"
	"styledecor/internal/handler/httperr"
	"styledecor/internal/handler/middleware"
	"styledecor/internal/infra"
	"styledecor/internal/usecase"

	"github.com/gin-gonic/gin"
)

type errorRule struct {
	target error
	status int
	msg    string
}

var errorRules = []errorRule{
	{booking.ErrValidation, http.StatusUnprocessableEntity, "Validation failed"},
	{user.ErrInvalidEmail, http.StatusUnprocessableEntity, "Validation failed"},
	{wishlist.ErrInvalidItem, http.StatusUnprocessableEntity, "Validation failed"},
	{review.ErrBookingNotEligible, http.StatusUnprocessableEntity, "Booking cannot be reviewed yet"},
	{booking.ErrInvalidStatus, http.StatusBadRequest, "Invalid status"},
	{pricing.ErrInvalidDiscount, http.StatusBadRequest, "Invalid discount"},
	{pricing.ErrNegativeAmount, http.StatusBadRequest, "Invalid amount"},
	{coupon.ErrInvalidCoupon, http.StatusBadRequest, "Invalid coupon"},
	{message.ErrEmptyMessage, http.StatusBadRequest, "Message text cannot be empty"},
	{message.ErrTextTooLong, http.StatusBadRequest, "Message text is too long"},
	{review.ErrInvalidRating, http.StatusBadRequest, "Invalid rating"},
	{review.ErrEmptyComment, http.StatusBadRequest, "Comment cannot be empty"},
	{review.ErrCommentTooLong, http.StatusBadRequest, "Comment is too long"},
	{usecase.ErrForbidden, http.StatusForbidden, "Forbidden"},
	{usecase.ErrBookingNotFound, http.StatusNotFound, "Booking not found"},
	{usecase.ErrWishlistItemNotFound, http.StatusNotFound, "Wishlist item not found"},
	{message.ErrNotFound, http.StatusNotFound, "Message not found"},
	{booking.ErrIllegalTransition, http.StatusConflict, "Illegal status transition"},
	{message.ErrThreadClosed, http.StatusConflict, "Chat is closed for this booking"},
	{review.ErrReviewAlreadyExists, http.StatusConflict, "Booking already reviewed"},
	{wishlist.ErrAlreadyListed, http.StatusConflict, "Service already in wishlist"},
	{usecase.ErrNotPayable, http.StatusConflict, "Booking is not awaiting payment"},
	{usecase.ErrPaymentNotConfirmed, http.StatusPaymentRequired, "Payment not confirmed"},
}

// respondError maps use case errors onto the public HTTP contract.
func respondError(c *gin.Context, err error) {
	if w, ok := usecase.AsNoOpWrite(err); ok {
		httperr.AbortWithError(c, http.StatusConflict, err, "Booking was changed by someone else", gin.H{
			"op":      w.Op,
			"booking": resdto.FromBooking(w.Current),
		})
		return
	}

	for _, r := range errorRules {
		if errors.Is(err, r.target) {
			httperr.AbortWithError(c, r.status, err, r.msg, nil)
			return
		}
	}

	var repoErr infra.RepositoryError
	if errors.As(err, &repoErr) {
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Storage temporarily unavailable", nil)
		return
	}

	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}

func bindFailed(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
}

func principal(c *gin.Context) (user.Principal, bool) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing principal"), "Unauthorized", nil)
	}
	return p, ok
}
