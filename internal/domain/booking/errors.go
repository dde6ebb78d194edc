package booking

import "styledecor/internal/pkg/errs"

var (
	ErrValidation        = errs.New("booking validation failed")
	ErrIllegalTransition = errs.New("illegal status transition")
	ErrInvalidStatus     = errs.New("invalid booking status")
)
