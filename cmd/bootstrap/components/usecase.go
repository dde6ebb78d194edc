package components

import (
	"styledecor/internal/domain/booking"
	"styledecor/internal/domain/coupon"
	"styledecor/internal/pkg/clock"
	"styledecor/internal/pkg/config"
	"styledecor/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseBookingModule,
	usecaseSupportModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewCouponCatalog,
	NewPagination,
)

var usecaseBookingModule = fx.Module("usecase/booking",
	fx.Provide(
		usecase.NewCustomerBookingUseCase,
		usecase.NewDecoratorBookingUseCase,
		usecase.NewAdminBookingUseCase,
		usecase.NewBookingQueryUseCase,
	),
)

var usecaseSupportModule = fx.Module("usecase/support",
	fx.Provide(
		usecase.NewMessagingUseCase,
		usecase.NewWishlistUseCase,
	),
)

func NewCouponCatalog(cfg config.Config) (booking.CouponLookup, error) {
	return coupon.NewCatalog(cfg.Booking.Coupons)
}

func NewPagination(cfg config.Config) usecase.Pagination {
	return usecase.Pagination{
		DefaultLimit: cfg.Booking.DefaultLimit,
		MaxLimit:     cfg.Booking.MaxLimit,
	}
}
