package components

import (
	"styledecor/internal/handler"
	"styledecor/internal/handler/api"
	"styledecor/internal/handler/middleware"
	"styledecor/internal/pkg/jwt"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewMessageHandler,
		api.NewReviewHandler,
		api.NewPaymentHandler,
		api.NewWishlistHandler,
		api.NewUserHandler,
		fx.Annotate(
			func(s *jwt.Service) *jwt.Service { return s },
			fx.As(new(middleware.PrincipalResolver)),
		),
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
