package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"styledecor/internal/domain/user"
	"styledecor/internal/handler/api"
	"styledecor/internal/handler/middleware"
	"styledecor/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups everything the router mounts.
type Handlers struct {
	fx.In

	Booking  *api.BookingHandler
	Message  *api.MessageHandler
	Review   *api.ReviewHandler
	Payment  *api.PaymentHandler
	Wishlist *api.WishlistHandler
	User     *api.UserHandler
	Auth     *middleware.AuthMiddleware
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.RateLimit(cfg.RateLimit))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	customerOnly := h.Auth.RequireRole(user.RoleCustomer)
	adminOnly := h.Auth.RequireRole(user.RoleAdmin)

	apiGroup := engine.Group("/api")
	{
		ws := apiGroup.Group("/ws")
		ws.Use(h.Auth.RequireAuthWS())
		addRoutes(ws, []route{
			{Method: http.MethodGet, Path: "/messages", Handler: h.Message.Stream},
		})

		authed := apiGroup.Group("")
		authed.Use(h.Auth.RequireAuth())

		addRoutes(authed.Group("/users"), []route{
			{Method: http.MethodGet, Path: "/me", Handler: h.User.Me},
		})

		addRoutes(authed.Group("/bookings"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Booking.List},
			{Method: http.MethodPost, Path: "", Handler: h.Booking.Create, Mw: []gin.HandlerFunc{customerOnly}},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
			{Method: http.MethodGet, Path: "/:id/tracking", Handler: h.Booking.Tracking},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.Booking.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Booking.Cancel},
		})

		addRoutes(authed.Group("/admin"), []route{
			{Method: http.MethodGet, Path: "/stats", Handler: h.Booking.Stats, Mw: []gin.HandlerFunc{adminOnly}},
		})

		addRoutes(authed.Group("/messages"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Message.Send},
			{Method: http.MethodGet, Path: "/:bookingId", Handler: h.Message.List},
			{Method: http.MethodGet, Path: "/:bookingId/unread", Handler: h.Message.Unread},
			{Method: http.MethodPatch, Path: "/mark-read/:bookingId", Handler: h.Message.MarkRead},
		})

		addRoutes(authed, []route{
			{Method: http.MethodPost, Path: "/reviews", Handler: h.Review.Create, Mw: []gin.HandlerFunc{customerOnly}},
			{Method: http.MethodPost, Path: "/payment-checkout-session", Handler: h.Payment.Checkout, Mw: []gin.HandlerFunc{customerOnly}},
			{Method: http.MethodPatch, Path: "/payment-success", Handler: h.Payment.Success},
		})

		addRoutes(authed.Group("/wishlist"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Wishlist.List},
			{Method: http.MethodPost, Path: "", Handler: h.Wishlist.Add},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Wishlist.Remove},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
