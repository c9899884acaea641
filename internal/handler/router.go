package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"donor-booking/internal/handler/api"
	resdto "donor-booking/internal/handler/dto/response"
	"donor-booking/internal/handler/middleware"
	"donor-booking/internal/pkg/config"
	"donor-booking/internal/usecase/booking"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Booking   *api.BookingHandler
	Admin     *api.AdminHandler
	RPC       *api.RPCHandler
	Requester *middleware.RequesterMiddleware
	RateLimit *middleware.RateLimiter
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, service booking.Service, gatherer prometheus.Gatherer) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, service, gatherer)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, service booking.Service, gatherer prometheus.Gatherer) {
	engine.GET("/health", healthCheck(service))
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		public := apiGroup.Group("")
		public.Use(h.Requester.OptionalRequester(), h.RateLimit.Middleware())
		addRoutes(public, []route{
			{Method: http.MethodGet, Path: "/slots", Handler: h.Booking.ListSlots},
			{Method: http.MethodGet, Path: "/stats", Handler: h.Booking.Stats},
		})

		requester := apiGroup.Group("")
		requester.Use(h.Requester.RequireRequester(), h.RateLimit.Middleware())
		addRoutes(requester, []route{
			{Method: http.MethodGet, Path: "/dates", Handler: h.Booking.ListDates},
			{Method: http.MethodGet, Path: "/bookings", Handler: h.Booking.ListUserBookings},
			{Method: http.MethodPost, Path: "/bookings", Handler: h.Booking.Reserve},
			{Method: http.MethodGet, Path: "/bookings/existing", Handler: h.Booking.CheckExisting},
			{Method: http.MethodPost, Path: "/bookings/cancel", Handler: h.Booking.Cancel},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(h.Requester.RequireRequester(), h.Requester.RequireAdmin())
		addRoutes(admin, []route{
			{Method: http.MethodGet, Path: "/quotas", Handler: h.Admin.Quotas},
			{Method: http.MethodPut, Path: "/quotas", Handler: h.Admin.UpdateQuotas},
			{Method: http.MethodPost, Path: "/cache/clear", Handler: h.Admin.ClearCache},
			{Method: http.MethodPost, Path: "/cache/refresh", Handler: h.Admin.RefreshDates},
			{Method: http.MethodPost, Path: "/reset", Handler: h.Admin.Reset},
		})

		// service-to-service; identity travels in the body
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/rpc", Handler: h.RPC.Handle},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} resdto.Health
// @Router /health [get]
func healthCheck(service booking.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, resdto.Health{
			Status:  "ok",
			Message: "Service is healthy",
			Mode:    service.Mode().String(),
		})
	}
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
