package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/trace"

	"tour-booking-console/internal/domain/operator"
	"tour-booking-console/internal/handler/api"
	"tour-booking-console/internal/handler/middleware"
	"tour-booking-console/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	tracerProvider trace.TracerProvider,
	wizardHandler *api.WizardHandler,
	bookingHandler *api.BookingHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg, logger, tracerProvider)
	setupRoutes(engine, wizardHandler, bookingHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, tp trace.TracerProvider) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	// The span must exist before the logger reads its ids.
	engine.Use(otelgin.Middleware(cfg.Tracing.ServiceName, otelgin.WithTracerProvider(tp)))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	wizardHandler *api.WizardHandler,
	bookingHandler *api.BookingHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	approver := []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(operator.RoleApprover)}

	apiGroup := engine.Group("/api")
	{
		bookings := apiGroup.Group("/company/bookings/:id")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodGet, Path: "/summary", Handler: bookingHandler.Summary},

				{Method: http.MethodGet, Path: "/wizard", Handler: wizardHandler.Enter},
				{Method: http.MethodDelete, Path: "/wizard", Handler: wizardHandler.Close},
				{Method: http.MethodGet, Path: "/wizard/guard", Handler: wizardHandler.Guard},
				{Method: http.MethodPost, Path: "/wizard/back", Handler: wizardHandler.Back},
				{Method: http.MethodPost, Path: "/wizard/goto", Handler: wizardHandler.GoTo},
				{Method: http.MethodPost, Path: "/wizard/leave", Handler: wizardHandler.Leave},
				{Method: http.MethodPost, Path: "/wizard/leave/confirm", Handler: wizardHandler.ConfirmLeave},
				{Method: http.MethodPost, Path: "/wizard/leave/cancel", Handler: wizardHandler.CancelLeave},
				{Method: http.MethodGet, Path: "/completion", Handler: wizardHandler.Completion},

				{Method: http.MethodPost, Path: "/wizard/approve", Handler: wizardHandler.Approve, Mw: approver},
				{Method: http.MethodPost, Path: "/wizard/reject", Handler: wizardHandler.Reject, Mw: approver},
				{Method: http.MethodPost, Path: "/wizard/request-update", Handler: wizardHandler.RequestUpdate, Mw: approver},
				{Method: http.MethodPut, Path: "/wizard/insurance", Handler: wizardHandler.StageInsurance, Mw: approver},
				{Method: http.MethodPost, Path: "/wizard/complete-guests", Handler: wizardHandler.CompleteGuests, Mw: approver},
				{Method: http.MethodPost, Path: "/wizard/finish", Handler: wizardHandler.Finish, Mw: approver},
				{Method: http.MethodPost, Path: "/completion/confirm", Handler: wizardHandler.ConfirmCompletion, Mw: approver},
				{Method: http.MethodPost, Path: "/complaint", Handler: wizardHandler.Complaint, Mw: approver},
			})
		}
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
