package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotel-reservations/internal/handler/api"
	"hotel-reservations/internal/handler/middleware"
	"hotel-reservations/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, customerHandler *api.CustomerHandler, hotelHandler *api.HotelHandler, reservationHandler *api.ReservationHandler) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, customerHandler, hotelHandler, reservationHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, customerHandler *api.CustomerHandler, hotelHandler *api.HotelHandler, reservationHandler *api.ReservationHandler) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		customers := apiGroup.Group("/customers")
		{
			addRoutes(customers, []route{
				{Method: http.MethodPost, Path: "", Handler: customerHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: customerHandler.List},
				{Method: http.MethodGet, Path: "/:email", Handler: customerHandler.Get},
				{Method: http.MethodPut, Path: "/:email", Handler: customerHandler.Update},
				{Method: http.MethodDelete, Path: "/:email", Handler: customerHandler.Delete},
			})
		}

		hotels := apiGroup.Group("/hotels")
		{
			addRoutes(hotels, []route{
				{Method: http.MethodPost, Path: "", Handler: hotelHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: hotelHandler.List},
				{Method: http.MethodGet, Path: "/:name", Handler: hotelHandler.Get},
				{Method: http.MethodPut, Path: "/:name", Handler: hotelHandler.Update},
				{Method: http.MethodDelete, Path: "/:name", Handler: hotelHandler.Delete},
				{Method: http.MethodPost, Path: "/:name/rooms", Handler: hotelHandler.AddRoom},
				{Method: http.MethodPost, Path: "/:name/rooms/:number/reserve", Handler: hotelHandler.ReserveRoom},
				{Method: http.MethodPost, Path: "/:name/rooms/:number/cancel", Handler: hotelHandler.CancelReservation},
			})
		}

		reservations := apiGroup.Group("/reservations")
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: reservationHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: reservationHandler.List},
				{Method: http.MethodDelete, Path: "/:id", Handler: reservationHandler.Cancel},
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
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodPatch:
			g.PATCH(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
