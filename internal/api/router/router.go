package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wb-go/wbf/ginext"

	"github.com/aliskhannn/notification-pipeline/internal/api/handlers/delivery"
	"github.com/aliskhannn/notification-pipeline/internal/api/handlers/notification"
	"github.com/aliskhannn/notification-pipeline/internal/api/handlers/preference"
	"github.com/aliskhannn/notification-pipeline/internal/api/handlers/status"
	"github.com/aliskhannn/notification-pipeline/internal/metrics"
	"github.com/aliskhannn/notification-pipeline/internal/middlewares"
)

// Handlers groups the HTTP handlers mounted by New.
type Handlers struct {
	Notification *notification.Handler
	Delivery     *delivery.Handler
	Preference   *preference.Handler
	Status       *status.Handler
}

func New(h Handlers) *ginext.Engine {
	e := ginext.New()
	e.Use(middlewares.CORSMiddleware())
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	e.GET("/healthz", func(c *ginext.Context) {
		c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := e.Group("/api")
	{
		api.POST("/notifications", h.Notification.Create)
		api.GET("/deliveries/:id", h.Delivery.Get)
		api.GET("/users/:id/preferences", h.Preference.Get)
		api.PUT("/users/:id/preferences", h.Preference.Put)
		api.GET("/status/stream", h.Status.Stream)
	}

	return e
}
