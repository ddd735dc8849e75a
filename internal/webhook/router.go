// Package webhook exposes the inbound-email HTTP endpoints. Providers post
// their webhook payloads here; parsing is synchronous, the ingestion pipeline
// itself runs on the worker queue.
package webhook

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/careflow-uk/fostermatch/internal/entity"
)

// Enqueuer hands a parsed email to the ingestion workers.
type Enqueuer interface {
	Enqueue(mail *entity.ParsedEmail) error
}

// HealthChecker reports backing-store health for /healthz.
type HealthChecker func(ctx *gin.Context) error

// NewRouter wires the webhook endpoints.
func NewRouter(logger *slog.Logger, queue Enqueuer, health HealthChecker) *gin.Engine {
	if logger == nil {
		logger = slog.Default()
	}
	h := &handler{queue: queue, health: health, logger: logger}

	r := gin.New()
	r.Use(slogMiddleware(logger), gin.Recovery())

	r.POST("/webhook/sendgrid", h.sendgrid)
	r.POST("/webhook/mailgun", h.mailgun)
	r.GET("/healthz", h.healthz)

	return r
}

func slogMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}

func (h *handler) healthz(c *gin.Context) {
	if h.health != nil {
		if err := h.health(c); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
