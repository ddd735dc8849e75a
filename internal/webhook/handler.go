package webhook

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/careflow-uk/fostermatch/internal/email"
	"github.com/careflow-uk/fostermatch/internal/entity"
)

type handler struct {
	queue  Enqueuer
	health HealthChecker
	logger *slog.Logger
}

func (h *handler) sendgrid(c *gin.Context) {
	mail, err := email.ParseSendGrid(c.Request)
	if err != nil {
		h.logger.Warn("rejected sendgrid payload", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.accept(c, mail)
}

func (h *handler) mailgun(c *gin.Context) {
	mail, err := email.ParseMailgun(c.Request)
	if err != nil {
		h.logger.Warn("rejected mailgun payload", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.accept(c, mail)
}

// accept rejects mails with no referral form up front so the provider gets
// immediate feedback, then queues the rest for the ingestion workers.
func (h *handler) accept(c *gin.Context, mail *entity.ParsedEmail) {
	hasPDF := false
	for _, att := range mail.Attachments {
		if email.IsPDF(att) {
			hasPDF = true
			break
		}
	}
	if !hasPDF {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "no pdf attachment"})
		return
	}

	if err := h.queue.Enqueue(mail); err != nil {
		h.logger.Error("failed to queue email", "message_id", mail.MessageID, "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "ingestion queue unavailable"})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"messageId": mail.MessageID})
}
