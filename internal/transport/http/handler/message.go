package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/aselbek/jobboard/internal/domain"
	"github.com/aselbek/jobboard/internal/transport/http/middleware"
	"github.com/aselbek/jobboard/internal/usecase"
	"github.com/gin-gonic/gin"
)

type messageUsecaser interface {
	Send(ctx context.Context, input usecase.SendMessageInput) (*domain.Message, error)
	Thread(ctx context.Context, callerID, otherID string, jobID *string) ([]*domain.Message, error)
	MarkRead(ctx context.Context, callerID, otherID string, jobID *string) error
	Delete(ctx context.Context, callerID, messageID string) error
}

type MessageHandler struct {
	uc     messageUsecaser
	logger *slog.Logger
}

func NewMessageHandler(uc messageUsecaser, logger *slog.Logger) *MessageHandler {
	return &MessageHandler{uc: uc, logger: logger.With("component", "message_handler")}
}

type messageResponse struct {
	ID         string               `json:"id"`
	SenderID   string               `json:"senderId"`
	ReceiverID string               `json:"receiverId"`
	Message    string               `json:"message"`
	JobID      *string              `json:"jobId"`
	Status     domain.MessageStatus `json:"status"`
	Timestamp  time.Time            `json:"timestamp"`
}

func toMessageResponse(m *domain.Message) messageResponse {
	return messageResponse{
		ID:         m.ID,
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		Message:    m.Body,
		JobID:      m.JobID,
		Status:     m.Status,
		Timestamp:  m.SentAt,
	}
}

type sendMessageRequest struct {
	ReceiverID string  `json:"receiverId" binding:"required"`
	Message    string  `json:"message"    binding:"required"`
	JobID      *string `json:"jobId"`
}

// POST /messages
func (h *MessageHandler) Send(c *gin.Context) {
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Receiver and message are required"})
		return
	}

	msg, err := h.uc.Send(c.Request.Context(), usecase.SendMessageInput{
		SenderID:   c.GetString(middleware.CtxUserID),
		ReceiverID: req.ReceiverID,
		Body:       req.Message,
		JobID:      req.JobID,
	})
	if err != nil {
		h.logger.Error("send message", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}
	c.JSON(http.StatusCreated, toMessageResponse(msg))
}

// GET /messages/:userId?jobId=
// Fetching a thread advances incoming "sent" messages to "delivered";
// the 3-second client poll relies on this side effect.
func (h *MessageHandler) Thread(c *gin.Context) {
	otherID := c.Param("userId")
	jobID := optionalQuery(c, "jobId")

	messages, err := h.uc.Thread(c.Request.Context(), c.GetString(middleware.CtxUserID), otherID, jobID)
	if err != nil {
		h.logger.Error("get thread", "other_user_id", otherID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	items := make([]messageResponse, len(messages))
	for i, m := range messages {
		items[i] = toMessageResponse(m)
	}
	c.JSON(http.StatusOK, items)
}

type markReadRequest struct {
	JobID *string `json:"jobId"`
}

// POST /messages/:userId/read
func (h *MessageHandler) MarkRead(c *gin.Context) {
	otherID := c.Param("userId")

	var req markReadRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	if err := h.uc.MarkRead(c.Request.Context(), c.GetString(middleware.CtxUserID), otherID, req.JobID); err != nil {
		h.logger.Error("mark read", "other_user_id", otherID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DELETE /messages/:id
func (h *MessageHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	err := h.uc.Delete(c.Request.Context(), c.GetString(middleware.CtxUserID), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMessageNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": errMessageNotFound})
		case errors.Is(err, domain.ErrNotMessageParty):
			c.JSON(http.StatusForbidden, gin.H{"error": errNotAuthorized})
		default:
			h.logger.Error("delete message", "message_id", id, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Message deleted"})
}

func optionalQuery(c *gin.Context, key string) *string {
	if v := c.Query(key); v != "" {
		return &v
	}
	return nil
}
