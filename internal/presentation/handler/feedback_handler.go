package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/dezh-tech/immortal/pkg/logger"

	"yapback/internal/domain/dto"
	"yapback/internal/domain/model"
	"yapback/internal/domain/repository/broker"
	"yapback/internal/domain/repository/database"
)

// FeedbackHandler persists accepted submissions and notifies the stream.
// GithubIssue is always null from the dev backend; issue creation belongs to
// the hosted service.
type FeedbackHandler struct {
	writer    database.Writer
	publisher broker.Publisher
}

func NewFeedbackHandler(writer database.Writer, publisher broker.Publisher) *FeedbackHandler {
	return &FeedbackHandler{
		writer:    writer,
		publisher: publisher,
	}
}

func (h *FeedbackHandler) Handle(c echo.Context) error {
	var req dto.FeedbackRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
	}

	if strings.TrimSpace(req.Message) == "" {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "message is required"})
	}

	record := &model.FeedbackRecord{
		ID:          uuid.NewString(),
		Type:        req.Type,
		Message:     req.Message,
		Email:       req.Email,
		DeviceInfo:  req.DeviceInfo,
		Attachments: req.Attachments,
		CreatedAt:   time.Now(),
	}

	if err := h.writer.Write(c.Request().Context(), record); err != nil {
		logger.Error("failed to persist feedback", "err", err)

		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "could not store feedback"})
	}

	if h.publisher != nil {
		if err := h.publisher.Publish(c.Request().Context(), record.ID); err != nil {
			// Notification is best-effort; the record is already persisted.
			logger.Error("failed to publish feedback id", "id", record.ID, "err", err)
		}
	}

	return c.JSON(http.StatusOK, dto.FeedbackResponse{
		Success:    true,
		FeedbackID: record.ID,
	})
}
