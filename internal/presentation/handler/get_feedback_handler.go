package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"yapback/internal/domain/dto"
	"yapback/internal/domain/repository/database"
	"yapback/internal/presentation"
)

// GetFeedbackHandler serves a stored submission back by id so local
// integrations can inspect what the backend persisted.
type GetFeedbackHandler struct {
	retriever database.Retriever
}

func NewGetFeedbackHandler(retriever database.Retriever) *GetFeedbackHandler {
	return &GetFeedbackHandler{retriever: retriever}
}

func (h *GetFeedbackHandler) Handle(c echo.Context) error {
	id := c.Param(presentation.IDParam)
	if id == "" {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "missing feedback id"})
	}

	record, err := h.retriever.GetByID(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "feedback not found"})
	}

	return c.JSON(http.StatusOK, record)
}
