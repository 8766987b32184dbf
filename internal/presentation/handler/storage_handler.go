package handler

import (
	"io"
	"net/http"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/labstack/echo/v4"

	"yapback/internal/domain/dto"
	"yapback/internal/domain/repository/storage"
	"yapback/internal/presentation"
)

// StorageHandler is the local slot target used when no object store is
// configured: signed URLs point back at PUT /storage/:path.
type StorageHandler struct {
	store storage.BlobStore
}

func NewStorageHandler(store storage.BlobStore) *StorageHandler {
	return &StorageHandler{store: store}
}

func (h *StorageHandler) Handle(c echo.Context) error {
	storagePath := c.Param(presentation.PathParam) // wildcard keeps the feedback/ prefix
	if storagePath == "" {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "missing storage path"})
	}

	body, err := io.ReadAll(c.Request().Body)
	if err != nil || len(body) == 0 {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "empty body"})
	}

	declared := c.Request().Header.Get(presentation.TypeKey)
	detected := mimetype.Detect(body).String()
	if declared != "" && !strings.Contains(detected, declared) && !strings.Contains(declared, detected) {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "content does not match declared type"})
	}

	if err := h.store.Put(storagePath, declared, body); err != nil {
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "could not store file"})
	}

	return c.NoContent(http.StatusOK)
}
