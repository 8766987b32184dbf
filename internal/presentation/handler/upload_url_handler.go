package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/dezh-tech/immortal/pkg/logger"

	"yapback/internal/domain/dto"
	"yapback/internal/domain/model"
	"yapback/internal/domain/repository/storage"
	"yapback/pkg/utils"
)

// UploadURLHandler issues one single-use upload slot per requested
// attachment, enforcing the same limits policy the SDK applies client-side.
type UploadURLHandler struct {
	signer storage.SlotSigner
	limits model.AttachmentLimits
}

func NewUploadURLHandler(signer storage.SlotSigner, limits model.AttachmentLimits) *UploadURLHandler {
	return &UploadURLHandler{
		signer: signer,
		limits: limits,
	}
}

func (h *UploadURLHandler) Handle(c echo.Context) error {
	var req dto.UploadURLRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
	}

	if reason := h.checkLimits(req.Attachments); reason != "" {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: reason})
	}

	uploadURLs := make([]dto.UploadURL, 0, len(req.Attachments))
	for _, a := range req.Attachments {
		storagePath := "feedback/" + uuid.NewString() + utils.GetExtensionFromMimeType(a.MimeType)

		signedURL, err := h.signer.Sign(c.Request().Context(), storagePath, a.MimeType, a.FileSize)
		if err != nil {
			logger.Error("failed to sign upload slot", "path", storagePath, "err", err)

			return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "could not issue upload URLs"})
		}

		uploadURLs = append(uploadURLs, dto.UploadURL{
			StoragePath: storagePath,
			SignedURL:   signedURL,
			Token:       uuid.NewString(),
		})
	}

	return c.JSON(http.StatusOK, dto.UploadURLResponse{
		Success:    true,
		UploadURLs: uploadURLs,
		Limits: dto.LimitsInfo{
			MaxImageSize:     h.limits.MaxImageSize,
			MaxVideoSize:     h.limits.MaxVideoSize,
			MaxVideoDuration: h.limits.MaxVideoDuration,
			MaxAttachments:   h.limits.MaxAttachments,
		},
	})
}

func (h *UploadURLHandler) checkLimits(attachments []dto.AttachmentDescriptor) string {
	if len(attachments) == 0 {
		return "no attachments requested"
	}
	if len(attachments) > h.limits.MaxAttachments {
		return fmt.Sprintf("too many attachments: at most %d are allowed", h.limits.MaxAttachments)
	}

	for _, a := range attachments {
		if !h.limits.Allows(a.MimeType) {
			return fmt.Sprintf("unsupported file type %s for %s", a.MimeType, a.FileName)
		}

		maxSize := h.limits.MaxImageSize
		if strings.HasPrefix(a.MimeType, "video/") {
			maxSize = h.limits.MaxVideoSize
		}
		if a.FileSize > maxSize {
			return fmt.Sprintf("%s exceeds the maximum size of %d bytes", a.FileName, maxSize)
		}

		if strings.HasPrefix(a.MimeType, "video/") {
			if a.DurationSeconds == nil || *a.DurationSeconds > h.limits.MaxVideoDuration {
				return fmt.Sprintf("%s exceeds the maximum duration of %.0f seconds", a.FileName, h.limits.MaxVideoDuration)
			}
		}
	}

	return ""
}
