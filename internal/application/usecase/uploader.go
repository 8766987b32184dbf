package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"yapback/internal/domain/dto"
	"yapback/internal/domain/entity"
	"yapback/internal/domain/model"
	"yapback/internal/domain/repository/transport"
)

const uploadURLPath = "api/feedback/upload-url"

// Uploader orchestrates the two-phase attachment upload: one batched request
// for signed slots, then one PUT per attachment, in strict input order. All
// per-call state is local, so concurrent Upload calls need no locking.
type Uploader struct {
	requester transport.Requester
	validator *Validator
	baseURL   string
	apiKey    string
}

func NewUploader(requester transport.Requester, validator *Validator, baseURL, apiKey string) *Uploader {
	return &Uploader{
		requester: requester,
		validator: validator,
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		apiKey:    apiKey,
	}
}

// Upload validates the batch, requests one slot per attachment and pushes
// each file's bytes to its signed URL. Progress events are emitted at the
// start and completion of every file. The first failure aborts the whole
// batch; bytes already pushed stay in storage since the API has no
// compensating delete.
func (u *Uploader) Upload(ctx context.Context, attachments []*model.Attachment,
	progress entity.ProgressFunc,
) ([]entity.AttachmentSubmission, error) {
	if len(attachments) == 0 {
		return []entity.AttachmentSubmission{}, nil
	}

	if err := u.validator.Validate(attachments); err != nil {
		return nil, err
	}

	slots, err := u.requestSlots(ctx, attachments)
	if err != nil {
		return nil, err
	}

	submissions := make([]entity.AttachmentSubmission, 0, len(attachments))
	for i, a := range attachments {
		report(progress, entity.UploadProgress{
			Index:      i,
			TotalCount: len(attachments),
			TotalBytes: a.Size(),
		})

		if err := u.put(ctx, slots[i], a); err != nil {
			return nil, err
		}

		report(progress, entity.UploadProgress{
			Index:         i,
			TotalCount:    len(attachments),
			BytesUploaded: a.Size(),
			TotalBytes:    a.Size(),
		})

		submissions = append(submissions, entity.AttachmentSubmission{
			StoragePath:     slots[i].StoragePath,
			FileName:        a.FileName,
			MimeType:        a.MimeType,
			FileSize:        a.Size(),
			Width:           a.Width,
			Height:          a.Height,
			DurationSeconds: a.Duration,
		})
	}

	return submissions, nil
}

func (u *Uploader) requestSlots(ctx context.Context, attachments []*model.Attachment) ([]entity.UploadSlot, error) {
	descriptors := make([]dto.AttachmentDescriptor, 0, len(attachments))
	for _, a := range attachments {
		descriptors = append(descriptors, dto.AttachmentDescriptor{
			FileName:        a.FileName,
			FileSize:        a.Size(),
			MimeType:        a.MimeType,
			Width:           a.Width,
			Height:          a.Height,
			DurationSeconds: a.Duration,
		})
	}

	body, err := json.Marshal(dto.UploadURLRequest{Attachments: descriptors})
	if err != nil {
		return nil, &FailedToGetUploadURLsError{Detail: "Invalid response"}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		u.baseURL+"/"+uploadURLPath, bytes.NewReader(body))
	if err != nil {
		return nil, &FailedToGetUploadURLsError{Detail: "Invalid response"}
	}
	req.Header.Set("Authorization", "Bearer "+u.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := u.requester.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		return nil, &FailedToGetUploadURLsError{Detail: "Invalid response"}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FailedToGetUploadURLsError{Detail: "Invalid response"}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FailedToGetUploadURLsError{Detail: errorDetail(raw, resp.StatusCode)}
	}

	var decoded dto.UploadURLResponse
	if err := json.Unmarshal(raw, &decoded); err != nil || len(decoded.UploadURLs) != len(attachments) {
		return nil, &FailedToGetUploadURLsError{Detail: "Invalid response"}
	}

	slots := make([]entity.UploadSlot, 0, len(decoded.UploadURLs))
	for _, slot := range decoded.UploadURLs {
		slots = append(slots, entity.UploadSlot{
			StoragePath: slot.StoragePath,
			SignedURL:   slot.SignedURL,
			Token:       slot.Token,
		})
	}

	return slots, nil
}

// put pushes the attachment's bytes to the slot's signed URL. The URL is
// authoritative; nothing is appended or rewritten.
func (u *Uploader) put(ctx context.Context, slot entity.UploadSlot, a *model.Attachment) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, slot.SignedURL, bytes.NewReader(a.Data))
	if err != nil {
		return &UploadFailedError{FileName: a.FileName}
	}
	req.Header.Set("Content-Type", a.MimeType)
	req.ContentLength = a.Size()

	resp, err := u.requester.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		return &UploadFailedError{FileName: a.FileName}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &UploadFailedError{FileName: a.FileName, StatusCode: resp.StatusCode}
	}

	return nil
}

// errorDetail extracts the server's reported message, falling back to the
// literal HTTP status.
func errorDetail(raw []byte, statusCode int) string {
	var errResp dto.ErrorResponse
	if err := json.Unmarshal(raw, &errResp); err == nil && errResp.Error != "" {
		return errResp.Error
	}

	return fmt.Sprintf("HTTP %d", statusCode)
}

func report(progress entity.ProgressFunc, event entity.UploadProgress) {
	if progress != nil {
		progress(event)
	}
}
