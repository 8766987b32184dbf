package usecase

import (
	"math"

	"yapback/internal/domain/model"
)

// Validator applies the attachment limits policy. It is a pure function over
// immutable inputs; the first violation wins and no network is involved.
type Validator struct {
	limits model.AttachmentLimits
}

func NewValidator(limits model.AttachmentLimits) *Validator {
	if limits.IsZero() {
		limits = model.DefaultLimits()
	}

	return &Validator{limits: limits}
}

func (v *Validator) Limits() model.AttachmentLimits {
	return v.limits
}

// Validate checks the batch in order: count first, then per attachment the
// MIME allow-list, the size limit for its kind, and for videos the duration.
func (v *Validator) Validate(attachments []*model.Attachment) error {
	if len(attachments) > v.limits.MaxAttachments {
		return &TooManyAttachmentsError{Max: v.limits.MaxAttachments}
	}

	for _, a := range attachments {
		if !v.limits.Allows(a.MimeType) {
			return &UnsupportedFileTypeError{FileName: a.FileName, MimeType: a.MimeType}
		}

		if maxSize := v.limits.MaxSizeFor(a); a.Size() > maxSize {
			return &FileTooLargeError{FileName: a.FileName, MaxSize: maxSize}
		}

		if a.IsVideo() {
			d := a.Duration
			if d == nil || math.IsNaN(*d) || math.IsInf(*d, 0) || *d < 0 || *d > v.limits.MaxVideoDuration {
				return &VideoDurationTooLongError{FileName: a.FileName, MaxDuration: v.limits.MaxVideoDuration}
			}
		}
	}

	return nil
}
