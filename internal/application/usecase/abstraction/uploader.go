package abstraction

import (
	"context"

	"yapback/internal/domain/entity"
	"yapback/internal/domain/model"
)

type Uploader interface {
	Upload(ctx context.Context, attachments []*model.Attachment,
		progress entity.ProgressFunc) ([]entity.AttachmentSubmission, error)
}
