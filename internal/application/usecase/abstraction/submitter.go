package abstraction

import (
	"context"

	"yapback/internal/domain/entity"
	"yapback/internal/domain/model"
)

type Submitter interface {
	Submit(ctx context.Context, draft model.FeedbackDraft) (*entity.FeedbackResult, error)
}
