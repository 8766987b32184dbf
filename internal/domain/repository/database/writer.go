package database

import (
	"context"

	"yapback/internal/domain/model"
)

type Writer interface {
	Write(ctx context.Context, record *model.FeedbackRecord) error
}
