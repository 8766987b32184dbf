package database

import (
	"context"

	"yapback/internal/domain/model"
)

type Retriever interface {
	GetByID(ctx context.Context, id string) (*model.FeedbackRecord, error)
}
