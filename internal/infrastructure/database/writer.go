package database

import (
	"context"

	"yapback/internal/domain/model"
)

type FeedbackWriter struct {
	db *Database
}

func NewFeedbackWriter(db *Database) *FeedbackWriter {
	return &FeedbackWriter{db: db}
}

func (w *FeedbackWriter) Write(ctx context.Context, record *model.FeedbackRecord) error {
	ctx, cancel := context.WithTimeout(ctx, w.db.QueryTimeout)
	defer cancel()

	coll := w.db.Client.Database(w.db.DBName).Collection(FeedbackCollection)

	_, err := coll.InsertOne(ctx, record)

	return err
}
