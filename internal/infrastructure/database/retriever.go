package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"yapback/internal/domain/model"
)

type FeedbackRetriever struct {
	db *Database
}

func NewFeedbackRetriever(db *Database) *FeedbackRetriever {
	return &FeedbackRetriever{db: db}
}

func (r *FeedbackRetriever) GetByID(ctx context.Context, id string) (*model.FeedbackRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	coll := r.db.Client.Database(r.db.DBName).Collection(FeedbackCollection)

	var record model.FeedbackRecord
	if err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&record); err != nil {
		return nil, err
	}

	return &record, nil
}
