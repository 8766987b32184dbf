package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const FeedbackCollection = "feedback"

type Config struct {
	URI               string
	DBName            string `yaml:"db_name"`
	ConnectionTimeout int64  `yaml:"connection_timeout_in_ms"`
	QueryTimeout      int64  `yaml:"query_timeout_in_ms"`
}

type Database struct {
	DBName       string
	QueryTimeout time.Duration
	Client       *mongo.Client
}

func Connect(cfg Config) (*Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ConnectionTimeout)*time.Millisecond)
	defer cancel()

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(cfg.URI).
		SetServerAPIOptions(serverAPI).
		SetConnectTimeout(time.Duration(cfg.ConnectionTimeout) * time.Millisecond).
		SetBSONOptions(&options.BSONOptions{
			UseJSONStructTags: true,
			NilSliceAsEmpty:   true,
		})

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	qCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.QueryTimeout)*time.Millisecond)
	defer cancel()

	if err := client.Ping(qCtx, nil); err != nil {
		return nil, err
	}

	db := &Database{
		Client:       client,
		DBName:       cfg.DBName,
		QueryTimeout: time.Duration(cfg.QueryTimeout) * time.Millisecond,
	}

	if err := initFeedbackCollection(db); err != nil {
		return nil, err
	}

	return db, nil
}

func initFeedbackCollection(db *Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), db.QueryTimeout)
	defer cancel()

	collections, err := db.Client.Database(db.DBName).ListCollectionNames(ctx, bson.M{"name": FeedbackCollection})
	if err != nil {
		return err
	}
	if len(collections) > 0 {
		return nil // already exists
	}

	collOpts := options.CreateCollection().SetValidator(bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": []string{"_id", "message", "createdAt"},
			"properties": bson.M{
				"_id":     bson.M{"bsonType": "string"},
				"type":    bson.M{"bsonType": "string"},
				"message": bson.M{"bsonType": "string", "minLength": 1},
				"email":   bson.M{"bsonType": "string"},
				"deviceInfo": bson.M{
					"bsonType": "object",
					"properties": bson.M{
						"model":       bson.M{"bsonType": "string"},
						"osVersion":   bson.M{"bsonType": "string"},
						"appVersion":  bson.M{"bsonType": "string"},
						"buildNumber": bson.M{"bsonType": "string"},
						"locale":      bson.M{"bsonType": "string"},
					},
				},
				"attachments": bson.M{
					"bsonType": "array",
					"items": bson.M{
						"bsonType": "object",
						"required": []string{"storagePath", "fileName", "mimeType"},
						"properties": bson.M{
							"storagePath":     bson.M{"bsonType": "string"},
							"fileName":        bson.M{"bsonType": "string"},
							"mimeType":        bson.M{"bsonType": "string"},
							"fileSize":        bson.M{"bsonType": "long"},
							"width":           bson.M{"bsonType": "int"},
							"height":          bson.M{"bsonType": "int"},
							"durationSeconds": bson.M{"bsonType": []string{"double", "null"}},
						},
					},
				},
				"createdAt": bson.M{"bsonType": "date"},
			},
		},
	})

	err = db.Client.Database(db.DBName).CreateCollection(ctx, FeedbackCollection, collOpts)
	if err != nil {
		return err
	}
	coll := db.Client.Database(db.DBName).Collection(FeedbackCollection)
	_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "createdAt", Value: 1}},
	})

	return err
}

func (db *Database) Stop() error {
	if err := db.Client.Disconnect(context.Background()); err != nil {
		return err
	}

	return nil
}
