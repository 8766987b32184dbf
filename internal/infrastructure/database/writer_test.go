package database

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/mongo"

	"yapback/internal/domain/entity"
	"yapback/internal/domain/model"
)

const (
	TestUsername = "testuser"
	TestPassword = "testpass"
	TestDBName   = "testdb"
)

func setupMongo(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "mongo:latest",
		ExposedPorts: []string{"27017/tcp"},
		Env: map[string]string{
			"MONGO_INITDB_ROOT_USERNAME": TestUsername,
			"MONGO_INITDB_ROOT_PASSWORD": TestPassword,
		},
		WaitingFor: wait.ForLog("Waiting for connections").WithStartupTimeout(30 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatal("Failed to start MongoDB container:", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatal("Failed to get container host:", err)
	}

	port, err := container.MappedPort(ctx, "27017")
	if err != nil {
		t.Fatal("Failed to get mapped port:", err)
	}

	hostPort := net.JoinHostPort(host, port.Port())

	return fmt.Sprintf("mongodb://%s:%s@%s", TestUsername, TestPassword, hostPort)
}

func baseRecord() *model.FeedbackRecord {
	return &model.FeedbackRecord{
		ID:      "a4f6c2ee-1f0e-4a5c-9d3e-5b8f2c7a1d00",
		Type:    string(model.FeedbackCrash),
		Message: "crashes on rotate",
		Email:   "reporter@example.com",
		DeviceInfo: model.DeviceInfo{
			Model:      "Pixel 8",
			OSVersion:  "14",
			AppVersion: "2.3.1",
		},
		Attachments: []entity.AttachmentSubmission{
			{
				StoragePath: "feedback/a4f6c2ee.png",
				FileName:    "crash.png",
				MimeType:    "image/png",
				FileSize:    1024,
				Width:       800,
				Height:      600,
			},
		},
		CreatedAt: time.Now(),
	}
}

func TestWrite(t *testing.T) {
	t.Parallel()
	uri := setupMongo(t)

	db, err := Connect(Config{
		URI:               uri,
		DBName:            TestDBName,
		ConnectionTimeout: 30000,
		QueryTimeout:      30000,
	})
	require.NoError(t, err)

	writer := NewFeedbackWriter(db)

	tests := []struct {
		name        string
		modify      func(r *model.FeedbackRecord)
		expectError string
	}{
		{
			name:        "valid record",
			modify:      func(_ *model.FeedbackRecord) {},
			expectError: "",
		},
		{
			name: "empty message",
			modify: func(r *model.FeedbackRecord) {
				r.ID = "b0000000-0000-0000-0000-000000000001"
				r.Message = ""
			},
			expectError: "Document failed validation",
		},
		{
			name: "blank attachment fields still accepted",
			modify: func(r *model.FeedbackRecord) {
				r.ID = "b0000000-0000-0000-0000-000000000002"
				r.Attachments[0].StoragePath = ""
				r.Attachments[0].MimeType = ""
			},
			expectError: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := baseRecord()
			tt.modify(record)

			err := writer.Write(context.Background(), record)

			if tt.expectError == "" {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.Contains(t, err.Error(), tt.expectError)
			}
		})
	}
}

func TestWriteThenGetByID(t *testing.T) {
	t.Parallel()
	uri := setupMongo(t)

	db, err := Connect(Config{
		URI:               uri,
		DBName:            TestDBName,
		ConnectionTimeout: 30000,
		QueryTimeout:      30000,
	})
	require.NoError(t, err)

	writer := NewFeedbackWriter(db)
	retriever := NewFeedbackRetriever(db)

	record := baseRecord()
	require.NoError(t, writer.Write(context.Background(), record))

	got, err := retriever.GetByID(context.Background(), record.ID)
	require.NoError(t, err)

	require.Equal(t, record.ID, got.ID)
	require.Equal(t, record.Message, got.Message)
	require.Equal(t, record.Type, got.Type)
	require.Equal(t, record.DeviceInfo, got.DeviceInfo)
	require.Len(t, got.Attachments, 1)
	require.Equal(t, record.Attachments[0].StoragePath, got.Attachments[0].StoragePath)

	_, err = retriever.GetByID(context.Background(), "missing-id")
	require.ErrorIs(t, err, mongo.ErrNoDocuments)
}
