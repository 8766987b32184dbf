package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/dezh-tech/immortal/pkg/logger"

	"yapback"
	"yapback/config"
	"yapback/internal/domain/entity"
	"yapback/internal/domain/model"
)

// HandleSend submits one feedback message from the command line, attaching
// any files passed after the message.
func HandleSend(args []string) {
	if len(args) < 4 {
		ExitOnError(errors.New("expected: send <config.yml> <message> [file...]"))
	}

	cfg, err := config.Load(args[2])
	if err != nil {
		ExitOnError(err)
	}

	logger.InitGlobalLogger(&cfg.Logger)

	message := strings.TrimSpace(args[3])
	if message == "" {
		ExitOnError(errors.New("message must not be empty"))
	}

	client := yapback.New(cfg)
	ctx := context.Background()

	attachments := make([]*model.Attachment, 0, len(args[4:]))
	for _, path := range args[4:] {
		attachment, err := loadAttachment(ctx, client, path)
		if err != nil {
			ExitOnError(err)
		}
		attachments = append(attachments, attachment)
	}

	submissions, err := client.UploadAttachments(ctx, attachments, func(p entity.UploadProgress) {
		logger.Info("upload progress",
			"file", p.Index+1,
			"of", p.TotalCount,
			"bytes", p.BytesUploaded,
			"total", p.TotalBytes,
			"overall", fmt.Sprintf("%.0f%%", p.Overall()*100))
	})
	if err != nil {
		ExitOnError(err)
	}

	result, err := client.SubmitFeedback(ctx, model.FeedbackDraft{
		Message:     message,
		DeviceInfo:  cliDeviceInfo(),
		Attachments: submissions,
	})
	if err != nil {
		ExitOnError(err)
	}

	logger.Info("feedback submitted", "id", result.FeedbackID, "issue", result.GithubIssue)
}

func loadAttachment(ctx context.Context, client *yapback.Client, path string) (*model.Attachment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read %s: %w", path, err)
	}

	fileName := filepath.Base(path)
	detected := mimetype.Detect(data).String()

	if strings.HasPrefix(detected, "video/") {
		return client.NewVideoAttachment(ctx, fileName, detected, data)
	}

	return client.NewImageAttachment(fileName, data), nil
}

func cliDeviceInfo() model.DeviceInfo {
	return model.DeviceInfo{
		Model:      "cli",
		OSVersion:  runtime.GOOS + "/" + runtime.GOARCH,
		AppVersion: yapback.StringVersion(),
		Locale:     os.Getenv("LANG"),
	}
}
