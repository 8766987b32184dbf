package dto

import (
	"yapback/internal/domain/entity"
	"yapback/internal/domain/model"
)

// FeedbackRequest is the wire form of a submission. Attachments is omitted
// entirely when the submission carries none; both shapes are valid.
type FeedbackRequest struct {
	Type        string                        `json:"type,omitempty"`
	Message     string                        `json:"message"`
	Email       string                        `json:"email,omitempty"`
	DeviceInfo  model.DeviceInfo              `json:"deviceInfo"`
	Attachments []entity.AttachmentSubmission `json:"attachments,omitempty"`
}

type FeedbackResponse struct {
	Success     bool    `json:"success"`
	FeedbackID  string  `json:"feedbackId"`
	GithubIssue *string `json:"githubIssue"`
}
