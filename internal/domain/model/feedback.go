package model

import (
	"time"

	"yapback/internal/domain/entity"
)

// FeedbackType categorizes a submission. Wire values are fixed by the API.
type FeedbackType string

const (
	FeedbackIncorrectBehavior FeedbackType = "incorrect_behavior"
	FeedbackCrash             FeedbackType = "crash"
	FeedbackSlowUnresponsive  FeedbackType = "slow_unresponsive"
	FeedbackSuggestion        FeedbackType = "suggestion"
)

// DeviceInfo is the device/app snapshot attached to every submission.
// Collecting it is the caller's responsibility; the SDK only transports it.
type DeviceInfo struct {
	Model       string `json:"model"`
	OSVersion   string `json:"osVersion"`
	AppVersion  string `json:"appVersion"`
	BuildNumber string `json:"buildNumber"`
	Locale      string `json:"locale"`
}

// FeedbackDraft is a submission-ready feedback payload. Message is expected
// to be trimmed and non-empty by the caller before handing it over.
type FeedbackDraft struct {
	Type        FeedbackType
	Message     string
	Email       string
	DeviceInfo  DeviceInfo
	Attachments []entity.AttachmentSubmission
}

// FeedbackRecord is the persisted form of an accepted submission.
type FeedbackRecord struct {
	ID          string                        `json:"_id"`
	Type        string                        `json:"type,omitempty"`
	Message     string                        `json:"message"`
	Email       string                        `json:"email,omitempty"`
	DeviceInfo  DeviceInfo                    `json:"deviceInfo"`
	Attachments []entity.AttachmentSubmission `json:"attachments,omitempty"`
	CreatedAt   time.Time                     `json:"createdAt"`
}
