package usecase

import (
	"errors"
	"fmt"
)

// Validation errors. All of them are detected locally, before any network
// call is made.

type TooManyAttachmentsError struct {
	Max int
}

func (e *TooManyAttachmentsError) Error() string {
	return fmt.Sprintf("too many attachments: at most %d are allowed", e.Max)
}

type UnsupportedFileTypeError struct {
	FileName string
	MimeType string
}

func (e *UnsupportedFileTypeError) Error() string {
	return fmt.Sprintf("%s has unsupported file type %s", e.FileName, e.MimeType)
}

type FileTooLargeError struct {
	FileName string
	MaxSize  int64
}

func (e *FileTooLargeError) Error() string {
	return fmt.Sprintf("%s is too large: the maximum size is %.0f MB", e.FileName, float64(e.MaxSize)/(1024*1024))
}

type VideoDurationTooLongError struct {
	FileName    string
	MaxDuration float64
}

func (e *VideoDurationTooLongError) Error() string {
	return fmt.Sprintf("%s is too long: the maximum duration is %.0f seconds", e.FileName, e.MaxDuration)
}

// Upload errors.

type FailedToGetUploadURLsError struct {
	Detail string
}

func (e *FailedToGetUploadURLsError) Error() string {
	return fmt.Sprintf("failed to get upload URLs: %s", e.Detail)
}

type UploadFailedError struct {
	FileName   string
	StatusCode int
}

func (e *UploadFailedError) Error() string {
	return fmt.Sprintf("upload of %s failed with status %d", e.FileName, e.StatusCode)
}

// Submission errors.

type ServerError struct {
	Message string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error: %s", e.Message)
}

type HTTPError struct {
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("server returned HTTP %d", e.StatusCode)
}

var (
	// ErrInvalidResponse means the transport yielded no well-formed HTTP
	// response at all.
	ErrInvalidResponse = errors.New("invalid response")

	// ErrDecoding means a success response body did not match the expected
	// shape.
	ErrDecoding = errors.New("could not decode server response")
)
