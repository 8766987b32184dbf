package model

import "strings"

// Attachment is a single media file proposed for inclusion with a feedback
// submission. It is immutable once constructed; validation and upload only
// read from it.
type Attachment struct {
	ID       string
	FileName string
	MimeType string
	Data     []byte
	Width    int
	Height   int
	Duration *float64 // seconds, set for videos only
}

func (a *Attachment) Size() int64 {
	return int64(len(a.Data))
}

func (a *Attachment) IsVideo() bool {
	return strings.HasPrefix(a.MimeType, "video/")
}

func (a *Attachment) IsImage() bool {
	return strings.HasPrefix(a.MimeType, "image/")
}
