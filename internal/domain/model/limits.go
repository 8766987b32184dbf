package model

import "slices"

// AttachmentLimits holds the policy every attachment batch must satisfy
// before any network call is made. Read-only after construction.
type AttachmentLimits struct {
	MaxImageSize     int64    `yaml:"max_image_size"`
	MaxVideoSize     int64    `yaml:"max_video_size"`
	MaxVideoDuration float64  `yaml:"max_video_duration_seconds"`
	MaxAttachments   int      `yaml:"max_attachments"`
	ImageMimeTypes   []string `yaml:"image_mime_types"`
	VideoMimeTypes   []string `yaml:"video_mime_types"`
}

func DefaultLimits() AttachmentLimits {
	return AttachmentLimits{
		MaxImageSize:     10 * 1024 * 1024,
		MaxVideoSize:     100 * 1024 * 1024,
		MaxVideoDuration: 60,
		MaxAttachments:   5,
		ImageMimeTypes:   []string{"image/jpeg", "image/png", "image/heic", "image/webp"},
		VideoMimeTypes:   []string{"video/mp4", "video/quicktime", "video/webm"},
	}
}

// Allows reports whether the MIME type is in the combined image+video allow-list.
func (l AttachmentLimits) Allows(mimeType string) bool {
	return slices.Contains(l.ImageMimeTypes, mimeType) || slices.Contains(l.VideoMimeTypes, mimeType)
}

// MaxSizeFor returns the byte limit that applies to the attachment:
// the video limit for videos, the image limit otherwise.
func (l AttachmentLimits) MaxSizeFor(a *Attachment) int64 {
	if a.IsVideo() {
		return l.MaxVideoSize
	}

	return l.MaxImageSize
}

// IsZero reports whether no limit field has been set, so callers can fall
// back to DefaultLimits.
func (l AttachmentLimits) IsZero() bool {
	return l.MaxImageSize == 0 && l.MaxVideoSize == 0 && l.MaxVideoDuration == 0 &&
		l.MaxAttachments == 0 && len(l.ImageMimeTypes) == 0 && len(l.VideoMimeTypes) == 0
}
