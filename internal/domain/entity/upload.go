package entity

// UploadSlot is a server-issued, single-use destination for one attachment's
// bytes. Slot i always corresponds to attachment i of the batch request.
type UploadSlot struct {
	StoragePath string
	SignedURL   string
	Token       string
}

// AttachmentSubmission describes an uploaded attachment the way the feedback
// endpoint expects it: the server-assigned storage path plus the descriptive
// metadata of the original attachment, minus the raw bytes.
type AttachmentSubmission struct {
	StoragePath     string   `json:"storagePath"`
	FileName        string   `json:"fileName"`
	MimeType        string   `json:"mimeType"`
	FileSize        int64    `json:"fileSize"`
	Width           int      `json:"width,omitempty"`
	Height          int      `json:"height,omitempty"`
	DurationSeconds *float64 `json:"durationSeconds,omitempty"`
}
