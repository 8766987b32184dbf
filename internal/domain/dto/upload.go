package dto

// AttachmentDescriptor describes one attachment in the batched upload-url
// request: everything the server needs to issue a slot, without the bytes.
type AttachmentDescriptor struct {
	FileName        string   `json:"fileName"`
	FileSize        int64    `json:"fileSize"`
	MimeType        string   `json:"mimeType"`
	Width           int      `json:"width,omitempty"`
	Height          int      `json:"height,omitempty"`
	DurationSeconds *float64 `json:"durationSeconds,omitempty"`
}

type UploadURLRequest struct {
	Attachments []AttachmentDescriptor `json:"attachments"`
}

type UploadURL struct {
	StoragePath string `json:"storagePath"`
	SignedURL   string `json:"signedUrl"`
	Token       string `json:"token"`
}

type LimitsInfo struct {
	MaxImageSize     int64   `json:"maxImageSize"`
	MaxVideoSize     int64   `json:"maxVideoSize"`
	MaxVideoDuration float64 `json:"maxVideoDuration"`
	MaxAttachments   int     `json:"maxAttachments"`
}

type UploadURLResponse struct {
	Success    bool        `json:"success"`
	UploadURLs []UploadURL `json:"uploadUrls"`
	Limits     LimitsInfo  `json:"limits"`
}

// ErrorResponse is the best-effort error body every endpoint may return on
// non-2xx statuses.
type ErrorResponse struct {
	Error string `json:"error"`
}
