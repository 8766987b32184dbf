package probe

import "context"

// VideoMetadata is the raw result of probing a video payload. Width, Height
// and FileSize are best-effort and default to 0 when the prober cannot
// supply them.
type VideoMetadata struct {
	DurationSeconds float64
	Width           int
	Height          int
	FileSize        int64
}

// VideoProber extracts duration and dimensions from raw video bytes,
// typically by delegating to a platform media decoder.
type VideoProber interface {
	Probe(ctx context.Context, data []byte) (VideoMetadata, error)
}
