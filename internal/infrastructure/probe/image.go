package probe

import (
	"bytes"
	"image"

	// Registered so image.DecodeConfig can read dimensions from the formats
	// the allow-list accepts. HEIC has no stdlib decoder; its dimensions
	// degrade to zero.
	_ "image/jpeg"
	_ "image/png"
)

// ImageProber classifies image payloads by binary signature and reads their
// pixel dimensions. Dimensions are advisory metadata: a payload that fails
// to decode still yields a usable result with zero width and height.
type ImageProber struct{}

func NewImageProber() *ImageProber {
	return &ImageProber{}
}

// Detect returns the payload's MIME type and dimensions. Unknown signatures
// fall back to image/jpeg.
func (p *ImageProber) Detect(data []byte) (string, int, int) {
	mimeType := sniffImageMime(data)

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return mimeType, 0, 0
	}

	return mimeType, cfg.Width, cfg.Height
}

func sniffImageMime(data []byte) string {
	switch {
	case len(data) >= 3 && data[0] == 0xFF && data[1] == 0xD8 && data[2] == 0xFF:
		return "image/jpeg"
	case len(data) >= 4 && data[0] == 0x89 && data[1] == 0x50 && data[2] == 0x4E && data[3] == 0x47:
		return "image/png"
	case len(data) >= 12 && bytes.Equal(data[4:8], []byte("ftyp")):
		return "image/heic"
	case len(data) >= 12 && bytes.Equal(data[0:4], []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WEBP")):
		return "image/webp"
	default:
		return "image/jpeg"
	}
}
