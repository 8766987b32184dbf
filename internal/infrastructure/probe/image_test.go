package probe

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// onePixelPNG is a valid 1x1 PNG, so dimension decoding can be exercised
// without fixture files.
const onePixelPNG = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mP8z8BQDwAEhQGAhKmMIQAAAABJRU5ErkJggg=="

func TestDetectSignatures(t *testing.T) {
	prober := NewImageProber()

	tests := []struct {
		name     string
		data     []byte
		wantMime string
	}{
		{
			name:     "jpeg",
			data:     []byte{0xFF, 0xD8, 0xFF, 0xE0},
			wantMime: "image/jpeg",
		},
		{
			name:     "png",
			data:     []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A},
			wantMime: "image/png",
		},
		{
			name:     "heic",
			data:     []byte{0x00, 0x00, 0x00, 0x18, 'f', 't', 'y', 'p', 'h', 'e', 'i', 'c'},
			wantMime: "image/heic",
		},
		{
			name:     "webp",
			data:     append([]byte("RIFF"), 0x10, 0x00, 0x00, 0x00, 'W', 'E', 'B', 'P'),
			wantMime: "image/webp",
		},
		{
			name:     "unknown falls back to jpeg",
			data:     []byte("plain text, not an image"),
			wantMime: "image/jpeg",
		},
		{
			name:     "empty falls back to jpeg",
			data:     nil,
			wantMime: "image/jpeg",
		},
		{
			name:     "short ftyp prefix is not heic",
			data:     []byte{0x00, 0x00, 0x00, 0x18, 'f', 't', 'y', 'p'},
			wantMime: "image/jpeg",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mime, width, height := prober.Detect(tc.data)

			assert.Equal(t, tc.wantMime, mime)
			// Signature-only payloads never decode.
			assert.Zero(t, width)
			assert.Zero(t, height)
		})
	}
}

func TestDetectDecodesDimensions(t *testing.T) {
	data, err := base64.StdEncoding.DecodeString(onePixelPNG)
	require.NoError(t, err)

	mime, width, height := NewImageProber().Detect(data)

	assert.Equal(t, "image/png", mime)
	assert.Equal(t, 1, width)
	assert.Equal(t, 1, height)
}
