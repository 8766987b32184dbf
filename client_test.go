package yapback

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yapback/config"
	probeRepository "yapback/internal/domain/repository/probe"
	probeInfra "yapback/internal/infrastructure/probe"
)

func newTestClient(t *testing.T, opts ...Option) *Client {
	t.Helper()

	return New(&config.Config{}, opts...)
}

func TestNewImageAttachment(t *testing.T) {
	client := newTestClient(t)

	a := client.NewImageAttachment("screen.png",
		[]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A})

	assert.NotEmpty(t, a.ID)
	assert.Equal(t, "screen.png", a.FileName)
	assert.Equal(t, "image/png", a.MimeType)
	assert.True(t, a.IsImage())
	assert.False(t, a.IsVideo())
}

func TestNewImageAttachmentUnknownBytesFallBack(t *testing.T) {
	client := newTestClient(t)

	a := client.NewImageAttachment("mystery.bin", []byte("definitely not an image"))

	assert.Equal(t, "image/jpeg", a.MimeType)
	assert.Zero(t, a.Width)
	assert.Zero(t, a.Height)
}

func TestNewVideoAttachment(t *testing.T) {
	prober := &probeInfra.StaticProber{
		Metadata: probeRepository.VideoMetadata{
			DurationSeconds: 12.5,
			Width:           1280,
			Height:          720,
		},
	}
	client := newTestClient(t, WithVideoProber(prober))

	a, err := client.NewVideoAttachment(context.Background(), "clip.mp4", "video/mp4", []byte("payload"))
	require.NoError(t, err)

	assert.Equal(t, "video/mp4", a.MimeType)
	assert.True(t, a.IsVideo())
	assert.Equal(t, 1280, a.Width)
	assert.Equal(t, 720, a.Height)
	require.NotNil(t, a.Duration)
	assert.InDelta(t, 12.5, *a.Duration, 1e-9)
}

func TestNewVideoAttachmentRejectsOverlongDuration(t *testing.T) {
	prober := &probeInfra.StaticProber{
		Metadata: probeRepository.VideoMetadata{DurationSeconds: 61},
	}
	client := newTestClient(t, WithVideoProber(prober))

	_, err := client.NewVideoAttachment(context.Background(), "clip.mp4", "video/mp4", []byte("payload"))

	var tooLong *probeRepository.DurationTooLongError
	require.ErrorAs(t, err, &tooLong)
	assert.Equal(t, float64(61), tooLong.Duration)
	assert.Equal(t, float64(60), tooLong.MaxDuration)
}

func TestNewVideoAttachmentRejectsUnusableDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration float64
	}{
		{name: "NaN", duration: math.NaN()},
		{name: "positive infinity", duration: math.Inf(1)},
		{name: "negative", duration: -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			prober := &probeInfra.StaticProber{
				Metadata: probeRepository.VideoMetadata{DurationSeconds: tc.duration},
			}
			client := newTestClient(t, WithVideoProber(prober))

			_, err := client.NewVideoAttachment(context.Background(), "clip.mp4", "video/mp4", nil)
			require.ErrorIs(t, err, probeRepository.ErrInvalidVideo)
		})
	}
}

func TestNewVideoAttachmentProbeFailure(t *testing.T) {
	prober := &probeInfra.StaticProber{Err: probeRepository.ErrCouldNotLoadAsset}
	client := newTestClient(t, WithVideoProber(prober))

	_, err := client.NewVideoAttachment(context.Background(), "clip.mp4", "video/mp4", nil)
	require.ErrorIs(t, err, probeRepository.ErrCouldNotLoadAsset)
}

func TestNewDefaultsBaseURLAndLimits(t *testing.T) {
	client := newTestClient(t)

	assert.Equal(t, config.DefaultBaseURL, client.baseURL)
	assert.Equal(t, float64(60), client.limits.MaxVideoDuration)
	assert.Equal(t, 5, client.limits.MaxAttachments)
}
