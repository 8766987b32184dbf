package probe

import (
	"context"
	"math"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	probeRepository "yapback/internal/domain/repository/probe"
)

// FFProber extracts video metadata by handing the payload to ffprobe
// through a temp file. Duration is mandatory; width and height are
// best-effort and degrade to zero.
type FFProber struct {
	cfg Config
}

func NewFFProber(cfg Config) *FFProber {
	if cfg.FFProbePath == "" {
		cfg.FFProbePath = "ffprobe"
	}

	return &FFProber{cfg: cfg}
}

func (p *FFProber) Probe(ctx context.Context, data []byte) (probeRepository.VideoMetadata, error) {
	if len(data) == 0 {
		return probeRepository.VideoMetadata{}, probeRepository.ErrCouldNotLoadAsset
	}

	detected := mimetype.Detect(data)
	if !strings.HasPrefix(detected.String(), "video/") {
		return probeRepository.VideoMetadata{}, probeRepository.ErrCouldNotLoadAsset
	}

	tempFile, err := os.CreateTemp("", "yapback-probe-*"+detected.Extension())
	if err != nil {
		return probeRepository.VideoMetadata{}, probeRepository.ErrCouldNotLoadAsset
	}
	defer os.Remove(tempFile.Name())

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()

		return probeRepository.VideoMetadata{}, probeRepository.ErrCouldNotLoadAsset
	}
	tempFile.Close()

	duration, err := p.probeDuration(ctx, tempFile.Name())
	if err != nil {
		return probeRepository.VideoMetadata{}, err
	}

	width, height := p.probeDimensions(ctx, tempFile.Name())

	return probeRepository.VideoMetadata{
		DurationSeconds: duration,
		Width:           width,
		Height:          height,
		FileSize:        int64(len(data)),
	}, nil
}

func (p *FFProber) probeDuration(ctx context.Context, path string) (float64, error) {
	out, err := exec.CommandContext(ctx, p.cfg.FFProbePath,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path).Output()
	if err != nil {
		return 0, probeRepository.ErrCouldNotLoadAsset
	}

	duration, err := strconv.ParseFloat(strings.TrimSpace(string(out)), 64)
	if err != nil || math.IsNaN(duration) || math.IsInf(duration, 0) || duration < 0 {
		return 0, probeRepository.ErrInvalidVideo
	}

	return duration, nil
}

func (p *FFProber) probeDimensions(ctx context.Context, path string) (int, int) {
	out, err := exec.CommandContext(ctx, p.cfg.FFProbePath,
		"-v", "error",
		"-select_streams", "v:0",
		"-show_entries", "stream=width,height",
		"-of", "csv=s=x:p=0",
		path).Output()
	if err != nil {
		return 0, 0
	}

	parts := strings.Split(strings.TrimSpace(string(out)), "x")
	if len(parts) != 2 {
		return 0, 0
	}

	width, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0
	}
	height, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0
	}

	return width, height
}
