package probe

import (
	"errors"
	"fmt"
)

var (
	// ErrCouldNotLoadAsset means the media decoder could not open the payload.
	ErrCouldNotLoadAsset = errors.New("could not load media asset")

	// ErrInvalidVideo means the reported duration is not a finite,
	// non-negative number.
	ErrInvalidVideo = errors.New("invalid video")
)

// DurationTooLongError is returned at probe time so callers fail fast before
// a too-long video travels any further.
type DurationTooLongError struct {
	Duration    float64
	MaxDuration float64
}

func (e *DurationTooLongError) Error() string {
	return fmt.Sprintf("video duration %.1fs exceeds the maximum of %.0fs", e.Duration, e.MaxDuration)
}
