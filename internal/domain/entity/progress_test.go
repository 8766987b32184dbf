package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUploadProgress(t *testing.T) {
	tests := []struct {
		name        string
		progress    UploadProgress
		wantCurrent float64
		wantOverall float64
	}{
		{
			name:        "start of first attachment",
			progress:    UploadProgress{Index: 0, TotalCount: 3, BytesUploaded: 0, TotalBytes: 100},
			wantCurrent: 0,
			wantOverall: 0,
		},
		{
			name:        "halfway through second of three",
			progress:    UploadProgress{Index: 1, TotalCount: 3, BytesUploaded: 50, TotalBytes: 100},
			wantCurrent: 0.5,
			wantOverall: 0.5,
		},
		{
			name:        "last attachment complete",
			progress:    UploadProgress{Index: 2, TotalCount: 3, BytesUploaded: 100, TotalBytes: 100},
			wantCurrent: 1,
			wantOverall: 1,
		},
		{
			name:        "zero-byte attachment",
			progress:    UploadProgress{Index: 0, TotalCount: 2, BytesUploaded: 0, TotalBytes: 0},
			wantCurrent: 0,
			wantOverall: 0,
		},
		{
			name:        "zero total count",
			progress:    UploadProgress{},
			wantCurrent: 0,
			wantOverall: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.wantCurrent, tc.progress.CurrentFraction(), 1e-9)
			assert.InDelta(t, tc.wantOverall, tc.progress.Overall(), 1e-9)
		})
	}
}

func TestOverallMonotonicAcrossBatch(t *testing.T) {
	sizes := []int64{100, 50, 200}
	previous := -1.0

	for i, size := range sizes {
		for _, uploaded := range []int64{0, size} {
			p := UploadProgress{
				Index:         i,
				TotalCount:    len(sizes),
				BytesUploaded: uploaded,
				TotalBytes:    size,
			}
			overall := p.Overall()
			assert.GreaterOrEqual(t, overall, previous)
			previous = overall
		}
	}

	assert.InDelta(t, 1.0, previous, 1e-9)
}
