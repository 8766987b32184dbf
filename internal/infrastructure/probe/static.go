package probe

import (
	"context"

	probeRepository "yapback/internal/domain/repository/probe"
)

// StaticProber returns fixed metadata. It exists so tests and integrations
// without a media decoder get deterministic probe results.
type StaticProber struct {
	Metadata probeRepository.VideoMetadata
	Err      error
}

func (p *StaticProber) Probe(_ context.Context, _ []byte) (probeRepository.VideoMetadata, error) {
	if p.Err != nil {
		return probeRepository.VideoMetadata{}, p.Err
	}

	return p.Metadata, nil
}
