package minio

import (
	"context"
	"time"

	"github.com/minio/minio-go/v7"
)

// Signer issues presigned PUT URLs so attachment bytes go straight to the
// bucket without passing through the dev backend.
type Signer struct {
	minioClient *minio.Client
	cfg         SignerConfig
}

func NewSigner(minioClient *minio.Client, cfg SignerConfig) *Signer {
	if cfg.ExpirySeconds == 0 {
		cfg.ExpirySeconds = 900
	}

	return &Signer{
		minioClient: minioClient,
		cfg:         cfg,
	}
}

func (s *Signer) Sign(ctx context.Context, storagePath, _ string, _ int64) (string, error) {
	u, err := s.minioClient.PresignedPutObject(ctx, s.cfg.Bucket, storagePath,
		time.Duration(s.cfg.ExpirySeconds)*time.Second)
	if err != nil {
		return "", err
	}

	return u.String(), nil
}
