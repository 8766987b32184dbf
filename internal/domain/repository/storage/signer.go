package storage

import "context"

// SlotSigner issues a single-use signed URL an attachment's bytes can be
// PUT to directly.
type SlotSigner interface {
	Sign(ctx context.Context, storagePath, mimeType string, fileSize int64) (string, error)
}

// BlobStore holds uploaded bytes when no external object store is wired in.
type BlobStore interface {
	Put(storagePath, mimeType string, data []byte) error
	Get(storagePath string) ([]byte, bool)
}
