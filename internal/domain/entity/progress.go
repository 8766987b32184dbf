package entity

// UploadProgress is a transient snapshot of a running batch upload. One event
// is emitted when an attachment's transfer starts and one when it completes;
// events for attachment i always precede events for attachment i+1.
type UploadProgress struct {
	Index         int
	TotalCount    int
	BytesUploaded int64
	TotalBytes    int64
}

// CurrentFraction is the completed fraction of the active attachment,
// 0 when the attachment is empty.
func (p UploadProgress) CurrentFraction() float64 {
	if p.TotalBytes == 0 {
		return 0
	}

	return float64(p.BytesUploaded) / float64(p.TotalBytes)
}

// Overall is the completed fraction across the whole batch.
func (p UploadProgress) Overall() float64 {
	if p.TotalCount == 0 {
		return 0
	}

	return (float64(p.Index) + p.CurrentFraction()) / float64(p.TotalCount)
}

// ProgressFunc receives progress events synchronously from the upload loop.
// It may be called from any goroutine; UI consumers must marshal to their
// own rendering context.
type ProgressFunc func(UploadProgress)
