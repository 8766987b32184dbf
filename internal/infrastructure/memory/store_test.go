package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yapback/internal/domain/model"
)

func TestSignPointsAtLocalStorage(t *testing.T) {
	store := NewStore("http://localhost:3000/")

	url, err := store.Sign(context.Background(), "feedback/abc.png", "image/png", 1024)
	require.NoError(t, err)

	// The trailing slash on the base URL must not double up.
	assert.Equal(t, "http://localhost:3000/storage/feedback/abc.png", url)
}

func TestBlobRoundTrip(t *testing.T) {
	store := NewStore("http://localhost:3000")

	_, ok := store.Get("feedback/missing.png")
	assert.False(t, ok)

	require.NoError(t, store.Put("feedback/abc.png", "image/png", []byte("bytes")))

	data, ok := store.Get("feedback/abc.png")
	require.True(t, ok)
	assert.Equal(t, []byte("bytes"), data)
}

func TestFeedbackRoundTrip(t *testing.T) {
	store := NewStore("http://localhost:3000")

	record := &model.FeedbackRecord{
		ID:        "fb-1",
		Message:   "hello",
		CreatedAt: time.Now(),
	}
	require.NoError(t, store.Write(context.Background(), record))

	got, err := store.GetByID(context.Background(), "fb-1")
	require.NoError(t, err)
	assert.Equal(t, record, got)

	_, err = store.GetByID(context.Background(), "fb-2")
	assert.Error(t, err)
}

func TestConcurrentAccess(t *testing.T) {
	store := NewStore("http://localhost:3000")

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_ = store.Put("feedback/shared.png", "image/png", []byte("bytes"))
			_, _ = store.Get("feedback/shared.png")
		}()
	}
	wg.Wait()

	data, ok := store.Get("feedback/shared.png")
	require.True(t, ok)
	assert.Equal(t, []byte("bytes"), data)
}
