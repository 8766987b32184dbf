package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"yapback/internal/domain/model"
)

// Store backs the dev server when no MinIO or MongoDB is configured. It is
// the only stateful piece, so it guards its maps with a mutex.
type Store struct {
	mu       sync.RWMutex
	baseURL  string
	blobs    map[string]blob
	feedback map[string]*model.FeedbackRecord
}

type blob struct {
	mimeType string
	data     []byte
}

func NewStore(baseURL string) *Store {
	return &Store{
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		blobs:    make(map[string]blob),
		feedback: make(map[string]*model.FeedbackRecord),
	}
}

// Sign points the slot at the dev server's own storage endpoint.
func (s *Store) Sign(_ context.Context, storagePath, _ string, _ int64) (string, error) {
	return s.baseURL + "/storage/" + storagePath, nil
}

func (s *Store) Put(storagePath, mimeType string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.blobs[storagePath] = blob{mimeType: mimeType, data: data}

	return nil
}

func (s *Store) Get(storagePath string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.blobs[storagePath]

	return b.data, ok
}

func (s *Store) Write(_ context.Context, record *model.FeedbackRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.feedback[record.ID] = record

	return nil
}

func (s *Store) GetByID(_ context.Context, id string) (*model.FeedbackRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.feedback[id]
	if !ok {
		return nil, errors.New("feedback not found")
	}

	return record, nil
}
