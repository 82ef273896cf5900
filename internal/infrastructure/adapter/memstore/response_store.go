package memstore

import (
	"context"
	"fmt"
	"sync"

	jsoniter "github.com/json-iterator/go"

	"github.com/amirhossein-jamali/psp-client/internal/domain/entity"
	errs "github.com/amirhossein-jamali/psp-client/internal/domain/error"
)

// ResponseStore keeps provider responses in memory
type ResponseStore struct {
	mu        sync.Mutex
	responses map[entity.RequestType][]byte
}

// NewResponseStore creates an empty in-memory response store
func NewResponseStore() *ResponseStore {
	return &ResponseStore{responses: make(map[entity.RequestType][]byte)}
}

// Save validates body as JSON and keeps a copy under the request type
func (s *ResponseStore) Save(ctx context.Context, requestType entity.RequestType, body []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrIO, err)
	}
	if !jsoniter.Valid(body) {
		return "", fmt.Errorf("%w: %s response body is not valid JSON", errs.ErrParse, requestType)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(body))
	copy(stored, body)
	s.responses[requestType] = stored
	return "memory://" + requestType.ResponseFileName(), nil
}

// Get returns the stored response body for the request type
func (s *ResponseStore) Get(requestType entity.RequestType) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	body, ok := s.responses[requestType]
	return body, ok
}

// Len returns how many responses are stored
func (s *ResponseStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.responses)
}
