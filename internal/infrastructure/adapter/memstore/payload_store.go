package memstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/amirhossein-jamali/psp-client/internal/domain/entity"
	errs "github.com/amirhossein-jamali/psp-client/internal/domain/error"
)

// PayloadStore keeps payloads in memory. Stored payloads are copied on the way in and out.
type PayloadStore struct {
	mu       sync.Mutex
	payloads map[entity.PayloadKind]*entity.Payload
	saves    int
}

// NewPayloadStore creates an in-memory store seeded with the given payloads
func NewPayloadStore(seed map[entity.PayloadKind]*entity.Payload) *PayloadStore {
	s := &PayloadStore{payloads: make(map[entity.PayloadKind]*entity.Payload, len(seed))}
	for kind, p := range seed {
		s.payloads[kind] = p.Clone()
	}
	return s
}

// Load returns a copy of the stored payload
func (s *PayloadStore) Load(ctx context.Context, kind entity.PayloadKind) (*entity.Payload, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.payloads[kind]
	if !ok {
		return nil, errs.NewPayloadError(string(kind), "memory", "load", errs.ErrNotFound)
	}
	return p.Clone(), nil
}

// Save stores a copy of the payload
func (s *PayloadStore) Save(ctx context.Context, kind entity.PayloadKind, payload *entity.Payload) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrIO, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.payloads[kind] = payload.Clone()
	s.saves++
	return nil
}

// Saves returns how many times Save succeeded
func (s *PayloadStore) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}
