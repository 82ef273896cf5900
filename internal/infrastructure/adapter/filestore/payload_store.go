package filestore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/amirhossein-jamali/psp-client/internal/domain/entity"
	errs "github.com/amirhossein-jamali/psp-client/internal/domain/error"
	coreport "github.com/amirhossein-jamali/psp-client/internal/domain/port/core"
)

// PayloadPaths maps each payload kind to its JSON file
type PayloadPaths map[entity.PayloadKind]string

// PayloadStore implements PayloadRepository on top of JSON files
type PayloadStore struct {
	paths  PayloadPaths
	logger coreport.Logger
}

// NewPayloadStore creates a new file-backed payload store
func NewPayloadStore(paths PayloadPaths, logger coreport.Logger) *PayloadStore {
	return &PayloadStore{
		paths:  paths,
		logger: logger,
	}
}

// Path returns the file backing the payload kind
func (s *PayloadStore) Path(kind entity.PayloadKind) (string, bool) {
	path, ok := s.paths[kind]
	return path, ok && path != ""
}

// Load reads and parses the payload file of the given kind
func (s *PayloadStore) Load(ctx context.Context, kind entity.PayloadKind) (*entity.Payload, error) {
	path, err := s.resolve(kind, "load")
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, errs.NewPayloadError(string(kind), path, "load", fmt.Errorf("%w: %v", errs.ErrIO, err))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errs.NewPayloadError(string(kind), path, "load", errs.ErrNotFound)
		}
		return nil, errs.NewPayloadError(string(kind), path, "load", fmt.Errorf("%w: %v", errs.ErrIO, err))
	}

	payload, err := entity.ParsePayload(data)
	if err != nil {
		return nil, errs.NewPayloadError(string(kind), path, "load", err)
	}

	s.logger.Debug("Payload loaded", map[string]any{
		"kind":   kind,
		"path":   path,
		"fields": payload.Len(),
	})

	return payload, nil
}

// Save writes the payload to its file with 4-space indentation, replacing it atomically
func (s *PayloadStore) Save(ctx context.Context, kind entity.PayloadKind, payload *entity.Payload) error {
	path, err := s.resolve(kind, "save")
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return errs.NewPayloadError(string(kind), path, "save", fmt.Errorf("%w: %v", errs.ErrIO, err))
	}

	data, err := payload.MarshalIndent()
	if err != nil {
		return errs.NewPayloadError(string(kind), path, "save", fmt.Errorf("%w: %v", errs.ErrIO, err))
	}
	data = append(data, '\n')

	if err := writeFileAtomic(path, data, 0o644); err != nil {
		return errs.NewPayloadError(string(kind), path, "save", fmt.Errorf("%w: %v", errs.ErrIO, err))
	}

	s.logger.Debug("Payload saved", map[string]any{
		"kind": kind,
		"path": path,
	})

	return nil
}

func (s *PayloadStore) resolve(kind entity.PayloadKind, op string) (string, error) {
	path, ok := s.Path(kind)
	if !ok {
		return "", errs.NewPayloadError(string(kind), "", op,
			fmt.Errorf("%w: no file configured for %s payload", errs.ErrInvalidArgument, kind))
	}
	return path, nil
}
