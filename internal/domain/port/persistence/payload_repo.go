package persistence

import (
	"context"

	"github.com/amirhossein-jamali/psp-client/internal/domain/entity"
)

// PayloadRepository loads and stores the request payloads
type PayloadRepository interface {
	// Load reads the payload of the given kind
	//
	// Possible errors:
	// - ErrNotFound: If the payload has never been stored
	// - ErrParse: If the stored data is not a JSON object of scalar values
	// - ErrIO: If the storage cannot be read
	Load(ctx context.Context, kind entity.PayloadKind) (*entity.Payload, error)

	// Save overwrites the payload of the given kind
	//
	// Possible errors:
	// - ErrIO: If the payload cannot be written
	Save(ctx context.Context, kind entity.PayloadKind, payload *entity.Payload) error
}
