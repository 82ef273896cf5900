package persistence

import (
	"context"

	"github.com/amirhossein-jamali/psp-client/internal/domain/entity"
)

// ResponseRepository stores provider responses of live requests
type ResponseRepository interface {
	// Save parses body as JSON and persists it under the request type,
	// returning the location it was written to
	//
	// Possible errors:
	// - ErrParse: If body is not valid JSON
	// - ErrIO: If the response cannot be written
	Save(ctx context.Context, requestType entity.RequestType, body []byte) (string, error)
}
