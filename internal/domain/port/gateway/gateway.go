package gateway

import (
	"context"

	"github.com/amirhossein-jamali/psp-client/internal/domain/entity"
)

// Gateway sends signed payloads to the payment provider
type Gateway interface {
	// SendGet issues a GET request to url with the payload as query parameters.
	// The response status code is not interpreted.
	//
	// Possible errors:
	// - ErrNetwork: If the request cannot be completed
	// - ErrTimeout: If the request exceeds its deadline
	SendGet(ctx context.Context, url string, payload *entity.Payload) (*entity.GatewayResponse, error)
}
