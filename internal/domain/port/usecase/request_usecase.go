package usecase

import (
	"context"

	"github.com/amirhossein-jamali/psp-client/internal/domain/entity"
)

// SignedPayload is a finalized payload together with the query string its signature covers
type SignedPayload struct {
	Kind        entity.PayloadKind
	Payload     *entity.Payload
	QueryString string
	Signature   string
}

// RequestResult describes the outcome of a dispatched request
type RequestResult struct {
	Type       entity.RequestType
	Payload    *entity.Payload
	PaymentURL string                  // Set for payin only
	Response   *entity.GatewayResponse // Set for status and payout
	OutputPath string                  // Where the response was persisted
}

// RequestBuilder prepares signed payloads
type RequestBuilder interface {
	// BuildDeposit allocates a new transaction code and signs the deposit payload
	BuildDeposit(ctx context.Context) (*SignedPayload, error)

	// BuildStatus copies the deposit reference fields into the status payload and signs it
	BuildStatus(ctx context.Context) (*SignedPayload, error)

	// BuildWithdrawal allocates a new transaction code and signs the withdrawal payload
	BuildWithdrawal(ctx context.Context) (*SignedPayload, error)
}

// RequestUseCase dispatches one request to the payment provider
type RequestUseCase interface {
	// MakeRequest builds, signs and (for live types) sends the request named by requestType.
	// An unsupported type fails with ErrInvalidArgument before any I/O.
	MakeRequest(ctx context.Context, requestType string) (*RequestResult, error)
}
