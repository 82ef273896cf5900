package entity

import (
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/psp-client/internal/domain/error"
)

// RequestType selects which PSP operation is performed
type RequestType string

// Request types
const (
	RequestPayin  RequestType = "payin"
	RequestStatus RequestType = "status"
	RequestPayout RequestType = "payout"
)

// RequestTypes lists the supported request types
var RequestTypes = []RequestType{RequestPayin, RequestStatus, RequestPayout}

// PayloadKind identifies one of the stored payload files
type PayloadKind string

// Payload kinds
const (
	PayloadDeposit    PayloadKind = "deposit"
	PayloadStatus     PayloadKind = "status"
	PayloadWithdrawal PayloadKind = "withdrawal"
)

// ParseRequestType validates a request type name
func ParseRequestType(s string) (RequestType, error) {
	rt := RequestType(strings.ToLower(strings.TrimSpace(s)))
	if !rt.IsValid() {
		return "", fmt.Errorf("%w: request type %q should be one of: 'payin', 'status', 'payout'", errs.ErrInvalidArgument, s)
	}
	return rt, nil
}

// IsValid reports whether the request type is supported
func (t RequestType) IsValid() bool {
	switch t {
	case RequestPayin, RequestStatus, RequestPayout:
		return true
	default:
		return false
	}
}

// PayloadKind returns the payload file the request type is built from
func (t RequestType) PayloadKind() PayloadKind {
	switch t {
	case RequestStatus:
		return PayloadStatus
	case RequestPayout:
		return PayloadWithdrawal
	default:
		return PayloadDeposit
	}
}

// IsLive reports whether the request type performs a network call
func (t RequestType) IsLive() bool {
	return t == RequestStatus || t == RequestPayout
}

// ResponseFileName returns the name of the file a live response is stored in
func (t RequestType) ResponseFileName() string {
	return string(t) + "_response.json"
}
