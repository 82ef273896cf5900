package entity

import "net/http"

// GatewayResponse holds what the provider returned for a live request.
// The status code is recorded but never interpreted.
type GatewayResponse struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// IsSuccess reports whether the status code is 2xx
func (r *GatewayResponse) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}
