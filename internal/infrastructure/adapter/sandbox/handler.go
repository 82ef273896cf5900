package sandbox

import (
	"net/http"
	"sync"

	"github.com/amirhossein-jamali/psp-client/internal/domain/entity"
	errs "github.com/amirhossein-jamali/psp-client/internal/domain/error"
	coreport "github.com/amirhossein-jamali/psp-client/internal/domain/port/core"
	"github.com/amirhossein-jamali/psp-client/internal/domain/usecase/signing"
	"github.com/gin-gonic/gin"
)

// ReceivedRequest is a request the simulator has seen
type ReceivedRequest struct {
	Path     string
	RawQuery string
	Payload  *entity.Payload
	Verified bool
}

// Handler simulates the payment provider endpoints
type Handler struct {
	secret string
	logger coreport.Logger

	mu       sync.Mutex
	received []ReceivedRequest
}

// NewHandler creates a simulator that verifies signatures with secret
func NewHandler(secret string, logger coreport.Logger) *Handler {
	return &Handler{
		secret: secret,
		logger: logger,
	}
}

// Received returns a copy of the requests seen so far
func (h *Handler) Received() []ReceivedRequest {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]ReceivedRequest, len(h.received))
	copy(out, h.received)
	return out
}

// Payment handles the GET /payment endpoint
func (h *Handler) Payment(c *gin.Context) {
	payload, ok := h.verify(c, entity.FieldMerchant)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, PaymentResponse{
		Status:   "pending",
		TxCode:   field(payload, entity.FieldTxCode),
		Merchant: field(payload, entity.FieldMerchant),
	})
}

// Status handles the GET /status endpoint
func (h *Handler) Status(c *gin.Context) {
	payload, ok := h.verify(c, entity.FieldAmount, entity.FieldCurrency)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, StatusResponse{
		Status:   "approved",
		TxCode:   field(payload, entity.FieldTxCode),
		Amount:   field(payload, entity.FieldAmount),
		Currency: field(payload, entity.FieldCurrency),
	})
}

// Withdrawal handles the GET /withdrawal endpoint
func (h *Handler) Withdrawal(c *gin.Context) {
	payload, ok := h.verify(c, entity.FieldAmount)
	if !ok {
		return
	}
	c.JSON(http.StatusAccepted, WithdrawalResponse{
		Status: "queued",
		TxCode: field(payload, entity.FieldTxCode),
	})
}

// verify parses and authenticates the query string, writing an error response on failure.
// Every endpoint requires a transaction code in addition to required.
func (h *Handler) verify(c *gin.Context, required ...string) (*entity.Payload, bool) {
	rawQuery := c.Request.URL.RawQuery
	payload, err := ParseQuery(rawQuery)
	if err != nil {
		h.record(c, rawQuery, nil, false)
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    errs.ErrorCode(errs.ErrParse),
			Message: "Malformed query string",
		})
		return nil, false
	}

	verified := signing.Verify(payload, h.secret)
	h.record(c, rawQuery, payload, verified)

	if !verified {
		h.logger.Warn("Rejected request with invalid signature", map[string]any{
			"path": c.Request.URL.Path,
		})
		c.JSON(http.StatusForbidden, ErrorResponse{
			Code:    errs.ErrorCode(errs.ErrInvalidArgument),
			Message: "Invalid signature",
		})
		return nil, false
	}

	for _, name := range append([]string{entity.FieldTxCode}, required...) {
		if !payload.Has(name) {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Code:    errs.ErrorCode(errs.ErrMissingField),
				Message: "Missing field: " + name,
			})
			return nil, false
		}
	}
	return payload, true
}

func (h *Handler) record(c *gin.Context, rawQuery string, payload *entity.Payload, verified bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.received = append(h.received, ReceivedRequest{
		Path:     c.Request.URL.Path,
		RawQuery: rawQuery,
		Payload:  payload,
		Verified: verified,
	})
}

func field(payload *entity.Payload, name string) string {
	v, _ := payload.Get(name)
	return v.String()
}
