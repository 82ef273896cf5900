package entity

import (
	"time"

	"github.com/google/uuid"
)

// JournalEntry records one dispatched request
type JournalEntry struct {
	ID          uuid.UUID   // Unique identifier for the entry
	RequestType RequestType // Which operation was dispatched
	TxCode      string      // Transaction code carried by the payload
	Signature   string      // Signature sent with the payload
	TargetURL   string      // Gateway or payment form URL
	StatusCode  int         // HTTP status of the provider response, 0 for payin
	CreatedAt   time.Time   // When the request was dispatched
}

// NewJournalEntry creates a journal entry for a signed payload
func NewJournalEntry(requestType RequestType, payload *Payload, targetURL string, statusCode int, createdAt time.Time) *JournalEntry {
	entry := &JournalEntry{
		ID:          uuid.New(),
		RequestType: requestType,
		TargetURL:   targetURL,
		StatusCode:  statusCode,
		CreatedAt:   createdAt,
	}
	if v, ok := payload.Get(FieldTxCode); ok {
		entry.TxCode = v.String()
	}
	entry.Signature, _ = payload.Signature()
	return entry
}
