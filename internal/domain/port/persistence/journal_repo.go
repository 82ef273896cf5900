package persistence

import (
	"context"

	"github.com/amirhossein-jamali/psp-client/internal/domain/entity"
)

// JournalRepository keeps an audit trail of dispatched requests
type JournalRepository interface {
	// Record appends an entry to the journal
	Record(ctx context.Context, entry *entity.JournalEntry) error
}
