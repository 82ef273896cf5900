package repository

import (
	"context"

	"github.com/amirhossein-jamali/psp-client/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/psp-client/internal/domain/port/core"
	"github.com/amirhossein-jamali/psp-client/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/psp-client/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// JournalRepository implements the JournalRepository port using GORM
type JournalRepository struct {
	db           *gorm.DB
	queryTimeout coreport.Duration
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewJournalRepository creates a new JournalRepository instance
func NewJournalRepository(db *gorm.DB, queryTimeout coreport.Duration, timeProvider coreport.TimeProvider, logger coreport.Logger) *JournalRepository {
	return &JournalRepository{
		db:           db,
		queryTimeout: queryTimeout,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// entityToModel converts a journal entry to a database model
func entityToModel(entry *entity.JournalEntry) model.RequestJournal {
	return model.RequestJournal{
		ID:          entry.ID,
		RequestType: string(entry.RequestType),
		TxCode:      entry.TxCode,
		Signature:   entry.Signature,
		TargetURL:   entry.TargetURL,
		StatusCode:  entry.StatusCode,
		CreatedAt:   entry.CreatedAt,
	}
}

// Record inserts a journal entry
func (r *JournalRepository) Record(ctx context.Context, entry *entity.JournalEntry) error {
	ctx, cancel := r.timeProvider.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	row := entityToModel(entry)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return database.MapError(err)
	}

	r.logger.Debug("Request recorded in journal", map[string]any{
		"journal_id":   entry.ID.String(),
		"request_type": entry.RequestType,
		"txcode":       entry.TxCode,
	})
	return nil
}

// NoopJournalRepository discards entries when the journal is disabled
type NoopJournalRepository struct{}

// NewNoopJournalRepository creates a journal that records nothing
func NewNoopJournalRepository() *NoopJournalRepository {
	return &NoopJournalRepository{}
}

// Record does nothing
func (NoopJournalRepository) Record(context.Context, *entity.JournalEntry) error {
	return nil
}
