package model

import (
	"time"

	"github.com/google/uuid"
)

// RequestJournal represents the database model for dispatched requests
type RequestJournal struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	RequestType string    `gorm:"not null;size:16;index"`
	TxCode      string    `gorm:"size:64;index"`
	Signature   string    `gorm:"size:128"`
	TargetURL   string    `gorm:"type:text;not null"`
	StatusCode  int       `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for RequestJournal
func (RequestJournal) TableName() string {
	return "request_journal"
}
