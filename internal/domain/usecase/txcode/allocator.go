package txcode

import (
	"context"
	"fmt"
	"math"

	"github.com/amirhossein-jamali/psp-client/internal/domain/entity"
	errs "github.com/amirhossein-jamali/psp-client/internal/domain/error"
	coreport "github.com/amirhossein-jamali/psp-client/internal/domain/port/core"
	"github.com/amirhossein-jamali/psp-client/internal/domain/port/persistence"
)

// Allocator issues transaction codes shared by deposits and withdrawals
type Allocator struct {
	repo   persistence.PayloadRepository
	logger coreport.Logger
}

// NewAllocator creates a new Allocator
func NewAllocator(repo persistence.PayloadRepository, logger coreport.Logger) *Allocator {
	return &Allocator{
		repo:   repo,
		logger: logger,
	}
}

// NextTxCode returns max(deposit txcode, withdrawal txcode) + 1.
// Nothing is written; the caller persists the code with the payload it updates.
func (a *Allocator) NextTxCode(ctx context.Context) (int64, error) {
	depositCode, err := a.currentCode(ctx, entity.PayloadDeposit)
	if err != nil {
		return 0, err
	}

	withdrawalCode, err := a.currentCode(ctx, entity.PayloadWithdrawal)
	if err != nil {
		return 0, err
	}

	highest := max(depositCode, withdrawalCode)
	if highest == math.MaxInt64 {
		kind := entity.PayloadDeposit
		if withdrawalCode == highest {
			kind = entity.PayloadWithdrawal
		}
		return 0, fmt.Errorf("transaction codes exhausted: %w",
			errs.NewFieldParseError(string(kind), entity.FieldTxCode, fmt.Sprint(highest)))
	}
	next := highest + 1

	a.logger.Debug("Transaction code allocated", map[string]any{
		"deposit_txcode":    depositCode,
		"withdrawal_txcode": withdrawalCode,
		"txcode":            next,
	})

	return next, nil
}

func (a *Allocator) currentCode(ctx context.Context, kind entity.PayloadKind) (int64, error) {
	payload, err := a.repo.Load(ctx, kind)
	if err != nil {
		return 0, err
	}
	return ParseTxCode(kind, payload)
}

// ParseTxCode reads the transaction code field of a payload
func ParseTxCode(kind entity.PayloadKind, payload *entity.Payload) (int64, error) {
	v, ok := payload.Get(entity.FieldTxCode)
	if !ok {
		return 0, errs.NewMissingFieldError(string(kind), entity.FieldTxCode)
	}
	code, ok := v.Int64()
	if !ok {
		return 0, errs.NewFieldParseError(string(kind), entity.FieldTxCode, v.String())
	}
	return code, nil
}
