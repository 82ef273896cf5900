package request

import (
	"context"

	"github.com/amirhossein-jamali/psp-client/internal/domain/entity"
	errs "github.com/amirhossein-jamali/psp-client/internal/domain/error"
	coreport "github.com/amirhossein-jamali/psp-client/internal/domain/port/core"
	"github.com/amirhossein-jamali/psp-client/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/psp-client/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/psp-client/internal/domain/usecase/signing"
)

// StatusBorrowedFields are copied from the deposit payload into every status request
var StatusBorrowedFields = []string{
	entity.FieldAmount,
	entity.FieldCurrency,
	entity.FieldCustomer,
	entity.FieldMerchant,
	entity.FieldTxCode,
}

// TxCodeAllocator issues transaction codes
type TxCodeAllocator interface {
	NextTxCode(ctx context.Context) (int64, error)
}

// Builder prepares, signs and persists request payloads
type Builder struct {
	repo      persistence.PayloadRepository
	allocator TxCodeAllocator
	secret    string
	logger    coreport.Logger
}

// NewBuilder creates a new Builder
func NewBuilder(
	repo persistence.PayloadRepository,
	allocator TxCodeAllocator,
	secret string,
	logger coreport.Logger,
) *Builder {
	return &Builder{
		repo:      repo,
		allocator: allocator,
		secret:    secret,
		logger:    logger,
	}
}

// BuildDeposit signs the deposit payload under a freshly allocated transaction code
func (b *Builder) BuildDeposit(ctx context.Context) (*usecase.SignedPayload, error) {
	return b.buildWithNewTxCode(ctx, entity.PayloadDeposit)
}

// BuildWithdrawal signs the withdrawal payload under a freshly allocated transaction code
func (b *Builder) BuildWithdrawal(ctx context.Context) (*usecase.SignedPayload, error) {
	return b.buildWithNewTxCode(ctx, entity.PayloadWithdrawal)
}

// BuildStatus signs the status payload after copying the reference fields of the
// current deposit payload into it. The deposit payload is only read.
func (b *Builder) BuildStatus(ctx context.Context) (*usecase.SignedPayload, error) {
	deposit, err := b.repo.Load(ctx, entity.PayloadDeposit)
	if err != nil {
		return nil, err
	}

	status, err := b.repo.Load(ctx, entity.PayloadStatus)
	if err != nil {
		return nil, err
	}

	status.Delete(entity.FieldSigned)

	for _, field := range StatusBorrowedFields {
		v, ok := deposit.Get(field)
		if !ok {
			return nil, errs.NewMissingFieldError(string(entity.PayloadDeposit), field)
		}
		status.Set(field, v)
	}

	return b.finalize(ctx, entity.PayloadStatus, status)
}

func (b *Builder) buildWithNewTxCode(ctx context.Context, kind entity.PayloadKind) (*usecase.SignedPayload, error) {
	payload, err := b.repo.Load(ctx, kind)
	if err != nil {
		return nil, err
	}

	payload.Delete(entity.FieldSigned)

	txcode, err := b.allocator.NextTxCode(ctx)
	if err != nil {
		return nil, err
	}
	payload.Set(entity.FieldTxCode, entity.IntValue(txcode))

	return b.finalize(ctx, kind, payload)
}

// finalize signs the payload and writes it back to where it was loaded from.
// The payload must not carry a signature yet.
func (b *Builder) finalize(ctx context.Context, kind entity.PayloadKind, payload *entity.Payload) (*usecase.SignedPayload, error) {
	queryString := payload.Canonical()
	b.logger.Debug("Query string prepared", map[string]any{
		"kind":         kind,
		"query_string": queryString,
	})

	signature := signing.Sign([]byte(queryString + b.secret))
	payload.Set(entity.FieldSigned, entity.StringValue(signature))

	if err := b.repo.Save(ctx, kind, payload); err != nil {
		b.logger.Error("Failed to persist signed payload", errs.Fields(err))
		return nil, err
	}

	b.logger.Info("Payload signed", map[string]any{
		"kind":    kind,
		"payload": payload.QueryString(),
	})

	return &usecase.SignedPayload{
		Kind:        kind,
		Payload:     payload,
		QueryString: queryString,
		Signature:   signature,
	}, nil
}
