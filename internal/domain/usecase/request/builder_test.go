package request

import (
	"context"
	"errors"
	"testing"

	"github.com/amirhossein-jamali/psp-client/internal/domain/entity"
	errs "github.com/amirhossein-jamali/psp-client/internal/domain/error"
	"github.com/amirhossein-jamali/psp-client/internal/domain/usecase/signing"
	"github.com/amirhossein-jamali/psp-client/internal/domain/usecase/txcode"
	"github.com/amirhossein-jamali/psp-client/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/psp-client/internal/infrastructure/adapter/memstore"
	persistencemocks "github.com/amirhossein-jamali/psp-client/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "api-key-123"

type fixedAllocator struct {
	code int64
	err  error
}

func (a fixedAllocator) NextTxCode(context.Context) (int64, error) {
	return a.code, a.err
}

func depositPayload() *entity.Payload {
	p := entity.NewPayload()
	p.Set(entity.FieldAmount, entity.IntValue(100))
	p.Set(entity.FieldCurrency, entity.StringValue("USD"))
	p.Set(entity.FieldCustomer, entity.StringValue("c1"))
	p.Set(entity.FieldMerchant, entity.StringValue("m1"))
	p.Set(entity.FieldTxCode, entity.IntValue(5))
	p.Set(entity.FieldSigned, entity.StringValue("stale-signature"))
	return p
}

func withdrawalPayload() *entity.Payload {
	p := entity.NewPayload()
	p.Set(entity.FieldAmount, entity.IntValue(40))
	p.Set(entity.FieldCurrency, entity.StringValue("USD"))
	p.Set(entity.FieldCustomer, entity.StringValue("c1"))
	p.Set(entity.FieldMerchant, entity.StringValue("m1"))
	p.Set("account", entity.StringValue("DE89 3704 0044 0532 0130 00"))
	p.Set(entity.FieldTxCode, entity.IntValue(7))
	return p
}

func statusPayload() *entity.Payload {
	p := entity.NewPayload()
	p.Set("action", entity.StringValue("status"))
	p.Set(entity.FieldCurrency, entity.StringValue("EUR"))
	return p
}

func newTestStore() *memstore.PayloadStore {
	return memstore.NewPayloadStore(map[entity.PayloadKind]*entity.Payload{
		entity.PayloadDeposit:    depositPayload(),
		entity.PayloadWithdrawal: withdrawalPayload(),
		entity.PayloadStatus:     statusPayload(),
	})
}

func newTestBuilder(store *memstore.PayloadStore) *Builder {
	noop := logger.NewNoopLogger()
	return NewBuilder(store, txcode.NewAllocator(store, noop), testSecret, noop)
}

func TestBuildDeposit(t *testing.T) {
	ctx := context.Background()

	t.Run("Allocates the next transaction code and signs", func(t *testing.T) {
		store := newTestStore()
		builder := newTestBuilder(store)

		signed, err := builder.BuildDeposit(ctx)

		require.NoError(t, err)
		assert.Equal(t, entity.PayloadDeposit, signed.Kind)
		assert.Equal(t, "amount=100&currency=USD&customer=c1&merchant=m1&txcode=8", signed.QueryString)
		assert.Equal(t, signing.Sign([]byte(signed.QueryString+testSecret)), signed.Signature)

		sig, ok := signed.Payload.Signature()
		require.True(t, ok)
		assert.Equal(t, signed.Signature, sig)
		assert.Equal(t, "signed", signed.Payload.Keys()[signed.Payload.Len()-1])
	})

	t.Run("Persists the signed payload", func(t *testing.T) {
		store := newTestStore()
		builder := newTestBuilder(store)

		signed, err := builder.BuildDeposit(ctx)
		require.NoError(t, err)

		stored, err := store.Load(ctx, entity.PayloadDeposit)
		require.NoError(t, err)
		assert.Equal(t, signed.Payload.QueryString(), stored.QueryString())
		assert.True(t, signing.Verify(stored, testSecret))
	})

	t.Run("Consecutive builds issue increasing codes", func(t *testing.T) {
		store := newTestStore()
		builder := newTestBuilder(store)

		first, err := builder.BuildDeposit(ctx)
		require.NoError(t, err)
		second, err := builder.BuildDeposit(ctx)
		require.NoError(t, err)

		firstCode, _ := first.Payload.Get(entity.FieldTxCode)
		secondCode, _ := second.Payload.Get(entity.FieldTxCode)
		assert.Equal(t, "8", firstCode.String())
		assert.Equal(t, "9", secondCode.String())
		assert.NotEqual(t, first.Signature, second.Signature)
	})

	t.Run("Allocator failure leaves the file untouched", func(t *testing.T) {
		store := newTestStore()
		noop := logger.NewNoopLogger()
		builder := NewBuilder(store, fixedAllocator{err: errs.NewMissingFieldError("withdrawal", "txcode")}, testSecret, noop)

		_, err := builder.BuildDeposit(ctx)

		assert.ErrorIs(t, err, errs.ErrMissingField)
		assert.Equal(t, 0, store.Saves())
	})

	t.Run("Missing payload", func(t *testing.T) {
		store := memstore.NewPayloadStore(nil)
		builder := newTestBuilder(store)

		_, err := builder.BuildDeposit(ctx)

		assert.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("Save failure is propagated", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockPayloadRepository(t)
		mockRepo.EXPECT().Load(mock.Anything, entity.PayloadDeposit).Return(depositPayload(), nil).Once()
		saveErr := errs.NewPayloadError("deposit", "deposit.json", "save", errs.ErrIO)
		mockRepo.EXPECT().Save(mock.Anything, entity.PayloadDeposit, mock.Anything).Return(saveErr).Once()

		builder := NewBuilder(mockRepo, fixedAllocator{code: 11}, testSecret, logger.NewNoopLogger())
		_, err := builder.BuildDeposit(ctx)

		assert.ErrorIs(t, err, errs.ErrIO)
	})
}

func TestBuildWithdrawal(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	builder := newTestBuilder(store)

	signed, err := builder.BuildWithdrawal(ctx)

	require.NoError(t, err)
	assert.Equal(t, entity.PayloadWithdrawal, signed.Kind)
	assert.Equal(t,
		"amount=40&currency=USD&customer=c1&merchant=m1&account=DE89+3704+0044+0532+0130+00&txcode=8",
		signed.QueryString)

	stored, err := store.Load(ctx, entity.PayloadWithdrawal)
	require.NoError(t, err)
	assert.True(t, signing.Verify(stored, testSecret))

	deposit, err := store.Load(ctx, entity.PayloadDeposit)
	require.NoError(t, err)
	code, _ := deposit.Get(entity.FieldTxCode)
	assert.Equal(t, "5", code.String(), "deposit payload must not change")
}

func TestBuildStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Borrows reference fields from the deposit payload", func(t *testing.T) {
		store := newTestStore()
		builder := newTestBuilder(store)

		signed, err := builder.BuildStatus(ctx)

		require.NoError(t, err)
		amount, ok := signed.Payload.Get(entity.FieldAmount)
		require.True(t, ok)
		assert.Equal(t, "100", amount.String())

		currency, _ := signed.Payload.Get(entity.FieldCurrency)
		assert.Equal(t, "USD", currency.String(), "prior values are overwritten")

		assert.Equal(t, "action=status&currency=USD&amount=100&customer=c1&merchant=m1&txcode=5", signed.QueryString)
	})

	t.Run("Does not allocate a transaction code or touch the deposit payload", func(t *testing.T) {
		store := newTestStore()
		builder := NewBuilder(store, fixedAllocator{err: errors.New("must not be called")}, testSecret, logger.NewNoopLogger())

		_, err := builder.BuildStatus(ctx)
		require.NoError(t, err)

		deposit, err := store.Load(ctx, entity.PayloadDeposit)
		require.NoError(t, err)
		sig, _ := deposit.Signature()
		assert.Equal(t, "stale-signature", sig)
		assert.Equal(t, 1, store.Saves())
	})

	t.Run("Borrowed values are copies", func(t *testing.T) {
		store := newTestStore()
		builder := newTestBuilder(store)

		signed, err := builder.BuildStatus(ctx)
		require.NoError(t, err)

		_, err = builder.BuildDeposit(ctx)
		require.NoError(t, err)

		stored, err := store.Load(ctx, entity.PayloadStatus)
		require.NoError(t, err)
		code, _ := stored.Get(entity.FieldTxCode)
		assert.Equal(t, "5", code.String())
		assert.True(t, signing.Verify(stored, testSecret))
		assert.Equal(t, signed.Payload.QueryString(), stored.QueryString())
	})

	t.Run("Deposit payload lacks a borrowed field", func(t *testing.T) {
		deposit := depositPayload()
		deposit.Delete(entity.FieldMerchant)
		store := memstore.NewPayloadStore(map[entity.PayloadKind]*entity.Payload{
			entity.PayloadDeposit: deposit,
			entity.PayloadStatus:  statusPayload(),
		})
		builder := newTestBuilder(store)

		_, err := builder.BuildStatus(ctx)

		assert.ErrorIs(t, err, errs.ErrMissingField)
		assert.Equal(t, 0, store.Saves())
	})

	t.Run("Missing status payload", func(t *testing.T) {
		store := memstore.NewPayloadStore(map[entity.PayloadKind]*entity.Payload{
			entity.PayloadDeposit: depositPayload(),
		})
		builder := newTestBuilder(store)

		_, err := builder.BuildStatus(ctx)

		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}
