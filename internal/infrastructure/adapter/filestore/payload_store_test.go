package filestore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/amirhossein-jamali/psp-client/internal/domain/entity"
	errs "github.com/amirhossein-jamali/psp-client/internal/domain/error"
	"github.com/amirhossein-jamali/psp-client/internal/domain/usecase/signing"
	"github.com/amirhossein-jamali/psp-client/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const depositJSON = `{
    "amount": 100,
    "currency": "USD",
    "customer": "c1",
    "merchant": "m1",
    "txcode": 5
}
`

func newStoreInDir(t *testing.T) (*PayloadStore, string) {
	t.Helper()
	dir := t.TempDir()
	store := NewPayloadStore(PayloadPaths{
		entity.PayloadDeposit:    filepath.Join(dir, "deposit.json"),
		entity.PayloadStatus:     filepath.Join(dir, "status.json"),
		entity.PayloadWithdrawal: filepath.Join(dir, "withdrawal.json"),
	}, logger.NewNoopLogger())
	return store, dir
}

func TestPayloadStoreLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("Reads fields in file order", func(t *testing.T) {
		store, dir := newStoreInDir(t)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "deposit.json"), []byte(depositJSON), 0o644))

		payload, err := store.Load(ctx, entity.PayloadDeposit)

		require.NoError(t, err)
		assert.Equal(t, []string{"amount", "currency", "customer", "merchant", "txcode"}, payload.Keys())
	})

	t.Run("Missing file", func(t *testing.T) {
		store, _ := newStoreInDir(t)

		_, err := store.Load(ctx, entity.PayloadWithdrawal)

		assert.ErrorIs(t, err, errs.ErrNotFound)
		var payloadErr *errs.PayloadError
		require.ErrorAs(t, err, &payloadErr)
		assert.Equal(t, "withdrawal", payloadErr.Kind)
	})

	t.Run("Malformed file", func(t *testing.T) {
		store, dir := newStoreInDir(t)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "status.json"), []byte(`{"amount": 100,`), 0o644))

		_, err := store.Load(ctx, entity.PayloadStatus)

		assert.ErrorIs(t, err, errs.ErrParse)
	})

	t.Run("Unconfigured kind", func(t *testing.T) {
		store := NewPayloadStore(PayloadPaths{}, logger.NewNoopLogger())

		_, err := store.Load(ctx, entity.PayloadDeposit)

		assert.ErrorIs(t, err, errs.ErrInvalidArgument)
	})
}

func TestPayloadStoreSave(t *testing.T) {
	ctx := context.Background()

	t.Run("Writes indented JSON in key order", func(t *testing.T) {
		store, dir := newStoreInDir(t)
		payload, err := entity.ParsePayload([]byte(depositJSON))
		require.NoError(t, err)

		require.NoError(t, store.Save(ctx, entity.PayloadDeposit, payload))

		data, err := os.ReadFile(filepath.Join(dir, "deposit.json"))
		require.NoError(t, err)
		assert.Equal(t, depositJSON, string(data))
	})

	t.Run("Overwrites and leaves no temporary files", func(t *testing.T) {
		store, dir := newStoreInDir(t)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "deposit.json"), []byte(`{"old": true}`), 0o644))

		payload := entity.NewPayload()
		payload.Set(entity.FieldTxCode, entity.IntValue(9))
		require.NoError(t, store.Save(ctx, entity.PayloadDeposit, payload))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "deposit.json", entries[0].Name())

		reloaded, err := store.Load(ctx, entity.PayloadDeposit)
		require.NoError(t, err)
		assert.Equal(t, []string{"txcode"}, reloaded.Keys())
	})

	t.Run("Creates missing directories", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "nested", "payloads", "status.json")
		store := NewPayloadStore(PayloadPaths{entity.PayloadStatus: path}, logger.NewNoopLogger())

		require.NoError(t, store.Save(ctx, entity.PayloadStatus, entity.NewPayload()))
		_, err := os.Stat(path)
		assert.NoError(t, err)
	})

	t.Run("Write failure", func(t *testing.T) {
		dir := t.TempDir()
		blocker := filepath.Join(dir, "blocker")
		require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))
		store := NewPayloadStore(PayloadPaths{
			entity.PayloadDeposit: filepath.Join(blocker, "deposit.json"),
		}, logger.NewNoopLogger())

		err := store.Save(ctx, entity.PayloadDeposit, entity.NewPayload())

		assert.ErrorIs(t, err, errs.ErrIO)
	})
}

func TestPayloadStoreSignedRoundTrip(t *testing.T) {
	ctx := context.Background()
	const secret = "shared-secret"
	store, _ := newStoreInDir(t)

	payload, err := entity.ParsePayload([]byte(`{"amount": 10.50, "currency": "EUR", "note": "a&b c", "txcode": "12"}`))
	require.NoError(t, err)
	payload.Set(entity.FieldSigned, entity.StringValue(signing.SignPayload(payload, secret)))

	require.NoError(t, store.Save(ctx, entity.PayloadWithdrawal, payload))
	reloaded, err := store.Load(ctx, entity.PayloadWithdrawal)
	require.NoError(t, err)

	assert.Equal(t, payload.QueryString(), reloaded.QueryString())
	assert.True(t, signing.Verify(reloaded, secret))
}
