package signing

import (
	"testing"

	"github.com/amirhossein-jamali/psp-client/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func payloadFixture() *entity.Payload {
	p := entity.NewPayload()
	p.Set(entity.FieldAmount, entity.IntValue(100))
	p.Set(entity.FieldCurrency, entity.StringValue("USD"))
	p.Set(entity.FieldCustomer, entity.StringValue("c1"))
	p.Set(entity.FieldMerchant, entity.StringValue("m1"))
	p.Set(entity.FieldTxCode, entity.IntValue(5))
	return p
}

func TestSign(t *testing.T) {
	t.Run("Known digest", func(t *testing.T) {
		assert.Equal(t,
			"ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a"+
				"2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f",
			Sign([]byte("abc")))
	})

	t.Run("Hex encoded SHA-512 length", func(t *testing.T) {
		assert.Len(t, Sign(nil), SignatureLength)
	})
}

func TestSignPayload(t *testing.T) {
	const secret = "s3cr3t"

	t.Run("Deterministic", func(t *testing.T) {
		assert.Equal(t, SignPayload(payloadFixture(), secret), SignPayload(payloadFixture(), secret))
	})

	t.Run("Covers canonical query string plus secret", func(t *testing.T) {
		expected := Sign([]byte("amount=100&currency=USD&customer=c1&merchant=m1&txcode=5" + secret))
		assert.Equal(t, expected, SignPayload(payloadFixture(), secret))
	})

	t.Run("Changing a field changes the signature", func(t *testing.T) {
		changed := payloadFixture()
		changed.Set(entity.FieldAmount, entity.IntValue(101))
		assert.NotEqual(t, SignPayload(payloadFixture(), secret), SignPayload(changed, secret))
	})

	t.Run("Changing the secret changes the signature", func(t *testing.T) {
		assert.NotEqual(t, SignPayload(payloadFixture(), secret), SignPayload(payloadFixture(), "other"))
	})

	t.Run("Existing signature is ignored", func(t *testing.T) {
		signed := payloadFixture()
		signed.Set(entity.FieldSigned, entity.StringValue("stale"))
		assert.Equal(t, SignPayload(payloadFixture(), secret), SignPayload(signed, secret))
	})
}

func TestVerify(t *testing.T) {
	const secret = "s3cr3t"

	p := payloadFixture()
	assert.False(t, Verify(p, secret))

	p.Set(entity.FieldSigned, entity.StringValue(SignPayload(p, secret)))
	assert.True(t, Verify(p, secret))

	p.Set(entity.FieldCurrency, entity.StringValue("EUR"))
	assert.False(t, Verify(p, secret))
}
