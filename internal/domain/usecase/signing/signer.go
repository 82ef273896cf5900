package signing

import (
	"crypto/sha512"
	"encoding/hex"

	"github.com/amirhossein-jamali/psp-client/internal/domain/entity"
)

// SignatureLength is the length of a hex-encoded SHA-512 digest
const SignatureLength = sha512.Size * 2

// Sign returns the lowercase hex SHA-512 digest of message
func Sign(message []byte) string {
	sum := sha512.Sum512(message)
	return hex.EncodeToString(sum[:])
}

// Message returns the bytes a payload signature is computed over:
// the canonical query string followed by the shared secret.
func Message(payload *entity.Payload, secret string) []byte {
	return []byte(payload.Canonical() + secret)
}

// SignPayload computes the signature of payload under secret.
// Any "signed" field already present is ignored.
func SignPayload(payload *entity.Payload, secret string) string {
	return Sign(Message(payload, secret))
}

// Verify reports whether the payload's stored signature matches a fresh computation
func Verify(payload *entity.Payload, secret string) bool {
	stored, ok := payload.Signature()
	if !ok {
		return false
	}
	return stored == SignPayload(payload, secret)
}
