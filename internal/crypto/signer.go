package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"

	"golang.org/x/crypto/hkdf"
)

// ===== HMAC Signer =====

// SignatureHexLen is the length of every signature this package produces:
// HMAC-SHA256 rendered as lowercase hex.
const SignatureHexLen = 64

// Signer computes keyed signatures over canonical payload bytes.
//
// The key is shared between issuer and verifier, so a matching signature
// proves the payload has not changed since issuance to anyone holding the
// key. It does not prove authenticity against a party who also holds it.
// That is the documented trust model of this scheme, not an oversight.
type Signer struct {
	key []byte
}

// NewSigner derives the 32-byte signing key from the master secret with
// HKDF-SHA256. Distinct info strings keep this key separate from the
// store encryption key derived from the same secret.
func NewSigner(secret []byte) *Signer {
	h := hkdf.New(sha256.New, secret, nil, []byte("veriflow-signing-key"))
	key := make([]byte, 32)
	if _, err := io.ReadFull(h, key); err != nil {
		panic(err)
	}
	return &Signer{key: key}
}

// Sign returns the lowercase hex HMAC-SHA256 of data. Hashing well-formed
// bytes cannot fail, so there is no error return; malformed payloads are
// rejected before they reach the signer.
func (s *Signer) Sign(data []byte) string {
	mac := hmac.New(sha256.New, s.key)
	mac.Write(data)
	return hex.EncodeToString(mac.Sum(nil))
}

// SignaturesMatch reports whether two hex signatures are equal.
//
// Timing safety is deliberately not a requirement here: tokens are
// self-contained data verified client-side, not a live authentication
// boundary where a timing oracle would leak anything useful. hmac.Equal
// is used anyway since it costs nothing.
func SignaturesMatch(a, b string) bool {
	return hmac.Equal([]byte(a), []byte(b))
}
