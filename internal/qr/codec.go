package qr

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"veriflow/internal/models"
)

// ErrDecodeFailure marks a token that could not be turned back into a
// payload: bad transport encoding, unparseable content, or missing
// required fields. Callers classify it; it never escapes as a panic.
var ErrDecodeFailure = errors.New("undecodable token")

// Encode serializes the full signed payload (signature included) to JSON
// and wraps it in unpadded URL-safe base64, making the token safe as a
// single query-parameter value with no embedded delimiters.
//
// This outer form does not need to be byte-deterministic — only the
// signing input does — but Decode accepts exactly this form and nothing
// else for the current payload version.
func Encode(p models.QRPayload) string {
	b, err := json.Marshal(p)
	if err != nil {
		panic(err) // struct of strings; cannot fail on well-formed payloads
	}
	return base64.RawURLEncoding.EncodeToString(b)
}

// Decode reverses Encode. Unknown members, trailing content, malformed
// base64 and absent required fields (companyId, createdAt, signature) all
// fail with an error wrapping ErrDecodeFailure.
func Decode(token string) (models.QRPayload, error) {
	var p models.QRPayload
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return p, fmt.Errorf("%w: transport encoding: %v", ErrDecodeFailure, err)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return models.QRPayload{}, fmt.Errorf("%w: payload form: %v", ErrDecodeFailure, err)
	}
	if dec.More() {
		return models.QRPayload{}, fmt.Errorf("%w: trailing content", ErrDecodeFailure)
	}
	if p.CompanyID == "" || p.CreatedAt == "" || p.Signature == "" {
		return models.QRPayload{}, fmt.Errorf("%w: missing required fields", ErrDecodeFailure)
	}
	return p, nil
}
