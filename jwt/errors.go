package jwt

import "github.com/cockroachdb/errors"

// Error kinds returned by the Issuer. Use errors.Is to match them.
var (
	// ErrMalformedPayload is returned when the payload is not a JSON object
	ErrMalformedPayload = errors.New("malformed payload")
	// ErrKeyDerivation is returned when the secret cannot be used as HMAC key
	ErrKeyDerivation = errors.New("key derivation failure")
	// ErrSigning is returned when the signing primitive fails
	ErrSigning = errors.New("signing failure")
)

func malformed(err error, msg string) error {
	return errors.Mark(errors.WithMessage(err, msg), ErrMalformedPayload)
}
