package jwt

import (
	"encoding/json"
	"strings"

	"github.com/cockroachdb/errors"
)

// ParseUnverified parses the token but doesn't validate the signature.
// It is only useful to inspect tokens produced by the Issuer.
func ParseUnverified(tokenString string) (*Token, error) {
	parts := strings.Split(strings.TrimSpace(tokenString), ".")
	if len(parts) != 3 {
		return nil, errors.New("malformed token")
	}

	token := &Token{
		Raw:       tokenString,
		Signature: parts[2],
	}

	headerBytes, err := DecodeSegment(parts[0])
	if err != nil {
		return nil, errors.WithMessage(err, "failed to decode header")
	}
	if err = json.Unmarshal(headerBytes, &token.Header); err != nil {
		return nil, errors.WithMessage(err, "failed to unmarshal header")
	}
	if token.SigningMethod() == "" {
		return nil, errors.New("invalid token: no alg specified")
	}

	claimBytes, err := DecodeSegment(parts[1])
	if err != nil {
		return nil, errors.WithMessage(err, "failed to decode claims")
	}
	token.Claims, err = ParseClaims(string(claimBytes))
	if err != nil {
		return nil, errors.WithMessage(err, "failed to unmarshal claims")
	}

	return token, nil
}
