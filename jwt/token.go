package jwt

import "encoding/base64"

// Token for JWT
type Token struct {
	Raw       string         // The raw token. Populated when you Parse a token
	Header    map[string]any // The first segment of the token
	Claims    Claims         // The second segment of the token
	Signature string         // The third segment of the token
}

// SigningMethod returns the alg header value
func (t *Token) SigningMethod() string {
	alg, _ := t.Header["alg"].(string)
	return alg
}

// DecodeSegment JWT specific base64url encoding with padding stripped
func DecodeSegment(seg string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(seg)
}

// EncodeSegment returns JWT specific base64url encoding with padding stripped
func EncodeSegment(seg []byte) string {
	return base64.RawURLEncoding.EncodeToString(seg)
}
