package jwt

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	gojwt "github.com/golang-jwt/jwt/v5"
)

// ClaimExpiry is the registered expiration claim
const ClaimExpiry = "exp"

// Claims provides generic claims on map
type Claims gojwt.MapClaims

// ParseClaims decodes a JSON object into Claims.
// Numbers are kept as json.Number to preserve their precision.
func ParseClaims(payload string) (Claims, error) {
	if !utf8.ValidString(payload) {
		return nil, errors.Mark(errors.New("payload is not valid UTF-8"), ErrMalformedPayload)
	}

	dec := json.NewDecoder(strings.NewReader(payload))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, malformed(err, "unable to parse payload")
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.Mark(errors.New("unexpected data after payload"), ErrMalformedPayload)
	}

	m, ok := v.(map[string]any)
	if !ok {
		return nil, errors.Mark(errors.Newf("payload must be a JSON object, got %s", kindOf(v)), ErrMalformedPayload)
	}
	return Claims(m), nil
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number:
		return "number"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// Add new claims to the map
func (c Claims) Add(val ...any) error {
	for _, i := range val {
		if i == nil {
			continue
		}
		switch m := i.(type) {
		case map[string]any:
			c.merge(m)
		case Claims:
			c.merge(m)
		case gojwt.MapClaims:
			c.merge(m)
		default:
			return errors.Errorf("unsupported claims interface: %T", i)
		}
	}
	return nil
}

func (c Claims) merge(m map[string]any) {
	for k, v := range m {
		c[k] = v
	}
}

// String will return the named claim as a string,
// if the underlying type is not a string,
// it will try and co-oerce it to a string.
func (c Claims) String(k string) string {
	v := c[k]
	if v == nil {
		return ""
	}
	switch tv := v.(type) {
	case string:
		return tv
	default:
		return fmt.Sprint(v)
	}
}

// Int64 will return the named claim as an int64
func (c Claims) Int64(k string) int64 {
	switch tv := c[k].(type) {
	case int:
		return int64(tv)
	case int64:
		return tv
	case float64:
		return int64(tv)
	case json.Number:
		i, err := tv.Int64()
		if err != nil {
			return 0
		}
		return i
	case string:
		i, err := strconv.ParseInt(tv, 10, 64)
		if err != nil {
			return 0
		}
		return i
	default:
		return 0
	}
}

// ExpiresAt returns the exp claim, or nil if it is missing or not numeric
func (c Claims) ExpiresAt() *time.Time {
	switch tv := c[ClaimExpiry].(type) {
	case int64:
		t := time.Unix(tv, 0)
		return &t
	case int:
		t := time.Unix(int64(tv), 0)
		return &t
	}

	exp, err := gojwt.MapClaims(c).GetExpirationTime()
	if err != nil || exp == nil {
		return nil
	}
	return &exp.Time
}
