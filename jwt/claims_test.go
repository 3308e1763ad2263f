package jwt

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClaims(t *testing.T) {
	c, err := ParseClaims(`{"sub":"u1","n":1,"f":1.5,"aud":["a"],"obj":{"k":null}}`)
	require.NoError(t, err)
	assert.Equal(t, "u1", c["sub"])
	assert.Equal(t, json.Number("1"), c["n"])
	assert.Equal(t, json.Number("1.5"), c["f"])
	assert.Equal(t, []any{"a"}, c["aud"])
	assert.Equal(t, map[string]any{"k": nil}, c["obj"])

	c, err = ParseClaims(" \n{}\t")
	require.NoError(t, err)
	assert.Empty(t, c)

	for _, payload := range []string{"", "{", "[]", "null", "1", `"s"`, "false", "{}[]", "{} x", "{\"a\":\"\xff\xfe\"}"} {
		_, err = ParseClaims(payload)
		assert.True(t, errors.Is(err, ErrMalformedPayload), "payload %q: %v", payload, err)
	}
}

func TestClaims(t *testing.T) {
	c := Claims{
		"jti": "123",
	}
	c2 := Claims{
		"jti": "2",
	}
	c3 := gojwt.MapClaims{
		"c3": 333,
	}
	c4 := map[string]any{
		"c4": "444",
	}
	err := c.Add(c2, nil)
	require.NoError(t, err)
	assert.Equal(t, "2", c["jti"])

	err = c.Add(c3)
	require.NoError(t, err)
	assert.Equal(t, 333, c["c3"])

	err = c.Add(c4)
	require.NoError(t, err)
	assert.Equal(t, "444", c["c4"])
	assert.Len(t, c, 3)

	err = c.Add(3)
	assert.EqualError(t, err, "unsupported claims interface: int")

	err = c.Add(map[any]any{1: "a"})
	assert.EqualError(t, err, "unsupported claims interface: map[interface {}]interface {}")
	assert.Len(t, c, 3)
}

func TestParseClaimsInvalidUTF8(t *testing.T) {
	_, err := ParseClaims("{\"a\":\"\xff\xfe\"}")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedPayload))
	assert.EqualError(t, err, "payload is not valid UTF-8")

	c, err := ParseClaims(`{"a":"\u00ff"}`)
	require.NoError(t, err)
	assert.Equal(t, "ÿ", c["a"])
}

func TestClaimsAccessors(t *testing.T) {
	c := Claims{
		"str":    "s",
		"int":    12,
		"int64":  int64(13),
		"float":  float64(14),
		"number": json.Number("15"),
		"numstr": "16",
		"bad":    json.Number("1.5"),
		"bool":   true,
	}

	assert.Equal(t, "s", c.String("str"))
	assert.Equal(t, "12", c.String("int"))
	assert.Equal(t, "true", c.String("bool"))
	assert.Equal(t, "", c.String("missing"))

	assert.Equal(t, int64(12), c.Int64("int"))
	assert.Equal(t, int64(13), c.Int64("int64"))
	assert.Equal(t, int64(14), c.Int64("float"))
	assert.Equal(t, int64(15), c.Int64("number"))
	assert.Equal(t, int64(16), c.Int64("numstr"))
	assert.Equal(t, int64(0), c.Int64("str"))
	assert.Equal(t, int64(0), c.Int64("bad"))
	assert.Equal(t, int64(0), c.Int64("bool"))
	assert.Equal(t, int64(0), c.Int64("missing"))
}

func TestClaimsExpiresAt(t *testing.T) {
	exp := time.Unix(1700001000, 0)

	tcases := []struct {
		val any
		exp *time.Time
	}{
		{int64(1700001000), &exp},
		{1700001000, &exp},
		{float64(1700001000), &exp},
		{json.Number("1700001000"), &exp},
		{"1700001000", nil},
		{nil, nil},
	}
	for _, tc := range tcases {
		c := Claims{}
		if tc.val != nil {
			c[ClaimExpiry] = tc.val
		}
		got := c.ExpiresAt()
		if tc.exp == nil {
			assert.Nil(t, got, "%v", tc.val)
		} else if assert.NotNil(t, got, "%v", tc.val) {
			assert.Equal(t, tc.exp.Unix(), got.Unix())
		}
	}
}
