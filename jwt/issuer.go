package jwt

import (
	"fmt"
	"io"
	"time"

	"github.com/effective-security/jwtsign/metricskey"
	"github.com/effective-security/xlog"
)

var logger = xlog.NewPackageLogger("github.com/effective-security/jwtsign", "jwt")

// DefaultLifetime is the validity window applied to the exp claim
const DefaultLifetime = 1000 * time.Second

// TimeNowFn to override in unit tests
var TimeNowFn = time.Now

// measureIssue records the duration and result of Issue
var measureIssue = metricskey.PerfTokenIssue.MeasureSince

// Option configures the Issuer
type Option func(*Issuer)

// WithLifetime overrides DefaultLifetime.
// Non-positive values keep the default.
func WithLifetime(lifetime time.Duration) Option {
	return func(i *Issuer) {
		if lifetime > 0 {
			i.lifetime = lifetime
		}
	}
}

// WithClock overrides the time source
func WithClock(now func() time.Time) Option {
	return func(i *Issuer) {
		if now != nil {
			i.now = now
		}
	}
}

// WithOutput makes the Issuer print every issued token to w
func WithOutput(w io.Writer) Option {
	return func(i *Issuer) {
		i.out = w
	}
}

// Issuer produces HS256 signed tokens.
// It holds no mutable state and can be shared between goroutines.
type Issuer struct {
	lifetime time.Duration
	now      func() time.Time
	out      io.Writer
}

// NewIssuer returns new Issuer
func NewIssuer(opts ...Option) *Issuer {
	i := &Issuer{
		lifetime: DefaultLifetime,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Lifetime returns the validity window of issued tokens
func (i *Issuer) Lifetime() time.Duration {
	if i.lifetime <= 0 {
		return DefaultLifetime
	}
	return i.lifetime
}

func (i *Issuer) timeNow() time.Time {
	if i.now != nil {
		return i.now()
	}
	return TimeNowFn()
}

// Issue returns a compact JWT with payloadJSON claims signed by secretKey.
// The exp claim is always set to now + lifetime, replacing any provided value.
func (i *Issuer) Issue(secretKey, payloadJSON string) (token string, err error) {
	defer func(start time.Time) {
		result := "ok"
		if err != nil {
			result = "failed"
		}
		measureIssue(start, result)
	}(time.Now())

	signer, err := newSymmetricSigner(AlgHS256, []byte(secretKey))
	if err != nil {
		return "", err
	}
	si, err := NewSignerInfo(signer)
	if err != nil {
		return "", err
	}

	claims, err := ParseClaims(payloadJSON)
	if err != nil {
		logger.KV(xlog.DEBUG, "reason", "malformed_payload", "err", err.Error())
		return "", err
	}

	exp := i.timeNow().Add(i.Lifetime()).Unix()
	claims[ClaimExpiry] = exp

	token, err = si.signJWT(claims)
	if err != nil {
		return "", err
	}

	logger.KV(xlog.DEBUG,
		"status", "issued",
		"alg", si.Algorithm(),
		"key_size", si.KeySize(),
		"exp", exp)

	if i.out != nil {
		if _, werr := fmt.Fprintln(i.out, token); werr != nil {
			logger.KV(xlog.WARNING, "reason", "write_token", "err", werr.Error())
		}
	}
	return token, nil
}

var defaultIssuer = NewIssuer()

// Issue returns a compact JWT signed by secretKey with DefaultLifetime
func Issue(secretKey, payloadJSON string) (string, error) {
	return defaultIssuer.Issue(secretKey, payloadJSON)
}
