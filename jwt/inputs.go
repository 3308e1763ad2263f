package jwt

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Inputs is the record accepted by the token function
type Inputs struct {
	// SecretKey is the shared HMAC secret
	SecretKey string `json:"secret_key" yaml:"secret_key"`
	// Payload is the JSON text of the claims
	Payload string `json:"payload" yaml:"payload"`
}

type rawInputs struct {
	SecretKey string `json:"secret_key" yaml:"secret_key"`
	Payload   any    `json:"payload" yaml:"payload"`
}

// Issue returns token for the inputs
func (in *Inputs) Issue(issuer *Issuer) (string, error) {
	if in.SecretKey == "" {
		return "", errors.Mark(errors.New("missing secret_key"), ErrKeyDerivation)
	}
	if strings.TrimSpace(in.Payload) == "" {
		return "", errors.Mark(errors.New("missing payload"), ErrMalformedPayload)
	}
	if issuer == nil {
		issuer = defaultIssuer
	}
	return issuer.Issue(in.SecretKey, in.Payload)
}

// LoadInputs returns the inputs record loaded from a file,
// JSON if the file has .json extension, YAML otherwise.
func LoadInputs(file string) (*Inputs, error) {
	raw, err := os.ReadFile(file)
	if err != nil {
		return nil, errors.WithMessage(err, "unable to read file")
	}

	in, err := ParseInputs(raw, strings.HasSuffix(file, ".json"))
	if err != nil {
		return nil, errors.WithMessagef(err, "unable to load %q", file)
	}
	return in, nil
}

// ParseInputs decodes the inputs record.
// The payload may be given as JSON text or as an inline object.
func ParseInputs(raw []byte, isJSON bool) (*Inputs, error) {
	var ri rawInputs
	if isJSON {
		d := json.NewDecoder(bytes.NewReader(raw))
		d.UseNumber()
		if err := d.Decode(&ri); err != nil {
			return nil, errors.WithMessage(err, "unable parse JSON")
		}
	} else {
		if err := yaml.Unmarshal(raw, &ri); err != nil {
			return nil, errors.WithMessage(err, "unable parse YAML")
		}
	}

	in := &Inputs{
		SecretKey: ri.SecretKey,
	}
	switch p := ri.Payload.(type) {
	case nil:
	case string:
		in.Payload = p
	default:
		claims := Claims{}
		if err := claims.Add(p); err != nil {
			return nil, malformed(err, "invalid payload")
		}
		js, err := marshalSegment(claims)
		if err != nil {
			return nil, malformed(err, "unable to encode payload")
		}
		in.Payload = string(js)
	}
	return in, nil
}
