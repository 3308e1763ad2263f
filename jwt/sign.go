package jwt

/*
MIT License.

Copyright 2022 Denis Issoupov

Permission is hereby granted, free of charge, to any person obtaining
a copy of this software and associated documentation files (the
"Software"), to deal in the Software without restriction, including
without limitation the rights to use, copy, modify, merge, publish,
distribute, sublicense, and/or sell copies of the Software, and to
permit persons to whom the Software is furnished to do so, subject to
the following conditions:

The above copyright notice and this permission notice shall be
included in all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE
LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION
OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION
WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
*/

import (
	"bytes"
	"crypto"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/json"
	"io"

	"github.com/cockroachdb/errors"
)

// AlgHS256 is the only supported signature algorithm
const AlgHS256 = "HS256"

type symSigner struct {
	hash crypto.Hash
	algo string
	key  []byte
}

func newSymmetricSigner(algo string, key []byte) (crypto.Signer, error) {
	if len(key) == 0 {
		return nil, errors.Mark(errors.New("empty secret key"), ErrKeyDerivation)
	}

	s := &symSigner{
		algo: algo,
		key:  key,
	}

	switch algo {
	case AlgHS256:
		s.hash = crypto.SHA256
	default:
		return nil, errors.Mark(errors.Newf("unsupported algorithm: %s", algo), ErrKeyDerivation)
	}
	return s, nil
}

// Public implements crypto.Signer
func (s *symSigner) Public() crypto.PublicKey {
	return s
}

// Sign implements crypto.Signer.
// The digest is the signing string itself, HMAC does the hashing.
func (s *symSigner) Sign(_ io.Reader, digest []byte, opts crypto.SignerOpts) ([]byte, error) {
	hash := s.hash
	if opts != nil {
		hash = opts.HashFunc()
	}
	if hash != crypto.SHA256 || !hash.Available() {
		return nil, errors.Errorf("unsupported hash: %v", hash)
	}

	h := hmac.New(sha256.New, s.key)
	h.Write(digest)

	return h.Sum(nil), nil
}

// SignerInfo represents JWT signer
type SignerInfo struct {
	keySize int
	algo    string
	signer  crypto.Signer
}

// NewSignerInfo returns *SignerInfo
func NewSignerInfo(signer crypto.Signer) (*SignerInfo, error) {
	si := &SignerInfo{
		signer: signer,
	}

	switch typ := signer.Public().(type) {
	case *symSigner:
		si.keySize = len(typ.key) * 8
		si.algo = typ.algo
	default:
		return nil, errors.Mark(errors.Errorf("public key not supported: %T", typ), ErrKeyDerivation)
	}
	return si, nil
}

// Algorithm returns the alg header value
func (si *SignerInfo) Algorithm() string {
	return si.algo
}

// KeySize returns the size of the key in bits
func (si *SignerInfo) KeySize() int {
	return si.keySize
}

// sign returns signed segment
func (si *SignerInfo) sign(signingString string) (string, error) {
	sig, err := si.signer.Sign(nil, []byte(signingString), nil)
	if err != nil {
		return "", errors.Mark(errors.WithMessage(err, "unable to sign"), ErrSigning)
	}
	return EncodeSegment(sig), nil
}

func (si *SignerInfo) signJWT(claims any) (string, error) {
	header := map[string]any{
		"typ": "JWT",
		"alg": si.algo,
	}

	jsonHeader, err := marshalSegment(header)
	if err != nil {
		return "", errors.Mark(errors.WithMessage(err, "unable to encode header"), ErrSigning)
	}
	jsonClaims, err := marshalSegment(claims)
	if err != nil {
		return "", errors.Mark(errors.WithMessage(err, "unable to encode claims"), ErrSigning)
	}

	sstr := EncodeSegment(jsonHeader) + "." + EncodeSegment(jsonClaims)
	sig, err := si.sign(sstr)
	if err != nil {
		return "", err
	}
	return sstr + "." + sig, nil
}

// marshalSegment encodes v as compact JSON without HTML escaping.
// Map keys are written in sorted order.
func marshalSegment(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, errors.WithStack(err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte{'\n'}), nil
}
