// Package jwt issues compact JSON Web Tokens signed with HMAC-SHA256.
//
// The package provides:
//   - an Issuer that turns a shared secret and a JSON claims payload into a
//     signed token, overwriting the exp claim with the issuance lifetime
//   - Claims, a generic map of JSON claims with typed accessors
//   - Inputs, the secret_key/payload record accepted by the command line tool
//   - ParseUnverified, to inspect the header and claims of an issued token
//
// Token verification, key management and asymmetric algorithms are not
// provided.
package jwt
