package cli

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/jwtsign/jwt"
)

// DecodeCmd prints the header and claims of a token.
// The signature is not verified.
type DecodeCmd struct {
	Token string `kong:"arg" required:"" help:"compact token, or - for stdin"`
}

// Run the command
func (a *DecodeCmd) Run(ctx *Cli) error {
	token := a.Token
	if token == "-" {
		raw, err := ctx.ReadFile(token)
		if err != nil {
			return errors.WithMessage(err, "unable to read token")
		}
		token = strings.TrimSpace(string(raw))
	}

	t, err := jwt.ParseUnverified(token)
	if err != nil {
		return errors.WithMessage(err, "unable to decode token")
	}

	ctx.WriteJSON(map[string]any{
		"header": t.Header,
		"claims": t.Claims,
	})
	return nil
}
