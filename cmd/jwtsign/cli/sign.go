package cli

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/jwtsign/jwt"
	"github.com/effective-security/xlog"
)

// SignCmd issues a token from the command line flags
type SignCmd struct {
	Secret      string        `help:"shared HMAC secret" env:"JWTSIGN_SECRET" required:""`
	Payload     string        `help:"JSON object with the token claims"`
	PayloadFile string        `name:"payload-file" help:"file with the JSON claims, or - for stdin"`
	Lifetime    time.Duration `help:"token lifetime" default:"1000s"`
}

// Run the command
func (a *SignCmd) Run(ctx *Cli) error {
	payload := a.Payload
	if a.PayloadFile != "" {
		if payload != "" {
			return errors.New("--payload and --payload-file are mutually exclusive")
		}
		raw, err := ctx.ReadFile(a.PayloadFile)
		if err != nil {
			return errors.WithMessage(err, "unable to read payload")
		}
		payload = string(raw)
	}
	if strings.TrimSpace(payload) == "" {
		return errors.New("--payload or --payload-file is required")
	}

	issuer := jwt.NewIssuer(
		jwt.WithLifetime(a.Lifetime),
		jwt.WithOutput(ctx.Writer()),
	)
	_, err := issuer.Issue(a.Secret, payload)
	if err != nil {
		return errors.WithMessage(err, "unable to issue token")
	}
	return nil
}

// RunCmd issues a token from the secret_key and payload input record
type RunCmd struct {
	Inputs string `kong:"arg" required:"" help:"input record file, JSON or YAML, or - for JSON on stdin"`
}

// Run the command
func (a *RunCmd) Run(ctx *Cli) error {
	var in *jwt.Inputs
	var err error
	if a.Inputs == "-" {
		raw, rerr := ctx.ReadFile(a.Inputs)
		if rerr != nil {
			return errors.WithMessage(rerr, "unable to read inputs")
		}
		in, err = jwt.ParseInputs(raw, true)
	} else {
		in, err = jwt.LoadInputs(a.Inputs)
	}
	if err != nil {
		return errors.WithMessage(err, "unable to load inputs")
	}

	logger.KV(xlog.DEBUG, "status", "run", "inputs", a.Inputs)

	_, err = in.Issue(jwt.NewIssuer(jwt.WithOutput(ctx.Writer())))
	if err != nil {
		return errors.WithMessage(err, "unable to issue token")
	}
	return nil
}
