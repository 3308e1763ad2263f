package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/effective-security/jwtsign/cmd/jwtsign/cli"
	"github.com/effective-security/jwtsign/internal/version"
	"github.com/effective-security/x/ctl"
)

type app struct {
	cli.Cli

	Sign   cli.SignCmd   `cmd:"" help:"issue HS256 token for a JSON payload"`
	Run    cli.RunCmd    `cmd:"" help:"issue token for a secret_key and payload input record"`
	Decode cli.DecodeCmd `cmd:"" help:"print header and claims of a token without verification"`
}

func main() {
	realMain(os.Args, os.Stdout, os.Stderr, os.Exit)
}

func realMain(args []string, out io.Writer, errout io.Writer, exit func(int)) {
	cl := app{
		Cli: cli.Cli{},
	}
	cl.Cli.WithErrWriter(errout).
		WithWriter(out)

	parser, err := kong.New(&cl,
		kong.Name("jwtsign"),
		kong.Description("HS256 JSON Web Token issuer"),
		kong.Writers(out, errout),
		kong.Exit(exit),
		ctl.BoolPtrMapper,
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version.Current().String(),
		})
	if err != nil {
		panic(err)
	}

	ctx, err := parser.Parse(args[1:])
	parser.FatalIfErrorf(err)

	if ctx != nil {
		err = ctx.Run(&cl.Cli)
		ctx.FatalIfErrorf(err)
	}
}
