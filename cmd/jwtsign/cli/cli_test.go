package cli

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/effective-security/x/ctl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContext(t *testing.T) {
	var c Cli

	assert.NotNil(t, c.ErrWriter())
	assert.NotNil(t, c.Writer())
	assert.NotNil(t, c.Reader())

	c.WithErrWriter(os.Stderr)
	c.WithReader(os.Stdin)
	c.WithWriter(os.Stdout)

	assert.NotNil(t, c.ErrWriter())
	assert.NotNil(t, c.Writer())
	assert.NotNil(t, c.Reader())

	out := bytes.NewBuffer([]byte{})
	c.WithWriter(out)
	c.WriteJSON(struct{}{})
	assert.Equal(t, "{}\n", out.String())
}

func TestReadFile(t *testing.T) {
	var c Cli
	c.WithReader(strings.NewReader("from stdin"))

	_, err := c.ReadFile("")
	assert.EqualError(t, err, "empty file name")

	b, err := c.ReadFile("-")
	require.NoError(t, err)
	assert.Equal(t, "from stdin", string(b))

	_, err = c.ReadFile("testdata/missing.json")
	assert.Error(t, err)
}

func TestParse(t *testing.T) {
	var cl struct {
		Cli

		Sign SignCmd `kong:"cmd"`
	}

	p := mustNew(t, &cl)
	ctx, err := p.Parse([]string{"sign", "--secret=s", `--payload={"sub":"u1"}`, "--lifetime=1h", "-D"})
	require.NoError(t, err)
	require.Equal(t, "sign", ctx.Command())
	assert.Equal(t, "s", cl.Sign.Secret)
	assert.Equal(t, `{"sub":"u1"}`, cl.Sign.Payload)
	assert.Equal(t, "1h0m0s", cl.Sign.Lifetime.String())
	assert.True(t, cl.Debug)
}

func TestParseMissingSecret(t *testing.T) {
	var cl struct {
		Cli

		Sign SignCmd `kong:"cmd"`
	}

	p := mustNew(t, &cl)
	_, err := p.Parse([]string{"sign", "--payload={}"})
	assert.EqualError(t, err, "missing flags: --secret=STRING")
}

func TestParseSecretFromEnv(t *testing.T) {
	t.Setenv("JWTSIGN_SECRET", "from-env")

	var cl struct {
		Cli

		Sign SignCmd `kong:"cmd"`
	}

	p := mustNew(t, &cl)
	_, err := p.Parse([]string{"sign", "--payload={}"})
	require.NoError(t, err)
	assert.Equal(t, "from-env", cl.Sign.Secret)
	assert.Equal(t, "16m40s", cl.Sign.Lifetime.String())
}

func mustNew(t *testing.T, cli any, options ...kong.Option) *kong.Kong {
	t.Helper()
	options = append([]kong.Option{
		kong.Name("test"),
		kong.Exit(func(int) {
			t.Helper()
			t.Fatalf("unexpected exit()")
		}),
		ctl.BoolPtrMapper,
	}, options...)
	parser, err := kong.New(cli, options...)
	require.NoError(t, err)

	return parser
}
