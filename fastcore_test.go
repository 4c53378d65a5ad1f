package fastcore_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaywonder20/fastcore"
)

func TestBuildParser_Facade(t *testing.T) {
	sig := fastcore.Signature{
		Doc: "facade check",
		Args: []fastcore.Arg{
			{Name: "in", Param: &fastcore.Param{Help: "input file"}},
			{Name: "n", Default: 2, Param: &fastcore.Param{Type: fastcore.IntArg}},
		},
	}

	p, err := fastcore.BuildParser(sig, "facade")
	require.NoError(t, err)

	help := p.Help()
	assert.Contains(t, help, "facade")
	assert.Contains(t, help, "[IN]")
	assert.Contains(t, help, "--n [N]")
	assert.Contains(t, help, "--xtra [XTRA]")
}

func TestCallParse_Facade(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"facade", "input.txt", "--n", "4"}

	var got fastcore.Namespace
	fastcore.CallParse(fastcore.Signature{
		Args: []fastcore.Arg{
			{Name: "in"},
			{Name: "n", Default: 2, Param: &fastcore.Param{Type: fastcore.IntArg}},
		},
	}, func(ns fastcore.Namespace) error {
		got = ns
		return nil
	})

	require.NotNil(t, got)
	assert.Equal(t, "input.txt", got.String("in"))
	assert.Equal(t, 4, got.Int("n"))
}

func TestCommand_BothModes(t *testing.T) {
	calls := 0
	cmd := fastcore.NewCommand(fastcore.Signature{
		Args: []fastcore.Arg{{Name: "who", Default: "world"}},
	}, func(ns fastcore.Namespace) error {
		calls++
		return nil
	})
	cmd.Prog = "modes"

	require.NoError(t, cmd.Run(nil))
	require.NoError(t, cmd.Call(fastcore.Namespace{"who": "direct"}))
	assert.Equal(t, 2, calls)
}
