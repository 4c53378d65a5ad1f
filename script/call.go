package script

import (
	"fmt"
	"os"

	"github.com/jaywonder20/fastcore/internal/common"
)

// Handler is the target function a command dispatches to, receiving the
// resolved argument values by name.
type Handler func(ns Namespace) error

// Command binds a signature to a handler. The launcher decides the execution
// mode once, by the method it calls: Run parses process input and dispatches
// (entry-point mode), Call passes through to the handler untouched (library
// mode).
type Command struct {
	// Prog overrides the display name; when empty the process invocation
	// name is used.
	Prog string

	sig Signature
	fn  Handler
}

// NewCommand binds sig to fn without executing anything.
func NewCommand(sig Signature, fn Handler) *Command {
	return &Command{sig: sig, fn: fn}
}

// Call invokes the handler directly, bypassing argument parsing entirely.
func (c *Command) Call(ns Namespace) error { return c.fn(ns) }

// Run builds the parser for the bound signature, parses argv, applies the
// program-name argument overlay carried by --xtra, and dispatches to the
// handler. The --xtra value "1" means "decode my own invocation name"; any
// other value is decoded as given. Extracted values overwrite parsed ones,
// and the xtra entry itself never reaches the handler.
func (c *Command) Run(argv []string) error {
	prog := c.Prog
	if prog == "" {
		prog = common.ProgName(os.Args[0])
	}

	parser, err := BuildParser(c.sig, prog)
	if err != nil {
		return err
	}
	ns, err := parser.Parse(argv)
	if err != nil {
		return err
	}

	if x := ns.String(XtraName); x != "" {
		if x == "1" {
			x = prog
		}
		extra, err := ArgsFromProg(c.sig, x)
		if err != nil {
			return err
		}
		for name, v := range extra {
			ns[name] = v
		}
	}
	delete(ns, XtraName)

	return c.fn(ns)
}

// CallParse is the entry-point convenience: it binds sig to fn, runs against
// the process arguments immediately, and exits non-zero on error. Intended
// to be the only call in a tool's main function.
func CallParse(sig Signature, fn Handler) {
	if err := NewCommand(sig, fn).Run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		osExit(1)
	}
}
