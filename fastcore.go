package fastcore

import (
	"github.com/jaywonder20/fastcore/script"
)

// CallParse turns an annotated signature into a command-line interface and
// runs it against the process arguments immediately. Parameters with a
// default value become --name flags, parameters without one become required
// positional arguments, and the reserved --xtra flag accepts program-name
// encoded argument overrides.
//
// Usage:
//
//	func main() {
//		fastcore.CallParse(fastcore.Signature{
//			Doc: "Greet somebody",
//			Args: []fastcore.Arg{
//				{Name: "name", Param: &fastcore.Param{Help: "Who to greet"}},
//				{Name: "loud", Default: false, Param: &fastcore.Param{Type: fastcore.BoolArg}},
//			},
//		}, func(ns fastcore.Namespace) error {
//			greeting := "hello " + ns.String("name")
//			if ns.Bool("loud") {
//				greeting = strings.ToUpper(greeting)
//			}
//			fmt.Println(greeting)
//			return nil
//		})
//	}
var CallParse = script.CallParse

// NewCommand binds a signature to a handler without executing anything.
// The returned Command exposes both execution modes: Run parses process
// tokens and dispatches, Call invokes the handler directly so that
// in-process callers see a plain function.
var NewCommand = script.NewCommand

// BuildParser translates a signature into a configured parser without
// running it, for callers that drive parsing themselves or only want the
// generated help text.
var BuildParser = script.BuildParser

// ArgsFromProg decodes argument values embedded in a program's invocation
// name, e.g. "tool##a#0#b#baa". See the script package for the grammar.
var ArgsFromProg = script.ArgsFromProg

// BoolArg parses human boolean text (yes/no, true/false, t/f, y/n, 1/0,
// any letter case). Register it as the Type of boolean parameters; CLI
// values always arrive as text, so native boolean parsing does not apply.
var BoolArg = script.BoolArg

// IntArg parses integer text.
var IntArg = script.IntArg

// StrArg passes string values through unchanged.
var StrArg = script.StrArg
