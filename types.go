package fastcore

import "github.com/jaywonder20/fastcore/script"

// Param describes one parameter's command-line contract: help text, value
// coercion, and pass-through registration attributes. Its Opt field is
// corrected while the schema is built: a declared default value makes the
// parameter a flag, no default makes it a required positional.
//
// Usage:
//
//	fastcore.Arg{
//		Name:    "level",
//		Default: "info",
//		Param:   &fastcore.Param{Help: "Log level", Choices: []string{"debug", "info", "warn"}},
//	}
type Param = script.Param

// Arg declares one parameter of the target function, in order: its name,
// default value (nil means none, i.e. positional and required), and an
// optional Param annotation.
type Arg = script.Arg

// Signature is the ordered parameter list of the target function, together
// with the description shown in help output and an optional version string
// that enables a --version flag.
type Signature = script.Signature

// Parser is a configured parsing context produced by BuildParser.
type Parser = script.Parser

// Namespace holds parsed argument values keyed by parameter name, with
// typed accessors for the common cases.
//
// Usage:
//
//	func run(ns fastcore.Namespace) error {
//		port := ns.Int("port")
//		...
//	}
type Namespace = script.Namespace

// Handler is the function a bound command dispatches to.
type Handler = script.Handler

// Command binds a signature to a handler and exposes the two execution
// modes: Run (parse process tokens, then dispatch) and Call (transparent
// pass-through).
type Command = script.Command

// ConvFunc coerces a raw command-line value into its final form.
type ConvFunc = script.ConvFunc
