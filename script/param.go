package script

import (
	"fmt"

	"github.com/jaywonder20/fastcore/internal/common"
)

// ConvFunc coerces a raw command-line value into its final form. Raw values
// always arrive as strings; coercion funcs accept any so that an already
// converted value passes through unchanged.
type ConvFunc func(v any) (any, error)

// Param describes one function parameter's command-line contract: its help
// text, value coercion, and whether it is supplied as a flag or positionally.
// Action, NArgs, Const, Choices and Required are carried through to argument
// registration untouched.
//
// Opt is corrected by SetDefault during schema building: a parameter with a
// default becomes a flag, one without becomes a required positional. That
// single rule is the whole flag-vs-positional classification.
type Param struct {
	Help     string
	Type     ConvFunc
	Opt      bool
	Action   string
	NArgs    string
	Const    any
	Choices  []string
	Required bool

	def        any
	hasDefault bool
}

// SetDefault records the parameter's declared default value. A nil value
// means no default was declared, making the parameter positional. Any other
// value makes it a flag and appends "(default: <value>)" to the help text.
// Called exactly once per parameter while the schema is built.
func (p *Param) SetDefault(v any) {
	if v == nil {
		p.Opt = false
		return
	}
	p.Opt = true
	p.def = v
	p.hasDefault = true
	p.Help += fmt.Sprintf(" (default: %s)", common.FormatValue(v))
}

// Default returns the recorded default value and whether one was declared.
func (p *Param) Default() (any, bool) {
	return p.def, p.hasDefault
}

// Prefix returns the argument-name prefix: "--" for flags, empty for
// positionals.
func (p *Param) Prefix() string {
	if p.Opt {
		return "--"
	}
	return ""
}

// Fields assembles the declarative keyword set handed to argument
// registration: every populated attribute except Opt itself.
func (p *Param) Fields() map[string]any {
	fields := make(map[string]any)
	if p.Help != "" {
		fields["help"] = p.Help
	}
	if p.Type != nil {
		fields["type"] = p.Type
	}
	if p.Action != "" {
		fields["action"] = p.Action
	}
	if p.NArgs != "" {
		fields["nargs"] = p.NArgs
	}
	if p.Const != nil {
		fields["const"] = p.Const
	}
	if len(p.Choices) > 0 {
		fields["choices"] = p.Choices
	}
	if p.Required {
		fields["required"] = p.Required
	}
	return fields
}
