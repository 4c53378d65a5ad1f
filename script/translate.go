package script

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/pflag"

	"github.com/jaywonder20/fastcore/display"
	"github.com/jaywonder20/fastcore/errors"
	"github.com/jaywonder20/fastcore/internal/common"
)

var osExit = os.Exit // Mockable for testing

// XtraName is the reserved flag appended to every generated parser. Its
// value, when supplied, carries program-name-encoded arguments that are
// overlaid onto the parsed results before dispatch.
const XtraName = "xtra"

// Arg declares one parameter of the target function: its name, its default
// value, and optional CLI metadata. A nil Default means the parameter has no
// default and is therefore positional and required.
type Arg struct {
	Name    string
	Default any
	Param   *Param
}

// Signature is the ordered parameter list of the target function together
// with the description shown in help output. When Version is set the
// generated parser accepts a --version flag.
type Signature struct {
	Doc     string
	Version string
	Args    []Arg
}

// ParamFor returns the declared descriptor for the named parameter, or nil
// when the parameter is undeclared or carries no annotation.
func (s Signature) ParamFor(name string) *Param {
	for _, a := range s.Args {
		if a.Name == name {
			return a.Param
		}
	}
	return nil
}

type positional struct {
	name  string
	param *Param
}

// Parser is the configured parsing context for one signature: the underlying
// flag set plus the ordered positional bindings the flag library does not
// track itself.
type Parser struct {
	Flags *pflag.FlagSet
	Prog  string
	Doc   string

	sig         Signature
	positionals []positional
	flagVals    map[string]*flagValue
	xtra        *string
	help        *bool
	version     *bool
}

// reserved reports whether name is claimed by the generated parser itself.
func reserved(sig Signature, name string) bool {
	switch name {
	case XtraName, "help":
		return true
	case "version":
		return sig.Version != ""
	}
	return false
}

// BuildParser translates a signature into a parsing context. Each parameter
// is resolved to a descriptor (annotated or empty), classified by its default
// value, and registered under its prefixed name. The reserved --xtra and
// --help flags are appended after the declared parameters; a user parameter
// carrying a reserved name is a configuration error.
func BuildParser(sig Signature, prog string) (*Parser, error) {
	fs := pflag.NewFlagSet(prog, pflag.ExitOnError)
	fs.SortFlags = false

	p := &Parser{
		Flags:    fs,
		Prog:     prog,
		Doc:      sig.Doc,
		sig:      sig,
		flagVals: make(map[string]*flagValue),
	}

	seen := make(map[string]bool)
	for _, arg := range sig.Args {
		if reserved(sig, arg.Name) {
			return nil, errors.NewReservedName(arg.Name)
		}
		if seen[arg.Name] {
			return nil, errors.NewParseError(fmt.Sprintf("duplicate parameter name %q", arg.Name))
		}
		seen[arg.Name] = true

		param := new(Param)
		if arg.Param != nil {
			*param = *arg.Param
		}
		param.SetDefault(arg.Default)
		p.addArgument(param.Prefix()+arg.Name, param)
	}

	p.xtra = fs.String(XtraName, "", "Parse for additional args")
	p.help = fs.BoolP("help", "h", false, "Show this help message")
	if sig.Version != "" {
		p.version = fs.Bool("version", false, "Show version information")
	}

	fs.Usage = func() { fmt.Fprint(os.Stderr, p.Help()) }
	return p, nil
}

// addArgument registers one argument under its prefixed name: "--name"
// becomes a flag on the underlying flag set, a bare name becomes the next
// positional binding.
func (p *Parser) addArgument(name string, param *Param) {
	if flagName, ok := strings.CutPrefix(name, "--"); ok {
		fv := &flagValue{param: param}
		p.Flags.Var(fv, flagName, param.Help)
		switch param.Action {
		case "store_true":
			p.Flags.Lookup(flagName).NoOptDefVal = "true"
		case "store_const":
			if param.Const != nil {
				p.Flags.Lookup(flagName).NoOptDefVal = common.FormatValue(param.Const)
			}
		}
		p.flagVals[flagName] = fv
		return
	}
	p.positionals = append(p.positionals, positional{name: name, param: param})
}

// Parse runs the supplied tokens through the flag set, binds leftover tokens
// to the positional parameters in declaration order, and assembles the value
// set. Usage errors print the help text and terminate the process, matching
// the flag library's own error handling.
func (p *Parser) Parse(argv []string) (Namespace, error) {
	if err := p.Flags.Parse(argv); err != nil {
		return nil, err
	}

	if *p.help {
		fmt.Print(p.Help())
		osExit(0)
	}
	if p.version != nil && *p.version {
		fmt.Println(display.BuildVersion(p.Prog, p.sig.Version))
		osExit(0)
	}

	rest := p.Flags.Args()
	n := len(p.positionals)
	variadic := n > 0 && p.positionals[n-1].param.NArgs != ""

	want := n
	if variadic && p.positionals[n-1].param.NArgs == "*" {
		want = n - 1
	}
	if len(rest) < want {
		return nil, p.fail(errors.NewMissingArg(p.positionals[len(rest)].name))
	}
	if len(rest) > n && !variadic {
		return nil, p.fail(errors.NewParseError(
			fmt.Sprintf("unrecognized arguments: %s", strings.Join(rest[n:], " "))))
	}

	ns := Namespace{}
	for i, pos := range p.positionals {
		if variadic && i == n-1 {
			list := make([]any, 0, len(rest)-i)
			for _, raw := range rest[i:] {
				v, err := coerce(pos.param, raw)
				if err != nil {
					return nil, p.fail(err)
				}
				list = append(list, v)
			}
			ns[pos.name] = list
			break
		}
		v, err := coerce(pos.param, rest[i])
		if err != nil {
			return nil, p.fail(err)
		}
		ns[pos.name] = v
	}

	for name, fv := range p.flagVals {
		if fv.set {
			ns[name] = fv.val
			continue
		}
		d, _ := fv.param.Default()
		ns[name] = d
	}
	ns[XtraName] = *p.xtra

	return ns, nil
}

// Help renders the usage text for this parser.
func (p *Parser) Help() string {
	d := display.HelpData{Prog: p.Prog, Doc: p.Doc}
	for _, pos := range p.positionals {
		d.Arguments = append(d.Arguments, display.Argument{Name: pos.name, Help: pos.param.Help})
	}
	p.Flags.VisitAll(func(f *pflag.Flag) {
		rendered := "--" + f.Name
		if f.NoOptDefVal == "" {
			rendered += fmt.Sprintf(" [%s]", strings.ToUpper(f.Name))
		}
		d.Options = append(d.Options, display.Option{Flag: rendered, Help: f.Usage})
	})
	return display.BuildHelp(d)
}

// fail reports a usage error the same way the flag library does: message,
// usage text, exit 2.
func (p *Parser) fail(err error) error {
	fmt.Fprintln(os.Stderr, err)
	p.Flags.Usage()
	osExit(2)
	return err
}

// coerce validates a raw token against the parameter's choices and runs its
// type conversion, if any.
func coerce(param *Param, raw string) (any, error) {
	if len(param.Choices) > 0 && !slices.Contains(param.Choices, raw) {
		return nil, errors.NewInvalidArgument(
			fmt.Sprintf("invalid choice: %q (choose from %s)", raw, strings.Join(param.Choices, ", ")))
	}
	if param.Type == nil {
		return raw, nil
	}
	return param.Type(raw)
}

// flagValue adapts a Param to the flag library's value interface, so that
// type coercion and choice validation run inside the library's own error
// path.
type flagValue struct {
	param *Param
	val   any
	list  []any
	set   bool
}

func (f *flagValue) Set(s string) error {
	v, err := coerce(f.param, s)
	if err != nil {
		return err
	}
	if f.param.NArgs != "" {
		f.list = append(f.list, v)
		f.val = f.list
	} else {
		f.val = v
	}
	f.set = true
	return nil
}

func (f *flagValue) String() string {
	if d, ok := f.param.Default(); ok {
		return common.FormatValue(d)
	}
	return ""
}

func (f *flagValue) Type() string { return "value" }
