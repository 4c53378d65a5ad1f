package script

import (
	"fmt"
	"strings"

	"github.com/jaywonder20/fastcore/errors"
)

// progMarker separates an arbitrary leading program name from the encoded
// argument tokens. Everything up to and including the first occurrence is
// discarded.
const progMarker = "##"

// ArgsFromProg parses argument values encoded in a program's invocation
// name. The encoding is an alternating key/value sequence separated by '#',
// optionally preceded by "<anything>##": "tool##a#0#b#baa" and "a#0#b#baa"
// decode identically. Values are coerced through the declared parameter's
// type, when it has one; undeclared or untyped keys keep their raw text.
// An odd token count fails with an InvalidArgumentError.
func ArgsFromProg(sig Signature, prog string) (Namespace, error) {
	if i := strings.Index(prog, progMarker); i >= 0 {
		prog = prog[i+len(progMarker):]
	}
	if prog == "" {
		return Namespace{}, nil
	}

	tokens := strings.Split(prog, "#")
	if len(tokens)%2 != 0 {
		return nil, errors.NewInvalidArgument(
			fmt.Sprintf("odd number of tokens in program name %q", prog))
	}

	ns := Namespace{}
	for i := 0; i < len(tokens); i += 2 {
		name, raw := tokens[i], tokens[i+1]
		var v any = raw
		if param := sig.ParamFor(name); param != nil && param.Type != nil {
			converted, err := param.Type(raw)
			if err != nil {
				return nil, err
			}
			v = converted
		}
		ns[name] = v
	}
	return ns, nil
}
