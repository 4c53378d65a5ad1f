package script

import (
	"strconv"
	"strings"

	"github.com/jaywonder20/fastcore/errors"
)

// BoolArg coerces human-entered text into a boolean. Command-line values
// always arrive as text, so strconv.ParseBool alone is not enough: users
// write yes/no as readily as true/false. An already-boolean value is
// returned unchanged.
func BoolArg(v any) (any, error) {
	if b, ok := v.(bool); ok {
		return b, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, errors.NewInvalidArgument("Boolean value expected.")
	}
	switch strings.ToLower(s) {
	case "yes", "true", "t", "y", "1":
		return true, nil
	case "no", "false", "f", "n", "0":
		return false, nil
	}
	return nil, errors.NewInvalidArgument("Boolean value expected.")
}

// IntArg coerces text into an int. An already-int value passes through.
func IntArg(v any) (any, error) {
	if i, ok := v.(int); ok {
		return i, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, errors.NewInvalidArgument("Integer value expected.")
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return nil, errors.NewInvalidArgument("Integer value expected.")
	}
	return i, nil
}

// StrArg passes text through unchanged and rejects anything else.
func StrArg(v any) (any, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	return nil, errors.NewInvalidArgument("String value expected.")
}
