package display

import (
	"fmt"
	"strings"
)

const (
	ansiReset     = "\033[0m"
	ansiBold      = "\033[1m"
	ansiUnderline = "\033[4m"
)

// ansiHelp wraps s in the given ANSI style codes.
func ansiHelp(s string, codes ...string) string {
	if len(codes) == 0 {
		return s
	}
	return strings.Join(codes, "") + s + ansiReset
}

// Argument is one positional argument line in the help output.
type Argument struct {
	Name string
	Help string
}

// Option is one flag line in the help output. Flag carries the full rendered
// form, e.g. "--port [PORT]".
type Option struct {
	Flag string
	Help string
}

// HelpData is the schema handed over by the parser for rendering. It carries
// everything the help text needs so that this package stays independent of
// how the schema was built.
type HelpData struct {
	Prog      string
	Doc       string
	Arguments []Argument
	Options   []Option
}

// BuildHelp renders the usage text for a built parser schema: a usage line,
// the tool description, and aligned Arguments/Options sections.
func BuildHelp(d HelpData) string {
	var builder strings.Builder
	builder.WriteString(ansiHelp("Usage:", ansiBold, ansiUnderline) + " ")
	builder.WriteString(ansiHelp(d.Prog, ansiBold))

	for _, arg := range d.Arguments {
		builder.WriteString(fmt.Sprintf(" [%s]", strings.ToUpper(arg.Name)))
	}
	if len(d.Options) > 0 {
		builder.WriteString(" [OPTIONS]")
	}
	builder.WriteString("\n")

	if d.Doc != "" {
		builder.WriteString("\n" + d.Doc + "\n")
	}

	if len(d.Arguments) > 0 {
		builder.WriteString("\n" + ansiHelp("Arguments:", ansiBold, ansiUnderline) + "\n")
		builder.WriteString(argsHelp(d.Arguments))
	}

	if len(d.Options) > 0 {
		builder.WriteString("\n" + ansiHelp("Options:", ansiBold, ansiUnderline) + "\n")
		builder.WriteString(optionsHelp(d.Options))
	}

	return builder.String()
}

// === HELPERS ===

// argsHelp generates the aligned lines for positional arguments.
func argsHelp(args []Argument) string {
	var lines []string
	maxLen := 0

	for _, arg := range args {
		left := fmt.Sprintf("  [%s]", strings.ToUpper(arg.Name))
		if len(left) > maxLen {
			maxLen = len(left)
		}
		lines = append(lines, fmt.Sprintf("%s||%s", left, arg.Help))
	}

	var builder strings.Builder
	for _, line := range lines {
		parts := strings.SplitN(line, "||", 2)
		padding := strings.Repeat(" ", maxLen-len(parts[0])+1)
		builder.WriteString(fmt.Sprintf("%s%s %s\n", parts[0], padding, parts[1]))
	}
	return builder.String()
}

// optionsHelp generates the aligned lines for flags.
func optionsHelp(opts []Option) string {
	var lines []string
	maxLen := 0

	for _, opt := range opts {
		left := "  " + opt.Flag
		if len(left) > maxLen {
			maxLen = len(left)
		}
		lines = append(lines, fmt.Sprintf("%s||%s", left, opt.Help))
	}

	var builder strings.Builder
	for _, line := range lines {
		parts := strings.SplitN(line, "||", 2)
		padding := strings.Repeat(" ", maxLen-len(parts[0]))
		builder.WriteString(fmt.Sprintf("%s%s  %s\n", parts[0], padding, parts[1]))
	}
	return builder.String()
}
