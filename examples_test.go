package fastcore_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/jaywonder20/fastcore"
)

func Example_readme() {
	// Simulate command line arguments
	os.Args = []string{"greet", "world", "--loud", "yes"}

	fastcore.CallParse(fastcore.Signature{
		Doc: "Greet somebody",
		Args: []fastcore.Arg{
			{Name: "name", Param: &fastcore.Param{Help: "Who to greet"}},
			{Name: "loud", Default: false, Param: &fastcore.Param{
				Help: "Shout the greeting",
				Type: fastcore.BoolArg,
			}},
		},
	}, func(ns fastcore.Namespace) error {
		greeting := "hello, " + ns.String("name")
		if ns.Bool("loud") {
			greeting = strings.ToUpper(greeting)
		}
		fmt.Println(greeting)
		return nil
	})
	// Output: HELLO, WORLD
}

func Example_defaults() {
	// Parameters with defaults become flags and keep their default when the
	// flag is omitted.
	os.Args = []string{"count", "3"}

	fastcore.CallParse(fastcore.Signature{
		Args: []fastcore.Arg{
			{Name: "upto", Param: &fastcore.Param{Type: fastcore.IntArg}},
			{Name: "sep", Default: " "},
		},
	}, func(ns fastcore.Namespace) error {
		parts := make([]string, 0, ns.Int("upto"))
		for i := 1; i <= ns.Int("upto"); i++ {
			parts = append(parts, fmt.Sprint(i))
		}
		fmt.Println(strings.Join(parts, ns.String("sep")))
		return nil
	})
	// Output: 1 2 3
}

func ExampleArgsFromProg() {
	sig := fastcore.Signature{
		Args: []fastcore.Arg{
			{Name: "a", Default: true, Param: &fastcore.Param{Type: fastcore.BoolArg}},
			{Name: "b", Default: "x"},
		},
	}

	// The marker and anything before it are optional decoration.
	ns, err := fastcore.ArgsFromProg(sig, "foo##a#0#b#baa")
	if err != nil {
		panic(err)
	}
	fmt.Println(ns["a"], ns["b"])
	// Output: false baa
}

func Example_xtra() {
	// The reserved --xtra flag overlays program-name-encoded values on top
	// of whatever was parsed.
	os.Args = []string{"tool", "5", "--a", "false", "--xtra", "a#true"}

	fastcore.CallParse(fastcore.Signature{
		Args: []fastcore.Arg{
			{Name: "required", Param: &fastcore.Param{Type: fastcore.IntArg}},
			{Name: "a", Default: true, Param: &fastcore.Param{Type: fastcore.BoolArg}},
		},
	}, func(ns fastcore.Namespace) error {
		fmt.Println(ns.Int("required"), ns.Bool("a"))
		return nil
	})
	// Output: 5 true
}
