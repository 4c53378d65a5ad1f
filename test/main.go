package main

import (
	"fmt"
	"strings"

	"github.com/jaywonder20/fastcore"
)

// An example tool demonstrating fastcore features: a required positional, a
// typed flag with a default, a choices-restricted flag, and the --xtra
// program-name overlay that every generated CLI carries.
func main() {
	sig := fastcore.Signature{
		Doc:     "Greet somebody, possibly loudly",
		Version: "0.1.0",
		Args: []fastcore.Arg{
			{Name: "name", Param: &fastcore.Param{Help: "Who to greet"}},
			{Name: "loud", Default: false, Param: &fastcore.Param{
				Help: "Shout the greeting",
				Type: fastcore.BoolArg,
			}},
			{Name: "times", Default: 1, Param: &fastcore.Param{
				Help: "How many times to greet",
				Type: fastcore.IntArg,
			}},
			{Name: "lang", Default: "en", Param: &fastcore.Param{
				Help:    "Greeting language",
				Choices: []string{"en", "es", "fr"},
			}},
		},
	}

	fastcore.CallParse(sig, func(ns fastcore.Namespace) error {
		greetings := map[string]string{"en": "hello", "es": "hola", "fr": "bonjour"}
		greeting := fmt.Sprintf("%s, %s!", greetings[ns.String("lang")], ns.String("name"))
		if ns.Bool("loud") {
			greeting = strings.ToUpper(greeting)
		}
		for i := 0; i < ns.Int("times"); i++ {
			fmt.Println(greeting)
		}
		return nil
	})
}
