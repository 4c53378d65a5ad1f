// Package fastcore turns an annotated function signature into a command-line
// interface, removing the boilerplate of building an argument parser by hand.
//
// Flag-versus-positional classification is inferred entirely from default
// values: a parameter with a default becomes an optional --name flag, a
// parameter without one becomes a required positional argument. Every
// generated CLI also accepts a reserved --xtra flag whose value supplies
// argument overrides encoded in a program's invocation name, using
// #-delimited key/value pairs.
//
// Token parsing, usage errors, and help-flag handling are delegated to the
// pflag library; this package only translates signatures into its schema.
package fastcore

//go:generate gomarkdoc ./ -o docs/fastcore.md
