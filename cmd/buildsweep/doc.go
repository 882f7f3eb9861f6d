// Package buildsweep provides the command-line interface for the
// buildsweep tool. It configures subcommands (clean, dupes, completion),
// parses flags, and executes the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/xiebaiyuan/buildsweep/cmd/buildsweep"
//	func main() { buildsweep.Execute() }
package buildsweep
