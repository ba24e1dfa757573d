// main package for the logmig command-line tool
// Package main is the entry point for the logmig CLI.
package main

import "logmig.dev/pkg/logmig/cmd"

func main() {
	cmd.Execute()
}
