// Package main is the entry point for the ratunit CLI.
package main

import "github.com/rupert648/ratunit/cmd"

func main() {
	cmd.Execute()
}
