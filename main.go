// Package main is the entry point for the dojo CLI.
package main

import "dojo.dev/pkg/dojo/cmd"

func main() {
	cmd.Execute()
}
