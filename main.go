// Package main is the entry point for the macro-extract CLI.
package main

import "github.com/anton-mel/macro-extract/cmd"

func main() {
	cmd.Execute()
}
