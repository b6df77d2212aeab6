// Package main is the entry point for the squire CLI.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "squire:", err)
		os.Exit(1)
	}
}
