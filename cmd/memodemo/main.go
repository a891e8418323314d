// Package main provides memodemo, a command comparing a plain function, a
// map-memoized function and memocache-memoized functions on normally
// distributed inputs.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
