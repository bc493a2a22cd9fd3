// Package main provides contractcheck, which reports the service
// implementations that were verified against their interface declarations.
//
// Verification happens while the implementing packages initialise: a binary
// linking a non-conforming implementation exits before main runs.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
