// SPDX-License-Identifier: MIT

// Command forcelayout is a headless harness for the layout engine: it
// generates synthetic datasets, lays them out to rest and prints the
// effective configuration.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
