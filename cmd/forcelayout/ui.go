// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	brand  = color.New(color.FgHiGreen, color.Bold)
	subtle = color.New(color.FgHiBlack)
	warn   = color.New(color.FgYellow)
	good   = color.New(color.FgGreen)
)

// field prints one aligned "label: value" summary line.
func field(w io.Writer, label string, value any) {
	fmt.Fprintf(w, "  %s %v\n", subtle.Sprintf("%-14s", label+":"), value)
}

// banner prints the command title.
func banner(w io.Writer, title string) {
	fmt.Fprintf(w, "%s %s\n", brand.Sprint("forcelayout"), subtle.Sprint(title))
}
