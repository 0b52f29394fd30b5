//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

// Command veclisp runs the veclisp interpreter, either interactively
// or against a file.
package main

import (
	"fmt"
	"os"

	"github.com/mrhmouse/veclisp/cmd/veclisp/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
