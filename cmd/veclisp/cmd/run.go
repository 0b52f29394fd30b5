//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package cmd

import (
	"fmt"
	"os"

	"github.com/mrhmouse/veclisp/lisp"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Load and evaluate a file, then exit",
	Long: `Load a file via the same (load ...) semantics available at
the prompt: forms are read and evaluated in order against a fresh
child of the root scope, and the stream is always closed on exit.`,
	Args: cobra.ExactArgs(1),
	RunE: runFile,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runFile(cmd *cobra.Command, args []string) error {
	setupLogging()
	in := newInterpreter()
	call := lisp.NewList(lisp.Intern("load"), lisp.Cons(lisp.Intern("quote"), lisp.Intern(args[0])))
	if _, err := lisp.Eval(call, in.Root); err != nil {
		fmt.Fprintf(os.Stderr, "! %s\n", lisp.Write(lisp.ErrorValue(err)))
		exit(1)
	}
	exit(0)
	return nil
}
