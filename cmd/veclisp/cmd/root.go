//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package cmd

import (
	"os"

	"github.com/mrhmouse/veclisp/lisp"
	"github.com/spf13/cobra"
)

var (
	// Version is the veclisp release version, set by build flags.
	Version = "0.1.0-dev"

	promptOverride   string
	responseOverride string
)

var rootCmd = &cobra.Command{
	Use:   "veclisp",
	Short: "A small Lisp-family interpreter",
	Long: `veclisp is a small Lisp-family interpreter: four value kinds
(integers, interned symbols, vectors, and mutable pairs), dynamic
scoping, and no closures.

Run with no subcommand to start an interactive read-eval-print loop
against standard input and output.`,
	Version:      Version,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		setupLogging()
		code := lisp.Repl(newInterpreter())
		exit(code)
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&promptOverride, "prompt", "", "override the default *Prompt string")
	rootCmd.PersistentFlags().StringVar(&responseOverride, "response", "", "override the default *Response string")
}

// newInterpreter builds an Interpreter wired to the process's standard
// streams, applying any --prompt/--response overrides.
func newInterpreter() *lisp.Interpreter {
	in := lisp.NewInterpreter(os.Stdin, os.Stdout, os.Stderr)
	if promptOverride != "" {
		in.Root.Define(lisp.Intern("*Prompt"), lisp.Intern(promptOverride))
	}
	if responseOverride != "" {
		in.Root.Define(lisp.Intern("*Response"), lisp.Intern(responseOverride))
	}
	return in
}
