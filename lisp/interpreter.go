//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

import (
	"io"
	"math/rand"
)

// Interpreter bundles the root scope with the stream table and the
// process-global pseudo-random source that the primitive registry
// needs but which stays out of the core Value/Scope model. Embedding
// code constructs exactly one Interpreter and evaluates everything —
// REPL turns and loaded files alike — against its Root scope or a
// child of it.
type Interpreter struct {
	Root    *Scope
	Streams *Streams
	rng     *rand.Rand
}

// NewInterpreter builds a root scope with the full primitive library
// installed, the three standard streams bound to stdin/stdout/stderr,
// and the default prompt/response strings.
func NewInterpreter(stdin io.Reader, stdout, stderr io.Writer) *Interpreter {
	in := &Interpreter{
		Root:    NewRootScope(),
		Streams: NewStreams(),
		rng:     rand.New(rand.NewSource(1)),
	}
	stdinHandle := in.Streams.Open("*In*", stdin, nil, nil)
	stdoutHandle := in.Streams.Open("*Out*", nil, stdout, nil)
	stderrHandle := in.Streams.Open("*Err*", nil, stderr, nil)

	in.Root.Define(Intern("*In"), stdinHandle)
	in.Root.Define(Intern("*Out"), stdoutHandle)
	in.Root.Define(Intern("*Err"), stderrHandle)
	in.Root.Define(Intern("*Prompt"), Intern("> "))
	in.Root.Define(Intern("*Response"), Intern("; "))
	in.Root.Define(Intern("t"), Intern("t"))

	in.installPrimitives()
	return in
}
