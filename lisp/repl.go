//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

import (
	"fmt"
	"io"
)

// Repl drives the interactive read-eval-print loop against in's *In,
// *Out, and *Err streams: emit *Prompt, read one form, evaluate it,
// and on success emit *Response followed by the written result, or on
// failure emit "! " followed by the written error to *Err. End of
// stream on the read ends the loop and returns 0. An uncaught error,
// including a parse error from the read, is reported and never stops
// the loop; only (exit n), which calls os.Exit directly, does. Repl
// returns 1 without looping if *In, *Out or *Err is not bound to a
// usable stream.
func Repl(in *Interpreter) int {
	inHandle, err := streamHandle(in, "*In")
	if err != nil {
		return 1
	}
	reader, err := in.Streams.Reader(inHandle)
	if err != nil {
		return 1
	}
	out, err := streamWriter(in, "*Out")
	if err != nil {
		return 1
	}
	errOut, err := streamWriter(in, "*Err")
	if err != nil {
		return 1
	}

	for {
		fmt.Fprint(out, textOf(in, "*Prompt"))

		form, err := reader.Read()
		if err != nil {
			fmt.Fprintf(errOut, "! %s\n", Write(ErrorValue(err)))
			continue
		}
		if form == EOF {
			return 0
		}

		result, err := Eval(form, in.Root)
		if err != nil {
			fmt.Fprintf(errOut, "! %s\n", Write(ErrorValue(err)))
			continue
		}
		fmt.Fprintf(out, "%s%s\n", textOf(in, "*Response"), Write(result))
	}
}

// streamHandle looks up the *StreamHandle bound to name in in.Root.
func streamHandle(in *Interpreter, name string) (*StreamHandle, error) {
	v, _ := in.Root.Lookup(Intern(name))
	h, ok := v.(*StreamHandle)
	if !ok {
		return nil, newEvalErrorf(errIO, "%s is not bound to a stream", name)
	}
	return h, nil
}

func streamWriter(in *Interpreter, name string) (io.Writer, error) {
	h, err := streamHandle(in, name)
	if err != nil {
		return nil, err
	}
	return in.Streams.Writer(h)
}

// textOf returns the text of the Symbol bound to name, or "" if name
// is unbound or bound to something other than a Symbol.
func textOf(in *Interpreter, name string) string {
	v, _ := in.Root.Lookup(Intern(name))
	if sym, ok := v.(*Symbol); ok {
		return sym.Name()
	}
	return ""
}
