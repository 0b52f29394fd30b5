//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

import (
	"io"
	"os"
)

// currentWriter resolves the io.Writer backing the *Out stream
// visible from s: "current output" is whatever *Out names through
// ordinary lookup, so a dynamic rebinding of *Out redirects print
// and write for anything evaluated beneath it.
func (in *Interpreter) currentWriter(s *Scope) (io.Writer, error) {
	v, _ := s.Lookup(Intern("*Out"))
	h, ok := v.(*StreamHandle)
	if !ok {
		return nil, newEvalError(errIO, Intern("not an output stream"))
	}
	return in.Streams.Writer(h)
}

// walkLeaves visits every non-structural Value reachable from v
// (Integer, Symbol, Primitive, StreamHandle), depth-first, following
// pair chains (including dotted tails) and vector elements.
func walkLeaves(v Value, fn func(Value) error) error {
	switch x := v.(type) {
	case *Pair:
		for p := x; p != nil; {
			if err := walkLeaves(p.Head(), fn); err != nil {
				return err
			}
			next, ok := p.Tail().(*Pair)
			if !ok {
				if !IsNil(p.Tail()) {
					return walkLeaves(p.Tail(), fn)
				}
				return nil
			}
			p = next
		}
		return nil
	case *Vector:
		for _, e := range x.Items() {
			if err := walkLeaves(e, fn); err != nil {
				return err
			}
		}
		return nil
	default:
		return fn(x)
	}
}

// installIOPrimitives binds open/close/read/write/print/write-bytes
// against the interpreter's stream table.
func (in *Interpreter) installIOPrimitives() {
	in.define("open", func(s *Scope, args Value) (Value, error) {
		vals, err := evalArgs(args, s)
		if err != nil {
			return nil, err
		}
		if len(vals) < 1 {
			return nil, newEvalError(errSyntax, Intern("open takes a path"))
		}
		pathSym, err := wantSymbol(vals[0])
		if err != nil {
			return nil, err
		}
		mode := "r"
		if len(vals) > 1 {
			modeSym, err := wantSymbol(vals[1])
			if err != nil {
				return nil, err
			}
			mode = modeSym.Name()
		}
		var f *os.File
		var oerr error
		switch mode {
		case "w":
			f, oerr = os.Create(pathSym.Name())
		case "a":
			f, oerr = os.OpenFile(pathSym.Name(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		default:
			f, oerr = os.Open(pathSym.Name())
		}
		if oerr != nil {
			return nil, newEvalErrorf(errIO, "%s", oerr.Error())
		}
		var src io.Reader
		var dst io.Writer
		if mode == "w" || mode == "a" {
			dst = f
		} else {
			src = f
		}
		return in.Streams.Open(pathSym.Name(), src, dst, f), nil
	})

	in.define("close", func(s *Scope, args Value) (Value, error) {
		vals, err := evalArgs(args, s)
		if err != nil {
			return nil, err
		}
		if len(vals) != 1 {
			return nil, newEvalError(errIO, Intern("close takes a stream"))
		}
		h, ok := vals[0].(*StreamHandle)
		if !ok {
			return nil, newEvalError(errIO, Intern("not a stream"))
		}
		if err := in.Streams.Close(h); err != nil {
			return nil, newEvalErrorf(errIO, "%s", err.Error())
		}
		return Nil, nil
	})

	in.define("read", func(s *Scope, args Value) (Value, error) {
		vals, err := evalArgs(args, s)
		if err != nil {
			return nil, err
		}
		var handle *StreamHandle
		if len(vals) > 0 {
			h, ok := vals[0].(*StreamHandle)
			if !ok {
				return nil, newEvalError(errIO, Intern("not a stream"))
			}
			handle = h
		} else {
			v, _ := s.Lookup(Intern("*In"))
			h, ok := v.(*StreamHandle)
			if !ok {
				return nil, newEvalError(errIO, Intern("not an input stream"))
			}
			handle = h
		}
		reader, err := in.Streams.Reader(handle)
		if err != nil {
			return nil, err
		}
		return reader.Read()
	})

	in.define("write", func(s *Scope, args Value) (Value, error) {
		vals, err := evalArgs(args, s)
		if err != nil {
			return nil, err
		}
		if len(vals) < 1 {
			return nil, newEvalError(errSyntax, Intern("write takes a value"))
		}
		var w io.Writer
		if len(vals) > 1 {
			h, ok := vals[1].(*StreamHandle)
			if !ok {
				return nil, newEvalError(errIO, Intern("not a stream"))
			}
			w, err = in.Streams.Writer(h)
		} else {
			w, err = in.currentWriter(s)
		}
		if err != nil {
			return nil, err
		}
		if _, werr := io.WriteString(w, Write(vals[0])); werr != nil {
			return nil, newEvalErrorf(errIO, "%s", werr.Error())
		}
		return vals[0], nil
	})

	in.define("print", func(s *Scope, args Value) (Value, error) {
		vals, err := evalArgs(args, s)
		if err != nil {
			return nil, err
		}
		w, err := in.currentWriter(s)
		if err != nil {
			return nil, err
		}
		for _, v := range vals {
			err := walkLeaves(v, func(leaf Value) error {
				_, werr := io.WriteString(w, Write(leaf))
				return werr
			})
			if err != nil {
				return nil, newEvalErrorf(errIO, "%s", err.Error())
			}
		}
		return Nil, nil
	})

	in.define("write-bytes", func(s *Scope, args Value) (Value, error) {
		vals, err := evalArgs(args, s)
		if err != nil {
			return nil, err
		}
		w, err := in.currentWriter(s)
		if err != nil {
			return nil, err
		}
		for _, v := range vals {
			err := walkLeaves(v, func(leaf Value) error {
				switch x := leaf.(type) {
				case Integer:
					_, werr := w.Write([]byte{byte(x)})
					return werr
				case *Symbol:
					_, werr := io.WriteString(w, x.Name())
					return werr
				default:
					return newEvalError(errBadSequence, Intern("cannot write-bytes value"))
				}
			})
			if err != nil {
				if ee, ok := err.(*EvalError); ok {
					return nil, ee
				}
				return nil, newEvalErrorf(errIO, "%s", err.Error())
			}
		}
		return Nil, nil
	})
}
