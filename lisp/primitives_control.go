//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

import "os"

// installControlPrimitives binds quote, set, let, eval/upval, macro,
// catch/throw and load into the root scope. These are the primitives
// that decide for themselves which of their operands to evaluate,
// rather than behaving like an ordinary evaluated-argument procedure.
func (in *Interpreter) installControlPrimitives() {
	in.define("quote", func(s *Scope, args Value) (Value, error) {
		return args, nil
	})

	in.define("set", func(s *Scope, args Value) (Value, error) {
		elems := argSlice(args)
		if len(elems) < 2 {
			return nil, newEvalError(errInvalidName, Intern("invalid name. expected a symbol"))
		}
		// A bare symbol in the name position names itself; anything
		// else is evaluated to compute the target name dynamically
		// (e.g. (set 'id ...)).
		sym, ok := elems[0].(*Symbol)
		if !ok {
			nameVal, err := Eval(elems[0], s)
			if err != nil {
				return nil, err
			}
			sym, err = wantSymbol(nameVal)
			if err != nil {
				return nil, err
			}
		}
		val, err := Eval(elems[1], s)
		if err != nil {
			return nil, err
		}
		s.DefineOrUpdate(sym, val)
		return val, nil
	})

	in.define("let", func(s *Scope, args Value) (Value, error) {
		elems := argSlice(args)
		if len(elems) < 1 {
			return nil, newEvalError(errSyntax, Intern("illegal let form"))
		}
		frame := s.Child()
		for _, bf := range argSlice(elems[0]) {
			binding, ok := bf.(*Pair)
			if !ok || binding == nil {
				return nil, newEvalError(errInvalidName, Intern("invalid name. expected a symbol"))
			}
			sym, ok := binding.Head().(*Symbol)
			if !ok {
				return nil, newEvalError(errInvalidName, Intern("invalid name. expected a symbol"))
			}
			val, err := Eval(binding.Second(), s)
			if err != nil {
				return nil, err
			}
			frame.Define(sym, val)
		}
		return evalBodyForms(elems[1:], frame)
	})

	in.define("eval", func(s *Scope, args Value) (Value, error) {
		elems := argSlice(args)
		if len(elems) < 1 {
			return Nil, nil
		}
		v, err := Eval(elems[0], s)
		if err != nil {
			return nil, err
		}
		return Eval(v, s)
	})

	in.define("upval", func(s *Scope, args Value) (Value, error) {
		parent := s.Parent()
		if parent == nil {
			return nil, newEvalError(errNoUpval, Intern("cannot upval at toplevel"))
		}
		elems := argSlice(args)
		if len(elems) < 1 {
			return Nil, nil
		}
		v, err := Eval(elems[0], s)
		if err != nil {
			return nil, err
		}
		return Eval(v, parent)
	})

	in.define("macro", func(s *Scope, args Value) (Value, error) {
		elems := argSlice(args)
		if len(elems) < 1 {
			return nil, newEvalError(errSyntax, Intern("illegal macro form"))
		}
		op := elems[0]
		rest := elems[1:]
		forms := make([]Value, 0, len(rest)+1)
		forms = append(forms, op)
		for _, f := range rest {
			v, err := Eval(f, s)
			if err != nil {
				return nil, err
			}
			forms = append(forms, quoted(v))
		}
		return Eval(NewList(forms...), s)
	})

	in.define("catch", func(s *Scope, args Value) (Value, error) {
		elems := argSlice(args)
		if len(elems) < 1 {
			return nil, newEvalError(errSyntax, Intern("illegal catch form"))
		}
		handlerForm := argSlice(elems[0])
		if len(handlerForm) < 1 {
			return nil, newEvalError(errInvalidName, Intern("invalid name. expected a symbol"))
		}
		sym, ok := handlerForm[0].(*Symbol)
		if !ok {
			return nil, newEvalError(errInvalidName, Intern("invalid name. expected a symbol"))
		}
		result, err := evalBodyForms(elems[1:], s)
		if err == nil {
			return result, nil
		}
		frame := s.Child()
		frame.Define(sym, ErrorValue(err))
		return evalBodyForms(handlerForm[1:], frame)
	})

	in.define("throw", func(s *Scope, args Value) (Value, error) {
		elems := argSlice(args)
		var v Value = Nil
		if len(elems) > 0 {
			var err error
			v, err = Eval(elems[0], s)
			if err != nil {
				return nil, err
			}
		}
		return nil, Thrown(v)
	})

	in.define("load", func(s *Scope, args Value) (Value, error) {
		elems := argSlice(args)
		if len(elems) < 1 {
			return nil, newEvalError(errSyntax, Intern("illegal load form"))
		}
		pathVal, err := Eval(elems[0], s)
		if err != nil {
			return nil, err
		}
		pathSym, err := wantSymbol(pathVal)
		if err != nil {
			return nil, err
		}
		f, oerr := os.Open(pathSym.Name())
		if oerr != nil {
			return nil, newEvalErrorf(errIO, "%s", oerr.Error())
		}
		handle := in.Streams.Open(pathSym.Name(), f, nil, f)
		frame := s.Child()
		frame.Define(Intern("*In"), handle)

		var result Value = Nil
		for {
			reader, rerr := in.Streams.Reader(handle)
			if rerr != nil {
				in.Streams.Close(handle)
				return nil, rerr
			}
			form, rerr := reader.Read()
			if rerr != nil {
				in.Streams.Close(handle)
				return nil, rerr
			}
			if form == EOF {
				break
			}
			v, eerr := Eval(form, frame)
			if eerr != nil {
				in.Streams.Close(handle)
				return nil, eerr
			}
			result = v
		}
		in.Streams.Close(handle)
		return result, nil
	})
}
