//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

import (
	"os"
	"strings"
)

// installMiscPrimitives binds the type predicates, pair/vector
// accessors, list construction, scope introspection, and process exit
// named in the startup-scope list, plus pack.
func (in *Interpreter) installMiscPrimitives() {
	in.define("int?", typePred(func(v Value) bool { _, ok := v.(Integer); return ok }))
	in.define("sym?", typePred(func(v Value) bool { _, ok := v.(*Symbol); return ok }))
	in.define("vec?", typePred(func(v Value) bool { _, ok := v.(*Vector); return ok }))
	in.define("pair?", typePred(func(v Value) bool { _, ok := v.(*Pair); return ok }))
	in.define("nil?", typePred(IsNil))

	in.define("pair", func(s *Scope, args Value) (Value, error) {
		vals, err := evalArgs(args, s)
		if err != nil {
			return nil, err
		}
		if len(vals) != 2 {
			return nil, newEvalError(errSyntax, Intern("pair takes two arguments"))
		}
		return Cons(vals[0], vals[1]), nil
	})

	in.define("head", func(s *Scope, args Value) (Value, error) {
		vals, err := evalArgs(args, s)
		if err != nil {
			return nil, err
		}
		if len(vals) != 1 {
			return nil, newEvalError(errExpectPair, Intern("expected a pair"))
		}
		p, err := wantPair(vals[0])
		if err != nil {
			return nil, err
		}
		return p.Head(), nil
	})

	in.define("tail", func(s *Scope, args Value) (Value, error) {
		vals, err := evalArgs(args, s)
		if err != nil {
			return nil, err
		}
		if len(vals) != 1 {
			return nil, newEvalError(errExpectPair, Intern("expected a pair"))
		}
		p, err := wantPair(vals[0])
		if err != nil {
			return nil, err
		}
		return p.Tail(), nil
	})

	in.define("set-head", func(s *Scope, args Value) (Value, error) {
		vals, err := evalArgs(args, s)
		if err != nil {
			return nil, err
		}
		if len(vals) != 2 {
			return nil, newEvalError(errExpectPair, Intern("expected a pair"))
		}
		p, err := wantPair(vals[0])
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, newEvalError(errExpectPair, Intern("expected a pair"))
		}
		p.SetHead(vals[1])
		return vals[1], nil
	})

	in.define("set-tail", func(s *Scope, args Value) (Value, error) {
		vals, err := evalArgs(args, s)
		if err != nil {
			return nil, err
		}
		if len(vals) != 2 {
			return nil, newEvalError(errExpectPair, Intern("expected a pair"))
		}
		p, err := wantPair(vals[0])
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, newEvalError(errExpectPair, Intern("expected a pair"))
		}
		p.SetTail(vals[1])
		return vals[1], nil
	})

	in.define("vector-ref", func(s *Scope, args Value) (Value, error) {
		vals, err := evalArgs(args, s)
		if err != nil {
			return nil, err
		}
		if len(vals) != 2 {
			return nil, newEvalError(errSyntax, Intern("vector-ref takes two arguments"))
		}
		vec, ok := vals[0].(*Vector)
		if !ok {
			return nil, newEvalError(errBadSequence, Intern("invalid sequence"))
		}
		idx, ok := vals[1].(Integer)
		if !ok {
			return nil, newEvalError(errExpectInt, Intern("expected an integer"))
		}
		return vec.Ref(int(idx))
	})

	in.define("vector-set", func(s *Scope, args Value) (Value, error) {
		vals, err := evalArgs(args, s)
		if err != nil {
			return nil, err
		}
		if len(vals) != 3 {
			return nil, newEvalError(errSyntax, Intern("vector-set takes three arguments"))
		}
		vec, ok := vals[0].(*Vector)
		if !ok {
			return nil, newEvalError(errBadSequence, Intern("invalid sequence"))
		}
		idx, ok := vals[1].(Integer)
		if !ok {
			return nil, newEvalError(errExpectInt, Intern("expected an integer"))
		}
		if err := vec.Set(int(idx), vals[2]); err != nil {
			return nil, err
		}
		return vals[2], nil
	})

	in.define("list", func(s *Scope, args Value) (Value, error) {
		vals, err := evalArgs(args, s)
		if err != nil {
			return nil, err
		}
		return NewList(vals...), nil
	})

	in.define("length", func(s *Scope, args Value) (Value, error) {
		vals, err := evalArgs(args, s)
		if err != nil {
			return nil, err
		}
		if len(vals) != 1 {
			return nil, newEvalError(errBadSequence, Intern("invalid sequence"))
		}
		switch x := vals[0].(type) {
		case *Pair:
			return Integer(ListLen(x)), nil
		case *Vector:
			return Integer(x.Len()), nil
		case *Symbol:
			return Integer(len(x.Name())), nil
		default:
			return nil, newEvalError(errBadSequence, Intern("invalid sequence"))
		}
	})

	in.define("pack", func(s *Scope, args Value) (Value, error) {
		vals, err := evalArgs(args, s)
		if err != nil {
			return nil, err
		}
		var b strings.Builder
		for _, v := range vals {
			if err := packInto(&b, v); err != nil {
				return nil, err
			}
		}
		return Intern(b.String()), nil
	})

	in.define("exit", func(s *Scope, args Value) (Value, error) {
		vals, err := evalArgs(args, s)
		if err != nil {
			os.Exit(1)
		}
		code := 0
		if len(vals) > 0 {
			n, ok := vals[0].(Integer)
			if !ok {
				os.Exit(1)
			}
			code = int(n)
		}
		os.Exit(code)
		return Nil, nil
	})

	in.define("syms", func(s *Scope, args Value) (Value, error) {
		return symbolList(s.AllSymbols()), nil
	})
	in.define("locals", func(s *Scope, args Value) (Value, error) {
		return symbolList(s.FrameList()), nil
	})
	in.define("globals", func(s *Scope, args Value) (Value, error) {
		return symbolList(s.Root().FrameList()), nil
	})

	in.Root.Define(Intern("yes"), Intern("t"))
	in.Root.Define(Intern("no"), Nil)
}

func typePred(test func(Value) bool) PrimitiveFunc {
	return func(s *Scope, args Value) (Value, error) {
		vals, err := evalArgs(args, s)
		if err != nil {
			return nil, err
		}
		if len(vals) != 1 {
			return nil, newEvalError(errSyntax, Intern("expected one argument"))
		}
		return boolValue(test(vals[0])), nil
	}
}

func symbolList(syms []*Symbol) Value {
	vals := make([]Value, len(syms))
	for i, sym := range syms {
		vals[i] = sym
	}
	return NewList(vals...)
}

// packInto appends the byte representation of v to b: an integer as a
// single byte, a symbol as its text, and a pair or vector recursively
// by its elements (dotted tails included).
func packInto(b *strings.Builder, v Value) error {
	switch x := v.(type) {
	case Integer:
		b.WriteByte(byte(x))
	case *Symbol:
		b.WriteString(x.Name())
	case *Pair:
		for p := x; p != nil; {
			if err := packInto(b, p.Head()); err != nil {
				return err
			}
			next, ok := p.Tail().(*Pair)
			if !ok {
				if !IsNil(p.Tail()) {
					return packInto(b, p.Tail())
				}
				return nil
			}
			p = next
		}
	case *Vector:
		for _, e := range x.Items() {
			if err := packInto(b, e); err != nil {
				return err
			}
		}
	default:
		return newEvalError(errBadSequence, Intern("cannot pack value"))
	}
	return nil
}
