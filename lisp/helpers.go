//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

// argSlice returns the unevaluated elements of the proper-list prefix
// of a call's argument tail, discarding any dotted remainder.
func argSlice(args Value) []Value {
	elems, _ := ListToSlice(args)
	return elems
}

// evalArgs evaluates each element of the proper-list prefix of args,
// left to right, in scope s. This is the argument discipline shared by
// every primitive that behaves like an ordinary procedure.
func evalArgs(args Value, s *Scope) ([]Value, error) {
	forms := argSlice(args)
	out := make([]Value, len(forms))
	for i, f := range forms {
		v, err := Eval(f, s)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// evalBodyForms evaluates a sequence of forms in s, returning the
// value of the last one, or Nil for an empty sequence.
func evalBodyForms(forms []Value, s *Scope) (Value, error) {
	var result Value = Nil
	for _, f := range forms {
		v, err := Eval(f, s)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

func wantSymbol(v Value) (*Symbol, error) {
	sym, ok := v.(*Symbol)
	if !ok {
		return nil, newEvalError(errInvalidName, Intern("invalid name. expected a symbol"))
	}
	return sym, nil
}

func wantPair(v Value) (*Pair, error) {
	p, ok := v.(*Pair)
	if !ok {
		return nil, newEvalError(errExpectPair, Intern("expected a pair"))
	}
	return p, nil
}

func boolValue(b bool) Value {
	if b {
		return Intern("t")
	}
	return Nil
}

// quoted wraps v as the dotted (quote . v) form, which evaluates back
// to v regardless of v's kind. Used to hand an already-computed value
// to the ordinary call machinery (map, filter, fold and friends) as if
// it had been written literally at the call site.
func quoted(v Value) Value {
	return Cons(quoteSym, v)
}

// applyValue invokes callee (a *Primitive or a user procedure Pair)
// with argVals already evaluated, for primitives like map and fold
// that hold values rather than call-site forms.
func applyValue(callee Value, argVals []Value, s *Scope) (Value, error) {
	argForms := make([]Value, len(argVals))
	for i, v := range argVals {
		argForms[i] = quoted(v)
	}
	argList := NewList(argForms...)
	switch x := callee.(type) {
	case *Primitive:
		return x.Call(s, argList)
	case *Pair:
		if x == nil {
			return nil, newEvalError(errSyntax, Intern("cannot execute a nil value"))
		}
		return applyLambda(x, argList, s)
	default:
		return nil, newEvalErrorf(errSyntax, "cannot execute %s", Write(callee))
	}
}

// sequenceItems returns the elements of v (a Pair or Vector) along
// with, for a Pair, its dotted tail (Nil for a proper list).
func sequenceItems(v Value) ([]Value, Value, error) {
	switch x := v.(type) {
	case *Vector:
		return append([]Value(nil), x.Items()...), nil, nil
	case *Pair:
		elems, tail := ListToSlice(x)
		return elems, tail, nil
	default:
		return nil, nil, newEvalError(errBadSequence, Intern("invalid sequence"))
	}
}
