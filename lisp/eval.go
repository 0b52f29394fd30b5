//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

// Eval reduces v to a value under scope s, applying the evaluator's
// reduction rule for v's kind. A non-empty pair is ordinarily a call
// and is applied, except when it is itself a lambda literal (see
// IsProcedure) — such a pair self-evaluates, which is how `set` gives
// a name to a procedure value without an explicit quote.
func Eval(v Value, s *Scope) (Value, error) {
	switch x := v.(type) {
	case Integer:
		return x, nil
	case *Symbol:
		val, _ := s.Lookup(x)
		return val, nil
	case *Vector:
		result := NewVector(x.Len())
		for i, e := range x.Items() {
			val, err := Eval(e, s)
			if err != nil {
				return nil, err
			}
			result.items[i] = val
		}
		return result, nil
	case *Pair:
		if x == nil {
			return Nil, nil
		}
		if IsProcedure(x) {
			return x, nil
		}
		return apply(x, s)
	case *Primitive:
		return x, nil
	case *StreamHandle:
		return x, nil
	default:
		panic("lisp: eval of unrecognized value type")
	}
}

// apply resolves the head of a non-empty pair and dispatches the call
// for the application of (head . tail).
func apply(call *Pair, s *Scope) (Value, error) {
	headVal, err := Eval(call.head, s)
	if err != nil {
		return nil, err
	}
	return dispatch(headVal, call.tail, call, s)
}

// dispatch applies op — the already-resolved head of a call — to the
// call's unevaluated argument list.
func dispatch(op Value, argsUnevaluated Value, original *Pair, s *Scope) (Value, error) {
	switch x := op.(type) {
	case *Primitive:
		return x.Call(s, argsUnevaluated)
	case *Pair:
		if x == nil {
			// Empty-pair head: an error carrying the quoted original
			// call form.
			return nil, newEvalError(errSyntax, Cons(quoteSym, original))
		}
		return applyLambda(x, argsUnevaluated, s)
	case *Symbol:
		resolved, err := Eval(x, s)
		if err != nil {
			return nil, err
		}
		return dispatch(resolved, argsUnevaluated, original, s)
	case *Vector:
		return nil, newEvalError(errNotAVector, Intern("cannot execute a vector"))
	default:
		return nil, newEvalErrorf(errSyntax, "cannot execute %s", Write(op))
	}
}

// applyLambda implements lambda application for the three lambda-list
// shapes. proc is the resolved (lambda-list . body) pair;
// argsUnevaluated is the call's
// unevaluated tail; caller is the scope active at the call site, which
// also becomes the parent of the new frame (this language has no
// lexical closures: a procedure value carries no captured
// environment, only code).
func applyLambda(proc *Pair, argsUnevaluated Value, caller *Scope) (Value, error) {
	lambdaList := proc.head
	body, ok := proc.tail.(*Pair)
	if !ok || body == nil {
		return nil, newEvalError(errBadLambda, Intern("illegal lambda list"))
	}

	switch ll := lambdaList.(type) {
	case *Symbol:
		frame := caller.Child()
		frame.Define(ll, argsUnevaluated)
		return evalBody(body, frame)

	case *Vector:
		frame := caller.Child()
		args, _ := ListToSlice(argsUnevaluated)
		for i := 0; i < ll.Len(); i++ {
			pv, _ := ll.Ref(i)
			sym, issym := pv.(*Symbol)
			if !issym {
				return nil, newEvalError(errInvalidName, Intern("invalid name. expected a symbol"))
			}
			var val Value = Nil
			if i < len(args) {
				val = args[i]
			}
			frame.Define(sym, val)
		}
		return evalBody(body, frame)

	case *Pair:
		params, _ := ListToSlice(ll)
		for _, pv := range params {
			if _, issym := pv.(*Symbol); !issym {
				return nil, newEvalError(errInvalidName, Intern("invalid name. expected a symbol"))
			}
		}
		argForms, _ := ListToSlice(argsUnevaluated)
		evaluated := make([]Value, len(argForms))
		for i, f := range argForms {
			v, err := Eval(f, caller)
			if err != nil {
				return nil, err
			}
			evaluated[i] = v
		}
		frame := caller.Child()
		for i, pv := range params {
			sym := pv.(*Symbol)
			var val Value = Nil
			if i < len(evaluated) {
				val = evaluated[i]
			}
			frame.Define(sym, val)
		}
		return evalBody(body, frame)

	default:
		return nil, newEvalError(errBadLambda, Intern("illegal lambda list"))
	}
}

// evalBody evaluates each form of a procedure body in turn within s,
// returning the value of the last one.
func evalBody(body *Pair, s *Scope) (Value, error) {
	var result Value = Nil
	for p := body; p != nil; {
		v, err := Eval(p.head, s)
		if err != nil {
			return nil, err
		}
		result = v
		next, ok := p.tail.(*Pair)
		if !ok {
			break
		}
		p = next
	}
	return result, nil
}
