//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

// installSequencePrimitives binds map, filter, fold, unfold-pair and
// unfold-vec, each of which operates uniformly over a Pair list or a
// Vector.
func (in *Interpreter) installSequencePrimitives() {
	in.define("map", func(s *Scope, args Value) (Value, error) {
		elems := argSlice(args)
		if len(elems) < 2 {
			return nil, newEvalError(errBadSequence, Intern("invalid sequence"))
		}
		fVal, err := Eval(elems[0], s)
		if err != nil {
			return nil, err
		}
		seqVal, err := Eval(elems[1], s)
		if err != nil {
			return nil, err
		}
		items, tail, err := sequenceItems(seqVal)
		if err != nil {
			return nil, err
		}
		mapped := make([]Value, len(items))
		for i, e := range items {
			r, err := applyValue(fVal, []Value{e}, s)
			if err != nil {
				return nil, err
			}
			mapped[i] = r
		}
		if _, isVec := seqVal.(*Vector); isVec {
			return VectorOf(mapped...), nil
		}
		var tailResult Value = Nil
		if !IsNil(tail) {
			tailResult, err = applyValue(fVal, []Value{tail}, s)
			if err != nil {
				return nil, err
			}
		}
		return buildDotted(mapped, tailResult), nil
	})

	in.define("filter", func(s *Scope, args Value) (Value, error) {
		elems := argSlice(args)
		if len(elems) < 2 {
			return nil, newEvalError(errBadSequence, Intern("invalid sequence"))
		}
		fVal, err := Eval(elems[0], s)
		if err != nil {
			return nil, err
		}
		seqVal, err := Eval(elems[1], s)
		if err != nil {
			return nil, err
		}
		items, tail, err := sequenceItems(seqVal)
		if err != nil {
			return nil, err
		}
		var kept []Value
		for _, e := range items {
			r, err := applyValue(fVal, []Value{e}, s)
			if err != nil {
				return nil, err
			}
			if Truthy(r) {
				kept = append(kept, e)
			}
		}
		if _, isVec := seqVal.(*Vector); isVec {
			return VectorOf(kept...), nil
		}
		var tailResult Value = Nil
		if !IsNil(tail) {
			r, err := applyValue(fVal, []Value{tail}, s)
			if err != nil {
				return nil, err
			}
			if Truthy(r) {
				tailResult = tail
			}
		}
		return buildDotted(kept, tailResult), nil
	})

	in.define("fold", func(s *Scope, args Value) (Value, error) {
		elems := argSlice(args)
		if len(elems) < 3 {
			return nil, newEvalError(errBadSequence, Intern("invalid sequence"))
		}
		fVal, err := Eval(elems[0], s)
		if err != nil {
			return nil, err
		}
		acc, err := Eval(elems[1], s)
		if err != nil {
			return nil, err
		}
		seqVal, err := Eval(elems[2], s)
		if err != nil {
			return nil, err
		}
		items, _, err := sequenceItems(seqVal)
		if err != nil {
			return nil, err
		}
		for _, e := range items {
			acc, err = applyValue(fVal, []Value{e, acc}, s)
			if err != nil {
				return nil, err
			}
		}
		return acc, nil
	})

	in.define("unfold-pair", func(s *Scope, args Value) (Value, error) {
		return unfold(s, args, false)
	})
	in.define("unfold-vec", func(s *Scope, args Value) (Value, error) {
		return unfold(s, args, true)
	})
}

// unfold implements the shared body of unfold-pair and unfold-vec:
// (unfold continue? emit step seed [tailgen]).
func unfold(s *Scope, args Value, vector bool) (Value, error) {
	elems := argSlice(args)
	if len(elems) < 4 {
		return nil, newEvalError(errBadSequence, Intern("invalid sequence"))
	}
	contF, err := Eval(elems[0], s)
	if err != nil {
		return nil, err
	}
	emitF, err := Eval(elems[1], s)
	if err != nil {
		return nil, err
	}
	stepF, err := Eval(elems[2], s)
	if err != nil {
		return nil, err
	}
	seed, err := Eval(elems[3], s)
	if err != nil {
		return nil, err
	}
	var tailF Value
	if len(elems) > 4 {
		tailF, err = Eval(elems[4], s)
		if err != nil {
			return nil, err
		}
	}

	var emitted []Value
	for {
		cont, err := applyValue(contF, []Value{seed}, s)
		if err != nil {
			return nil, err
		}
		if !Truthy(cont) {
			break
		}
		v, err := applyValue(emitF, []Value{seed}, s)
		if err != nil {
			return nil, err
		}
		emitted = append(emitted, v)
		seed, err = applyValue(stepF, []Value{seed}, s)
		if err != nil {
			return nil, err
		}
	}

	if vector {
		return VectorOf(emitted...), nil
	}
	var tail Value = Nil
	if tailF != nil {
		tail, err = applyValue(tailF, []Value{seed}, s)
		if err != nil {
			return nil, err
		}
	}
	return buildDotted(emitted, tail), nil
}
