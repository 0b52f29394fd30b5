//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetCreatesFirstBinding(t *testing.T) {
	in := newTestInterpreter()
	_, ok := in.Root.Lookup(Intern("id"))
	assert.False(t, ok, "id must not already be bound")
	result := mustEval(t, in, "(set id 42)")
	assert.Equal(t, Integer(42), result)
	val, ok := in.Root.Lookup(Intern("id"))
	assert.True(t, ok)
	assert.Equal(t, Integer(42), val)
}

func TestSetWithComputedName(t *testing.T) {
	in := newTestInterpreter()
	mustEval(t, in, "(set 'foo 7)")
	val, ok := in.Root.Lookup(Intern("foo"))
	assert.True(t, ok)
	assert.Equal(t, Integer(7), val)
}

func TestArithmeticSubtractDivideModulo(t *testing.T) {
	in := newTestInterpreter()
	assert.Equal(t, Integer(-4), mustEval(t, in, "(- 1 2 3)"))
	assert.Equal(t, Integer(2), mustEval(t, in, "(/ 12 3 2)"))
	assert.Equal(t, Integer(1), mustEval(t, in, "(% 7 3)"))
}

func TestDivisionByZero(t *testing.T) {
	in := newTestInterpreter()
	_, err := evalString(t, in, "(/ 1 0)")
	assert.Error(t, err)
	_, err = evalString(t, in, "(% 1 0)")
	assert.Error(t, err)
}

func TestExpAndShifts(t *testing.T) {
	in := newTestInterpreter()
	assert.Equal(t, Integer(8), mustEval(t, in, "(exp 2 3)"))
	assert.Equal(t, Integer(4), mustEval(t, in, "(shift-left 1 2)"))
	assert.Equal(t, Integer(2), mustEval(t, in, "(shift-right 8 2)"))
}

func TestBitwiseOps(t *testing.T) {
	in := newTestInterpreter()
	assert.Equal(t, Integer(6), mustEval(t, in, "(bitwise-and 7 6)"))
	assert.Equal(t, Integer(7), mustEval(t, in, "(bitwise-or 5 3)"))
	assert.Equal(t, Integer(6), mustEval(t, in, "(bitwise-xor 5 3)"))
	assert.Equal(t, Integer(-1), mustEval(t, in, "(bitwise-not 0)"))
}

func TestAbsSqrt(t *testing.T) {
	in := newTestInterpreter()
	assert.Equal(t, Integer(5), mustEval(t, in, "(abs -5)"))
	assert.Equal(t, Integer(5), mustEval(t, in, "(abs 5)"))
	assert.Equal(t, Integer(3), mustEval(t, in, "(sqrt 9)"))

	_, err := evalString(t, in, "(sqrt -1)")
	assert.Error(t, err)
}

func TestNot(t *testing.T) {
	in := newTestInterpreter()
	assert.False(t, Truthy(mustEval(t, in, "(not 1)")))
	assert.True(t, Truthy(mustEval(t, in, "(not ())")))
}

func TestRandChaining(t *testing.T) {
	in := newTestInterpreter()
	result := mustEval(t, in, "(rand 1)")
	p, ok := result.(*Pair)
	if assert.True(t, ok, "(rand seed) must return a (value . next-seed) pair") {
		_, ok := p.Head().(Integer)
		assert.True(t, ok)
		_, ok = p.Tail().(Integer)
		assert.True(t, ok)
	}

	again := mustEval(t, in, "(rand 1)")
	assert.True(t, Equal(result, again), "the same seed must always chain to the same result")
}
