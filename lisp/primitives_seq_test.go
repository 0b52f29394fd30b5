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

func TestMapOverList(t *testing.T) {
	in := newTestInterpreter()
	mustEval(t, in, "(set double ((x) (* x 2)))")
	result := mustEval(t, in, "(map double '(1 2 3))")
	assert.Equal(t, "(2 4 6)", Write(result))
}

func TestMapOverVector(t *testing.T) {
	in := newTestInterpreter()
	mustEval(t, in, "(set double ((x) (* x 2)))")
	result := mustEval(t, in, "(map double [1 2 3])")
	assert.Equal(t, "[2 4 6]", Write(result))
}

func TestMapPreservesDottedTail(t *testing.T) {
	in := newTestInterpreter()
	mustEval(t, in, "(set double ((x) (* x 2)))")
	result := mustEval(t, in, "(map double '(1 2 . 3))")
	assert.Equal(t, "(2 4 . 6)", Write(result), "mapping a dotted list must map the tail too and keep the dotted shape")
}

func TestFilterOverList(t *testing.T) {
	in := newTestInterpreter()
	mustEval(t, in, "(set even ((x) (= 0 (% x 2))))")
	result := mustEval(t, in, "(filter even '(1 2 3 4 5 6))")
	assert.Equal(t, "(2 4 6)", Write(result))
}

func TestFilterPreservesDottedTail(t *testing.T) {
	in := newTestInterpreter()
	mustEval(t, in, "(set even ((x) (= 0 (% x 2))))")
	result := mustEval(t, in, "(filter even '(1 2 . 4))")
	assert.Equal(t, "(2 . 4)", Write(result), "a surviving dotted tail stays attached")

	result2 := mustEval(t, in, "(filter even '(1 2 . 3))")
	assert.Equal(t, "(2)", Write(result2), "a dropped dotted tail leaves a proper list")
}

func TestFoldSum(t *testing.T) {
	in := newTestInterpreter()
	mustEval(t, in, "(set add ((x acc) (+ x acc)))")
	result := mustEval(t, in, "(fold add 0 '(1 2 3 4))")
	assert.Equal(t, Integer(10), result)
}

func TestUnfoldPair(t *testing.T) {
	in := newTestInterpreter()
	mustEval(t, in, "(set done ((n) (> n 0)))")
	mustEval(t, in, "(set ident ((n) n))")
	mustEval(t, in, "(set dec ((n) (- n 1)))")
	result := mustEval(t, in, "(unfold-pair done ident dec 3)")
	assert.Equal(t, "(3 2 1)", Write(result))
}

func TestUnfoldVec(t *testing.T) {
	in := newTestInterpreter()
	mustEval(t, in, "(set done ((n) (> n 0)))")
	mustEval(t, in, "(set ident ((n) n))")
	mustEval(t, in, "(set dec ((n) (- n 1)))")
	result := mustEval(t, in, "(unfold-vec done ident dec 3)")
	assert.Equal(t, "[3 2 1]", Write(result))
}
