//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readOne(t *testing.T, src string) Value {
	t.Helper()
	v, err := NewReaderString(src).Read()
	require.NoError(t, err)
	return v
}

func TestReadWriteRoundTrip(t *testing.T) {
	cases := []string{
		"42",
		"-7",
		"foo",
		"(1 2 3)",
		"(1 . 2)",
		"(1 2 . 3)",
		"[1 2 3]",
		"()",
		"(quote . foo)",
	}
	for _, src := range cases {
		v := readOne(t, src)
		again, err := NewReaderString(Write(v)).Read()
		require.NoError(t, err)
		assert.True(t, Equal(v, again), "round trip of %q produced %q", src, Write(again))
	}
}

func TestReadDottedPair(t *testing.T) {
	v := readOne(t, "(1 . 2)")
	p, ok := v.(*Pair)
	require.True(t, ok)
	assert.Equal(t, Integer(1), p.Head())
	assert.Equal(t, Integer(2), p.Tail())
}

func TestReadDottedChain(t *testing.T) {
	v := readOne(t, "(1 2 . 3)")
	p, ok := v.(*Pair)
	require.True(t, ok)
	assert.Equal(t, Integer(1), p.Head())
	second, ok := p.Tail().(*Pair)
	require.True(t, ok)
	assert.Equal(t, Integer(2), second.Head())
	assert.Equal(t, Integer(3), second.Tail())
}

func TestReadIllegalDottedList(t *testing.T) {
	_, err := NewReaderString("(1 . 2 3)").Read()
	require.Error(t, err)
	ee, ok := err.(*EvalError)
	require.True(t, ok)
	assert.Equal(t, "illegal dotted list", Write(ee.Value))
}

func TestReadQuoteEncoding(t *testing.T) {
	v := readOne(t, "'foo")
	assert.Equal(t, "(quote . foo)", Write(v))
}

func TestReadVector(t *testing.T) {
	v := readOne(t, "[1 2 3]")
	vec, ok := v.(*Vector)
	require.True(t, ok)
	assert.Equal(t, 3, vec.Len())
}

func TestReadEOF(t *testing.T) {
	v, err := NewReaderString("").Read()
	require.NoError(t, err)
	assert.Equal(t, EOF, v)
}
