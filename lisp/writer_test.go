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

func TestWriteBareSymbol(t *testing.T) {
	assert.Equal(t, "foo-bar", Write(Intern("foo-bar")))
}

func TestWriteQuotesSymbolWithSpecialLeadingChar(t *testing.T) {
	assert.Equal(t, `".oops"`, Write(Intern(".oops")))
}

func TestWriteQuotesSymbolContainingWhitespace(t *testing.T) {
	assert.Equal(t, `"has space"`, Write(Intern("has space")))
}

func TestWriteEscapesQuotesAndBackslashes(t *testing.T) {
	assert.Equal(t, `"a\"b\\c"`, Write(Intern(`a"b\c`)))
}

func TestWriteEmptyList(t *testing.T) {
	assert.Equal(t, "()", Write(Nil))
}

func TestWriteProperList(t *testing.T) {
	assert.Equal(t, "(1 2 3)", Write(NewList(Integer(1), Integer(2), Integer(3))))
}

func TestWriteDottedPair(t *testing.T) {
	assert.Equal(t, "(1 . 2)", Write(Cons(Integer(1), Integer(2))))
}

func TestWriteVector(t *testing.T) {
	assert.Equal(t, "[1 2 3]", Write(VectorOf(Integer(1), Integer(2), Integer(3))))
}

func TestWritePrimitiveAndStreamHandle(t *testing.T) {
	in := newTestInterpreter()
	prim, ok := in.Root.Lookup(Intern("+"))
	if assert.True(t, ok) {
		assert.Equal(t, "#<primitive +>", Write(prim))
	}

	outHandle, ok := in.Root.Lookup(Intern("*Out"))
	if assert.True(t, ok) {
		assert.Contains(t, Write(outHandle), "#<stream ")
	}
}
