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

func TestScopeChildLookupFallsThrough(t *testing.T) {
	root := NewRootScope()
	root.Define(Intern("x"), Integer(1))
	child := root.Child()
	val, ok := child.Lookup(Intern("x"))
	assert.True(t, ok)
	assert.Equal(t, Integer(1), val)
}

func TestScopeDefineShadowsInChildOnly(t *testing.T) {
	root := NewRootScope()
	root.Define(Intern("x"), Integer(1))
	child := root.Child()
	child.Define(Intern("x"), Integer(2))

	val, _ := child.Lookup(Intern("x"))
	assert.Equal(t, Integer(2), val)
	val, _ = root.Lookup(Intern("x"))
	assert.Equal(t, Integer(1), val, "defining in a child frame must not touch the parent")
}

func TestScopeDefineOrUpdateRewritesDefiningFrame(t *testing.T) {
	root := NewRootScope()
	root.Define(Intern("x"), Integer(1))
	child := root.Child()
	child.DefineOrUpdate(Intern("x"), Integer(9))

	val, _ := root.Lookup(Intern("x"))
	assert.Equal(t, Integer(9), val, "DefineOrUpdate must mutate the frame that already defines the name")
	assert.Nil(t, child.find(Intern("x")))
}

func TestScopeDefineOrUpdateInsertsWhenUnbound(t *testing.T) {
	root := NewRootScope()
	child := root.Child()
	child.DefineOrUpdate(Intern("y"), Integer(5))

	_, ok := root.Lookup(Intern("y"))
	assert.False(t, ok, "an unbound name must be created in the innermost frame, not the root")
	val, ok := child.Lookup(Intern("y"))
	assert.True(t, ok)
	assert.Equal(t, Integer(5), val)
}

func TestScopeLookupMiss(t *testing.T) {
	root := NewRootScope()
	val, ok := root.Lookup(Intern("nope"))
	assert.False(t, ok)
	assert.Equal(t, Nil, val)
}

func TestFrameListAndAllSymbols(t *testing.T) {
	root := NewRootScope()
	root.Define(Intern("a"), Integer(1))
	root.Define(Intern("b"), Integer(2))
	child := root.Child()
	child.Define(Intern("a"), Integer(99))
	child.Define(Intern("c"), Integer(3))

	frame := child.FrameList()
	assert.ElementsMatch(t, []*Symbol{Intern("a"), Intern("c")}, frame)

	all := child.AllSymbols()
	assert.ElementsMatch(t, []*Symbol{Intern("a"), Intern("c"), Intern("b")}, all, "shadowed names must appear once")
}

func TestScopeRootAndParent(t *testing.T) {
	root := NewRootScope()
	child := root.Child()
	grandchild := child.Child()

	assert.Same(t, root, grandchild.Root())
	assert.Same(t, child, grandchild.Parent())
	assert.Nil(t, root.Parent())
}
