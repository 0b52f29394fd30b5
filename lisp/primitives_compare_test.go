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

func TestSpaceshipOperator(t *testing.T) {
	in := newTestInterpreter()
	assert.Equal(t, Integer(-1), mustEval(t, in, "(<=> 1 2)"))
	assert.Equal(t, Integer(0), mustEval(t, in, "(<=> 2 2)"))
	assert.Equal(t, Integer(1), mustEval(t, in, "(<=> 2 1)"))
}

func TestMinMax(t *testing.T) {
	in := newTestInterpreter()
	assert.Equal(t, Integer(1), mustEval(t, in, "(min 3 1 2)"))
	assert.Equal(t, Integer(3), mustEval(t, in, "(max 3 1 2)"))
}

func TestChainedComparisonFalls(t *testing.T) {
	in := newTestInterpreter()
	assert.False(t, Truthy(mustEval(t, in, "(> 1 2 3)")))
	assert.True(t, Truthy(mustEval(t, in, "(>= 3 3 2)")))
	assert.False(t, Truthy(mustEval(t, in, "(<= 3 2 2)")))
}
