//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

import "strings"

// Compare implements a total order over all Values: same-kind values
// compare by their own rule; different kinds compare with Nil sorting
// below any non-nil value of another kind, and otherwise by kind tag
// in the declared order Integer < Symbol < Vector < Pair. The two
// implementation-only variants (Primitive, StreamHandle) are ordered
// after Pair (primitives by name, stream handles by numeric id), as
// an extension the original four-kind algebra does not anticipate.
func Compare(a, b Value) int {
	aNil, bNil := IsNil(a), IsNil(b)
	if aNil && bNil {
		return 0
	}
	if aNil {
		return -1
	}
	if bNil {
		return 1
	}
	ka, kb := KindOf(a), KindOf(b)
	if ka != kb {
		if ka < kb {
			return -1
		}
		return 1
	}
	switch ka {
	case KindInteger:
		x, y := a.(Integer), b.(Integer)
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		default:
			return 0
		}
	case KindSymbol:
		x, y := a.(*Symbol), b.(*Symbol)
		if x == y {
			return 0
		}
		return strings.Compare(x.name, y.name)
	case KindVector:
		x, y := a.(*Vector), b.(*Vector)
		if x.Len() != y.Len() {
			if x.Len() < y.Len() {
				return -1
			}
			return 1
		}
		for i := 0; i < x.Len(); i++ {
			xi, _ := x.Ref(i)
			yi, _ := y.Ref(i)
			if c := Compare(xi, yi); c != 0 {
				return c
			}
		}
		return 0
	case KindPair:
		x, y := a.(*Pair), b.(*Pair)
		if c := Compare(x.Head(), y.Head()); c != 0 {
			return c
		}
		return Compare(x.Tail(), y.Tail())
	case KindPrimitive:
		x, y := a.(*Primitive), b.(*Primitive)
		if x == y {
			return 0
		}
		return strings.Compare(x.name, y.name)
	case KindStreamHandle:
		x, y := a.(*StreamHandle), b.(*StreamHandle)
		switch {
		case x.ID() < y.ID():
			return -1
		case x.ID() > y.ID():
			return 1
		default:
			return 0
		}
	}
	panic("lisp: unreachable comparison kind")
}

// Equal reports whether a and b compare as equal.
func Equal(a, b Value) bool {
	return Compare(a, b) == 0
}
