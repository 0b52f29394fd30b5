//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

// Value is any value the evaluator can produce or consume: an Integer,
// a *Symbol, a *Vector, a *Pair, or one of the two implementation-only
// variants (*Primitive, *StreamHandle) added for this implementation.
type Value interface{}

// Integer is a signed 64-bit number. Stream identities are not
// Integers; they are StreamHandle values.
type Integer int64

// Kind discriminates the tag of a Value for comparison and predicate
// purposes.
type Kind int

const (
	KindInteger Kind = iota
	KindSymbol
	KindVector
	KindPair
	KindPrimitive
	KindStreamHandle
)

// KindOf returns the tag of v.
func KindOf(v Value) Kind {
	switch v.(type) {
	case Integer:
		return KindInteger
	case *Symbol:
		return KindSymbol
	case *Vector:
		return KindVector
	case *Pair:
		return KindPair
	case *Primitive:
		return KindPrimitive
	case *StreamHandle:
		return KindStreamHandle
	default:
		panic("lisp: value of unrecognized type")
	}
}

// PrimitiveFunc is the signature of a native primitive: given the
// scope of the call site and the call's unevaluated argument list, it
// returns a result Value or an error. The primitive decides for
// itself which, if any, of its arguments to evaluate. args is the raw
// tail of the call form — ordinarily a proper list pair, but for the
// quote primitive it may be any Value at all, so primitives that
// expect a list use ListToSlice rather than a type assertion.
type PrimitiveFunc func(s *Scope, args Value) (Value, error)

// Primitive wraps a host-side callable as a Value, replacing the
// original C source's trick of encoding callables as integers.
type Primitive struct {
	name string
	fn   PrimitiveFunc
}

// NewPrimitive names and wraps fn as a Primitive Value.
func NewPrimitive(name string, fn PrimitiveFunc) *Primitive {
	return &Primitive{name: name, fn: fn}
}

// Name returns the primitive's registered name, used in diagnostics.
func (p *Primitive) Name() string {
	return p.name
}

// Call invokes the wrapped primitive.
func (p *Primitive) Call(s *Scope, args Value) (Value, error) {
	return p.fn(s, args)
}

// StreamHandle identifies an open I/O stream. It is distinct from
// Integer so that arithmetic and stream identities never collide.
type StreamHandle struct {
	id int64
}

// ID returns the numeric identity of the handle, used only for
// printing and for indexing into the stream table.
func (h *StreamHandle) ID() int64 {
	if h == nil {
		return -1
	}
	return h.id
}

// IsProcedure reports whether v is a lambda literal: a pair whose
// head is a Vector or a proper list of symbols, and whose tail is a
// non-empty body sequence. These are the two lambda-list shapes that
// cannot also be read as an ordinary call, so Eval self-evaluates them
// into a procedure value rather than applying them.
//
// A Symbol-headed pair is structurally identical to a call (e.g. a
// macro literal (name body) and a call to name both look the same) and
// so is deliberately excluded here: a Symbol lambda list never
// self-evaluates, it is only ever reached by applying an already-bound
// procedure value.
func IsProcedure(v Value) bool {
	p, ok := v.(*Pair)
	if !ok || p == nil {
		return false
	}
	body, ok := p.tail.(*Pair)
	if !ok || body == nil {
		return false
	}
	switch head := p.head.(type) {
	case *Vector:
		return true
	case *Pair:
		if !Proper(head) {
			return false
		}
		elems, _ := ListToSlice(head)
		for _, e := range elems {
			if _, issym := e.(*Symbol); !issym {
				return false
			}
		}
		return true
	default:
		return false
	}
}
