//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

// Pair is a mutable cons cell: an ordered pair of two Values. A nil
// *Pair is the distinguished empty pair, Nil, which doubles as the
// language's only false value and as the empty list. Lists are
// right-nested chains of pairs terminated by Nil; a pair whose tail is
// neither Nil nor another *Pair is a dotted pair.
type Pair struct {
	head Value
	tail Value
}

// Nil is the canonical empty pair: the empty list and the sole false
// value.
var Nil Value = (*Pair)(nil)

// Cons allocates a new pair with the given head and tail.
func Cons(head, tail Value) *Pair {
	return &Pair{head: head, tail: tail}
}

// IsNil reports whether v is the empty pair.
func IsNil(v Value) bool {
	p, ok := v.(*Pair)
	return ok && p == nil
}

// Truthy reports whether v is anything other than Nil. Every value,
// including the integer zero, is true except the empty pair.
func Truthy(v Value) bool {
	return !IsNil(v)
}

// Head returns the head (car) of p, or Nil if p is the empty pair.
func (p *Pair) Head() Value {
	if p == nil {
		return Nil
	}
	return p.head
}

// Tail returns the tail (cdr) of p, or Nil if p is the empty pair.
func (p *Pair) Tail() Value {
	if p == nil {
		return Nil
	}
	return p.tail
}

// SetHead mutates the head of p in place.
func (p *Pair) SetHead(v Value) {
	p.head = v
}

// SetTail mutates the tail of p in place.
func (p *Pair) SetTail(v Value) {
	p.tail = v
}

// Second returns the second element of a list, or Nil if there is no
// such element.
func (p *Pair) Second() Value {
	return tailPair(p).Head()
}

// Third returns the third element of a list, or Nil if there is no
// such element.
func (p *Pair) Third() Value {
	return tailPair(tailPair(p)).Head()
}

// tailPair returns the tail of p as a *Pair, or nil if the tail is not
// itself a pair (in which case callers treat it as an empty sequence).
func tailPair(p *Pair) *Pair {
	if p == nil {
		return nil
	}
	t, ok := p.tail.(*Pair)
	if !ok {
		return nil
	}
	return t
}

// Proper reports whether p is a proper list: a chain of pairs
// terminated by Nil, with no dotted tail.
func Proper(v Value) bool {
	for {
		p, ok := v.(*Pair)
		if !ok {
			return false
		}
		if p == nil {
			return true
		}
		v = p.tail
	}
}

// ListLen returns the number of elements in the proper-list prefix of
// v, stopping at the first non-pair tail (the dotted tail, if any, is
// not counted).
func ListLen(v Value) int {
	n := 0
	for {
		p, ok := v.(*Pair)
		if !ok || p == nil {
			return n
		}
		n++
		v = p.tail
	}
}

// NewList builds a proper list from the given elements.
func NewList(elems ...Value) Value {
	var result Value = Nil
	for i := len(elems) - 1; i >= 0; i-- {
		result = Cons(elems[i], result)
	}
	return result
}

// ListToSlice collects the elements of the proper-list prefix of v
// into a slice, along with the final tail (Nil for a proper list).
func ListToSlice(v Value) (elems []Value, tail Value) {
	tail = v
	for {
		p, ok := tail.(*Pair)
		if !ok || p == nil {
			return elems, tail
		}
		elems = append(elems, p.head)
		tail = p.tail
	}
}
