//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

// binding associates an interned Symbol with its current Value.
// Symbol identity, never text, is used to find a binding.
type binding struct {
	sym *Symbol
	val Value
}

// Scope is one frame in the non-empty linked chain of frames that
// makes up the lexical environment: an ordered list of bindings plus a
// link to the enclosing frame. The outermost frame (parent == nil) is
// the root scope holding the globals.
type Scope struct {
	parent   *Scope
	bindings []binding
}

// NewRootScope allocates an empty top-level scope with no parent.
func NewRootScope() *Scope {
	return &Scope{}
}

// Child allocates a fresh, initially empty frame whose parent is s.
// Procedure application, let, catch, and load all introduce a child
// frame this way.
func (s *Scope) Child() *Scope {
	return &Scope{parent: s}
}

// find locates the binding for sym within this single frame, without
// consulting the parent chain.
func (s *Scope) find(sym *Symbol) *binding {
	for i := range s.bindings {
		if s.bindings[i].sym == sym {
			return &s.bindings[i]
		}
	}
	return nil
}

// Lookup walks the frame chain outermost-last (i.e. innermost-first),
// returning the first binding found. A miss returns (Nil, false)
// without signaling an error.
func (s *Scope) Lookup(sym *Symbol) (Value, bool) {
	for f := s; f != nil; f = f.parent {
		if b := f.find(sym); b != nil {
			return b.val, true
		}
	}
	return Nil, false
}

// Define installs a fresh binding for sym in this exact frame,
// overwriting any existing binding for the same symbol in this frame.
// Used to bind procedure parameters and let-variables, where the new
// frame is known to be empty of the name in question.
func (s *Scope) Define(sym *Symbol, val Value) {
	if b := s.find(sym); b != nil {
		b.val = val
		return
	}
	s.bindings = append(s.bindings, binding{sym: sym, val: val})
}

// DefineOrUpdate implements the `set` primitive's scope-mutation rule:
// walk the frame chain outward, and if any frame already defines sym,
// overwrite the binding in that frame. Otherwise insert a new binding
// in the innermost frame, the one on which DefineOrUpdate was
// originally called.
func (s *Scope) DefineOrUpdate(sym *Symbol, val Value) {
	for f := s; f != nil; f = f.parent {
		if b := f.find(sym); b != nil {
			b.val = val
			return
		}
	}
	s.Define(sym, val)
}

// FrameList enumerates the symbols bound directly in this frame (not
// its ancestors), in binding order. Used by the `locals` primitive,
// and on the root frame by `globals`.
func (s *Scope) FrameList() []*Symbol {
	syms := make([]*Symbol, len(s.bindings))
	for i, b := range s.bindings {
		syms[i] = b.sym
	}
	return syms
}

// Root walks to the outermost frame of the chain.
func (s *Scope) Root() *Scope {
	f := s
	for f.parent != nil {
		f = f.parent
	}
	return f
}

// Parent returns the enclosing frame, or nil if s is the root scope.
func (s *Scope) Parent() *Scope {
	return s.parent
}

// AllSymbols enumerates every symbol bound anywhere in the frame
// chain, innermost first, without duplicates for names shadowed in an
// inner frame. Used by the `syms` primitive.
func (s *Scope) AllSymbols() []*Symbol {
	seen := make(map[*Symbol]bool)
	var syms []*Symbol
	for f := s; f != nil; f = f.parent {
		for _, b := range f.bindings {
			if !seen[b.sym] {
				seen[b.sym] = true
				syms = append(syms, b.sym)
			}
		}
	}
	return syms
}
