//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

// define names and installs a native primitive in the interpreter's
// root scope.
func (in *Interpreter) define(name string, fn PrimitiveFunc) {
	in.Root.Define(Intern(name), NewPrimitive(name, fn))
}

// installPrimitives populates the root scope with the full primitive
// library: control flow, sequence operations, arithmetic and bitwise
// folds, the total-order comparisons, stream I/O, and the remaining
// startup-scope bindings.
func (in *Interpreter) installPrimitives() {
	in.installControlPrimitives()
	in.installSequencePrimitives()
	in.installArithmeticPrimitives()
	in.installComparisonPrimitives()
	in.installIOPrimitives()
	in.installMiscPrimitives()
}
