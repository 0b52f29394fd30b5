//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

// installComparisonPrimitives binds the chained comparison operators
// and min/max over the total order defined by Compare.
func (in *Interpreter) installComparisonPrimitives() {
	in.define("=", chainCompare(func(c int) bool { return c == 0 }))
	in.define("<", chainCompare(func(c int) bool { return c < 0 }))
	in.define(">", chainCompare(func(c int) bool { return c > 0 }))
	in.define("<=", chainCompare(func(c int) bool { return c <= 0 }))
	in.define(">=", chainCompare(func(c int) bool { return c >= 0 }))

	in.define("<=>", func(s *Scope, args Value) (Value, error) {
		vals, err := evalArgs(args, s)
		if err != nil {
			return nil, err
		}
		if len(vals) != 2 {
			return nil, newEvalError(errSyntax, Intern("<=> takes two arguments"))
		}
		return Integer(Compare(vals[0], vals[1])), nil
	})

	in.define("min", extremum(func(c int) bool { return c < 0 }))
	in.define("max", extremum(func(c int) bool { return c > 0 }))
}

func chainCompare(ok func(c int) bool) PrimitiveFunc {
	return func(s *Scope, args Value) (Value, error) {
		vals, err := evalArgs(args, s)
		if err != nil {
			return nil, err
		}
		for i := 0; i+1 < len(vals); i++ {
			if !ok(Compare(vals[i], vals[i+1])) {
				return Nil, nil
			}
		}
		return Intern("t"), nil
	}
}

func extremum(better func(c int) bool) PrimitiveFunc {
	return func(s *Scope, args Value) (Value, error) {
		vals, err := evalArgs(args, s)
		if err != nil {
			return nil, err
		}
		if len(vals) == 0 {
			return Nil, nil
		}
		best := vals[0]
		for _, v := range vals[1:] {
			if better(Compare(v, best)) {
				best = v
			}
		}
		return best, nil
	}
}
