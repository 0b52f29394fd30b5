//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

import "math"

// installArithmeticPrimitives binds the mechanical numeric and
// bitwise primitives, plus not/bitwise-and/
// bitwise-or/bitwise-xor recovered from the original source.
func (in *Interpreter) installArithmeticPrimitives() {
	in.define("+", func(s *Scope, args Value) (Value, error) {
		vals, err := evalArgs(args, s)
		if err != nil {
			return nil, err
		}
		return foldInts(vals, 0, func(acc, v Integer) (Integer, error) { return acc + v, nil })
	})

	in.define("*", func(s *Scope, args Value) (Value, error) {
		vals, err := evalArgs(args, s)
		if err != nil {
			return nil, err
		}
		return foldInts(vals, 1, func(acc, v Integer) (Integer, error) { return acc * v, nil })
	})

	in.define("-", func(s *Scope, args Value) (Value, error) {
		return firstSeedFold(s, args, func(acc, v Integer) (Integer, error) { return acc - v, nil })
	})

	in.define("/", func(s *Scope, args Value) (Value, error) {
		return firstSeedFold(s, args, func(acc, v Integer) (Integer, error) {
			if v == 0 {
				return 0, newEvalError(errUser, Intern("division by zero"))
			}
			return acc / v, nil
		})
	})

	in.define("%", func(s *Scope, args Value) (Value, error) {
		return firstSeedFold(s, args, func(acc, v Integer) (Integer, error) {
			if v == 0 {
				return 0, newEvalError(errUser, Intern("division by zero"))
			}
			return acc % v, nil
		})
	})

	in.define("exp", func(s *Scope, args Value) (Value, error) {
		return firstSeedFold(s, args, func(acc, v Integer) (Integer, error) {
			return Integer(ipow(int64(acc), int64(v))), nil
		})
	})

	in.define("shift-left", func(s *Scope, args Value) (Value, error) {
		return firstSeedFold(s, args, func(acc, v Integer) (Integer, error) { return acc << uint(v), nil })
	})

	in.define("shift-right", func(s *Scope, args Value) (Value, error) {
		return firstSeedFold(s, args, func(acc, v Integer) (Integer, error) { return acc >> uint(v), nil })
	})

	in.define("bitwise-and", func(s *Scope, args Value) (Value, error) {
		return firstSeedFold(s, args, func(acc, v Integer) (Integer, error) { return acc & v, nil })
	})

	in.define("bitwise-or", func(s *Scope, args Value) (Value, error) {
		return firstSeedFold(s, args, func(acc, v Integer) (Integer, error) { return acc | v, nil })
	})

	in.define("bitwise-xor", func(s *Scope, args Value) (Value, error) {
		return firstSeedFold(s, args, func(acc, v Integer) (Integer, error) { return acc ^ v, nil })
	})

	in.define("abs", oneIntArg(func(n Integer) (Value, error) {
		if n < 0 {
			return -n, nil
		}
		return n, nil
	}))

	in.define("sqrt", oneIntArg(func(n Integer) (Value, error) {
		if n < 0 {
			return nil, newEvalError(errUser, Intern("sqrt of negative integer"))
		}
		return Integer(math.Sqrt(float64(n))), nil
	}))

	in.define("bitwise-not", oneIntArg(func(n Integer) (Value, error) {
		return ^n, nil
	}))

	in.define("not", func(s *Scope, args Value) (Value, error) {
		vals, err := evalArgs(args, s)
		if err != nil {
			return nil, err
		}
		if len(vals) != 1 {
			return nil, newEvalError(errSyntax, Intern("not takes one argument"))
		}
		return boolValue(!Truthy(vals[0])), nil
	})

	in.define("rand", func(s *Scope, args Value) (Value, error) {
		vals, err := evalArgs(args, s)
		if err != nil {
			return nil, err
		}
		if len(vals) == 0 {
			return Integer(in.rng.Int63()), nil
		}
		seed, ok := vals[0].(Integer)
		if !ok {
			return nil, newEvalError(errExpectInt, Intern("expected an integer"))
		}
		// A linear-congruential step, independent of the process-global rng,
		// so that supplying the same seed always chains to the same next
		// seed regardless of how many unseeded (rand) calls came before.
		newSeed := Integer(uint64(seed)*6364136223846793005 + 1442695040888963407)
		value := newSeed
		if value < 0 {
			value = -value
		}
		return Cons(value, newSeed), nil
	})
}

func ipow(base, exp int64) int64 {
	if exp < 0 {
		return 0
	}
	result := int64(1)
	for i := int64(0); i < exp; i++ {
		result *= base
	}
	return result
}

func foldInts(vals []Value, seed Integer, combine func(acc, v Integer) (Integer, error)) (Value, error) {
	acc := seed
	for _, v := range vals {
		n, ok := v.(Integer)
		if !ok {
			return nil, newEvalError(errExpectInt, Intern("expected an integer"))
		}
		var err error
		acc, err = combine(acc, n)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

func firstSeedFold(s *Scope, args Value, combine func(acc, v Integer) (Integer, error)) (Value, error) {
	vals, err := evalArgs(args, s)
	if err != nil {
		return nil, err
	}
	if len(vals) == 0 {
		return nil, newEvalError(errExpectInt, Intern("expected an integer"))
	}
	seed, ok := vals[0].(Integer)
	if !ok {
		return nil, newEvalError(errExpectInt, Intern("expected an integer"))
	}
	return foldInts(vals[1:], seed, combine)
}

func oneIntArg(fn func(Integer) (Value, error)) PrimitiveFunc {
	return func(s *Scope, args Value) (Value, error) {
		vals, err := evalArgs(args, s)
		if err != nil {
			return nil, err
		}
		if len(vals) != 1 {
			return nil, newEvalError(errExpectInt, Intern("expected an integer"))
		}
		n, ok := vals[0].(Integer)
		if !ok {
			return nil, newEvalError(errExpectInt, Intern("expected an integer"))
		}
		return fn(n)
	}
}
