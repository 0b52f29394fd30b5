//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

import (
	"io"
	"strconv"
	"strings"
)

// eofSentinel is the distinct type of the EOF marker so it can never
// be confused with a symbol or any other ordinary Value a user
// expression might produce.
type eofSentinel struct{}

func (eofSentinel) String() string { return "#<eof>" }

// EOF is the sentinel Value returned by Reader.Read when a top-level
// read finds nothing but the end of the stream.
var EOF Value = eofSentinel{}

var (
	quoteSym   = Intern("quote")
	unquoteSym = Intern("unquote")
)

// Reader parses a character stream into Values, one per call to Read.
type Reader struct {
	tokens chan token
	peeked *token
}

// NewReader starts a Reader pulling characters from src as needed. A
// single Reader may be asked for many successive top-level forms; the
// EOF sentinel is returned only once src is genuinely exhausted.
func NewReader(src io.Reader) *Reader {
	return &Reader{tokens: lex(src)}
}

// NewReaderString starts a Reader over in-memory text, a convenience
// for parsing a single literal expression (tests, `pack`-style
// embeddings).
func NewReaderString(text string) *Reader {
	return NewReader(strings.NewReader(text))
}

func (r *Reader) next() token {
	if r.peeked != nil {
		t := *r.peeked
		r.peeked = nil
		return t
	}
	t, ok := <-r.tokens
	if !ok {
		return token{typ: tokenEOF}
	}
	return t
}

func (r *Reader) peek() token {
	if r.peeked == nil {
		t := r.next()
		r.peeked = &t
	}
	return *r.peeked
}

// Read parses and returns the next top-level expression. At true
// end-of-stream it returns (EOF, nil); any malformed input yields a
// non-nil *EvalError whose payload is a Symbol naming the problem.
func (r *Reader) Read() (Value, error) {
	t := r.next()
	if t.typ == tokenEOF {
		return EOF, nil
	}
	return r.readForm(t, false)
}

// readForm reads one complete form starting with the already-consumed
// token t. midList is true when called while scanning the elements of
// an enclosing list; readForm does not consult it. An end-of-stream
// token here is always a hard parse error: Read handles the top-level
// EOF sentinel before calling readForm.
func (r *Reader) readForm(t token, midList bool) (Value, error) {
	switch t.typ {
	case tokenError:
		return nil, newEvalErrorf(errLexer, "%s", t.val)
	case tokenEOF:
		return nil, newEvalError(errEOF, Intern("unexpected end of input"))
	case tokenOpenParen:
		return r.readList()
	case tokenCloseParen:
		return nil, newEvalError(errSyntax, Intern("expected closing parentheses"))
	case tokenOpenBracket:
		return r.readVector()
	case tokenCloseBracket:
		return nil, newEvalError(errSyntax, Intern("expected closing parentheses"))
	case tokenInteger:
		n, err := strconv.ParseInt(t.val, 10, 64)
		if err != nil {
			// overflow is unspecified; read it as 0 rather than fail the read.
			n = 0
		}
		return Integer(n), nil
	case tokenString:
		return Intern(unescapeString(t.val)), nil
	case tokenSymbol:
		return Intern(t.val), nil
	case tokenQuote:
		return r.readQuoted(quoteSym)
	case tokenUnquote:
		return r.readQuoted(unquoteSym)
	}
	panic("lisp: unreachable lexer state")
}

// readQuoted reads the single expression following a quote or unquote
// prefix character and wraps it as a dotted pair (sym . X), per
// the non-conventional dotted quote encoding.
func (r *Reader) readQuoted(sym *Symbol) (Value, error) {
	t := r.next()
	val, err := r.readForm(t, true)
	if err != nil {
		return nil, err
	}
	return Cons(sym, val), nil
}

// readList reads list elements up to the matching close paren,
// handling the single dotted-tail form "(a b . c)".
func (r *Reader) readList() (Value, error) {
	var elems []Value
	for {
		t := r.next()
		if t.typ == tokenCloseParen {
			return NewList(elems...), nil
		}
		if t.typ == tokenEOF {
			return nil, newEvalError(errEOF, Intern("unexpected end of input in list"))
		}
		if t.typ == tokenSymbol && t.val == "." {
			if len(elems) == 0 {
				return nil, newEvalError(errSyntax, Intern("illegal dotted list"))
			}
			tailTok := r.next()
			if tailTok.typ == tokenEOF {
				return nil, newEvalError(errEOF, Intern("unexpected end of input in list"))
			}
			tail, err := r.readForm(tailTok, true)
			if err != nil {
				return nil, err
			}
			closeTok := r.next()
			if closeTok.typ != tokenCloseParen {
				return nil, newEvalError(errSyntax, Intern("illegal dotted list"))
			}
			return buildDotted(elems, tail), nil
		}
		val, err := r.readForm(t, true)
		if err != nil {
			return nil, err
		}
		elems = append(elems, val)
	}
}

// buildDotted constructs the right-nested pair chain for elems,
// terminated by tail instead of Nil.
func buildDotted(elems []Value, tail Value) Value {
	result := tail
	for i := len(elems) - 1; i >= 0; i-- {
		result = Cons(elems[i], result)
	}
	return result
}

// readVector reads elements up to the matching close bracket; vectors
// have no dotted form.
func (r *Reader) readVector() (Value, error) {
	var elems []Value
	for {
		t := r.next()
		if t.typ == tokenCloseBracket {
			return VectorOf(elems...), nil
		}
		if t.typ == tokenEOF {
			return nil, newEvalError(errEOF, Intern("unexpected end of input in vector"))
		}
		val, err := r.readForm(t, true)
		if err != nil {
			return nil, err
		}
		elems = append(elems, val)
	}
}

// unescapeString strips the surrounding quotes and resolves backslash
// escapes verbatim (no escape-name translation: \n yields the literal
// letter n).
func unescapeString(raw string) string {
	inner := raw
	if len(inner) >= 2 {
		inner = inner[1 : len(inner)-1]
	}
	var b strings.Builder
	b.Grow(len(inner))
	for i := 0; i < len(inner); i++ {
		if inner[i] == '\\' && i+1 < len(inner) {
			i++
			b.WriteByte(inner[i])
			continue
		}
		b.WriteByte(inner[i])
	}
	return b.String()
}
