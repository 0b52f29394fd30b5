//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

import (
	"strconv"
	"strings"
)

// Write renders v back to text, the inverse of Reader.Read for any
// Value that does not reference a stream handle.
func Write(v Value) string {
	var b strings.Builder
	writeValue(&b, v)
	return b.String()
}

func writeValue(b *strings.Builder, v Value) {
	switch x := v.(type) {
	case Integer:
		b.WriteString(strconv.FormatInt(int64(x), 10))
	case *Symbol:
		writeSymbol(b, x.name)
	case *Vector:
		b.WriteByte('[')
		for i, e := range x.Items() {
			if i > 0 {
				b.WriteByte(' ')
			}
			writeValue(b, e)
		}
		b.WriteByte(']')
	case *Pair:
		writePair(b, x)
	case *Primitive:
		b.WriteString("#<primitive ")
		b.WriteString(x.Name())
		b.WriteByte('>')
	case *StreamHandle:
		b.WriteString("#<stream ")
		b.WriteString(strconv.FormatInt(x.ID(), 10))
		b.WriteByte('>')
	case eofSentinel:
		b.WriteString("#<eof>")
	default:
		panic("lisp: cannot write value of unrecognized type")
	}
}

func writePair(b *strings.Builder, p *Pair) {
	b.WriteByte('(')
	if p != nil {
		writeValue(b, p.head)
		rest := p.tail
		for {
			next, ok := rest.(*Pair)
			if ok && next == nil {
				break
			}
			if ok {
				b.WriteByte(' ')
				writeValue(b, next.head)
				rest = next.tail
				continue
			}
			b.WriteString(" . ")
			writeValue(b, rest)
			break
		}
	}
	b.WriteByte(')')
}

// bareAllowed reports whether text can be emitted without surrounding
// quotes: it must contain no whitespace and none of ( ) [ ] " and must
// not begin with one of . ' ,.
func bareAllowed(text string) bool {
	if text == "" {
		return false
	}
	switch text[0] {
	case '.', '\'', ',':
		return false
	}
	for _, r := range text {
		switch r {
		case ' ', '\t', '\n', '\r', '(', ')', '[', ']', '"':
			return false
		}
	}
	return true
}

func writeSymbol(b *strings.Builder, text string) {
	if bareAllowed(text) {
		b.WriteString(text)
		return
	}
	b.WriteByte('"')
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == '"' || c == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	b.WriteByte('"')
}
