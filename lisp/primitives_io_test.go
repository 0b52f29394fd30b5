//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCapturingInterpreter() (*Interpreter, *bytes.Buffer) {
	var out bytes.Buffer
	in := NewInterpreter(strings.NewReader(""), &out, io.Discard)
	return in, &out
}

func TestWriteGoesToOut(t *testing.T) {
	in, out := newCapturingInterpreter()
	mustEval(t, in, "(write 42)")
	assert.Equal(t, "42", out.String())
}

func TestPrintWalksLeaves(t *testing.T) {
	in, out := newCapturingInterpreter()
	mustEval(t, in, "(print '(1 2))")
	assert.Equal(t, "12", out.String())
}

func TestWriteBytesEncodesIntegersAsBytes(t *testing.T) {
	in, out := newCapturingInterpreter()
	mustEval(t, in, "(write-bytes '(104 105))")
	assert.Equal(t, "hi", out.String())
}

func TestOpenWriteCloseRoundTrip(t *testing.T) {
	in, _ := newCapturingInterpreter()
	path := filepath.Join(t.TempDir(), "out.txt")

	mustEval(t, in, "(set h (open '"+path+" 'w))")
	_, err := evalString(t, in, "(write 7 h)")
	require.NoError(t, err)
	mustEval(t, in, "(close h)")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "7", string(data))
}

func TestReadFromOpenedFile(t *testing.T) {
	in, _ := newCapturingInterpreter()
	path := filepath.Join(t.TempDir(), "in.lisp")
	require.NoError(t, os.WriteFile(path, []byte("(1 2 3)"), 0644))

	mustEval(t, in, "(set h (open '"+path+"))")
	result := mustEval(t, in, "(read h)")
	assert.Equal(t, "(1 2 3)", Write(result))
	mustEval(t, in, "(close h)")
}

func TestCloseUnknownStreamIsNoError(t *testing.T) {
	in, _ := newCapturingInterpreter()
	path := filepath.Join(t.TempDir(), "a.txt")
	require.NoError(t, os.WriteFile(path, []byte(""), 0644))
	mustEval(t, in, "(set h (open '"+path+"))")
	mustEval(t, in, "(close h)")
	mustEval(t, in, "(close h)")
}
