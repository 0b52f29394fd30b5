//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

import (
	"io"
	"sync"
)

// streamEntry backs one open StreamHandle: the underlying Go I/O
// object(s) and, for input streams, a persistent Reader so that
// repeated (read h) calls continue where the last one left off.
type streamEntry struct {
	name   string
	src    io.Reader
	dst    io.Writer
	closer io.Closer
	reader *Reader
}

// Streams is the table mapping StreamHandle identities to their
// backing Go I/O objects. An embedding normally has exactly one
// Streams table per Interpreter. Stream handles are plain Values
// passed around through ordinary scope bindings, so primitives reach
// this table through the Interpreter they close over rather than
// through the Scope chain itself.
type Streams struct {
	mu      sync.Mutex
	nextID  int64
	entries map[int64]*streamEntry
}

// NewStreams creates an empty stream table.
func NewStreams() *Streams {
	return &Streams{entries: make(map[int64]*streamEntry)}
}

// Open registers a new stream backed by the given I/O object(s),
// returning its handle. Either src or dst may be nil for a
// write-only or read-only stream, respectively.
func (s *Streams) Open(name string, src io.Reader, dst io.Writer, closer io.Closer) *StreamHandle {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	id := s.nextID
	s.entries[id] = &streamEntry{name: name, src: src, dst: dst, closer: closer}
	return &StreamHandle{id: id}
}

func (s *Streams) get(h *StreamHandle) (*streamEntry, bool) {
	if h == nil {
		return nil, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[h.id]
	return e, ok
}

// Reader returns the persistent lisp.Reader for an input stream,
// creating it on first use.
func (s *Streams) Reader(h *StreamHandle) (*Reader, error) {
	e, ok := s.get(h)
	if !ok || e.src == nil {
		return nil, newEvalError(errIO, Intern("not an input stream"))
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if e.reader == nil {
		e.reader = NewReader(e.src)
	}
	return e.reader, nil
}

// Writer returns the io.Writer backing an output stream.
func (s *Streams) Writer(h *StreamHandle) (io.Writer, error) {
	e, ok := s.get(h)
	if !ok || e.dst == nil {
		return nil, newEvalError(errIO, Intern("not an output stream"))
	}
	return e.dst, nil
}

// Close closes and forgets the stream identified by h. Closing an
// already-closed or unknown handle is a no-op success, so a second
// close of the same handle is never itself an error.
func (s *Streams) Close(h *StreamHandle) error {
	if h == nil {
		return nil
	}
	s.mu.Lock()
	e, ok := s.entries[h.id]
	delete(s.entries, h.id)
	s.mu.Unlock()
	if !ok || e.closer == nil {
		return nil
	}
	return e.closer.Close()
}
