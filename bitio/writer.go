// Package bitio provides a small growable byte-buffer writer/reader pair
// used for the in-process debug/round-trip serialization payload. It is
// not a stable on-disk format.
package bitio

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Writer packs fixed-width values into a growable byte buffer.
type Writer struct {
	pos            int
	data           []byte
	size           int
	order          binary.ByteOrder
	growingEnabled bool
}

// NewWriter wraps buf for writing in the given byte order. Writes beyond
// len(buf) panic unless EnableGrowing is called.
func NewWriter(buf []byte, order binary.ByteOrder) Writer {
	return Writer{data: buf, size: len(buf), order: order}
}

// EnableGrowing allows the writer to reallocate its buffer on overflow.
func (w *Writer) EnableGrowing() {
	w.growingEnabled = true
}

// Position returns the current write offset.
func (w *Writer) Position() int {
	return w.pos
}

func (w *Writer) grow(atLeast int) {
	newSize := w.size * 2
	if w.pos+atLeast > newSize {
		newSize = w.pos + atLeast
	}
	if newSize == 0 {
		newSize = atLeast
	}

	newBuf := make([]byte, newSize)
	copy(newBuf, w.data[:w.pos])
	w.data = newBuf
	w.size = newSize
}

func (w *Writer) tryGrow(n int) {
	if w.pos+n > w.size {
		if w.growingEnabled {
			w.grow(n)
		} else {
			panic(fmt.Sprintf("bitio: writer growing disabled at pos %d, need %d more, size %d", w.pos, n, w.size))
		}
	}
}

// Write appends p, growing the buffer if enabled.
func (w *Writer) Write(p []byte) (int, error) {
	w.tryGrow(len(p))
	n := copy(w.data[w.pos:], p)
	if n != len(p) {
		return 0, errors.New("bitio: not enough space")
	}
	w.pos += n
	return n, nil
}

// Bytes returns the written prefix of the buffer.
func (w *Writer) Bytes() []byte {
	return w.data[:w.pos]
}

// WriteByte appends a single byte.
func (w *Writer) WriteByte(u byte) {
	w.tryGrow(1)
	w.data[w.pos] = u
	w.pos++
}

// PutBool appends a byte: 1 for true, 0 for false.
func (w *Writer) PutBool(v bool) {
	if v {
		w.WriteByte(1)
	} else {
		w.WriteByte(0)
	}
}

// PutUint32 appends v in the writer's byte order.
func (w *Writer) PutUint32(v uint32) {
	w.tryGrow(4)
	w.order.PutUint32(w.data[w.pos:], v)
	w.pos += 4
}

// PutUint64 appends v in the writer's byte order.
func (w *Writer) PutUint64(v uint64) {
	w.tryGrow(8)
	w.order.PutUint64(w.data[w.pos:], v)
	w.pos += 8
}
