package bitio

import (
	"encoding/binary"
	"errors"
	"io"
)

var (
	// ErrReadMismatch is returned when fewer bytes were available than requested.
	ErrReadMismatch = errors.New("bitio: read size mismatch")
)

const maxReadBufferSize = 64

// Reader unpacks fixed-width values from an io.Reader in a chosen byte order.
type Reader struct {
	readBuffer [maxReadBufferSize]byte

	buf   io.Reader
	order binary.ByteOrder
}

// NewReader wraps buf for reading in the given byte order.
func NewReader(buf io.Reader, order binary.ByteOrder) *Reader {
	return &Reader{buf: buf, order: order}
}

func (r *Reader) readN(size int) error {
	n, err := r.buf.Read(r.readBuffer[:size])
	if err != nil {
		return err
	}
	if n != size {
		return ErrReadMismatch
	}
	return nil
}

// ReadBool reads a single byte and reports it as a boolean.
func (r *Reader) ReadBool() (bool, error) {
	if err := r.readN(1); err != nil {
		return false, err
	}
	return r.readBuffer[0] != 0, nil
}

// ReadUint32 reads a uint32 in the reader's byte order.
func (r *Reader) ReadUint32() (uint32, error) {
	if err := r.readN(4); err != nil {
		return 0, err
	}
	return r.order.Uint32(r.readBuffer[:4]), nil
}

// ReadBytes reads exactly n bytes into out.
func (r *Reader) ReadBytes(n int, out []byte) error {
	read, err := r.buf.Read(out[:n])
	if err != nil {
		return err
	}
	if read != n {
		return ErrReadMismatch
	}
	return nil
}
