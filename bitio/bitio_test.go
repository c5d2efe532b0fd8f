package bitio

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestWriterGrow(t *testing.T) {
	w := NewWriter(make([]byte, 0), binary.LittleEndian)
	w.EnableGrowing()

	w.PutBool(true)
	w.PutUint32(42)
	w.PutUint64(9999999999)
	w.Write([]byte("hello"))

	out := w.Bytes()
	if len(out) != 1+4+8+5 {
		t.Fatalf("unexpected length %d", len(out))
	}
}

func TestWriterPanicsWhenGrowingDisabled(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on overflow with growing disabled")
		}
	}()

	w := NewWriter(make([]byte, 2), binary.LittleEndian)
	w.PutUint64(1)
}

func TestReaderRoundTrip(t *testing.T) {
	w := NewWriter(make([]byte, 0), binary.LittleEndian)
	w.EnableGrowing()
	w.PutBool(true)
	w.PutUint32(7)
	w.Write([]byte{1, 2, 3})

	r := NewReader(bytes.NewReader(w.Bytes()), binary.LittleEndian)

	b, err := r.ReadBool()
	if err != nil || !b {
		t.Fatalf("expected true, got %v err %v", b, err)
	}

	u, err := r.ReadUint32()
	if err != nil || u != 7 {
		t.Fatalf("expected 7, got %v err %v", u, err)
	}

	raw := make([]byte, 3)
	if err := r.ReadBytes(3, raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(raw, []byte{1, 2, 3}) {
		t.Errorf("unexpected payload %v", raw)
	}
}
