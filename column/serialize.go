package column

import (
	"bytes"
	"fmt"

	"github.com/dot5enko/numstorage/bitio"
	"github.com/dot5enko/numstorage/compression"
)

// Serialize writes a debug/round-trip payload: is_sorted, then the column
// type tag, then the element count, then the raw element bytes in host
// byte order. It is not a stable on-disk format — only DeserializeColumn in
// this same package is expected to read it back.
func (c *Column) Serialize(w *bitio.Writer) {
	w.PutBool(c.sorted)
	w.PutUint32(uint32(c.typ))
	w.PutUint32(c.length)
	if _, err := w.Write(c.bytesView()); err != nil {
		panic(fmt.Sprintf("numstorage: serialize: %v", err))
	}
}

// DeserializeColumn reads back a payload written by Serialize.
func DeserializeColumn(r *bitio.Reader) (Column, error) {
	sorted, err := r.ReadBool()
	if err != nil {
		return Column{}, fmt.Errorf("numstorage: deserialize: is_sorted: %w", err)
	}
	rawType, err := r.ReadUint32()
	if err != nil {
		return Column{}, fmt.Errorf("numstorage: deserialize: column_type: %w", err)
	}
	length, err := r.ReadUint32()
	if err != nil {
		return Column{}, fmt.Errorf("numstorage: deserialize: length: %w", err)
	}

	typ := ColumnType(rawType)
	raw := make([]byte, int(length)*typ.Size())
	if err := r.ReadBytes(len(raw), raw); err != nil {
		return Column{}, fmt.Errorf("numstorage: deserialize: values: %w", err)
	}

	return FromBytes(typ, sorted, length, raw), nil
}

// SerializeCompressed writes the same header Serialize does, then the
// element bytes run through lz4 instead of stored verbatim, prefixed with
// the compressed length so DeserializeCompressedColumn knows how much to
// read before handing the rest off to the lz4 reader.
func (c *Column) SerializeCompressed(w *bitio.Writer) error {
	w.PutBool(c.sorted)
	w.PutUint32(uint32(c.typ))
	w.PutUint32(c.length)

	var compressed bytes.Buffer
	if err := compression.CompressLz4(c.bytesView(), &compressed); err != nil {
		return fmt.Errorf("numstorage: serialize compressed: %w", err)
	}

	w.PutUint32(uint32(compressed.Len()))
	if _, err := w.Write(compressed.Bytes()); err != nil {
		return fmt.Errorf("numstorage: serialize compressed: %w", err)
	}
	return nil
}

// DeserializeCompressedColumn reads back a payload written by
// SerializeCompressed.
func DeserializeCompressedColumn(r *bitio.Reader) (Column, error) {
	sorted, err := r.ReadBool()
	if err != nil {
		return Column{}, fmt.Errorf("numstorage: deserialize compressed: is_sorted: %w", err)
	}
	rawType, err := r.ReadUint32()
	if err != nil {
		return Column{}, fmt.Errorf("numstorage: deserialize compressed: column_type: %w", err)
	}
	length, err := r.ReadUint32()
	if err != nil {
		return Column{}, fmt.Errorf("numstorage: deserialize compressed: length: %w", err)
	}
	compressedLen, err := r.ReadUint32()
	if err != nil {
		return Column{}, fmt.Errorf("numstorage: deserialize compressed: compressed_len: %w", err)
	}

	compressed := make([]byte, compressedLen)
	if err := r.ReadBytes(len(compressed), compressed); err != nil {
		return Column{}, fmt.Errorf("numstorage: deserialize compressed: payload: %w", err)
	}

	typ := ColumnType(rawType)
	raw, err := compression.DecompressLz4(compressed, int(length)*typ.Size())
	if err != nil {
		return Column{}, fmt.Errorf("numstorage: deserialize compressed: lz4: %w", err)
	}

	return FromBytes(typ, sorted, length, raw), nil
}
