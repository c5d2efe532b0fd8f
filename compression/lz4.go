package compression

import (
	"bytes"
	"io"

	"github.com/pierrec/lz4/v4"
)

func CompressLz4(src []byte, output *bytes.Buffer) error {
	zw := lz4.NewWriter(output)

	zw.Write(src)
	flushErr := zw.Flush()

	if flushErr != nil {
		return flushErr
	}

	return zw.Close()
}

// DecompressLz4 reverses CompressLz4, reading exactly wantSize bytes of
// decompressed output from src.
func DecompressLz4(src []byte, wantSize int) ([]byte, error) {
	zr := lz4.NewReader(bytes.NewReader(src))
	out := make([]byte, wantSize)
	if _, err := io.ReadFull(zr, out); err != nil {
		return nil, err
	}
	return out, nil
}
