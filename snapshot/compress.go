package snapshot

import (
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression is a named frame codec for the snapshot payload. Like the
// payload codec, the name is recorded in the artifact header and resolved
// on load.
type Compression interface {
	Name() string
	NewWriter(w io.Writer) (io.WriteCloser, error)
	NewReader(r io.Reader) (io.ReadCloser, error)
}

// CompressionByName returns a built-in compression by its stable name.
func CompressionByName(name string) (Compression, bool) {
	switch name {
	case "none":
		return None{}, true
	case "zstd":
		return Zstd{}, true
	case "lz4":
		return LZ4{}, true
	default:
		return nil, false
	}
}

// None passes the payload through uncompressed.
type None struct{}

// Name returns "none".
func (None) Name() string { return "none" }

// NewWriter returns w unchanged.
func (None) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return nopWriteCloser{w}, nil
}

// NewReader returns r unchanged.
func (None) NewReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(r), nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// Zstd compresses the payload with zstandard. It is the default: mask
// snapshots are long runs of small integers and compress well.
type Zstd struct{}

// Name returns "zstd".
func (Zstd) Name() string { return "zstd" }

// NewWriter wraps w in a zstd encoder.
func (Zstd) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return zstd.NewWriter(w)
}

// NewReader wraps r in a zstd decoder.
func (Zstd) NewReader(r io.Reader) (io.ReadCloser, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	return dec.IOReadCloser(), nil
}

// LZ4 compresses the payload with lz4 frames. Faster but lighter
// compression than zstd.
type LZ4 struct{}

// Name returns "lz4".
func (LZ4) Name() string { return "lz4" }

// NewWriter wraps w in an lz4 frame writer.
func (LZ4) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return lz4.NewWriter(w), nil
}

// NewReader wraps r in an lz4 frame reader.
func (LZ4) NewReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(lz4.NewReader(r)), nil
}

// Default is the compression used for newly written artifacts.
var Default Compression = Zstd{}
