package snapshot

import (
	"bufio"
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"path"

	"github.com/hupe1980/connectome/blobstore"
	"github.com/hupe1980/connectome/codec"
	"github.com/hupe1980/connectome/mask"
	"github.com/hupe1980/connectome/rangeset"
)

// magic identifies a connectome mask snapshot; version gates the header
// layout.
var magic = [4]byte{'C', 'T', 'M', 'S'}

const version = 1

// Snapshot captures everything one rank derives during the mask phase of
// a connect call. Sources, Targets and Masks are pure functions of the
// populations and the process count, so artifacts written by different
// ranks of the same call must be identical up to the Rank field; comparing
// them is how divergent replicated computation is diagnosed.
type Snapshot struct {
	Rank      int               `json:"rank"`
	Processes int               `json:"processes"`
	Sources   rangeset.RangeSet `json:"sources"`
	Targets   rangeset.RangeSet `json:"targets"`
	Masks     []mask.Mask       `json:"masks"`
}

// EqualDerived reports whether two snapshots agree on all replicated
// content, ignoring the rank that wrote them.
func (s *Snapshot) EqualDerived(other *Snapshot) bool {
	if s.Processes != other.Processes ||
		len(s.Sources) != len(other.Sources) ||
		len(s.Targets) != len(other.Targets) ||
		len(s.Masks) != len(other.Masks) {
		return false
	}
	for i, r := range s.Sources {
		if r != other.Sources[i] {
			return false
		}
	}
	for i, r := range s.Targets {
		if r != other.Targets[i] {
			return false
		}
	}
	for i, m := range s.Masks {
		if !m.Equal(other.Masks[i]) {
			return false
		}
	}
	return true
}

// Options configure how snapshot artifacts are written.
type Options struct {
	// Codec encodes the payload. Defaults to codec.Default.
	Codec codec.Codec

	// Compression frames the encoded payload. Defaults to zstd.
	Compression Compression
}

// Name returns the canonical artifact name for a rank within a run.
func Name(run string, rank int) string {
	return path.Join(run, fmt.Sprintf("masks-rank%04d.snap", rank))
}

// Encode writes the snapshot to w as a self-describing artifact: magic,
// version, codec name, compression name, then the framed payload.
func Encode(w io.Writer, snap *Snapshot, optFns ...func(*Options)) error {
	opts := Options{
		Codec:       codec.Default,
		Compression: Default,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	if _, err := w.Write(magic[:]); err != nil {
		return err
	}
	if err := writeHeader(w, version, opts.Codec.Name(), opts.Compression.Name()); err != nil {
		return err
	}

	payload, err := opts.Codec.Marshal(snap)
	if err != nil {
		return fmt.Errorf("snapshot: encode payload: %w", err)
	}

	cw, err := opts.Compression.NewWriter(w)
	if err != nil {
		return err
	}
	if _, err := cw.Write(payload); err != nil {
		return err
	}
	return cw.Close()
}

// Decode reads a snapshot written by Encode, selecting codec and
// compression by the names recorded in the header.
func Decode(r io.Reader) (*Snapshot, error) {
	br := bufio.NewReader(r)

	var m [4]byte
	if _, err := io.ReadFull(br, m[:]); err != nil {
		return nil, err
	}
	if m != magic {
		return nil, fmt.Errorf("snapshot: bad magic %q", m)
	}

	ver, codecName, compName, err := readHeader(br)
	if err != nil {
		return nil, err
	}
	if ver != version {
		return nil, fmt.Errorf("snapshot: unsupported version %d", ver)
	}

	c, ok := codec.ByName(codecName)
	if !ok {
		return nil, fmt.Errorf("snapshot: unknown codec %q", codecName)
	}
	comp, ok := CompressionByName(compName)
	if !ok {
		return nil, fmt.Errorf("snapshot: unknown compression %q", compName)
	}

	cr, err := comp.NewReader(br)
	if err != nil {
		return nil, err
	}
	defer func() { _ = cr.Close() }()

	payload, err := io.ReadAll(cr)
	if err != nil {
		return nil, err
	}

	var snap Snapshot
	if err := c.Unmarshal(payload, &snap); err != nil {
		return nil, fmt.Errorf("snapshot: decode payload: %w", err)
	}
	return &snap, nil
}

// Save encodes the snapshot into the store under the given name.
func Save(ctx context.Context, store blobstore.Store, name string, snap *Snapshot, optFns ...func(*Options)) error {
	w, err := store.Create(ctx, name)
	if err != nil {
		return err
	}

	if err := Encode(w, snap, optFns...); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}

// Load reads a snapshot from the store.
func Load(ctx context.Context, store blobstore.Store, name string) (*Snapshot, error) {
	r, err := store.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	return Decode(r)
}

func writeHeader(w io.Writer, ver uint8, names ...string) error {
	if _, err := w.Write([]byte{ver}); err != nil {
		return err
	}

	var buf [binary.MaxVarintLen64]byte
	for _, name := range names {
		n := binary.PutUvarint(buf[:], uint64(len(name)))
		if _, err := w.Write(buf[:n]); err != nil {
			return err
		}
		if _, err := io.WriteString(w, name); err != nil {
			return err
		}
	}
	return nil
}

func readHeader(br *bufio.Reader) (uint8, string, string, error) {
	ver, err := br.ReadByte()
	if err != nil {
		return 0, "", "", err
	}

	names := make([]string, 2)
	for i := range names {
		n, err := binary.ReadUvarint(br)
		if err != nil {
			return 0, "", "", err
		}
		if n > 256 {
			return 0, "", "", fmt.Errorf("snapshot: header name too long: %d", n)
		}
		b := make([]byte, n)
		if _, err := io.ReadFull(br, b); err != nil {
			return 0, "", "", err
		}
		names[i] = string(b)
	}

	return ver, names[0], names[1], nil
}
