// Package state saves and restores snapshots of the emulator. A snapshot
// is the concatenated state of a fixed list of types.Stater values,
// compressed with brotli and guarded by an xxhash checksum.
package state

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/cespare/xxhash"
	"github.com/thelolagemann/sm83core/internal/types"
)

const (
	magic   = "SM83"
	version = 1

	headerSize = len(magic) + 1 + 8
)

var (
	// ErrInvalidSnapshot is returned when the snapshot header is malformed.
	ErrInvalidSnapshot = errors.New("state: invalid snapshot")
	// ErrChecksum is returned when the snapshot payload does not match its checksum.
	ErrChecksum = errors.New("state: checksum mismatch")
)

// Snapshot saves each of the staters in order and returns the
// compressed snapshot.
func Snapshot(staters ...types.Stater) ([]byte, error) {
	s := types.NewState()
	for _, st := range staters {
		st.Save(s)
	}
	payload := s.Bytes()

	var buf bytes.Buffer
	buf.WriteString(magic)
	buf.WriteByte(version)
	var sum [8]byte
	binary.LittleEndian.PutUint64(sum[:], xxhash.Sum64(payload))
	buf.Write(sum[:])

	w := brotli.NewWriterLevel(&buf, brotli.DefaultCompression)
	if _, err := w.Write(payload); err != nil {
		return nil, fmt.Errorf("state: compressing snapshot: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("state: compressing snapshot: %w", err)
	}

	return buf.Bytes(), nil
}

// Restore verifies the snapshot and loads it into the staters, which
// must be given in the same order as to Snapshot. The header and checksum
// are verified before any stater is touched, but a stater that rejects
// its part leaves the staters before it already restored.
func Restore(snapshot []byte, staters ...types.Stater) error {
	if len(snapshot) < headerSize || string(snapshot[:len(magic)]) != magic {
		return ErrInvalidSnapshot
	}
	if v := snapshot[len(magic)]; v != version {
		return fmt.Errorf("%w: unsupported version %d", ErrInvalidSnapshot, v)
	}
	sum := binary.LittleEndian.Uint64(snapshot[len(magic)+1 : headerSize])

	payload, err := io.ReadAll(brotli.NewReader(bytes.NewReader(snapshot[headerSize:])))
	if err != nil {
		return fmt.Errorf("state: decompressing snapshot: %w", err)
	}
	if xxhash.Sum64(payload) != sum {
		return ErrChecksum
	}

	s := types.StateFromBytes(payload)
	for _, st := range staters {
		if err := st.Load(s); err != nil {
			return err
		}
	}
	if s.Remaining() != 0 {
		return fmt.Errorf("%w: %d trailing bytes", ErrInvalidSnapshot, s.Remaining())
	}
	return nil
}
