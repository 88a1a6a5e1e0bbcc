package main

import (
	"errors"
	"fmt"
	"io"

	"asteroids/game"

	"github.com/cespare/xxhash/v2"
	"github.com/vmihailenco/msgpack/v5"
)

// recorder samples snapshots every few frames. Each sample is msgpack-encoded,
// optionally appended to a stream, and folded into a digest that fingerprints the run.
type recorder struct {
	w       io.Writer
	digest  *xxhash.Digest
	every   uint64
	samples int
}

// newRecorder samples every n frames; w may be nil to only compute the digest
func newRecorder(w io.Writer, every int) *recorder {
	if every < 1 {
		every = 1
	}
	return &recorder{
		w:      w,
		digest: xxhash.New(),
		every:  uint64(every),
	}
}

// observe records snap if frame falls on the sampling period
func (r *recorder) observe(frame uint64, snap game.Snapshot) error {
	if frame%r.every != 0 {
		return nil
	}

	if r.w != nil {
		b, err := msgpack.Marshal(&snap)
		if err != nil {
			return fmt.Errorf("encode snapshot: %w", err)
		}
		if _, err := r.w.Write(b); err != nil {
			return fmt.Errorf("write snapshot: %w", err)
		}
	}

	// Session ids are random; leave them out of the fingerprint
	snap.SessionID = ""
	b, err := msgpack.Marshal(&snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	_, _ = r.digest.Write(b)
	r.samples++
	return nil
}

// Sum returns the digest of every sample so far
func (r *recorder) Sum() uint64 {
	return r.digest.Sum64()
}

// readRecording decodes a snapshot stream written by a recorder
func readRecording(rd io.Reader) ([]game.Snapshot, error) {
	dec := msgpack.NewDecoder(rd)
	var out []game.Snapshot
	for {
		var snap game.Snapshot
		if err := dec.Decode(&snap); err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return out, fmt.Errorf("decode snapshot %d: %w", len(out), err)
		}
		out = append(out, snap)
	}
}
