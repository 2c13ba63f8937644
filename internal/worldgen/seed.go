package worldgen

import (
	"crypto/md5"
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

// Every "random" decision in this package re-derives its seed from a hash of
// the coordinates (plus a per-decision salt) rather than advancing a shared
// PRNG stream. A stateful generator would make output depend on call order;
// a coordinate hash keeps each room a pure function of where it is.

// coordSeed hashes coordinates (with an optional salt such as "dungeon:" or
// "landmark:") into a 32-bit seed. MD5 is used as a stable, well-distributed
// mixer, not for security.
func coordSeed(salt string, c Coordinate) uint32 {
	sum := md5.Sum([]byte(fmt.Sprintf("%s%d,%d,%d", salt, c.X, c.Y, c.Z)))
	return binary.BigEndian.Uint32(sum[:4])
}

// stringSeed hashes an arbitrary string into a 32-bit seed. Used by the
// description assembler so that hint changes ripple into template changes.
func stringSeed(s string) uint32 {
	sum := md5.Sum([]byte(s))
	return binary.BigEndian.Uint32(sum[:4])
}

// directionSalt gives each direction a fixed, process-independent ranking
// offset for deterministic exit selection.
func directionSalt(d Direction) uint32 {
	h := fnv.New32a()
	h.Write([]byte(d))
	return h.Sum32()
}

// seededChoice picks one item deterministically. The decision index salts the
// seed so several choices can share one coordinate seed without correlating.
func seededChoice[T any](seed uint32, items []T, decision int) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[(int(seed)+decision*7919)%len(items)], true
}

// seededSample picks k distinct items deterministically, without replacement.
func seededSample[T any](seed uint32, items []T, k int) []T {
	if k >= len(items) {
		out := make([]T, len(items))
		copy(out, items)
		return out
	}
	remaining := make([]T, len(items))
	copy(remaining, items)
	out := make([]T, 0, k)
	for i := 0; i < k; i++ {
		idx := (int(seed) + i*6311) % len(remaining)
		out = append(out, remaining[idx])
		remaining = append(remaining[:idx], remaining[idx+1:]...)
	}
	return out
}
