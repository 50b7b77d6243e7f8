// Package ids generates prefixed entity identifiers such as "circle_<uuid>".
package ids

import (
	"math/rand/v2"
	"strconv"

	"github.com/google/uuid"
)

// Generator produces an identifier for the given entity prefix.
type Generator func(prefix string) string

// New returns "<prefix>_<random>". The random part is a v4 UUID from the
// system CSPRNG; if that source fails it falls back to 8 base-36 characters
// from a non-cryptographic PRNG. Uniqueness is probabilistic.
func New(prefix string) string {
	if id, err := uuid.NewRandom(); err == nil {
		return prefix + "_" + id.String()
	}
	return prefix + "_" + weakRandom()
}

func weakRandom() string {
	s := strconv.FormatUint(rand.Uint64(), 36)
	for len(s) < 8 {
		s = "0" + s
	}
	return s[:8]
}

// Sequence returns a deterministic Generator yielding "<prefix>_1",
// "<prefix>_2", ... with one counter shared across prefixes. Intended for
// tests and fixtures.
func Sequence() Generator {
	n := 0
	return func(prefix string) string {
		n++
		return prefix + "_" + strconv.Itoa(n)
	}
}
