// Package seeded builds reproducible *rand.Rand values from arbitrary seed
// bytes. The stream is the chacha20 keystream under a key derived from the
// seed with BLAKE2b-256, so equal seeds always yield equal sequences.
package seeded

import (
	"encoding/binary"
	"math/rand"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/chacha20"
)

// source is a rand.Source64 reading 8 keystream bytes per draw.
type source struct {
	cipher *chacha20.Cipher
	buf    [8]byte
}

var _ rand.Source64 = (*source)(nil)

// New returns a *rand.Rand whose output is fully determined by seed.
func New(seed []byte) *rand.Rand {
	s := &source{}
	s.rekey(seed)
	return rand.New(s)
}

// NewString is New([]byte(seed)).
func NewString(seed string) *rand.Rand {
	return New([]byte(seed))
}

func (s *source) rekey(seed []byte) {
	key := blake2b.Sum256(seed)
	var nonce [chacha20.NonceSize]byte
	c, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		// key and nonce sizes are fixed above
		panic(err)
	}
	s.cipher = c
}

func (s *source) Uint64() uint64 {
	s.buf = [8]byte{}
	s.cipher.XORKeyStream(s.buf[:], s.buf[:])
	return binary.LittleEndian.Uint64(s.buf[:])
}

func (s *source) Int63() int64 {
	return int64(s.Uint64() >> 1)
}

// Seed rekeys the source from the little-endian bytes of seed.
func (s *source) Seed(seed int64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(seed))
	s.rekey(b[:])
}
