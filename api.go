// Package sha256 implements the SHA-256 hash algorithm as defined in
// FIPS 180-4.
package sha256

import (
	"github.com/polkadot21/sha256/internal/alg/pad"
	"github.com/polkadot21/sha256/internal/consts"
)

const (
	// Size is the size of a SHA-256 digest in bytes.
	Size = consts.Size

	// BlockSize is the block size of SHA-256 in bytes.
	BlockSize = consts.BlockLen

	// MaxMessageLen is the length in bytes of the longest message that can be
	// hashed.
	MaxMessageLen = consts.MaxMessageLen
)

// ErrInputTooLarge is returned when a message is longer than MaxMessageLen.
// Returned errors wrap it, so compare with errors.Is.
var ErrInputTooLarge = pad.ErrInputTooLarge

// Digest returns the SHA-256 digest of message. The only error is
// ErrInputTooLarge, in which case the returned digest is all zeros.
func Digest(message []byte) ([Size]byte, error) {
	var out [Size]byte
	if err := digest(message, &out); err != nil {
		return [Size]byte{}, err
	}
	return out, nil
}

// Sum256 returns the SHA-256 digest of the data. It panics if the data is
// longer than MaxMessageLen.
func Sum256(data []byte) [Size]byte {
	out, err := Digest(data)
	if err != nil {
		panic(err)
	}
	return out
}

// Hasher is a hash.Hash for SHA-256. The zero value is not usable, use New.
type Hasher struct {
	h hasher
}

// New returns a new Hasher.
func New() *Hasher {
	return &Hasher{
		h: newHasher(),
	}
}

// Write implements part of the hash.Hash interface. It only returns an error
// if the total amount written would exceed MaxMessageLen, in which case none
// of p is absorbed.
func (h *Hasher) Write(p []byte) (int, error) {
	if err := h.h.update(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// WriteString is like Write but accepts a string.
func (h *Hasher) WriteString(p string) (int, error) {
	return h.Write([]byte(p))
}

// Reset implements part of the hash.Hash interface. It causes the Hasher to
// act as if it was newly created.
func (h *Hasher) Reset() {
	h.h.reset()
}

// Clone returns a new Hasher with the same state as h. Writes to either do
// not affect the other.
func (h *Hasher) Clone() *Hasher {
	return &Hasher{h: h.h}
}

// Size implements part of the hash.Hash interface. It returns the number of
// bytes the hash will output.
func (h *Hasher) Size() int {
	return Size
}

// BlockSize implements part of the hash.Hash interface. It returns the most
// natural size to write to the Hasher.
func (h *Hasher) BlockSize() int {
	return BlockSize
}

// Sum implements part of the hash.Hash interface. It appends the digest of
// the Hasher to the provided buffer and returns it. The Hasher is unchanged
// and more data may be written afterwards.
func (h *Hasher) Sum(b []byte) []byte {
	out := h.Digest()
	return append(b, out[:]...)
}

// Digest returns the digest of the data written so far.
func (h *Hasher) Digest() [Size]byte {
	var out [Size]byte
	h.h.finalize(&out)
	return out
}
