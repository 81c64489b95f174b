package sha256

import (
	"github.com/pkg/errors"

	"github.com/polkadot21/sha256/internal/alg/pad"
	"github.com/polkadot21/sha256/internal/consts"
	"github.com/polkadot21/sha256/internal/utils"
)

// The marshaled layout is shared with the standard library's crypto/sha256,
// so states can move between the two.
const (
	magic         = "sha\x03"
	marshaledSize = len(magic) + 8*4 + consts.BlockLen + 8
)

// MarshalBinary implements encoding.BinaryMarshaler. It captures the running
// state so hashing can be resumed later with UnmarshalBinary.
func (h *Hasher) MarshalBinary() ([]byte, error) {
	b := make([]byte, marshaledSize)
	copy(b, magic)

	off := len(magic)
	for _, w := range h.h.state {
		utils.PutUint32(b[off:], w)
		off += 4
	}

	copy(b[off:], h.h.buffered())
	off += consts.BlockLen

	utils.PutUint64(b[off:], h.h.len)
	return b, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. It restores a state
// produced by MarshalBinary.
func (h *Hasher) UnmarshalBinary(b []byte) error {
	if len(b) < len(magic) || string(b[:len(magic)]) != magic {
		return errors.New("sha256: invalid hash state identifier")
	}
	if len(b) != marshaledSize {
		return errors.Errorf("sha256: invalid hash state size %d", len(b))
	}

	var a hasher

	off := len(magic)
	for i := range a.state {
		a.state[i] = utils.Uint32(b[off:])
		off += 4
	}

	copy(a.buf[:], b[off:off+consts.BlockLen])
	off += consts.BlockLen

	a.len = utils.Uint64(b[off:])
	if err := pad.Check(a.len); err != nil {
		return errors.Wrap(err, "sha256: invalid hash state length")
	}

	h.h = a
	return nil
}
