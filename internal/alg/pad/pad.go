// Package pad implements the message padding and framing step: the message is
// extended with a single 1 bit, zero bits up to 56 bytes mod 64 and the
// 64-bit big-endian bit length, then cut into 64 byte blocks.
package pad

import (
	"github.com/pkg/errors"

	"github.com/polkadot21/sha256/internal/consts"
	"github.com/polkadot21/sha256/internal/utils"
)

// ErrInputTooLarge is returned for messages whose bit length does not fit in
// 64 bits.
var ErrInputTooLarge = errors.New("input too large")

const marker = 0x80

// Check returns a wrapped ErrInputTooLarge if an n byte message cannot be
// padded.
func Check(n uint64) error {
	if n > consts.MaxMessageLen {
		return errors.Wrapf(ErrInputTooLarge, "message of %d bytes exceeds %d", n, uint64(consts.MaxMessageLen))
	}
	return nil
}

// Len returns the padded length of an n byte message. It is always a
// multiple of the block size and between n+9 and n+72.
func Len(n uint64) (uint64, error) {
	if err := Check(n); err != nil {
		return 0, err
	}
	return (n + 1 + consts.LenFieldLen + consts.BlockLen - 1) / consts.BlockLen * consts.BlockLen, nil
}

// Pad returns a padded copy of msg. The padding comes from Trailer, the same
// code the hashers use.
func Pad(msg []byte) ([]byte, error) {
	n := uint64(len(msg))
	plen, err := Len(n)
	if err != nil {
		return nil, err
	}

	full := len(msg) / consts.BlockLen * consts.BlockLen
	out := make([]byte, full, plen)
	copy(out, msg[:full])

	var trailer [2 * consts.BlockLen]byte
	blocks := Trailer(msg[full:], n, &trailer)
	return append(out, trailer[:blocks*consts.BlockLen]...), nil
}

// Frame pads msg and splits it into blocks. Block 0 must be compressed first.
func Frame(msg []byte) ([][consts.BlockLen]byte, error) {
	padded, err := Pad(msg)
	if err != nil {
		return nil, err
	}

	blocks := make([][consts.BlockLen]byte, len(padded)/consts.BlockLen)
	for i := range blocks {
		copy(blocks[i][:], padded[i*consts.BlockLen:])
	}
	return blocks, nil
}

// Trailer writes the final blocks of a message into out: the tail bytes that
// did not fill a whole block, the marker, zeros and the bit length of a
// message of total bytes. It returns how many blocks of out were used, 1 or
// 2. The tail must be shorter than a block and total must pass Check.
func Trailer(tail []byte, total uint64, out *[2 * consts.BlockLen]byte) int {
	if len(tail) >= consts.BlockLen {
		panic("pad: tail must be shorter than a block")
	}

	n := copy(out[:], tail)
	out[n] = marker
	for i := n + 1; i < len(out); i++ {
		out[i] = 0
	}

	blocks := 1
	if n >= consts.BlockLen-consts.LenFieldLen {
		blocks = 2
	}

	end := blocks * consts.BlockLen
	utils.PutUint64(out[end-consts.LenFieldLen:end], total*8)
	return blocks
}
