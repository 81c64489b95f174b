package sha256

import (
	"github.com/polkadot21/sha256/internal/alg/hash"
	"github.com/polkadot21/sha256/internal/alg/pad"
	"github.com/polkadot21/sha256/internal/consts"
	"github.com/polkadot21/sha256/internal/utils"
)

//
// hasher contains state for a sha256 hash
//

type hasher struct {
	len   uint64 // total bytes absorbed; len % BlockLen of them sit in buf
	state [8]uint32
	buf   [consts.BlockLen]byte
}

func newHasher() hasher {
	return hasher{state: consts.IV}
}

func (a *hasher) reset() {
	a.len = 0
	a.state = consts.IV
}

func (a *hasher) buffered() []byte {
	return a.buf[:a.len%consts.BlockLen]
}

// update absorbs buf. If the total length would exceed MaxMessageLen nothing
// is absorbed and an error is returned.
func (a *hasher) update(buf []byte) error {
	if err := pad.Check(a.len + uint64(len(buf))); err != nil {
		return err
	}

	if bufn := a.len % consts.BlockLen; bufn > 0 {
		n := copy(a.buf[bufn:], buf)
		a.len += uint64(n)
		buf = buf[n:]

		if a.len%consts.BlockLen != 0 {
			return nil
		}
		hash.HashBlocks(&a.state, a.buf[:])
	}

	n := hash.HashBlocks(&a.state, buf)
	a.len += uint64(n)

	n = copy(a.buf[:], buf[n:])
	a.len += uint64(n)

	return nil
}

// finalize writes the digest of everything absorbed so far into out without
// changing the hasher.
func (a *hasher) finalize(out *[consts.Size]byte) {
	finish(a.state, a.buffered(), a.len, out)
}

//
// one shot digest of an in memory message
//

func digest(msg []byte, out *[consts.Size]byte) error {
	if err := pad.Check(uint64(len(msg))); err != nil {
		return err
	}

	state := consts.IV
	n := hash.HashBlocks(&state, msg)
	finish(state, msg[n:], uint64(len(msg)), out)
	return nil
}

// finish compresses the padding trailer for a message of total bytes whose
// unprocessed tail is tail, then serializes the state.
func finish(state [8]uint32, tail []byte, total uint64, out *[consts.Size]byte) {
	var trailer [2 * consts.BlockLen]byte
	blocks := pad.Trailer(tail, total, &trailer)
	hash.HashBlocks(&state, trailer[:blocks*consts.BlockLen])
	utils.WordsToBytes(&state, out)
}
