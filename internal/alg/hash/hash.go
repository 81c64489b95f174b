package hash

import (
	"github.com/polkadot21/sha256/internal/alg/compress"
	"github.com/polkadot21/sha256/internal/consts"
	"github.com/polkadot21/sha256/internal/utils"
)

// HashBlocks compresses every whole block of p into state, in order, and
// returns the number of bytes consumed. Trailing bytes that do not fill a
// block are left for the caller.
func HashBlocks(state *[8]uint32, p []byte) int {
	var block [consts.BlockWords]uint32

	n := 0
	for len(p)-n >= consts.BlockLen {
		utils.BytesToWords((*[consts.BlockLen]byte)(p[n:n+consts.BlockLen]), &block)
		compress.Compress(state, &block)
		n += consts.BlockLen
	}
	return n
}
