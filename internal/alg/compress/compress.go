package compress

import (
	"github.com/polkadot21/sha256/internal/consts"
)

// Schedule expands a block into the 64 word message schedule.
func Schedule(block *[16]uint32, w *[consts.Rounds]uint32) {
	copy(w[:16], block[:])
	for t := 16; t < consts.Rounds; t++ {
		w[t] = SmallSigma1(w[t-2]) + w[t-7] + SmallSigma0(w[t-15]) + w[t-16]
	}
}

// round performs one step of the compression function. Instead of shifting
// all eight working variables it returns the two that change: the caller
// renames the rest.
func round(a, b, c, d, e, f, g, h, kw uint32) (uint32, uint32) {
	t1 := h + BigSigma1(e) + Ch(e, f, g) + kw
	t2 := BigSigma0(a) + Maj(a, b, c)
	return d + t1, t1 + t2
}

// Compress mixes one block into state. All arithmetic wraps mod 2^32.
func Compress(state *[8]uint32, block *[16]uint32) {
	var w [consts.Rounds]uint32
	Schedule(block, &w)

	a, b, c, d := state[0], state[1], state[2], state[3]
	e, f, g, h := state[4], state[5], state[6], state[7]

	k := &consts.K
	for t := 0; t < consts.Rounds; t += 8 {
		d, h = round(a, b, c, d, e, f, g, h, k[t+0]+w[t+0])
		c, g = round(h, a, b, c, d, e, f, g, k[t+1]+w[t+1])
		b, f = round(g, h, a, b, c, d, e, f, k[t+2]+w[t+2])
		a, e = round(f, g, h, a, b, c, d, e, k[t+3]+w[t+3])
		h, d = round(e, f, g, h, a, b, c, d, k[t+4]+w[t+4])
		g, c = round(d, e, f, g, h, a, b, c, k[t+5]+w[t+5])
		f, b = round(c, d, e, f, g, h, a, b, k[t+6]+w[t+6])
		e, a = round(b, c, d, e, f, g, h, a, k[t+7]+w[t+7])
	}

	state[0] += a
	state[1] += b
	state[2] += c
	state[3] += d
	state[4] += e
	state[5] += f
	state[6] += g
	state[7] += h
}
