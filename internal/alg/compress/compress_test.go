package compress

import (
	"testing"

	"github.com/zeebo/assert"
	"github.com/zeebo/pcg"

	"github.com/polkadot21/sha256/internal/consts"
)

func rotr(x uint32, n uint) uint32 { return x>>n | x<<(32-n) }

// referenceCompress follows the FIPS 180-4 description step by step,
// shifting all eight working variables every round.
func referenceCompress(state *[8]uint32, block *[16]uint32) {
	var w [64]uint32
	copy(w[:], block[:])
	for t := 16; t < 64; t++ {
		s0 := rotr(w[t-15], 7) ^ rotr(w[t-15], 18) ^ w[t-15]>>3
		s1 := rotr(w[t-2], 17) ^ rotr(w[t-2], 19) ^ w[t-2]>>10
		w[t] = s1 + s0 + w[t-7] + w[t-16]
	}

	v := *state
	for t := 0; t < 64; t++ {
		a, b, c, d, e, f, g, h := v[0], v[1], v[2], v[3], v[4], v[5], v[6], v[7]
		t1 := h + (rotr(e, 6) ^ rotr(e, 11) ^ rotr(e, 25)) + ((e & f) ^ (^e & g)) + consts.K[t] + w[t]
		t2 := (rotr(a, 2) ^ rotr(a, 13) ^ rotr(a, 22)) + ((a & b) ^ (a & c) ^ (b & c))
		v = [8]uint32{t1 + t2, a, b, c, d + t1, e, f, g}
	}

	for i := range state {
		state[i] += v[i]
	}
}

func TestRoundFunctions(t *testing.T) {
	for i := 0; i < 1e4; i++ {
		x, y, z := pcg.Uint32(), pcg.Uint32(), pcg.Uint32()

		assert.Equal(t, Ch(x, y, z), (x&y)^(^x&z))
		assert.Equal(t, Maj(x, y, z), (x&y)^(x&z)^(y&z))
		assert.Equal(t, BigSigma0(x), rotr(x, 2)^rotr(x, 13)^rotr(x, 22))
		assert.Equal(t, BigSigma1(x), rotr(x, 6)^rotr(x, 11)^rotr(x, 25))
		assert.Equal(t, SmallSigma0(x), rotr(x, 7)^rotr(x, 18)^(x>>3))
		assert.Equal(t, SmallSigma1(x), rotr(x, 17)^rotr(x, 19)^(x>>10))
	}
}

func TestSchedule(t *testing.T) {
	var block [16]uint32
	for i := range &block {
		block[i] = pcg.Uint32()
	}

	var w [64]uint32
	Schedule(&block, &w)

	for i := 0; i < 16; i++ {
		assert.Equal(t, w[i], block[i])
	}
	for i := 16; i < 64; i++ {
		assert.Equal(t, w[i], SmallSigma1(w[i-2])+SmallSigma0(w[i-15])+w[i-7]+w[i-16])
	}
}

func TestCompress(t *testing.T) {
	var state [8]uint32
	var block [16]uint32

	for i := 0; i < 1e4; i++ {
		for i := range &state {
			state[i] = pcg.Uint32()
		}
		for i := range &block {
			block[i] = pcg.Uint32()
		}

		s1, s2 := state, state
		Compress(&s1, &block)
		referenceCompress(&s2, &block)

		assert.Equal(t, s1, s2)
	}
}

func TestCompress_Overflow(t *testing.T) {
	var state [8]uint32
	var block [16]uint32
	for i := range &state {
		state[i] = 0xFFFFFFFF
	}
	for i := range &block {
		block[i] = 0xFFFFFFFF
	}

	s1, s2 := state, state
	Compress(&s1, &block)
	referenceCompress(&s2, &block)

	assert.Equal(t, s1, s2)
}

func TestCompress_ABC(t *testing.T) {
	// "abc" padded into a single block
	block := [16]uint32{0x61626380, 15: 24}

	state := consts.IV
	Compress(&state, &block)

	assert.Equal(t, state, [8]uint32{
		0xba7816bf, 0x8f01cfea, 0x414140de, 0x5dae2223,
		0xb00361a3, 0x96177a9c, 0xb410ff61, 0xf20015ad,
	})
}

func TestCompress_DoesNotModifyBlock(t *testing.T) {
	var block [16]uint32
	for i := range &block {
		block[i] = pcg.Uint32()
	}
	orig := block

	state := consts.IV
	Compress(&state, &block)

	assert.Equal(t, block, orig)
}

func BenchmarkCompress(b *testing.B) {
	var block [16]uint32
	state := consts.IV

	b.SetBytes(consts.BlockLen)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		Compress(&state, &block)
	}
}
