package compress

import (
	"math/bits"
)

// Ch chooses bits of y or z depending on x.
func Ch(x, y, z uint32) uint32 { return (x & y) ^ (^x & z) }

// Maj takes the bitwise majority of x, y and z.
func Maj(x, y, z uint32) uint32 { return (x & y) ^ (x & z) ^ (y & z) }

// BigSigma0 is Σ0, applied to a each round.
func BigSigma0(x uint32) uint32 {
	return bits.RotateLeft32(x, -2) ^ bits.RotateLeft32(x, -13) ^ bits.RotateLeft32(x, -22)
}

// BigSigma1 is Σ1, applied to e each round.
func BigSigma1(x uint32) uint32 {
	return bits.RotateLeft32(x, -6) ^ bits.RotateLeft32(x, -11) ^ bits.RotateLeft32(x, -25)
}

// SmallSigma0 is σ0 from the message schedule.
func SmallSigma0(x uint32) uint32 {
	return bits.RotateLeft32(x, -7) ^ bits.RotateLeft32(x, -18) ^ x>>3
}

// SmallSigma1 is σ1 from the message schedule.
func SmallSigma1(x uint32) uint32 {
	return bits.RotateLeft32(x, -17) ^ bits.RotateLeft32(x, -19) ^ x>>10
}
