package utils

// Uint32 decodes a big-endian word from the first 4 bytes of b.
func Uint32(b []byte) uint32 {
	_ = b[3]
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

// PutUint32 encodes v big-endian into the first 4 bytes of b.
func PutUint32(b []byte, v uint32) {
	_ = b[3]
	b[0] = byte(v >> 24)
	b[1] = byte(v >> 16)
	b[2] = byte(v >> 8)
	b[3] = byte(v)
}

// Uint64 decodes a big-endian 64 bit value from the first 8 bytes of b.
func Uint64(b []byte) uint64 {
	_ = b[7]
	return uint64(Uint32(b[0:4]))<<32 | uint64(Uint32(b[4:8]))
}

// PutUint64 encodes v big-endian into the first 8 bytes of b.
func PutUint64(b []byte, v uint64) {
	_ = b[7]
	PutUint32(b[0:4], uint32(v>>32))
	PutUint32(b[4:8], uint32(v))
}

func BytesToWords(bytes *[64]uint8, words *[16]uint32) {
	words[0] = Uint32(bytes[0*4:])
	words[1] = Uint32(bytes[1*4:])
	words[2] = Uint32(bytes[2*4:])
	words[3] = Uint32(bytes[3*4:])
	words[4] = Uint32(bytes[4*4:])
	words[5] = Uint32(bytes[5*4:])
	words[6] = Uint32(bytes[6*4:])
	words[7] = Uint32(bytes[7*4:])
	words[8] = Uint32(bytes[8*4:])
	words[9] = Uint32(bytes[9*4:])
	words[10] = Uint32(bytes[10*4:])
	words[11] = Uint32(bytes[11*4:])
	words[12] = Uint32(bytes[12*4:])
	words[13] = Uint32(bytes[13*4:])
	words[14] = Uint32(bytes[14*4:])
	words[15] = Uint32(bytes[15*4:])
}

// WordsToBytes serializes the state words most significant byte first.
func WordsToBytes(words *[8]uint32, bytes *[32]uint8) {
	PutUint32(bytes[0*4:], words[0])
	PutUint32(bytes[1*4:], words[1])
	PutUint32(bytes[2*4:], words[2])
	PutUint32(bytes[3*4:], words[3])
	PutUint32(bytes[4*4:], words[4])
	PutUint32(bytes[5*4:], words[5])
	PutUint32(bytes[6*4:], words[6])
	PutUint32(bytes[7*4:], words[7])
}
