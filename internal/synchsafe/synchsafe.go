// Package synchsafe implements the 7-bit-per-byte integer encoding used
// by ID3v2 size fields.
//
// A synchsafe integer stores 28 bits of payload in 4 bytes, keeping the
// high bit of every byte clear so a size field can never be mistaken for
// an MPEG frame sync pattern by byte-stream scanners.
package synchsafe

// Max is the largest value representable in a 4-byte synchsafe field.
const Max = 1<<28 - 1

// Encode packs the low 28 bits of n into 4 bytes, 7 bits per byte,
// most significant first. Values above Max are a caller error; the
// excess bits are discarded.
func Encode(n uint32) [4]byte {
	return [4]byte{
		byte(n >> 21 & 0x7F),
		byte(n >> 14 & 0x7F),
		byte(n >> 7 & 0x7F),
		byte(n & 0x7F),
	}
}

// Decode unpacks the first 4 bytes of b. Bit 7 of each byte is ignored
// rather than rejected, mirroring how real-world taggers treat fields
// written by broken encoders. Input shorter than 4 bytes decodes to 0.
func Decode(b []byte) uint32 {
	if len(b) < 4 {
		return 0
	}
	return uint32(b[0]&0x7F)<<21 |
		uint32(b[1]&0x7F)<<14 |
		uint32(b[2]&0x7F)<<7 |
		uint32(b[3]&0x7F)
}
