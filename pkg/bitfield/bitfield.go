// Package bitfield reads and writes MSB-0 numbered bit ranges in byte buffers.
//
// Bit index i addresses bit 7-(i%8) of byte i/8, so index 0 is the most
// significant bit of the first byte. A range [lsb, msb] is read big-endian:
// the bit at lsb ends up as the most significant bit of the result.
package bitfield

import "fmt"

const (
	// MaxWidth is the widest range ReadBits and WriteBits accept.
	MaxWidth = 64

	byteBits = 8
)

// ReadBits returns bits lsb..=msb of buf as an unsigned integer.
// It panics if the range is empty, wider than MaxWidth or outside buf.
func ReadBits(buf []byte, msb, lsb int) uint64 {
	width := checkRange(buf, msb, lsb)
	if width > MaxWidth {
		panic(fmt.Sprintf("bitfield: range [%d, %d] is %d bits wide, max %d", lsb, msb, width, MaxWidth))
	}

	var v uint64
	if lsb%byteBits == 0 && width%byteBits == 0 {
		for i := lsb / byteBits; i <= msb/byteBits; i++ {
			v = v<<byteBits | uint64(buf[i])
		}
		return v
	}
	for i := lsb; i <= msb; i++ {
		v = v<<1 | uint64(buf[i/byteBits]>>shift(i)&1)
	}
	return v
}

// WriteBits stores the low msb-lsb+1 bits of v into bits lsb..=msb of buf.
// Higher bits of v are dropped and bits outside the range are preserved.
func WriteBits(buf []byte, msb, lsb int, v uint64) {
	width := checkRange(buf, msb, lsb)
	if width > MaxWidth {
		panic(fmt.Sprintf("bitfield: range [%d, %d] is %d bits wide, max %d", lsb, msb, width, MaxWidth))
	}

	if lsb%byteBits == 0 && width%byteBits == 0 {
		for i := msb / byteBits; i >= lsb/byteBits; i-- {
			buf[i] = byte(v)
			v >>= byteBits
		}
		return
	}
	for i := msb; i >= lsb; i-- {
		mask := byte(1) << shift(i)
		buf[i/byteBits] = buf[i/byteBits]&^mask | byte(v&1)<<shift(i)
		v >>= 1
	}
}

// ReadBytes returns the byte run covering bits lsb..=msb. The width must be
// a multiple of 8 but lsb need not be byte aligned; byte k of the result is
// ReadBits(buf, lsb+8k+7, lsb+8k).
func ReadBytes(buf []byte, msb, lsb int) []byte {
	width := checkRange(buf, msb, lsb)
	if width%byteBits != 0 {
		panic(fmt.Sprintf("bitfield: range [%d, %d] is %d bits wide, not a byte run", lsb, msb, width))
	}

	out := make([]byte, 0, width/byteBits)
	for i := lsb; i <= msb; i += byteBits {
		out = append(out, byte(ReadBits(buf, i+byteBits-1, i)))
	}
	return out
}

// WriteBytes stores v into bits lsb..=msb, one byte per 8-bit sub-range.
// len(v)*8 must equal the range width.
func WriteBytes(buf []byte, msb, lsb int, v []byte) {
	width := checkRange(buf, msb, lsb)
	if len(v)*byteBits != width {
		panic(fmt.Sprintf("bitfield: %d bytes do not fill range [%d, %d] of %d bits", len(v), lsb, msb, width))
	}

	for k, b := range v {
		i := lsb + k*byteBits
		WriteBits(buf, i+byteBits-1, i, uint64(b))
	}
}

// Width returns the number of bits in [lsb, msb].
func Width(msb, lsb int) int {
	return msb - lsb + 1
}

func checkRange(buf []byte, msb, lsb int) int {
	if lsb < 0 || lsb > msb {
		panic(fmt.Sprintf("bitfield: invalid range [%d, %d]", lsb, msb))
	}
	if msb >= len(buf)*byteBits {
		panic(fmt.Sprintf("bitfield: bit %d out of range for %d byte buffer", msb, len(buf)))
	}
	return Width(msb, lsb)
}

func shift(i int) uint {
	return uint(byteBits - 1 - i%byteBits)
}
