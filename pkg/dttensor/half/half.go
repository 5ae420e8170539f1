// Package half converts between IEEE-754 binary16 bit patterns and
// float32, without relying on any native 16-bit float support.
//
// Decoding is complete: zero, subnormal, normal, infinity and NaN
// encodings all expand to their exact float32 value. Encoding is the
// lossy direction used by the tensor writer: exponent underflow
// collapses to a signed zero instead of producing subnormals, overflow
// saturates to infinity, and NaN payloads are truncated.
package half

import "math"

const (
	signMask = 0x8000
	expMask  = 0x1F
	fracMask = 0x3FF

	// PositiveInfinity and NegativeInfinity are the binary16 infinities.
	PositiveInfinity = 0x7C00
	NegativeInfinity = 0xFC00
)

// ToFloat32 expands a binary16 bit pattern to float32.
func ToFloat32(h uint16) float32 {
	sign := uint32(h>>15) & 0x1
	exp := uint32(h>>10) & expMask
	frac := uint32(h & fracMask)

	var f uint32
	switch exp {
	case 0:
		if frac == 0 {
			// signed zero
			f = sign << 31
		} else {
			// subnormal: renormalize into a float32 normal
			e := uint32(127 - 15 + 1)
			for (frac & 0x400) == 0 {
				frac <<= 1
				e--
			}
			frac &= fracMask
			f = (sign << 31) | (e << 23) | (frac << 13)
		}
	case expMask:
		// infinity or NaN
		f = (sign << 31) | 0x7F800000 | (frac << 13)
	default:
		e := exp + (127 - 15)
		f = (sign << 31) | (e << 23) | (frac << 13)
	}
	return math.Float32frombits(f)
}

// FromFloat32 packs a float32 into a binary16 bit pattern.
//
// Values too small for a normal binary16 become a signed zero; values
// too large become infinity. NaN stays NaN with its mantissa truncated
// to the high ten bits.
func FromFloat32(f float32) uint16 {
	b := math.Float32bits(f)
	sign := uint16(b>>16) & signMask
	exp := int32(b>>23) & 0xFF
	frac := b & 0x7FFFFF

	if exp == 0xFF {
		if frac == 0 {
			return sign | PositiveInfinity
		}
		m := uint16(frac >> 13)
		if m == 0 {
			// truncation alone would turn this NaN into an infinity
			m = 1
		}
		return sign | PositiveInfinity | m
	}

	e := exp - 127 + 15
	if e >= expMask {
		return sign | PositiveInfinity
	}
	if e <= 0 {
		// no subnormal outputs
		return sign
	}
	return sign | uint16(e)<<10 | uint16(frac>>13)
}
