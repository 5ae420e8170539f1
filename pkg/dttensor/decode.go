package dttensor

import (
	"encoding/binary"
	"fmt"
	"image"
	"math"

	"github.com/skeptict/dttensor.go/pkg/dttensor/family"
	"github.com/skeptict/dttensor.go/pkg/dttensor/half"
)

// Decode converts a DTTensor buffer into a displayable opaque RGBA
// image. The model family disambiguates 16-channel latents only;
// family.Unknown previews with the Flux projection.
func Decode(data []byte, model family.Model) (image.Image, error) {
	rgb, w, h, err := DecodeRGB(data, model)
	if err != nil {
		return nil, err
	}
	return rgbImage(rgb, w, h), nil
}

// DecodeRGB converts a DTTensor buffer into row-major RGB bytes
// (3 per pixel) plus the tensor's pixel dimensions.
func DecodeRGB(data []byte, model family.Model) ([]byte, int, int, error) {
	hdr, err := ParseHeader(data)
	if err != nil {
		return nil, 0, 0, err
	}
	if hdr.Compression != CompressionNone {
		if hdr.Compression == CompressionFPZIP {
			return nil, 0, 0, fmt.Errorf("%w: fpzip payload", ErrCompressionNotSupported)
		}
		return nil, 0, 0, fmt.Errorf("%w: compression scheme %d", ErrCompressionNotSupported, hdr.Compression)
	}

	c := int(hdr.Channels)
	switch c {
	case 3, 4, 16, 48:
	default:
		return nil, 0, 0, fmt.Errorf("%w: unsupported channel count %d", ErrConversionFailed, c)
	}

	w, h := int(hdr.Width), int(hdr.Height)
	if w <= 0 || h <= 0 {
		return nil, 0, 0, fmt.Errorf("%w: %dx%d tensor", ErrInvalidData, w, h)
	}
	need := int64(HeaderSize) + hdr.PayloadBytes()
	if int64(len(data)) < need {
		return nil, 0, 0, fmt.Errorf("%w: %dx%dx%d tensor needs %d bytes, have %d",
			ErrInvalidData, w, h, c, need, len(data))
	}

	samples := payloadFloats(data[HeaderSize:], w*h*c)

	var rgb []byte
	if c == 3 {
		rgb = decodePlain(samples, w, h, hdr.Format)
	} else {
		m, ok := family.MatrixFor(c, model)
		if !ok {
			return nil, 0, 0, fmt.Errorf("%w: no projection for %d channels", ErrConversionFailed, c)
		}
		rgb = decodeLatent(samples, w, h, c, hdr.Format, m)
	}
	return rgb, w, h, nil
}

// payloadFloats expands n little-endian half-precision samples.
func payloadFloats(payload []byte, n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = half.ToFloat32(binary.LittleEndian.Uint16(payload[i*2:]))
	}
	return out
}

// decodeLatent projects multi-channel latents to RGB through the
// family matrix. The header's format flag picks planar vs interleaved
// indexing; anything else is treated as interleaved, the wire default.
func decodeLatent(samples []float32, w, h, c int, format uint32, m *family.Matrix) []byte {
	planar := format == FormatNCHW
	plane := w * h
	rgb := make([]byte, plane*3)
	x := make([]float32, c)
	for p := 0; p < plane; p++ {
		for k := 0; k < c; k++ {
			var v float32
			if planar {
				v = samples[k*plane+p]
			} else {
				v = samples[p*c+k]
			}
			if !finite(v) {
				v = 0
			}
			x[k] = v
		}
		r, g, b := m.Project(x)
		rgb[p*3+0] = signedByte(r)
		rgb[p*3+1] = signedByte(g)
		rgb[p*3+2] = signedByte(b)
	}
	return rgb
}

// decodePlain handles already-decoded 3-channel pixels. The header's
// format flag is authoritative for layout; the statistical detector
// only fills in when the flag is absent. Range is always inferred
// because the header has no field for it.
func decodePlain(samples []float32, w, h int, format uint32) []byte {
	var planar bool
	switch format {
	case FormatNCHW:
		planar = true
	case FormatNHWC:
		planar = false
	default:
		planar = DetectLayout(samples) == LayoutNCHW
	}
	signed := DetectRange(samples) == RangeSigned

	plane := w * h
	rgb := make([]byte, plane*3)
	for p := 0; p < plane; p++ {
		for c := 0; c < 3; c++ {
			var v float32
			if planar {
				v = samples[c*plane+p]
			} else {
				v = samples[p*3+c]
			}
			if signed {
				if !finite(v) {
					v = 0
				}
				rgb[p*3+c] = signedByte(v)
			} else {
				if !finite(v) {
					// non-finite samples render mid-gray here
					rgb[p*3+c] = 127
					continue
				}
				rgb[p*3+c] = clampByte(math.Round(float64(v) * 255))
			}
		}
	}
	return rgb
}

// signedByte maps a [-1,1] value onto [0,255].
func signedByte(v float32) byte {
	if !finite(v) {
		return 0
	}
	return clampByte(math.Round(float64(v)*127.5 + 127.5))
}

func clampByte(v float64) byte {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}

func finite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
