package dttensor

import (
	"encoding/binary"
	"fmt"
	"image"
)

// Mask byte values: 0 keeps a pixel, 2 marks it for inpainting.
const (
	MaskPreserve = 0
	MaskInpaint  = 2

	maskFlagWord = 4096
)

// EncodeMask derives a single-channel paint/preserve mask from the
// image's alpha channel: any pixel with alpha below 255 is marked for
// inpainting. The buffer is a 68-byte mask header followed by one byte
// per pixel.
func EncodeMask(img image.Image) ([]byte, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: nil image", ErrInvalidImage)
	}
	samples, w, h := RGBASamples(img)
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d raster", ErrInvalidImage, w, h)
	}

	buf := make([]byte, HeaderSize+w*h)
	writeMaskHeader(buf, w, h)

	out := buf[HeaderSize:]
	for p := 0; p < w*h; p++ {
		if samples[p*4+3] < 255 {
			out[p] = MaskInpaint
		}
	}
	return buf, nil
}

// writeMaskHeader fills the mask-specific 9-word layout. It shares the
// 68-byte reservation with the tensor header but none of its fields.
func writeMaskHeader(buf []byte, width, height int) {
	put := func(i int, v uint32) { binary.LittleEndian.PutUint32(buf[i*4:], v) }
	put(0, 0)
	put(1, 1)
	put(2, 1)
	put(3, maskFlagWord)
	put(4, 0)
	put(5, uint32(height))
	put(6, uint32(width))
	put(7, 0)
	put(8, 0)
}
