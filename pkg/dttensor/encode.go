package dttensor

import (
	"encoding/binary"
	"fmt"
	"image"

	"github.com/skeptict/dttensor.go/pkg/dttensor/half"
)

// Encode rasterizes img to premultiplied RGBA samples and packs them
// into a DTTensor buffer. Any transparency selects a 4-channel tensor
// unless forceRGB drops the alpha channel.
func Encode(img image.Image, forceRGB bool) ([]byte, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: nil image", ErrInvalidImage)
	}
	samples, w, h := RGBASamples(img)
	return EncodeRGBA(samples, w, h, forceRGB)
}

// EncodeRGBA packs a premultiplied RGBA byte buffer (R,G,B,A per
// pixel, row-major) into a DTTensor buffer. Bytes map onto [-1,1] as
// (v/255)*2-1 and are stored as half-precision in interleaved order.
func EncodeRGBA(samples []byte, width, height int, forceRGB bool) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d raster", ErrInvalidImage, width, height)
	}
	if len(samples) < width*height*4 {
		return nil, fmt.Errorf("%w: %dx%d raster needs %d sample bytes, have %d",
			ErrInvalidImage, width, height, width*height*4, len(samples))
	}

	channels := 3
	if !forceRGB && hasTransparency(samples, width*height) {
		channels = 4
	}

	buf := make([]byte, HeaderSize+width*height*channels*2)
	copy(buf, WriteHeader(width, height, channels))
	payload := buf[HeaderSize:]

	i := 0
	for p := 0; p < width*height; p++ {
		for c := 0; c < channels; c++ {
			v := float32(samples[p*4+c])/255*2 - 1
			binary.LittleEndian.PutUint16(payload[i:], half.FromFloat32(v))
			i += 2
		}
	}
	return buf, nil
}

func hasTransparency(samples []byte, pixels int) bool {
	for p := 0; p < pixels; p++ {
		if samples[p*4+3] < 255 {
			return true
		}
	}
	return false
}
