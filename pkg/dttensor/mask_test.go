package dttensor

import (
	"encoding/binary"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeMask(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.SetNRGBA(0, 0, color.NRGBA{A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{A: 254})
	img.SetNRGBA(2, 0, color.NRGBA{A: 0})
	img.SetNRGBA(0, 1, color.NRGBA{A: 255})
	img.SetNRGBA(1, 1, color.NRGBA{A: 128})
	img.SetNRGBA(2, 1, color.NRGBA{A: 255})

	buf, err := EncodeMask(img)
	require.NoError(t, err)
	require.Len(t, buf, HeaderSize+3*2)

	word := func(i int) uint32 { return binary.LittleEndian.Uint32(buf[i*4:]) }
	assert.Equal(t, uint32(0), word(0))
	assert.Equal(t, uint32(1), word(1))
	assert.Equal(t, uint32(1), word(2))
	assert.Equal(t, uint32(4096), word(3))
	assert.Equal(t, uint32(0), word(4))
	assert.Equal(t, uint32(2), word(5), "height")
	assert.Equal(t, uint32(3), word(6), "width")
	assert.Equal(t, uint32(0), word(7))
	assert.Equal(t, uint32(0), word(8))

	want := []byte{
		MaskPreserve, MaskInpaint, MaskInpaint,
		MaskPreserve, MaskInpaint, MaskPreserve,
	}
	assert.Equal(t, want, buf[HeaderSize:])
}

func TestEncodeMaskOpaque(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 9, G: 9, B: 9, A: 255})
		}
	}

	buf, err := EncodeMask(img)
	require.NoError(t, err)
	for i, b := range buf[HeaderSize:] {
		assert.Equal(t, byte(MaskPreserve), b, "pixel %d", i)
	}
}

func TestEncodeMaskNil(t *testing.T) {
	_, err := EncodeMask(nil)
	require.ErrorIs(t, err, ErrInvalidImage)
}
