package dttensor

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skeptict/dttensor.go/pkg/dttensor/family"
)

func gradientImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(x * 255 / (w - 1)),
				G: uint8(y * 255 / (h - 1)),
				B: uint8((x + y) * 255 / (w + h - 2)),
				A: 255,
			})
		}
	}
	return img
}

func TestEncodeChannelSelection(t *testing.T) {
	opaque := gradientImage(8, 8)

	transparent := gradientImage(8, 8)
	transparent.SetRGBA(3, 3, color.RGBA{R: 10, G: 20, B: 30, A: 128})

	tests := []struct {
		name     string
		img      image.Image
		forceRGB bool
		want     uint32
	}{
		{"Opaque", opaque, false, 3},
		{"OpaqueForced", opaque, true, 3},
		{"Transparent", transparent, false, 4},
		{"TransparentForced", transparent, true, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := Encode(tt.img, tt.forceRGB)
			require.NoError(t, err)

			hdr, err := ParseHeader(buf)
			require.NoError(t, err)
			assert.Equal(t, tt.want, hdr.Channels)
			assert.Equal(t, uint32(8), hdr.Width)
			assert.Equal(t, uint32(8), hdr.Height)
			assert.Len(t, buf, HeaderSize+int(hdr.PayloadBytes()))
		})
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	// colors survive encode+decode within half-precision plus [0,255]
	// quantization error (tolerance 2)
	src := gradientImage(16, 16)

	buf, err := Encode(src, true)
	require.NoError(t, err)

	img, err := Decode(buf, family.Unknown)
	require.NoError(t, err)
	got, ok := img.(*image.RGBA)
	require.True(t, ok)

	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			want := src.RGBAAt(x, y)
			have := got.RGBAAt(x, y)
			assert.InDelta(t, int(want.R), int(have.R), 2, "pixel %d,%d red", x, y)
			assert.InDelta(t, int(want.G), int(have.G), 2, "pixel %d,%d green", x, y)
			assert.InDelta(t, int(want.B), int(have.B), 2, "pixel %d,%d blue", x, y)
			assert.Equal(t, uint8(255), have.A)
		}
	}
}

func TestEncodeInvalidInput(t *testing.T) {
	_, err := Encode(nil, false)
	require.ErrorIs(t, err, ErrInvalidImage)

	_, err = EncodeRGBA(make([]byte, 10), 4, 4, false)
	require.ErrorIs(t, err, ErrInvalidImage)

	_, err = EncodeRGBA(nil, 0, 0, false)
	require.ErrorIs(t, err, ErrInvalidImage)

	_, err = EncodeRGBA(make([]byte, 16), -1, 4, false)
	require.ErrorIs(t, err, ErrInvalidImage)
}

func TestEncodeNRGBAInput(t *testing.T) {
	// non-RGBA source images go through the rasterizer path
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for i := range src.Pix {
		src.Pix[i] = 200
	}
	buf, err := Encode(src, false)
	require.NoError(t, err)

	hdr, err := ParseHeader(buf)
	require.NoError(t, err)
	assert.Equal(t, uint32(4), hdr.Channels) // alpha 200 is transparency
}
