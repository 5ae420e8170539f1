package dttensor

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"

	xdraw "golang.org/x/image/draw"
)

// The codec itself only touches raw sample buffers; these helpers are
// the platform-image boundary: bytes in, image out, and back.

// DecodeRaster decodes PNG/JPEG/GIF bytes into an image.
func DecodeRaster(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty data", ErrInvalidImage)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	return img, nil
}

// RGBASamples rasterizes img into a premultiplied RGBA byte buffer
// (R,G,B,A per pixel, row-major) and returns it with the dimensions.
func RGBASamples(img image.Image) ([]byte, int, int) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) && rgba.Stride == 4*w {
		return rgba.Pix, w, h
	}
	tmp := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(tmp, tmp.Bounds(), img, b.Min, draw.Src)
	return tmp.Pix, w, h
}

// rgbImage expands packed RGB bytes into an opaque RGBA image.
func rgbImage(rgb []byte, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for p := 0; p < w*h; p++ {
		img.Pix[p*4+0] = rgb[p*3+0]
		img.Pix[p*4+1] = rgb[p*3+1]
		img.Pix[p*4+2] = rgb[p*3+2]
		img.Pix[p*4+3] = 0xFF
	}
	return img
}

// EncodePNG renders img to PNG bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("%w: png encode: %v", ErrConversionFailed, err)
	}
	return buf.Bytes(), nil
}

// Resize scales img to width x height with Catmull-Rom resampling.
// Non-positive dimensions return img unchanged.
func Resize(img image.Image, width, height int) image.Image {
	if width <= 0 || height <= 0 {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst
}
