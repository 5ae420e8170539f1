package dttensor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectRange(t *testing.T) {
	unsigned := make([]float32, 1000)
	for i := range unsigned {
		unsigned[i] = float32(i) / 1000
	}

	signed := make([]float32, 1000)
	for i := range signed {
		signed[i] = float32(i)/500 - 1
	}

	barelyNegative := make([]float32, 1000)
	for i := range barelyNegative {
		barelyNegative[i] = -0.005 // above the -0.01 cutoff
	}

	fewNegative := make([]float32, 1000)
	for i := range fewNegative {
		if i < 50 { // 5%, under the 10% threshold
			fewNegative[i] = -0.5
		} else {
			fewNegative[i] = 0.5
		}
	}

	tests := []struct {
		name    string
		samples []float32
		want    Range
	}{
		{"Empty", nil, RangeUnsigned},
		{"AllZero", make([]float32, 100), RangeUnsigned},
		{"Unsigned", unsigned, RangeUnsigned},
		{"Signed", signed, RangeSigned},
		{"BarelyNegative", barelyNegative, RangeUnsigned},
		{"FewNegative", fewNegative, RangeUnsigned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectRange(tt.samples))
		})
	}
}

func TestNegativeFraction(t *testing.T) {
	samples := []float32{-1, -1, 1, 1}
	assert.InDelta(t, 0.5, NegativeFraction(samples), 1e-9)

	// non-finite samples are excluded from the statistic
	withNaN := []float32{-1, float32(math.NaN()), 1, float32(math.Inf(1))}
	assert.InDelta(t, 0.5, NegativeFraction(withNaN), 1e-9)

	assert.Zero(t, NegativeFraction(nil))
}

func TestDetectLayout(t *testing.T) {
	const w, h = 20, 20
	plane := w * h

	// planar: three smooth ramps back to back, so stride-1 neighbors
	// are close and stride-3 neighbors are not
	planar := make([]float32, plane*3)
	for c := 0; c < 3; c++ {
		for p := 0; p < plane; p++ {
			planar[c*plane+p] = float32(p)/float32(plane) + float32(c)
		}
	}
	assert.Equal(t, LayoutNCHW, DetectLayout(planar))

	// interleaved: channels carry distinct offsets per pixel, so
	// stride-3 neighbors are close and stride-1 neighbors jump
	offsets := [3]float32{0, 0.7, -0.7}
	interleaved := make([]float32, plane*3)
	for p := 0; p < plane; p++ {
		for c := 0; c < 3; c++ {
			interleaved[p*3+c] = float32(p)/float32(plane)/10 + offsets[c]
		}
	}
	assert.Equal(t, LayoutNHWC, DetectLayout(interleaved))

	// degenerate inputs default to the wire's standard layout
	assert.Equal(t, LayoutNHWC, DetectLayout(nil))
	assert.Equal(t, LayoutNHWC, DetectLayout([]float32{1, 2}))
	assert.Equal(t, LayoutNHWC, DetectLayout(make([]float32, 12)))
}

func TestHeaderFormatFlagWins(t *testing.T) {
	// payload statistics scream planar, but the header says interleaved;
	// the flag is authoritative
	const w, h = 10, 10
	plane := w * h
	planarLooking := make([]float32, plane*3)
	for c := 0; c < 3; c++ {
		for p := 0; p < plane; p++ {
			planarLooking[c*plane+p] = float32(p)*0.001 - 0.5 + float32(c)*0.3
		}
	}
	assert.Equal(t, LayoutNCHW, DetectLayout(planarLooking))

	asNHWC, _, _, err := DecodeRGB(tensorBuf(w, h, 3, FormatNHWC, planarLooking), 0)
	assert.NoError(t, err)
	asNCHW, _, _, err := DecodeRGB(tensorBuf(w, h, 3, FormatNCHW, planarLooking), 0)
	assert.NoError(t, err)
	assert.NotEqual(t, asNHWC, asNCHW, "format flag must drive layout, not the detector")
}
