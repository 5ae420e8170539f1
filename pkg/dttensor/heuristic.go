package dttensor

import "math"

// Layout is a memory-layout verdict for a 3-channel payload.
type Layout int

const (
	// LayoutNHWC is channel-interleaved (RGB per pixel).
	LayoutNHWC Layout = iota
	// LayoutNCHW is planar (all R, then all G, then all B).
	LayoutNCHW
)

func (l Layout) String() string {
	if l == LayoutNCHW {
		return "NCHW"
	}
	return "NHWC"
}

// Range is a value-range verdict for a 3-channel payload.
type Range int

const (
	// RangeUnsigned maps samples as v*255.
	RangeUnsigned Range = iota
	// RangeSigned maps samples as (v+1)*127.5.
	RangeSigned
)

func (r Range) String() string {
	if r == RangeSigned {
		return "[-1,1]"
	}
	return "[0,1]"
}

// Plain 3-channel tensors do not always carry a trustworthy layout
// flag, and nothing in the header records the value range. These
// detectors are documented best-effort statistics; the header's
// explicit format flag always outranks DetectLayout when present.
const (
	rangeSampleLimit  = 2000
	rangeNegCutoff    = -0.01
	rangeNegFraction  = 0.10
	layoutProbeLimit  = 200
	layoutProbeStride = 3
)

// DetectRange samples up to 2000 evenly strided values and reports
// RangeSigned when more than 10% fall meaningfully below zero.
func DetectRange(samples []float32) Range {
	if NegativeFraction(samples) > rangeNegFraction {
		return RangeSigned
	}
	return RangeUnsigned
}

// NegativeFraction is the fraction of strided samples below -0.01.
// Exposed separately so tooling can report the raw statistic.
func NegativeFraction(samples []float32) float64 {
	if len(samples) == 0 {
		return 0
	}
	stride := len(samples) / rangeSampleLimit
	if stride < 1 {
		stride = 1
	}
	var neg, total int
	for i := 0; i < len(samples); i += stride {
		v := float64(samples[i])
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		total++
		if v < rangeNegCutoff {
			neg++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(neg) / float64(total)
}

// DetectLayout compares total variation under the planar hypothesis
// (same-channel neighbors sit at stride 1) against the interleaved
// hypothesis (stride 3) over the first ~200 positions. The smoother
// hypothesis wins. Ties go to NHWC, the format's default layout.
func DetectLayout(samples []float32) Layout {
	n := layoutProbeLimit
	if n > len(samples)-layoutProbeStride {
		n = len(samples) - layoutProbeStride
	}
	if n <= 0 {
		return LayoutNHWC
	}
	var planar, interleaved float64
	for i := 0; i < n; i++ {
		planar += absDiff(samples[i], samples[i+1])
		interleaved += absDiff(samples[i], samples[i+layoutProbeStride])
	}
	if planar < interleaved {
		return LayoutNCHW
	}
	return LayoutNHWC
}

func absDiff(a, b float32) float64 {
	d := float64(a) - float64(b)
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return 0
	}
	return math.Abs(d)
}
