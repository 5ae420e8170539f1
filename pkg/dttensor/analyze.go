package dttensor

import (
	"fmt"
	"math"

	"github.com/skeptict/dttensor.go/pkg/util"
)

// TensorInfo summarizes a tensor buffer for diagnostics. The layout
// and range verdicts are the statistical detectors' raw opinions; the
// decoder itself defers to the header's format flag when present.
type TensorInfo struct {
	Header  TensorHeader
	Samples int

	Min, Max, Mean   float64
	NonFinite        int
	NegativeFraction float64

	LayoutGuess Layout
	RangeGuess  Range

	// Fingerprint is a stable UUID over the raw payload bytes;
	// Digest is the same hash in plain hex.
	Fingerprint string
	Digest      string
}

// AnalyzeBuffer parses a tensor buffer and reports header fields,
// payload statistics and heuristic diagnostics. A compressed tensor
// yields a header-only report, since its payload is opaque here.
func AnalyzeBuffer(data []byte) (*TensorInfo, error) {
	hdr, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}
	info := &TensorInfo{Header: hdr}
	if hdr.Compression != CompressionNone {
		return info, nil
	}

	n64 := int64(hdr.Width) * int64(hdr.Height) * int64(hdr.Channels)
	if int64(len(data)) < int64(HeaderSize)+n64*2 {
		return nil, fmt.Errorf("%w: %dx%dx%d payload truncated",
			ErrInvalidData, hdr.Width, hdr.Height, hdr.Channels)
	}
	n := int(n64)
	payload := data[HeaderSize : HeaderSize+n*2]
	samples := payloadFloats(payload, n)

	info.Samples = n
	info.Fingerprint = util.FingerprintUUID(payload)
	info.Digest = util.Md5ThenHex(payload)
	info.NegativeFraction = NegativeFraction(samples)
	info.RangeGuess = DetectRange(samples)
	if hdr.Channels == 3 {
		info.LayoutGuess = DetectLayout(samples)
	}

	min, max := math.Inf(1), math.Inf(-1)
	var sum float64
	var finiteCount int
	for _, s := range samples {
		v := float64(s)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			info.NonFinite++
			continue
		}
		finiteCount++
		sum += v
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if finiteCount > 0 {
		info.Min, info.Max = min, max
		info.Mean = sum / float64(finiteCount)
	}
	return info, nil
}
