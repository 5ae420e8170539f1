package dttensor

import (
	"encoding/binary"
	"fmt"
)

// The wire header is 17 little-endian 32-bit words (68 bytes); only the
// first nine carry meaning. The payload starts immediately after.
const (
	headerWords = 17

	// HeaderSize is the fixed byte length of a tensor header.
	HeaderSize = headerWords * 4
)

// Header word values.
const (
	// CompressionNone marks an uncompressed payload.
	CompressionNone = 0
	// CompressionFPZIP is the sentinel for fpzip-compressed payloads,
	// which this codec cannot decode.
	CompressionFPZIP = 1012247

	// MemoryCPU marks a CPU-resident buffer.
	MemoryCPU = 0x1

	// FormatNCHW is planar layout, FormatNHWC channel-interleaved.
	FormatNCHW = 0x01
	FormatNHWC = 0x02

	// DataTypeFloat16 marks half-precision samples.
	DataTypeFloat16 = 0x20000
)

// TensorHeader is the decoded form of the fixed 68-byte header.
type TensorHeader struct {
	Compression uint32
	MemoryKind  uint32
	Format      uint32
	DataType    uint32
	Batch       uint32
	Height      uint32
	Width       uint32
	Channels    uint32
}

// ParseHeader reads the nine meaningful words from the front of data.
func ParseHeader(data []byte) (TensorHeader, error) {
	if len(data) < HeaderSize {
		return TensorHeader{}, fmt.Errorf("%w: header needs %d bytes, have %d", ErrInvalidData, HeaderSize, len(data))
	}
	word := func(i int) uint32 { return binary.LittleEndian.Uint32(data[i*4:]) }
	return TensorHeader{
		Compression: word(0),
		MemoryKind:  word(1),
		Format:      word(2),
		DataType:    word(3),
		Batch:       word(5),
		Height:      word(6),
		Width:       word(7),
		Channels:    word(8),
	}, nil
}

// WriteHeader builds a 68-byte header for an uncompressed, CPU-memory,
// interleaved half-precision tensor with batch 1.
func WriteHeader(width, height, channels int) []byte {
	buf := make([]byte, HeaderSize)
	put := func(i int, v uint32) { binary.LittleEndian.PutUint32(buf[i*4:], v) }
	put(0, CompressionNone)
	put(1, MemoryCPU)
	put(2, FormatNHWC)
	put(3, DataTypeFloat16)
	put(5, 1)
	put(6, uint32(height))
	put(7, uint32(width))
	put(8, uint32(channels))
	return buf
}

// PayloadBytes returns the byte length the header's dimensions demand
// of the half-precision payload.
func (h TensorHeader) PayloadBytes() int64 {
	return int64(h.Width) * int64(h.Height) * int64(h.Channels) * 2
}
