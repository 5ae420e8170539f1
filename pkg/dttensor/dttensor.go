// Package dttensor converts between the DTTensor binary tensor format
// and displayable RGB images.
//
// A DTTensor buffer is a fixed 68-byte header followed by
// width*height*channels half-precision samples. Three-channel tensors
// carry already-decoded pixels; 4-, 16- and 48-channel tensors carry
// diffusion latents, which are projected to approximate RGB previews
// with fixed per-model-family matrices.
//
// Basic usage:
//
//	raw, err := dttensor.ReadFile("preview.dttensor")
//	if err != nil {
//		log.Fatal(err)
//	}
//	img, err := dttensor.Decode(raw, family.Detect("flux1-dev-q8p.gguf"))
//
// Every call is synchronous, stateless and CPU-bound; concurrent use
// is safe as long as each call owns its buffers.
package dttensor

import (
	"fmt"
	"image"
	"os"

	"github.com/skeptict/dttensor.go/pkg/dttensor/family"
)

// Extension returns the conventional tensor file extension.
func Extension() string {
	return ".dttensor"
}

// ReadFile reads a tensor buffer from disk and validates its header.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	if _, err := ParseHeader(data); err != nil {
		return nil, err
	}
	return data, nil
}

// DecodeFile reads and decodes a tensor file in one step.
func DecodeFile(path string, model family.Model) (image.Image, error) {
	data, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(data, model)
}

// WriteFile writes a tensor buffer to disk.
func WriteFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing file: %w", err)
	}
	return nil
}
