package dttensor

import "errors"

// Sentinel errors for codec operations. Every failure returned by this
// package wraps one of these; the codec itself never logs or retries.
var (
	// ErrInvalidImage means the source raster could not be decoded or
	// rasterized into RGBA samples.
	ErrInvalidImage = errors.New("dttensor: invalid source image")

	// ErrInvalidData means a buffer is shorter than its header or
	// declared payload requires, or the header itself is malformed.
	ErrInvalidData = errors.New("dttensor: invalid tensor data")

	// ErrConversionFailed means the tensor declares a channel count this
	// codec has no reconstruction for, or output assembly failed.
	ErrConversionFailed = errors.New("dttensor: conversion failed")

	// ErrCompressionNotSupported means the header declares a compressed
	// payload. Callers recover by requesting uncompressed tensors.
	ErrCompressionNotSupported = errors.New("dttensor: compressed tensors not supported")
)
