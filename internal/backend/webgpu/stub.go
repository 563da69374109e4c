//go:build !windows

// Package webgpu implements the WebGPU backend for GPU-accelerated neuron
// simulation. The wgpu_native bindings currently ship for windows only; on
// other platforms New reports the backend as unavailable.
package webgpu

import "errors"

// Backend is the WebGPU compute backend. Unavailable on this platform.
type Backend struct{}

// New reports that WebGPU is not supported on this platform.
func New() (*Backend, error) {
	return nil, errors.New("webgpu: not supported on this platform")
}

// IsAvailable checks if WebGPU is available on this system.
func IsAvailable() bool {
	return false
}

// Release is a no-op on platforms without the native library.
func (b *Backend) Release() {}
