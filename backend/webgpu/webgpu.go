// Copyright 2025 Soma ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package webgpu provides the WebGPU backend for GPU-accelerated tensor
// operations.
//
// The wgpu_native bindings currently ship for windows; on other platforms
// New returns an error and IsAvailable reports false, so callers can fall
// back to the CPU backend.
//
// Example:
//
//	import (
//	    "github.com/soma-ml/soma/backend/cpu"
//	    "github.com/soma-ml/soma/backend/webgpu"
//	)
//
//	func main() {
//	    gpu, err := webgpu.New()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    defer gpu.Release()
//	}
package webgpu

import (
	internalwebgpu "github.com/soma-ml/soma/internal/backend/webgpu"
)

// Backend represents the WebGPU backend implementation for GPU-accelerated
// tensor operations.
type Backend = internalwebgpu.Backend

// New creates a new WebGPU backend.
//
// This function initializes the WebGPU device and returns a backend
// ready for tensor operations. Call Release() when done to free GPU resources.
//
// Returns an error if WebGPU initialization fails (e.g., no compatible GPU).
func New() (*Backend, error) {
	return internalwebgpu.New()
}

// IsAvailable checks if WebGPU is available on the current system.
//
// This function attempts to initialize a WebGPU adapter to verify
// that a compatible GPU and drivers are present. It's useful for
// graceful fallback to the CPU backend when no GPU is available.
//
// Example:
//
//	if webgpu.IsAvailable() {
//	    backend, _ = webgpu.New()
//	} else {
//	    backend = cpu.New()
//	}
func IsAvailable() bool {
	return internalwebgpu.IsAvailable()
}
