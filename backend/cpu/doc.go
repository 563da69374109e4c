// Copyright 2025 Soma ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for tensor operations.
//
// # Overview
//
// This package implements a CPU backend with:
//   - Pure Go implementation (no CGO)
//   - Float32 and Float64 support
//   - NumPy-compatible broadcasting
//   - In-place accumulation for gradient buffers
//
// # Basic Usage
//
//	import (
//	    "github.com/soma-ml/soma/backend/cpu"
//	    "github.com/soma-ml/soma/snn"
//	    "github.com/soma-ml/soma/tensor"
//	)
//
//	func main() {
//	    // Create CPU backend
//	    backend := cpu.New()
//
//	    // Use with tensors
//	    x := tensor.Zeros[float32](tensor.Shape{16, 8}, backend)
//
//	    // Use with spiking layers
//	    layer := snn.NewLIF(snn.LIFConfig{TauM: 2.0}, backend)
//	    spikes, err := layer.Forward(x)
//	}
//
// For GPU acceleration, see the webgpu package.
//
// # Thread Safety
//
// The CPU backend is safe for concurrent use. Each tensor operation
// is isolated and does not share mutable state.
package cpu
