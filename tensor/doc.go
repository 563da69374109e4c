// Copyright 2025 Soma ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for tensor operations in the Soma
// SNN framework.
//
// The package defines core interfaces and types for type-safe tensor
// operations:
//   - Tensor[T, B]: High-level generic tensor with type safety
//   - RawTensor: Low-level tensor for advanced use cases
//   - Backend: Interface for device-specific compute implementations
//   - Shape, DataType, Device: Core type definitions
//
// # Basic Usage
//
//	import (
//	    "github.com/soma-ml/soma/backend/cpu"
//	    "github.com/soma-ml/soma/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	    y := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
//	    z := x.Add(y)
//	}
//
// # Sequences
//
// Spiking neuron simulation operates on sequence tensors whose leading axis
// is time. Index(t) returns a zero-copy view of time step t that shares the
// underlying buffer:
//
//	x := tensor.Zeros[float32](tensor.Shape{timeSteps, batch}, backend)
//	xt := x.Index(t) // view of step t, shape [batch]
//
// # Data Types
//
// Membrane potentials, spikes and gradients are float32 or float64; Bool is
// the result type of threshold comparisons.
package tensor
