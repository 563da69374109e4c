// Copyright 2025 Soma ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/soma-ml/soma/internal/tensor"

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for tensor operations.
//
// Implementations:
//   - backend/cpu: Pure Go vectorized kernels with broadcasting
//   - backend/webgpu: GPU compute via WGSL shaders (float32 only)
//
// The neuron kernels are written against this interface, so the same
// forward/backward simulation code runs on any backend.
//
// Example:
//
//	import (
//	    "github.com/soma-ml/soma/backend/cpu"
//	    "github.com/soma-ml/soma/tensor"
//	)
//
//	backend := cpu.New()
//	x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	y := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
//	z := x.Add(y)  // Uses backend.Add under the hood
type Backend interface {
	// Element-wise binary operations (with NumPy-style broadcasting).
	Add(a, b *RawTensor) *RawTensor // Element-wise addition.
	Sub(a, b *RawTensor) *RawTensor // Element-wise subtraction.
	Mul(a, b *RawTensor) *RawTensor // Element-wise multiplication.
	Div(a, b *RawTensor) *RawTensor // Element-wise division.

	// Scalar operations (element-wise with a scalar constant).
	AddScalar(x *RawTensor, scalar any) *RawTensor // Add scalar.
	SubScalar(x *RawTensor, scalar any) *RawTensor // Subtract scalar.
	MulScalar(x *RawTensor, scalar any) *RawTensor // Multiply by scalar.
	DivScalar(x *RawTensor, scalar any) *RawTensor // Divide by scalar.

	// In-place accumulation: dst += src, with src broadcast into dst.
	AddAssign(dst, src *RawTensor)

	// Comparison operations (element-wise, return Bool tensors).
	GreaterEqual(a, b *RawTensor) *RawTensor // a >= b.
	LowerEqual(a, b *RawTensor) *RawTensor   // a <= b.

	// Scalar comparisons (element-wise against a scalar constant).
	GreaterEqualScalar(x *RawTensor, scalar any) *RawTensor // x >= s.
	LowerEqualScalar(x *RawTensor, scalar any) *RawTensor   // x <= s.

	// Boolean operations (element-wise on Bool tensors).
	And(a, b *RawTensor) *RawTensor // Logical AND.
	Or(a, b *RawTensor) *RawTensor  // Logical OR.
	Not(x *RawTensor) *RawTensor    // Logical NOT.

	// Math operations (element-wise).
	Exp(x *RawTensor) *RawTensor // Exponential.

	// Type conversion.
	Cast(x *RawTensor, dtype DataType) *RawTensor // Cast to different data type.

	// Reduction operations.
	Sum(x *RawTensor) *RawTensor // Total sum (single-element result).

	// Metadata.
	Name() string   // Backend name (e.g., "CPU", "WebGPU").
	Device() Device // Device type.
}

// Compile-time check that internal Backend implements public Backend.
var _ Backend = tensor.Backend(nil)
