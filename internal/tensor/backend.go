package tensor

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for tensor operations.
//
// Implementations:
//   - CPU: Pure Go vectorized kernels with broadcasting
//   - WebGPU: GPU compute via WGSL shaders (float32 only)
//
// The neuron kernels in internal/soma are written against this interface, so
// the same forward/backward code runs on any backend.
type Backend interface {
	// Element-wise binary operations (with NumPy-style broadcasting)
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor
	Div(a, b *RawTensor) *RawTensor

	// Scalar operations (element-wise with a scalar constant)
	AddScalar(x *RawTensor, scalar any) *RawTensor
	SubScalar(x *RawTensor, scalar any) *RawTensor
	MulScalar(x *RawTensor, scalar any) *RawTensor
	DivScalar(x *RawTensor, scalar any) *RawTensor

	// AddAssign accumulates src into dst in place: dst += src.
	// src may broadcast into dst's shape. This is the primitive behind the
	// accumulate-into-caller-buffer contract of every neuron step function.
	AddAssign(dst, src *RawTensor)

	// Comparison operations (element-wise, return Bool tensors)
	GreaterEqual(a, b *RawTensor) *RawTensor // a >= b
	LowerEqual(a, b *RawTensor) *RawTensor   // a <= b

	// Scalar comparisons (element-wise against a scalar constant)
	GreaterEqualScalar(x *RawTensor, scalar any) *RawTensor // x >= s
	LowerEqualScalar(x *RawTensor, scalar any) *RawTensor   // x <= s

	// Boolean operations (element-wise on Bool tensors)
	And(a, b *RawTensor) *RawTensor
	Or(a, b *RawTensor) *RawTensor
	Not(x *RawTensor) *RawTensor

	// Exp computes element-wise exponential. Smooth surrogate-gradient
	// windows (sigmoid, gaussian) are built from it.
	Exp(x *RawTensor) *RawTensor

	// Type conversion. Bool to float produces 0.0/1.0, which is how spike
	// trains become interpolation weights in the reset step.
	Cast(x *RawTensor, dtype DataType) *RawTensor

	// Sum reduces all elements to a single-element tensor. Used to collapse
	// the batched tau_m gradient buffer into one parameter gradient.
	Sum(x *RawTensor) *RawTensor

	// Metadata
	Name() string
	Device() Device
}
