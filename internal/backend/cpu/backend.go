// Package cpu implements the CPU backend with vectorized elementwise kernels.
package cpu

import (
	"fmt"

	"github.com/soma-ml/soma/internal/tensor"
)

// CPUBackend implements tensor operations on CPU.
type CPUBackend struct {
	device tensor.Device
}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{
		device: tensor.CPU,
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

// Add performs element-wise addition with NumPy-style broadcasting.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binaryOp("add", a, b, addKernel)
}

// Sub performs element-wise subtraction with broadcasting.
func (cpu *CPUBackend) Sub(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binaryOp("sub", a, b, subKernel)
}

// Mul performs element-wise multiplication with broadcasting.
func (cpu *CPUBackend) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binaryOp("mul", a, b, mulKernel)
}

// Div performs element-wise division with broadcasting.
// Division by zero follows IEEE-754 (infinities/NaNs propagate).
func (cpu *CPUBackend) Div(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binaryOp("div", a, b, divKernel)
}

// binaryOp runs one elementwise binary kernel with the shared
// broadcast/inplace bookkeeping.
func (cpu *CPUBackend) binaryOp(name string, a, b *tensor.RawTensor, k kernel) *tensor.RawTensor {
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("%s: dtype mismatch: %s vs %s", name, a.DType(), b.DType()))
	}

	outShape, needsBroadcast, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}

	if !needsBroadcast && a.Shape().Equal(b.Shape()) {
		// Fast path: same shape. Reuse a's buffer when nothing else holds it.
		if a.IsUnique() {
			applyInplace(a, b, k)
			return a
		}
		result := newResult(name, outShape, a)
		applyVectorized(result, a, b, k)
		return result
	}

	result := newResult(name, outShape, a)
	applyBroadcast(result, a, b, outShape, k)
	return result
}

// newResult allocates an output tensor, panicking on allocation failure like
// the rest of the kernel layer.
func newResult(name string, shape tensor.Shape, like *tensor.RawTensor) *tensor.RawTensor {
	result, err := tensor.NewRaw(shape, like.DType(), like.Device())
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", name, err))
	}
	return result
}
