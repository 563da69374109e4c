package cpu

import (
	"fmt"

	"github.com/soma-ml/soma/internal/tensor"
)

// Boolean operations - element-wise on Bool tensors.
// The surrogate gradient window is (u >= lo) AND (u <= hi).

// And performs element-wise logical AND.
func (cpu *CPUBackend) And(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.boolBinaryOp("and", a, b, func(x, y bool) bool { return x && y })
}

// Or performs element-wise logical OR.
func (cpu *CPUBackend) Or(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.boolBinaryOp("or", a, b, func(x, y bool) bool { return x || y })
}

// Not performs element-wise logical NOT.
func (cpu *CPUBackend) Not(x *tensor.RawTensor) *tensor.RawTensor {
	if x.DType() != tensor.Bool {
		panic(fmt.Sprintf("not: expected bool tensor, got %s", x.DType()))
	}

	result, err := tensor.NewRaw(x.Shape(), tensor.Bool, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("not: %v", err))
	}

	src, dst := x.AsBool(), result.AsBool()
	for i := range dst {
		dst[i] = !src[i]
	}
	return result
}

func (cpu *CPUBackend) boolBinaryOp(name string, a, b *tensor.RawTensor, op func(x, y bool) bool) *tensor.RawTensor {
	if a.DType() != tensor.Bool || b.DType() != tensor.Bool {
		panic(fmt.Sprintf("%s: expected bool tensors, got %s and %s", name, a.DType(), b.DType()))
	}
	if !a.Shape().Equal(b.Shape()) {
		panic(fmt.Sprintf("%s: shape mismatch: %v vs %v", name, a.Shape(), b.Shape()))
	}

	result, err := tensor.NewRaw(a.Shape(), tensor.Bool, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}

	aData, bData, dst := a.AsBool(), b.AsBool(), result.AsBool()
	for i := range dst {
		dst[i] = op(aData[i], bData[i])
	}
	return result
}
