package cpu

import (
	"fmt"

	"github.com/soma-ml/soma/internal/tensor"
)

// scalarToFloat64 normalizes the accepted scalar types to float64.
// Constants like u_rest and u_threshold arrive as plain Go numbers.
func scalarToFloat64(name string, scalar any) float64 {
	switch s := scalar.(type) {
	case float32:
		return float64(s)
	case float64:
		return s
	case int:
		return float64(s)
	default:
		panic(fmt.Sprintf("%s: unsupported scalar type %T", name, scalar))
	}
}

// AddScalar computes x + s element-wise.
func (cpu *CPUBackend) AddScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return cpu.scalarOp("addScalar", x, scalar, addKernel)
}

// SubScalar computes x - s element-wise.
func (cpu *CPUBackend) SubScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return cpu.scalarOp("subScalar", x, scalar, subKernel)
}

// MulScalar computes x * s element-wise.
func (cpu *CPUBackend) MulScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return cpu.scalarOp("mulScalar", x, scalar, mulKernel)
}

// DivScalar computes x / s element-wise.
// A zero divisor follows IEEE-754; callers guarding tau_m do so before here.
func (cpu *CPUBackend) DivScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return cpu.scalarOp("divScalar", x, scalar, divKernel)
}

func (cpu *CPUBackend) scalarOp(name string, x *tensor.RawTensor, scalar any, k kernel) *tensor.RawTensor {
	s := scalarToFloat64(name, scalar)
	result := newResult(name, x.Shape(), x)

	switch x.DType() {
	case tensor.Float32:
		src, dst := x.AsFloat32(), result.AsFloat32()
		for i, v := range src {
			dst[i] = float32(k(float64(v), s))
		}
	case tensor.Float64:
		src, dst := x.AsFloat64(), result.AsFloat64()
		for i, v := range src {
			dst[i] = k(v, s)
		}
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s (only float32/float64 supported)", name, x.DType()))
	}

	return result
}
