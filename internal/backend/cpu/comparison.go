package cpu

import (
	"fmt"

	"github.com/soma-ml/soma/internal/tensor"
)

// Comparison operations - return Bool tensors.

// GreaterEqual returns a >= b element-wise.
func (cpu *CPUBackend) GreaterEqual(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.compareOp("greaterEqual", a, b, func(x, y float64) bool { return x >= y })
}

// LowerEqual returns a <= b element-wise.
func (cpu *CPUBackend) LowerEqual(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.compareOp("lowerEqual", a, b, func(x, y float64) bool { return x <= y })
}

// GreaterEqualScalar returns x >= s element-wise.
// The spiking threshold comparison is exactly this op.
func (cpu *CPUBackend) GreaterEqualScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return cpu.compareScalarOp("greaterEqualScalar", x, scalar, func(v, s float64) bool { return v >= s })
}

// LowerEqualScalar returns x <= s element-wise.
func (cpu *CPUBackend) LowerEqualScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return cpu.compareScalarOp("lowerEqualScalar", x, scalar, func(v, s float64) bool { return v <= s })
}

func (cpu *CPUBackend) compareOp(name string, a, b *tensor.RawTensor, pred func(x, y float64) bool) *tensor.RawTensor {
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("%s: dtype mismatch: %s vs %s", name, a.DType(), b.DType()))
	}

	outShape, needsBroadcast, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}

	result, err := tensor.NewRaw(outShape, tensor.Bool, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}
	dst := result.AsBool()

	if !needsBroadcast && a.Shape().Equal(b.Shape()) {
		switch a.DType() {
		case tensor.Float32:
			aData, bData := a.AsFloat32(), b.AsFloat32()
			for i := range dst {
				dst[i] = pred(float64(aData[i]), float64(bData[i]))
			}
		case tensor.Float64:
			aData, bData := a.AsFloat64(), b.AsFloat64()
			for i := range dst {
				dst[i] = pred(aData[i], bData[i])
			}
		default:
			panic(fmt.Sprintf("%s: unsupported dtype %s", name, a.DType()))
		}
		return result
	}

	outStrides := outShape.ComputeStrides()
	aStrides := computeBroadcastStridesForShape(a.Shape(), outShape)
	bStrides := computeBroadcastStridesForShape(b.Shape(), outShape)

	switch a.DType() {
	case tensor.Float32:
		aData, bData := a.AsFloat32(), b.AsFloat32()
		for i := range dst {
			ai := computeFlatIndex(i, outStrides, aStrides)
			bi := computeFlatIndex(i, outStrides, bStrides)
			dst[i] = pred(float64(aData[ai]), float64(bData[bi]))
		}
	case tensor.Float64:
		aData, bData := a.AsFloat64(), b.AsFloat64()
		for i := range dst {
			ai := computeFlatIndex(i, outStrides, aStrides)
			bi := computeFlatIndex(i, outStrides, bStrides)
			dst[i] = pred(aData[ai], bData[bi])
		}
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", name, a.DType()))
	}
	return result
}

func (cpu *CPUBackend) compareScalarOp(name string, x *tensor.RawTensor, scalar any, pred func(v, s float64) bool) *tensor.RawTensor {
	s := scalarToFloat64(name, scalar)

	result, err := tensor.NewRaw(x.Shape(), tensor.Bool, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}
	dst := result.AsBool()

	switch x.DType() {
	case tensor.Float32:
		src := x.AsFloat32()
		for i := range dst {
			dst[i] = pred(float64(src[i]), s)
		}
	case tensor.Float64:
		src := x.AsFloat64()
		for i := range dst {
			dst[i] = pred(src[i], s)
		}
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", name, x.DType()))
	}
	return result
}
