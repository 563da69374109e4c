//go:build windows

package webgpu

import (
	"fmt"

	"github.com/soma-ml/soma/internal/tensor"
)

// Add performs element-wise addition on GPU.
func (b *Backend) Add(a, other *tensor.RawTensor) *tensor.RawTensor {
	result, err := b.runBinaryOp(a, other, "add", addShader)
	if err != nil {
		panic("webgpu: Add: " + err.Error())
	}
	return result
}

// Sub performs element-wise subtraction on GPU.
func (b *Backend) Sub(a, other *tensor.RawTensor) *tensor.RawTensor {
	result, err := b.runBinaryOp(a, other, "sub", subShader)
	if err != nil {
		panic("webgpu: Sub: " + err.Error())
	}
	return result
}

// Mul performs element-wise multiplication on GPU.
func (b *Backend) Mul(a, other *tensor.RawTensor) *tensor.RawTensor {
	result, err := b.runBinaryOp(a, other, "mul", mulShader)
	if err != nil {
		panic("webgpu: Mul: " + err.Error())
	}
	return result
}

// Div performs element-wise division on GPU.
func (b *Backend) Div(a, other *tensor.RawTensor) *tensor.RawTensor {
	result, err := b.runBinaryOp(a, other, "div", divShader)
	if err != nil {
		panic("webgpu: Div: " + err.Error())
	}
	return result
}

// AddScalar computes x + s on GPU.
func (b *Backend) AddScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	result, err := b.runScalarOp(x, toFloat32("AddScalar", scalar), "addScalar", addScalarShader)
	if err != nil {
		panic("webgpu: AddScalar: " + err.Error())
	}
	return result
}

// SubScalar computes x - s on GPU.
func (b *Backend) SubScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	result, err := b.runScalarOp(x, toFloat32("SubScalar", scalar), "subScalar", subScalarShader)
	if err != nil {
		panic("webgpu: SubScalar: " + err.Error())
	}
	return result
}

// MulScalar computes x * s on GPU.
func (b *Backend) MulScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	result, err := b.runScalarOp(x, toFloat32("MulScalar", scalar), "mulScalar", mulScalarShader)
	if err != nil {
		panic("webgpu: MulScalar: " + err.Error())
	}
	return result
}

// DivScalar computes x / s on GPU.
func (b *Backend) DivScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	result, err := b.runScalarOp(x, toFloat32("DivScalar", scalar), "divScalar", divScalarShader)
	if err != nil {
		panic("webgpu: DivScalar: " + err.Error())
	}
	return result
}

// AddAssign accumulates src into dst in place: dst += src.
// Same-shape operands only; the sequencers never broadcast here.
func (b *Backend) AddAssign(dst, src *tensor.RawTensor) {
	if err := b.runAccumulate(dst, src); err != nil {
		panic("webgpu: AddAssign: " + err.Error())
	}
}

// GreaterEqual computes a >= b, returning a Bool tensor.
func (b *Backend) GreaterEqual(a, other *tensor.RawTensor) *tensor.RawTensor {
	mask, err := b.runBinaryOp(a, other, "ge", geShader)
	if err != nil {
		panic("webgpu: GreaterEqual: " + err.Error())
	}
	return maskToBool(mask)
}

// LowerEqual computes a <= b, returning a Bool tensor.
func (b *Backend) LowerEqual(a, other *tensor.RawTensor) *tensor.RawTensor {
	mask, err := b.runBinaryOp(a, other, "le", leShader)
	if err != nil {
		panic("webgpu: LowerEqual: " + err.Error())
	}
	return maskToBool(mask)
}

// GreaterEqualScalar computes x >= s, returning a Bool tensor.
func (b *Backend) GreaterEqualScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	mask, err := b.runScalarOp(x, toFloat32("GreaterEqualScalar", scalar), "geScalar", geScalarShader)
	if err != nil {
		panic("webgpu: GreaterEqualScalar: " + err.Error())
	}
	return maskToBool(mask)
}

// LowerEqualScalar computes x <= s, returning a Bool tensor.
func (b *Backend) LowerEqualScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	mask, err := b.runScalarOp(x, toFloat32("LowerEqualScalar", scalar), "leScalar", leScalarShader)
	if err != nil {
		panic("webgpu: LowerEqualScalar: " + err.Error())
	}
	return maskToBool(mask)
}

// And computes the element-wise conjunction of two Bool tensors.
// Boolean tensors live host-side (1-byte layout WGSL cannot address), so the
// logic ops run on the CPU.
func (b *Backend) And(a, other *tensor.RawTensor) *tensor.RawTensor {
	return boolOp("And", a, other, func(x, y bool) bool { return x && y })
}

// Or computes the element-wise disjunction of two Bool tensors.
func (b *Backend) Or(a, other *tensor.RawTensor) *tensor.RawTensor {
	return boolOp("Or", a, other, func(x, y bool) bool { return x || y })
}

// Not computes the element-wise negation of a Bool tensor.
func (b *Backend) Not(x *tensor.RawTensor) *tensor.RawTensor {
	if x.DType() != tensor.Bool {
		panic(fmt.Sprintf("webgpu: Not: expected bool tensor, got %s", x.DType()))
	}
	result := newRawOn(x.Shape(), tensor.Bool)
	src, dst := x.AsBool(), result.AsBool()
	for i, v := range src {
		dst[i] = !v
	}
	return result
}

// Exp computes element-wise exponential on GPU.
func (b *Backend) Exp(x *tensor.RawTensor) *tensor.RawTensor {
	result, err := b.runScalarOp(x, 0, "exp", expShader)
	if err != nil {
		panic("webgpu: Exp: " + err.Error())
	}
	return result
}

// Cast converts between dtypes host-side.
func (b *Backend) Cast(x *tensor.RawTensor, dtype tensor.DataType) *tensor.RawTensor {
	if x.DType() == dtype {
		return x.Clone()
	}

	result := newRawOn(x.Shape(), dtype)
	switch {
	case x.DType() == tensor.Bool && dtype == tensor.Float32:
		src, dst := x.AsBool(), result.AsFloat32()
		for i, v := range src {
			if v {
				dst[i] = 1
			}
		}
	case x.DType() == tensor.Float32 && dtype == tensor.Bool:
		src, dst := x.AsFloat32(), result.AsBool()
		for i, v := range src {
			dst[i] = v != 0
		}
	default:
		panic(fmt.Sprintf("webgpu: Cast: unsupported conversion %s -> %s", x.DType(), dtype))
	}
	return result
}

// Sum reduces all elements to a single-element tensor. The reduction runs
// host-side after the data is already synchronized back from the GPU.
func (b *Backend) Sum(x *tensor.RawTensor) *tensor.RawTensor {
	if x.DType() != tensor.Float32 {
		panic(fmt.Sprintf("webgpu: Sum: only float32 is supported, got %s", x.DType()))
	}
	var total float64
	for _, v := range x.AsFloat32() {
		total += float64(v)
	}
	result := newRawOn(tensor.Shape{1}, tensor.Float32)
	result.AsFloat32()[0] = float32(total)
	return result
}

// toFloat32 normalizes the accepted scalar types.
func toFloat32(name string, scalar any) float32 {
	switch s := scalar.(type) {
	case float32:
		return s
	case float64:
		return float32(s)
	case int:
		return float32(s)
	default:
		panic(fmt.Sprintf("webgpu: %s: unsupported scalar type %T", name, scalar))
	}
}

// maskToBool converts an f32 0/1 mask tensor into a Bool tensor.
func maskToBool(mask *tensor.RawTensor) *tensor.RawTensor {
	result := newRawOn(mask.Shape(), tensor.Bool)
	src, dst := mask.AsFloat32(), result.AsBool()
	for i, v := range src {
		dst[i] = v != 0
	}
	return result
}

// boolOp applies an element-wise predicate over two same-shaped Bool tensors.
func boolOp(name string, a, other *tensor.RawTensor, pred func(x, y bool) bool) *tensor.RawTensor {
	if a.DType() != tensor.Bool || other.DType() != tensor.Bool {
		panic(fmt.Sprintf("webgpu: %s: expected bool tensors, got %s and %s", name, a.DType(), other.DType()))
	}
	if !a.Shape().Equal(other.Shape()) {
		panic(fmt.Sprintf("webgpu: %s: shape mismatch: %v vs %v", name, a.Shape(), other.Shape()))
	}

	result := newRawOn(a.Shape(), tensor.Bool)
	srcA, srcB, dst := a.AsBool(), other.AsBool(), result.AsBool()
	for i := range srcA {
		dst[i] = pred(srcA[i], srcB[i])
	}
	return result
}

// newRawOn allocates a WebGPU-device tensor, panicking on failure like the
// rest of the kernel layer.
func newRawOn(shape tensor.Shape, dtype tensor.DataType) *tensor.RawTensor {
	result, err := tensor.NewRaw(shape, dtype, tensor.WebGPU)
	if err != nil {
		panic(fmt.Sprintf("webgpu: failed to create tensor: %v", err))
	}
	return result
}
