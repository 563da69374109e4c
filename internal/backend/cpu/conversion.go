package cpu

import (
	"fmt"

	"github.com/soma-ml/soma/internal/tensor"
)

// Cast converts a tensor to a different data type.
// Bool to float produces 0.0/1.0: a threshold mask becomes a spike train this way.
func (cpu *CPUBackend) Cast(x *tensor.RawTensor, dtype tensor.DataType) *tensor.RawTensor {
	if x.DType() == dtype {
		return x.Clone()
	}

	result, err := tensor.NewRaw(x.Shape(), dtype, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("cast: %v", err))
	}

	switch x.DType() {
	case tensor.Float32:
		src := x.AsFloat32()
		switch dtype {
		case tensor.Float64:
			dst := result.AsFloat64()
			for i, v := range src {
				dst[i] = float64(v)
			}
		case tensor.Bool:
			dst := result.AsBool()
			for i, v := range src {
				dst[i] = v != 0
			}
		}
	case tensor.Float64:
		src := x.AsFloat64()
		switch dtype {
		case tensor.Float32:
			dst := result.AsFloat32()
			for i, v := range src {
				dst[i] = float32(v)
			}
		case tensor.Bool:
			dst := result.AsBool()
			for i, v := range src {
				dst[i] = v != 0
			}
		}
	case tensor.Bool:
		src := x.AsBool()
		switch dtype {
		case tensor.Float32:
			dst := result.AsFloat32()
			for i, v := range src {
				if v {
					dst[i] = 1
				}
			}
		case tensor.Float64:
			dst := result.AsFloat64()
			for i, v := range src {
				if v {
					dst[i] = 1
				}
			}
		}
	default:
		panic(fmt.Sprintf("cast: unsupported dtype %s", x.DType()))
	}

	return result
}

// Sum reduces all elements to a single-element tensor of shape {1}.
// Accumulates in float64 to limit rounding drift over long sequences.
func (cpu *CPUBackend) Sum(x *tensor.RawTensor) *tensor.RawTensor {
	result, err := tensor.NewRaw(tensor.Shape{1}, x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("sum: %v", err))
	}

	switch x.DType() {
	case tensor.Float32:
		var acc float64
		for _, v := range x.AsFloat32() {
			acc += float64(v)
		}
		result.AsFloat32()[0] = float32(acc)
	case tensor.Float64:
		var acc float64
		for _, v := range x.AsFloat64() {
			acc += v
		}
		result.AsFloat64()[0] = acc
	default:
		panic(fmt.Sprintf("sum: unsupported dtype %s (only float32/float64 supported)", x.DType()))
	}

	return result
}
