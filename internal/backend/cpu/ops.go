package cpu

import (
	"github.com/soma-ml/soma/internal/tensor"
)

// kernel is one elementwise binary operation expressed over float64.
// Kernels are applied per element after dtype dispatch; membrane dynamics
// only need the four arithmetic ops, so a function value keeps the
// dispatch table small.
type kernel func(a, b float64) float64

func addKernel(a, b float64) float64 { return a + b }
func subKernel(a, b float64) float64 { return a - b }
func mulKernel(a, b float64) float64 { return a * b }
func divKernel(a, b float64) float64 { return a / b }

// applyInplace computes a[i] = k(a[i], b[i]).
// Requires: a.Shape().Equal(b.Shape()) && a.IsUnique().
func applyInplace(a, b *tensor.RawTensor, k kernel) {
	switch a.DType() {
	case tensor.Float32:
		aData, bData := a.AsFloat32(), b.AsFloat32()
		for i := range aData {
			aData[i] = float32(k(float64(aData[i]), float64(bData[i])))
		}
	case tensor.Float64:
		aData, bData := a.AsFloat64(), b.AsFloat64()
		for i := range aData {
			aData[i] = k(aData[i], bData[i])
		}
	default:
		panic("applyInplace: unsupported dtype")
	}
}

// applyVectorized computes result[i] = k(a[i], b[i]).
// Requires: a.Shape().Equal(b.Shape()).
func applyVectorized(result, a, b *tensor.RawTensor, k kernel) {
	switch a.DType() {
	case tensor.Float32:
		dst, aData, bData := result.AsFloat32(), a.AsFloat32(), b.AsFloat32()
		for i := range dst {
			dst[i] = float32(k(float64(aData[i]), float64(bData[i])))
		}
	case tensor.Float64:
		dst, aData, bData := result.AsFloat64(), a.AsFloat64(), b.AsFloat64()
		for i := range dst {
			dst[i] = k(aData[i], bData[i])
		}
	default:
		panic("applyVectorized: unsupported dtype")
	}
}

// applyBroadcast computes result = k(a, b) with NumPy-style broadcasting.
func applyBroadcast(result, a, b *tensor.RawTensor, outShape tensor.Shape, k kernel) {
	outStrides := outShape.ComputeStrides()
	aStrides := computeBroadcastStridesForShape(a.Shape(), outShape)
	bStrides := computeBroadcastStridesForShape(b.Shape(), outShape)
	n := outShape.NumElements()

	switch a.DType() {
	case tensor.Float32:
		dst, aData, bData := result.AsFloat32(), a.AsFloat32(), b.AsFloat32()
		for i := 0; i < n; i++ {
			ai := computeFlatIndex(i, outStrides, aStrides)
			bi := computeFlatIndex(i, outStrides, bStrides)
			dst[i] = float32(k(float64(aData[ai]), float64(bData[bi])))
		}
	case tensor.Float64:
		dst, aData, bData := result.AsFloat64(), a.AsFloat64(), b.AsFloat64()
		for i := 0; i < n; i++ {
			ai := computeFlatIndex(i, outStrides, aStrides)
			bi := computeFlatIndex(i, outStrides, bStrides)
			dst[i] = k(aData[ai], bData[bi])
		}
	default:
		panic("applyBroadcast: unsupported dtype")
	}
}
