package cpu

import (
	"fmt"

	"github.com/soma-ml/soma/internal/tensor"
)

// AddAssign accumulates src into dst in place: dst += src.
// src may broadcast into dst's shape; dst is never reallocated, so views into
// caller-owned sequence buffers (u[t], grad_h[t-1], grad_tau_m) receive the
// contribution directly.
func (cpu *CPUBackend) AddAssign(dst, src *tensor.RawTensor) {
	if dst.DType() != src.DType() {
		panic(fmt.Sprintf("addAssign: dtype mismatch: %s vs %s", dst.DType(), src.DType()))
	}

	outShape, needsBroadcast, err := tensor.BroadcastShapes(dst.Shape(), src.Shape())
	if err != nil {
		panic(fmt.Sprintf("addAssign: %v", err))
	}
	if !outShape.Equal(dst.Shape()) {
		panic(fmt.Sprintf("addAssign: src shape %v does not broadcast into dst shape %v", src.Shape(), dst.Shape()))
	}

	if !needsBroadcast {
		addAssignVectorized(dst, src)
		return
	}
	addAssignBroadcast(dst, src)
}

func addAssignVectorized(dst, src *tensor.RawTensor) {
	switch dst.DType() {
	case tensor.Float32:
		dstData, srcData := dst.AsFloat32(), src.AsFloat32()
		for i := range dstData {
			dstData[i] += srcData[i]
		}
	case tensor.Float64:
		dstData, srcData := dst.AsFloat64(), src.AsFloat64()
		for i := range dstData {
			dstData[i] += srcData[i]
		}
	default:
		panic("addAssign: unsupported dtype")
	}
}

func addAssignBroadcast(dst, src *tensor.RawTensor) {
	outStrides := dst.Shape().ComputeStrides()
	srcStrides := computeBroadcastStridesForShape(src.Shape(), dst.Shape())
	n := dst.NumElements()

	switch dst.DType() {
	case tensor.Float32:
		dstData, srcData := dst.AsFloat32(), src.AsFloat32()
		for i := 0; i < n; i++ {
			dstData[i] += srcData[computeFlatIndex(i, outStrides, srcStrides)]
		}
	case tensor.Float64:
		dstData, srcData := dst.AsFloat64(), src.AsFloat64()
		for i := 0; i < n; i++ {
			dstData[i] += srcData[computeFlatIndex(i, outStrides, srcStrides)]
		}
	default:
		panic("addAssign: unsupported dtype")
	}
}
