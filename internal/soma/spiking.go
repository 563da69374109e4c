package soma

import "github.com/soma-ml/soma/internal/tensor"

// SpikingHeaviside accumulates the thresholding step into o:
//
//	o += (u >= u_threshold)
//
// The comparison mask is cast to o's float dtype, so spikes are 0.0/1.0
// values usable as interpolation weights downstream.
func SpikingHeaviside(b tensor.Backend, o, u *tensor.RawTensor, uThreshold float64) {
	b.AddAssign(o, b.Cast(b.GreaterEqualScalar(u, uThreshold), o.DType()))
}

// SpikingRectangularBackward accumulates the surrogate gradient of the
// Heaviside step into gradU:
//
//	grad_u += grad_o * 0.5 * ((u >= u_threshold-1) & (u <= u_threshold+1))
//
// The true derivative is zero almost everywhere and undefined at the
// threshold, which would block all gradient flow; the rectangular window
// (height 0.5, half-width 1, boundaries inclusive) is the standard
// substitute. o is accepted for interface symmetry with the forward step.
func SpikingRectangularBackward(b tensor.Backend, gradO, gradU, o, u *tensor.RawTensor, uThreshold float64) {
	defer pin(gradO, u)()

	window := b.And(
		b.GreaterEqualScalar(u, uThreshold-1),
		b.LowerEqualScalar(u, uThreshold+1),
	)
	b.AddAssign(gradU, b.Mul(gradO, b.MulScalar(b.Cast(window, u.DType()), 0.5)))
}
