package soma

import "github.com/soma-ml/soma/internal/tensor"

// ResetHard accumulates the hard-reset state update into h:
//
//	h += u * (1 - o) + u_rest * o
//
// Neurons that spiked are reset to u_rest; the rest carry u forward as the
// recurrent state for the next time step.
func ResetHard(b tensor.Backend, h, u, o *tensor.RawTensor, uRest float64) {
	defer pin(u, o)()

	notO := b.AddScalar(b.MulScalar(o, -1.0), 1.0) // 1 - o
	b.AddAssign(h, b.Add(b.Mul(u, notO), b.MulScalar(o, uRest)))
}

// ResetHardBackward accumulates the gradients of ResetHard:
//
//	∂H/∂U = 1 - o
//	∂H/∂O = u_rest - u
//
// h is accepted for interface symmetry with the forward step; it does not
// appear in either partial derivative.
func ResetHardBackward(b tensor.Backend, gradH, gradU, gradO, h, u, o *tensor.RawTensor, uRest float64) {
	defer pin(gradH, u, o)()

	notO := b.AddScalar(b.MulScalar(o, -1.0), 1.0) // 1 - o
	b.AddAssign(gradU, b.Mul(gradH, notO))
	b.AddAssign(gradO, b.Mul(gradH, b.MulScalar(b.SubScalar(u, uRest), -1.0)))
}
