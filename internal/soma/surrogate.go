package soma

import (
	"math"

	"github.com/soma-ml/soma/internal/tensor"
)

// Surrogate approximates the derivative of the Heaviside spiking step.
// Backward accumulates grad_o * window(u - u_threshold) into gradU.
type Surrogate interface {
	Backward(b tensor.Backend, gradO, gradU, o, u *tensor.RawTensor, uThreshold float64)
}

// Rectangular is the default surrogate: a pulse of height 0.5 and half-width
// 1 centered at the threshold, boundaries inclusive. LIFBackward uses this
// window unless told otherwise.
type Rectangular struct{}

// Backward implements Surrogate.
func (Rectangular) Backward(b tensor.Backend, gradO, gradU, o, u *tensor.RawTensor, uThreshold float64) {
	SpikingRectangularBackward(b, gradO, gradU, o, u, uThreshold)
}

// Sigmoid is a smooth surrogate: the derivative of a sigmoid with steepness
// Alpha, i.e. alpha * s * (1 - s) with s = sigmoid(alpha * (u - threshold)).
type Sigmoid struct {
	Alpha float64
}

// Backward implements Surrogate.
func (sg Sigmoid) Backward(b tensor.Backend, gradO, gradU, o, u *tensor.RawTensor, uThreshold float64) {
	defer pin(gradO, u)()

	alpha := sg.Alpha
	if alpha == 0 {
		alpha = 1
	}
	// alpha * e / (1 + e)^2 with e = exp(-alpha * (u - threshold))
	e := b.Exp(b.MulScalar(b.SubScalar(u, uThreshold), -alpha))
	onePlusE := b.AddScalar(e, 1.0)
	window := b.Div(b.MulScalar(e, alpha), b.Mul(onePlusE, onePlusE))
	b.AddAssign(gradU, b.Mul(gradO, window))
}

// Gaussian is a smooth surrogate: a normal density of width Sigma centered
// at the threshold.
type Gaussian struct {
	Sigma float64
}

// Backward implements Surrogate.
func (sg Gaussian) Backward(b tensor.Backend, gradO, gradU, o, u *tensor.RawTensor, uThreshold float64) {
	defer pin(gradO, u)()

	sigma := sg.Sigma
	if sigma == 0 {
		sigma = 1
	}
	d := b.SubScalar(u, uThreshold)
	window := b.MulScalar(
		b.Exp(b.MulScalar(b.Mul(d, d), -1.0/(2*sigma*sigma))),
		1.0/(sigma*math.Sqrt(2*math.Pi)),
	)
	b.AddAssign(gradU, b.Mul(gradO, window))
}
