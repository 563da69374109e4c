package soma

import "github.com/soma-ml/soma/internal/tensor"

// ResponseLIF accumulates one leaky-integration step into u:
//
//	u += h + (1/tau_m) * (-(h - u_rest) + x)
//
// h is the previous step's post-reset potential (or the initial state at
// t=0); the neuron decays toward u_rest with rate 1/tau_m while integrating
// the input current x.
func ResponseLIF(b tensor.Backend, u, x, h, tauM *tensor.RawTensor, uRest float64) {
	defer pin(x, h)()

	tau := scalarValue(tauM)
	du := b.MulScalar(b.Sub(x, b.SubScalar(h, uRest)), 1.0/tau)
	b.AddAssign(u, b.Add(h, du))
}

// ResponseLIFBackward accumulates the gradients of ResponseLIF:
//
//	∂U/∂X      = 1/tau_m
//	∂U/∂H      = 1 - 1/tau_m
//	∂U/∂tau_m  = -(1/tau_m²) * (-(h - u_rest) + x)
//
// gradTauM is accumulated, never overwritten: the shared parameter's
// gradient sums contributions from every time step into the same buffer.
// u is accepted for interface symmetry with the forward step.
func ResponseLIFBackward(b tensor.Backend, gradU, gradX, gradH, gradTauM, u, x, h, tauM *tensor.RawTensor, uRest float64) {
	defer pin(gradU, x, h)()

	tau := scalarValue(tauM)
	b.AddAssign(gradX, b.MulScalar(gradU, 1.0/tau))
	b.AddAssign(gradH, b.MulScalar(gradU, 1.0-1.0/tau))

	drive := b.Sub(x, b.SubScalar(h, uRest))
	b.AddAssign(gradTauM, b.Mul(gradU, b.MulScalar(drive, -1.0/(tau*tau))))
}

// ResponseIF accumulates one integrate-without-leak step into u:
//
//	u += h + x
//
// The IF neuron keeps its full charge between steps; there is no time
// constant and therefore no parameter gradient.
func ResponseIF(b tensor.Backend, u, x, h *tensor.RawTensor) {
	defer pin(x, h)()
	b.AddAssign(u, b.Add(h, x))
}

// ResponseIFBackward accumulates the gradients of ResponseIF:
// both ∂U/∂X and ∂U/∂H are 1.
func ResponseIFBackward(b tensor.Backend, gradU, gradX, gradH *tensor.RawTensor) {
	b.AddAssign(gradX, gradU)
	b.AddAssign(gradH, gradU)
}

