package snn

import (
	"github.com/soma-ml/soma/internal/tensor"
)

// Parameter represents a trainable parameter of an SNN layer.
//
// Gradients accumulate in place across backward calls: the buffer is
// allocated lazily on first use and then summed into, so a parameter shared
// by several modules (or by all time steps of one module, like tau_m)
// collects every contribution. Call ZeroGrad between optimization steps.
type Parameter[B tensor.Backend] struct {
	name   string
	tensor *tensor.Tensor[float32, B]
	grad   *tensor.Tensor[float32, B]
}

// NewParameter creates a new trainable parameter.
// The gradient buffer is allocated on first access.
func NewParameter[B tensor.Backend](name string, t *tensor.Tensor[float32, B]) *Parameter[B] {
	return &Parameter[B]{
		name:   name,
		tensor: t,
	}
}

// Name returns the parameter name.
func (p *Parameter[B]) Name() string {
	return p.name
}

// Tensor returns the parameter tensor.
func (p *Parameter[B]) Tensor() *tensor.Tensor[float32, B] {
	return p.tensor
}

// Grad returns the gradient tensor, or nil if no gradient has been
// accumulated since the last ZeroGrad.
func (p *Parameter[B]) Grad() *tensor.Tensor[float32, B] {
	return p.grad
}

// AccumulateGrad adds a contribution into the gradient buffer, allocating
// it on first use. The contribution must match the parameter's shape.
func (p *Parameter[B]) AccumulateGrad(contribution *tensor.RawTensor) {
	if p.grad == nil {
		p.grad = tensor.ZerosLike(p.tensor)
	}
	p.tensor.Backend().AddAssign(p.grad.Raw(), contribution)
}

// ZeroGrad clears the gradient.
// Should be called before each training iteration.
func (p *Parameter[B]) ZeroGrad() {
	p.grad = nil
}
