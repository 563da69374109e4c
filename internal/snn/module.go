// Package snn implements spiking neural network layers.
//
// This package provides the layer-level API over the soma kernels:
//   - Module interface: base interface for all SNN components
//   - Parameter: trainable parameters with gradient accumulation
//   - LIF: leaky integrate-and-fire neuron layer
//   - IF: integrate-and-fire neuron layer
//
// Layers process whole spike trains: a forward call consumes an input
// current sequence of shape [T, batch...] and emits the spike sequence of
// the same shape, retaining the internal traces (membrane potential and
// post-reset state) needed by the matching backward call. There is no
// autodiff tape; each layer knows its own reverse pass.
package snn

import (
	"github.com/soma-ml/soma/internal/tensor"
)

// Module is the base interface for all SNN components.
//
// Forward consumes an input sequence of shape [T, batch...] and returns the
// output sequence. Backward consumes the loss gradient w.r.t. the output
// sequence, accumulates parameter gradients, and returns the gradient
// w.r.t. the input so modules can be chained.
type Module[B tensor.Backend] interface {
	// Forward computes the output spike train for an input current train.
	Forward(input *tensor.Tensor[float32, B]) (*tensor.Tensor[float32, B], error)

	// Backward propagates the output gradient back through the module,
	// accumulating into parameter gradients, and returns the input gradient.
	// Must be called after Forward on the same sequence.
	Backward(gradOutput *tensor.Tensor[float32, B]) (*tensor.Tensor[float32, B], error)

	// Parameters returns all trainable parameters of this module.
	Parameters() []*Parameter[B]
}
