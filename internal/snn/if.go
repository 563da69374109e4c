package snn

import (
	"github.com/soma-ml/soma/internal/soma"
	"github.com/soma-ml/soma/internal/tensor"
)

// IFConfig holds configuration for the IF layer.
type IFConfig struct {
	URest      float64        // Resting potential (default: 0.0)
	UThreshold float64        // Firing threshold (default: 1.0)
	Surrogate  soma.Surrogate // Spiking surrogate (default: soma.Rectangular)
	Stateful   bool           // Carry membrane state across Forward calls
}

// IF is a layer of integrate-and-fire neurons. Unlike LIF the membrane
// carries its full charge between steps, so the layer has no time constant
// and no trainable parameters.
type IF[B tensor.Backend] struct {
	uRest      float64
	uThreshold float64
	surrogate  soma.Surrogate
	stateful   bool
	backend    B

	x, o, u, h *tensor.Tensor[float32, B]
	uInit      *tensor.Tensor[float32, B]
	timeSteps  int

	gradUInit *tensor.Tensor[float32, B]
}

// NewIF creates an IF layer.
func NewIF[B tensor.Backend](config IFConfig, backend B) *IF[B] {
	if config.UThreshold == 0 {
		config.UThreshold = 1.0
	}
	if config.Surrogate == nil {
		config.Surrogate = soma.Rectangular{}
	}
	return &IF[B]{
		uRest:      config.URest,
		uThreshold: config.UThreshold,
		surrogate:  config.Surrogate,
		stateful:   config.Stateful,
		backend:    backend,
	}
}

// Forward simulates the neuron over the input spike train [T, batch...]
// and returns the output spike train.
func (l *IF[B]) Forward(input *tensor.Tensor[float32, B]) (*tensor.Tensor[float32, B], error) {
	o := tensor.ZerosLike(input)
	u := tensor.ZerosLike(input)
	h := tensor.ZerosLike(input)
	timeSteps := 0
	if len(input.Shape()) > 0 {
		timeSteps = input.Shape()[0]
	}

	uInit := l.nextInitialState(input)

	err := soma.IFForward(l.backend, o.Raw(), u.Raw(), h.Raw(), input.Raw(),
		timeSteps, uInit.Raw(), l.uRest, l.uThreshold)
	if err != nil {
		return nil, err
	}

	l.x, l.o, l.u, l.h = input, o, u, h
	l.uInit = uInit
	l.timeSteps = timeSteps
	return o, nil
}

// Backward runs BPTT over the window retained by the last Forward and
// returns the gradient w.r.t. the input current train.
func (l *IF[B]) Backward(gradOutput *tensor.Tensor[float32, B]) (*tensor.Tensor[float32, B], error) {
	if l.o == nil {
		return nil, ErrNoForwardState
	}

	gradO := tensor.ZerosLike(gradOutput)
	copy(gradO.Data(), gradOutput.Data())

	gradU := tensor.ZerosLike(l.u)
	gradH := tensor.ZerosLike(l.h)
	gradX := tensor.ZerosLike(l.x)
	gradUInit := tensor.ZerosLike(l.uInit)

	err := soma.IFBackward(l.backend,
		gradO.Raw(), gradU.Raw(), gradH.Raw(), gradX.Raw(), gradUInit.Raw(),
		l.timeSteps, l.o.Raw(), l.u.Raw(), l.h.Raw(), l.x.Raw(), l.uInit.Raw(),
		l.uRest, l.uThreshold, l.surrogate)
	if err != nil {
		return nil, err
	}

	l.gradUInit = gradUInit
	return gradX, nil
}

// Parameters returns the layer's trainable parameters (none for IF).
func (l *IF[B]) Parameters() []*Parameter[B] {
	return nil
}

// GradUInit returns the gradient w.r.t. the initial membrane state from the
// last Backward, or nil before the first Backward.
func (l *IF[B]) GradUInit() *tensor.Tensor[float32, B] {
	return l.gradUInit
}

// Reset drops the retained traces and any carried membrane state.
func (l *IF[B]) Reset() {
	l.x, l.o, l.u, l.h = nil, nil, nil, nil
	l.uInit = nil
	l.gradUInit = nil
	l.timeSteps = 0
}

func (l *IF[B]) nextInitialState(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	batch := input.Shape()[1:].Clone()

	if l.stateful && l.h != nil && l.timeSteps > 0 {
		last := l.h.Raw().Index(l.timeSteps - 1)
		defer last.Release()
		if last.Shape().Equal(batch) {
			uInit := tensor.Zeros[float32](batch, l.backend)
			copy(uInit.Raw().Data(), last.Data())
			return uInit
		}
	}

	uInit := tensor.Zeros[float32](batch, l.backend)
	if l.uRest != 0 {
		data := uInit.Data()
		for i := range data {
			data[i] = float32(l.uRest)
		}
	}
	return uInit
}
