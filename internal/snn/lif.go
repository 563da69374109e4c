package snn

import (
	"errors"

	"github.com/soma-ml/soma/internal/soma"
	"github.com/soma-ml/soma/internal/tensor"
)

// ErrNoForwardState is returned by Backward when no retained forward pass
// exists (Backward before Forward, or after Reset).
var ErrNoForwardState = errors.New("backward called without a retained forward pass")

// LIFConfig holds configuration for the LIF layer.
type LIFConfig struct {
	TauM       float64        // Membrane time constant (default: 2.0)
	URest      float64        // Resting potential (default: 0.0)
	UThreshold float64        // Firing threshold (default: 1.0)
	TrainTauM  bool           // Accumulate gradients for tau_m
	Surrogate  soma.Surrogate // Spiking surrogate (default: soma.Rectangular)
	Stateful   bool           // Carry membrane state across Forward calls
}

// LIF is a layer of leaky integrate-and-fire neurons sharing a single
// membrane time constant.
//
// Forward consumes an input current train of shape [T, batch...] and emits
// the spike train of the same shape. The layer retains the full membrane
// and reset traces so a subsequent Backward can run BPTT over the same
// window; parameter gradients accumulate into the shared tau_m parameter.
//
// Example:
//
//	layer := snn.NewLIF(snn.LIFConfig{TauM: 2.0, TrainTauM: true}, backend)
//	spikes, err := layer.Forward(current)
//	gradIn, err := layer.Backward(gradSpikes)
type LIF[B tensor.Backend] struct {
	tauM       *Parameter[B]
	uRest      float64
	uThreshold float64
	trainTau   bool
	surrogate  soma.Surrogate
	stateful   bool
	backend    B

	// Retained traces from the last Forward, consumed by Backward.
	x, o, u, h *tensor.Tensor[float32, B]
	uInit      *tensor.Tensor[float32, B]
	timeSteps  int

	// Input-state gradient from the last Backward.
	gradUInit *tensor.Tensor[float32, B]
}

// NewLIF creates a LIF layer.
func NewLIF[B tensor.Backend](config LIFConfig, backend B) *LIF[B] {
	if config.TauM == 0 {
		config.TauM = 2.0
	}
	if config.UThreshold == 0 {
		config.UThreshold = 1.0
	}
	if config.Surrogate == nil {
		config.Surrogate = soma.Rectangular{}
	}

	tauM := tensor.Full(tensor.Shape{1}, float32(config.TauM), backend)
	return &LIF[B]{
		tauM:       NewParameter("tau_m", tauM),
		uRest:      config.URest,
		uThreshold: config.UThreshold,
		trainTau:   config.TrainTauM,
		surrogate:  config.Surrogate,
		stateful:   config.Stateful,
		backend:    backend,
	}
}

// Forward simulates the neuron over the input spike train [T, batch...]
// and returns the output spike train.
func (l *LIF[B]) Forward(input *tensor.Tensor[float32, B]) (*tensor.Tensor[float32, B], error) {
	o := tensor.ZerosLike(input)
	u := tensor.ZerosLike(input)
	h := tensor.ZerosLike(input)
	timeSteps := 0
	if len(input.Shape()) > 0 {
		timeSteps = input.Shape()[0]
	}

	uInit := l.nextInitialState(input)

	err := soma.LIFForward(l.backend, o.Raw(), u.Raw(), h.Raw(), input.Raw(),
		timeSteps, uInit.Raw(), l.tauM.Tensor().Raw(), l.uRest, l.uThreshold)
	if err != nil {
		return nil, err
	}

	l.x, l.o, l.u, l.h = input, o, u, h
	l.uInit = uInit
	l.timeSteps = timeSteps
	return o, nil
}

// Backward runs BPTT over the window retained by the last Forward.
// It returns the gradient w.r.t. the input current train and, when the
// layer was built with TrainTauM, accumulates the summed tau_m gradient
// into the parameter.
func (l *LIF[B]) Backward(gradOutput *tensor.Tensor[float32, B]) (*tensor.Tensor[float32, B], error) {
	if l.o == nil {
		return nil, ErrNoForwardState
	}

	// The sequencer accumulates reset contributions into grad_o, so it works
	// on a private copy rather than the caller's buffer.
	gradO := tensor.ZerosLike(gradOutput)
	copy(gradO.Data(), gradOutput.Data())

	gradU := tensor.ZerosLike(l.u)
	gradH := tensor.ZerosLike(l.h)
	gradX := tensor.ZerosLike(l.x)
	gradUInit := tensor.ZerosLike(l.uInit)
	gradTauM := tensor.ZerosLike(l.uInit)

	err := soma.LIFBackwardSurrogate(l.backend,
		gradO.Raw(), gradU.Raw(), gradH.Raw(), gradX.Raw(), gradUInit.Raw(), gradTauM.Raw(),
		l.timeSteps, l.o.Raw(), l.u.Raw(), l.h.Raw(), l.x.Raw(), l.uInit.Raw(),
		l.tauM.Tensor().Raw(), l.uRest, l.uThreshold, l.surrogate)
	if err != nil {
		return nil, err
	}

	if l.trainTau {
		// One scalar parameter shared by every neuron and every time step:
		// reduce the batch-shaped accumulator to match it.
		l.tauM.AccumulateGrad(l.backend.Sum(gradTauM.Raw()))
	}

	l.gradUInit = gradUInit
	return gradX, nil
}

// Parameters returns the layer's trainable parameters.
func (l *LIF[B]) Parameters() []*Parameter[B] {
	return []*Parameter[B]{l.tauM}
}

// TauM returns the membrane time constant parameter.
func (l *LIF[B]) TauM() *Parameter[B] {
	return l.tauM
}

// GradUInit returns the gradient w.r.t. the initial membrane state from the
// last Backward, or nil before the first Backward.
func (l *LIF[B]) GradUInit() *tensor.Tensor[float32, B] {
	return l.gradUInit
}

// Reset drops the retained traces and, for stateful layers, the carried
// membrane state. The next Forward starts from u_rest.
func (l *LIF[B]) Reset() {
	l.x, l.o, l.u, l.h = nil, nil, nil, nil
	l.uInit = nil
	l.gradUInit = nil
	l.timeSteps = 0
}

// nextInitialState picks the initial membrane potential for a forward
// window. Stateful layers resume from the last step's post-reset state,
// detached (copied) so gradients never flow across window boundaries.
func (l *LIF[B]) nextInitialState(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
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
