package soma

import "github.com/soma-ml/soma/internal/tensor"

// LIFForward runs the LIF neuron over timeSteps steps, accumulating into the
// caller's zero-initialized sequence buffers:
//
//	for t in 0..timeSteps-1:
//	    u[t] += response(h[t-1] or u_init, x[t])   // leaky integration
//	    o[t] += (u[t] >= u_threshold)              // spike
//	    h[t] += u[t]*(1-o[t]) + u_rest*o[t]        // hard reset
//
// The recurrence through h forces strictly increasing time order. All of u,
// h and o must be retained unmodified afterwards: LIFBackward consumes them.
func LIFForward(b tensor.Backend, o, u, h, x *tensor.RawTensor, timeSteps int, uInit, tauM *tensor.RawTensor, uRest, uThreshold float64) error {
	if err := validateSequence(timeSteps, uInit, x, o, u, h); err != nil {
		return err
	}
	if err := validateTau(tauM); err != nil {
		return err
	}

	for t := 0; t < timeSteps; t++ {
		hPrev := uInit
		if t > 0 {
			hPrev = h.Index(t - 1)
		}
		if err := timeStep(t, func() {
			ResponseLIF(b, u.Index(t), x.Index(t), hPrev, tauM, uRest)
			SpikingHeaviside(b, o.Index(t), u.Index(t), uThreshold)
			ResetHard(b, h.Index(t), u.Index(t), o.Index(t), uRest)
		}); err != nil {
			return err
		}
	}
	return nil
}

// LIFBackward runs backpropagation-through-time for LIFForward with the
// default rectangular surrogate. gradO arrives populated with the loss
// gradient w.r.t. each step's spike output; every other gradient buffer is
// caller-allocated and zero-initialized. See LIFBackwardSurrogate.
func LIFBackward(b tensor.Backend, gradO, gradU, gradH, gradX, gradUInit, gradTauM *tensor.RawTensor, timeSteps int, o, u, h, x, uInit, tauM *tensor.RawTensor, uRest, uThreshold float64) error {
	return LIFBackwardSurrogate(b, gradO, gradU, gradH, gradX, gradUInit, gradTauM, timeSteps, o, u, h, x, uInit, tauM, uRest, uThreshold, Rectangular{})
}

// LIFBackwardSurrogate is LIFBackward with a selectable surrogate gradient
// for the spiking step.
//
// Time runs strictly backwards: the response gradient at step t accumulates
// into grad_h[t-1], which the reset gradient at step t-1 then reads. The
// t==0 boundary routes that contribution into grad_u_init instead.
//
// The history value fed to the parameter-gradient term is u_init at t==0 and
// h[t] at t>0, not h[t-1]. The forward recurrence reads h[t-1]; the two
// passes index the history asymmetrically on purpose.
//
// gradTauM has the batch shape of u_init and is accumulated elementwise
// across all timeSteps iterations; callers reduce it with Sum to obtain the
// scalar parameter gradient.
func LIFBackwardSurrogate(b tensor.Backend, gradO, gradU, gradH, gradX, gradUInit, gradTauM *tensor.RawTensor, timeSteps int, o, u, h, x, uInit, tauM *tensor.RawTensor, uRest, uThreshold float64, sg Surrogate) error {
	if err := validateSequence(timeSteps, uInit, x, o, u, h, gradO, gradU, gradH, gradX); err != nil {
		return err
	}
	if err := validateSequence(timeSteps, gradUInit, x); err != nil {
		return err
	}
	if err := validateSequence(timeSteps, gradTauM, x); err != nil {
		return err
	}
	if err := validateTau(tauM); err != nil {
		return err
	}

	for t := timeSteps - 1; t >= 0; t-- {
		gradHPrev := gradUInit
		hist := uInit
		if t > 0 {
			gradHPrev = gradH.Index(t - 1)
			hist = h.Index(t)
		}
		if err := timeStep(t, func() {
			ResetHardBackward(b, gradH.Index(t), gradU.Index(t), gradO.Index(t), h.Index(t), u.Index(t), o.Index(t), uRest)
			sg.Backward(b, gradO.Index(t), gradU.Index(t), o.Index(t), u.Index(t), uThreshold)
			ResponseLIFBackward(b, gradU.Index(t), gradX.Index(t), gradHPrev, gradTauM, u.Index(t), x.Index(t), hist, tauM, uRest)
		}); err != nil {
			return err
		}
	}
	return nil
}

// IFForward runs the integrate-and-fire neuron (no leak, no tau_m) over
// timeSteps steps. Same buffer contract as LIFForward.
func IFForward(b tensor.Backend, o, u, h, x *tensor.RawTensor, timeSteps int, uInit *tensor.RawTensor, uRest, uThreshold float64) error {
	if err := validateSequence(timeSteps, uInit, x, o, u, h); err != nil {
		return err
	}

	for t := 0; t < timeSteps; t++ {
		hPrev := uInit
		if t > 0 {
			hPrev = h.Index(t - 1)
		}
		if err := timeStep(t, func() {
			ResponseIF(b, u.Index(t), x.Index(t), hPrev)
			SpikingHeaviside(b, o.Index(t), u.Index(t), uThreshold)
			ResetHard(b, h.Index(t), u.Index(t), o.Index(t), uRest)
		}); err != nil {
			return err
		}
	}
	return nil
}

// IFBackward runs backpropagation-through-time for IFForward.
func IFBackward(b tensor.Backend, gradO, gradU, gradH, gradX, gradUInit *tensor.RawTensor, timeSteps int, o, u, h, x, uInit *tensor.RawTensor, uRest, uThreshold float64, sg Surrogate) error {
	if err := validateSequence(timeSteps, uInit, x, o, u, h, gradO, gradU, gradH, gradX); err != nil {
		return err
	}
	if err := validateSequence(timeSteps, gradUInit, x); err != nil {
		return err
	}

	for t := timeSteps - 1; t >= 0; t-- {
		gradHPrev := gradUInit
		if t > 0 {
			gradHPrev = gradH.Index(t - 1)
		}
		if err := timeStep(t, func() {
			ResetHardBackward(b, gradH.Index(t), gradU.Index(t), gradO.Index(t), h.Index(t), u.Index(t), o.Index(t), uRest)
			sg.Backward(b, gradO.Index(t), gradU.Index(t), o.Index(t), u.Index(t), uThreshold)
			ResponseIFBackward(b, gradU.Index(t), gradX.Index(t), gradHPrev)
		}); err != nil {
			return err
		}
	}
	return nil
}
