package soma

import (
	"errors"
	"fmt"

	"github.com/soma-ml/soma/internal/tensor"
)

// Common errors returned by the sequencer boundary checks.
var (
	ErrNonPositiveTau   = errors.New("tau_m must be strictly positive")
	ErrInvalidTimeSteps = errors.New("time_steps must be positive and within the sequence length")
	ErrShapeMismatch    = errors.New("sequence tensors disagree on shape")
	ErrDTypeMismatch    = errors.New("tensors disagree on dtype")
)

// validateSequence checks the shared preconditions of the forward and
// backward sequencers: every sequence tensor carries the same [T, ...] shape,
// the initial state matches the batch shape, and dtypes agree. Failing here
// beats a NaN or a panic surfacing deep inside a kernel mid-pass.
func validateSequence(timeSteps int, uInit *tensor.RawTensor, seqs ...*tensor.RawTensor) error {
	ref := seqs[0]
	if timeSteps <= 0 || len(ref.Shape()) == 0 || timeSteps > ref.Shape()[0] {
		return fmt.Errorf("%w: time_steps=%d, sequence shape %v", ErrInvalidTimeSteps, timeSteps, ref.Shape())
	}

	for _, s := range seqs[1:] {
		if !s.Shape().Equal(ref.Shape()) {
			return fmt.Errorf("%w: %v vs %v", ErrShapeMismatch, ref.Shape(), s.Shape())
		}
		if s.DType() != ref.DType() {
			return fmt.Errorf("%w: %s vs %s", ErrDTypeMismatch, ref.DType(), s.DType())
		}
	}

	if !uInit.Shape().Equal(ref.Shape()[1:]) {
		return fmt.Errorf("%w: u_init %v vs batch shape %v", ErrShapeMismatch, uInit.Shape(), tensor.Shape(ref.Shape()[1:]))
	}
	if uInit.DType() != ref.DType() {
		return fmt.Errorf("%w: u_init %s vs %s", ErrDTypeMismatch, uInit.DType(), ref.DType())
	}

	return nil
}

// validateTau checks the membrane time constant. Division by tau_m is
// unguarded inside the kernels, so a non-float dtype or a zero or negative
// value is rejected at the boundary.
func validateTau(tauM *tensor.RawTensor) error {
	if dt := tauM.DType(); dt != tensor.Float32 && dt != tensor.Float64 {
		return fmt.Errorf("%w: tau_m has dtype %s", ErrDTypeMismatch, dt)
	}
	if v := scalarValue(tauM); v <= 0 {
		return fmt.Errorf("%w: got %v", ErrNonPositiveTau, v)
	}
	return nil
}

// timeStep runs one time step's worth of kernel calls, converting kernel
// panics (shape or dtype violations surfacing mid-pass) into an error naming
// the failing step index.
func timeStep(t int, fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("time step %d: %v", t, r)
		}
	}()
	fn()
	return nil
}

// scalarValue reads the first element of a one-element parameter tensor.
func scalarValue(t *tensor.RawTensor) float64 {
	switch t.DType() {
	case tensor.Float32:
		return float64(t.AsFloat32()[0])
	case tensor.Float64:
		return t.AsFloat64()[0]
	default:
		panic(fmt.Sprintf("scalar parameter has non-float dtype %s", t.DType()))
	}
}
