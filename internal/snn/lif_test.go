package snn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soma-ml/soma/internal/backend/cpu"
	"github.com/soma-ml/soma/internal/soma"
	"github.com/soma-ml/soma/internal/tensor"
)

type Backend = *cpu.CPUBackend

// TestLIF_Forward runs the layer over a two-step train of one neuron:
// sub-threshold at t=0, spike at t=1.
func TestLIF_Forward(t *testing.T) {
	backend := cpu.New()
	layer := NewLIF[Backend](LIFConfig{TauM: 2.0}, backend)

	input, err := tensor.FromSlice([]float32{0.6, 3.0}, tensor.Shape{2, 1}, backend)
	require.NoError(t, err)

	spikes, err := layer.Forward(input)
	require.NoError(t, err)

	assert.Equal(t, tensor.Shape{2, 1}, spikes.Shape())
	assert.Equal(t, []float32{0, 1}, spikes.Data())
	assert.InDeltaSlice(t, []float32{0.3, 1.65}, layer.u.Data(), 1e-5)
	assert.InDeltaSlice(t, []float32{0.3, 0.0}, layer.h.Data(), 1e-5)
}

// TestLIF_Backward checks the input gradient and the reduced tau_m gradient
// against the hand-computed BPTT trace of the two-step example.
func TestLIF_Backward(t *testing.T) {
	backend := cpu.New()
	layer := NewLIF[Backend](LIFConfig{TauM: 2.0, TrainTauM: true}, backend)

	input, err := tensor.FromSlice([]float32{0.6, 3.0}, tensor.Shape{2, 1}, backend)
	require.NoError(t, err)
	_, err = layer.Forward(input)
	require.NoError(t, err)

	gradOut, err := tensor.FromSlice([]float32{0, 1}, tensor.Shape{2, 1}, backend)
	require.NoError(t, err)

	gradIn, err := layer.Backward(gradOut)
	require.NoError(t, err)

	assert.InDeltaSlice(t, []float32{0.10625, 0.25}, gradIn.Data(), 1e-5)

	require.NotNil(t, layer.TauM().Grad())
	assert.InDelta(t, -0.406875, layer.TauM().Grad().Item(), 1e-5)

	require.NotNil(t, layer.GradUInit())
	assert.InDelta(t, 0.10625, layer.GradUInit().Item(), 1e-5)

	// The caller's gradient buffer survives untouched.
	assert.Equal(t, []float32{0, 1}, gradOut.Data())
}

// TestLIF_BackwardAccumulates: two backward calls double the parameter
// gradient; ZeroGrad starts a fresh accumulation.
func TestLIF_BackwardAccumulates(t *testing.T) {
	backend := cpu.New()
	layer := NewLIF[Backend](LIFConfig{TauM: 2.0, TrainTauM: true}, backend)

	input, err := tensor.FromSlice([]float32{0.6, 3.0}, tensor.Shape{2, 1}, backend)
	require.NoError(t, err)
	_, err = layer.Forward(input)
	require.NoError(t, err)

	gradOut, err := tensor.FromSlice([]float32{0, 1}, tensor.Shape{2, 1}, backend)
	require.NoError(t, err)

	_, err = layer.Backward(gradOut)
	require.NoError(t, err)
	_, err = layer.Backward(gradOut)
	require.NoError(t, err)
	assert.InDelta(t, 2*-0.406875, layer.TauM().Grad().Item(), 1e-5)

	layer.TauM().ZeroGrad()
	assert.Nil(t, layer.TauM().Grad())

	_, err = layer.Backward(gradOut)
	require.NoError(t, err)
	assert.InDelta(t, -0.406875, layer.TauM().Grad().Item(), 1e-5)
}

// TestLIF_FrozenTau: without TrainTauM the parameter collects no gradient.
func TestLIF_FrozenTau(t *testing.T) {
	backend := cpu.New()
	layer := NewLIF[Backend](LIFConfig{TauM: 2.0}, backend)

	input, err := tensor.FromSlice([]float32{0.6, 3.0}, tensor.Shape{2, 1}, backend)
	require.NoError(t, err)
	_, err = layer.Forward(input)
	require.NoError(t, err)

	gradOut, err := tensor.FromSlice([]float32{0, 1}, tensor.Shape{2, 1}, backend)
	require.NoError(t, err)
	_, err = layer.Backward(gradOut)
	require.NoError(t, err)

	assert.Nil(t, layer.TauM().Grad())
}

// TestLIF_BackwardBeforeForward returns ErrNoForwardState.
func TestLIF_BackwardBeforeForward(t *testing.T) {
	backend := cpu.New()
	layer := NewLIF[Backend](LIFConfig{}, backend)

	gradOut := tensor.Zeros[float32](tensor.Shape{2, 1}, backend)
	_, err := layer.Backward(gradOut)
	assert.ErrorIs(t, err, ErrNoForwardState)

	// Reset drops the retained window too.
	input, err := tensor.FromSlice([]float32{0.6, 3.0}, tensor.Shape{2, 1}, backend)
	require.NoError(t, err)
	_, err = layer.Forward(input)
	require.NoError(t, err)
	layer.Reset()
	_, err = layer.Backward(gradOut)
	assert.ErrorIs(t, err, ErrNoForwardState)
}

// TestLIF_Stateful: a stateful layer resumes the next window from the last
// post-reset potential instead of u_rest.
func TestLIF_Stateful(t *testing.T) {
	backend := cpu.New()
	layer := NewLIF[Backend](LIFConfig{TauM: 2.0, Stateful: true}, backend)

	window, err := tensor.FromSlice([]float32{0.6}, tensor.Shape{1, 1}, backend)
	require.NoError(t, err)

	_, err = layer.Forward(window)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float32{0.3}, layer.u.Data(), 1e-5)

	// Second window integrates from h = 0.3: u = 0.3 + 0.5*(-0.3 + 0.6).
	_, err = layer.Forward(window)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float32{0.45}, layer.u.Data(), 1e-5)

	layer.Reset()
	_, err = layer.Forward(window)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float32{0.3}, layer.u.Data(), 1e-5)
}

// TestLIF_Parameters exposes tau_m for the optimizer.
func TestLIF_Parameters(t *testing.T) {
	backend := cpu.New()
	layer := NewLIF[Backend](LIFConfig{TauM: 3.0, TrainTauM: true}, backend)

	params := layer.Parameters()
	require.Len(t, params, 1)
	assert.Equal(t, "tau_m", params[0].Name())
	assert.InDelta(t, 3.0, params[0].Tensor().Item(), 1e-6)
}

// TestLIF_Float64TauConfig builds the layer straight from a float64 tau, the
// type flag parsing produces.
func TestLIF_Float64TauConfig(t *testing.T) {
	backend := cpu.New()
	tau := 1.5
	layer := NewLIF[Backend](LIFConfig{TauM: tau}, backend)
	assert.InDelta(t, 1.5, layer.TauM().Tensor().Item(), 1e-6)
}

// TestLIF_InvalidTau surfaces the sequencer's boundary error.
func TestLIF_InvalidTau(t *testing.T) {
	backend := cpu.New()
	layer := NewLIF[Backend](LIFConfig{TauM: 2.0}, backend)
	layer.TauM().Tensor().Data()[0] = -1.0

	input, err := tensor.FromSlice([]float32{0.6}, tensor.Shape{1, 1}, backend)
	require.NoError(t, err)
	_, err = layer.Forward(input)
	assert.ErrorIs(t, err, soma.ErrNonPositiveTau)
}

// TestIF_RoundTrip checks the leak-free layer against the hand trace:
// charge carries in full, spike at t=1, then BPTT.
func TestIF_RoundTrip(t *testing.T) {
	backend := cpu.New()
	layer := NewIF[Backend](IFConfig{}, backend)

	input, err := tensor.FromSlice([]float32{0.6, 1.0}, tensor.Shape{2, 1}, backend)
	require.NoError(t, err)

	spikes, err := layer.Forward(input)
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 1}, spikes.Data())
	assert.InDeltaSlice(t, []float32{0.6, 1.6}, layer.u.Data(), 1e-5)

	gradOut, err := tensor.FromSlice([]float32{0, 1}, tensor.Shape{2, 1}, backend)
	require.NoError(t, err)
	gradIn, err := layer.Backward(gradOut)
	require.NoError(t, err)

	assert.InDeltaSlice(t, []float32{0.35, 0.5}, gradIn.Data(), 1e-5)
	assert.InDelta(t, 0.35, layer.GradUInit().Item(), 1e-5)
	assert.Empty(t, layer.Parameters())
}
