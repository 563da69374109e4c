package optim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soma-ml/soma/internal/backend/cpu"
	"github.com/soma-ml/soma/internal/snn"
	"github.com/soma-ml/soma/internal/tensor"
)

type Backend = *cpu.CPUBackend

func newParam(t *testing.T, backend Backend, name string, values ...float32) *snn.Parameter[Backend] {
	t.Helper()
	tens, err := tensor.FromSlice(values, tensor.Shape{len(values)}, backend)
	require.NoError(t, err)
	return snn.NewParameter(name, tens)
}

// TestSGD_Step applies param -= lr * grad.
func TestSGD_Step(t *testing.T) {
	backend := cpu.New()
	param := newParam(t, backend, "tau_m", 2.0)

	grad := tensor.Full(tensor.Shape{1}, float32(-0.5), backend)
	param.AccumulateGrad(grad.Raw())

	sgd := NewSGD([]*snn.Parameter[Backend]{param}, SGDConfig{LR: 0.1}, backend)
	sgd.Step()

	// 2.0 - 0.1 * (-0.5) = 2.05
	assert.InDelta(t, 2.05, param.Tensor().Item(), 1e-6)
}

// TestSGD_SkipsFrozenParameters: a parameter without gradient is untouched.
func TestSGD_SkipsFrozenParameters(t *testing.T) {
	backend := cpu.New()
	param := newParam(t, backend, "tau_m", 2.0)

	sgd := NewSGD([]*snn.Parameter[Backend]{param}, SGDConfig{LR: 0.1}, backend)
	sgd.Step()

	assert.InDelta(t, 2.0, param.Tensor().Item(), 1e-6)
}

// TestSGD_Momentum folds gradients into a velocity buffer.
func TestSGD_Momentum(t *testing.T) {
	backend := cpu.New()
	param := newParam(t, backend, "w", 1.0)
	grad := tensor.Full(tensor.Shape{1}, float32(1.0), backend)

	sgd := NewSGD([]*snn.Parameter[Backend]{param}, SGDConfig{LR: 0.1, Momentum: 0.9}, backend)

	// Step 1: velocity = 1.0, param = 1.0 - 0.1 = 0.9
	param.AccumulateGrad(grad.Raw())
	sgd.Step()
	sgd.ZeroGrad()
	assert.InDelta(t, 0.9, param.Tensor().Item(), 1e-6)

	// Step 2: velocity = 0.9*1.0 + 1.0 = 1.9, param = 0.9 - 0.19 = 0.71
	param.AccumulateGrad(grad.Raw())
	sgd.Step()
	sgd.ZeroGrad()
	assert.InDelta(t, 0.71, param.Tensor().Item(), 1e-6)
}

// TestSGD_ZeroGrad clears the accumulated gradients of all parameters.
func TestSGD_ZeroGrad(t *testing.T) {
	backend := cpu.New()
	param := newParam(t, backend, "w", 1.0)
	grad := tensor.Full(tensor.Shape{1}, float32(1.0), backend)
	param.AccumulateGrad(grad.Raw())
	require.NotNil(t, param.Grad())

	sgd := NewSGD([]*snn.Parameter[Backend]{param}, SGDConfig{LR: 0.1}, backend)
	sgd.ZeroGrad()
	assert.Nil(t, param.Grad())
}

// TestSGD_DefaultLR falls back to 0.01.
func TestSGD_DefaultLR(t *testing.T) {
	backend := cpu.New()
	sgd := NewSGD[Backend](nil, SGDConfig{}, backend)
	assert.InDelta(t, 0.01, sgd.GetLR(), 1e-9)

	sgd.SetLR(0.5)
	assert.InDelta(t, 0.5, sgd.GetLR(), 1e-9)
}

// TestSGD_TrainsTauM runs a few optimization steps on a live LIF layer and
// checks tau_m moves against its gradient.
func TestSGD_TrainsTauM(t *testing.T) {
	backend := cpu.New()
	layer := snn.NewLIF[Backend](snn.LIFConfig{TauM: 2.0, TrainTauM: true}, backend)
	sgd := NewSGD(layer.Parameters(), SGDConfig{LR: 0.1}, backend)

	input, err := tensor.FromSlice([]float32{0.6, 3.0}, tensor.Shape{2, 1}, backend)
	require.NoError(t, err)
	gradOut, err := tensor.FromSlice([]float32{0, 1}, tensor.Shape{2, 1}, backend)
	require.NoError(t, err)

	before := layer.TauM().Tensor().Item()

	_, err = layer.Forward(input)
	require.NoError(t, err)
	_, err = layer.Backward(gradOut)
	require.NoError(t, err)

	sgd.Step()
	sgd.ZeroGrad()

	// grad_tau_m = -0.406875, so tau_m increases by lr * 0.406875.
	assert.InDelta(t, float64(before)+0.0406875, layer.TauM().Tensor().Item(), 1e-5)
	assert.Nil(t, layer.TauM().Grad())
}
