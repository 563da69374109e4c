package optim

import (
	"github.com/soma-ml/soma/internal/snn"
	"github.com/soma-ml/soma/internal/tensor"
)

// SGD implements stochastic gradient descent with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
type SGD[B tensor.Backend] struct {
	params     []*snn.Parameter[B]
	lr         float32
	momentum   float32
	velocities map[*snn.Parameter[B]]*tensor.Tensor[float32, B]
	backend    B
}

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR       float32 // Learning rate (default: 0.01)
	Momentum float32 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer over the given parameters.
func NewSGD[B tensor.Backend](params []*snn.Parameter[B], config SGDConfig, backend B) *SGD[B] {
	if config.LR == 0 {
		config.LR = 0.01
	}
	return &SGD[B]{
		params:     params,
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make(map[*snn.Parameter[B]]*tensor.Tensor[float32, B]),
		backend:    backend,
	}
}

// Step performs a single optimization step over all parameters.
// Parameters whose gradient was never accumulated are skipped, so a frozen
// tau_m (TrainTauM off) passes through untouched.
func (s *SGD[B]) Step() {
	for _, param := range s.params {
		grad := param.Grad()
		if grad == nil {
			continue
		}

		update := grad.Raw()
		if s.momentum != 0 {
			update = s.advanceVelocity(param, grad)
		}

		// param -= lr * update, written through to the parameter's storage.
		s.backend.AddAssign(param.Tensor().Raw(), s.backend.MulScalar(update, -s.lr))
	}
}

// advanceVelocity folds the gradient into the parameter's velocity buffer
// and returns the updated velocity.
func (s *SGD[B]) advanceVelocity(param *snn.Parameter[B], grad *tensor.Tensor[float32, B]) *tensor.RawTensor {
	velocity, ok := s.velocities[param]
	if !ok {
		velocity = tensor.ZerosLike(param.Tensor())
		s.velocities[param] = velocity
	}

	// velocity = momentum * velocity + grad
	scaled := s.backend.MulScalar(velocity.Raw(), s.momentum)
	copy(velocity.Data(), scaled.AsFloat32())
	s.backend.AddAssign(velocity.Raw(), grad.Raw())

	return velocity.Raw()
}

// ZeroGrad clears gradients for all parameters.
func (s *SGD[B]) ZeroGrad() {
	for _, param := range s.params {
		param.ZeroGrad()
	}
}

// GetLR returns the current learning rate.
func (s *SGD[B]) GetLR() float32 {
	return s.lr
}

// SetLR updates the learning rate, for scheduling during training.
func (s *SGD[B]) SetLR(lr float32) {
	s.lr = lr
}
