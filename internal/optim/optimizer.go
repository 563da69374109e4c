// Package optim implements gradient-descent optimizers for SNN training.
//
// Layers accumulate gradients directly into their parameters during the
// backward pass, so optimizers read each parameter's own gradient buffer;
// there is no separate gradient map.
//
// Example usage:
//
//	optimizer := optim.NewSGD(layer.Parameters(), optim.SGDConfig{LR: 0.1}, backend)
//
//	for epoch := range epochs {
//	    spikes, _ := layer.Forward(input)
//	    gradIn, _ := layer.Backward(gradSpikes)
//	    optimizer.Step()
//	    optimizer.ZeroGrad()
//	}
package optim

// Optimizer is the base interface for all optimization algorithms.
type Optimizer interface {
	// Step applies gradient updates to all parameters in-place.
	// Parameters without an accumulated gradient are skipped.
	Step()

	// ZeroGrad clears all parameter gradients.
	// Call before the next backward pass to start a fresh accumulation.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float32
}
