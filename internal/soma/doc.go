// Package soma implements the forward simulation and hand-derived
// reverse-mode gradients of spiking neuron somas over discrete time.
//
// The package is not an autodiff engine: the composition of operations is
// fixed (response, then spike, then reset, per time step), so each forward
// step ships with a manually derived backward counterpart and two sequencers
// thread state through the time axis, increasing t on the forward pass and
// decreasing t on the backward pass (BPTT).
//
// Every function accumulates into caller-owned buffers (dst += contribution)
// instead of returning fresh tensors. The caller zero-initializes outputs
// before the first call; this is what lets the gradient of the single shared
// tau_m parameter sum contributions from all time steps into one buffer, and
// lets several layers share gradient storage.
//
// The spiking nonlinearity is a Heaviside step. Its true derivative is zero
// almost everywhere, so the backward pass substitutes a surrogate gradient,
// by default a rectangular window of height 0.5 and half-width 1 around the
// threshold. See surrogate.go for the smooth alternatives.
package soma
