// Copyright 2025 Soma ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package snn provides spiking neuron layers for building and training
// spiking neural networks.
//
// # Overview
//
// This package contains:
//   - LIF: Leaky Integrate-and-Fire neuron layer with trainable membrane
//     time constant
//   - IF: Integrate-and-Fire neuron layer (no leak, no parameters)
//   - Parameter: trainable parameter with gradient accumulation
//   - Surrogate gradients: Rectangular, Sigmoid, Gaussian
//
// # Basic Usage
//
//	import (
//	    "github.com/soma-ml/soma/backend/cpu"
//	    "github.com/soma-ml/soma/snn"
//	    "github.com/soma-ml/soma/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    layer := snn.NewLIF(snn.LIFConfig{
//	        TauM:      2.0,
//	        TrainTauM: true,
//	    }, backend)
//
//	    // input shape: [timeSteps, batch, ...]
//	    input := tensor.Rand[float32](tensor.Shape{16, 32}, backend)
//	    spikes, err := layer.Forward(input)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    // grad w.r.t. spikes, same shape as the output
//	    gradInput, err := layer.Backward(tensor.ZerosLike(spikes))
//	}
//
// # Simulation Semantics
//
// The leading tensor axis is time. At each step the membrane potential
// integrates the input with leak toward the resting potential, a spike fires
// when the potential reaches the threshold, and the potential is reset hard
// to rest wherever a spike occurred. Backward replays the steps in reverse,
// routing the non-differentiable spike through a surrogate gradient window.
//
// # Stateful Mode
//
// With Stateful set, the layer carries the final membrane state of one
// Forward call into the next as the initial state, detached from the
// gradient tape. Reset() clears the carried state.
package snn
