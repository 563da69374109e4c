// Copyright 2025 Soma ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimization algorithms for training spiking
// networks.
//
// # Overview
//
// This package contains:
//   - SGD: Stochastic Gradient Descent with momentum
//   - Optimizer interface for custom optimizers
//
// Layers accumulate gradients directly into their parameters during the
// backward pass, so Step takes no arguments.
//
// # Training Loop Pattern
//
//	import (
//	    "github.com/soma-ml/soma/backend/cpu"
//	    "github.com/soma-ml/soma/optim"
//	    "github.com/soma-ml/soma/snn"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    layer := snn.NewLIF(snn.LIFConfig{TauM: 2.0, TrainTauM: true}, backend)
//	    optimizer := optim.NewSGD(
//	        layer.Parameters(),
//	        optim.SGDConfig{
//	            LR:       0.01,
//	            Momentum: 0.9,
//	        },
//	        backend,
//	    )
//
//	    for epoch := range numEpochs {
//	        // 1. Zero gradients
//	        optimizer.ZeroGrad()
//
//	        // 2. Forward pass
//	        spikes, err := layer.Forward(input)
//
//	        // 3. Backward pass accumulates parameter gradients
//	        gradInput, err := layer.Backward(gradSpikes)
//
//	        // 4. Update parameters
//	        optimizer.Step()
//	    }
//	}
package optim
