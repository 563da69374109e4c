// Copyright 2025 Soma ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package snn

import (
	"github.com/soma-ml/soma/internal/snn"
	"github.com/soma-ml/soma/internal/soma"
	"github.com/soma-ml/soma/internal/tensor"
)

// Module interface defines the common interface for all spiking layers.
type Module[B tensor.Backend] = snn.Module[B]

// Parameter represents a trainable parameter in a spiking network.
type Parameter[B tensor.Backend] = snn.Parameter[B]

// NewParameter creates a new parameter with the given name and tensor.
func NewParameter[B tensor.Backend](name string, t *tensor.Tensor[float32, B]) *Parameter[B] {
	return snn.NewParameter(name, t)
}

// ErrNoForwardState is returned by Backward when no forward pass has been
// retained, either because Forward was never called or Reset cleared it.
var ErrNoForwardState = snn.ErrNoForwardState

// Layers

// LIF represents a Leaky Integrate-and-Fire neuron layer.
type LIF[B tensor.Backend] = snn.LIF[B]

// LIFConfig contains configuration for the LIF layer.
type LIFConfig = snn.LIFConfig

// NewLIF creates a new LIF layer.
//
// Example:
//
//	backend := cpu.New()
//	layer := snn.NewLIF(snn.LIFConfig{
//	    TauM:       2.0,
//	    UThreshold: 1.0,
//	    TrainTauM:  true,
//	}, backend)
func NewLIF[B tensor.Backend](config LIFConfig, backend B) *LIF[B] {
	return snn.NewLIF(config, backend)
}

// IF represents an Integrate-and-Fire neuron layer.
type IF[B tensor.Backend] = snn.IF[B]

// IFConfig contains configuration for the IF layer.
type IFConfig = snn.IFConfig

// NewIF creates a new IF layer.
//
// Example:
//
//	backend := cpu.New()
//	layer := snn.NewIF(snn.IFConfig{UThreshold: 1.0}, backend)
func NewIF[B tensor.Backend](config IFConfig, backend B) *IF[B] {
	return snn.NewIF(config, backend)
}

// Surrogate gradients

// Surrogate routes gradients through the non-differentiable spike function
// during the backward pass.
type Surrogate = soma.Surrogate

// Rectangular is the boxcar surrogate window: gradient 0.5 within one unit
// of the threshold, zero outside. This is the default.
type Rectangular = soma.Rectangular

// Sigmoid is the sigmoid-derivative surrogate window.
type Sigmoid = soma.Sigmoid

// Gaussian is the gaussian surrogate window.
type Gaussian = soma.Gaussian
