//go:build windows

// Copyright 2025 Soma ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package webgpu

import "github.com/soma-ml/soma/tensor"

// Compile-time check that Backend implements tensor.Backend.
// Only meaningful where the real backend builds; the stub on other
// platforms deliberately implements nothing.
var _ tensor.Backend = (*Backend)(nil)
