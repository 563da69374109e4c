package soma

import "github.com/soma-ml/soma/internal/tensor"

// pin takes an extra reference on each input for the duration of a kernel,
// returning the matching release. Backends reuse a unique operand's buffer
// for the result; pinning keeps read-only inputs non-unique so the fast path
// cannot overwrite a caller's tensor. Accumulation destinations are never
// pinned, AddAssign writes them by contract.
func pin(inputs ...*tensor.RawTensor) func() {
	guards := make([]*tensor.RawTensor, len(inputs))
	for i, in := range inputs {
		guards[i] = in.Clone()
	}
	return func() {
		for _, g := range guards {
			g.Release()
		}
	}
}
