package soma

import (
	"testing"

	"github.com/soma-ml/soma/internal/backend/cpu"
	"github.com/soma-ml/soma/internal/tensor"
)

// TestSurrogate_Rectangular checks the interface wrapper matches the kernel.
func TestSurrogate_Rectangular(t *testing.T) {
	b := cpu.New()

	u := newFilled(t, tensor.Shape{3}, 0.0, 1.0, 3.0)
	o := newZeros(t, tensor.Shape{3})
	gradO := newFilled(t, tensor.Shape{3}, 1, 1, 1)
	gradU := newZeros(t, tensor.Shape{3})

	Rectangular{}.Backward(b, gradO, gradU, o, u, 1.0)

	if got, want := gradU.AsFloat32(), []float32{0.5, 0.5, 0}; !approxEqual(got, want) {
		t.Errorf("grad_u = %v, want %v", got, want)
	}
}

// TestSurrogate_Sigmoid checks the sigmoid-derivative window against a
// hand-computed value: at u - threshold = -0.5 with alpha = 2,
// alpha * e / (1+e)^2 with e = exp(1) gives 0.3932239.
func TestSurrogate_Sigmoid(t *testing.T) {
	b := cpu.New()

	u := newFilled(t, tensor.Shape{2}, 0.5, 1.0)
	o := newZeros(t, tensor.Shape{2})
	gradO := newFilled(t, tensor.Shape{2}, 1, 1)
	gradU := newZeros(t, tensor.Shape{2})

	Sigmoid{Alpha: 2}.Backward(b, gradO, gradU, o, u, 1.0)

	// At the threshold the window peaks at alpha/4 = 0.5.
	if got, want := gradU.AsFloat32(), []float32{0.3932239, 0.5}; !approxEqual(got, want) {
		t.Errorf("grad_u = %v, want %v", got, want)
	}
}

// TestSurrogate_Gaussian checks the normal-density window against a
// hand-computed value: at u - threshold = -0.5 with sigma = 1 the density is
// exp(-0.125)/sqrt(2*pi) = 0.3520653.
func TestSurrogate_Gaussian(t *testing.T) {
	b := cpu.New()

	u := newFilled(t, tensor.Shape{2}, 0.5, 1.0)
	o := newZeros(t, tensor.Shape{2})
	gradO := newFilled(t, tensor.Shape{2}, 1, 1)
	gradU := newZeros(t, tensor.Shape{2})

	Gaussian{Sigma: 1}.Backward(b, gradO, gradU, o, u, 1.0)

	// At the threshold the window peaks at 1/sqrt(2*pi) = 0.3989423.
	if got, want := gradU.AsFloat32(), []float32{0.3520653, 0.3989423}; !approxEqual(got, want) {
		t.Errorf("grad_u = %v, want %v", got, want)
	}
}

// TestLIFBackwardSurrogate_SigmoidFlows checks a smooth surrogate lets
// gradient flow where the rectangular window is zero.
func TestLIFBackwardSurrogate_SigmoidFlows(t *testing.T) {
	b := cpu.New()

	// Large input drives u = 2.5, outside the rectangular window [0, 2].
	x := newFilled(t, tensor.Shape{1, 1}, 5.0)
	o := newZeros(t, tensor.Shape{1, 1})
	u := newZeros(t, tensor.Shape{1, 1})
	h := newZeros(t, tensor.Shape{1, 1})
	uInit := newZeros(t, tensor.Shape{1})
	tauM := newFilled(t, tensor.Shape{1}, 2.0)

	if err := LIFForward(b, o, u, h, x, 1, uInit, tauM, 0.0, 1.0); err != nil {
		t.Fatalf("LIFForward failed: %v", err)
	}

	run := func(sg Surrogate) float32 {
		gradO := newFilled(t, tensor.Shape{1, 1}, 1)
		gradU := newZeros(t, tensor.Shape{1, 1})
		gradH := newZeros(t, tensor.Shape{1, 1})
		gradX := newZeros(t, tensor.Shape{1, 1})
		gradUInit := newZeros(t, tensor.Shape{1})
		gradTauM := newZeros(t, tensor.Shape{1})
		if err := LIFBackwardSurrogate(b, gradO, gradU, gradH, gradX, gradUInit, gradTauM, 1, o, u, h, x, uInit, tauM, 0.0, 1.0, sg); err != nil {
			t.Fatalf("LIFBackwardSurrogate failed: %v", err)
		}
		return gradX.AsFloat32()[0]
	}

	if got := run(Rectangular{}); got != 0 {
		t.Errorf("rectangular grad_x = %v outside the window, want 0", got)
	}
	if got := run(Sigmoid{Alpha: 1}); got <= 0 {
		t.Errorf("sigmoid grad_x = %v, want > 0", got)
	}
}
