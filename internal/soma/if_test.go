package soma

import (
	"errors"
	"testing"

	"github.com/soma-ml/soma/internal/backend/cpu"
	"github.com/soma-ml/soma/internal/tensor"
)

// TestIFForward traces two leak-free steps: charge carries over in full
// until the threshold crossing resets it.
func TestIFForward(t *testing.T) {
	b := cpu.New()

	x := newFilled(t, tensor.Shape{2, 1}, 0.6, 1.0)
	o := newZeros(t, tensor.Shape{2, 1})
	u := newZeros(t, tensor.Shape{2, 1})
	h := newZeros(t, tensor.Shape{2, 1})
	uInit := newZeros(t, tensor.Shape{1})

	if err := IFForward(b, o, u, h, x, 2, uInit, 0.0, 1.0); err != nil {
		t.Fatalf("IFForward failed: %v", err)
	}

	// t=0: u = 0 + 0.6 = 0.6, no spike; t=1: u = 0.6 + 1.0 = 1.6, spike.
	if got, want := u.AsFloat32(), []float32{0.6, 1.6}; !approxEqual(got, want) {
		t.Errorf("u = %v, want %v", got, want)
	}
	if got, want := o.AsFloat32(), []float32{0, 1}; !approxEqual(got, want) {
		t.Errorf("o = %v, want %v", got, want)
	}
	if got, want := h.AsFloat32(), []float32{0.6, 0}; !approxEqual(got, want) {
		t.Errorf("h = %v, want %v", got, want)
	}
}

// TestIFBackward traces BPTT through the two-step example by hand.
//
//	t=1: grad_u[1] = 1 * 0.5 (u=1.6 inside the window)
//	     grad_x[1] = 0.5, grad_h[0] = 0.5
//	t=0: grad_u[0] = 0.5*(1-0) + grad_o[0]*0.5 with grad_o[0] = 0.5*(0-0.6)
//	     grad_x[0] = 0.35, grad_u_init = 0.35
func TestIFBackward(t *testing.T) {
	b := cpu.New()

	x := newFilled(t, tensor.Shape{2, 1}, 0.6, 1.0)
	o := newZeros(t, tensor.Shape{2, 1})
	u := newZeros(t, tensor.Shape{2, 1})
	h := newZeros(t, tensor.Shape{2, 1})
	uInit := newZeros(t, tensor.Shape{1})

	if err := IFForward(b, o, u, h, x, 2, uInit, 0.0, 1.0); err != nil {
		t.Fatalf("IFForward failed: %v", err)
	}

	gradO := newFilled(t, tensor.Shape{2, 1}, 0, 1)
	gradU := newZeros(t, tensor.Shape{2, 1})
	gradH := newZeros(t, tensor.Shape{2, 1})
	gradX := newZeros(t, tensor.Shape{2, 1})
	gradUInit := newZeros(t, tensor.Shape{1})

	if err := IFBackward(b, gradO, gradU, gradH, gradX, gradUInit, 2, o, u, h, x, uInit, 0.0, 1.0, Rectangular{}); err != nil {
		t.Fatalf("IFBackward failed: %v", err)
	}

	if got, want := gradU.AsFloat32(), []float32{0.35, 0.5}; !approxEqual(got, want) {
		t.Errorf("grad_u = %v, want %v", got, want)
	}
	if got, want := gradX.AsFloat32(), []float32{0.35, 0.5}; !approxEqual(got, want) {
		t.Errorf("grad_x = %v, want %v", got, want)
	}
	if got, want := gradUInit.AsFloat32(), []float32{0.35}; !approxEqual(got, want) {
		t.Errorf("grad_u_init = %v, want %v", got, want)
	}
	if got, want := gradO.AsFloat32(), []float32{-0.3, 1}; !approxEqual(got, want) {
		t.Errorf("grad_o = %v, want %v", got, want)
	}
}

// TestIF_Errors checks the IF sequencers share the boundary validation.
func TestIF_Errors(t *testing.T) {
	b := cpu.New()

	o := newZeros(t, tensor.Shape{2, 1})
	u := newZeros(t, tensor.Shape{2, 1})
	h := newZeros(t, tensor.Shape{2, 1})
	x := newZeros(t, tensor.Shape{2, 1})
	uInit := newZeros(t, tensor.Shape{1})

	if err := IFForward(b, o, u, h, x, -1, uInit, 0.0, 1.0); !errors.Is(err, ErrInvalidTimeSteps) {
		t.Errorf("time_steps = -1: got %v, want ErrInvalidTimeSteps", err)
	}

	badInit := newZeros(t, tensor.Shape{3})
	if err := IFForward(b, o, u, h, x, 2, badInit, 0.0, 1.0); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("mismatched u_init: got %v, want ErrShapeMismatch", err)
	}
}
