package tensor

import "testing"

func TestNewRaw(t *testing.T) {
	raw, err := NewRaw(Shape{2, 3}, Float32, CPU)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}

	if !raw.Shape().Equal(Shape{2, 3}) {
		t.Errorf("Shape = %v, want [2 3]", raw.Shape())
	}
	if raw.NumElements() != 6 {
		t.Errorf("NumElements = %d, want 6", raw.NumElements())
	}
	if raw.ByteSize() != 24 {
		t.Errorf("ByteSize = %d, want 24", raw.ByteSize())
	}
	if raw.DType() != Float32 {
		t.Errorf("DType = %v, want Float32", raw.DType())
	}
	if raw.Device() != CPU {
		t.Errorf("Device = %v, want CPU", raw.Device())
	}

	// Fresh tensors are zero-initialized.
	for i, v := range raw.AsFloat32() {
		if v != 0 {
			t.Errorf("element %d = %v, want 0", i, v)
		}
	}
}

func TestNewRawInvalidShape(t *testing.T) {
	if _, err := NewRaw(Shape{2, 0}, Float32, CPU); err == nil {
		t.Error("NewRaw with zero dimension should fail")
	}
	if _, err := NewRaw(Shape{-1}, Float32, CPU); err == nil {
		t.Error("NewRaw with negative dimension should fail")
	}
}

func TestRawTensorDataAccess(t *testing.T) {
	raw, _ := NewRaw(Shape{4}, Float32, CPU)
	data := raw.AsFloat32()
	data[2] = 3.5

	// Same memory through the byte view.
	if raw.AsFloat32()[2] != 3.5 {
		t.Errorf("AsFloat32()[2] = %v, want 3.5", raw.AsFloat32()[2])
	}

	boolRaw, _ := NewRaw(Shape{2}, Bool, CPU)
	boolRaw.AsBool()[1] = true
	if !boolRaw.AsBool()[1] {
		t.Error("AsBool write not visible")
	}

	defer func() {
		if recover() == nil {
			t.Error("AsFloat64 on a Float32 tensor should panic")
		}
	}()
	raw.AsFloat64()
}

func TestIndexView(t *testing.T) {
	// Sequence tensor [T=3, batch=2]; Index(t) views step t.
	seq, _ := NewRaw(Shape{3, 2}, Float32, CPU)
	data := seq.AsFloat32()
	for i := range data {
		data[i] = float32(i)
	}

	step := seq.Index(1)
	defer step.Release()

	if !step.Shape().Equal(Shape{2}) {
		t.Fatalf("view shape = %v, want [2]", step.Shape())
	}
	if got := step.AsFloat32(); got[0] != 2 || got[1] != 3 {
		t.Errorf("view data = %v, want [2 3]", got)
	}

	// Writes through the view land in the parent's storage.
	step.AsFloat32()[0] = 99
	if seq.AsFloat32()[2] != 99 {
		t.Errorf("parent[2] = %v, want 99", seq.AsFloat32()[2])
	}
}

func TestIndexBounds(t *testing.T) {
	seq, _ := NewRaw(Shape{3, 2}, Float32, CPU)

	for _, i := range []int{-1, 3} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Index(%d) should panic", i)
				}
			}()
			seq.Index(i)
		}()
	}
}

func TestReferenceCounting(t *testing.T) {
	raw, _ := NewRaw(Shape{2}, Float32, CPU)
	if !raw.IsUnique() {
		t.Error("fresh tensor should be unique")
	}

	clone := raw.Clone()
	if raw.IsUnique() || clone.IsUnique() {
		t.Error("after Clone neither reference is unique")
	}

	// Clone shares the buffer.
	raw.AsFloat32()[0] = 7
	if clone.AsFloat32()[0] != 7 {
		t.Error("clone does not share the buffer")
	}

	clone.Release()
	if !raw.IsUnique() {
		t.Error("after releasing the clone the original is unique again")
	}
}

func TestViewNeverUnique(t *testing.T) {
	seq, _ := NewRaw(Shape{2, 2}, Float32, CPU)
	view := seq.Index(0)
	defer view.Release()

	// Both the parent and the view hold a reference, so neither side may
	// claim the buffer for inplace reuse.
	if seq.IsUnique() || view.IsUnique() {
		t.Error("parent and view must share the buffer non-uniquely")
	}
}
