package tensor

import "testing"

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape Shape
		want  int
	}{
		{Shape{}, 1},
		{Shape{4}, 4},
		{Shape{2, 3}, 6},
		{Shape{16, 8, 4}, 512},
	}

	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.want {
			t.Errorf("%v.NumElements() = %d, want %d", tt.shape, got, tt.want)
		}
	}
}

func TestShapeComputeStrides(t *testing.T) {
	tests := []struct {
		shape Shape
		want  []int
	}{
		{Shape{4}, []int{1}},
		{Shape{2, 3}, []int{3, 1}},
		{Shape{2, 3, 4}, []int{12, 4, 1}},
	}

	for _, tt := range tests {
		got := tt.shape.ComputeStrides()
		if len(got) != len(tt.want) {
			t.Fatalf("%v.ComputeStrides() = %v, want %v", tt.shape, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("%v.ComputeStrides() = %v, want %v", tt.shape, got, tt.want)
				break
			}
		}
	}
}

func TestShapeEqual(t *testing.T) {
	if !(Shape{2, 3}).Equal(Shape{2, 3}) {
		t.Error("equal shapes reported unequal")
	}
	if (Shape{2, 3}).Equal(Shape{3, 2}) {
		t.Error("different shapes reported equal")
	}
	if (Shape{2, 3}).Equal(Shape{2, 3, 1}) {
		t.Error("different ranks reported equal")
	}
}

func TestBroadcastShapes(t *testing.T) {
	tests := []struct {
		name    string
		a, b    Shape
		want    Shape
		needs   bool
		wantErr bool
	}{
		{"same shape", Shape{3, 5}, Shape{3, 5}, Shape{3, 5}, false, false},
		{"broadcast left", Shape{3, 1}, Shape{3, 5}, Shape{3, 5}, true, false},
		{"broadcast right", Shape{3, 5}, Shape{1, 5}, Shape{3, 5}, true, false},
		{"missing dims", Shape{5}, Shape{3, 5}, Shape{3, 5}, true, false},
		{"scalar", Shape{1}, Shape{4, 2}, Shape{4, 2}, true, false},
		{"incompatible", Shape{3, 4}, Shape{3, 5}, nil, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, needs, err := BroadcastShapes(tt.a, tt.b)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("BroadcastShapes(%v, %v) expected error", tt.a, tt.b)
				}
				return
			}
			if err != nil {
				t.Fatalf("BroadcastShapes(%v, %v) failed: %v", tt.a, tt.b, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("shape = %v, want %v", got, tt.want)
			}
			if needs != tt.needs {
				t.Errorf("needsBroadcast = %v, want %v", needs, tt.needs)
			}
		})
	}
}
