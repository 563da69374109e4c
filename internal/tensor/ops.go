package tensor

// Element-wise operations delegating to the backend.

// Add performs element-wise addition.
func (t *Tensor[T, B]) Add(other *Tensor[T, B]) *Tensor[T, B] {
	result := t.backend.Add(t.raw, other.raw)
	return New[T, B](result, t.backend)
}

// Sub performs element-wise subtraction.
func (t *Tensor[T, B]) Sub(other *Tensor[T, B]) *Tensor[T, B] {
	result := t.backend.Sub(t.raw, other.raw)
	return New[T, B](result, t.backend)
}

// Mul performs element-wise multiplication.
func (t *Tensor[T, B]) Mul(other *Tensor[T, B]) *Tensor[T, B] {
	result := t.backend.Mul(t.raw, other.raw)
	return New[T, B](result, t.backend)
}

// Div performs element-wise division.
func (t *Tensor[T, B]) Div(other *Tensor[T, B]) *Tensor[T, B] {
	result := t.backend.Div(t.raw, other.raw)
	return New[T, B](result, t.backend)
}

// AddScalar adds a scalar to every element.
func (t *Tensor[T, B]) AddScalar(scalar T) *Tensor[T, B] {
	result := t.backend.AddScalar(t.raw, scalar)
	return New[T, B](result, t.backend)
}

// SubScalar subtracts a scalar from every element.
func (t *Tensor[T, B]) SubScalar(scalar T) *Tensor[T, B] {
	result := t.backend.SubScalar(t.raw, scalar)
	return New[T, B](result, t.backend)
}

// MulScalar multiplies every element by a scalar.
func (t *Tensor[T, B]) MulScalar(scalar T) *Tensor[T, B] {
	result := t.backend.MulScalar(t.raw, scalar)
	return New[T, B](result, t.backend)
}

// DivScalar divides every element by a scalar.
func (t *Tensor[T, B]) DivScalar(scalar T) *Tensor[T, B] {
	result := t.backend.DivScalar(t.raw, scalar)
	return New[T, B](result, t.backend)
}

// AddAssign accumulates other into t in place: t += other.
func (t *Tensor[T, B]) AddAssign(other *Tensor[T, B]) {
	t.backend.AddAssign(t.raw, other.raw)
}

// Ge returns t >= other element-wise as a Bool tensor.
func (t *Tensor[T, B]) Ge(other *Tensor[T, B]) *Tensor[bool, B] {
	result := t.backend.GreaterEqual(t.raw, other.raw)
	return New[bool, B](result, t.backend)
}

// Le returns t <= other element-wise as a Bool tensor.
func (t *Tensor[T, B]) Le(other *Tensor[T, B]) *Tensor[bool, B] {
	result := t.backend.LowerEqual(t.raw, other.raw)
	return New[bool, B](result, t.backend)
}

// GeScalar returns t >= scalar element-wise as a Bool tensor.
func (t *Tensor[T, B]) GeScalar(scalar T) *Tensor[bool, B] {
	result := t.backend.GreaterEqualScalar(t.raw, scalar)
	return New[bool, B](result, t.backend)
}

// LeScalar returns t <= scalar element-wise as a Bool tensor.
func (t *Tensor[T, B]) LeScalar(scalar T) *Tensor[bool, B] {
	result := t.backend.LowerEqualScalar(t.raw, scalar)
	return New[bool, B](result, t.backend)
}

// And performs element-wise logical AND. The backend rejects non-Bool
// operands.
func (t *Tensor[T, B]) And(other *Tensor[T, B]) *Tensor[T, B] {
	result := t.backend.And(t.raw, other.raw)
	return New[T, B](result, t.backend)
}

// Or performs element-wise logical OR. The backend rejects non-Bool operands.
func (t *Tensor[T, B]) Or(other *Tensor[T, B]) *Tensor[T, B] {
	result := t.backend.Or(t.raw, other.raw)
	return New[T, B](result, t.backend)
}

// Not performs element-wise logical NOT. The backend rejects non-Bool
// operands.
func (t *Tensor[T, B]) Not() *Tensor[T, B] {
	result := t.backend.Not(t.raw)
	return New[T, B](result, t.backend)
}

// Float32 casts the tensor to float32. Bool casts produce 0.0/1.0.
func (t *Tensor[T, B]) Float32() *Tensor[float32, B] {
	result := t.backend.Cast(t.raw, Float32)
	return New[float32, B](result, t.backend)
}

// Float64 casts the tensor to float64. Bool casts produce 0.0/1.0.
func (t *Tensor[T, B]) Float64() *Tensor[float64, B] {
	result := t.backend.Cast(t.raw, Float64)
	return New[float64, B](result, t.backend)
}

// Sum reduces all elements to a single-element tensor.
func (t *Tensor[T, B]) Sum() *Tensor[T, B] {
	result := t.backend.Sum(t.raw)
	return New[T, B](result, t.backend)
}
