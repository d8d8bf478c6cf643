package rop

// Builder accumulates errors and an optional value before publishing an
// immutable Result. A Builder belongs to the goroutine that created it and
// must not be shared.
type Builder[T any, C Code] struct {
	errors   []Error[C]
	value    T
	hasValue bool
}

// NewBuilder returns an empty builder. Built without changes it yields a
// success whose value is uninitialized.
func NewBuilder[T any, C Code]() *Builder[T, C] {
	return &Builder[T, C]{}
}

// Add appends errs. Once an error is added the builder produces a failure and
// any value already set is dropped.
func (b *Builder[T, C]) Add(errs ...Error[C]) *Builder[T, C] {
	if len(errs) == 0 {
		return b
	}
	b.errors = append(b.errors, errs...)
	var zero T
	b.value, b.hasValue = zero, false
	return b
}

// SetValue sets the success value. It panics with ErrInvalidState when the
// builder already holds errors.
func (b *Builder[T, C]) SetValue(value T) *Builder[T, C] {
	if b.IsFailed() {
		panic(errValueOfFailure)
	}
	b.value, b.hasValue = value, true
	return b
}

func (b *Builder[T, C]) IsFailed() bool {
	return len(b.errors) > 0
}

// Len returns the number of errors added so far.
func (b *Builder[T, C]) Len() int {
	return len(b.errors)
}

// Build finalizes the builder. Later changes to b do not affect the result.
func (b *Builder[T, C]) Build() Result[T, C] {
	if b.IsFailed() {
		return FailErrors[T](b.errors)
	}
	return Result[T, C]{value: b.value, hasValue: b.hasValue}
}
