package chain

import (
	"context"

	"github.com/ib-77/results/pkg/rop"
	"github.com/ib-77/results/pkg/rop/solo"
)

// Chain wraps a rop.Result with context to enable fluent chaining
type Chain[T any, C rop.Code] struct {
	ctx    context.Context
	result rop.Result[T, C]
}

// Start creates a new chain from a rop.Result
func Start[T any, C rop.Code](ctx context.Context, result rop.Result[T, C]) *Chain[T, C] {
	return &Chain[T, C]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any, C rop.Code](ctx context.Context, value T) *Chain[T, C] {
	return &Chain[T, C]{
		ctx:    ctx,
		result: rop.Success[T, C](value),
	}
}

// Result returns the underlying rop.Result
func (c *Chain[T, C]) Result() rop.Result[T, C] {
	return c.result
}

// Then chains a function that returns rop.Result[U, C]
func Then[T, U any, C rop.Code](c *Chain[T, C], onSuccess func(context.Context, T) rop.Result[U, C]) *Chain[U, C] {
	return &Chain[U, C]{
		ctx:    c.ctx,
		result: solo.Switch(c.ctx, c.result, onSuccess),
	}
}

// ThenTry chains a function that returns (U, error); an error fails the
// chain with code.
func ThenTry[T, U any, C rop.Code](c *Chain[T, C], code C, tryOnSuccess func(context.Context, T) (U, error)) *Chain[U, C] {
	return &Chain[U, C]{
		ctx:    c.ctx,
		result: solo.Try(c.ctx, c.result, code, tryOnSuccess),
	}
}

// Map chains a pure transformation function
func Map[T, U any, C rop.Code](c *Chain[T, C], onSuccess func(context.Context, T) U) *Chain[U, C] {
	return &Chain[U, C]{
		ctx:    c.ctx,
		result: solo.Map(c.ctx, c.result, onSuccess),
	}
}

// Validate adds every failing validator's record to the chain.
func (c *Chain[T, C]) Validate(validators ...solo.Validator[T, C]) *Chain[T, C] {
	return &Chain[T, C]{
		ctx:    c.ctx,
		result: solo.ValidateAll(c.ctx, c.result, false, validators...),
	}
}

// Ensure performs a side effect without changing the result
func (c *Chain[T, C]) Ensure(onSuccess func(context.Context, T)) *Chain[T, C] {
	return &Chain[T, C]{
		ctx: c.ctx,
		result: solo.Tee(c.ctx, c.result,
			func(ctx context.Context, result rop.Result[T, C]) {
				onSuccess(ctx, result.Value())
			}),
	}
}

// Finally collapses the chain into a final result using solo.Finally
func Finally[T, U any, C rop.Code](c *Chain[T, C], onSuccess func(context.Context, T) U, onFailure func(context.Context, []rop.Error[C]) U) U {
	return solo.Finally(c.ctx, c.result, onSuccess, onFailure)
}
