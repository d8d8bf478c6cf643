package core

import (
	"context"

	"github.com/ib-77/results/pkg/rop"
)

func ToChanFromArgs[T any](ctx context.Context, values ...T) <-chan T {
	in := make(chan T)

	go func() {
		defer close(in)

		for _, v := range values {
			if ctx.Err() != nil {
				return
			}

			select {
			case in <- v:
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

func ToChanFromArgsResults[T any, C rop.Code](ctx context.Context, values ...T) <-chan rop.Result[T, C] {
	in := make(chan rop.Result[T, C])

	go func() {
		defer close(in)

		for _, v := range values {
			select {
			case in <- rop.Success[T, C](v):
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

func ToChanMany[T any](ctx context.Context, values []T) <-chan T {
	return ToChanFromArgs(ctx, values...)
}

func ToChanManyResults[T any, C rop.Code](ctx context.Context, values []T) <-chan rop.Result[T, C] {
	return ToChanFromArgsResults[T, C](ctx, values...)
}

// FromChanMany drains out until it closes or ctx is done.
func FromChanMany[T any](ctx context.Context, out <-chan T) []T {
	res := make([]T, 0)
	for {
		select {
		case v, ok := <-out:
			if !ok {
				return res
			}
			res = append(res, v)
		case <-ctx.Done():
			return res
		}
	}
}
