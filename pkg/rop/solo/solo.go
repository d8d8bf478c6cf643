package solo

import (
	"context"

	"github.com/ib-77/results/pkg/rop"
)

// Validator checks a value. An invalid value is reported with the record to
// fail with.
type Validator[T any, C rop.Code] func(ctx context.Context, in T) (valid bool, failure rop.Error[C])

func Succeed[T any, C rop.Code](input T) rop.Result[T, C] {
	return rop.Success[T, C](input)
}

func Fail[T any, C rop.Code](e rop.Error[C]) rop.Result[T, C] {
	return rop.FailError[T](e)
}

func Validate[T any, C rop.Code](ctx context.Context, input T, validate Validator[T, C]) rop.Result[T, C] {
	return AndValidate(ctx, Succeed[T, C](input), validate)
}

func AndValidate[T any, C rop.Code](ctx context.Context, input rop.Result[T, C], validate Validator[T, C]) rop.Result[T, C] {
	if input.IsSuccess() {
		if isValid, failure := validate(ctx, input.Value()); !isValid {
			return rop.FailError[T](failure)
		}
	}
	return input
}

// ValidateAll runs every validator against the input value and accumulates
// all failures in validator order. With breakOnError it stops at the first
// failure. A failed input is returned unchanged. Validators run regardless of
// ctx cancellation, so an invalid value is never reported as valid.
func ValidateAll[T any, C rop.Code](
	ctx context.Context,
	input rop.Result[T, C],
	breakOnError bool,
	validators ...Validator[T, C]) rop.Result[T, C] {

	if input.IsFailed() || len(validators) == 0 {
		return input
	}

	b := rop.NewBuilder[T, C]()
	for _, validate := range validators {
		if isValid, failure := validate(ctx, input.Value()); !isValid {
			b.Add(failure)
			if breakOnError {
				break
			}
		}
	}

	if b.IsFailed() {
		return b.Build()
	}
	return input
}

func Switch[In any, Out any, C rop.Code](ctx context.Context,
	input rop.Result[In, C],
	onSuccess func(ctx context.Context, r In) rop.Result[Out, C]) rop.Result[Out, C] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}
	return rop.Convert[Out](input)
}

func Map[In any, Out any, C rop.Code](ctx context.Context,
	input rop.Result[In, C],
	onSuccess func(ctx context.Context, r In) Out) rop.Result[Out, C] {

	if input.IsSuccess() {
		return rop.Success[Out, C](onSuccess(ctx, input.Value()))
	}
	return rop.Convert[Out](input)
}

func Tee[T any, C rop.Code](ctx context.Context,
	input rop.Result[T, C],
	onSuccess func(ctx context.Context, r rop.Result[T, C])) rop.Result[T, C] {

	if input.IsSuccess() {
		onSuccess(ctx, input)
	}

	return input
}

func DoubleTee[T any, C rop.Code](ctx context.Context, input rop.Result[T, C],
	onSuccess func(ctx context.Context, r T),
	onFailure func(ctx context.Context, errs []rop.Error[C])) rop.Result[T, C] {

	if input.IsSuccess() {
		onSuccess(ctx, input.Value())
	} else {
		onFailure(ctx, input.Errors())
	}

	return input
}

// Try calls a Go-style function on the success value. A returned error
// becomes a failure tagged code whose message is the error text.
func Try[In any, Out any, C rop.Code](ctx context.Context, input rop.Result[In, C], code C,
	onTryExecute func(ctx context.Context, r In) (Out, error)) rop.Result[Out, C] {

	if input.IsSuccess() {
		out, err := onTryExecute(ctx, input.Value())
		if err != nil {
			return rop.FailWith[Out](code, err.Error())
		}
		return rop.Success[Out, C](out)
	}

	return rop.Convert[Out](input)
}

func FailOnError[T any, C rop.Code](ctx context.Context, input rop.Result[T, C], code C,
	maybeErr func(ctx context.Context, in T) error) rop.Result[T, C] {

	if input.IsSuccess() {
		if err := maybeErr(ctx, input.Value()); err != nil {
			return rop.FailWith[T](code, err.Error())
		}
	}
	return input
}

func Finally[In, Out any, C rop.Code](ctx context.Context, input rop.Result[In, C],
	onSuccess func(ctx context.Context, r In) Out,
	onFailure func(ctx context.Context, errs []rop.Error[C]) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}
	return onFailure(ctx, input.Errors())
}
