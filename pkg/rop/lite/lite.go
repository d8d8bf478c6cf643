package lite

import (
	"context"
	"sync"

	"github.com/ib-77/results/pkg/rop"
	"github.com/ib-77/results/pkg/rop/core"
	"github.com/ib-77/results/pkg/rop/solo"
)

// Engine processes one result and delivers its outcome on the returned
// channel. A channel closed without a value means the input was dropped.
type Engine[In, Out any, C rop.Code] func(ctx context.Context, input rop.Result[In, C]) <-chan rop.Result[Out, C]

type FinallyHandlers[In, Out any, C rop.Code] struct {
	OnSuccess func(ctx context.Context, r In) Out
	OnFailure func(ctx context.Context, errs []rop.Error[C]) Out
}

func Run[T any, C rop.Code](ctx context.Context, inputCh <-chan rop.Result[T, C],
	engine Engine[T, T, C], lines int) <-chan rop.Result[T, C] {
	return Turnout(ctx, inputCh, engine, lines)
}

// Turnout fans inputCh out to lines workers running engine. Output order
// follows completion, not input.
func Turnout[In, Out any, C rop.Code](ctx context.Context, inputCh <-chan rop.Result[In, C],
	engine Engine[In, Out, C], lines int) <-chan rop.Result[Out, C] {

	out := make(chan rop.Result[Out, C])
	wg := &sync.WaitGroup{}

	for range max(lines, 1) {
		wg.Add(1)
		go core.Locomotive[In, Out, C](ctx, inputCh, out, engine, nil, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

func Validate[T any, C rop.Code](validate solo.Validator[T, C]) Engine[T, T, C] {
	return lift(func(ctx context.Context, input rop.Result[T, C]) rop.Result[T, C] {
		return solo.AndValidate(ctx, input, validate)
	})
}

func Switch[In, Out any, C rop.Code](switchOnSuccess func(ctx context.Context, r In) rop.Result[Out, C]) Engine[In, Out, C] {
	return lift(func(ctx context.Context, input rop.Result[In, C]) rop.Result[Out, C] {
		return solo.Switch(ctx, input, switchOnSuccess)
	})
}

func Map[In, Out any, C rop.Code](mapOnSuccess func(ctx context.Context, r In) Out) Engine[In, Out, C] {
	return lift(func(ctx context.Context, input rop.Result[In, C]) rop.Result[Out, C] {
		return solo.Map(ctx, input, mapOnSuccess)
	})
}

func Tee[T any, C rop.Code](sideEffect func(ctx context.Context, r rop.Result[T, C])) Engine[T, T, C] {
	return lift(func(ctx context.Context, input rop.Result[T, C]) rop.Result[T, C] {
		return solo.Tee(ctx, input, sideEffect)
	})
}

func Try[In, Out any, C rop.Code](code C,
	onTryExecute func(ctx context.Context, r In) (Out, error)) Engine[In, Out, C] {
	return lift(func(ctx context.Context, input rop.Result[In, C]) rop.Result[Out, C] {
		return solo.Try(ctx, input, code, onTryExecute)
	})
}

// Finally reduces every result on input with handlers.
func Finally[In, Out any, C rop.Code](ctx context.Context, input <-chan rop.Result[In, C],
	handlers FinallyHandlers[In, Out, C]) <-chan Out {

	out := make(chan Out)

	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				return
			case in, ok := <-input:
				if !ok {
					return
				}
				select {
				case out <- solo.Finally(ctx, in, handlers.OnSuccess, handlers.OnFailure):
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}

// lift runs step on its own goroutine. The channel is buffered so the
// goroutine never outlives an abandoned receive.
func lift[In, Out any, C rop.Code](step func(ctx context.Context, input rop.Result[In, C]) rop.Result[Out, C]) Engine[In, Out, C] {
	return func(ctx context.Context, input rop.Result[In, C]) <-chan rop.Result[Out, C] {
		out := make(chan rop.Result[Out, C], 1)

		go func() {
			defer close(out)
			if ctx.Err() != nil {
				return
			}
			out <- step(ctx, input)
		}()

		return out
	}
}
