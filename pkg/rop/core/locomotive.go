package core

import (
	"context"
	"sync"

	"github.com/ib-77/results/pkg/rop"
)

// Locomotive pulls results from inputCh, runs each through engine and pushes
// the outcome to outCh until the input is drained or ctx is done. An input
// picked up after cancellation is dropped.
func Locomotive[In, Out any, C rop.Code](ctx context.Context,
	inputCh <-chan rop.Result[In, C], outCh chan<- rop.Result[Out, C],
	engine func(ctx context.Context, input rop.Result[In, C]) <-chan rop.Result[Out, C],
	onSuccess func(ctx context.Context, out rop.Result[Out, C]), wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			select {
			case <-ctx.Done():
				return
			case pr, running := <-engine(ctx, in):
				if !running {
					return
				}

				select {
				case <-ctx.Done():
					return
				case outCh <- pr:
					if onSuccess != nil {
						onSuccess(ctx, pr)
					}
				}
			}
		}
	}
}
