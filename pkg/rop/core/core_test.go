package core

import (
	"context"
	"sync"
	"testing"

	"github.com/ib-77/results/pkg/rop"
)

type code uint8

func (c code) String() string { return "code" }

func TestToChanMany_FromChanMany(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	got := FromChanMany(ctx, ToChanMany(ctx, []int{1, 2, 3}))
	if len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Fatalf("expected [1 2 3], got %v", got)
	}
}

func TestToChanManyResults_Succeeds(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	got := FromChanMany(ctx, ToChanManyResults[string, code](ctx, []string{"a", "b"}))
	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got))
	}
	for _, r := range got {
		if !r.IsSuccess() {
			t.Fatalf("expected success, got %v", r)
		}
	}
}

func TestToChanMany_CancelledContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got := FromChanMany(context.Background(), ToChanMany(ctx, []int{1, 2, 3}))
	if len(got) != 0 {
		t.Fatalf("expected no values after cancel, got %v", got)
	}
}

func TestGetWorkerMaxCount(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	if n := GetWorkerMaxCount(ctx, 4); n != 4 {
		t.Fatalf("expected default 4, got %d", n)
	}
	if n := GetWorkerMaxCount(WithWorkerOptions(ctx, 2), 4); n != 2 {
		t.Fatalf("expected 2 from context, got %d", n)
	}
	if n := GetWorkerMaxCount(ctx, 0); n != 1 {
		t.Fatalf("expected at least one worker, got %d", n)
	}
}

func TestLocomotive_ProcessesAll(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	in := ToChanManyResults[int, code](ctx, []int{1, 2, 3})
	out := make(chan rop.Result[int, code], 3)
	double := func(ctx context.Context, r rop.Result[int, code]) <-chan rop.Result[int, code] {
		ch := make(chan rop.Result[int, code], 1)
		ch <- rop.Success[int, code](r.Value() * 2)
		close(ch)
		return ch
	}

	var mu sync.Mutex
	seen := 0
	wg := &sync.WaitGroup{}
	wg.Add(1)
	go Locomotive(ctx, in, out, double, func(ctx context.Context, _ rop.Result[int, code]) {
		mu.Lock()
		seen++
		mu.Unlock()
	}, wg)
	wg.Wait()
	close(out)

	sum := 0
	for r := range out {
		sum += r.Value()
	}
	if sum != 12 || seen != 3 {
		t.Fatalf("expected sum 12 over 3 results, got sum=%d seen=%d", sum, seen)
	}
}
