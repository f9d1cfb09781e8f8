package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/npillmayer/lists"
	"github.com/npillmayer/lists/deque"
	"github.com/npillmayer/lists/listmetrics"
	"github.com/npillmayer/lists/persistent/list"
	"github.com/npillmayer/lists/queue"
	"github.com/npillmayer/lists/stack"
	dto "github.com/prometheus/client_model/go"
)

// ErrUnknownVariant is returned for container names we do not know of.
var ErrUnknownVariant = errors.New("unknown container variant")

// variants lists the container variants in reporting order.
var variants = []string{"stack", "queue", "deque", "persistent"}

// report is the outcome of exercising a single container.
type report struct {
	Variant  string
	N        int
	Popped   int
	Released int
	Elapsed  time.Duration
}

// cancelCheckInterval is the number of operations between checks for cancellation.
const cancelCheckInterval = 1 << 12

// exercise fills a container of the given variant with n elements, removes half of
// them and releases the rest. Released nodes are counted by rel.
func exercise(ctx context.Context, variant string, n int, rel *listmetrics.Releases) (report, error) {
	r := report{Variant: variant, N: n}
	hook := lists.Chain(listmetrics.Hook[int](rel, variant), listmetrics.Traced[int](variant))
	start := time.Now()
	var err error
	switch variant {
	case "stack":
		c := stack.New(stack.WithReleaseHook(hook))
		err = fill(ctx, n, c.Push)
		r.Popped = drainHalf(n, func() bool { return !c.Pop().IsNothing() })
		c.Release()
	case "queue":
		c := queue.New(queue.WithReleaseHook(hook))
		err = fill(ctx, n, c.Push)
		r.Popped = drainHalf(n, func() bool { return !c.Pop().IsNothing() })
		c.Release()
	case "deque":
		c := deque.New(deque.WithReleaseHook(hook))
		err = fill(ctx, n, func(i int) {
			if i%2 == 0 {
				c.PushBack(i)
			} else {
				c.PushFront(i)
			}
		})
		r.Popped = drainHalf(n, func() bool { return !c.PopBack().IsNothing() })
		c.Release()
	case "persistent":
		l := list.Empty(list.WithReleaseHook(hook))
		err = fill(ctx, n, func(i int) {
			next := l.Append(i)
			l.Release()
			l = next
		})
		r.Popped = drainHalf(n, func() bool {
			if l.IsEmpty() {
				return false
			}
			next := l.Tail()
			l.Release()
			l = next
			return true
		})
		l.Release()
	default:
		return r, fmt.Errorf("%w: %q", ErrUnknownVariant, variant)
	}
	r.Elapsed = time.Since(start)
	if err != nil {
		return r, fmt.Errorf("exercising %s: %w", variant, err)
	}
	r.Released, err = released(rel, variant)
	return r, err
}

func fill(ctx context.Context, n int, push func(int)) error {
	for i := 0; i < n; i++ {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		push(i)
	}
	return nil
}

func drainHalf(n int, pop func() bool) int {
	var popped int
	for popped < n/2 && pop() {
		popped++
	}
	return popped
}

func released(rel *listmetrics.Releases, variant string) (int, error) {
	var m dto.Metric
	if err := rel.Counter(variant).Write(&m); err != nil {
		return 0, fmt.Errorf("reading release counter: %w", err)
	}
	return int(m.GetCounter().GetValue()), nil
}
