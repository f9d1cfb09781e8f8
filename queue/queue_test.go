package queue

import (
	"testing"

	"github.com/npillmayer/lists"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestQueueBasics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lists.queue")
	defer teardown()
	//
	q := New[int]()
	if q.Len() != 0 {
		t.Errorf("expected new queue to be empty, has length %d", q.Len())
	}
	if !q.Pop().IsNothing() || q.Len() != 0 {
		t.Error("expected pop on empty queue to return Nothing and keep length 0")
	}
	q.Push(1)
	q.Push(2)
	q.Push(3)
	if q.Len() != 3 {
		t.Errorf("expected length 3, is %d", q.Len())
	}
	for _, expected := range []int{1, 2} {
		if v := q.Pop().WithDefault(-1); v != expected {
			t.Errorf("expected pop to return %d, is %d", expected, v)
		}
	}
	if q.Len() != 1 {
		t.Errorf("expected length 1, is %d", q.Len())
	}
	q.Push(4)
	q.Push(5)
	for _, expected := range []int{3, 4, 5} {
		if v := q.Pop().WithDefault(-1); v != expected {
			t.Errorf("expected pop to return %d, is %d", expected, v)
		}
	}
	if !q.Pop().IsNothing() || q.Len() != 0 {
		t.Error("expected exhausted queue to be empty")
	}
	// exhaustion must have reset the tail
	q.Push(6)
	q.Push(7)
	assert.Equal(t, 6, q.Pop().WithDefault(-1))
	assert.Equal(t, 7, q.Pop().WithDefault(-1))
	assert.True(t, q.Pop().IsNothing())
}

func TestQueueTailIsResetWhenEmptied(t *testing.T) {
	q := New[int]()
	q.Push(1)
	q.Push(2)
	q.Push(3)
	for i := 1; i <= 3; i++ {
		assert.Equal(t, i, q.Pop().WithDefault(-1))
		assert.True(t, q.tailIsLast())
	}
	assert.Nil(t, q.tail)
	q.Push(4)
	assert.Equal(t, 4, q.Pop().WithDefault(-1))
	assert.Nil(t, q.tail)
}

func TestQueueInvariants(t *testing.T) {
	q := New[int]()
	ops := []int{1, 0, 0, 2, 3, 0, 4, 5, 6, 0, 0, 0, 0, 7}
	for _, op := range ops {
		if op > 0 {
			q.Push(op)
		} else {
			q.Pop()
		}
		assert.Equal(t, q.Len(), q.length(), "counter diverged from structure")
		assert.True(t, q.tailIsLast(), "tail does not reference last node")
	}
}

func TestQueueIteration(t *testing.T) {
	q := New[string]()
	q.Push("a")
	q.Push("b")
	q.Push("c")
	assert.Equal(t, "a", q.Peek().WithDefault(""))
	var seen []string
	for s := range q.All() {
		seen = append(seen, s)
	}
	assert.Equal(t, []string{"a", "b", "c"}, seen)
	for r := range q.Refs() {
		*r += *r
	}
	seen = seen[:0]
	for s := range q.Drain() {
		seen = append(seen, s)
	}
	assert.Equal(t, []string{"aa", "bb", "cc"}, seen)
	assert.True(t, q.IsEmpty())
	assert.True(t, q.tailIsLast())
}

func TestQueueReleaseLongChain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lists.queue")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	const N = 100000
	var first, cnt int
	first = -1
	q := New(WithReleaseHook(lists.Chain[int](lists.Counting[int](&cnt), func(n int) {
		if first < 0 {
			first = n
		}
	})))
	for i := 0; i < N; i++ {
		q.Push(i)
	}
	q.Release()
	assert.Equal(t, N, cnt)
	assert.Equal(t, 0, first, "release has to start at the head")
	assert.Nil(t, q.tail)
	assert.Equal(t, uint(0), q.Len())
	q.Push(1)
	assert.Equal(t, 1, q.Pop().WithDefault(-1))
}
