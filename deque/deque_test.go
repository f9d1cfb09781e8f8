package deque

import (
	"slices"
	"testing"

	"github.com/npillmayer/lists"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestDequeFront(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lists.deque")
	defer teardown()
	//
	d := New[int]()
	if !d.PopFront().IsNothing() || d.Len() != 0 {
		t.Error("expected pop on empty deque to return Nothing and keep length 0")
	}
	d.PushFront(1)
	d.PushFront(2)
	d.PushFront(3)
	if d.Len() != 3 {
		t.Errorf("expected length 3, is %d", d.Len())
	}
	for _, expected := range []int{3, 2} {
		if v := d.PopFront().WithDefault(-1); v != expected {
			t.Errorf("expected pop to return %d, is %d", expected, v)
		}
	}
	d.PushFront(4)
	d.PushFront(5)
	for _, expected := range []int{5, 4, 1} {
		if v := d.PopFront().WithDefault(-1); v != expected {
			t.Errorf("expected pop to return %d, is %d", expected, v)
		}
	}
	if !d.PopFront().IsNothing() || d.Len() != 0 {
		t.Error("expected exhausted deque to be empty")
	}
	assert.Nil(t, d.tail)
}

func TestDequeBothEnds(t *testing.T) {
	d := New[int]()
	d.PushBack(2)
	d.PushFront(1)
	d.PushBack(3)
	assert.Equal(t, 1, d.PeekFront().WithDefault(0))
	assert.Equal(t, 3, d.PeekBack().WithDefault(0))
	assert.Equal(t, []int{1, 2, 3}, slices.Collect(d.All()))
	assert.Equal(t, []int{3, 2, 1}, slices.Collect(d.Backward()))
	assert.Equal(t, 3, d.PopBack().WithDefault(0))
	assert.Equal(t, 1, d.PopFront().WithDefault(0))
	assert.Equal(t, 2, d.PopBack().WithDefault(0))
	assert.True(t, d.PopBack().IsNothing())
	assert.True(t, d.PeekFront().IsNothing())
	assert.True(t, d.PeekBack().IsNothing())
}

func TestDequeLinks(t *testing.T) {
	d := New[int]()
	ops := []func(){
		func() { d.PushBack(1) },
		func() { d.PushFront(0) },
		func() { d.PopBack() },
		func() { d.PopBack() },
		func() { d.PopFront() },
		func() { d.PushFront(7) },
		func() { d.PushBack(8) },
		func() { d.PushBack(9) },
		func() { d.PopFront() },
	}
	for i, op := range ops {
		op()
		l, ok := d.linked()
		assert.True(t, ok, "links broken after op #%d", i)
		assert.Equal(t, d.Len(), l, "counter diverged after op #%d", i)
	}
	for r := range d.Refs() {
		*r++
	}
	assert.Equal(t, []int{9, 10}, slices.Collect(d.All()))
}

func TestDequeRelease(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lists.deque")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	const N = 100000
	var cnt int
	d := New(WithReleaseHook(lists.Counting[int](&cnt)))
	for i := 0; i < N; i++ {
		d.PushBack(i)
	}
	d.Release()
	assert.Equal(t, N, cnt)
	assert.True(t, d.IsEmpty())
	assert.Equal(t, uint(0), d.Len())
	d.PushFront(1)
	assert.Equal(t, 1, d.PopBack().WithDefault(0))
}
