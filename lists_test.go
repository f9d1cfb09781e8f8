package lists_test

import (
	"fmt"
	"testing"

	"github.com/npillmayer/lists"
)

func TestChain(t *testing.T) {
	var a, b int
	h := lists.Chain[string](lists.Counting[string](&a), nil, lists.Counting[string](&b))
	h("x")
	h("y")
	if a != 2 || b != 2 {
		t.Logf("a = %d, b = %d", a, b)
		t.Error("expected both chained hooks to be called twice")
	}
}

func TestChainOfNothing(t *testing.T) {
	if h := lists.Chain[int](nil, nil); h != nil {
		t.Error("expected chain of nil hooks to be nil")
	}
}

func TestCompose(t *testing.T) {
	var seen []string
	h := lists.Compose[int, string](func(n int) string {
		return fmt.Sprintf("#%d", n)
	}, func(s string) {
		seen = append(seen, s)
	})
	h(7)
	if len(seen) != 1 || seen[0] != "#7" {
		t.Logf("seen = %v", seen)
		t.Error("expected composed hook to receive #7")
	}
	if lists.Compose[int, string](func(n int) string { return fmt.Sprint(n) }, nil) != nil {
		t.Error("expected composition with nil hook to be nil")
	}
}
