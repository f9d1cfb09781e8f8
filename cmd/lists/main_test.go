package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/lists/listmetrics"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExerciseReleasesRemainder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lists.cmd")
	defer teardown()
	//
	rel, err := listmetrics.NewReleases(prometheus.NewRegistry(), "test")
	require.NoError(t, err)
	for _, v := range []string{"stack", "queue", "deque"} {
		r, err := exercise(context.Background(), v, 1001, rel)
		require.NoError(t, err, v)
		assert.Equal(t, 500, r.Popped, v)
		assert.Equal(t, 501, r.Released, v)
	}
	// the persistent list releases the nodes it takes the tail of
	r, err := exercise(context.Background(), "persistent", 1001, rel)
	require.NoError(t, err)
	assert.Equal(t, 500, r.Popped)
	assert.Equal(t, 1001, r.Released)
}

func TestExerciseUnknownVariant(t *testing.T) {
	_, err := runExercise(context.Background(), []string{"stack", "heap"}, 10)
	assert.True(t, errors.Is(err, ErrUnknownVariant))
	_, err = runExercise(context.Background(), []string{"stack"}, -1)
	assert.Error(t, err)
}

func TestExerciseCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := runExercise(ctx, []string{"queue"}, 10)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestExerciseCommand(t *testing.T) {
	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetArgs([]string{"exercise", "-n", "2000", "--variant", "stack,persistent"})
	require.NoError(t, cmd.Execute())
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "stack"))
	assert.Contains(t, lines[0], "2,000 elements, 1,000 popped, 1,000 released")
	assert.True(t, strings.HasPrefix(lines[1], "persistent"))
	assert.Contains(t, lines[1], "2,000 released")
}

func TestForestCommand(t *testing.T) {
	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetArgs([]string{"forest"})
	require.NoError(t, cmd.Execute())
	t.Logf("forest =\n%s", out.String())
	assert.Contains(t, out.String(), "◀ base")
	assert.Contains(t, out.String(), "z (refs=1) ◀ z")
}

func TestBadTraceLevel(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--trace", "loud", "forest"})
	assert.Error(t, cmd.Execute())
}
