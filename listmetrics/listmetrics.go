/*
Package listmetrics provides release hooks which report node teardown to Prometheus
and to the tracing system.

	rel, err := listmetrics.NewReleases(prometheus.DefaultRegisterer, "lists")
	…
	s := stack.New(stack.WithReleaseHook(listmetrics.Hook[int](rel, "stack")))

This replaces printing diagnostics on teardown with an observable counter
`<namespace>_released_nodes_total{container="…"}`.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package listmetrics

import (
	"errors"

	"github.com/npillmayer/lists"
	"github.com/npillmayer/schuko/tracing"
	"github.com/prometheus/client_golang/prometheus"
)

// tracer traces with key 'lists.metrics'.
func tracer() tracing.Trace {
	return tracing.Select("lists.metrics")
}

// Releases counts released nodes per container label.
type Releases struct {
	released *prometheus.CounterVec
}

// NewReleases creates a release counter and registers it with reg.
// If an identical collector is already registered, the existing one is re-used.
func NewReleases(reg prometheus.Registerer, namespace string) (*Releases, error) {
	cv := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "released_nodes_total",
		Help:      "Number of list nodes released by container teardown.",
	}, []string{"container"})
	if err := reg.Register(cv); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return nil, err
		}
		existing, ok := are.ExistingCollector.(*prometheus.CounterVec)
		if !ok {
			return nil, err
		}
		cv = existing
	}
	return &Releases{released: cv}, nil
}

// Counter returns the counter for a container label.
func (r *Releases) Counter(container string) prometheus.Counter {
	return r.released.WithLabelValues(container)
}

// Hook returns a release hook incrementing the counter for container.
func Hook[T any](r *Releases, container string) lists.Hook[T] {
	c := r.Counter(container)
	return func(T) {
		c.Inc()
	}
}

// Traced returns a release hook which traces every released element at debug level.
func Traced[T any](container string) lists.Hook[T] {
	return func(x T) {
		tracer().Debugf("%s: released node %v", container, x)
	}
}
