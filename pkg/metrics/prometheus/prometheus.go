package prometheus

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/push"
	"github.com/sirupsen/logrus"

	"github.com/Azure/azps-go/pkg/metrics"
)

var nameReplacer = strings.NewReplacer(".", "_", "-", "_")

// Emitter records metrics in a prometheus registry. Float values are kept as
// gauges; integer values are accumulated into counters, which is how the
// duration and count metrics of a short-lived command add up.
type Emitter struct {
	log       *logrus.Entry
	namespace string
	registry  *prometheus.Registry

	mu       sync.Mutex
	gauges   map[string]*prometheus.GaugeVec
	counters map[string]*prometheus.CounterVec
}

var _ metrics.Emitter = &Emitter{}

// New returns an Emitter whose registry also carries the standard process and
// Go runtime collectors.
func New(log *logrus.Entry, namespace string) (*Emitter, error) {
	e := &Emitter{
		log:       log,
		namespace: namespace,
		registry:  prometheus.NewRegistry(),

		gauges:   map[string]*prometheus.GaugeVec{},
		counters: map[string]*prometheus.CounterVec{},
	}

	if err := e.registry.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		return nil, err
	}

	if err := e.registry.Register(collectors.NewGoCollector()); err != nil {
		return nil, err
	}

	return e, nil
}

func (e *Emitter) Registry() *prometheus.Registry {
	return e.registry
}

// EmitFloat records float information
func (e *Emitter) EmitFloat(m string, value float64, dims map[string]string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	vec, found := e.gauges[m]
	if !found {
		vec = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: e.namespace,
			Name:      nameReplacer.Replace(m),
			Help:      m,
		}, labelNames(dims))

		if err := e.registry.Register(vec); err != nil {
			e.log.Error(err)
			return
		}
		e.gauges[m] = vec
	}

	gauge, err := vec.GetMetricWith(prometheus.Labels(dims))
	if err != nil {
		e.log.Error(err)
		return
	}

	gauge.Set(value)
}

// EmitGauge records gauge information
func (e *Emitter) EmitGauge(m string, value int64, dims map[string]string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	vec, found := e.counters[m]
	if !found {
		vec = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: e.namespace,
			Name:      nameReplacer.Replace(m),
			Help:      m,
		}, labelNames(dims))

		if err := e.registry.Register(vec); err != nil {
			e.log.Error(err)
			return
		}
		e.counters[m] = vec
	}

	counter, err := vec.GetMetricWith(prometheus.Labels(dims))
	if err != nil {
		e.log.Error(err)
		return
	}

	counter.Add(float64(value))
}

// Push sends everything gathered so far to a Pushgateway.
func (e *Emitter) Push(ctx context.Context, url, job string) error {
	e.log.Debugf("pushing metrics to %s", url)

	return push.New(url, job).Gatherer(e.registry).PushContext(ctx)
}

func labelNames(dims map[string]string) []string {
	names := make([]string, 0, len(dims))
	for k := range dims {
		names = append(names, k)
	}
	sort.Strings(names)

	return names
}
