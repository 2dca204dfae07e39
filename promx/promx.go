/*
   Copyright 2025 The TYL Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package promx exposes error counters for Prometheus, labeled by kind,
// category and retriability so dashboards can separate transient noise from
// real failures.
package promx

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	tylerrors "github.com/the-yaml-life/tyl-errors"
)

// Observer counts observed errors. One Observer typically lives for the
// whole process and is registered once.
type Observer struct {
	errors *prometheus.CounterVec
}

// NewObserver creates an Observer with the standard label set. namespace may
// be empty; it prefixes the metric name the usual Prometheus way.
func NewObserver(namespace string) *Observer {
	return &Observer{
		errors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "tyl_errors_total",
				Help:      "Errors observed, by kind, category and retriability.",
			},
			[]string{"kind", "category", "retriable"},
		),
	}
}

// Observe counts one error occurrence. Nil errors are ignored, so call sites
// can feed every return value through without a gate.
func (o *Observer) Observe(e *tylerrors.Error) {
	if e == nil {
		return
	}
	o.errors.WithLabelValues(
		e.ErrorKind(),
		e.ErrorCategory(),
		strconv.FormatBool(e.Retriable()),
	).Inc()
}

// Describe implements prometheus.Collector.
func (o *Observer) Describe(ch chan<- *prometheus.Desc) {
	o.errors.Describe(ch)
}

// Collect implements prometheus.Collector.
func (o *Observer) Collect(ch chan<- prometheus.Metric) {
	o.errors.Collect(ch)
}
