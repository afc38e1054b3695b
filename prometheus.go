// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package frontroute

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"rivaas.dev/frontroute/requester"
)

// PrometheusRecorder records dispatch observability as Prometheus metrics:
// a dispatch counter labelled by method and outcome, a dispatch duration
// histogram labelled by method, and a routes-matched histogram.
//
// Example:
//
//	rec, err := frontroute.NewPrometheusRecorder(prometheus.DefaultRegisterer)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	app := frontroute.MustNew(frontroute.WithRecorder(rec))
type PrometheusRecorder struct {
	dispatches *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	matched    prometheus.Histogram
}

// promState carries the dispatch start time through the recorder contract's
// opaque state token.
type promState struct {
	start time.Time
}

// NewPrometheusRecorder creates the recorder and registers its collectors.
// A nil registerer uses prometheus.DefaultRegisterer.
func NewPrometheusRecorder(reg prometheus.Registerer) (*PrometheusRecorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	p := &PrometheusRecorder{
		dispatches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "frontroute",
			Name:      "dispatches_total",
			Help:      "Requests dispatched through the pipeline.",
		}, []string{"method", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "frontroute",
			Name:      "dispatch_duration_seconds",
			Help:      "Time from dispatch start to transport continuation.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
		matched: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "frontroute",
			Name:      "routes_matched",
			Help:      "Routes matched per dispatch.",
			Buckets:   []float64{0, 1, 2, 5, 10, 25},
		}),
	}

	for _, c := range []prometheus.Collector{p.dispatches, p.duration, p.matched} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("registering collector: %w", err)
		}
	}
	return p, nil
}

// DispatchStart implements DispatchRecorder.
func (p *PrometheusRecorder) DispatchStart(ctx context.Context, _ *requester.Request) (context.Context, any) {
	return ctx, &promState{start: time.Now()}
}

// RoutesMatched implements DispatchRecorder.
func (p *PrometheusRecorder) RoutesMatched(_ context.Context, _ any, _ *requester.Request, matched int) {
	p.matched.Observe(float64(matched))
}

// DispatchEnd implements DispatchRecorder.
func (p *PrometheusRecorder) DispatchEnd(_ context.Context, state any, req *requester.Request, _ *requester.Response, failed bool) {
	outcome := "success"
	if failed {
		outcome = "failure"
	}
	p.dispatches.WithLabelValues(req.Method, outcome).Inc()

	if st, ok := state.(*promState); ok {
		p.duration.WithLabelValues(req.Method).Observe(time.Since(st.start).Seconds())
	}
}
