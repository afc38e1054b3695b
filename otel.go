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

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"rivaas.dev/frontroute/requester"
)

// instrumentationName is the OpenTelemetry instrumentation scope.
const instrumentationName = "rivaas.dev/frontroute"

// OTelRecorder records dispatch observability through OpenTelemetry: one
// client span per dispatch plus dispatch/failure counters and a
// routes-matched histogram. It uses the globally registered tracer and meter
// providers.
//
// Example:
//
//	rec, err := frontroute.NewOTelRecorder()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	app := frontroute.MustNew(frontroute.WithRecorder(rec))
type OTelRecorder struct {
	tracer     trace.Tracer
	dispatches metric.Int64Counter
	failures   metric.Int64Counter
	matched    metric.Int64Histogram
}

// NewOTelRecorder creates the recorder and registers its instruments with
// the global meter provider.
func NewOTelRecorder() (*OTelRecorder, error) {
	meter := otel.Meter(instrumentationName)

	dispatches, err := meter.Int64Counter("frontroute.dispatches",
		metric.WithDescription("Requests dispatched through the pipeline"))
	if err != nil {
		return nil, fmt.Errorf("creating dispatch counter: %w", err)
	}
	failures, err := meter.Int64Counter("frontroute.dispatch.failures",
		metric.WithDescription("Dispatches whose transport reported failure"))
	if err != nil {
		return nil, fmt.Errorf("creating failure counter: %w", err)
	}
	matched, err := meter.Int64Histogram("frontroute.routes.matched",
		metric.WithDescription("Routes matched per dispatch"))
	if err != nil {
		return nil, fmt.Errorf("creating matched histogram: %w", err)
	}

	return &OTelRecorder{
		tracer:     otel.Tracer(instrumentationName),
		dispatches: dispatches,
		failures:   failures,
		matched:    matched,
	}, nil
}

// DispatchStart implements DispatchRecorder: it opens a client span for the
// dispatch and counts it.
func (o *OTelRecorder) DispatchStart(ctx context.Context, req *requester.Request) (context.Context, any) {
	ctx, span := o.tracer.Start(ctx, "frontroute.dispatch",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", req.Method),
			attribute.String("url.full", req.URI),
			attribute.String("frontroute.request.id", req.ID),
		))
	o.dispatches.Add(ctx, 1, metric.WithAttributes(
		attribute.String("http.request.method", req.Method)))
	return ctx, span
}

// RoutesMatched implements DispatchRecorder.
func (o *OTelRecorder) RoutesMatched(ctx context.Context, state any, _ *requester.Request, matched int) {
	if span, ok := state.(trace.Span); ok {
		span.SetAttributes(attribute.Int("frontroute.routes.matched", matched))
	}
	o.matched.Record(ctx, int64(matched))
}

// DispatchEnd implements DispatchRecorder: it closes the span with the
// transport outcome.
func (o *OTelRecorder) DispatchEnd(ctx context.Context, state any, req *requester.Request, res *requester.Response, failed bool) {
	span, ok := state.(trace.Span)
	if !ok {
		return
	}
	if res != nil {
		span.SetAttributes(attribute.Int("http.response.status_code", res.Status))
	}
	if failed {
		msg := ""
		if res != nil {
			msg = res.Errors
		}
		span.SetStatus(codes.Error, msg)
		o.failures.Add(ctx, 1, metric.WithAttributes(
			attribute.String("http.request.method", req.Method)))
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
