package azure

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/Azure/go-autorest/tracing"

	"github.com/Azure/azps-go/pkg/metrics"
	"github.com/Azure/azps-go/pkg/util/azureclient"
)

type contextKey int

const contextKeySpan contextKey = iota

type span struct {
	client string
	start  time.Time
}

type tracer struct {
	m   metrics.Emitter
	now func() time.Time
}

// New returns a go-autorest tracer which emits a duration, count and error
// metric for every management API call made through a track1 client.
func New(m metrics.Emitter) tracing.Tracer {
	return &tracer{
		m:   m,
		now: time.Now,
	}
}

func (t *tracer) NewTransport(base *http.Transport) http.RoundTripper {
	return base
}

func (t *tracer) StartSpan(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, contextKeySpan, &span{
		client: name,
		start:  t.now(),
	})
}

func (t *tracer) EndSpan(ctx context.Context, httpStatusCode int, err error) {
	s, ok := ctx.Value(contextKeySpan).(*span)
	if !ok {
		return
	}

	emit(t.m, s.client, httpStatusCode, t.now().Sub(s.start), err != nil)
}

// NewMiddleware returns an azureclient.Middleware emitting the same metrics
// as the tracer for clients built on azcore.
func NewMiddleware(m metrics.Emitter, client string) azureclient.Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return azureclient.RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			start := time.Now()

			resp, err := next.RoundTrip(req)

			var statusCode int
			if resp != nil {
				statusCode = resp.StatusCode
			}

			emit(m, client, statusCode, time.Since(start), err != nil || statusCode >= http.StatusBadRequest)

			return resp, err
		})
	}
}

func emit(m metrics.Emitter, client string, statusCode int, duration time.Duration, failed bool) {
	dims := map[string]string{
		"client": client,
		"code":   strconv.Itoa(statusCode),
	}

	m.EmitGauge("client.azure.duration", duration.Milliseconds(), dims)
	m.EmitGauge("client.azure.count", 1, dims)

	if failed {
		m.EmitGauge("client.azure.errors", 1, dims)
	}
}
