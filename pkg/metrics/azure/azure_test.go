package azure

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/Azure/azps-go/pkg/util/azureclient"
	mock_metrics "github.com/Azure/azps-go/pkg/util/mocks/metrics"
)

func TestTracer(t *testing.T) {
	controller := gomock.NewController(t)
	defer controller.Finish()

	m := mock_metrics.NewMockEmitter(controller)

	dims := map[string]string{
		"client": "test",
		"code":   "401",
	}

	m.EXPECT().EmitGauge("client.azure.duration", int64(1500), dims)
	m.EXPECT().EmitGauge("client.azure.count", int64(1), dims)
	m.EXPECT().EmitGauge("client.azure.errors", int64(1), dims)

	now := time.Unix(0, 0)
	tr := &tracer{
		m: m,
		now: func() time.Time {
			now = now.Add(1500 * time.Millisecond)
			return now
		},
	}

	ctx := tr.StartSpan(context.Background(), "test")
	tr.EndSpan(ctx, http.StatusUnauthorized, errors.New("authorization failed"))
}

func TestTracerWithoutSpan(t *testing.T) {
	controller := gomock.NewController(t)
	defer controller.Finish()

	m := mock_metrics.NewMockEmitter(controller)

	New(m).EndSpan(context.Background(), http.StatusOK, nil)
}

func TestMiddleware(t *testing.T) {
	for _, tt := range []struct {
		name       string
		statusCode int
		wantErrors bool
	}{
		{
			name:       "success",
			statusCode: http.StatusOK,
		},
		{
			name:       "not found",
			statusCode: http.StatusNotFound,
			wantErrors: true,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			controller := gomock.NewController(t)
			defer controller.Finish()

			m := mock_metrics.NewMockEmitter(controller)

			dims := map[string]string{
				"client": "labservices",
				"code":   strconv.Itoa(tt.statusCode),
			}

			m.EXPECT().EmitGauge("client.azure.duration", gomock.Any(), dims)
			m.EXPECT().EmitGauge("client.azure.count", int64(1), dims)
			if tt.wantErrors {
				m.EXPECT().EmitGauge("client.azure.errors", int64(1), dims)
			}

			rt := azureclient.Chain(azureclient.RoundTripperFunc(func(*http.Request) (*http.Response, error) {
				return &http.Response{StatusCode: tt.statusCode}, nil
			}), NewMiddleware(m, "labservices"))

			req, err := http.NewRequest(http.MethodGet, "https://management.azure.com/", nil)
			if err != nil {
				t.Fatal(err)
			}

			resp, err := rt.RoundTrip(req)
			if err != nil {
				t.Fatal(err)
			}
			if resp.StatusCode != tt.statusCode {
				t.Error(resp.StatusCode)
			}
		})
	}
}
