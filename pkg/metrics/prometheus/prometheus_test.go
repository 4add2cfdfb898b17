package prometheus

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"

	testlog "github.com/Azure/azps-go/test/util/log"
)

func TestEmitter(t *testing.T) {
	_, log := testlog.NewCapturingLogger()

	e, err := New(log, "azps")
	if err != nil {
		t.Fatal(err)
	}

	dims := map[string]string{"client": "test", "code": "200"}

	e.EmitGauge("client.azure.count", 1, dims)
	e.EmitGauge("client.azure.count", 1, dims)
	e.EmitFloat("operation.progress", 0.5, map[string]string{"operation": "reprotect"})

	expected := `
# HELP azps_client_azure_count client.azure.count
# TYPE azps_client_azure_count counter
azps_client_azure_count{client="test",code="200"} 2
# HELP azps_operation_progress operation.progress
# TYPE azps_operation_progress gauge
azps_operation_progress{operation="reprotect"} 0.5
`

	err = testutil.GatherAndCompare(e.Registry(), strings.NewReader(expected), "azps_client_azure_count", "azps_operation_progress")
	if err != nil {
		t.Error(err)
	}
}

func TestEmitterMismatchedDimensions(t *testing.T) {
	h, log := testlog.NewCapturingLogger()

	e, err := New(log, "azps")
	if err != nil {
		t.Fatal(err)
	}

	e.EmitGauge("client.azure.count", 1, map[string]string{"client": "test"})
	e.EmitGauge("client.azure.count", 1, map[string]string{"other": "test"})

	if len(h.AllEntries()) != 1 || h.LastEntry().Level != logrus.ErrorLevel {
		t.Errorf("expected one error to be logged, got %d entries", len(h.AllEntries()))
	}
}

func TestPush(t *testing.T) {
	var method, path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	_, log := testlog.NewCapturingLogger()

	e, err := New(log, "azps")
	if err != nil {
		t.Fatal(err)
	}

	e.EmitGauge("client.azure.count", 1, map[string]string{"client": "test"})

	err = e.Push(context.Background(), server.URL, "azps")
	if err != nil {
		t.Fatal(err)
	}

	if method != http.MethodPut {
		t.Error(method)
	}
	if path != "/metrics/job/azps" {
		t.Error(path)
	}
}
