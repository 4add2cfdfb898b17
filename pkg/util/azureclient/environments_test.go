package azureclient

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	utilerror "github.com/Azure/azps-go/test/util/error"
)

func TestEnvironmentFromName(t *testing.T) {
	for _, tt := range []struct {
		name      string
		wantCloud string
		wantErr   string
	}{
		{
			name:      "",
			wantCloud: "AzureCloud",
		},
		{
			name:      "AzurePublicCloud",
			wantCloud: "AzureCloud",
		},
		{
			name:      "azureusgovernmentcloud",
			wantCloud: "AzureUSGovernment",
		},
		{
			name:      "AzureChinaCloud",
			wantCloud: "AzureChinaCloud",
		},
		{
			name:    "AzureGermanCloud",
			wantErr: `cloud environment "AzureGermanCloud" is unsupported`,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			env, err := EnvironmentFromName(tt.name)
			utilerror.AssertErrorMessage(t, err, tt.wantErr)

			if env.ActualCloudName != tt.wantCloud {
				t.Error(env.ActualCloudName)
			}
			if err == nil && !strings.HasSuffix(env.ResourceManagerScope, "/.default") {
				t.Error(env.ResourceManagerScope)
			}
		})
	}
}

func TestChain(t *testing.T) {
	var order []string
	middleware := func(name string) Middleware {
		return func(next http.RoundTripper) http.RoundTripper {
			return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
				order = append(order, name)
				return next.RoundTrip(req)
			})
		}
	}

	base := RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
		order = append(order, "base")
		return &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(&bytes.Buffer{})}, nil
	})

	rt := Chain(base, middleware("inner"), middleware("outer"))

	req, err := http.NewRequest(http.MethodGet, "https://management.azure.com/", nil)
	if err != nil {
		t.Fatal(err)
	}

	_, err = rt.RoundTrip(req)
	if err != nil {
		t.Fatal(err)
	}

	if strings.Join(order, ",") != "outer,inner,base" {
		t.Error(order)
	}
}

func TestLoggingRoundTripper(t *testing.T) {
	logger, hook := test.NewNullLogger()

	base := RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode:    http.StatusAccepted,
			ContentLength: 2,
			Header:        http.Header{correlationIdHeader: []string{"corr"}},
			Body:          io.NopCloser(strings.NewReader("{}")),
		}, nil
	})

	rt := &loggingRoundTripper{next: base, log: logrus.NewEntry(logger)}

	req, err := http.NewRequest(http.MethodPost, "https://management.azure.com/subscriptions/sub/resourceGroups/rg/providers/Microsoft.RecoveryServices/vaults/vault/replicationFabrics/f", nil)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set(clientRequestIdHeader, "client-id")

	_, err = rt.RoundTrip(req)
	if err != nil {
		t.Fatal(err)
	}

	entries := hook.AllEntries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	if entries[0].Message != "HttpRequestStart" || entries[1].Message != "HttpRequestEnd" {
		t.Error(entries[0].Message, entries[1].Message)
	}

	end := entries[1].Data
	for k, want := range map[string]interface{}{
		"LOGKIND":            outboundRequests,
		"request_URL":        "management.azure.com",
		"resource_id":        "/subscriptions/sub/resourcegroups/rg/providers/microsoft.recoveryservices/vaults/vault",
		clientRequestIdField: "client-id",
		correlationIdField:   "corr",
		responseCode:         http.StatusAccepted,
		contentLength:        int64(2),
	} {
		if end[k] != want {
			t.Errorf("%s: got %v, want %v", k, end[k], want)
		}
	}
}
