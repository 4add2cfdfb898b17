package azure

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
)

// Response is a canned response returned by Transporter.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       string
}

// Request records a request received by Transporter.
type Request struct {
	Method string
	URL    string
	Header http.Header
	Body   string
}

// Transporter is a policy.Transporter which returns canned responses in
// order and records every request it receives.
type Transporter struct {
	mu        sync.Mutex
	responses []Response
	requests  []Request
}

var _ policy.Transporter = &Transporter{}

// NewTransporter returns a Transporter which will return responses in order.
func NewTransporter(responses ...Response) *Transporter {
	return &Transporter{responses: responses}
}

func (t *Transporter) Do(req *http.Request) (*http.Response, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var body []byte
	if req.Body != nil {
		var err error
		body, err = io.ReadAll(req.Body)
		if err != nil {
			return nil, err
		}
	}

	t.requests = append(t.requests, Request{
		Method: req.Method,
		URL:    req.URL.String(),
		Header: req.Header.Clone(),
		Body:   string(body),
	})

	if len(t.responses) == 0 {
		return nil, fmt.Errorf("unexpected request %s %s", req.Method, req.URL)
	}

	r := t.responses[0]
	t.responses = t.responses[1:]

	header := r.Header
	if header == nil {
		header = http.Header{}
	}
	if r.Body != "" && header.Get("Content-Type") == "" {
		header.Set("Content-Type", "application/json")
	}

	return &http.Response{
		StatusCode:    r.StatusCode,
		Status:        http.StatusText(r.StatusCode),
		Header:        header,
		Body:          io.NopCloser(bytes.NewBufferString(r.Body)),
		ContentLength: int64(len(r.Body)),
		Request:       req,
	}, nil
}

// Requests returns the requests received so far.
func (t *Transporter) Requests() []Request {
	t.mu.Lock()
	defer t.mu.Unlock()

	return append([]Request(nil), t.requests...)
}

// Credential is an azcore.TokenCredential which returns a fixed token.
type Credential struct{}

func (*Credential) GetToken(ctx context.Context, options policy.TokenRequestOptions) (azcore.AccessToken, error) {
	return azcore.AccessToken{
		Token:     "token",
		ExpiresOn: time.Now().Add(time.Hour),
	}, nil
}

// ClientOptions returns options which route every request of an ARM client
// to t without retries.
func ClientOptions(t *Transporter) *arm.ClientOptions {
	return &arm.ClientOptions{
		ClientOptions: azcore.ClientOptions{
			Transport: t,
			Retry: policy.RetryOptions{
				MaxRetries: -1,
			},
		},
		DisableRPRegistration: true,
	}
}
