package armsiterecovery

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
)

// pathParameter is one {name} segment of a URL template.
type pathParameter struct {
	name  string
	value string
}

// expandPath substitutes each parameter into urlPath, rejecting empty values.
func expandPath(urlPath string, params ...pathParameter) (string, error) {
	for _, p := range params {
		if p.value == "" {
			return "", errors.New("parameter " + p.name + " cannot be empty")
		}
		urlPath = strings.ReplaceAll(urlPath, "{"+p.name+"}", url.PathEscape(p.value))
	}
	return urlPath, nil
}

func newRequest(ctx context.Context, internal *arm.Client, method string, urlPath string, body any) (*policy.Request, error) {
	req, err := runtime.NewRequest(ctx, method, runtime.JoinPaths(internal.Endpoint(), urlPath))
	if err != nil {
		return nil, err
	}
	reqQP := req.Raw().URL.Query()
	reqQP.Set("api-version", apiVersion)
	req.Raw().URL.RawQuery = reqQP.Encode()
	req.Raw().Header["Accept"] = []string{"application/json"}
	if body != nil {
		if err := runtime.MarshalAsJSON(req, body); err != nil {
			return nil, err
		}
	}
	return req, nil
}

// send issues one traced request and checks its status code.
func send(ctx context.Context, internal *arm.Client, operationName string, method string, urlPath string, body any, statusCodes ...int) (*http.Response, error) {
	var err error
	ctx = context.WithValue(ctx, runtime.CtxAPINameKey{}, operationName)
	ctx, endSpan := runtime.StartSpan(ctx, operationName, internal.Tracer(), nil)
	defer func() { endSpan(err) }()
	req, err := newRequest(ctx, internal, method, urlPath, body)
	if err != nil {
		return nil, err
	}
	httpResp, err := internal.Pipeline().Do(req)
	if err != nil {
		return nil, err
	}
	if !runtime.HasStatusCode(httpResp, statusCodes...) {
		err = runtime.NewResponseError(httpResp)
		return nil, err
	}
	return httpResp, nil
}

func newPoller[T any](internal *arm.Client, resp *http.Response) (*runtime.Poller[T], error) {
	return runtime.NewPoller(resp, internal.Pipeline(), &runtime.NewPollerOptions[T]{
		Tracer: internal.Tracer(),
	})
}

func resumePoller[T any](internal *arm.Client, resumeToken string) (*runtime.Poller[T], error) {
	return runtime.NewPollerFromResumeToken(resumeToken, internal.Pipeline(), &runtime.NewPollerFromResumeTokenOptions[T]{
		Tracer: internal.Tracer(),
	})
}
