package armsiterecovery

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
)

// Operation is the initial response of a long running operation, together
// with the token its poller can later be resumed from. ResumeToken is empty
// when the service completed the operation synchronously.
type Operation struct {
	Response    *http.Response
	ResumeToken string
}

// start issues the first request of a long running operation and returns
// without polling.
func start[T any](ctx context.Context, begin func(context.Context) (*runtime.Poller[T], error)) (*Operation, error) {
	var rawResponse *http.Response
	poller, err := begin(policy.WithCaptureResponse(ctx, &rawResponse))
	if err != nil {
		return nil, err
	}

	op := &Operation{Response: rawResponse}
	if !poller.Done() {
		op.ResumeToken, err = poller.ResumeToken()
		if err != nil {
			return nil, err
		}
	}
	return op, nil
}
