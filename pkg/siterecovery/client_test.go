package siterecovery

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/stretchr/testify/require"

	sdksiterecovery "github.com/Azure/azps-go/pkg/sdk/armsiterecovery"
	"github.com/Azure/azps-go/pkg/util/azureclient/azuresdk/armsiterecovery"
	testazure "github.com/Azure/azps-go/test/util/azure"
	testlog "github.com/Azure/azps-go/test/util/log"
)

func TestClientRequestIDIsSent(t *testing.T) {
	ctx := context.Background()

	transporter := testazure.NewTransporter(testazure.Response{
		StatusCode: http.StatusAccepted,
		Header: http.Header{
			"Azure-Asyncoperation": []string{"https://management.azure.com/operations/1"},
		},
	})

	items, err := armsiterecovery.NewReplicationProtectedItemsClient("00000000-0000-0000-0000-000000000000", &testazure.Credential{}, testazure.ClientOptions(transporter))
	require.NoError(t, err)

	_, log := testlog.NewCapturingLogger()
	c := newTestClient(log, items, nil)

	op, err := c.StartTestFailoverCleanup(ctx, "fabric", "container", "item", sdksiterecovery.TestFailoverCleanupInput{
		Properties: &sdksiterecovery.TestFailoverCleanupInputProperties{
			Comments: to.Ptr("done"),
		},
	})
	require.NoError(t, err)

	requests := transporter.Requests()
	require.Len(t, requests, 1)
	require.Equal(t, http.MethodPost, requests[0].Method)
	require.True(t, strings.HasSuffix(strings.SplitN(requests[0].URL, "?", 2)[0], "/replicationProtectedItems/item/testFailoverCleanup"))
	require.Equal(t, wantClientRequestID, requests[0].Header.Get("x-ms-client-request-id"))

	require.Equal(t, wantClientRequestID, op.ClientRequestID)
	require.Equal(t, "Accepted", op.Status)
	require.Equal(t, "https://management.azure.com/operations/1", op.AsyncOperation)
	require.NotEmpty(t, op.ResumeToken)
	require.Equal(t, `{"properties":{"comments":"done"}}`, requests[0].Body)
}
