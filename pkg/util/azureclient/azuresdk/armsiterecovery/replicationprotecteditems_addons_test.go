package armsiterecovery

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Azure/azps-go/pkg/sdk/armsiterecovery"
	testazure "github.com/Azure/azps-go/test/util/azure"
)

func TestStartAddDisks(t *testing.T) {
	ctx := context.Background()

	for _, tt := range []struct {
		name            string
		response        testazure.Response
		wantResumeToken bool
	}{
		{
			name: "accepted",
			response: testazure.Response{
				StatusCode: http.StatusAccepted,
				Header: http.Header{
					"Azure-Asyncoperation": []string{"https://management.azure.com/operations/1"},
					"Location":             []string{"https://management.azure.com/operationResults/1"},
					"Retry-After":          []string{"30"},
				},
			},
			wantResumeToken: true,
		},
		{
			name: "completed synchronously",
			response: testazure.Response{
				StatusCode: http.StatusOK,
				Body:       `{"name":"item"}`,
			},
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			transporter := testazure.NewTransporter(tt.response)
			client, err := NewReplicationProtectedItemsClient("00000000-0000-0000-0000-000000000000", &testazure.Credential{}, testazure.ClientOptions(transporter))
			require.NoError(t, err)

			op, err := client.StartAddDisks(ctx, "vault", "rg", "fabric", "container", "item", armsiterecovery.AddDisksInput{}, nil)
			require.NoError(t, err)

			require.NotNil(t, op.Response)
			require.Equal(t, tt.response.StatusCode, op.Response.StatusCode)
			require.Equal(t, tt.wantResumeToken, op.ResumeToken != "")
			require.Len(t, transporter.Requests(), 1)
		})
	}
}

func TestStartSwitchProtectionFailure(t *testing.T) {
	ctx := context.Background()

	transporter := testazure.NewTransporter(testazure.Response{
		StatusCode: http.StatusConflict,
		Body:       `{"error":{"code":"Conflict","message":"busy"}}`,
	})
	client, err := NewReplicationProtectionContainersClient("00000000-0000-0000-0000-000000000000", &testazure.Credential{}, testazure.ClientOptions(transporter))
	require.NoError(t, err)

	op, err := client.StartSwitchProtection(ctx, "vault", "rg", "fabric", "container", armsiterecovery.SwitchProtectionInput{}, nil)
	require.Error(t, err)
	require.Nil(t, op)
}
