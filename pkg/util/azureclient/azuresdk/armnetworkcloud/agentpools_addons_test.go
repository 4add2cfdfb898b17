package armnetworkcloud

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	azureerrors "github.com/Azure/azps-go/pkg/util/azureclient/azuresdk/errors"
	testazure "github.com/Azure/azps-go/test/util/azure"
)

func TestList(t *testing.T) {
	ctx := context.Background()

	for _, tt := range []struct {
		name         string
		responses    []testazure.Response
		wantNames    []string
		wantStatus   int
		wantRequests int
	}{
		{
			name: "pages are accumulated in link order",
			responses: []testazure.Response{
				{
					StatusCode: http.StatusOK,
					Body:       `{"value":[{"name":"a"},{"name":"b"}],"nextLink":"https://management.azure.com/next?page=2"}`,
				},
				{
					StatusCode: http.StatusOK,
					Body:       `{"value":[{"name":"c"}],"nextLink":"https://management.azure.com/next?page=3"}`,
				},
				{
					StatusCode: http.StatusOK,
					Body:       `{"value":[{"name":"d"}]}`,
				},
			},
			wantNames:    []string{"a", "b", "c", "d"},
			wantRequests: 3,
		},
		{
			name: "empty",
			responses: []testazure.Response{
				{
					StatusCode: http.StatusOK,
					Body:       `{"value":[]}`,
				},
			},
			wantRequests: 1,
		},
		{
			name: "page fault aborts",
			responses: []testazure.Response{
				{
					StatusCode: http.StatusOK,
					Body:       `{"value":[{"name":"a"}],"nextLink":"https://management.azure.com/next?page=2"}`,
				},
				{
					StatusCode: http.StatusNotFound,
					Body:       `{"error":{"code":"ResourceNotFound","message":"gone"}}`,
				},
			},
			wantStatus:   http.StatusNotFound,
			wantRequests: 2,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			transporter := testazure.NewTransporter(tt.responses...)
			client, err := NewAgentPoolsClient("00000000-0000-0000-0000-000000000000", &testazure.Credential{}, testazure.ClientOptions(transporter))
			require.NoError(t, err)

			pools, err := client.List(ctx, "rg", "cluster", nil)
			if tt.wantStatus != 0 {
				require.Error(t, err)
				require.Equal(t, tt.wantStatus, azureerrors.StatusCode(err))
				require.Nil(t, pools)
			} else {
				require.NoError(t, err)

				var names []string
				for _, p := range pools {
					names = append(names, *p.Name)
				}
				require.Equal(t, tt.wantNames, names)
			}

			require.Len(t, transporter.Requests(), tt.wantRequests)
		})
	}
}
