package armlabservices

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/stretchr/testify/require"

	"github.com/Azure/azps-go/pkg/api/labservices"
	testazure "github.com/Azure/azps-go/test/util/azure"
	utilerror "github.com/Azure/azps-go/test/util/error"
	testjson "github.com/Azure/azps-go/test/util/json"
)

const (
	subscriptionID = "00000000-0000-0000-0000-000000000000"
	userPath       = "https://management.azure.com/subscriptions/00000000-0000-0000-0000-000000000000/resourceGroups/rg/providers/Microsoft.LabServices/labs/lab/users/user"
)

func newTestUsersClient(t *testing.T, responses ...testazure.Response) (*UsersClient, *testazure.Transporter) {
	t.Helper()

	transporter := testazure.NewTransporter(responses...)
	client, err := NewUsersClient(subscriptionID, &testazure.Credential{}, testazure.ClientOptions(transporter))
	require.NoError(t, err)

	return client, transporter
}

func TestUsersClientGet(t *testing.T) {
	ctx := context.Background()

	client, transporter := newTestUsersClient(t, testazure.Response{
		StatusCode: http.StatusOK,
		Body:       `{"name":"user","properties":{"email":"user@example.com","additionalUsageQuota":"PT2H"}}`,
	})

	resp, err := client.Get(ctx, "rg", "lab", "user", nil)
	require.NoError(t, err)

	require.Equal(t, "user", *resp.Name)
	require.Equal(t, "user@example.com", *resp.GetEmail())
	require.Equal(t, 2*time.Hour, *resp.GetAdditionalUsageQuota())

	requests := transporter.Requests()
	require.Len(t, requests, 1)
	require.Equal(t, http.MethodGet, requests[0].Method)
	require.Equal(t, userPath+"?api-version=2022-08-01", requests[0].URL)
	require.Equal(t, "Bearer token", requests[0].Header.Get("Authorization"))
}

func TestUsersClientGetRejectsEmptyParameters(t *testing.T) {
	ctx := context.Background()

	for _, tt := range []struct {
		name              string
		resourceGroupName string
		labName           string
		userName          string
		wantErr           string
	}{
		{
			name:     "resource group",
			labName:  "lab",
			userName: "user",
			wantErr:  "parameter resourceGroupName cannot be empty",
		},
		{
			name:              "lab",
			resourceGroupName: "rg",
			userName:          "user",
			wantErr:           "parameter labName cannot be empty",
		},
		{
			name:              "user",
			resourceGroupName: "rg",
			labName:           "lab",
			wantErr:           "parameter userName cannot be empty",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			client, transporter := newTestUsersClient(t)

			_, err := client.Get(ctx, tt.resourceGroupName, tt.labName, tt.userName, nil)
			utilerror.AssertErrorMessage(t, err, tt.wantErr)

			require.Empty(t, transporter.Requests())
		})
	}
}

func TestUsersClientGetNotFound(t *testing.T) {
	ctx := context.Background()

	client, _ := newTestUsersClient(t, testazure.Response{
		StatusCode: http.StatusNotFound,
		Body:       `{"error":{"code":"ResourceNotFound","message":"not found"}}`,
	})

	_, err := client.Get(ctx, "rg", "lab", "user", nil)

	var responseError *azcore.ResponseError
	require.True(t, errors.As(err, &responseError))
	require.Equal(t, http.StatusNotFound, responseError.StatusCode)
	require.Equal(t, "ResourceNotFound", responseError.ErrorCode)
}

func TestUsersClientBeginUpdate(t *testing.T) {
	ctx := context.Background()

	client, transporter := newTestUsersClient(t, testazure.Response{
		StatusCode: http.StatusOK,
		Body:       `{"name":"user","properties":{"additionalUsageQuota":"PT4H","provisioningState":"Succeeded"}}`,
	})

	body := labservices.UserUpdate{}
	body.SetAdditionalUsageQuota(to.Ptr(4 * time.Hour))

	poller, err := client.BeginUpdate(ctx, "rg", "lab", "user", body, nil)
	require.NoError(t, err)
	require.True(t, poller.Done())

	resp, err := poller.PollUntilDone(ctx, nil)
	require.NoError(t, err)
	require.Equal(t, 4*time.Hour, *resp.GetAdditionalUsageQuota())

	requests := transporter.Requests()
	require.Len(t, requests, 1)
	require.Equal(t, http.MethodPatch, requests[0].Method)
	testjson.AssertJsonMatches(t, []byte(`{"properties":{"additionalUsageQuota":"PT4H"}}`), []byte(requests[0].Body))
}

func TestUsersClientBeginCreateOrUpdateOmitsReadOnlyFields(t *testing.T) {
	ctx := context.Background()

	client, transporter := newTestUsersClient(t, testazure.Response{
		StatusCode: http.StatusOK,
		Body:       `{"name":"user"}`,
	})

	_, err := client.BeginCreateOrUpdate(ctx, "rg", "lab", "user", labservices.User{
		Name: to.Ptr("user"),
		Properties: &labservices.UserProperties{
			Email:             to.Ptr("user@example.com"),
			ProvisioningState: to.Ptr(labservices.ProvisioningStateSucceeded),
		},
	}, nil)
	require.NoError(t, err)

	requests := transporter.Requests()
	require.Len(t, requests, 1)
	require.Equal(t, http.MethodPut, requests[0].Method)
	testjson.AssertJsonMatches(t, []byte(`{"properties":{"email":"user@example.com"}}`), []byte(requests[0].Body))
}

func TestUsersClientBeginInvite(t *testing.T) {
	ctx := context.Background()

	client, transporter := newTestUsersClient(t,
		testazure.Response{
			StatusCode: http.StatusAccepted,
			Header: http.Header{
				"Location": []string{"https://management.azure.com/operations/1"},
			},
		},
		testazure.Response{
			StatusCode: http.StatusOK,
		},
	)

	poller, err := client.BeginInvite(ctx, "rg", "lab", "user", labservices.InviteBody{Text: to.Ptr("welcome")}, nil)
	require.NoError(t, err)
	require.False(t, poller.Done())

	_, err = poller.PollUntilDone(ctx, &runtime.PollUntilDoneOptions{Frequency: time.Millisecond})
	require.NoError(t, err)

	requests := transporter.Requests()
	require.Len(t, requests, 2)
	require.Equal(t, http.MethodPost, requests[0].Method)
	require.Equal(t, userPath+"/invite?api-version=2022-08-01", requests[0].URL)
	require.Equal(t, `{"text":"welcome"}`, requests[0].Body)
	require.Equal(t, "https://management.azure.com/operations/1", requests[1].URL)
}

func TestUsersClientNewListByLabPager(t *testing.T) {
	ctx := context.Background()

	client, transporter := newTestUsersClient(t,
		testazure.Response{
			StatusCode: http.StatusOK,
			Body:       `{"value":[{"name":"a"},{"name":"b"}],"nextLink":"https://management.azure.com/next?page=2"}`,
		},
		testazure.Response{
			StatusCode: http.StatusOK,
			Body:       `{"value":[{"name":"c"}]}`,
		},
	)

	var names []string
	pager := client.NewListByLabPager("rg", "lab", nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		require.NoError(t, err)
		for _, u := range page.Value {
			names = append(names, *u.Name)
		}
	}

	require.Equal(t, []string{"a", "b", "c"}, names)

	requests := transporter.Requests()
	require.Len(t, requests, 2)
	require.Equal(t, "https://management.azure.com/subscriptions/00000000-0000-0000-0000-000000000000/resourceGroups/rg/providers/Microsoft.LabServices/labs/lab/users?api-version=2022-08-01", requests[0].URL)
	require.Equal(t, "https://management.azure.com/next?page=2", requests[1].URL)
}
