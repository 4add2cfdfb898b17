package armnetworkcloud

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/stretchr/testify/require"

	networkcloud "github.com/Azure/azps-go/pkg/api/networkcloud/v20250201"
	testazure "github.com/Azure/azps-go/test/util/azure"
	utilerror "github.com/Azure/azps-go/test/util/error"
	testjson "github.com/Azure/azps-go/test/util/json"
)

const (
	subscriptionID = "00000000-0000-0000-0000-000000000000"
	clusterPath    = "https://management.azure.com/subscriptions/00000000-0000-0000-0000-000000000000/resourceGroups/rg/providers/Microsoft.NetworkCloud/kubernetesClusters/cluster/agentPools"
	agentPoolPath  = clusterPath + "/pool"
)

func newTestAgentPoolsClient(t *testing.T, responses ...testazure.Response) (*AgentPoolsClient, *testazure.Transporter) {
	t.Helper()

	transporter := testazure.NewTransporter(responses...)
	client, err := NewAgentPoolsClient(subscriptionID, &testazure.Credential{}, testazure.ClientOptions(transporter))
	require.NoError(t, err)

	return client, transporter
}

func TestAgentPoolsClientGet(t *testing.T) {
	ctx := context.Background()

	client, transporter := newTestAgentPoolsClient(t, testazure.Response{
		StatusCode: http.StatusOK,
		Body:       `{"name":"pool","properties":{"count":3,"mode":"User","vmSkuName":"NC_M16_v1","agentOptions":{"hugepagesCount":0,"hugepagesSize":"1G"}}}`,
	})

	resp, err := client.Get(ctx, "rg", "cluster", "pool", nil)
	require.NoError(t, err)

	require.Equal(t, "pool", *resp.Name)
	require.Equal(t, int64(3), *resp.Properties.Count)
	require.Equal(t, networkcloud.AgentPoolModeUser, *resp.Properties.Mode)
	require.Equal(t, int64(0), *resp.GetAgentOptions().HugepagesCount)
	require.Equal(t, networkcloud.HugepagesSize1G, *resp.GetAgentOptions().HugepagesSize)

	requests := transporter.Requests()
	require.Len(t, requests, 1)
	require.Equal(t, agentPoolPath+"?api-version=2025-02-01", requests[0].URL)
}

func TestAgentPoolsClientRejectsEmptyParameters(t *testing.T) {
	ctx := context.Background()

	for _, tt := range []struct {
		name                  string
		resourceGroupName     string
		kubernetesClusterName string
		agentPoolName         string
		wantErr               string
	}{
		{
			name:                  "resource group",
			kubernetesClusterName: "cluster",
			agentPoolName:         "pool",
			wantErr:               "parameter resourceGroupName cannot be empty",
		},
		{
			name:              "cluster",
			resourceGroupName: "rg",
			agentPoolName:     "pool",
			wantErr:           "parameter kubernetesClusterName cannot be empty",
		},
		{
			name:                  "agent pool",
			resourceGroupName:     "rg",
			kubernetesClusterName: "cluster",
			wantErr:               "parameter agentPoolName cannot be empty",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			client, transporter := newTestAgentPoolsClient(t)

			_, err := client.BeginDelete(ctx, tt.resourceGroupName, tt.kubernetesClusterName, tt.agentPoolName, nil)
			utilerror.AssertErrorMessage(t, err, tt.wantErr)

			require.Empty(t, transporter.Requests())
		})
	}
}

func TestAgentPoolsClientBeginCreateOrUpdate(t *testing.T) {
	ctx := context.Background()

	client, transporter := newTestAgentPoolsClient(t,
		testazure.Response{
			StatusCode: http.StatusCreated,
			Header: http.Header{
				"Azure-Asyncoperation": []string{"https://management.azure.com/operations/1"},
			},
			Body: `{"name":"pool","properties":{"provisioningState":"Accepted"}}`,
		},
		testazure.Response{
			StatusCode: http.StatusOK,
			Body:       `{"status":"Succeeded"}`,
		},
		testazure.Response{
			StatusCode: http.StatusOK,
			Body:       `{"name":"pool","properties":{"count":1,"provisioningState":"Succeeded"}}`,
		},
	)

	pool := networkcloud.AgentPool{
		Location: to.Ptr("eastus"),
		Properties: &networkcloud.AgentPoolProperties{
			Count:             to.Ptr(int64(1)),
			Mode:              to.Ptr(networkcloud.AgentPoolModeSystem),
			VMSKUName:         to.Ptr("NC_M16_v1"),
			ProvisioningState: to.Ptr(networkcloud.AgentPoolProvisioningStateSucceeded),
		},
	}

	poller, err := client.BeginCreateOrUpdate(ctx, "rg", "cluster", "pool", pool, nil)
	require.NoError(t, err)

	resp, err := poller.PollUntilDone(ctx, &runtime.PollUntilDoneOptions{Frequency: time.Millisecond})
	require.NoError(t, err)
	require.Equal(t, networkcloud.AgentPoolProvisioningStateSucceeded, *resp.Properties.ProvisioningState)

	requests := transporter.Requests()
	require.Len(t, requests, 3)
	require.Equal(t, http.MethodPut, requests[0].Method)
	testjson.AssertJsonMatches(t, []byte(`{"location":"eastus","properties":{"count":1,"mode":"System","vmSkuName":"NC_M16_v1"}}`), []byte(requests[0].Body))
	require.Equal(t, "https://management.azure.com/operations/1", requests[1].URL)
	require.Equal(t, agentPoolPath+"?api-version=2025-02-01", requests[2].URL)
}

func TestAgentPoolsClientBeginUpdateSendsPatchFieldsOnly(t *testing.T) {
	ctx := context.Background()

	client, transporter := newTestAgentPoolsClient(t, testazure.Response{
		StatusCode: http.StatusOK,
		Body:       `{"name":"pool","properties":{"count":5}}`,
	})

	patch := networkcloud.AgentPoolPatchParameters{}
	patch.SetCount(to.Ptr(int64(5)))

	poller, err := client.BeginUpdate(ctx, "rg", "cluster", "pool", patch, nil)
	require.NoError(t, err)

	resp, err := poller.PollUntilDone(ctx, nil)
	require.NoError(t, err)
	require.Equal(t, int64(5), *resp.Properties.Count)

	requests := transporter.Requests()
	require.Len(t, requests, 1)
	require.Equal(t, http.MethodPatch, requests[0].Method)
	testjson.AssertJsonMatches(t, []byte(`{"properties":{"count":5}}`), []byte(requests[0].Body))
}

func TestAgentPoolsClientBeginDelete(t *testing.T) {
	ctx := context.Background()

	client, transporter := newTestAgentPoolsClient(t, testazure.Response{
		StatusCode: http.StatusNoContent,
	})

	poller, err := client.BeginDelete(ctx, "rg", "cluster", "pool", nil)
	require.NoError(t, err)
	require.True(t, poller.Done())

	_, err = poller.PollUntilDone(ctx, nil)
	require.NoError(t, err)

	requests := transporter.Requests()
	require.Len(t, requests, 1)
	require.Equal(t, http.MethodDelete, requests[0].Method)
	require.Empty(t, requests[0].Body)
}

func TestAgentPoolsClientNewListByKubernetesClusterPager(t *testing.T) {
	ctx := context.Background()

	client, transporter := newTestAgentPoolsClient(t,
		testazure.Response{
			StatusCode: http.StatusOK,
			Body:       `{"value":[{"name":"a"}],"nextLink":"https://management.azure.com/next?page=2"}`,
		},
		testazure.Response{
			StatusCode: http.StatusOK,
			Body:       `{"value":[{"name":"b"}]}`,
		},
	)

	var names []string
	pager := client.NewListByKubernetesClusterPager("rg", "cluster", nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		require.NoError(t, err)
		for _, p := range page.Value {
			names = append(names, *p.Name)
		}
	}

	require.Equal(t, []string{"a", "b"}, names)

	requests := transporter.Requests()
	require.Len(t, requests, 2)
	require.Equal(t, clusterPath+"?api-version=2025-02-01", requests[0].URL)
}
