package armnetworkcloud

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"

	networkcloud "github.com/Azure/azps-go/pkg/api/networkcloud/v20250201"
	"github.com/Azure/azps-go/pkg/sdk/armnetworkcloud"
)

// AgentPoolsClientAddons contains addons for AgentPoolsClient
type AgentPoolsClientAddons interface {
	CreateOrUpdateAndWait(ctx context.Context, resourceGroupName string, kubernetesClusterName string, agentPoolName string, parameters networkcloud.AgentPool, options *armnetworkcloud.AgentPoolsClientBeginCreateOrUpdateOptions) (*networkcloud.AgentPool, error)
	UpdateAndWait(ctx context.Context, resourceGroupName string, kubernetesClusterName string, agentPoolName string, parameters networkcloud.AgentPoolPatchParameters, options *armnetworkcloud.AgentPoolsClientBeginUpdateOptions) (*networkcloud.AgentPool, error)
	DeleteAndWait(ctx context.Context, resourceGroupName string, kubernetesClusterName string, agentPoolName string, options *armnetworkcloud.AgentPoolsClientBeginDeleteOptions) error
	List(ctx context.Context, resourceGroupName string, kubernetesClusterName string, options *armnetworkcloud.AgentPoolsClientListByKubernetesClusterOptions) ([]*networkcloud.AgentPool, error)
}

func (c *agentPoolsClient) CreateOrUpdateAndWait(ctx context.Context, resourceGroupName string, kubernetesClusterName string, agentPoolName string, parameters networkcloud.AgentPool, options *armnetworkcloud.AgentPoolsClientBeginCreateOrUpdateOptions) (*networkcloud.AgentPool, error) {
	poller, err := c.AgentPoolsClient.BeginCreateOrUpdate(ctx, resourceGroupName, kubernetesClusterName, agentPoolName, parameters, options)
	if err != nil {
		return nil, err
	}
	resp, err := poller.PollUntilDone(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &resp.AgentPool, nil
}

func (c *agentPoolsClient) UpdateAndWait(ctx context.Context, resourceGroupName string, kubernetesClusterName string, agentPoolName string, parameters networkcloud.AgentPoolPatchParameters, options *armnetworkcloud.AgentPoolsClientBeginUpdateOptions) (*networkcloud.AgentPool, error) {
	poller, err := c.AgentPoolsClient.BeginUpdate(ctx, resourceGroupName, kubernetesClusterName, agentPoolName, parameters, options)
	if err != nil {
		return nil, err
	}
	resp, err := poller.PollUntilDone(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &resp.AgentPool, nil
}

func (c *agentPoolsClient) DeleteAndWait(ctx context.Context, resourceGroupName string, kubernetesClusterName string, agentPoolName string, options *armnetworkcloud.AgentPoolsClientBeginDeleteOptions) error {
	poller, err := c.AgentPoolsClient.BeginDelete(ctx, resourceGroupName, kubernetesClusterName, agentPoolName, options)
	if err != nil {
		return err
	}
	_, err = poller.PollUntilDone(ctx, nil)
	return err
}

func (c *agentPoolsClient) List(ctx context.Context, resourceGroupName string, kubernetesClusterName string, options *armnetworkcloud.AgentPoolsClientListByKubernetesClusterOptions) (result []*networkcloud.AgentPool, err error) {
	pager := c.AgentPoolsClient.NewListByKubernetesClusterPager(resourceGroupName, kubernetesClusterName, options)

	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		result = append(result, page.Value...)
	}
	return result, nil
}
