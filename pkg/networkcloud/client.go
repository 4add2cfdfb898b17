package networkcloud

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/sirupsen/logrus"

	networkcloud "github.com/Azure/azps-go/pkg/api/networkcloud/v20250201"
	"github.com/Azure/azps-go/pkg/util/azureclient"
	"github.com/Azure/azps-go/pkg/util/azureclient/azuresdk/armnetworkcloud"
)

// Client manages the agent pools of Nexus Kubernetes clusters.
type Client interface {
	GetAgentPool(ctx context.Context, resourceGroupName, kubernetesClusterName, agentPoolName string) (*networkcloud.AgentPool, error)
	ListAgentPools(ctx context.Context, resourceGroupName, kubernetesClusterName string) ([]*networkcloud.AgentPool, error)
	CreateOrUpdateAgentPool(ctx context.Context, resourceGroupName, kubernetesClusterName, agentPoolName string, agentPool networkcloud.AgentPool) (*networkcloud.AgentPool, error)
	UpdateAgentPool(ctx context.Context, resourceGroupName, kubernetesClusterName, agentPoolName string, parameters networkcloud.AgentPoolPatchParameters) (*networkcloud.AgentPool, error)
	ScaleAgentPool(ctx context.Context, resourceGroupName, kubernetesClusterName, agentPoolName string, count int64) (*networkcloud.AgentPool, error)
	DeleteAgentPool(ctx context.Context, resourceGroupName, kubernetesClusterName, agentPoolName string) error
}

type client struct {
	log *logrus.Entry

	agentPools armnetworkcloud.AgentPoolsClient
}

var _ Client = &client{}

func NewClient(log *logrus.Entry, environment *azureclient.Environment, subscriptionID string, credential azcore.TokenCredential, middlewares ...azureclient.Middleware) (Client, error) {
	agentPools, err := armnetworkcloud.NewAgentPoolsClient(subscriptionID, credential, environment.ArmClientOptions(middlewares...))
	if err != nil {
		return nil, err
	}

	return &client{
		log:        log,
		agentPools: agentPools,
	}, nil
}

func (c *client) GetAgentPool(ctx context.Context, resourceGroupName, kubernetesClusterName, agentPoolName string) (*networkcloud.AgentPool, error) {
	resp, err := c.agentPools.Get(ctx, resourceGroupName, kubernetesClusterName, agentPoolName, nil)
	if err != nil {
		return nil, err
	}

	return &resp.AgentPool, nil
}

func (c *client) ListAgentPools(ctx context.Context, resourceGroupName, kubernetesClusterName string) ([]*networkcloud.AgentPool, error) {
	return c.agentPools.List(ctx, resourceGroupName, kubernetesClusterName, nil)
}

func (c *client) CreateOrUpdateAgentPool(ctx context.Context, resourceGroupName, kubernetesClusterName, agentPoolName string, agentPool networkcloud.AgentPool) (*networkcloud.AgentPool, error) {
	c.log.Infof("creating or updating agent pool %s of cluster %s", agentPoolName, kubernetesClusterName)

	return c.agentPools.CreateOrUpdateAndWait(ctx, resourceGroupName, kubernetesClusterName, agentPoolName, agentPool, nil)
}

func (c *client) UpdateAgentPool(ctx context.Context, resourceGroupName, kubernetesClusterName, agentPoolName string, parameters networkcloud.AgentPoolPatchParameters) (*networkcloud.AgentPool, error) {
	c.log.Infof("updating agent pool %s of cluster %s", agentPoolName, kubernetesClusterName)

	return c.agentPools.UpdateAndWait(ctx, resourceGroupName, kubernetesClusterName, agentPoolName, parameters, nil)
}

// ScaleAgentPool patches only the node count of an agent pool.
func (c *client) ScaleAgentPool(ctx context.Context, resourceGroupName, kubernetesClusterName, agentPoolName string, count int64) (*networkcloud.AgentPool, error) {
	parameters := networkcloud.AgentPoolPatchParameters{}
	parameters.SetCount(&count)

	return c.UpdateAgentPool(ctx, resourceGroupName, kubernetesClusterName, agentPoolName, parameters)
}

func (c *client) DeleteAgentPool(ctx context.Context, resourceGroupName, kubernetesClusterName, agentPoolName string) error {
	c.log.Infof("deleting agent pool %s of cluster %s", agentPoolName, kubernetesClusterName)

	return c.agentPools.DeleteAndWait(ctx, resourceGroupName, kubernetesClusterName, agentPoolName, nil)
}
