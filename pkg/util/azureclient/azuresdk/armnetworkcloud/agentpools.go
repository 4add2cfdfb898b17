package armnetworkcloud

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"

	"github.com/Azure/azps-go/pkg/sdk/armnetworkcloud"
)

// AgentPoolsClient is a minimal interface for Network Cloud AgentPoolsClient
type AgentPoolsClient interface {
	Get(ctx context.Context, resourceGroupName string, kubernetesClusterName string, agentPoolName string, options *armnetworkcloud.AgentPoolsClientGetOptions) (armnetworkcloud.AgentPoolsClientGetResponse, error)
	AgentPoolsClientAddons
}

type agentPoolsClient struct {
	*armnetworkcloud.AgentPoolsClient
}

var _ AgentPoolsClient = &agentPoolsClient{}

// NewAgentPoolsClient creates a new AgentPoolsClient
func NewAgentPoolsClient(subscriptionID string, credential azcore.TokenCredential, options *arm.ClientOptions) (AgentPoolsClient, error) {
	client, err := armnetworkcloud.NewAgentPoolsClient(subscriptionID, credential, options)
	if err != nil {
		return nil, err
	}
	return &agentPoolsClient{AgentPoolsClient: client}, nil
}
