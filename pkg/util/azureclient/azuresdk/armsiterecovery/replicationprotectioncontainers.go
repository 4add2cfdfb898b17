package armsiterecovery

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"

	"github.com/Azure/azps-go/pkg/sdk/armsiterecovery"
)

// ReplicationProtectionContainersClient is a minimal interface for Site Recovery ReplicationProtectionContainersClient
type ReplicationProtectionContainersClient interface {
	StartSwitchProtection(ctx context.Context, resourceName string, resourceGroupName string, fabricName string, protectionContainerName string, switchInput armsiterecovery.SwitchProtectionInput, options *armsiterecovery.ReplicationProtectionContainersClientBeginSwitchProtectionOptions) (*Operation, error)
}

type replicationProtectionContainersClient struct {
	*armsiterecovery.ReplicationProtectionContainersClient
}

var _ ReplicationProtectionContainersClient = &replicationProtectionContainersClient{}

// NewReplicationProtectionContainersClient creates a new ReplicationProtectionContainersClient
func NewReplicationProtectionContainersClient(subscriptionID string, credential azcore.TokenCredential, options *arm.ClientOptions) (ReplicationProtectionContainersClient, error) {
	clientFactory, err := armsiterecovery.NewClientFactory(subscriptionID, credential, options)
	if err != nil {
		return nil, err
	}
	return &replicationProtectionContainersClient{ReplicationProtectionContainersClient: clientFactory.NewReplicationProtectionContainersClient()}, nil
}

func (c *replicationProtectionContainersClient) StartSwitchProtection(ctx context.Context, resourceName string, resourceGroupName string, fabricName string, protectionContainerName string, switchInput armsiterecovery.SwitchProtectionInput, options *armsiterecovery.ReplicationProtectionContainersClientBeginSwitchProtectionOptions) (*Operation, error) {
	return start(ctx, func(ctx context.Context) (*runtime.Poller[armsiterecovery.ReplicationProtectionContainersClientSwitchProtectionResponse], error) {
		return c.ReplicationProtectionContainersClient.BeginSwitchProtection(ctx, resourceName, resourceGroupName, fabricName, protectionContainerName, switchInput, options)
	})
}
