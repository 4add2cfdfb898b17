package armsiterecovery

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"

	"github.com/Azure/azps-go/pkg/sdk/armsiterecovery"
)

// ReplicationProtectedItemsClient is a minimal interface for Site Recovery ReplicationProtectedItemsClient
type ReplicationProtectedItemsClient interface {
	Get(ctx context.Context, resourceName string, resourceGroupName string, fabricName string, protectionContainerName string, replicatedProtectedItemName string, options *armsiterecovery.ReplicationProtectedItemsClientGetOptions) (armsiterecovery.ReplicationProtectedItemsClientGetResponse, error)
	ReplicationProtectedItemsClientAddons
}

type replicationProtectedItemsClient struct {
	*armsiterecovery.ReplicationProtectedItemsClient
}

var _ ReplicationProtectedItemsClient = &replicationProtectedItemsClient{}

// NewReplicationProtectedItemsClient creates a new ReplicationProtectedItemsClient
func NewReplicationProtectedItemsClient(subscriptionID string, credential azcore.TokenCredential, options *arm.ClientOptions) (ReplicationProtectedItemsClient, error) {
	clientFactory, err := armsiterecovery.NewClientFactory(subscriptionID, credential, options)
	if err != nil {
		return nil, err
	}
	return &replicationProtectedItemsClient{ReplicationProtectedItemsClient: clientFactory.NewReplicationProtectedItemsClient()}, nil
}
