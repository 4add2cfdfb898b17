package armsiterecovery

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
)

// ClientFactory is a client factory used to create any client in this module.
// Don't use this type directly, use NewClientFactory instead.
type ClientFactory struct {
	subscriptionID string
	internal       *arm.Client
}

// NewClientFactory creates a new instance of ClientFactory with the specified values.
// The parameter values will be propagated to any client created from this factory.
func NewClientFactory(subscriptionID string, credential azcore.TokenCredential, options *arm.ClientOptions) (*ClientFactory, error) {
	internal, err := arm.NewClient(moduleName, moduleVersion, credential, options)
	if err != nil {
		return nil, err
	}
	return &ClientFactory{
		subscriptionID: subscriptionID,
		internal:       internal,
	}, nil
}

// NewReplicationProtectedItemsClient creates a new instance of ReplicationProtectedItemsClient.
func (c *ClientFactory) NewReplicationProtectedItemsClient() *ReplicationProtectedItemsClient {
	return &ReplicationProtectedItemsClient{
		subscriptionID: c.subscriptionID,
		internal:       c.internal,
	}
}

// NewReplicationProtectionContainersClient creates a new instance of ReplicationProtectionContainersClient.
func (c *ClientFactory) NewReplicationProtectionContainersClient() *ReplicationProtectionContainersClient {
	return &ReplicationProtectionContainersClient{
		subscriptionID: c.subscriptionID,
		internal:       c.internal,
	}
}
