package armsiterecovery

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
)

// ReplicationProtectionContainersClient contains the methods for the ReplicationProtectionContainers group.
// Don't use this type directly, use NewReplicationProtectionContainersClient() instead.
type ReplicationProtectionContainersClient struct {
	internal       *arm.Client
	subscriptionID string
}

// NewReplicationProtectionContainersClient creates a new instance of ReplicationProtectionContainersClient with the specified values.
func NewReplicationProtectionContainersClient(subscriptionID string, credential azcore.TokenCredential, options *arm.ClientOptions) (*ReplicationProtectionContainersClient, error) {
	cl, err := arm.NewClient(moduleName, moduleVersion, credential, options)
	if err != nil {
		return nil, err
	}
	client := &ReplicationProtectionContainersClient{
		subscriptionID: subscriptionID,
		internal:       cl,
	}
	return client, nil
}

// BeginSwitchProtection switches the replication direction of a protected
// item within a protection container.
// If the operation fails it returns an *azcore.ResponseError type.
func (client *ReplicationProtectionContainersClient) BeginSwitchProtection(ctx context.Context, resourceName string, resourceGroupName string, fabricName string, protectionContainerName string, switchInput SwitchProtectionInput, options *ReplicationProtectionContainersClientBeginSwitchProtectionOptions) (*runtime.Poller[ReplicationProtectionContainersClientSwitchProtectionResponse], error) {
	if options != nil && options.ResumeToken != "" {
		return resumePoller[ReplicationProtectionContainersClientSwitchProtectionResponse](client.internal, options.ResumeToken)
	}
	urlPath, err := expandPath(containerPath+"/switchprotection",
		pathParameter{"subscriptionId", client.subscriptionID},
		pathParameter{"resourceGroupName", resourceGroupName},
		pathParameter{"resourceName", resourceName},
		pathParameter{"fabricName", fabricName},
		pathParameter{"protectionContainerName", protectionContainerName},
	)
	if err != nil {
		return nil, err
	}
	resp, err := send(ctx, client.internal, "ReplicationProtectionContainersClient.BeginSwitchProtection", http.MethodPost, urlPath, switchInput, http.StatusOK, http.StatusAccepted)
	if err != nil {
		return nil, err
	}
	return newPoller[ReplicationProtectionContainersClientSwitchProtectionResponse](client.internal, resp)
}
