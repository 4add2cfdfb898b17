package armlabservices

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"

	"github.com/Azure/azps-go/pkg/sdk/armlabservices"
)

// UsersClient is a minimal interface for Lab Services UsersClient
type UsersClient interface {
	Get(ctx context.Context, resourceGroupName string, labName string, userName string, options *armlabservices.UsersClientGetOptions) (armlabservices.UsersClientGetResponse, error)
	UsersClientAddons
}

type usersClient struct {
	*armlabservices.UsersClient
}

var _ UsersClient = &usersClient{}

// NewUsersClient creates a new UsersClient
func NewUsersClient(subscriptionID string, credential azcore.TokenCredential, options *arm.ClientOptions) (UsersClient, error) {
	clientFactory, err := armlabservices.NewClientFactory(subscriptionID, credential, options)
	if err != nil {
		return nil, err
	}
	return &usersClient{UsersClient: clientFactory.NewUsersClient()}, nil
}
