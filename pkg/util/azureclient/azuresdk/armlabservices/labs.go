package armlabservices

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"

	"github.com/Azure/azps-go/pkg/api/labservices"
	"github.com/Azure/azps-go/pkg/sdk/armlabservices"
)

// LabsClient is a minimal interface for Lab Services LabsClient
type LabsClient interface {
	Get(ctx context.Context, resourceGroupName string, labName string, options *armlabservices.LabsClientGetOptions) (armlabservices.LabsClientGetResponse, error)
	UpdateAndWait(ctx context.Context, resourceGroupName string, labName string, body labservices.LabUpdate, options *armlabservices.LabsClientBeginUpdateOptions) (*labservices.Lab, error)
}

type labsClient struct {
	*armlabservices.LabsClient
}

var _ LabsClient = &labsClient{}

// NewLabsClient creates a new LabsClient
func NewLabsClient(subscriptionID string, credential azcore.TokenCredential, options *arm.ClientOptions) (LabsClient, error) {
	clientFactory, err := armlabservices.NewClientFactory(subscriptionID, credential, options)
	if err != nil {
		return nil, err
	}
	return &labsClient{LabsClient: clientFactory.NewLabsClient()}, nil
}

func (c *labsClient) UpdateAndWait(ctx context.Context, resourceGroupName string, labName string, body labservices.LabUpdate, options *armlabservices.LabsClientBeginUpdateOptions) (*labservices.Lab, error) {
	poller, err := c.LabsClient.BeginUpdate(ctx, resourceGroupName, labName, body, options)
	if err != nil {
		return nil, err
	}
	resp, err := poller.PollUntilDone(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &resp.Lab, nil
}
