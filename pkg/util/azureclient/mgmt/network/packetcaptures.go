package network

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"

	mgmtnetwork "github.com/Azure/azure-sdk-for-go/services/network/mgmt/2020-08-01/network"
	"github.com/Azure/go-autorest/autorest"

	"github.com/Azure/azps-go/pkg/util/azureclient"
)

// PacketCapturesClient is a minimal interface for azure PacketCapturesClient
type PacketCapturesClient interface {
	Get(ctx context.Context, resourceGroupName string, networkWatcherName string, packetCaptureName string) (result mgmtnetwork.PacketCaptureResult, err error)
	List(ctx context.Context, resourceGroupName string, networkWatcherName string) (result mgmtnetwork.PacketCaptureListResult, err error)
	PacketCapturesClientAddons
}

type packetCapturesClient struct {
	mgmtnetwork.PacketCapturesClient
}

var _ PacketCapturesClient = &packetCapturesClient{}

// NewPacketCapturesClient creates a new PacketCapturesClient
func NewPacketCapturesClient(environment *azureclient.Environment, subscriptionID string, authorizer autorest.Authorizer, middlewares ...azureclient.Middleware) PacketCapturesClient {
	client := mgmtnetwork.NewPacketCapturesClientWithBaseURI(environment.ResourceManagerEndpoint, subscriptionID)
	client.Authorizer = authorizer
	client.Sender = azureclient.DecorateSenderWithLogging(client.Sender, middlewares...)

	return &packetCapturesClient{
		PacketCapturesClient: client,
	}
}
