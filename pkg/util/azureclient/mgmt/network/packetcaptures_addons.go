package network

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"

	mgmtnetwork "github.com/Azure/azure-sdk-for-go/services/network/mgmt/2020-08-01/network"
)

// PacketCapturesClientAddons contains addons for PacketCapturesClient
type PacketCapturesClientAddons interface {
	CreateAndWait(ctx context.Context, resourceGroupName string, networkWatcherName string, packetCaptureName string, parameters mgmtnetwork.PacketCapture) (mgmtnetwork.PacketCaptureResult, error)
	StopAndWait(ctx context.Context, resourceGroupName string, networkWatcherName string, packetCaptureName string) error
	DeleteAndWait(ctx context.Context, resourceGroupName string, networkWatcherName string, packetCaptureName string) error
}

func (c *packetCapturesClient) CreateAndWait(ctx context.Context, resourceGroupName string, networkWatcherName string, packetCaptureName string, parameters mgmtnetwork.PacketCapture) (mgmtnetwork.PacketCaptureResult, error) {
	future, err := c.Create(ctx, resourceGroupName, networkWatcherName, packetCaptureName, parameters)
	if err != nil {
		return mgmtnetwork.PacketCaptureResult{}, err
	}

	err = future.WaitForCompletionRef(ctx, c.Client)
	if err != nil {
		return mgmtnetwork.PacketCaptureResult{}, err
	}

	return future.Result(c.PacketCapturesClient)
}

func (c *packetCapturesClient) StopAndWait(ctx context.Context, resourceGroupName string, networkWatcherName string, packetCaptureName string) error {
	future, err := c.Stop(ctx, resourceGroupName, networkWatcherName, packetCaptureName)
	if err != nil {
		return err
	}

	return future.WaitForCompletionRef(ctx, c.Client)
}

func (c *packetCapturesClient) DeleteAndWait(ctx context.Context, resourceGroupName string, networkWatcherName string, packetCaptureName string) error {
	future, err := c.Delete(ctx, resourceGroupName, networkWatcherName, packetCaptureName)
	if err != nil {
		return err
	}

	return future.WaitForCompletionRef(ctx, c.Client)
}
