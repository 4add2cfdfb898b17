package network

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"errors"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/go-autorest/autorest"
	"github.com/sirupsen/logrus"

	"github.com/Azure/azps-go/pkg/util/azureclient"
	"github.com/Azure/azps-go/pkg/util/azureclient/azuresdk/armnetwork"
	"github.com/Azure/azps-go/pkg/util/azureclient/mgmt/network"
)

// Client manages network watchers and their packet captures.
type Client interface {
	GetNetworkWatcher(ctx context.Context, resourceGroupName, networkWatcherName string) (*PSNetworkWatcher, error)
	NewPacketCapture(ctx context.Context, resourceGroupName, networkWatcherName, packetCaptureName string, parameters *PSPacketCaptureParameters) (*PSPacketCaptureResult, error)
	GetPacketCapture(ctx context.Context, resourceGroupName, networkWatcherName, packetCaptureName string) (*PSPacketCaptureResult, error)
	ListPacketCaptures(ctx context.Context, resourceGroupName, networkWatcherName string) ([]*PSPacketCaptureResult, error)
	StopPacketCapture(ctx context.Context, resourceGroupName, networkWatcherName, packetCaptureName string) error
	RemovePacketCapture(ctx context.Context, resourceGroupName, networkWatcherName, packetCaptureName string) error
}

type client struct {
	log *logrus.Entry

	watchers       armnetwork.WatchersClient
	packetCaptures network.PacketCapturesClient
}

var _ Client = &client{}

// NewClient returns a Client. Network watchers are read through credential
// while packet captures go through authorizer.
func NewClient(log *logrus.Entry, environment *azureclient.Environment, subscriptionID string, credential azcore.TokenCredential, authorizer autorest.Authorizer, middlewares ...azureclient.Middleware) (Client, error) {
	watchers, err := armnetwork.NewWatchersClient(subscriptionID, credential, environment.ArmClientOptions(middlewares...))
	if err != nil {
		return nil, err
	}

	return &client{
		log:            log,
		watchers:       watchers,
		packetCaptures: network.NewPacketCapturesClient(environment, subscriptionID, authorizer, middlewares...),
	}, nil
}

func (c *client) GetNetworkWatcher(ctx context.Context, resourceGroupName, networkWatcherName string) (*PSNetworkWatcher, error) {
	resp, err := c.watchers.Get(ctx, resourceGroupName, networkWatcherName, nil)
	if err != nil {
		return nil, err
	}

	return networkWatcherFromSDK(&resp.Watcher), nil
}

// NewPacketCapture starts a packet capture and waits for it to be
// provisioned.
func (c *client) NewPacketCapture(ctx context.Context, resourceGroupName, networkWatcherName, packetCaptureName string, parameters *PSPacketCaptureParameters) (*PSPacketCaptureResult, error) {
	if parameters == nil {
		return nil, errors.New("packet capture parameters are required")
	}

	c.log.Infof("creating packet capture %s on %s", packetCaptureName, networkWatcherName)

	result, err := c.packetCaptures.CreateAndWait(ctx, resourceGroupName, networkWatcherName, packetCaptureName, packetCaptureToSDK(parameters))
	if err != nil {
		return nil, err
	}

	return packetCaptureResultFromSDK(&result), nil
}

func (c *client) GetPacketCapture(ctx context.Context, resourceGroupName, networkWatcherName, packetCaptureName string) (*PSPacketCaptureResult, error) {
	result, err := c.packetCaptures.Get(ctx, resourceGroupName, networkWatcherName, packetCaptureName)
	if err != nil {
		return nil, err
	}

	return packetCaptureResultFromSDK(&result), nil
}

func (c *client) ListPacketCaptures(ctx context.Context, resourceGroupName, networkWatcherName string) ([]*PSPacketCaptureResult, error) {
	result, err := c.packetCaptures.List(ctx, resourceGroupName, networkWatcherName)
	if err != nil {
		return nil, err
	}

	if result.Value == nil {
		return nil, nil
	}

	captures := make([]*PSPacketCaptureResult, 0, len(*result.Value))
	for i := range *result.Value {
		captures = append(captures, packetCaptureResultFromSDK(&(*result.Value)[i]))
	}

	return captures, nil
}

func (c *client) StopPacketCapture(ctx context.Context, resourceGroupName, networkWatcherName, packetCaptureName string) error {
	c.log.Infof("stopping packet capture %s on %s", packetCaptureName, networkWatcherName)

	return c.packetCaptures.StopAndWait(ctx, resourceGroupName, networkWatcherName, packetCaptureName)
}

func (c *client) RemovePacketCapture(ctx context.Context, resourceGroupName, networkWatcherName, packetCaptureName string) error {
	c.log.Infof("removing packet capture %s from %s", packetCaptureName, networkWatcherName)

	return c.packetCaptures.DeleteAndWait(ctx, resourceGroupName, networkWatcherName, packetCaptureName)
}
