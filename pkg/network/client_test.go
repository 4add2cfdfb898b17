package network

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"errors"
	"testing"

	sdknetwork "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v6"
	mgmtnetwork "github.com/Azure/azure-sdk-for-go/services/network/mgmt/2020-08-01/network"
	"github.com/Azure/go-autorest/autorest/to"
	"github.com/go-test/deep"
	"go.uber.org/mock/gomock"

	mock_armnetwork "github.com/Azure/azps-go/pkg/util/mocks/azureclient/azuresdk/armnetwork"
	mock_network "github.com/Azure/azps-go/pkg/util/mocks/azureclient/mgmt/network"
	utilerror "github.com/Azure/azps-go/test/util/error"
	testlog "github.com/Azure/azps-go/test/util/log"
)

func TestGetNetworkWatcher(t *testing.T) {
	ctx := context.Background()

	for _, tt := range []struct {
		name    string
		mocks   func(*mock_armnetwork.MockWatchersClient)
		want    *PSNetworkWatcher
		wantErr string
	}{
		{
			name: "found",
			mocks: func(watchers *mock_armnetwork.MockWatchersClient) {
				succeeded := sdknetwork.ProvisioningStateSucceeded
				watchers.EXPECT().
					Get(gomock.Any(), "rg", "watcher", nil).
					Return(sdknetwork.WatchersClientGetResponse{
						Watcher: sdknetwork.Watcher{
							Name:     to.StringPtr("watcher"),
							ID:       to.StringPtr("/subscriptions/sub/resourceGroups/rg/providers/Microsoft.Network/networkWatchers/watcher"),
							Location: to.StringPtr("eastus"),
							Tags:     map[string]*string{"env": to.StringPtr("test")},
							Properties: &sdknetwork.WatcherPropertiesFormat{
								ProvisioningState: &succeeded,
							},
						},
					}, nil)
			},
			want: &PSNetworkWatcher{
				Name:              "watcher",
				ID:                "/subscriptions/sub/resourceGroups/rg/providers/Microsoft.Network/networkWatchers/watcher",
				Location:          "eastus",
				Tags:              map[string]string{"env": "test"},
				ProvisioningState: "Succeeded",
			},
		},
		{
			name: "fault",
			mocks: func(watchers *mock_armnetwork.MockWatchersClient) {
				watchers.EXPECT().
					Get(gomock.Any(), "rg", "watcher", nil).
					Return(sdknetwork.WatchersClientGetResponse{}, errors.New("not found"))
			},
			wantErr: "not found",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			controller := gomock.NewController(t)
			defer controller.Finish()

			watchers := mock_armnetwork.NewMockWatchersClient(controller)
			tt.mocks(watchers)

			_, log := testlog.NewCapturingLogger()
			c := &client{
				log:      log,
				watchers: watchers,
			}

			got, err := c.GetNetworkWatcher(ctx, "rg", "watcher")
			utilerror.AssertErrorMessage(t, err, tt.wantErr)

			for _, diff := range deep.Equal(got, tt.want) {
				t.Error(diff)
			}
		})
	}
}

func TestPacketCaptures(t *testing.T) {
	ctx := context.Background()

	sdkResult := mgmtnetwork.PacketCaptureResult{
		Name: to.StringPtr("capture"),
		ID:   to.StringPtr("id"),
		PacketCaptureResultProperties: &mgmtnetwork.PacketCaptureResultProperties{
			Target:             to.StringPtr("vm"),
			TimeLimitInSeconds: to.Int32Ptr(60),
			StorageLocation: &mgmtnetwork.PacketCaptureStorageLocation{
				FilePath: to.StringPtr("/var/captures/capture.cap"),
			},
			Filters: &[]mgmtnetwork.PacketCaptureFilter{
				{
					Protocol:  mgmtnetwork.PcProtocolTCP,
					LocalPort: to.StringPtr("443"),
				},
			},
			ProvisioningState: mgmtnetwork.Succeeded,
		},
	}

	psResult := &PSPacketCaptureResult{
		Name:               "capture",
		ID:                 "id",
		ProvisioningState:  "Succeeded",
		Target:             "vm",
		TimeLimitInSeconds: to.Int32Ptr(60),
		StorageLocation: &PSStorageLocation{
			FilePath: "/var/captures/capture.cap",
		},
		Filters: []*PSPacketCaptureFilter{
			{
				Protocol:  "TCP",
				LocalPort: "443",
			},
		},
	}

	type test struct {
		name    string
		mocks   func(*mock_network.MockPacketCapturesClient)
		call    func(*client) (interface{}, error)
		want    interface{}
		wantErr string
	}

	for _, tt := range []*test{
		{
			name: "new",
			mocks: func(packetCaptures *mock_network.MockPacketCapturesClient) {
				packetCaptures.EXPECT().
					CreateAndWait(gomock.Any(), "rg", "watcher", "capture", mgmtnetwork.PacketCapture{
						PacketCaptureParameters: &mgmtnetwork.PacketCaptureParameters{
							Target:             to.StringPtr("vm"),
							TimeLimitInSeconds: to.Int32Ptr(60),
							StorageLocation: &mgmtnetwork.PacketCaptureStorageLocation{
								FilePath: to.StringPtr("/var/captures/capture.cap"),
							},
							Filters: &[]mgmtnetwork.PacketCaptureFilter{
								{
									Protocol:  mgmtnetwork.PcProtocolTCP,
									LocalPort: to.StringPtr("443"),
								},
							},
						},
					}).
					Return(sdkResult, nil)
			},
			call: func(c *client) (interface{}, error) {
				return c.NewPacketCapture(ctx, "rg", "watcher", "capture", &PSPacketCaptureParameters{
					Target:             "vm",
					TimeLimitInSeconds: to.Int32Ptr(60),
					StorageLocation: &PSStorageLocation{
						FilePath:  "/var/captures/capture.cap",
						LocalPath: "ignored",
					},
					Filters: []*PSPacketCaptureFilter{
						{
							Protocol:  "TCP",
							LocalPort: "443",
						},
					},
				})
			},
			want: psResult,
		},
		{
			name:  "new without parameters",
			mocks: func(*mock_network.MockPacketCapturesClient) {},
			call: func(c *client) (interface{}, error) {
				return c.NewPacketCapture(ctx, "rg", "watcher", "capture", nil)
			},
			want:    (*PSPacketCaptureResult)(nil),
			wantErr: "packet capture parameters are required",
		},
		{
			name: "get",
			mocks: func(packetCaptures *mock_network.MockPacketCapturesClient) {
				packetCaptures.EXPECT().
					Get(gomock.Any(), "rg", "watcher", "capture").
					Return(sdkResult, nil)
			},
			call: func(c *client) (interface{}, error) {
				return c.GetPacketCapture(ctx, "rg", "watcher", "capture")
			},
			want: psResult,
		},
		{
			name: "list",
			mocks: func(packetCaptures *mock_network.MockPacketCapturesClient) {
				packetCaptures.EXPECT().
					List(gomock.Any(), "rg", "watcher").
					Return(mgmtnetwork.PacketCaptureListResult{
						Value: &[]mgmtnetwork.PacketCaptureResult{sdkResult, {Name: to.StringPtr("bare")}},
					}, nil)
			},
			call: func(c *client) (interface{}, error) {
				return c.ListPacketCaptures(ctx, "rg", "watcher")
			},
			want: []*PSPacketCaptureResult{psResult, {Name: "bare"}},
		},
		{
			name: "stop",
			mocks: func(packetCaptures *mock_network.MockPacketCapturesClient) {
				packetCaptures.EXPECT().
					StopAndWait(gomock.Any(), "rg", "watcher", "capture").
					Return(nil)
			},
			call: func(c *client) (interface{}, error) {
				return nil, c.StopPacketCapture(ctx, "rg", "watcher", "capture")
			},
		},
		{
			name: "remove fault",
			mocks: func(packetCaptures *mock_network.MockPacketCapturesClient) {
				packetCaptures.EXPECT().
					DeleteAndWait(gomock.Any(), "rg", "watcher", "capture").
					Return(errors.New("conflict"))
			},
			call: func(c *client) (interface{}, error) {
				return nil, c.RemovePacketCapture(ctx, "rg", "watcher", "capture")
			},
			wantErr: "conflict",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			controller := gomock.NewController(t)
			defer controller.Finish()

			packetCaptures := mock_network.NewMockPacketCapturesClient(controller)
			tt.mocks(packetCaptures)

			_, log := testlog.NewCapturingLogger()
			c := &client{
				log:            log,
				packetCaptures: packetCaptures,
			}

			got, err := tt.call(c)
			utilerror.AssertErrorMessage(t, err, tt.wantErr)

			for _, diff := range deep.Equal(got, tt.want) {
				t.Error(diff)
			}
		})
	}
}
