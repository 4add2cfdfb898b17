package network

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v6"
	mgmtnetwork "github.com/Azure/azure-sdk-for-go/services/network/mgmt/2020-08-01/network"
	"github.com/Azure/go-autorest/autorest/to"
)

func storageLocationToSDK(l *PSStorageLocation) *mgmtnetwork.PacketCaptureStorageLocation {
	if l == nil {
		return nil
	}

	return &mgmtnetwork.PacketCaptureStorageLocation{
		StorageID:   stringPtrOrNil(l.StorageID),
		StoragePath: stringPtrOrNil(l.StoragePath),
		FilePath:    stringPtrOrNil(l.FilePath),
	}
}

func storageLocationFromSDK(l *mgmtnetwork.PacketCaptureStorageLocation) *PSStorageLocation {
	if l == nil {
		return nil
	}

	return &PSStorageLocation{
		StorageID:   to.String(l.StorageID),
		StoragePath: to.String(l.StoragePath),
		FilePath:    to.String(l.FilePath),
	}
}

func filtersToSDK(filters []*PSPacketCaptureFilter) *[]mgmtnetwork.PacketCaptureFilter {
	if filters == nil {
		return nil
	}

	out := make([]mgmtnetwork.PacketCaptureFilter, 0, len(filters))
	for _, f := range filters {
		if f == nil {
			continue
		}
		out = append(out, mgmtnetwork.PacketCaptureFilter{
			Protocol:        mgmtnetwork.PcProtocol(f.Protocol),
			LocalIPAddress:  stringPtrOrNil(f.LocalIPAddress),
			RemoteIPAddress: stringPtrOrNil(f.RemoteIPAddress),
			LocalPort:       stringPtrOrNil(f.LocalPort),
			RemotePort:      stringPtrOrNil(f.RemotePort),
		})
	}

	return &out
}

func filtersFromSDK(filters *[]mgmtnetwork.PacketCaptureFilter) []*PSPacketCaptureFilter {
	if filters == nil {
		return nil
	}

	out := make([]*PSPacketCaptureFilter, 0, len(*filters))
	for _, f := range *filters {
		out = append(out, &PSPacketCaptureFilter{
			Protocol:        string(f.Protocol),
			LocalIPAddress:  to.String(f.LocalIPAddress),
			RemoteIPAddress: to.String(f.RemoteIPAddress),
			LocalPort:       to.String(f.LocalPort),
			RemotePort:      to.String(f.RemotePort),
		})
	}

	return out
}

func packetCaptureToSDK(p *PSPacketCaptureParameters) mgmtnetwork.PacketCapture {
	return mgmtnetwork.PacketCapture{
		PacketCaptureParameters: &mgmtnetwork.PacketCaptureParameters{
			Target:             to.StringPtr(p.Target),
			TimeLimitInSeconds: p.TimeLimitInSeconds,
			StorageLocation:    storageLocationToSDK(p.StorageLocation),
			Filters:            filtersToSDK(p.Filters),
		},
	}
}

func packetCaptureResultFromSDK(r *mgmtnetwork.PacketCaptureResult) *PSPacketCaptureResult {
	ps := &PSPacketCaptureResult{
		Name: to.String(r.Name),
		ID:   to.String(r.ID),
		Etag: to.String(r.Etag),
	}

	if r.PacketCaptureResultProperties != nil {
		ps.ProvisioningState = string(r.ProvisioningState)
		ps.Target = to.String(r.Target)
		ps.TimeLimitInSeconds = r.TimeLimitInSeconds
		ps.StorageLocation = storageLocationFromSDK(r.StorageLocation)
		ps.Filters = filtersFromSDK(r.Filters)
	}

	return ps
}

func networkWatcherFromSDK(w *armnetwork.Watcher) *PSNetworkWatcher {
	ps := &PSNetworkWatcher{
		Name:     to.String(w.Name),
		ID:       to.String(w.ID),
		Etag:     to.String(w.Etag),
		Type:     to.String(w.Type),
		Location: to.String(w.Location),
	}

	if w.Tags != nil {
		ps.Tags = make(map[string]string, len(w.Tags))
		for k, v := range w.Tags {
			ps.Tags[k] = to.String(v)
		}
	}

	if w.Properties != nil && w.Properties.ProvisioningState != nil {
		ps.ProvisioningState = string(*w.Properties.ProvisioningState)
	}

	return ps
}

// stringPtrOrNil keeps empty PowerShell strings off the wire.
func stringPtrOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
