package network

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

// PSStorageLocation is where a packet capture is written. LocalPath is not
// supported by the packet capture API version in use and is never sent.
type PSStorageLocation struct {
	StorageID   string `json:"StorageId,omitempty"`
	StoragePath string `json:"StoragePath,omitempty"`
	FilePath    string `json:"FilePath,omitempty"`
	LocalPath   string `json:"LocalPath,omitempty"`
}

type PSPacketCaptureFilter struct {
	Protocol        string `json:"Protocol,omitempty"`
	LocalIPAddress  string `json:"LocalIPAddress,omitempty"`
	RemoteIPAddress string `json:"RemoteIPAddress,omitempty"`
	LocalPort       string `json:"LocalPort,omitempty"`
	RemotePort      string `json:"RemotePort,omitempty"`
}

// PSPacketCaptureParameters describe a packet capture to start.
type PSPacketCaptureParameters struct {
	Target             string
	TimeLimitInSeconds *int32
	StorageLocation    *PSStorageLocation
	Filters            []*PSPacketCaptureFilter
}

type PSPacketCaptureResult struct {
	Name               string                   `json:"Name,omitempty"`
	ID                 string                   `json:"Id,omitempty"`
	Etag               string                   `json:"Etag,omitempty"`
	ProvisioningState  string                   `json:"ProvisioningState,omitempty"`
	Target             string                   `json:"Target,omitempty"`
	TimeLimitInSeconds *int32                   `json:"TimeLimitInSeconds,omitempty"`
	StorageLocation    *PSStorageLocation       `json:"StorageLocation,omitempty"`
	Filters            []*PSPacketCaptureFilter `json:"Filters,omitempty"`
}

type PSNetworkWatcher struct {
	Name              string            `json:"Name,omitempty"`
	ID                string            `json:"Id,omitempty"`
	Etag              string            `json:"Etag,omitempty"`
	Type              string            `json:"Type,omitempty"`
	Location          string            `json:"Location,omitempty"`
	Tags              map[string]string `json:"Tags,omitempty"`
	ProvisioningState string            `json:"ProvisioningState,omitempty"`
}
