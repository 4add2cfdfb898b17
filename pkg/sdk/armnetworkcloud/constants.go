package armnetworkcloud

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

const (
	moduleName    = "github.com/Azure/azps-go/pkg/sdk/armnetworkcloud"
	moduleVersion = "v1.0.0"

	apiVersion = "2025-02-01"
)
