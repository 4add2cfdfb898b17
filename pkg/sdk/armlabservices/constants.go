package armlabservices

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

const (
	moduleName    = "github.com/Azure/azps-go/pkg/sdk/armlabservices"
	moduleVersion = "v1.0.0"

	apiVersion = "2022-08-01"
)
