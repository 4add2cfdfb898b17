package azureclient

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"sort"
	"strings"
)

// keys must be lower case
var apiVersions = map[string]string{
	"microsoft.labservices":             "2022-08-01",
	"microsoft.network":                 "2020-08-01",
	"microsoft.network/networkwatchers": "2024-05-01",
	"microsoft.networkcloud":            "2025-02-01",
	"microsoft.recoveryservices":        "2025-01-01",
}

// APIVersion gets the APIVersion from a full resource type
func APIVersion(typ string) string {
	t := strings.ToLower(typ)

	for {
		if apiVersion, ok := apiVersions[t]; ok {
			return apiVersion
		}

		i := strings.LastIndexByte(t, '/')
		if i == -1 {
			break
		}

		t = t[:i]
	}

	return ""
}

// APIVersions returns the known resource types in sorted order.
func APIVersions() []string {
	types := make([]string, 0, len(apiVersions))
	for t := range apiVersions {
		types = append(types, t)
	}
	sort.Strings(types)

	return types
}
