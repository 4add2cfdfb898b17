package azureclient

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"testing"
)

func TestAPIVersion(t *testing.T) {
	for _, tt := range []struct {
		typ  string
		want string
	}{
		{
			typ:  "Microsoft.RecoveryServices/vaults/replicationFabrics/replicationProtectionContainers/replicationProtectedItems",
			want: "2025-01-01",
		},
		{
			typ:  "Microsoft.Network/networkWatchers/packetCaptures",
			want: "2024-05-01",
		},
		{
			typ:  "Microsoft.Network/virtualNetworks",
			want: "2020-08-01",
		},
		{
			typ:  "Microsoft.LabServices/labs/users",
			want: "2022-08-01",
		},
		{
			typ: "Microsoft.Compute/virtualMachines",
		},
	} {
		t.Run(tt.typ, func(t *testing.T) {
			if got := APIVersion(tt.typ); got != tt.want {
				t.Error(got)
			}
		})
	}
}
