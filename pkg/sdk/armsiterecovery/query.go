package armsiterecovery

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"strings"
)

// ProtectedItemsQueryParameter filters a vault-level listing of replication
// protected items.
type ProtectedItemsQueryParameter struct {
	SourceFabricName         *string
	RecoveryPlanName         *string
	SourceFabricLocation     *string
	FabricObjectID           *string
	VCenterName              *string
	InstanceType             *string
	MultiVMGroupCreateOption *string
	ProcessServerID          *string
}

// ToQueryString renders the set fields as an OData $filter expression.
func (p ProtectedItemsQueryParameter) ToQueryString() string {
	var clauses []string
	for _, f := range []struct {
		name  string
		value *string
	}{
		{"sourceFabricName", p.SourceFabricName},
		{"recoveryPlanName", p.RecoveryPlanName},
		{"sourceFabricLocation", p.SourceFabricLocation},
		{"fabricObjectId", p.FabricObjectID},
		{"vCenterName", p.VCenterName},
		{"instanceType", p.InstanceType},
		{"multiVmGroupCreateOption", p.MultiVMGroupCreateOption},
		{"processServerId", p.ProcessServerID},
	} {
		if f.value == nil {
			continue
		}
		clauses = append(clauses, f.name+" eq '"+strings.ReplaceAll(*f.value, "'", "''")+"'")
	}
	return strings.Join(clauses, " and ")
}
