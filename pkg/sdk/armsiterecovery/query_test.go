package armsiterecovery

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"encoding/json"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/go-test/deep"
)

func TestProtectedItemsQueryParameterToQueryString(t *testing.T) {
	for _, tt := range []struct {
		name  string
		param ProtectedItemsQueryParameter
		want  string
	}{
		{
			name: "empty",
		},
		{
			name:  "recovery plan",
			param: ProtectedItemsQueryParameter{RecoveryPlanName: to.Ptr("plan")},
			want:  "recoveryPlanName eq 'plan'",
		},
		{
			name: "several clauses keep field order",
			param: ProtectedItemsQueryParameter{
				InstanceType:     to.Ptr("A2A"),
				SourceFabricName: to.Ptr("fabric"),
			},
			want: "sourceFabricName eq 'fabric' and instanceType eq 'A2A'",
		},
		{
			name:  "quotes are escaped",
			param: ProtectedItemsQueryParameter{RecoveryPlanName: to.Ptr("bob's plan")},
			want:  "recoveryPlanName eq 'bob''s plan'",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.param.ToQueryString()
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestProviderSpecificInputJSON(t *testing.T) {
	var in ProviderSpecificInput
	err := json.Unmarshal([]byte(`{"instanceType":"InMageRcm","targetVmName":"vm","diskCount":2}`), &in)
	if err != nil {
		t.Fatal(err)
	}

	if in.InstanceType != "InMageRcm" {
		t.Errorf("got instanceType %q", in.InstanceType)
	}
	for _, l := range deep.Equal(in.AdditionalProperties, map[string]any{
		"targetVmName": "vm",
		"diskCount":    json.Number("2"),
	}) {
		t.Error(l)
	}

	b, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `{"diskCount":2,"instanceType":"InMageRcm","targetVmName":"vm"}` {
		t.Error(string(b))
	}
}
