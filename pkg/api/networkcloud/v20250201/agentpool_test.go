package v20250201

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"encoding/json"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/go-test/deep"

	"github.com/Azure/azps-go/pkg/util/jsonmodel"
	testjson "github.com/Azure/azps-go/test/util/json"
)

func TestAgentOptions(t *testing.T) {
	for _, tt := range []struct {
		name    string
		options *AgentOptions
		want    string
	}{
		{
			name:    "empty",
			options: &AgentOptions{},
			want:    `{}`,
		},
		{
			name: "count and size",
			options: &AgentOptions{
				HugepagesCount: to.Ptr(int64(96)),
				HugepagesSize:  to.Ptr(HugepagesSize1G),
			},
			want: `{"hugepagesCount":96,"hugepagesSize":"1G"}`,
		},
		{
			name: "zero count is kept",
			options: &AgentOptions{
				HugepagesCount: to.Ptr(int64(0)),
			},
			want: `{"hugepagesCount":0}`,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(tt.options)
			if err != nil {
				t.Fatal(err)
			}

			testjson.AssertJsonMatches(t, []byte(tt.want), b)

			got := AgentOptionsFromJSON(b)
			for _, diff := range deep.Equal(got, tt.options) {
				t.Error(diff)
			}
		})
	}
}

func TestAgentOptionsFromJSONIgnoresUnknownSize(t *testing.T) {
	got := AgentOptionsFromJSON([]byte(`{"hugepagesSize":"4K","hugepagesCount":"many"}`))

	for _, diff := range deep.Equal(got, &AgentOptions{}) {
		t.Error(diff)
	}
}

func testAgentPool() *AgentPool {
	return &AgentPool{
		ID:       to.Ptr("/subscriptions/00000000-0000-0000-0000-000000000000/resourceGroups/rg/providers/Microsoft.NetworkCloud/kubernetesClusters/cluster/agentPools/pool"),
		Name:     to.Ptr("pool"),
		Type:     to.Ptr("Microsoft.NetworkCloud/kubernetesClusters/agentPools"),
		Location: to.Ptr("eastus"),
		Tags:     map[string]string{"team": "a"},
		ExtendedLocation: &ExtendedLocation{
			Name: to.Ptr("/subscriptions/00000000-0000-0000-0000-000000000000/resourceGroups/rg/providers/Microsoft.ExtendedLocation/customLocations/cl"),
			Type: to.Ptr("CustomLocation"),
		},
		Properties: &AgentPoolProperties{
			Count:     to.Ptr(int64(3)),
			Mode:      to.Ptr(AgentPoolModeUser),
			VMSKUName: to.Ptr("NC_M16_v1"),
			AgentOptions: &AgentOptions{
				HugepagesCount: to.Ptr(int64(4)),
				HugepagesSize:  to.Ptr(HugepagesSize2M),
			},
			AvailabilityZones: []string{"1", "2"},
			Labels: []*KubernetesLabel{
				{Key: to.Ptr("kubernetes.label"), Value: to.Ptr("true")},
			},
			UpgradeSettings: &AgentPoolUpgradeSettings{
				MaxSurge: to.Ptr("1"),
			},
			DetailedStatus:    to.Ptr(AgentPoolDetailedStatusAvailable),
			KubernetesVersion: to.Ptr("1.30.3"),
			ProvisioningState: to.Ptr(AgentPoolProvisioningStateSucceeded),
		},
	}
}

func TestAgentPoolRoundTrip(t *testing.T) {
	b, err := json.Marshal(testAgentPool())
	if err != nil {
		t.Fatal(err)
	}

	got := AgentPoolFromJSON(b)

	for _, diff := range deep.Equal(got, testAgentPool()) {
		t.Error(diff)
	}
}

func TestAgentPoolToJSONForCreate(t *testing.T) {
	b, err := jsonmodel.Marshal(testAgentPool(), jsonmodel.IncludeCreate)
	if err != nil {
		t.Fatal(err)
	}

	testjson.AssertJsonMatches(t, []byte(`{
		"location": "eastus",
		"tags": {"team": "a"},
		"extendedLocation": {
			"name": "/subscriptions/00000000-0000-0000-0000-000000000000/resourceGroups/rg/providers/Microsoft.ExtendedLocation/customLocations/cl",
			"type": "CustomLocation"
		},
		"properties": {
			"count": 3,
			"mode": "User",
			"vmSkuName": "NC_M16_v1",
			"agentOptions": {"hugepagesCount": 4, "hugepagesSize": "2M"},
			"availabilityZones": ["1", "2"],
			"labels": [{"key": "kubernetes.label", "value": "true"}],
			"upgradeSettings": {"maxSurge": "1"}
		}
	}`), b)
}

func TestAgentPoolSetAgentOptions(t *testing.T) {
	a := &AgentPool{}
	if a.GetAgentOptions() != nil {
		t.Fatal("expected no agent options")
	}

	a.SetAgentOptions(&AgentOptions{HugepagesSize: to.Ptr(HugepagesSize2M)})

	if a.GetAgentOptions() == nil || *a.GetAgentOptions().HugepagesSize != HugepagesSize2M {
		t.Error(a.GetAgentOptions())
	}
}

func TestAgentPoolPatchParameters(t *testing.T) {
	p := &AgentPoolPatchParameters{}
	p.SetCount(to.Ptr(int64(5)))

	b, err := jsonmodel.Marshal(p, jsonmodel.IncludeUpdate)
	if err != nil {
		t.Fatal(err)
	}

	testjson.AssertJsonMatches(t, []byte(`{"properties":{"count":5}}`), b)
}

func TestAgentPoolListFromJSON(t *testing.T) {
	got := AgentPoolListFromJSON([]byte(`{"value":[{"name":"a"},{"name":"b"}]}`))

	want := &AgentPoolList{
		Value: []*AgentPool{
			{Name: to.Ptr("a")},
			{Name: to.Ptr("b")},
		},
	}
	for _, diff := range deep.Equal(got, want) {
		t.Error(diff)
	}
}
