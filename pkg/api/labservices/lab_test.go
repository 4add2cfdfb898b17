package labservices

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"testing"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/go-test/deep"

	"github.com/Azure/azps-go/pkg/util/jsonmodel"
	testjson "github.com/Azure/azps-go/test/util/json"
)

func TestLabFromJSON(t *testing.T) {
	got := LabFromJSON([]byte(`{
		"id": "/subscriptions/00000000-0000-0000-0000-000000000000/resourceGroups/rg/providers/Microsoft.LabServices/labs/lab",
		"name": "lab",
		"location": "westus",
		"tags": {"env": "test"},
		"properties": {
			"title": "Lab",
			"autoShutdownProfile": {
				"shutdownOnDisconnect": "Enabled",
				"disconnectDelay": "PT15M"
			},
			"connectionProfile": {"webSshAccess": "None"},
			"provisioningState": "Succeeded",
			"state": "Published"
		}
	}`))

	want := &Lab{
		ID:       to.Ptr("/subscriptions/00000000-0000-0000-0000-000000000000/resourceGroups/rg/providers/Microsoft.LabServices/labs/lab"),
		Name:     to.Ptr("lab"),
		Location: to.Ptr("westus"),
		Tags:     map[string]string{"env": "test"},
		Properties: &LabProperties{
			Title: to.Ptr("Lab"),
			AutoShutdownProfile: &AutoShutdownProfile{
				ShutdownOnDisconnect: to.Ptr(EnableStateEnabled),
				DisconnectDelay:      to.Ptr(15 * time.Minute),
			},
			ProvisioningState: to.Ptr(ProvisioningStateSucceeded),
			State:             to.Ptr(LabStatePublished),
		},
	}

	for _, diff := range deep.Equal(got, want) {
		t.Error(diff)
	}
}

func TestLabCodecHooks(t *testing.T) {
	const body = `{"name":"lab","properties":{"title":"Lab"}}`

	var labCalls int
	propertiesCodec := LabPropertiesCodec(jsonmodel.Hooks[LabProperties]{
		AfterFromJSON: func(o jsonmodel.Object, p *LabProperties) {
			if p.Description == nil {
				p.Description = to.Ptr("none")
			}
		},
	})

	// hooks on the lab codec do not reach the nested properties
	got := LabCodec(jsonmodel.Hooks[Lab]{
		AfterFromJSON: func(o jsonmodel.Object, l *Lab) {
			labCalls++
		},
	}).FromJSON([]byte(body))

	if labCalls != 1 {
		t.Error(labCalls)
	}
	if got.Properties.Description != nil {
		t.Error(*got.Properties.Description)
	}

	// a nested hook runs when the member is decoded with its own codec
	got = LabCodec(jsonmodel.Hooks[Lab]{
		AfterFromJSON: func(o jsonmodel.Object, l *Lab) {
			if v, ok := o.Object("properties"); ok {
				l.Properties = propertiesCodec.FromObject(v)
			}
		},
	}).FromJSON([]byte(body))

	want := &Lab{
		Name: to.Ptr("lab"),
		Properties: &LabProperties{
			Title:       to.Ptr("Lab"),
			Description: to.Ptr("none"),
		},
	}
	for _, diff := range deep.Equal(got, want) {
		t.Error(diff)
	}
}

func TestLabUpdateToJSON(t *testing.T) {
	for _, tt := range []struct {
		name   string
		update func() *LabUpdate
		want   string
	}{
		{
			name:   "empty",
			update: func() *LabUpdate { return &LabUpdate{} },
			want:   `{}`,
		},
		{
			name: "auto-shutdown profile only",
			update: func() *LabUpdate {
				u := &LabUpdate{}
				u.SetAutoShutdownProfile(&AutoShutdownProfile{
					ShutdownOnIdle: to.Ptr(ShutdownOnIdleModeUserAbsence),
					IdleDelay:      to.Ptr(time.Hour),
				})
				return u
			},
			want: `{"properties":{"autoShutdownProfile":{"shutdownOnIdle":"UserAbsence","idleDelay":"PT1H"}}}`,
		},
		{
			name: "tags and title",
			update: func() *LabUpdate {
				return &LabUpdate{
					Tags: map[string]string{"env": "prod"},
					Properties: &LabUpdateProperties{
						Title: to.Ptr("New title"),
					},
				}
			},
			want: `{"tags":{"env":"prod"},"properties":{"title":"New title"}}`,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			b, err := jsonmodel.Marshal(tt.update(), jsonmodel.IncludeUpdate)
			if err != nil {
				t.Fatal(err)
			}

			testjson.AssertJsonMatches(t, []byte(tt.want), b)
		})
	}
}
