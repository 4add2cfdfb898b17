package labservices

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/go-test/deep"

	"github.com/Azure/azps-go/pkg/util/jsonmodel"
	testjson "github.com/Azure/azps-go/test/util/json"
)

func TestAutoShutdownProfileToJSON(t *testing.T) {
	for _, tt := range []struct {
		name    string
		profile *AutoShutdownProfile
		want    string
	}{
		{
			name:    "empty",
			profile: &AutoShutdownProfile{},
			want:    `{}`,
		},
		{
			name: "disconnect delay only",
			profile: &AutoShutdownProfile{
				DisconnectDelay: to.Ptr(2 * time.Hour),
			},
			want: `{"disconnectDelay":"PT2H"}`,
		},
		{
			name: "all fields",
			profile: &AutoShutdownProfile{
				ShutdownOnDisconnect:     to.Ptr(EnableStateEnabled),
				ShutdownWhenNotConnected: to.Ptr(EnableStateDisabled),
				ShutdownOnIdle:           to.Ptr(ShutdownOnIdleModeLowUsage),
				DisconnectDelay:          to.Ptr(15 * time.Minute),
				NoConnectDelay:           to.Ptr(30 * time.Minute),
				IdleDelay:                to.Ptr(90 * time.Minute),
			},
			want: `{
				"shutdownOnDisconnect": "Enabled",
				"shutdownWhenNotConnected": "Disabled",
				"shutdownOnIdle": "LowUsage",
				"disconnectDelay": "PT15M",
				"noConnectDelay": "PT30M",
				"idleDelay": "PT1H30M"
			}`,
		},
		{
			name: "explicit zero delay is written",
			profile: &AutoShutdownProfile{
				IdleDelay: to.Ptr(time.Duration(0)),
			},
			want: `{"idleDelay":"PT0S"}`,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(tt.profile)
			if err != nil {
				t.Fatal(err)
			}

			testjson.AssertJsonMatches(t, []byte(tt.want), b)
		})
	}
}

func TestAutoShutdownProfileFromJSON(t *testing.T) {
	for _, tt := range []struct {
		name  string
		input string
		want  *AutoShutdownProfile
	}{
		{
			name:  "disconnect delay only",
			input: `{"disconnectDelay":"PT2H"}`,
			want: &AutoShutdownProfile{
				DisconnectDelay: to.Ptr(2 * time.Hour),
			},
		},
		{
			name:  "unknown keys and bad values are ignored",
			input: `{"shutdownOnIdle":"Sometimes","idleDelay":15,"extra":"x","shutdownOnDisconnect":"enabled"}`,
			want: &AutoShutdownProfile{
				ShutdownOnDisconnect: to.Ptr(EnableStateEnabled),
			},
		},
		{
			name:  "not an object",
			input: `["PT2H"]`,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got := AutoShutdownProfileFromJSON([]byte(tt.input))

			for _, diff := range deep.Equal(got, tt.want) {
				t.Error(diff)
			}
		})
	}
}

func TestAutoShutdownProfileRoundTrip(t *testing.T) {
	want := &AutoShutdownProfile{
		ShutdownOnDisconnect:     to.Ptr(EnableStateDisabled),
		ShutdownWhenNotConnected: to.Ptr(EnableStateEnabled),
		ShutdownOnIdle:           to.Ptr(ShutdownOnIdleModeUserAbsence),
		DisconnectDelay:          to.Ptr(5 * time.Minute),
		NoConnectDelay:           to.Ptr(20 * time.Minute),
		IdleDelay:                to.Ptr(3 * time.Hour),
	}

	b, err := json.Marshal(want)
	if err != nil {
		t.Fatal(err)
	}

	var got AutoShutdownProfile
	err = json.Unmarshal(b, &got)
	if err != nil {
		t.Fatal(err)
	}

	for _, diff := range deep.Equal(&got, want) {
		t.Error(diff)
	}
}

func TestAutoShutdownProfileCodecHooks(t *testing.T) {
	// a caller-supplied default which the service omits from the wire
	codec := AutoShutdownProfileCodec(jsonmodel.Hooks[AutoShutdownProfile]{
		AfterFromJSON: func(o jsonmodel.Object, p *AutoShutdownProfile) {
			if p.ShutdownOnIdle == nil {
				p.ShutdownOnIdle = to.Ptr(ShutdownOnIdleModeNone)
			}
		},
	})

	got := codec.FromJSON([]byte(`{"idleDelay":"PT10M"}`))

	want := &AutoShutdownProfile{
		ShutdownOnIdle: to.Ptr(ShutdownOnIdleModeNone),
		IdleDelay:      to.Ptr(10 * time.Minute),
	}
	for _, diff := range deep.Equal(got, want) {
		t.Error(diff)
	}

	// the default codec is unaffected
	got = AutoShutdownProfileFromJSON([]byte(`{"idleDelay":"PT10M"}`))
	if got.ShutdownOnIdle != nil {
		t.Error(*got.ShutdownOnIdle)
	}
}
