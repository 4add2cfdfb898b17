package network

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"testing"

	"github.com/go-test/deep"
	"github.com/stretchr/testify/require"

	pkgnetwork "github.com/Azure/azps-go/pkg/network"
	utilerror "github.com/Azure/azps-go/test/util/error"
)

func TestPacketCaptureParametersFromFlags(t *testing.T) {
	sixty := int32(60)

	for _, tt := range []struct {
		name    string
		args    []string
		want    *pkgnetwork.PSPacketCaptureParameters
		wantErr string
	}{
		{
			name: "target only",
			args: []string{"--target", "vm"},
			want: &pkgnetwork.PSPacketCaptureParameters{
				Target: "vm",
			},
		},
		{
			name: "everything",
			args: []string{
				"--target", "vm",
				"--time-limit", "60",
				"--file-path", "/var/captures/capture.cap",
				"--filter", "protocol=tcp,localPort=443",
				"--filter", "remoteIPAddress=10.0.0.1",
			},
			want: &pkgnetwork.PSPacketCaptureParameters{
				Target:             "vm",
				TimeLimitInSeconds: &sixty,
				StorageLocation: &pkgnetwork.PSStorageLocation{
					FilePath: "/var/captures/capture.cap",
				},
				Filters: []*pkgnetwork.PSPacketCaptureFilter{
					{
						Protocol:  "TCP",
						LocalPort: "443",
					},
					{
						RemoteIPAddress: "10.0.0.1",
					},
				},
			},
		},
		{
			name:    "unknown filter key",
			args:    []string{"--target", "vm", "--filter", "port=443"},
			wantErr: `invalid filter key "port"`,
		},
		{
			name:    "malformed filter",
			args:    []string{"--target", "vm", "--filter", "tcp"},
			wantErr: `invalid filter "tcp": expected key=value`,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newPacketCaptureCommand()
			require.NoError(t, cmd.ParseFlags(tt.args))

			got, err := packetCaptureParametersFromFlags(cmd)
			utilerror.AssertErrorMessage(t, err, tt.wantErr)

			for _, diff := range deep.Equal(got, tt.want) {
				t.Error(diff)
			}
		})
	}
}
