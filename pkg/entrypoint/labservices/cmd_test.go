package labservices

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"testing"
	"time"

	"github.com/go-test/deep"
	"github.com/stretchr/testify/require"

	apilabservices "github.com/Azure/azps-go/pkg/api/labservices"
	utilerror "github.com/Azure/azps-go/test/util/error"
)

func TestAutoShutdownProfileFromFlags(t *testing.T) {
	enabled := apilabservices.EnableStateEnabled
	lowUsage := apilabservices.ShutdownOnIdleModeLowUsage
	fifteenMinutes := 15 * time.Minute
	twoHours := 2 * time.Hour

	for _, tt := range []struct {
		name    string
		args    []string
		want    *apilabservices.AutoShutdownProfile
		wantErr string
	}{
		{
			name: "nothing set",
			want: &apilabservices.AutoShutdownProfile{},
		},
		{
			name: "settings are parsed case-insensitively",
			args: []string{
				"--shutdown-on-disconnect", "enabled",
				"--shutdown-on-idle", "LOWUSAGE",
				"--disconnect-delay", "PT15M",
				"--idle-delay", "PT2H",
			},
			want: &apilabservices.AutoShutdownProfile{
				ShutdownOnDisconnect: &enabled,
				ShutdownOnIdle:       &lowUsage,
				DisconnectDelay:      &fifteenMinutes,
				IdleDelay:            &twoHours,
			},
		},
		{
			name:    "invalid enum",
			args:    []string{"--shutdown-when-not-connected", "Sometimes"},
			wantErr: `invalid --shutdown-when-not-connected "Sometimes", expected one of [Enabled Disabled]`,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newAutoShutdownCommand()
			require.NoError(t, cmd.ParseFlags(tt.args))

			got, err := autoShutdownProfileFromFlags(cmd)
			utilerror.AssertErrorMessage(t, err, tt.wantErr)

			for _, diff := range deep.Equal(got, tt.want) {
				t.Error(diff)
			}
		})
	}
}

func TestInvalidDelay(t *testing.T) {
	cmd := newAutoShutdownCommand()
	require.NoError(t, cmd.ParseFlags([]string{"--no-connect-delay", "fifteen minutes"}))

	_, err := autoShutdownProfileFromFlags(cmd)
	require.ErrorContains(t, err, "invalid --no-connect-delay")
}
