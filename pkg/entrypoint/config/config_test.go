package config

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/Azure/azps-go/pkg/env"
	"github.com/Azure/azps-go/pkg/metrics/noop"
	testlog "github.com/Azure/azps-go/test/util/log"
)

func TestBindFlags(t *testing.T) {
	t.Setenv("AZPS_RESOURCE_GROUP", "from-env")
	t.Setenv("AZPS_AZURE_SUBSCRIPTION_ID", "sub-from-env")

	cmd := &cobra.Command{Use: "test"}
	AddCommonFlags(cmd)
	cmd.PersistentFlags().String("vault", "", "")

	require.NoError(t, cmd.ParseFlags([]string{"--resource-group", "from-flag", "--vault", "vault"}))

	cfg := env.NewConfig()
	require.NoError(t, BindFlags(cfg, cmd))

	require.Equal(t, "from-flag", cfg.GetString(env.EnvResourceGroup))
	require.Equal(t, "vault", cfg.GetString(env.EnvVaultName))
	require.Equal(t, "sub-from-env", cfg.GetString(env.EnvSubscriptionID))
	require.Equal(t, "info", cfg.GetString(env.EnvLogLevel))
}

func TestBindFlagsSkipsMissing(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}

	cfg := viper.New()
	require.NoError(t, BindFlags(cfg, cmd))
	require.Empty(t, cfg.GetString(env.EnvVaultName))
}

func TestPrint(t *testing.T) {
	var b bytes.Buffer

	err := Print(&b, map[string]interface{}{"Status": "Accepted"})
	require.NoError(t, err)
	require.Equal(t, "{\n    \"Status\": \"Accepted\"\n}\n", b.String())
}

func TestReadInput(t *testing.T) {
	var v struct {
		Properties struct {
			Comments string `json:"comments"`
		} `json:"properties"`
	}

	err := ReadInput(strings.NewReader(`{"properties":{"comments":"done"}}`), "-", &v)
	require.NoError(t, err)
	require.Equal(t, "done", v.Properties.Comments)

	err = ReadInput(strings.NewReader(""), "/nonexistent/input.json", &v)
	require.Error(t, err)
}

func TestNewEmitter(t *testing.T) {
	for _, tt := range []struct {
		name        string
		pushgateway string
		wantNoop    bool
	}{
		{
			name:     "no pushgateway",
			wantNoop: true,
		},
		{
			name:        "pushgateway",
			pushgateway: "http://localhost:9091",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			cfg := viper.New()
			cfg.Set(env.EnvSubscriptionID, "sub")
			cfg.Set(env.EnvMetricsPushgateway, tt.pushgateway)

			_, log := testlog.NewCapturingLogger()

			_env, err := env.New(log, cfg)
			require.NoError(t, err)

			m, err := newEmitter(log, _env)
			require.NoError(t, err)

			_, isNoop := m.(*noop.Noop)
			require.Equal(t, tt.wantNoop, isNoop)
		})
	}
}
