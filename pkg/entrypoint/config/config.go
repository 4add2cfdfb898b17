package config

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/go-autorest/tracing"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Azure/azps-go/pkg/env"
	"github.com/Azure/azps-go/pkg/metrics"
	metricsazure "github.com/Azure/azps-go/pkg/metrics/azure"
	"github.com/Azure/azps-go/pkg/metrics/noop"
	"github.com/Azure/azps-go/pkg/metrics/prometheus"
	"github.com/Azure/azps-go/pkg/util/azureclient"
	utillog "github.com/Azure/azps-go/pkg/util/log"
)

const metricsNamespace = "azps"

// flagKeys maps command line flags onto the configuration keys they
// override.
var flagKeys = map[string]string{
	"log-level":      env.EnvLogLevel,
	"subscription":   env.EnvSubscriptionID,
	"resource-group": env.EnvResourceGroup,
	"vault":          env.EnvVaultName,
}

// Common is the configuration every subcommand starts from.
type Common struct {
	Env     env.Interface
	Log     *logrus.Entry
	Metrics metrics.Emitter

	Credential  azcore.TokenCredential
	Middlewares []azureclient.Middleware
}

// AddCommonFlags registers the flags understood by CommonConfigFromCmd.
func AddCommonFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String("log-level", logrus.InfoLevel.String(), "log level")
	cmd.PersistentFlags().String("subscription", "", "subscription id (AZPS_AZURE_SUBSCRIPTION_ID)")
	cmd.PersistentFlags().StringP("resource-group", "g", "", "resource group (AZPS_RESOURCE_GROUP)")
}

// BindFlags binds the flags of cmd that override configuration keys.
func BindFlags(cfg *viper.Viper, cmd *cobra.Command) error {
	for name, key := range flagKeys {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			continue
		}

		if err := cfg.BindPFlag(key, f); err != nil {
			return err
		}
	}

	return nil
}

// CommonConfigFromCmd builds logging, configuration, credentials and metrics
// for a subcommand. client names the service in emitted metrics.
func CommonConfigFromCmd(cmd *cobra.Command, client string) (*Common, error) {
	cfg := env.NewConfig()

	err := BindFlags(cfg, cmd)
	if err != nil {
		return nil, err
	}

	log := utillog.GetLogger()
	utillog.SetLevel(log, cfg.GetString(env.EnvLogLevel))
	utillog.ForwardAzcoreLogs(log)
	azureclient.Logger = log

	_env, err := env.New(log, cfg)
	if err != nil {
		return nil, err
	}

	credential, err := _env.NewTokenCredential()
	if err != nil {
		return nil, err
	}

	m, err := newEmitter(log, _env)
	if err != nil {
		return nil, err
	}

	tracing.Register(metricsazure.New(m))

	return &Common{
		Env:     _env,
		Log:     log,
		Metrics: m,

		Credential:  credential,
		Middlewares: []azureclient.Middleware{metricsazure.NewMiddleware(m, client)},
	}, nil
}

// newEmitter only gathers metrics when there is a Pushgateway to send them
// to.
func newEmitter(log *logrus.Entry, _env env.Interface) (metrics.Emitter, error) {
	if _env.MetricsPushgateway() == "" {
		return &noop.Noop{}, nil
	}

	return prometheus.New(log, metricsNamespace)
}

// Finish pushes the metrics gathered by the command when a Pushgateway is
// configured. A failed push is logged and does not fail the command.
func (c *Common) Finish(ctx context.Context) {
	m, ok := c.Metrics.(*prometheus.Emitter)
	if !ok {
		return
	}

	err := m.Push(ctx, c.Env.MetricsPushgateway(), metricsNamespace)
	if err != nil {
		c.Log.Warnf("pushing metrics: %v", err)
	}
}

// Print writes v to w as indented JSON.
func Print(w io.Writer, v interface{}) error {
	b, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))
	return err
}

// ReadInput decodes the JSON document at path into v. A path of "-" reads
// from r.
func ReadInput(r io.Reader, path string, v interface{}) error {
	var b []byte
	var err error

	if path == "-" {
		b, err = io.ReadAll(r)
	} else {
		b, err = os.ReadFile(path)
	}
	if err != nil {
		return err
	}

	return json.Unmarshal(b, v)
}
