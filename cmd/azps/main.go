package main

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Azure/azps-go/pkg/entrypoint/config"
	"github.com/Azure/azps-go/pkg/entrypoint/labservices"
	"github.com/Azure/azps-go/pkg/entrypoint/network"
	"github.com/Azure/azps-go/pkg/entrypoint/networkcloud"
	"github.com/Azure/azps-go/pkg/entrypoint/siterecovery"
	"github.com/Azure/azps-go/pkg/entrypoint/versions"
	azureerrors "github.com/Azure/azps-go/pkg/util/azureclient/azuresdk/errors"
	utillog "github.com/Azure/azps-go/pkg/util/log"
)

var (
	gitCommit = "unknown"
)

func main() {
	cc := &cobra.Command{
		Use:           "azps",
		Short:         "Azure management client for Lab Services, Network Cloud, Network and Site Recovery",
		Version:       gitCommit,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	config.AddCommonFlags(cc)

	cc.AddCommand(
		labservices.NewCommand(),
		network.NewCommand(),
		networkcloud.NewCommand(),
		siterecovery.NewCommand(),
		versions.NewCommand(),
	)

	if err := cc.Execute(); err != nil {
		log := utillog.GetLogger()
		if code := azureerrors.StatusCode(err); code != 0 {
			log = log.WithField("status_code", code)
		}

		switch {
		case azureerrors.IsNotFoundError(err):
			log.Error("resource not found")
		case azureerrors.IsConflictError(err):
			log.Error("resource is busy or in a conflicting state, retry later")
		}
		log.Error(err)

		os.Exit(1)
	}
}
