package network

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Azure/azps-go/pkg/entrypoint/config"
	"github.com/Azure/azps-go/pkg/env"
	pkgnetwork "github.com/Azure/azps-go/pkg/network"
)

type runFunc func(ctx context.Context, cmd *cobra.Command, c pkgnetwork.Client, resourceGroup, watcher string) (interface{}, error)

// NewCommand returns the cobra command for "network".
func NewCommand() *cobra.Command {
	cc := &cobra.Command{
		Use:   "network",
		Short: "Manage network watchers and packet captures",
	}
	cc.PersistentFlags().String("watcher", "", "network watcher name")
	_ = cc.MarkPersistentFlagRequired("watcher")

	watcherCmd := &cobra.Command{
		Use:   "watcher",
		Short: "Inspect a network watcher",
	}
	watcherCmd.AddCommand(
		newCommand("get", "Get a network watcher", false, func(ctx context.Context, cmd *cobra.Command, c pkgnetwork.Client, resourceGroup, watcher string) (interface{}, error) {
			return c.GetNetworkWatcher(ctx, resourceGroup, watcher)
		}),
	)

	packetCaptureCmd := &cobra.Command{
		Use:   "packetcapture",
		Short: "Manage packet captures",
	}
	packetCaptureCmd.AddCommand(
		newPacketCaptureCommand(),
		newCommand("get", "Get a packet capture", true, func(ctx context.Context, cmd *cobra.Command, c pkgnetwork.Client, resourceGroup, watcher string) (interface{}, error) {
			return c.GetPacketCapture(ctx, resourceGroup, watcher, getString(cmd, "name"))
		}),
		newCommand("list", "List packet captures", false, func(ctx context.Context, cmd *cobra.Command, c pkgnetwork.Client, resourceGroup, watcher string) (interface{}, error) {
			return c.ListPacketCaptures(ctx, resourceGroup, watcher)
		}),
		newCommand("stop", "Stop a packet capture", true, func(ctx context.Context, cmd *cobra.Command, c pkgnetwork.Client, resourceGroup, watcher string) (interface{}, error) {
			return nil, c.StopPacketCapture(ctx, resourceGroup, watcher, getString(cmd, "name"))
		}),
		newCommand("remove", "Remove a packet capture", true, func(ctx context.Context, cmd *cobra.Command, c pkgnetwork.Client, resourceGroup, watcher string) (interface{}, error) {
			return nil, c.RemovePacketCapture(ctx, resourceGroup, watcher, getString(cmd, "name"))
		}),
	)

	cc.AddCommand(watcherCmd, packetCaptureCmd)

	return cc
}

func newCommand(use, short string, named bool, f runFunc) *cobra.Command {
	cc := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f)
		},
	}

	if named {
		cc.Flags().String("name", "", "packet capture name")
		_ = cc.MarkFlagRequired("name")
	}

	return cc
}

func newPacketCaptureCommand() *cobra.Command {
	cc := newCommand("new", "Start a packet capture", true, func(ctx context.Context, cmd *cobra.Command, c pkgnetwork.Client, resourceGroup, watcher string) (interface{}, error) {
		parameters, err := packetCaptureParametersFromFlags(cmd)
		if err != nil {
			return nil, err
		}

		return c.NewPacketCapture(ctx, resourceGroup, watcher, getString(cmd, "name"), parameters)
	})
	cc.Flags().String("target", "", "resource id of the virtual machine to capture on")
	_ = cc.MarkFlagRequired("target")
	cc.Flags().Int32("time-limit", 0, "maximum capture duration in seconds")
	cc.Flags().String("storage-id", "", "storage account resource id")
	cc.Flags().String("storage-path", "", "storage blob uri")
	cc.Flags().String("file-path", "", "local file path on the target")
	cc.Flags().StringArray("filter", nil, "filter as protocol=TCP,localIPAddress=...,remoteIPAddress=...,localPort=...,remotePort=...")

	return cc
}

func packetCaptureParametersFromFlags(cmd *cobra.Command) (*pkgnetwork.PSPacketCaptureParameters, error) {
	parameters := &pkgnetwork.PSPacketCaptureParameters{
		Target: getString(cmd, "target"),
	}

	if cmd.Flags().Changed("time-limit") {
		timeLimit, err := cmd.Flags().GetInt32("time-limit")
		if err != nil {
			return nil, err
		}
		parameters.TimeLimitInSeconds = &timeLimit
	}

	storageLocation := &pkgnetwork.PSStorageLocation{
		StorageID:   getString(cmd, "storage-id"),
		StoragePath: getString(cmd, "storage-path"),
		FilePath:    getString(cmd, "file-path"),
	}
	if *storageLocation != (pkgnetwork.PSStorageLocation{}) {
		parameters.StorageLocation = storageLocation
	}

	filters, err := cmd.Flags().GetStringArray("filter")
	if err != nil {
		return nil, err
	}

	for _, f := range filters {
		filter, err := parseFilter(f)
		if err != nil {
			return nil, err
		}
		parameters.Filters = append(parameters.Filters, filter)
	}

	return parameters, nil
}

// parseFilter parses a comma separated list of key=value pairs. Keys match
// PSPacketCaptureFilter field names case-insensitively.
func parseFilter(s string) (*pkgnetwork.PSPacketCaptureFilter, error) {
	filter := &pkgnetwork.PSPacketCaptureFilter{}

	for _, pair := range strings.Split(s, ",") {
		k, v, found := strings.Cut(pair, "=")
		if !found {
			return nil, fmt.Errorf("invalid filter %q: expected key=value", pair)
		}

		switch strings.ToLower(strings.TrimSpace(k)) {
		case "protocol":
			filter.Protocol = strings.ToUpper(v)
		case "localipaddress":
			filter.LocalIPAddress = v
		case "remoteipaddress":
			filter.RemoteIPAddress = v
		case "localport":
			filter.LocalPort = v
		case "remoteport":
			filter.RemotePort = v
		default:
			return nil, fmt.Errorf("invalid filter key %q", k)
		}
	}

	return filter, nil
}

func run(cmd *cobra.Command, f runFunc) error {
	common, err := config.CommonConfigFromCmd(cmd, "network")
	if err != nil {
		return err
	}

	err = common.Env.ValidateVars(env.EnvResourceGroup)
	if err != nil {
		return err
	}

	ctx := context.Background()
	defer common.Finish(ctx)

	client, err := pkgnetwork.NewClient(common.Log, common.Env.Environment(), common.Env.SubscriptionID(), common.Credential, common.Env.NewAuthorizer(common.Credential), common.Middlewares...)
	if err != nil {
		return err
	}

	result, err := f(ctx, cmd, client, common.Env.ResourceGroup(), getString(cmd, "watcher"))
	if err != nil {
		return err
	}

	if result == nil {
		return nil
	}

	return config.Print(cmd.OutOrStdout(), result)
}

func getString(cmd *cobra.Command, name string) string {
	s, _ := cmd.Flags().GetString(name)
	return s
}
