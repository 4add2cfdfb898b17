package networkcloud

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"

	"github.com/spf13/cobra"

	apinetworkcloud "github.com/Azure/azps-go/pkg/api/networkcloud/v20250201"
	"github.com/Azure/azps-go/pkg/entrypoint/config"
	"github.com/Azure/azps-go/pkg/env"
	pkgnetworkcloud "github.com/Azure/azps-go/pkg/networkcloud"
)

// agentPool identifies an agent pool from the command line.
type agentPool struct {
	resourceGroup string
	cluster       string
	name          string
}

type runFunc func(context.Context, *cobra.Command, pkgnetworkcloud.Client, *agentPool) (interface{}, error)

// NewCommand returns the cobra command for "networkcloud".
func NewCommand() *cobra.Command {
	cc := &cobra.Command{
		Use:   "networkcloud",
		Short: "Manage agent pools of Network Cloud Kubernetes clusters",
	}

	agentPoolCmd := &cobra.Command{
		Use:   "agentpool",
		Short: "Manage agent pools",
	}
	agentPoolCmd.PersistentFlags().String("cluster", "", "Kubernetes cluster name")
	_ = agentPoolCmd.MarkPersistentFlagRequired("cluster")

	agentPoolCmd.AddCommand(
		newCommand("get", "Get an agent pool", true, func(ctx context.Context, cmd *cobra.Command, c pkgnetworkcloud.Client, ap *agentPool) (interface{}, error) {
			return c.GetAgentPool(ctx, ap.resourceGroup, ap.cluster, ap.name)
		}),
		newCommand("list", "List the agent pools of a cluster", false, func(ctx context.Context, cmd *cobra.Command, c pkgnetworkcloud.Client, ap *agentPool) (interface{}, error) {
			return c.ListAgentPools(ctx, ap.resourceGroup, ap.cluster)
		}),
		withInput(newCommand("create", "Create or replace an agent pool", true, func(ctx context.Context, cmd *cobra.Command, c pkgnetworkcloud.Client, ap *agentPool) (interface{}, error) {
			var body apinetworkcloud.AgentPool
			err := config.ReadInput(cmd.InOrStdin(), getString(cmd, "input"), &body)
			if err != nil {
				return nil, err
			}

			return c.CreateOrUpdateAgentPool(ctx, ap.resourceGroup, ap.cluster, ap.name, body)
		})),
		withInput(newCommand("update", "Patch an agent pool", true, func(ctx context.Context, cmd *cobra.Command, c pkgnetworkcloud.Client, ap *agentPool) (interface{}, error) {
			var body apinetworkcloud.AgentPoolPatchParameters
			err := config.ReadInput(cmd.InOrStdin(), getString(cmd, "input"), &body)
			if err != nil {
				return nil, err
			}

			return c.UpdateAgentPool(ctx, ap.resourceGroup, ap.cluster, ap.name, body)
		})),
		newScaleCommand(),
		newCommand("delete", "Delete an agent pool", true, func(ctx context.Context, cmd *cobra.Command, c pkgnetworkcloud.Client, ap *agentPool) (interface{}, error) {
			return nil, c.DeleteAgentPool(ctx, ap.resourceGroup, ap.cluster, ap.name)
		}),
	)

	cc.AddCommand(agentPoolCmd)

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
		cc.Flags().String("name", "", "agent pool name")
		_ = cc.MarkFlagRequired("name")
	}

	return cc
}

func withInput(cc *cobra.Command) *cobra.Command {
	cc.Flags().String("input", "-", "JSON request body, - for stdin")
	return cc
}

func newScaleCommand() *cobra.Command {
	cc := newCommand("scale", "Change the node count of an agent pool", true, func(ctx context.Context, cmd *cobra.Command, c pkgnetworkcloud.Client, ap *agentPool) (interface{}, error) {
		count, err := cmd.Flags().GetInt64("count")
		if err != nil {
			return nil, err
		}

		return c.ScaleAgentPool(ctx, ap.resourceGroup, ap.cluster, ap.name, count)
	})
	cc.Flags().Int64("count", 0, "desired node count")
	_ = cc.MarkFlagRequired("count")

	return cc
}

func run(cmd *cobra.Command, f runFunc) error {
	common, err := config.CommonConfigFromCmd(cmd, "networkcloud")
	if err != nil {
		return err
	}

	err = common.Env.ValidateVars(env.EnvResourceGroup)
	if err != nil {
		return err
	}

	ctx := context.Background()
	defer common.Finish(ctx)

	client, err := pkgnetworkcloud.NewClient(common.Log, common.Env.Environment(), common.Env.SubscriptionID(), common.Credential, common.Middlewares...)
	if err != nil {
		return err
	}

	result, err := f(ctx, cmd, client, &agentPool{
		resourceGroup: common.Env.ResourceGroup(),
		cluster:       getString(cmd, "cluster"),
		name:          getString(cmd, "name"),
	})
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
