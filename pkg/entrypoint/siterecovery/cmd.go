package siterecovery

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Azure/azps-go/pkg/entrypoint/config"
	"github.com/Azure/azps-go/pkg/env"
	sdksiterecovery "github.com/Azure/azps-go/pkg/sdk/armsiterecovery"
	"github.com/Azure/azps-go/pkg/siterecovery"
)

// item identifies a replication protected item from the command line.
type item struct {
	fabric    string
	container string
	name      string
}

type runFunc func(context.Context, siterecovery.RecoveryServicesClient, *item) (interface{}, error)

// NewCommand returns the cobra command for "siterecovery".
func NewCommand() *cobra.Command {
	cc := &cobra.Command{
		Use:   "siterecovery",
		Short: "Manage replication protected items of a Recovery Services vault",
	}

	cc.PersistentFlags().String("vault", "", "Recovery Services vault name (AZPS_VAULT_NAME)")
	cc.PersistentFlags().String("fabric", "", "fabric name")
	cc.PersistentFlags().String("container", "", "protection container name")

	cc.AddCommand(
		newCommand("get", "Get a replication protected item", true, func(ctx context.Context, c siterecovery.RecoveryServicesClient, i *item) (interface{}, error) {
			return c.GetReplicationProtectedItem(ctx, i.fabric, i.container, i.name)
		}),
		newListCommand(),

		newInputCommand("enable", "Enable protection", func(ctx context.Context, c siterecovery.RecoveryServicesClient, i *item, input sdksiterecovery.EnableProtectionInput) (*siterecovery.PSSiteRecoveryLongRunningOperation, error) {
			return c.EnableProtection(ctx, i.fabric, i.container, i.name, input)
		}),
		newInputCommand("disable", "Disable protection", func(ctx context.Context, c siterecovery.RecoveryServicesClient, i *item, input sdksiterecovery.DisableProtectionInput) (*siterecovery.PSSiteRecoveryLongRunningOperation, error) {
			return c.DisableProtection(ctx, i.fabric, i.container, i.name, input)
		}),
		newCommand("purge", "Purge protection", true, func(ctx context.Context, c siterecovery.RecoveryServicesClient, i *item) (interface{}, error) {
			return c.PurgeProtection(ctx, i.fabric, i.container, i.name)
		}),
		newInputCommand("add-disks", "Add disks to replication", func(ctx context.Context, c siterecovery.RecoveryServicesClient, i *item, input sdksiterecovery.AddDisksInput) (*siterecovery.PSSiteRecoveryLongRunningOperation, error) {
			return c.AddDisks(ctx, i.fabric, i.container, i.name, input)
		}),
		newInputCommand("remove-disks", "Remove disks from replication", func(ctx context.Context, c siterecovery.RecoveryServicesClient, i *item, input sdksiterecovery.RemoveDisksInput) (*siterecovery.PSSiteRecoveryLongRunningOperation, error) {
			return c.RemoveDisks(ctx, i.fabric, i.container, i.name, input)
		}),
		newInputCommand("apply-recovery-point", "Apply a recovery point", func(ctx context.Context, c siterecovery.RecoveryServicesClient, i *item, input sdksiterecovery.ApplyRecoveryPointInput) (*siterecovery.PSSiteRecoveryLongRunningOperation, error) {
			return c.StartApplyRecoveryPoint(ctx, i.fabric, i.container, i.name, input)
		}),
		newCommand("commit-failover", "Commit a failover", true, func(ctx context.Context, c siterecovery.RecoveryServicesClient, i *item) (interface{}, error) {
			return c.StartCommitFailover(ctx, i.fabric, i.container, i.name)
		}),
		newCommand("cancel-failover", "Cancel a failover", true, func(ctx context.Context, c siterecovery.RecoveryServicesClient, i *item) (interface{}, error) {
			return c.StartCancelFailover(ctx, i.fabric, i.container, i.name)
		}),
		newInputCommand("planned-failover", "Start a planned failover", func(ctx context.Context, c siterecovery.RecoveryServicesClient, i *item, input sdksiterecovery.PlannedFailoverInput) (*siterecovery.PSSiteRecoveryLongRunningOperation, error) {
			return c.StartPlannedFailover(ctx, i.fabric, i.container, i.name, input)
		}),
		newInputCommand("reprotect", "Reverse replication", func(ctx context.Context, c siterecovery.RecoveryServicesClient, i *item, input sdksiterecovery.ReverseReplicationInput) (*siterecovery.PSSiteRecoveryLongRunningOperation, error) {
			return c.StartReprotection(ctx, i.fabric, i.container, i.name, input)
		}),
		newInputCommand("test-failover", "Start a test failover", func(ctx context.Context, c siterecovery.RecoveryServicesClient, i *item, input sdksiterecovery.TestFailoverInput) (*siterecovery.PSSiteRecoveryLongRunningOperation, error) {
			return c.StartTestFailover(ctx, i.fabric, i.container, i.name, input)
		}),
		newInputCommand("test-failover-cleanup", "Clean up a test failover", func(ctx context.Context, c siterecovery.RecoveryServicesClient, i *item, input sdksiterecovery.TestFailoverCleanupInput) (*siterecovery.PSSiteRecoveryLongRunningOperation, error) {
			return c.StartTestFailoverCleanup(ctx, i.fabric, i.container, i.name, input)
		}),
		newInputCommand("unplanned-failover", "Start an unplanned failover", func(ctx context.Context, c siterecovery.RecoveryServicesClient, i *item, input sdksiterecovery.UnplannedFailoverInput) (*siterecovery.PSSiteRecoveryLongRunningOperation, error) {
			return c.StartUnplannedFailover(ctx, i.fabric, i.container, i.name, input)
		}),
		newCommand("resync", "Resynchronize replication", true, func(ctx context.Context, c siterecovery.RecoveryServicesClient, i *item) (interface{}, error) {
			return c.StartResynchronizeReplication(ctx, i.fabric, i.container, i.name)
		}),
		newInputCommand("update-mobility-service", "Update the mobility service", func(ctx context.Context, c siterecovery.RecoveryServicesClient, i *item, input sdksiterecovery.UpdateMobilityServiceRequest) (*siterecovery.PSSiteRecoveryLongRunningOperation, error) {
			return c.UpdateMobilityService(ctx, i.fabric, i.container, i.name, input)
		}),
		newInputCommand("update", "Update virtual machine properties", func(ctx context.Context, c siterecovery.RecoveryServicesClient, i *item, input sdksiterecovery.UpdateReplicationProtectedItemInput) (*siterecovery.PSSiteRecoveryLongRunningOperation, error) {
			return c.UpdateVMProperties(ctx, i.fabric, i.container, i.name, input)
		}),
		newInputCommand("switch-appliance", "Switch the replication appliance", func(ctx context.Context, c siterecovery.RecoveryServicesClient, i *item, input sdksiterecovery.UpdateApplianceForReplicationProtectedItemInput) (*siterecovery.PSSiteRecoveryLongRunningOperation, error) {
			return c.SwitchAppliance(ctx, i.fabric, i.container, i.name, input)
		}),
		newSwitchProtectionCommand(),
	)

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
		cc.Flags().String("name", "", "replication protected item name")
		_ = cc.MarkFlagRequired("name")
	}

	return cc
}

func newInputCommand[T any](use, short string, f func(context.Context, siterecovery.RecoveryServicesClient, *item, T) (*siterecovery.PSSiteRecoveryLongRunningOperation, error)) *cobra.Command {
	cc := newCommand(use, short, true, nil)
	cc.Flags().String("input", "-", "JSON request body, - for stdin")

	cc.RunE = func(cmd *cobra.Command, args []string) error {
		var input T
		err := config.ReadInput(cmd.InOrStdin(), getString(cmd, "input"), &input)
		if err != nil {
			return err
		}

		return run(cmd, func(ctx context.Context, c siterecovery.RecoveryServicesClient, i *item) (interface{}, error) {
			return f(ctx, c, i, input)
		})
	}

	return cc
}

func newListCommand() *cobra.Command {
	cc := newCommand("list", "List replication protected items of a container or recovery plan", false, func(ctx context.Context, c siterecovery.RecoveryServicesClient, i *item) (interface{}, error) {
		return c.ListReplicationProtectedItems(ctx, i.fabric, i.container)
	})
	cc.Flags().String("recovery-plan", "", "list the items of a recovery plan instead")

	list := cc.RunE
	cc.RunE = func(cmd *cobra.Command, args []string) error {
		recoveryPlan := getString(cmd, "recovery-plan")
		if recoveryPlan == "" {
			return list(cmd, args)
		}

		return run(cmd, func(ctx context.Context, c siterecovery.RecoveryServicesClient, i *item) (interface{}, error) {
			return c.ListReplicationProtectedItemsInRecoveryPlan(ctx, recoveryPlan)
		})
	}

	return cc
}

func newSwitchProtectionCommand() *cobra.Command {
	cc := newCommand("switch-protection", "Switch protection to another container", false, nil)
	cc.Flags().String("input", "-", "JSON request body, - for stdin")

	cc.RunE = func(cmd *cobra.Command, args []string) error {
		var input sdksiterecovery.SwitchProtectionInput
		err := config.ReadInput(cmd.InOrStdin(), getString(cmd, "input"), &input)
		if err != nil {
			return err
		}

		return run(cmd, func(ctx context.Context, c siterecovery.RecoveryServicesClient, i *item) (interface{}, error) {
			return c.StartSwitchProtection(ctx, i.fabric, i.container, input)
		})
	}

	return cc
}

func run(cmd *cobra.Command, f runFunc) error {
	common, err := config.CommonConfigFromCmd(cmd, "siterecovery")
	if err != nil {
		return err
	}

	err = common.Env.ValidateVars(env.EnvResourceGroup, env.EnvVaultName)
	if err != nil {
		return err
	}

	ctx := context.Background()
	defer common.Finish(ctx)

	client, err := siterecovery.NewRecoveryServicesClient(common.Log, common.Env.Environment(), common.Env.SubscriptionID(), common.Credential, siterecovery.VaultCredentials{
		ResourceGroupName: common.Env.ResourceGroup(),
		ResourceName:      common.Env.VaultName(),
	}, common.Middlewares...)
	if err != nil {
		return err
	}

	result, err := f(ctx, client, &item{
		fabric:    getString(cmd, "fabric"),
		container: getString(cmd, "container"),
		name:      getString(cmd, "name"),
	})
	if err != nil {
		return err
	}

	return config.Print(cmd.OutOrStdout(), result)
}

// getString returns the value of a flag, or the empty string when the
// command does not define it.
func getString(cmd *cobra.Command, name string) string {
	s, _ := cmd.Flags().GetString(name)
	return s
}
