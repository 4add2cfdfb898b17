package labservices

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	apilabservices "github.com/Azure/azps-go/pkg/api/labservices"
	"github.com/Azure/azps-go/pkg/entrypoint/config"
	"github.com/Azure/azps-go/pkg/env"
	pkglabservices "github.com/Azure/azps-go/pkg/labservices"
	"github.com/Azure/azps-go/pkg/util/jsonmodel"
)

type runFunc func(ctx context.Context, cmd *cobra.Command, c pkglabservices.Client, resourceGroup, lab string) (interface{}, error)

// NewCommand returns the cobra command for "labservices".
func NewCommand() *cobra.Command {
	cc := &cobra.Command{
		Use:   "labservices",
		Short: "Manage lab users and lab shutdown settings",
	}

	cc.PersistentFlags().String("lab", "", "lab name")
	_ = cc.MarkPersistentFlagRequired("lab")

	userCmd := &cobra.Command{
		Use:   "user",
		Short: "Manage the users of a lab",
	}
	userCmd.AddCommand(
		newCommand("get", "Get a lab user", true, func(ctx context.Context, cmd *cobra.Command, c pkglabservices.Client, resourceGroup, lab string) (interface{}, error) {
			return c.GetUser(ctx, resourceGroup, lab, getString(cmd, "name"))
		}),
		newCommand("list", "List the users of a lab", false, func(ctx context.Context, cmd *cobra.Command, c pkglabservices.Client, resourceGroup, lab string) (interface{}, error) {
			return c.ListUsers(ctx, resourceGroup, lab)
		}),
		newUpdateUserCommand(),
		newInviteUserCommand(),
	)

	labCmd := &cobra.Command{
		Use:   "lab",
		Short: "Manage a lab",
	}
	labCmd.AddCommand(
		newCommand("get", "Get a lab", false, func(ctx context.Context, cmd *cobra.Command, c pkglabservices.Client, resourceGroup, lab string) (interface{}, error) {
			return c.GetLab(ctx, resourceGroup, lab)
		}),
		newAutoShutdownCommand(),
	)

	cc.AddCommand(userCmd, labCmd)

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
		cc.Flags().String("name", "", "user name")
		_ = cc.MarkFlagRequired("name")
	}

	return cc
}

func newUpdateUserCommand() *cobra.Command {
	cc := newCommand("update", "Update the additional usage quota of a lab user", true, func(ctx context.Context, cmd *cobra.Command, c pkglabservices.Client, resourceGroup, lab string) (interface{}, error) {
		quota, err := jsonmodel.ParseDuration(getString(cmd, "additional-usage-quota"))
		if err != nil {
			return nil, err
		}

		var body apilabservices.UserUpdate
		body.SetAdditionalUsageQuota(&quota)

		return c.UpdateUser(ctx, resourceGroup, lab, getString(cmd, "name"), body)
	})
	cc.Flags().String("additional-usage-quota", "", "ISO-8601 duration, e.g. PT10H")
	_ = cc.MarkFlagRequired("additional-usage-quota")

	return cc
}

func newInviteUserCommand() *cobra.Command {
	cc := newCommand("invite", "Send an invitation to a lab user", true, func(ctx context.Context, cmd *cobra.Command, c pkglabservices.Client, resourceGroup, lab string) (interface{}, error) {
		var text *string
		if cmd.Flags().Changed("text") {
			s := getString(cmd, "text")
			text = &s
		}

		return nil, c.InviteUser(ctx, resourceGroup, lab, getString(cmd, "name"), text)
	})
	cc.Flags().String("text", "", "custom invitation text")

	return cc
}

func newAutoShutdownCommand() *cobra.Command {
	cc := newCommand("auto-shutdown", "Update the auto-shutdown profile of a lab", false, func(ctx context.Context, cmd *cobra.Command, c pkglabservices.Client, resourceGroup, lab string) (interface{}, error) {
		profile, err := autoShutdownProfileFromFlags(cmd)
		if err != nil {
			return nil, err
		}

		return c.UpdateLabAutoShutdown(ctx, resourceGroup, lab, profile)
	})
	cc.Flags().String("shutdown-on-disconnect", "", "Enabled or Disabled")
	cc.Flags().String("shutdown-when-not-connected", "", "Enabled or Disabled")
	cc.Flags().String("shutdown-on-idle", "", "None, UserAbsence or LowUsage")
	cc.Flags().String("disconnect-delay", "", "ISO-8601 duration")
	cc.Flags().String("no-connect-delay", "", "ISO-8601 duration")
	cc.Flags().String("idle-delay", "", "ISO-8601 duration")

	return cc
}

// autoShutdownProfileFromFlags returns a profile holding only the settings
// given on the command line.
func autoShutdownProfileFromFlags(cmd *cobra.Command) (*apilabservices.AutoShutdownProfile, error) {
	profile := &apilabservices.AutoShutdownProfile{}
	var err error

	profile.ShutdownOnDisconnect, err = enumFlag(cmd, "shutdown-on-disconnect", apilabservices.PossibleEnableStateValues())
	if err != nil {
		return nil, err
	}

	profile.ShutdownWhenNotConnected, err = enumFlag(cmd, "shutdown-when-not-connected", apilabservices.PossibleEnableStateValues())
	if err != nil {
		return nil, err
	}

	profile.ShutdownOnIdle, err = enumFlag(cmd, "shutdown-on-idle", apilabservices.PossibleShutdownOnIdleModeValues())
	if err != nil {
		return nil, err
	}

	for name, d := range map[string]**time.Duration{
		"disconnect-delay": &profile.DisconnectDelay,
		"no-connect-delay": &profile.NoConnectDelay,
		"idle-delay":       &profile.IdleDelay,
	} {
		if !cmd.Flags().Changed(name) {
			continue
		}

		v, err := jsonmodel.ParseDuration(getString(cmd, name))
		if err != nil {
			return nil, fmt.Errorf("invalid --%s: %w", name, err)
		}
		*d = &v
	}

	return profile, nil
}

func enumFlag[E ~string](cmd *cobra.Command, name string, allowed []E) (*E, error) {
	if !cmd.Flags().Changed(name) {
		return nil, nil
	}

	e, ok := jsonmodel.ParseEnum(getString(cmd, name), allowed)
	if !ok {
		return nil, fmt.Errorf("invalid --%s %q, expected one of %v", name, getString(cmd, name), allowed)
	}

	return &e, nil
}

func run(cmd *cobra.Command, f runFunc) error {
	common, err := config.CommonConfigFromCmd(cmd, "labservices")
	if err != nil {
		return err
	}

	err = common.Env.ValidateVars(env.EnvResourceGroup)
	if err != nil {
		return err
	}

	ctx := context.Background()
	defer common.Finish(ctx)

	client, err := pkglabservices.NewClient(common.Log, common.Env.Environment(), common.Env.SubscriptionID(), common.Credential, common.Middlewares...)
	if err != nil {
		return err
	}

	result, err := f(ctx, cmd, client, common.Env.ResourceGroup(), getString(cmd, "lab"))
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
