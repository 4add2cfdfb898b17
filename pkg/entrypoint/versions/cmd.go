package versions

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Azure/azps-go/pkg/util/azureclient"
)

// NewCommand returns the cobra command for "versions".
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "versions",
		Short: "Print the API version used for each resource type",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)

			for _, t := range azureclient.APIVersions() {
				fmt.Fprintf(w, "%s\t%s\n", t, azureclient.APIVersion(t))
			}

			return w.Flush()
		},
	}
}
