package siterecovery

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"sort"
	"strings"
	"testing"

	"github.com/go-test/deep"

	utilerror "github.com/Azure/azps-go/test/util/error"
)

func TestNewCommand(t *testing.T) {
	var got []string
	for _, c := range NewCommand().Commands() {
		got = append(got, c.Name())
	}
	sort.Strings(got)

	want := []string{
		"add-disks",
		"apply-recovery-point",
		"cancel-failover",
		"commit-failover",
		"disable",
		"enable",
		"get",
		"list",
		"planned-failover",
		"purge",
		"remove-disks",
		"reprotect",
		"resync",
		"switch-appliance",
		"switch-protection",
		"test-failover",
		"test-failover-cleanup",
		"unplanned-failover",
		"update",
		"update-mobility-service",
	}

	for _, diff := range deep.Equal(got, want) {
		t.Error(diff)
	}
}

func TestInputIsDecodedFirst(t *testing.T) {
	cmd := NewCommand()
	cmd.SetArgs([]string{"test-failover-cleanup", "--name", "item", "--input", "-"})
	cmd.SetIn(strings.NewReader("not json"))
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.Execute()
	utilerror.AssertErrorPrefix(t, err, "invalid character")
}

func TestNameIsRequired(t *testing.T) {
	cmd := NewCommand()
	cmd.SetArgs([]string{"purge"})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.Execute()
	utilerror.AssertErrorMessage(t, err, `required flag(s) "name" not set`)
}
