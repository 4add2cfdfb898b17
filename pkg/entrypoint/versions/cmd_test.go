package versions

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"bytes"
	"testing"
)

func TestVersions(t *testing.T) {
	var b bytes.Buffer

	cmd := NewCommand()
	cmd.SetOut(&b)
	cmd.SetArgs(nil)

	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}

	want := `microsoft.labservices              2022-08-01
microsoft.network                  2020-08-01
microsoft.network/networkwatchers  2024-05-01
microsoft.networkcloud             2025-02-01
microsoft.recoveryservices         2025-01-01
`
	if b.String() != want {
		t.Errorf("got:\n%s", b.String())
	}
}
