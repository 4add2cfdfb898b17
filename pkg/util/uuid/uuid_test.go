package uuid

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"testing"
)

func TestDefaultGenerator(t *testing.T) {
	a := DefaultGenerator.Generate()
	b := DefaultGenerator.Generate()

	if !IsValid(a) || !IsValid(b) {
		t.Fatal(a, b)
	}
	if a == b {
		t.Error("expected distinct uuids")
	}
	if IsValid("not-a-uuid") {
		t.Error("expected invalid")
	}
}
