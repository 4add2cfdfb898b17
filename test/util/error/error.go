package error

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"strings"
	"testing"
)

// AssertErrorMessage asserts that err.Error() is equal to wantMsg. An empty
// wantMsg asserts that err is nil.
func AssertErrorMessage(t *testing.T, err error, wantMsg string) {
	t.Helper()

	switch {
	case err == nil && wantMsg != "":
		t.Errorf("did not get an error, but wanted error '%v'", wantMsg)
	case err != nil && err.Error() != wantMsg:
		t.Errorf("got error '%v', but wanted error '%v'", err, wantMsg)
	}
}

// AssertErrorPrefix asserts that err is non-nil and its message starts with
// prefix. Useful where the tail comes from a decoder we don't control.
func AssertErrorPrefix(t *testing.T, err error, prefix string) {
	t.Helper()

	if err == nil {
		t.Errorf("did not get an error, but wanted error starting '%v'", prefix)
		return
	}

	if !strings.HasPrefix(err.Error(), prefix) {
		t.Errorf("got error '%v', but wanted error starting '%v'", err, prefix)
	}
}
