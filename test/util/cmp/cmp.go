package cmp

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"time"

	gocmp "github.com/google/go-cmp/cmp"
)

// Diff is a wrapper for github.com/google/go-cmp/cmp.Diff with extra options.
// Timestamps compare equal when they denote the same instant, whatever
// their location.
func Diff(x, y interface{}, opts ...gocmp.Option) string {
	newOpts := append(
		opts,
		gocmp.Comparer(func(a, b time.Time) bool { return a.Equal(b) }),
	)

	return gocmp.Diff(x, y, newOpts...)
}
