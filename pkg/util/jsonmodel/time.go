package jsonmodel

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"time"
)

// dateTimeNoZone is RFC3339 without an offset, which some services send for
// UTC timestamps.
const dateTimeNoZone = "2006-01-02T15:04:05.999999999"

// ParseTime parses an RFC3339 timestamp. A timestamp without an offset is
// read as UTC.
func ParseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err == nil {
		return t, nil
	}

	t, err2 := time.Parse(dateTimeNoZone, s)
	if err2 == nil {
		return t, nil
	}

	return time.Time{}, err
}
