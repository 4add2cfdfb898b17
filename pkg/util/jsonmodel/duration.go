package jsonmodel

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"time"

	"github.com/sosodev/duration"
)

// Calendar units as the management plane counts them: a year is 365 days
// and a month is 30.
const (
	day   = 24 * time.Hour
	week  = 7 * day
	month = 30 * day
	year  = 365 * day
)

// ParseDuration parses an xs:duration such as "PT2H" or "P1DT30M".
func ParseDuration(s string) (time.Duration, error) {
	d, err := duration.Parse(s)
	if err != nil {
		return 0, err
	}

	v := time.Duration(d.Years*float64(year) +
		d.Months*float64(month) +
		d.Weeks*float64(week) +
		d.Days*float64(day) +
		d.Hours*float64(time.Hour) +
		d.Minutes*float64(time.Minute) +
		d.Seconds*float64(time.Second))

	if d.Negative {
		v = -v
	}
	return v, nil
}

// FormatDuration renders d as an xs:duration. Days are the largest unit
// written, so the result never carries weeks, months or years.
func FormatDuration(d time.Duration) string {
	out := &duration.Duration{}

	if d < 0 {
		out.Negative = true
		d = -d
	}

	out.Days = float64(d / day)
	d %= day
	out.Hours = float64(d / time.Hour)
	d %= time.Hour
	out.Minutes = float64(d / time.Minute)
	d %= time.Minute
	out.Seconds = d.Seconds()

	return out.String()
}
