package jsonmodel

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"testing"
	"time"
)

func TestParseDuration(t *testing.T) {
	for _, tt := range []struct {
		input   string
		want    time.Duration
		wantErr bool
	}{
		{input: "PT2H", want: 2 * time.Hour},
		{input: "PT15M", want: 15 * time.Minute},
		{input: "PT1H30M", want: 90 * time.Minute},
		{input: "P1DT2H", want: 26 * time.Hour},
		{input: "PT30S", want: 30 * time.Second},
		{input: "P7D", want: 168 * time.Hour},
		{input: "P1W", want: 168 * time.Hour},
		{input: "P1M", want: 720 * time.Hour},
		{input: "P1Y", want: 365 * 24 * time.Hour},
		{input: "-PT1H", want: -time.Hour},
		{input: "2h", wantErr: true},
		{input: "", wantErr: true},
	} {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDuration(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("got error %v, wanted error %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("got %s, wanted %s", got, tt.want)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	for _, tt := range []struct {
		input time.Duration
		want  string
	}{
		{input: 2 * time.Hour, want: "PT2H"},
		{input: 15 * time.Minute, want: "PT15M"},
		{input: 90 * time.Minute, want: "PT1H30M"},
		{input: 0, want: "PT0S"},
		{input: 1500 * time.Millisecond, want: "PT1.5S"},
		{input: 26 * time.Hour, want: "P1DT2H"},
		{input: 168 * time.Hour, want: "P7D"},
		{input: 200 * time.Hour, want: "P8DT8H"},
		{input: 1000 * time.Hour, want: "P41DT16H"},
		{input: 400 * 24 * time.Hour, want: "P400D"},
		{input: -90 * time.Minute, want: "-PT1H30M"},
	} {
		t.Run(tt.want, func(t *testing.T) {
			got := FormatDuration(tt.input)
			if got != tt.want {
				t.Errorf("got %s, wanted %s", got, tt.want)
			}

			back, err := ParseDuration(got)
			if err != nil {
				t.Fatal(err)
			}
			if back != tt.input {
				t.Errorf("round trip got %s, wanted %s", back, tt.input)
			}
		})
	}
}
