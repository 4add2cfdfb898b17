package errors

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/go-autorest/autorest"
)

func TestStatusCode(t *testing.T) {
	for _, tt := range []struct {
		name         string
		err          error
		want         int
		wantNotFound bool
		wantConflict bool
	}{
		{
			name: "nil",
		},
		{
			name: "plain error",
			err:  fmt.Errorf("random error"),
		},
		{
			name:         "track2 not found",
			err:          &azcore.ResponseError{StatusCode: http.StatusNotFound},
			want:         http.StatusNotFound,
			wantNotFound: true,
		},
		{
			name:         "wrapped track2 conflict",
			err:          fmt.Errorf("starting: %w", &azcore.ResponseError{StatusCode: http.StatusConflict}),
			want:         http.StatusConflict,
			wantConflict: true,
		},
		{
			name:         "track1 not found",
			err:          autorest.DetailedError{StatusCode: http.StatusNotFound},
			want:         http.StatusNotFound,
			wantNotFound: true,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusCode(tt.err); got != tt.want {
				t.Error(got)
			}
			if got := IsNotFoundError(tt.err); got != tt.wantNotFound {
				t.Error(got)
			}
			if got := IsConflictError(tt.err); got != tt.wantConflict {
				t.Error(got)
			}
		})
	}
}
