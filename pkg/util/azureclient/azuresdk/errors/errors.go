package errors

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"errors"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/go-autorest/autorest"
)

// IsNotFoundError checks if the error is an error from azure SDK and 404 NotFound error.
func IsNotFoundError(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

// IsConflictError checks if the error is an error from azure SDK and 409 Conflict error.
func IsConflictError(err error) bool {
	return StatusCode(err) == http.StatusConflict
}

// StatusCode returns the HTTP status code carried by an error returned
// from either generation of the Azure SDK, or 0 if there is none.
func StatusCode(err error) int {
	var azErr *azcore.ResponseError
	if errors.As(err, &azErr) {
		return azErr.StatusCode
	}

	var detailedErr autorest.DetailedError
	if errors.As(err, &detailedErr) {
		if code, ok := detailedErr.StatusCode.(int); ok {
			return code
		}
	}

	return 0
}
