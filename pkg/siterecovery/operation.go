package siterecovery

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"
	"net/http"

	"github.com/jinzhu/copier"

	"github.com/Azure/azps-go/pkg/util/azureclient/azuresdk/armsiterecovery"
)

// PSSiteRecoveryLongRunningOperation describes a started long running
// operation. Callers track it to completion from AsyncOperation, Location
// or ResumeToken.
type PSSiteRecoveryLongRunningOperation struct {
	AsyncOperation       string `json:"asyncOperation,omitempty"`
	ClientRequestID      string `json:"clientRequestId,omitempty"`
	ContentType          string `json:"contentType,omitempty"`
	CorrelationRequestID string `json:"correlationRequestId,omitempty"`
	Date                 string `json:"date,omitempty"`
	Location             string `json:"location,omitempty"`
	RetryAfter           string `json:"retryAfter,omitempty"`
	Status               string `json:"status,omitempty"`
	Culture              string `json:"culture,omitempty"`
	ResumeToken          string `json:"resumeToken,omitempty"`
}

// operationResponse is the initial response flattened to the headers the
// operation is described by.
type operationResponse struct {
	AzureAsyncOperation  string
	ClientRequestID      string
	ContentType          string
	CorrelationRequestID string
	Date                 string
	Location             string
	RetryAfter           string
	StatusCode           string
	ContentLanguage      string
	ResumeToken          string
}

var operationMapping = copier.Option{
	FieldNameMapping: []copier.FieldNameMapping{
		{
			SrcType: operationResponse{},
			DstType: PSSiteRecoveryLongRunningOperation{},
			Mapping: map[string]string{
				"AzureAsyncOperation": "AsyncOperation",
				"StatusCode":          "Status",
				"ContentLanguage":     "Culture",
			},
		},
	},
}

func newOperationResponse(op *armsiterecovery.Operation, clientRequestID string) (*operationResponse, error) {
	if op == nil || op.Response == nil {
		return nil, fmt.Errorf("no initial response was captured")
	}

	h := op.Response.Header

	r := &operationResponse{
		AzureAsyncOperation:  h.Get("Azure-AsyncOperation"),
		ClientRequestID:      h.Get("x-ms-client-request-id"),
		ContentType:          h.Get("Content-Type"),
		CorrelationRequestID: h.Get("x-ms-correlation-request-id"),
		Date:                 h.Get("Date"),
		Location:             h.Get("Location"),
		RetryAfter:           h.Get("Retry-After"),
		StatusCode:           http.StatusText(op.Response.StatusCode),
		ContentLanguage:      h.Get("Content-Language"),
		ResumeToken:          op.ResumeToken,
	}

	if r.ClientRequestID == "" {
		r.ClientRequestID = clientRequestID
	}

	return r, nil
}

// toPSOperation maps a started operation to its PowerShell representation.
func toPSOperation(op *armsiterecovery.Operation, clientRequestID string) (*PSSiteRecoveryLongRunningOperation, error) {
	r, err := newOperationResponse(op, clientRequestID)
	if err != nil {
		return nil, err
	}

	ps := &PSSiteRecoveryLongRunningOperation{}
	err = copier.CopyWithOption(ps, r, operationMapping)
	if err != nil {
		return nil, err
	}

	return ps, nil
}
