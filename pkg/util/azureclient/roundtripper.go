package azureclient

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	utillog "github.com/Azure/azps-go/pkg/util/log"
)

const (
	// outboundRequests tags log lines describing calls made to ARM.
	outboundRequests = "outboundRequests"

	responseCode          = "response_status_code"
	contentLength         = "content_length"
	durationMilliseconds  = "duration_milliseconds"
	correlationIdHeader   = "X-Ms-Correlation-Request-Id"
	clientRequestIdHeader = "X-Ms-Client-Request-Id"
	clientRequestIdField  = "client_request_id"
	correlationIdField    = "correlation_id"
)

// Logger is the entry outbound requests are logged to. It defaults to the
// standard logger and can be replaced by the entrypoint.
var Logger = logrus.NewEntry(logrus.StandardLogger())

type loggingRoundTripper struct {
	next http.RoundTripper
	log  *logrus.Entry
}

// NewLoggingRoundTripper returns a Middleware-compatible RoundTripper which
// logs the start and end of every outbound request.
func NewLoggingRoundTripper(next http.RoundTripper) http.RoundTripper {
	return &loggingRoundTripper{next: next}
}

func (rt *loggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	log := rt.log
	if log == nil {
		log = Logger
	}

	requestTime := time.Now()
	l := enrichLogWithRequest(log, req)

	l.Info("HttpRequestStart")

	res, err := rt.next.RoundTrip(req)

	l = enrichLogWithResponse(l, res, requestTime)
	if err != nil {
		l = l.WithError(err)
	}
	l.Info("HttpRequestEnd")

	return res, err
}

func enrichLogWithRequest(l *logrus.Entry, req *http.Request) *logrus.Entry {
	l = utillog.EnrichWithPath(l, req.URL.Path)
	l = l.WithFields(logrus.Fields{
		"request_URL": req.URL.Host,
		"LOGKIND":     outboundRequests,
	})

	if id := req.Header.Get(clientRequestIdHeader); id != "" {
		l = l.WithField(clientRequestIdField, id)
	}

	return l
}

func enrichLogWithResponse(l *logrus.Entry, res *http.Response, requestTime time.Time) *logrus.Entry {
	if res == nil {
		return l.WithFields(logrus.Fields{
			responseCode:         "0",
			durationMilliseconds: time.Since(requestTime).Milliseconds(),
		})
	}

	if id := res.Header.Get(correlationIdHeader); id != "" {
		l = l.WithField(correlationIdField, id)
	}

	return l.WithFields(logrus.Fields{
		responseCode:         res.StatusCode,
		contentLength:        res.ContentLength,
		durationMilliseconds: time.Since(requestTime).Milliseconds(),
	})
}
