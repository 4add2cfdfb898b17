package log

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"
	"os"
	"regexp"
	"runtime"
	"strings"

	azlog "github.com/Azure/azure-sdk-for-go/sdk/azcore/log"
	"github.com/sirupsen/logrus"
)

var (
	_, thisfile, _, _ = runtime.Caller(0)
	repopath          = strings.Replace(thisfile, "pkg/util/log/log.go", "", -1)

	rxResourceID = regexp.MustCompile(`^/subscriptions/[^/]+(/resourcegroups/[^/]+(/providers/[^/]+/[^/]+/[^/]+)?)?`)

	// noisyFields are dropped by the dev filter formatter.
	noisyFields = []string{
		"LOGKIND",
		"request_URL",
		"content_length",
	}
)

// GetLogger returns a consistently configured log entry
func GetLogger() *logrus.Entry {
	logrus.SetReportCaller(true)
	logrus.SetFormatter(NewDevFilterFormatter())
	logrus.SetOutput(os.Stderr)

	return logrus.NewEntry(logrus.StandardLogger())
}

// SetLevel parses and applies the named log level, defaulting to info.
func SetLevel(log *logrus.Entry, level string) {
	if level == "" {
		level = logrus.InfoLevel.String()
	}

	l, err := logrus.ParseLevel(level)
	if err != nil {
		log.Warnf("invalid log level %q, using %s", level, logrus.InfoLevel)
		l = logrus.InfoLevel
	}

	log.Logger.SetLevel(l)
}

// RelativeFilePathPrettier changes absolute paths with relative paths
func RelativeFilePathPrettier(f *runtime.Frame) (string, string) {
	file := strings.TrimPrefix(f.File, repopath)
	function := f.Function[strings.LastIndexByte(f.Function, '/')+1:]
	return fmt.Sprintf("%s()", function), fmt.Sprintf(" %s:%d", file, f.Line)
}

// EnrichWithResourceID sets a lower-cased resource_id field on the entry.
func EnrichWithResourceID(log *logrus.Entry, resourceID string) *logrus.Entry {
	return log.WithField("resource_id", strings.ToLower(resourceID))
}

// EnrichWithPath parses the resource ID of the outermost resource out of a
// request path and sets it on the entry. Paths which do not identify a
// resource leave the entry unchanged.
func EnrichWithPath(log *logrus.Entry, path string) *logrus.Entry {
	m := rxResourceID.FindString(strings.ToLower(path))
	if m == "" {
		return log
	}

	return EnrichWithResourceID(log, m)
}

type devFilterFormatter struct {
	logrus.TextFormatter
}

// NewDevFilterFormatter returns a text formatter which drops fields that
// are only useful to log aggregation.
func NewDevFilterFormatter() logrus.Formatter {
	return &devFilterFormatter{
		TextFormatter: logrus.TextFormatter{
			FullTimestamp:    true,
			CallerPrettyfier: RelativeFilePathPrettier,
		},
	}
}

func (f *devFilterFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	filtered := entry.Dup()
	filtered.Level = entry.Level
	filtered.Message = entry.Message
	filtered.Caller = entry.Caller
	filtered.Time = entry.Time
	for _, k := range noisyFields {
		delete(filtered.Data, k)
	}

	return f.TextFormatter.Format(filtered)
}

// ForwardAzcoreLogs routes the Azure SDK's internal log events to the
// entry at debug level.
func ForwardAzcoreLogs(log *logrus.Entry) {
	azlog.SetEvents(azlog.EventRequest, azlog.EventResponse, azlog.EventRetryPolicy, azlog.EventLRO)
	azlog.SetListener(func(event azlog.Event, msg string) {
		log.WithField("event", string(event)).Debug(msg)
	})
}
