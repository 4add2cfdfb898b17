package log

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"runtime"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestRelativeFilePathPrettier(t *testing.T) {
	for _, tt := range []struct {
		name         string
		f            *runtime.Frame
		wantFunction string
		wantFile     string
	}{
		{
			name: "repository file",
			f: &runtime.Frame{
				Function: "github.com/Azure/azps-go/pkg/siterecovery.(*recoveryServicesClient).StartTestFailover",
				File:     repopath + "pkg/siterecovery/replicationprotecteditems.go",
				Line:     120,
			},
			wantFunction: "siterecovery.(*recoveryServicesClient).StartTestFailover()",
			wantFile:     " pkg/siterecovery/replicationprotecteditems.go:120",
		},
		{
			name: "dependency file",
			f: &runtime.Frame{
				Function: "github.com/spf13/cobra.(*Command).execute",
				File:     "/go/pkg/mod/github.com/spf13/cobra@v1.9.1/command.go",
				Line:     1015,
			},
			wantFunction: "cobra.(*Command).execute()",
			wantFile:     " /go/pkg/mod/github.com/spf13/cobra@v1.9.1/command.go:1015",
		},
		{
			name:         "empty",
			f:            &runtime.Frame{},
			wantFunction: "()",
			wantFile:     " :0",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			function, file := RelativeFilePathPrettier(tt.f)
			if function != tt.wantFunction {
				t.Errorf("got function %q, want %q", function, tt.wantFunction)
			}
			if file != tt.wantFile {
				t.Errorf("got file %q, want %q", file, tt.wantFile)
			}
		})
	}
}

func TestSetLevel(t *testing.T) {
	for _, tt := range []struct {
		level string
		want  logrus.Level
	}{
		{
			level: "debug",
			want:  logrus.DebugLevel,
		},
		{
			level: "",
			want:  logrus.InfoLevel,
		},
		{
			level: "chatty",
			want:  logrus.InfoLevel,
		},
	} {
		t.Run(tt.level, func(t *testing.T) {
			log := logrus.NewEntry(logrus.New())
			log.Logger.SetLevel(logrus.PanicLevel)

			SetLevel(log, tt.level)

			if log.Logger.GetLevel() != tt.want {
				t.Errorf("got %s, want %s", log.Logger.GetLevel(), tt.want)
			}
		})
	}
}
