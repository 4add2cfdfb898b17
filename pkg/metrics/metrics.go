package metrics

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

//go:generate mockgen -destination=../util/mocks/$GOPACKAGE/$GOPACKAGE.go github.com/Azure/azps-go/pkg/$GOPACKAGE Emitter
//go:generate goimports -local=github.com/Azure/azps-go -e -w ../util/mocks/$GOPACKAGE/$GOPACKAGE.go

// Emitter represents metrics interface
type Emitter interface {
	EmitFloat(string, float64, map[string]string)
	EmitGauge(string, int64, map[string]string)
}
