package network

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

//go:generate rm -rf ../../../../../pkg/util/mocks/azureclient/mgmt/$GOPACKAGE
//go:generate mockgen -destination=../../../mocks/azureclient/mgmt/$GOPACKAGE/$GOPACKAGE.go github.com/Azure/azps-go/pkg/util/azureclient/mgmt/$GOPACKAGE PacketCapturesClient
//go:generate goimports -local=github.com/Azure/azps-go -e -w ../../../mocks/azureclient/mgmt/$GOPACKAGE/$GOPACKAGE.go
