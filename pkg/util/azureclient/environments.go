package azureclient

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/cloud"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/go-autorest/autorest/azure"
)

// Environment contains additional, cloud-specific information needed to
// talk to the management plane.
type Environment struct {
	azure.Environment
	ActualCloudName string
	Cloud           cloud.Configuration
	// Microsoft identity platform scope used for management plane tokens
	// See https://learn.microsoft.com/EN-US/azure/active-directory/develop/scopes-oidc#the-default-scope
	ResourceManagerScope string
}

var (
	// PublicCloud contains additional information for the public Azure cloud environment.
	PublicCloud = Environment{
		Environment:          azure.PublicCloud,
		ActualCloudName:      "AzureCloud",
		Cloud:                cloud.AzurePublic,
		ResourceManagerScope: azure.PublicCloud.ResourceManagerEndpoint + "/.default",
	}

	// USGovernmentCloud contains additional information for the US Gov cloud environment.
	USGovernmentCloud = Environment{
		Environment:          azure.USGovernmentCloud,
		ActualCloudName:      "AzureUSGovernment",
		Cloud:                cloud.AzureGovernment,
		ResourceManagerScope: azure.USGovernmentCloud.ResourceManagerEndpoint + "/.default",
	}

	// ChinaCloud contains additional information for the Azure China cloud environment.
	ChinaCloud = Environment{
		Environment:          azure.ChinaCloud,
		ActualCloudName:      "AzureChinaCloud",
		Cloud:                cloud.AzureChina,
		ResourceManagerScope: azure.ChinaCloud.ResourceManagerEndpoint + "/.default",
	}
)

// RetryOptions are shared by every track2 client built from an Environment.
var RetryOptions = policy.RetryOptions{
	MaxRetries:    3,
	RetryDelay:    4 * time.Second,
	MaxRetryDelay: 60 * time.Second,
}

// EnvironmentFromName returns the Environment corresponding to the common name specified.
func EnvironmentFromName(name string) (Environment, error) {
	switch strings.ToUpper(name) {
	case "", "AZUREPUBLICCLOUD", "AZURECLOUD":
		return PublicCloud, nil
	case "AZUREUSGOVERNMENTCLOUD", "AZUREUSGOVERNMENT":
		return USGovernmentCloud, nil
	case "AZURECHINACLOUD":
		return ChinaCloud, nil
	}
	return Environment{}, fmt.Errorf("cloud environment %q is unsupported", name)
}

// RoundTripperFunc allows a function to implement http.RoundTripper
type RoundTripperFunc func(*http.Request) (*http.Response, error)

func (rt RoundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return rt(req)
}

// Middleware closes over any client-side middleware
type Middleware func(http.RoundTripper) http.RoundTripper

// Chain is a handy function to wrap a base RoundTripper (optional) with the middlewares.
func Chain(rt http.RoundTripper, middlewares ...Middleware) http.RoundTripper {
	if rt == nil {
		rt = http.DefaultTransport
	}

	for _, m := range middlewares {
		rt = m(rt)
	}

	return rt
}

// ArmClientOptions returns an arm.ClientOptions to be passed in when instantiating
// Azure SDK for Go clients.
func (e *Environment) ArmClientOptions(middlewares ...Middleware) *arm.ClientOptions {
	customRoundTripper := Chain(http.DefaultTransport, append([]Middleware{NewLoggingRoundTripper}, middlewares...)...)
	return &arm.ClientOptions{
		ClientOptions: azcore.ClientOptions{
			Cloud: e.Cloud,
			Retry: RetryOptions,
			Transport: &http.Client{
				Transport: customRoundTripper,
			},
		},
	}
}

func (e *Environment) ClientSecretCredentialOptions() *azidentity.ClientSecretCredentialOptions {
	return &azidentity.ClientSecretCredentialOptions{
		ClientOptions: azcore.ClientOptions{
			Cloud: e.Cloud,
		},
	}
}

func (e *Environment) DefaultAzureCredentialOptions() *azidentity.DefaultAzureCredentialOptions {
	return &azidentity.DefaultAzureCredentialOptions{
		ClientOptions: azcore.ClientOptions{
			Cloud: e.Cloud,
		},
	}
}
