package env

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/spf13/viper"

	utilerror "github.com/Azure/azps-go/test/util/error"
	testlog "github.com/Azure/azps-go/test/util/log"
)

func TestValidateVars(t *testing.T) {
	for _, tt := range []struct {
		name    string
		set     map[string]string
		wantErr string
	}{
		{
			name: "all set",
			set: map[string]string{
				EnvSubscriptionID: "sub",
				EnvResourceGroup:  "rg",
			},
		},
		{
			name: "one missing",
			set: map[string]string{
				EnvSubscriptionID: "sub",
			},
			wantErr: "1 error occurred:\n\t* environment variable \"AZPS_RESOURCE_GROUP\" unset\n\n",
		},
		{
			name: "empty counts as missing",
			set: map[string]string{
				EnvSubscriptionID: "",
			},
			wantErr: "2 errors occurred:\n\t* environment variable \"AZPS_AZURE_SUBSCRIPTION_ID\" unset\n\t* environment variable \"AZPS_RESOURCE_GROUP\" unset\n\n",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			cfg := viper.New()
			for k, v := range tt.set {
				cfg.Set(k, v)
			}

			err := ValidateVars(cfg, EnvSubscriptionID, EnvResourceGroup)
			utilerror.AssertErrorMessage(t, err, tt.wantErr)
		})
	}
}

func TestNew(t *testing.T) {
	for _, tt := range []struct {
		name      string
		set       map[string]string
		wantCloud string
		wantErr   string
	}{
		{
			name: "public cloud by default",
			set: map[string]string{
				EnvSubscriptionID: "sub",
			},
			wantCloud: "AzureCloud",
		},
		{
			name: "china cloud",
			set: map[string]string{
				EnvSubscriptionID: "sub",
				EnvCloud:          "AzureChinaCloud",
			},
			wantCloud: "AzureChinaCloud",
		},
		{
			name: "unknown cloud",
			set: map[string]string{
				EnvSubscriptionID: "sub",
				EnvCloud:          "AzureGermanCloud",
			},
			wantErr: `cloud environment "AzureGermanCloud" is unsupported`,
		},
		{
			name:    "missing subscription",
			wantErr: "1 error occurred:\n\t* environment variable \"AZPS_AZURE_SUBSCRIPTION_ID\" unset\n\n",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			cfg := viper.New()
			for k, v := range tt.set {
				cfg.Set(k, v)
			}

			_, log := testlog.NewCapturingLogger()

			e, err := New(log, cfg)
			utilerror.AssertErrorMessage(t, err, tt.wantErr)
			if err != nil {
				return
			}

			if e.Environment().ActualCloudName != tt.wantCloud {
				t.Errorf("got cloud %s, wanted %s", e.Environment().ActualCloudName, tt.wantCloud)
			}
			if e.SubscriptionID() != "sub" {
				t.Error(e.SubscriptionID())
			}
		})
	}
}

func TestNewConfigReadsPrefixedEnvironment(t *testing.T) {
	t.Setenv("AZPS_AZURE_SUBSCRIPTION_ID", "sub")
	t.Setenv("AZPS_VAULT_NAME", "vault")
	t.Setenv("VAULT_NAME", "unprefixed")

	_, log := testlog.NewCapturingLogger()

	e, err := New(log, NewConfig())
	if err != nil {
		t.Fatal(err)
	}

	if e.VaultName() != "vault" {
		t.Errorf("got vault %q", e.VaultName())
	}
	if e.ResourceGroup() != "" {
		t.Errorf("got resource group %q", e.ResourceGroup())
	}
}

func TestNewTokenCredential(t *testing.T) {
	for _, tt := range []struct {
		name    string
		set     map[string]string
		wantErr string
	}{
		{
			name: "client secret",
			set: map[string]string{
				EnvTenantID:     "00000000-0000-0000-0000-000000000000",
				EnvClientID:     "11111111-1111-1111-1111-111111111111",
				EnvClientSecret: "secret",
			},
		},
		{
			name: "client secret without tenant",
			set: map[string]string{
				EnvClientID:     "11111111-1111-1111-1111-111111111111",
				EnvClientSecret: "secret",
			},
			wantErr: "1 error occurred:\n\t* environment variable \"AZPS_AZURE_TENANT_ID\" unset\n\n",
		},
		{
			name: "client secret with malformed tenant",
			set: map[string]string{
				EnvTenantID:     "contoso.onmicrosoft.com",
				EnvClientID:     "11111111-1111-1111-1111-111111111111",
				EnvClientSecret: "secret",
			},
			wantErr: `tenant id "contoso.onmicrosoft.com" is not a valid uuid`,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			cfg := viper.New()
			cfg.Set(EnvSubscriptionID, "sub")
			for k, v := range tt.set {
				cfg.Set(k, v)
			}

			_, log := testlog.NewCapturingLogger()

			e, err := New(log, cfg)
			if err != nil {
				t.Fatal(err)
			}

			credential, err := e.NewTokenCredential()
			utilerror.AssertErrorMessage(t, err, tt.wantErr)
			if err != nil {
				return
			}

			if _, ok := credential.(*azidentity.ClientSecretCredential); !ok {
				t.Errorf("got %T", credential)
			}
			if e.NewAuthorizer(credential) == nil {
				t.Error("expected authorizer")
			}
		})
	}
}
