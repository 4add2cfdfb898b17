package env

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/go-autorest/autorest"
	"github.com/hashicorp/go-multierror"
	"github.com/jongio/azidext/go/azidext"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/Azure/azps-go/pkg/util/azureclient"
	"github.com/Azure/azps-go/pkg/util/uuid"
)

const (
	EnvPrefix = "AZPS"

	EnvSubscriptionID     = "AZURE_SUBSCRIPTION_ID"
	EnvCloud              = "AZURE_CLOUD"
	EnvTenantID           = "AZURE_TENANT_ID"
	EnvClientID           = "AZURE_CLIENT_ID"
	EnvClientSecret       = "AZURE_CLIENT_SECRET"
	EnvResourceGroup      = "RESOURCE_GROUP"
	EnvVaultName          = "VAULT_NAME"
	EnvLogLevel           = "LOG_LEVEL"
	EnvMetricsPushgateway = "METRICS_PUSHGATEWAY"
)

// Interface is the configuration shared by every subcommand.
type Interface interface {
	Environment() *azureclient.Environment
	SubscriptionID() string
	ResourceGroup() string
	VaultName() string
	LogLevel() string
	MetricsPushgateway() string

	GetEnv(string) string
	ValidateVars(...string) error

	NewTokenCredential() (azcore.TokenCredential, error)
	NewAuthorizer(azcore.TokenCredential) autorest.Authorizer
}

type env struct {
	log *logrus.Entry
	cfg *viper.Viper

	environment *azureclient.Environment
}

var _ Interface = &env{}

// NewConfig returns a viper instance reading AZPS_* environment variables.
func NewConfig() *viper.Viper {
	cfg := viper.New()
	cfg.SetEnvPrefix(EnvPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	cfg.AutomaticEnv()
	return cfg
}

func New(log *logrus.Entry, cfg *viper.Viper) (Interface, error) {
	if err := ValidateVars(cfg, EnvSubscriptionID); err != nil {
		return nil, err
	}

	environment, err := azureclient.EnvironmentFromName(cfg.GetString(EnvCloud))
	if err != nil {
		return nil, err
	}

	log.Debugf("using cloud %s", environment.ActualCloudName)

	return &env{
		log:         log,
		cfg:         cfg,
		environment: &environment,
	}, nil
}

// ValidateVars returns an error listing every variable that is unset or
// empty.
func ValidateVars(cfg *viper.Viper, vars ...string) error {
	var err error

	for _, v := range vars {
		if cfg.GetString(v) == "" {
			err = multierror.Append(err, errors.Errorf("environment variable %q unset", EnvPrefix+"_"+v))
		}
	}

	return err
}

func (e *env) Environment() *azureclient.Environment {
	return e.environment
}

func (e *env) SubscriptionID() string {
	return e.cfg.GetString(EnvSubscriptionID)
}

func (e *env) ResourceGroup() string {
	return e.cfg.GetString(EnvResourceGroup)
}

func (e *env) VaultName() string {
	return e.cfg.GetString(EnvVaultName)
}

func (e *env) LogLevel() string {
	return e.cfg.GetString(EnvLogLevel)
}

func (e *env) MetricsPushgateway() string {
	return e.cfg.GetString(EnvMetricsPushgateway)
}

func (e *env) GetEnv(name string) string {
	return e.cfg.GetString(name)
}

func (e *env) ValidateVars(vars ...string) error {
	return ValidateVars(e.cfg, vars...)
}

// NewTokenCredential returns a client secret credential when a service
// principal is configured and falls back to DefaultAzureCredential otherwise.
func (e *env) NewTokenCredential() (azcore.TokenCredential, error) {
	if e.cfg.GetString(EnvClientSecret) == "" {
		e.log.Debug("using default azure credential")

		credential, err := azidentity.NewDefaultAzureCredential(e.environment.DefaultAzureCredentialOptions())
		if err != nil {
			return nil, errors.Wrap(err, "creating default azure credential")
		}
		return credential, nil
	}

	err := e.ValidateVars(EnvTenantID, EnvClientID)
	if err != nil {
		return nil, err
	}

	if !uuid.IsValid(e.cfg.GetString(EnvTenantID)) {
		return nil, errors.Errorf("tenant id %q is not a valid uuid", e.cfg.GetString(EnvTenantID))
	}

	credential, err := azidentity.NewClientSecretCredential(
		e.cfg.GetString(EnvTenantID),
		e.cfg.GetString(EnvClientID),
		e.cfg.GetString(EnvClientSecret),
		e.environment.ClientSecretCredentialOptions())
	if err != nil {
		return nil, errors.Wrap(err, "creating client secret credential")
	}

	return credential, nil
}

// NewAuthorizer bridges credential for clients built on go-autorest.
func (e *env) NewAuthorizer(credential azcore.TokenCredential) autorest.Authorizer {
	return azidext.NewTokenCredentialAdapter(credential, []string{e.environment.ResourceManagerScope})
}
