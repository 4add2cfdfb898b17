package siterecovery

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"net/http"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/sirupsen/logrus"

	sdksiterecovery "github.com/Azure/azps-go/pkg/sdk/armsiterecovery"
	"github.com/Azure/azps-go/pkg/util/azureclient"
	"github.com/Azure/azps-go/pkg/util/azureclient/azuresdk/armsiterecovery"
	"github.com/Azure/azps-go/pkg/util/uuid"
)

const clientRequestIDHeader = "x-ms-client-request-id"

// clientRequestIDTimeFormat is the suffix appended to every client request id.
const clientRequestIDTimeFormat = "2006-01-02 15:04:05Z"

// VaultCredentials identify the Recovery Services vault every call is made
// against.
type VaultCredentials struct {
	ResourceGroupName string
	ResourceName      string
}

// RecoveryServicesClient is the convenience client for replication
// protected items of a single vault.
type RecoveryServicesClient interface {
	GetReplicationProtectedItem(ctx context.Context, fabricName, protectionContainerName, replicatedProtectedItemName string) (*sdksiterecovery.ReplicationProtectedItem, error)
	ListReplicationProtectedItems(ctx context.Context, fabricName, protectionContainerName string) ([]*sdksiterecovery.ReplicationProtectedItem, error)
	ListReplicationProtectedItemsInRecoveryPlan(ctx context.Context, recoveryPlanName string) ([]*sdksiterecovery.ReplicationProtectedItem, error)

	EnableProtection(ctx context.Context, fabricName, protectionContainerName, replicationProtectedItemName string, input sdksiterecovery.EnableProtectionInput) (*PSSiteRecoveryLongRunningOperation, error)
	DisableProtection(ctx context.Context, fabricName, protectionContainerName, replicationProtectedItemName string, input sdksiterecovery.DisableProtectionInput) (*PSSiteRecoveryLongRunningOperation, error)
	PurgeProtection(ctx context.Context, fabricName, protectionContainerName, replicationProtectedItemName string) (*PSSiteRecoveryLongRunningOperation, error)
	AddDisks(ctx context.Context, fabricName, protectionContainerName, replicationProtectedItemName string, input sdksiterecovery.AddDisksInput) (*PSSiteRecoveryLongRunningOperation, error)
	RemoveDisks(ctx context.Context, fabricName, protectionContainerName, replicationProtectedItemName string, input sdksiterecovery.RemoveDisksInput) (*PSSiteRecoveryLongRunningOperation, error)
	StartApplyRecoveryPoint(ctx context.Context, fabricName, protectionContainerName, replicationProtectedItemName string, input sdksiterecovery.ApplyRecoveryPointInput) (*PSSiteRecoveryLongRunningOperation, error)
	StartCommitFailover(ctx context.Context, fabricName, protectionContainerName, replicationProtectedItemName string) (*PSSiteRecoveryLongRunningOperation, error)
	StartCancelFailover(ctx context.Context, fabricName, protectionContainerName, replicationProtectedItemName string) (*PSSiteRecoveryLongRunningOperation, error)
	StartPlannedFailover(ctx context.Context, fabricName, protectionContainerName, replicationProtectedItemName string, input sdksiterecovery.PlannedFailoverInput) (*PSSiteRecoveryLongRunningOperation, error)
	StartReprotection(ctx context.Context, fabricName, protectionContainerName, replicationProtectedItemName string, input sdksiterecovery.ReverseReplicationInput) (*PSSiteRecoveryLongRunningOperation, error)
	StartTestFailover(ctx context.Context, fabricName, protectionContainerName, replicationProtectedItemName string, input sdksiterecovery.TestFailoverInput) (*PSSiteRecoveryLongRunningOperation, error)
	StartTestFailoverCleanup(ctx context.Context, fabricName, protectionContainerName, replicationProtectedItemName string, input sdksiterecovery.TestFailoverCleanupInput) (*PSSiteRecoveryLongRunningOperation, error)
	StartUnplannedFailover(ctx context.Context, fabricName, protectionContainerName, replicationProtectedItemName string, input sdksiterecovery.UnplannedFailoverInput) (*PSSiteRecoveryLongRunningOperation, error)
	StartResynchronizeReplication(ctx context.Context, fabricName, protectionContainerName, replicationProtectedItemName string) (*PSSiteRecoveryLongRunningOperation, error)
	UpdateMobilityService(ctx context.Context, fabricName, protectionContainerName, replicationProtectedItemName string, input sdksiterecovery.UpdateMobilityServiceRequest) (*PSSiteRecoveryLongRunningOperation, error)
	UpdateVMProperties(ctx context.Context, fabricName, protectionContainerName, replicationProtectedItemName string, input sdksiterecovery.UpdateReplicationProtectedItemInput) (*PSSiteRecoveryLongRunningOperation, error)
	SwitchAppliance(ctx context.Context, fabricName, protectionContainerName, replicationProtectedItemName string, input sdksiterecovery.UpdateApplianceForReplicationProtectedItemInput) (*PSSiteRecoveryLongRunningOperation, error)
	StartSwitchProtection(ctx context.Context, fabricName, protectionContainerName string, input sdksiterecovery.SwitchProtectionInput) (*PSSiteRecoveryLongRunningOperation, error)
}

type recoveryServicesClient struct {
	log *logrus.Entry

	protectedItems       armsiterecovery.ReplicationProtectedItemsClient
	protectionContainers armsiterecovery.ReplicationProtectionContainersClient

	vault VaultCredentials
	uuid  uuid.Generator
	now   func() time.Time
}

var _ RecoveryServicesClient = &recoveryServicesClient{}

// NewRecoveryServicesClient returns a RecoveryServicesClient bound to vault.
func NewRecoveryServicesClient(log *logrus.Entry, environment *azureclient.Environment, subscriptionID string, credential azcore.TokenCredential, vault VaultCredentials, middlewares ...azureclient.Middleware) (RecoveryServicesClient, error) {
	options := environment.ArmClientOptions(middlewares...)

	protectedItems, err := armsiterecovery.NewReplicationProtectedItemsClient(subscriptionID, credential, options)
	if err != nil {
		return nil, err
	}

	protectionContainers, err := armsiterecovery.NewReplicationProtectionContainersClient(subscriptionID, credential, options)
	if err != nil {
		return nil, err
	}

	return &recoveryServicesClient{
		log:                  log,
		protectedItems:       protectedItems,
		protectionContainers: protectionContainers,
		vault:                vault,
		uuid:                 uuid.DefaultGenerator,
		now:                  time.Now,
	}, nil
}

// withRequestHeaders tags every request made with ctx with a fresh client
// request id.
func (c *recoveryServicesClient) withRequestHeaders(ctx context.Context) (context.Context, string) {
	id := c.uuid.Generate() + "-" + c.now().UTC().Format(clientRequestIDTimeFormat)

	return policy.WithHTTPHeader(ctx, http.Header{
		clientRequestIDHeader: []string{id},
	}), id
}
