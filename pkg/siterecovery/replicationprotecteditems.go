package siterecovery

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"

	sdksiterecovery "github.com/Azure/azps-go/pkg/sdk/armsiterecovery"
	"github.com/Azure/azps-go/pkg/util/azureclient/azuresdk/armsiterecovery"
)

// start issues the first request of a long running operation and describes
// it. It never polls.
func (c *recoveryServicesClient) start(ctx context.Context, operation string, begin func(context.Context) (*armsiterecovery.Operation, error)) (*PSSiteRecoveryLongRunningOperation, error) {
	ctx, clientRequestID := c.withRequestHeaders(ctx)

	log := c.log.WithField("client_request_id", clientRequestID)
	log.Debugf("starting %s", operation)

	op, err := begin(ctx)
	if err != nil {
		return nil, err
	}

	return toPSOperation(op, clientRequestID)
}

func (c *recoveryServicesClient) GetReplicationProtectedItem(ctx context.Context, fabricName, protectionContainerName, replicatedProtectedItemName string) (*sdksiterecovery.ReplicationProtectedItem, error) {
	ctx, _ = c.withRequestHeaders(ctx)

	resp, err := c.protectedItems.Get(ctx, c.vault.ResourceName, c.vault.ResourceGroupName, fabricName, protectionContainerName, replicatedProtectedItemName, nil)
	if err != nil {
		return nil, err
	}

	return &resp.ReplicationProtectedItem, nil
}

// ListReplicationProtectedItems returns every item of a protection
// container.
func (c *recoveryServicesClient) ListReplicationProtectedItems(ctx context.Context, fabricName, protectionContainerName string) ([]*sdksiterecovery.ReplicationProtectedItem, error) {
	ctx, _ = c.withRequestHeaders(ctx)

	return c.protectedItems.ListByReplicationProtectionContainers(ctx, c.vault.ResourceName, c.vault.ResourceGroupName, fabricName, protectionContainerName, nil)
}

// ListReplicationProtectedItemsInRecoveryPlan returns every item of the
// vault which belongs to a recovery plan.
func (c *recoveryServicesClient) ListReplicationProtectedItemsInRecoveryPlan(ctx context.Context, recoveryPlanName string) ([]*sdksiterecovery.ReplicationProtectedItem, error) {
	ctx, _ = c.withRequestHeaders(ctx)

	query := sdksiterecovery.ProtectedItemsQueryParameter{
		RecoveryPlanName: &recoveryPlanName,
	}

	return c.protectedItems.List(ctx, c.vault.ResourceName, c.vault.ResourceGroupName, &sdksiterecovery.ReplicationProtectedItemsClientListOptions{
		Filter: to.Ptr(query.ToQueryString()),
	})
}

// EnableProtection starts protecting an item.
func (c *recoveryServicesClient) EnableProtection(ctx context.Context, fabricName, protectionContainerName, replicationProtectedItemName string, input sdksiterecovery.EnableProtectionInput) (*PSSiteRecoveryLongRunningOperation, error) {
	return c.start(ctx, "EnableProtection", func(ctx context.Context) (*armsiterecovery.Operation, error) {
		return c.protectedItems.StartCreate(ctx, c.vault.ResourceName, c.vault.ResourceGroupName, fabricName, protectionContainerName, replicationProtectedItemName, input, nil)
	})
}

// DisableProtection stops protecting an item and removes it from the vault.
func (c *recoveryServicesClient) DisableProtection(ctx context.Context, fabricName, protectionContainerName, replicationProtectedItemName string, input sdksiterecovery.DisableProtectionInput) (*PSSiteRecoveryLongRunningOperation, error) {
	return c.start(ctx, "DisableProtection", func(ctx context.Context) (*armsiterecovery.Operation, error) {
		return c.protectedItems.StartDelete(ctx, c.vault.ResourceName, c.vault.ResourceGroupName, fabricName, protectionContainerName, replicationProtectedItemName, input, nil)
	})
}

// PurgeProtection removes an item from the vault without cleaning up replication.
func (c *recoveryServicesClient) PurgeProtection(ctx context.Context, fabricName, protectionContainerName, replicationProtectedItemName string) (*PSSiteRecoveryLongRunningOperation, error) {
	return c.start(ctx, "PurgeProtection", func(ctx context.Context) (*armsiterecovery.Operation, error) {
		return c.protectedItems.StartPurge(ctx, c.vault.ResourceName, c.vault.ResourceGroupName, fabricName, protectionContainerName, replicationProtectedItemName, nil)
	})
}

func (c *recoveryServicesClient) AddDisks(ctx context.Context, fabricName, protectionContainerName, replicationProtectedItemName string, input sdksiterecovery.AddDisksInput) (*PSSiteRecoveryLongRunningOperation, error) {
	return c.start(ctx, "AddDisks", func(ctx context.Context) (*armsiterecovery.Operation, error) {
		return c.protectedItems.StartAddDisks(ctx, c.vault.ResourceName, c.vault.ResourceGroupName, fabricName, protectionContainerName, replicationProtectedItemName, input, nil)
	})
}

func (c *recoveryServicesClient) RemoveDisks(ctx context.Context, fabricName, protectionContainerName, replicationProtectedItemName string, input sdksiterecovery.RemoveDisksInput) (*PSSiteRecoveryLongRunningOperation, error) {
	return c.start(ctx, "RemoveDisks", func(ctx context.Context) (*armsiterecovery.Operation, error) {
		return c.protectedItems.StartRemoveDisks(ctx, c.vault.ResourceName, c.vault.ResourceGroupName, fabricName, protectionContainerName, replicationProtectedItemName, input, nil)
	})
}

// StartApplyRecoveryPoint changes the recovery point of a failed over item.
func (c *recoveryServicesClient) StartApplyRecoveryPoint(ctx context.Context, fabricName, protectionContainerName, replicationProtectedItemName string, input sdksiterecovery.ApplyRecoveryPointInput) (*PSSiteRecoveryLongRunningOperation, error) {
	return c.start(ctx, "StartApplyRecoveryPoint", func(ctx context.Context) (*armsiterecovery.Operation, error) {
		return c.protectedItems.StartApplyRecoveryPoint(ctx, c.vault.ResourceName, c.vault.ResourceGroupName, fabricName, protectionContainerName, replicationProtectedItemName, input, nil)
	})
}

func (c *recoveryServicesClient) StartCommitFailover(ctx context.Context, fabricName, protectionContainerName, replicationProtectedItemName string) (*PSSiteRecoveryLongRunningOperation, error) {
	return c.start(ctx, "StartCommitFailover", func(ctx context.Context) (*armsiterecovery.Operation, error) {
		return c.protectedItems.StartFailoverCommit(ctx, c.vault.ResourceName, c.vault.ResourceGroupName, fabricName, protectionContainerName, replicationProtectedItemName, nil)
	})
}

func (c *recoveryServicesClient) StartCancelFailover(ctx context.Context, fabricName, protectionContainerName, replicationProtectedItemName string) (*PSSiteRecoveryLongRunningOperation, error) {
	return c.start(ctx, "StartCancelFailover", func(ctx context.Context) (*armsiterecovery.Operation, error) {
		return c.protectedItems.StartFailoverCancel(ctx, c.vault.ResourceName, c.vault.ResourceGroupName, fabricName, protectionContainerName, replicationProtectedItemName, nil)
	})
}

func (c *recoveryServicesClient) StartPlannedFailover(ctx context.Context, fabricName, protectionContainerName, replicationProtectedItemName string, input sdksiterecovery.PlannedFailoverInput) (*PSSiteRecoveryLongRunningOperation, error) {
	return c.start(ctx, "StartPlannedFailover", func(ctx context.Context) (*armsiterecovery.Operation, error) {
		return c.protectedItems.StartPlannedFailover(ctx, c.vault.ResourceName, c.vault.ResourceGroupName, fabricName, protectionContainerName, replicationProtectedItemName, input, nil)
	})
}

// StartReprotection reverses the replication direction of an item.
func (c *recoveryServicesClient) StartReprotection(ctx context.Context, fabricName, protectionContainerName, replicationProtectedItemName string, input sdksiterecovery.ReverseReplicationInput) (*PSSiteRecoveryLongRunningOperation, error) {
	return c.start(ctx, "StartReprotection", func(ctx context.Context) (*armsiterecovery.Operation, error) {
		return c.protectedItems.StartReprotect(ctx, c.vault.ResourceName, c.vault.ResourceGroupName, fabricName, protectionContainerName, replicationProtectedItemName, input, nil)
	})
}

func (c *recoveryServicesClient) StartTestFailover(ctx context.Context, fabricName, protectionContainerName, replicationProtectedItemName string, input sdksiterecovery.TestFailoverInput) (*PSSiteRecoveryLongRunningOperation, error) {
	return c.start(ctx, "StartTestFailover", func(ctx context.Context) (*armsiterecovery.Operation, error) {
		return c.protectedItems.StartTestFailover(ctx, c.vault.ResourceName, c.vault.ResourceGroupName, fabricName, protectionContainerName, replicationProtectedItemName, input, nil)
	})
}

func (c *recoveryServicesClient) StartTestFailoverCleanup(ctx context.Context, fabricName, protectionContainerName, replicationProtectedItemName string, input sdksiterecovery.TestFailoverCleanupInput) (*PSSiteRecoveryLongRunningOperation, error) {
	return c.start(ctx, "StartTestFailoverCleanup", func(ctx context.Context) (*armsiterecovery.Operation, error) {
		return c.protectedItems.StartTestFailoverCleanup(ctx, c.vault.ResourceName, c.vault.ResourceGroupName, fabricName, protectionContainerName, replicationProtectedItemName, input, nil)
	})
}

func (c *recoveryServicesClient) StartUnplannedFailover(ctx context.Context, fabricName, protectionContainerName, replicationProtectedItemName string, input sdksiterecovery.UnplannedFailoverInput) (*PSSiteRecoveryLongRunningOperation, error) {
	return c.start(ctx, "StartUnplannedFailover", func(ctx context.Context) (*armsiterecovery.Operation, error) {
		return c.protectedItems.StartUnplannedFailover(ctx, c.vault.ResourceName, c.vault.ResourceGroupName, fabricName, protectionContainerName, replicationProtectedItemName, input, nil)
	})
}

// StartResynchronizeReplication repairs replication of an item.
func (c *recoveryServicesClient) StartResynchronizeReplication(ctx context.Context, fabricName, protectionContainerName, replicationProtectedItemName string) (*PSSiteRecoveryLongRunningOperation, error) {
	return c.start(ctx, "StartResynchronizeReplication", func(ctx context.Context) (*armsiterecovery.Operation, error) {
		return c.protectedItems.StartRepairReplication(ctx, c.vault.ResourceName, c.vault.ResourceGroupName, fabricName, protectionContainerName, replicationProtectedItemName, nil)
	})
}

// UpdateMobilityService upgrades the mobility agent of an item.
func (c *recoveryServicesClient) UpdateMobilityService(ctx context.Context, fabricName, protectionContainerName, replicationProtectedItemName string, input sdksiterecovery.UpdateMobilityServiceRequest) (*PSSiteRecoveryLongRunningOperation, error) {
	return c.start(ctx, "UpdateMobilityService", func(ctx context.Context) (*armsiterecovery.Operation, error) {
		return c.protectedItems.StartUpdateMobilityService(ctx, c.vault.ResourceName, c.vault.ResourceGroupName, fabricName, protectionContainerName, replicationProtectedItemName, input, nil)
	})
}

// UpdateVMProperties updates the recovery settings of an item.
func (c *recoveryServicesClient) UpdateVMProperties(ctx context.Context, fabricName, protectionContainerName, replicationProtectedItemName string, input sdksiterecovery.UpdateReplicationProtectedItemInput) (*PSSiteRecoveryLongRunningOperation, error) {
	return c.start(ctx, "UpdateVMProperties", func(ctx context.Context) (*armsiterecovery.Operation, error) {
		return c.protectedItems.StartUpdate(ctx, c.vault.ResourceName, c.vault.ResourceGroupName, fabricName, protectionContainerName, replicationProtectedItemName, input, nil)
	})
}

// SwitchAppliance moves an item to a different replication appliance.
func (c *recoveryServicesClient) SwitchAppliance(ctx context.Context, fabricName, protectionContainerName, replicationProtectedItemName string, input sdksiterecovery.UpdateApplianceForReplicationProtectedItemInput) (*PSSiteRecoveryLongRunningOperation, error) {
	return c.start(ctx, "SwitchAppliance", func(ctx context.Context) (*armsiterecovery.Operation, error) {
		return c.protectedItems.StartUpdateAppliance(ctx, c.vault.ResourceName, c.vault.ResourceGroupName, fabricName, protectionContainerName, replicationProtectedItemName, input, nil)
	})
}

// StartSwitchProtection switches the protection of items in a container to
// a different container.
func (c *recoveryServicesClient) StartSwitchProtection(ctx context.Context, fabricName, protectionContainerName string, input sdksiterecovery.SwitchProtectionInput) (*PSSiteRecoveryLongRunningOperation, error) {
	return c.start(ctx, "StartSwitchProtection", func(ctx context.Context) (*armsiterecovery.Operation, error) {
		return c.protectionContainers.StartSwitchProtection(ctx, c.vault.ResourceName, c.vault.ResourceGroupName, fabricName, protectionContainerName, input, nil)
	})
}
