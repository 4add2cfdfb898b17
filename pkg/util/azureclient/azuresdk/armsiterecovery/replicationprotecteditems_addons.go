package armsiterecovery

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"

	"github.com/Azure/azps-go/pkg/sdk/armsiterecovery"
)

// ReplicationProtectedItemsClientAddons contains addons for ReplicationProtectedItemsClient.
// The Start methods issue the first request of an operation and return
// without waiting for it to complete.
type ReplicationProtectedItemsClientAddons interface {
	StartCreate(ctx context.Context, resourceName string, resourceGroupName string, fabricName string, protectionContainerName string, replicatedProtectedItemName string, input armsiterecovery.EnableProtectionInput, options *armsiterecovery.ReplicationProtectedItemsClientBeginCreateOptions) (*Operation, error)
	StartDelete(ctx context.Context, resourceName string, resourceGroupName string, fabricName string, protectionContainerName string, replicatedProtectedItemName string, disableProtectionInput armsiterecovery.DisableProtectionInput, options *armsiterecovery.ReplicationProtectedItemsClientBeginDeleteOptions) (*Operation, error)
	StartPurge(ctx context.Context, resourceName string, resourceGroupName string, fabricName string, protectionContainerName string, replicatedProtectedItemName string, options *armsiterecovery.ReplicationProtectedItemsClientBeginPurgeOptions) (*Operation, error)
	StartUpdate(ctx context.Context, resourceName string, resourceGroupName string, fabricName string, protectionContainerName string, replicatedProtectedItemName string, updateProtectionInput armsiterecovery.UpdateReplicationProtectedItemInput, options *armsiterecovery.ReplicationProtectedItemsClientBeginUpdateOptions) (*Operation, error)
	StartAddDisks(ctx context.Context, resourceName string, resourceGroupName string, fabricName string, protectionContainerName string, replicatedProtectedItemName string, addDisksInput armsiterecovery.AddDisksInput, options *armsiterecovery.ReplicationProtectedItemsClientBeginAddDisksOptions) (*Operation, error)
	StartRemoveDisks(ctx context.Context, resourceName string, resourceGroupName string, fabricName string, protectionContainerName string, replicatedProtectedItemName string, removeDisksInput armsiterecovery.RemoveDisksInput, options *armsiterecovery.ReplicationProtectedItemsClientBeginRemoveDisksOptions) (*Operation, error)
	StartApplyRecoveryPoint(ctx context.Context, resourceName string, resourceGroupName string, fabricName string, protectionContainerName string, replicatedProtectedItemName string, applyRecoveryPointInput armsiterecovery.ApplyRecoveryPointInput, options *armsiterecovery.ReplicationProtectedItemsClientBeginApplyRecoveryPointOptions) (*Operation, error)
	StartFailoverCommit(ctx context.Context, resourceName string, resourceGroupName string, fabricName string, protectionContainerName string, replicatedProtectedItemName string, options *armsiterecovery.ReplicationProtectedItemsClientBeginFailoverCommitOptions) (*Operation, error)
	StartFailoverCancel(ctx context.Context, resourceName string, resourceGroupName string, fabricName string, protectionContainerName string, replicatedProtectedItemName string, options *armsiterecovery.ReplicationProtectedItemsClientBeginFailoverCancelOptions) (*Operation, error)
	StartPlannedFailover(ctx context.Context, resourceName string, resourceGroupName string, fabricName string, protectionContainerName string, replicatedProtectedItemName string, failoverInput armsiterecovery.PlannedFailoverInput, options *armsiterecovery.ReplicationProtectedItemsClientBeginPlannedFailoverOptions) (*Operation, error)
	StartReprotect(ctx context.Context, resourceName string, resourceGroupName string, fabricName string, protectionContainerName string, replicatedProtectedItemName string, reprotectInput armsiterecovery.ReverseReplicationInput, options *armsiterecovery.ReplicationProtectedItemsClientBeginReprotectOptions) (*Operation, error)
	StartTestFailover(ctx context.Context, resourceName string, resourceGroupName string, fabricName string, protectionContainerName string, replicatedProtectedItemName string, testfailoverInput armsiterecovery.TestFailoverInput, options *armsiterecovery.ReplicationProtectedItemsClientBeginTestFailoverOptions) (*Operation, error)
	StartTestFailoverCleanup(ctx context.Context, resourceName string, resourceGroupName string, fabricName string, protectionContainerName string, replicatedProtectedItemName string, cleanupInput armsiterecovery.TestFailoverCleanupInput, options *armsiterecovery.ReplicationProtectedItemsClientBeginTestFailoverCleanupOptions) (*Operation, error)
	StartUnplannedFailover(ctx context.Context, resourceName string, resourceGroupName string, fabricName string, protectionContainerName string, replicatedProtectedItemName string, failoverInput armsiterecovery.UnplannedFailoverInput, options *armsiterecovery.ReplicationProtectedItemsClientBeginUnplannedFailoverOptions) (*Operation, error)
	StartRepairReplication(ctx context.Context, resourceName string, resourceGroupName string, fabricName string, protectionContainerName string, replicatedProtectedItemName string, options *armsiterecovery.ReplicationProtectedItemsClientBeginRepairReplicationOptions) (*Operation, error)
	StartUpdateMobilityService(ctx context.Context, resourceName string, resourceGroupName string, fabricName string, protectionContainerName string, replicatedProtectedItemName string, updateMobilityServiceRequest armsiterecovery.UpdateMobilityServiceRequest, options *armsiterecovery.ReplicationProtectedItemsClientBeginUpdateMobilityServiceOptions) (*Operation, error)
	StartUpdateAppliance(ctx context.Context, resourceName string, resourceGroupName string, fabricName string, protectionContainerName string, replicatedProtectedItemName string, applianceUpdateInput armsiterecovery.UpdateApplianceForReplicationProtectedItemInput, options *armsiterecovery.ReplicationProtectedItemsClientBeginUpdateApplianceOptions) (*Operation, error)
	List(ctx context.Context, resourceName string, resourceGroupName string, options *armsiterecovery.ReplicationProtectedItemsClientListOptions) ([]*armsiterecovery.ReplicationProtectedItem, error)
	ListByReplicationProtectionContainers(ctx context.Context, resourceName string, resourceGroupName string, fabricName string, protectionContainerName string, options *armsiterecovery.ReplicationProtectedItemsClientListByReplicationProtectionContainersOptions) ([]*armsiterecovery.ReplicationProtectedItem, error)
}

func (c *replicationProtectedItemsClient) StartCreate(ctx context.Context, resourceName string, resourceGroupName string, fabricName string, protectionContainerName string, replicatedProtectedItemName string, input armsiterecovery.EnableProtectionInput, options *armsiterecovery.ReplicationProtectedItemsClientBeginCreateOptions) (*Operation, error) {
	return start(ctx, func(ctx context.Context) (*runtime.Poller[armsiterecovery.ReplicationProtectedItemsClientCreateResponse], error) {
		return c.ReplicationProtectedItemsClient.BeginCreate(ctx, resourceName, resourceGroupName, fabricName, protectionContainerName, replicatedProtectedItemName, input, options)
	})
}

func (c *replicationProtectedItemsClient) StartDelete(ctx context.Context, resourceName string, resourceGroupName string, fabricName string, protectionContainerName string, replicatedProtectedItemName string, disableProtectionInput armsiterecovery.DisableProtectionInput, options *armsiterecovery.ReplicationProtectedItemsClientBeginDeleteOptions) (*Operation, error) {
	return start(ctx, func(ctx context.Context) (*runtime.Poller[armsiterecovery.ReplicationProtectedItemsClientDeleteResponse], error) {
		return c.ReplicationProtectedItemsClient.BeginDelete(ctx, resourceName, resourceGroupName, fabricName, protectionContainerName, replicatedProtectedItemName, disableProtectionInput, options)
	})
}

func (c *replicationProtectedItemsClient) StartPurge(ctx context.Context, resourceName string, resourceGroupName string, fabricName string, protectionContainerName string, replicatedProtectedItemName string, options *armsiterecovery.ReplicationProtectedItemsClientBeginPurgeOptions) (*Operation, error) {
	return start(ctx, func(ctx context.Context) (*runtime.Poller[armsiterecovery.ReplicationProtectedItemsClientPurgeResponse], error) {
		return c.ReplicationProtectedItemsClient.BeginPurge(ctx, resourceName, resourceGroupName, fabricName, protectionContainerName, replicatedProtectedItemName, options)
	})
}

func (c *replicationProtectedItemsClient) StartUpdate(ctx context.Context, resourceName string, resourceGroupName string, fabricName string, protectionContainerName string, replicatedProtectedItemName string, updateProtectionInput armsiterecovery.UpdateReplicationProtectedItemInput, options *armsiterecovery.ReplicationProtectedItemsClientBeginUpdateOptions) (*Operation, error) {
	return start(ctx, func(ctx context.Context) (*runtime.Poller[armsiterecovery.ReplicationProtectedItemsClientUpdateResponse], error) {
		return c.ReplicationProtectedItemsClient.BeginUpdate(ctx, resourceName, resourceGroupName, fabricName, protectionContainerName, replicatedProtectedItemName, updateProtectionInput, options)
	})
}

func (c *replicationProtectedItemsClient) StartAddDisks(ctx context.Context, resourceName string, resourceGroupName string, fabricName string, protectionContainerName string, replicatedProtectedItemName string, addDisksInput armsiterecovery.AddDisksInput, options *armsiterecovery.ReplicationProtectedItemsClientBeginAddDisksOptions) (*Operation, error) {
	return start(ctx, func(ctx context.Context) (*runtime.Poller[armsiterecovery.ReplicationProtectedItemsClientAddDisksResponse], error) {
		return c.ReplicationProtectedItemsClient.BeginAddDisks(ctx, resourceName, resourceGroupName, fabricName, protectionContainerName, replicatedProtectedItemName, addDisksInput, options)
	})
}

func (c *replicationProtectedItemsClient) StartRemoveDisks(ctx context.Context, resourceName string, resourceGroupName string, fabricName string, protectionContainerName string, replicatedProtectedItemName string, removeDisksInput armsiterecovery.RemoveDisksInput, options *armsiterecovery.ReplicationProtectedItemsClientBeginRemoveDisksOptions) (*Operation, error) {
	return start(ctx, func(ctx context.Context) (*runtime.Poller[armsiterecovery.ReplicationProtectedItemsClientRemoveDisksResponse], error) {
		return c.ReplicationProtectedItemsClient.BeginRemoveDisks(ctx, resourceName, resourceGroupName, fabricName, protectionContainerName, replicatedProtectedItemName, removeDisksInput, options)
	})
}

func (c *replicationProtectedItemsClient) StartApplyRecoveryPoint(ctx context.Context, resourceName string, resourceGroupName string, fabricName string, protectionContainerName string, replicatedProtectedItemName string, applyRecoveryPointInput armsiterecovery.ApplyRecoveryPointInput, options *armsiterecovery.ReplicationProtectedItemsClientBeginApplyRecoveryPointOptions) (*Operation, error) {
	return start(ctx, func(ctx context.Context) (*runtime.Poller[armsiterecovery.ReplicationProtectedItemsClientApplyRecoveryPointResponse], error) {
		return c.ReplicationProtectedItemsClient.BeginApplyRecoveryPoint(ctx, resourceName, resourceGroupName, fabricName, protectionContainerName, replicatedProtectedItemName, applyRecoveryPointInput, options)
	})
}

func (c *replicationProtectedItemsClient) StartFailoverCommit(ctx context.Context, resourceName string, resourceGroupName string, fabricName string, protectionContainerName string, replicatedProtectedItemName string, options *armsiterecovery.ReplicationProtectedItemsClientBeginFailoverCommitOptions) (*Operation, error) {
	return start(ctx, func(ctx context.Context) (*runtime.Poller[armsiterecovery.ReplicationProtectedItemsClientFailoverCommitResponse], error) {
		return c.ReplicationProtectedItemsClient.BeginFailoverCommit(ctx, resourceName, resourceGroupName, fabricName, protectionContainerName, replicatedProtectedItemName, options)
	})
}

func (c *replicationProtectedItemsClient) StartFailoverCancel(ctx context.Context, resourceName string, resourceGroupName string, fabricName string, protectionContainerName string, replicatedProtectedItemName string, options *armsiterecovery.ReplicationProtectedItemsClientBeginFailoverCancelOptions) (*Operation, error) {
	return start(ctx, func(ctx context.Context) (*runtime.Poller[armsiterecovery.ReplicationProtectedItemsClientFailoverCancelResponse], error) {
		return c.ReplicationProtectedItemsClient.BeginFailoverCancel(ctx, resourceName, resourceGroupName, fabricName, protectionContainerName, replicatedProtectedItemName, options)
	})
}

func (c *replicationProtectedItemsClient) StartPlannedFailover(ctx context.Context, resourceName string, resourceGroupName string, fabricName string, protectionContainerName string, replicatedProtectedItemName string, failoverInput armsiterecovery.PlannedFailoverInput, options *armsiterecovery.ReplicationProtectedItemsClientBeginPlannedFailoverOptions) (*Operation, error) {
	return start(ctx, func(ctx context.Context) (*runtime.Poller[armsiterecovery.ReplicationProtectedItemsClientPlannedFailoverResponse], error) {
		return c.ReplicationProtectedItemsClient.BeginPlannedFailover(ctx, resourceName, resourceGroupName, fabricName, protectionContainerName, replicatedProtectedItemName, failoverInput, options)
	})
}

func (c *replicationProtectedItemsClient) StartReprotect(ctx context.Context, resourceName string, resourceGroupName string, fabricName string, protectionContainerName string, replicatedProtectedItemName string, reprotectInput armsiterecovery.ReverseReplicationInput, options *armsiterecovery.ReplicationProtectedItemsClientBeginReprotectOptions) (*Operation, error) {
	return start(ctx, func(ctx context.Context) (*runtime.Poller[armsiterecovery.ReplicationProtectedItemsClientReprotectResponse], error) {
		return c.ReplicationProtectedItemsClient.BeginReprotect(ctx, resourceName, resourceGroupName, fabricName, protectionContainerName, replicatedProtectedItemName, reprotectInput, options)
	})
}

func (c *replicationProtectedItemsClient) StartTestFailover(ctx context.Context, resourceName string, resourceGroupName string, fabricName string, protectionContainerName string, replicatedProtectedItemName string, testfailoverInput armsiterecovery.TestFailoverInput, options *armsiterecovery.ReplicationProtectedItemsClientBeginTestFailoverOptions) (*Operation, error) {
	return start(ctx, func(ctx context.Context) (*runtime.Poller[armsiterecovery.ReplicationProtectedItemsClientTestFailoverResponse], error) {
		return c.ReplicationProtectedItemsClient.BeginTestFailover(ctx, resourceName, resourceGroupName, fabricName, protectionContainerName, replicatedProtectedItemName, testfailoverInput, options)
	})
}

func (c *replicationProtectedItemsClient) StartTestFailoverCleanup(ctx context.Context, resourceName string, resourceGroupName string, fabricName string, protectionContainerName string, replicatedProtectedItemName string, cleanupInput armsiterecovery.TestFailoverCleanupInput, options *armsiterecovery.ReplicationProtectedItemsClientBeginTestFailoverCleanupOptions) (*Operation, error) {
	return start(ctx, func(ctx context.Context) (*runtime.Poller[armsiterecovery.ReplicationProtectedItemsClientTestFailoverCleanupResponse], error) {
		return c.ReplicationProtectedItemsClient.BeginTestFailoverCleanup(ctx, resourceName, resourceGroupName, fabricName, protectionContainerName, replicatedProtectedItemName, cleanupInput, options)
	})
}

func (c *replicationProtectedItemsClient) StartUnplannedFailover(ctx context.Context, resourceName string, resourceGroupName string, fabricName string, protectionContainerName string, replicatedProtectedItemName string, failoverInput armsiterecovery.UnplannedFailoverInput, options *armsiterecovery.ReplicationProtectedItemsClientBeginUnplannedFailoverOptions) (*Operation, error) {
	return start(ctx, func(ctx context.Context) (*runtime.Poller[armsiterecovery.ReplicationProtectedItemsClientUnplannedFailoverResponse], error) {
		return c.ReplicationProtectedItemsClient.BeginUnplannedFailover(ctx, resourceName, resourceGroupName, fabricName, protectionContainerName, replicatedProtectedItemName, failoverInput, options)
	})
}

func (c *replicationProtectedItemsClient) StartRepairReplication(ctx context.Context, resourceName string, resourceGroupName string, fabricName string, protectionContainerName string, replicatedProtectedItemName string, options *armsiterecovery.ReplicationProtectedItemsClientBeginRepairReplicationOptions) (*Operation, error) {
	return start(ctx, func(ctx context.Context) (*runtime.Poller[armsiterecovery.ReplicationProtectedItemsClientRepairReplicationResponse], error) {
		return c.ReplicationProtectedItemsClient.BeginRepairReplication(ctx, resourceName, resourceGroupName, fabricName, protectionContainerName, replicatedProtectedItemName, options)
	})
}

func (c *replicationProtectedItemsClient) StartUpdateMobilityService(ctx context.Context, resourceName string, resourceGroupName string, fabricName string, protectionContainerName string, replicatedProtectedItemName string, updateMobilityServiceRequest armsiterecovery.UpdateMobilityServiceRequest, options *armsiterecovery.ReplicationProtectedItemsClientBeginUpdateMobilityServiceOptions) (*Operation, error) {
	return start(ctx, func(ctx context.Context) (*runtime.Poller[armsiterecovery.ReplicationProtectedItemsClientUpdateMobilityServiceResponse], error) {
		return c.ReplicationProtectedItemsClient.BeginUpdateMobilityService(ctx, resourceName, resourceGroupName, fabricName, protectionContainerName, replicatedProtectedItemName, updateMobilityServiceRequest, options)
	})
}

func (c *replicationProtectedItemsClient) StartUpdateAppliance(ctx context.Context, resourceName string, resourceGroupName string, fabricName string, protectionContainerName string, replicatedProtectedItemName string, applianceUpdateInput armsiterecovery.UpdateApplianceForReplicationProtectedItemInput, options *armsiterecovery.ReplicationProtectedItemsClientBeginUpdateApplianceOptions) (*Operation, error) {
	return start(ctx, func(ctx context.Context) (*runtime.Poller[armsiterecovery.ReplicationProtectedItemsClientUpdateApplianceResponse], error) {
		return c.ReplicationProtectedItemsClient.BeginUpdateAppliance(ctx, resourceName, resourceGroupName, fabricName, protectionContainerName, replicatedProtectedItemName, applianceUpdateInput, options)
	})
}

func (c *replicationProtectedItemsClient) List(ctx context.Context, resourceName string, resourceGroupName string, options *armsiterecovery.ReplicationProtectedItemsClientListOptions) (result []*armsiterecovery.ReplicationProtectedItem, err error) {
	pager := c.ReplicationProtectedItemsClient.NewListPager(resourceName, resourceGroupName, options)

	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		result = append(result, page.Value...)
	}
	return result, nil
}

func (c *replicationProtectedItemsClient) ListByReplicationProtectionContainers(ctx context.Context, resourceName string, resourceGroupName string, fabricName string, protectionContainerName string, options *armsiterecovery.ReplicationProtectedItemsClientListByReplicationProtectionContainersOptions) (result []*armsiterecovery.ReplicationProtectedItem, err error) {
	pager := c.ReplicationProtectedItemsClient.NewListByReplicationProtectionContainersPager(resourceName, resourceGroupName, fabricName, protectionContainerName, options)

	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		result = append(result, page.Value...)
	}
	return result, nil
}
