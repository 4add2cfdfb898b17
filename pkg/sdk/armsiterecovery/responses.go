package armsiterecovery

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

// ReplicationProtectedItemsClientGetResponse contains the response from method ReplicationProtectedItemsClient.Get.
type ReplicationProtectedItemsClientGetResponse struct {
	ReplicationProtectedItem
}

// ReplicationProtectedItemsClientCreateResponse contains the response from method ReplicationProtectedItemsClient.BeginCreate.
type ReplicationProtectedItemsClientCreateResponse struct {
	ReplicationProtectedItem
}

// ReplicationProtectedItemsClientDeleteResponse contains the response from method ReplicationProtectedItemsClient.BeginDelete.
type ReplicationProtectedItemsClientDeleteResponse struct {
	// placeholder for future response values
}

// ReplicationProtectedItemsClientPurgeResponse contains the response from method ReplicationProtectedItemsClient.BeginPurge.
type ReplicationProtectedItemsClientPurgeResponse struct {
	// placeholder for future response values
}

// ReplicationProtectedItemsClientUpdateResponse contains the response from method ReplicationProtectedItemsClient.BeginUpdate.
type ReplicationProtectedItemsClientUpdateResponse struct {
	ReplicationProtectedItem
}

// ReplicationProtectedItemsClientAddDisksResponse contains the response from method ReplicationProtectedItemsClient.BeginAddDisks.
type ReplicationProtectedItemsClientAddDisksResponse struct {
	ReplicationProtectedItem
}

// ReplicationProtectedItemsClientRemoveDisksResponse contains the response from method ReplicationProtectedItemsClient.BeginRemoveDisks.
type ReplicationProtectedItemsClientRemoveDisksResponse struct {
	ReplicationProtectedItem
}

// ReplicationProtectedItemsClientApplyRecoveryPointResponse contains the response from method ReplicationProtectedItemsClient.BeginApplyRecoveryPoint.
type ReplicationProtectedItemsClientApplyRecoveryPointResponse struct {
	ReplicationProtectedItem
}

// ReplicationProtectedItemsClientFailoverCommitResponse contains the response from method ReplicationProtectedItemsClient.BeginFailoverCommit.
type ReplicationProtectedItemsClientFailoverCommitResponse struct {
	ReplicationProtectedItem
}

// ReplicationProtectedItemsClientFailoverCancelResponse contains the response from method ReplicationProtectedItemsClient.BeginFailoverCancel.
type ReplicationProtectedItemsClientFailoverCancelResponse struct {
	ReplicationProtectedItem
}

// ReplicationProtectedItemsClientPlannedFailoverResponse contains the response from method ReplicationProtectedItemsClient.BeginPlannedFailover.
type ReplicationProtectedItemsClientPlannedFailoverResponse struct {
	ReplicationProtectedItem
}

// ReplicationProtectedItemsClientReprotectResponse contains the response from method ReplicationProtectedItemsClient.BeginReprotect.
type ReplicationProtectedItemsClientReprotectResponse struct {
	ReplicationProtectedItem
}

// ReplicationProtectedItemsClientTestFailoverResponse contains the response from method ReplicationProtectedItemsClient.BeginTestFailover.
type ReplicationProtectedItemsClientTestFailoverResponse struct {
	ReplicationProtectedItem
}

// ReplicationProtectedItemsClientTestFailoverCleanupResponse contains the response from method ReplicationProtectedItemsClient.BeginTestFailoverCleanup.
type ReplicationProtectedItemsClientTestFailoverCleanupResponse struct {
	ReplicationProtectedItem
}

// ReplicationProtectedItemsClientUnplannedFailoverResponse contains the response from method ReplicationProtectedItemsClient.BeginUnplannedFailover.
type ReplicationProtectedItemsClientUnplannedFailoverResponse struct {
	ReplicationProtectedItem
}

// ReplicationProtectedItemsClientRepairReplicationResponse contains the response from method ReplicationProtectedItemsClient.BeginRepairReplication.
type ReplicationProtectedItemsClientRepairReplicationResponse struct {
	ReplicationProtectedItem
}

// ReplicationProtectedItemsClientUpdateMobilityServiceResponse contains the response from method ReplicationProtectedItemsClient.BeginUpdateMobilityService.
type ReplicationProtectedItemsClientUpdateMobilityServiceResponse struct {
	ReplicationProtectedItem
}

// ReplicationProtectedItemsClientUpdateApplianceResponse contains the response from method ReplicationProtectedItemsClient.BeginUpdateAppliance.
type ReplicationProtectedItemsClientUpdateApplianceResponse struct {
	ReplicationProtectedItem
}

// ReplicationProtectedItemsClientListResponse contains the response from method ReplicationProtectedItemsClient.NewListPager.
type ReplicationProtectedItemsClientListResponse struct {
	ReplicationProtectedItemCollection
}

// ReplicationProtectedItemsClientListByReplicationProtectionContainersResponse contains the response from method ReplicationProtectedItemsClient.NewListByReplicationProtectionContainersPager.
type ReplicationProtectedItemsClientListByReplicationProtectionContainersResponse struct {
	ReplicationProtectedItemCollection
}

// ReplicationProtectionContainersClientSwitchProtectionResponse contains the response from method ReplicationProtectionContainersClient.BeginSwitchProtection.
type ReplicationProtectionContainersClientSwitchProtectionResponse struct {
	ProtectionContainer
}
