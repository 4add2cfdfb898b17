package armsiterecovery

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

// ReplicationProtectedItemsClientGetOptions contains the optional parameters for the ReplicationProtectedItemsClient.Get method.
type ReplicationProtectedItemsClientGetOptions struct {
	// placeholder for future optional parameters
}

// ReplicationProtectedItemsClientBeginCreateOptions contains the optional parameters for the ReplicationProtectedItemsClient.BeginCreate method.
type ReplicationProtectedItemsClientBeginCreateOptions struct {
	// Resumes the LRO from the provided token.
	ResumeToken string
}

// ReplicationProtectedItemsClientBeginDeleteOptions contains the optional parameters for the ReplicationProtectedItemsClient.BeginDelete method.
type ReplicationProtectedItemsClientBeginDeleteOptions struct {
	// Resumes the LRO from the provided token.
	ResumeToken string
}

// ReplicationProtectedItemsClientBeginPurgeOptions contains the optional parameters for the ReplicationProtectedItemsClient.BeginPurge method.
type ReplicationProtectedItemsClientBeginPurgeOptions struct {
	// Resumes the LRO from the provided token.
	ResumeToken string
}

// ReplicationProtectedItemsClientBeginUpdateOptions contains the optional parameters for the ReplicationProtectedItemsClient.BeginUpdate method.
type ReplicationProtectedItemsClientBeginUpdateOptions struct {
	// Resumes the LRO from the provided token.
	ResumeToken string
}

// ReplicationProtectedItemsClientBeginAddDisksOptions contains the optional parameters for the ReplicationProtectedItemsClient.BeginAddDisks method.
type ReplicationProtectedItemsClientBeginAddDisksOptions struct {
	// Resumes the LRO from the provided token.
	ResumeToken string
}

// ReplicationProtectedItemsClientBeginRemoveDisksOptions contains the optional parameters for the ReplicationProtectedItemsClient.BeginRemoveDisks method.
type ReplicationProtectedItemsClientBeginRemoveDisksOptions struct {
	// Resumes the LRO from the provided token.
	ResumeToken string
}

// ReplicationProtectedItemsClientBeginApplyRecoveryPointOptions contains the optional parameters for the ReplicationProtectedItemsClient.BeginApplyRecoveryPoint method.
type ReplicationProtectedItemsClientBeginApplyRecoveryPointOptions struct {
	// Resumes the LRO from the provided token.
	ResumeToken string
}

// ReplicationProtectedItemsClientBeginFailoverCommitOptions contains the optional parameters for the ReplicationProtectedItemsClient.BeginFailoverCommit method.
type ReplicationProtectedItemsClientBeginFailoverCommitOptions struct {
	// Resumes the LRO from the provided token.
	ResumeToken string
}

// ReplicationProtectedItemsClientBeginFailoverCancelOptions contains the optional parameters for the ReplicationProtectedItemsClient.BeginFailoverCancel method.
type ReplicationProtectedItemsClientBeginFailoverCancelOptions struct {
	// Resumes the LRO from the provided token.
	ResumeToken string
}

// ReplicationProtectedItemsClientBeginPlannedFailoverOptions contains the optional parameters for the ReplicationProtectedItemsClient.BeginPlannedFailover method.
type ReplicationProtectedItemsClientBeginPlannedFailoverOptions struct {
	// Resumes the LRO from the provided token.
	ResumeToken string
}

// ReplicationProtectedItemsClientBeginReprotectOptions contains the optional parameters for the ReplicationProtectedItemsClient.BeginReprotect method.
type ReplicationProtectedItemsClientBeginReprotectOptions struct {
	// Resumes the LRO from the provided token.
	ResumeToken string
}

// ReplicationProtectedItemsClientBeginTestFailoverOptions contains the optional parameters for the ReplicationProtectedItemsClient.BeginTestFailover method.
type ReplicationProtectedItemsClientBeginTestFailoverOptions struct {
	// Resumes the LRO from the provided token.
	ResumeToken string
}

// ReplicationProtectedItemsClientBeginTestFailoverCleanupOptions contains the optional parameters for the ReplicationProtectedItemsClient.BeginTestFailoverCleanup method.
type ReplicationProtectedItemsClientBeginTestFailoverCleanupOptions struct {
	// Resumes the LRO from the provided token.
	ResumeToken string
}

// ReplicationProtectedItemsClientBeginUnplannedFailoverOptions contains the optional parameters for the ReplicationProtectedItemsClient.BeginUnplannedFailover method.
type ReplicationProtectedItemsClientBeginUnplannedFailoverOptions struct {
	// Resumes the LRO from the provided token.
	ResumeToken string
}

// ReplicationProtectedItemsClientBeginRepairReplicationOptions contains the optional parameters for the ReplicationProtectedItemsClient.BeginRepairReplication method.
type ReplicationProtectedItemsClientBeginRepairReplicationOptions struct {
	// Resumes the LRO from the provided token.
	ResumeToken string
}

// ReplicationProtectedItemsClientBeginUpdateMobilityServiceOptions contains the optional parameters for the ReplicationProtectedItemsClient.BeginUpdateMobilityService method.
type ReplicationProtectedItemsClientBeginUpdateMobilityServiceOptions struct {
	// Resumes the LRO from the provided token.
	ResumeToken string
}

// ReplicationProtectedItemsClientBeginUpdateApplianceOptions contains the optional parameters for the ReplicationProtectedItemsClient.BeginUpdateAppliance method.
type ReplicationProtectedItemsClientBeginUpdateApplianceOptions struct {
	// Resumes the LRO from the provided token.
	ResumeToken string
}

// ReplicationProtectedItemsClientListOptions contains the optional parameters for the ReplicationProtectedItemsClient.NewListPager method.
type ReplicationProtectedItemsClientListOptions struct {
	// OData filter options.
	Filter *string

	// The pagination token. Possible values: "FabricId" or "FabricId_CloudId" or null.
	SkipToken *string
}

// ReplicationProtectedItemsClientListByReplicationProtectionContainersOptions contains the optional parameters for the ReplicationProtectedItemsClient.NewListByReplicationProtectionContainersPager method.
type ReplicationProtectedItemsClientListByReplicationProtectionContainersOptions struct {
	// placeholder for future optional parameters
}

// ReplicationProtectionContainersClientBeginSwitchProtectionOptions contains the optional parameters for the ReplicationProtectionContainersClient.BeginSwitchProtection method.
type ReplicationProtectionContainersClientBeginSwitchProtectionOptions struct {
	// Resumes the LRO from the provided token.
	ResumeToken string
}
