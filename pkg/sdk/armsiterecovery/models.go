package armsiterecovery

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"time"
)

// ReplicationProtectedItem is a protected item of a Recovery Services vault.
type ReplicationProtectedItem struct {
	Location   *string                             `json:"location,omitempty"`
	Properties *ReplicationProtectedItemProperties `json:"properties,omitempty"`

	// READ-ONLY
	ID   *string `json:"id,omitempty"`
	Name *string `json:"name,omitempty"`
	Type *string `json:"type,omitempty"`
}

// ReplicationProtectedItemProperties is the properties of a replication
// protected item.
type ReplicationProtectedItemProperties struct {
	ActiveLocation                          *string                 `json:"activeLocation,omitempty"`
	AllowedOperations                       []*string               `json:"allowedOperations,omitempty"`
	CurrentScenario                         *CurrentScenarioDetails `json:"currentScenario,omitempty"`
	EventCorrelationID                      *string                 `json:"eventCorrelationId,omitempty"`
	FailoverHealth                          *string                 `json:"failoverHealth,omitempty"`
	FailoverRecoveryPointID                 *string                 `json:"failoverRecoveryPointId,omitempty"`
	FriendlyName                            *string                 `json:"friendlyName,omitempty"`
	HealthErrors                            []*HealthError          `json:"healthErrors,omitempty"`
	LastSuccessfulFailoverTime              *time.Time              `json:"lastSuccessfulFailoverTime,omitempty"`
	LastSuccessfulTestFailoverTime          *time.Time              `json:"lastSuccessfulTestFailoverTime,omitempty"`
	PolicyFriendlyName                      *string                 `json:"policyFriendlyName,omitempty"`
	PolicyID                                *string                 `json:"policyId,omitempty"`
	PrimaryFabricFriendlyName               *string                 `json:"primaryFabricFriendlyName,omitempty"`
	PrimaryFabricProvider                   *string                 `json:"primaryFabricProvider,omitempty"`
	PrimaryProtectionContainerFriendlyName  *string                 `json:"primaryProtectionContainerFriendlyName,omitempty"`
	ProtectableItemID                       *string                 `json:"protectableItemId,omitempty"`
	ProtectedItemType                       *string                 `json:"protectedItemType,omitempty"`
	ProtectionState                         *string                 `json:"protectionState,omitempty"`
	ProtectionStateDescription              *string                 `json:"protectionStateDescription,omitempty"`
	ProviderSpecificDetails                 *ProviderSpecificInput  `json:"providerSpecificDetails,omitempty"`
	RecoveryContainerID                     *string                 `json:"recoveryContainerId,omitempty"`
	RecoveryFabricFriendlyName              *string                 `json:"recoveryFabricFriendlyName,omitempty"`
	RecoveryFabricID                        *string                 `json:"recoveryFabricId,omitempty"`
	RecoveryProtectionContainerFriendlyName *string                 `json:"recoveryProtectionContainerFriendlyName,omitempty"`
	RecoveryServicesProviderID              *string                 `json:"recoveryServicesProviderId,omitempty"`
	ReplicationHealth                       *string                 `json:"replicationHealth,omitempty"`
	SwitchProviderState                     *string                 `json:"switchProviderState,omitempty"`
	SwitchProviderStateDescription          *string                 `json:"switchProviderStateDescription,omitempty"`
	TestFailoverState                       *string                 `json:"testFailoverState,omitempty"`
	TestFailoverStateDescription            *string                 `json:"testFailoverStateDescription,omitempty"`
}

// CurrentScenarioDetails is the scenario currently running on an item.
type CurrentScenarioDetails struct {
	JobID        *string    `json:"jobId,omitempty"`
	ScenarioName *string    `json:"scenarioName,omitempty"`
	StartTime    *time.Time `json:"startTime,omitempty"`
}

// HealthError is a replication health error.
type HealthError struct {
	CreationTimeUTC   *time.Time `json:"creationTimeUtc,omitempty"`
	ErrorCode         *string    `json:"errorCode,omitempty"`
	ErrorMessage      *string    `json:"errorMessage,omitempty"`
	ErrorSeverity     *string    `json:"errorSeverity,omitempty"`
	PossibleCauses    *string    `json:"possibleCauses,omitempty"`
	RecommendedAction *string    `json:"recommendedAction,omitempty"`
}

// ReplicationProtectedItemCollection is a page of replication protected items.
type ReplicationProtectedItemCollection struct {
	NextLink *string                     `json:"nextLink,omitempty"`
	Value    []*ReplicationProtectedItem `json:"value,omitempty"`
}

// EnableProtectionInput is the body of a create replication protected item
// request.
type EnableProtectionInput struct {
	Properties *EnableProtectionInputProperties `json:"properties,omitempty"`
}

type EnableProtectionInputProperties struct {
	PolicyID                *string                `json:"policyId,omitempty"`
	ProtectableItemID       *string                `json:"protectableItemId,omitempty"`
	ProviderSpecificDetails *ProviderSpecificInput `json:"providerSpecificDetails,omitempty"`
}

// DisableProtectionInput is the body of a disable protection request.
type DisableProtectionInput struct {
	Properties *DisableProtectionInputProperties `json:"properties,omitempty"`
}

type DisableProtectionInputProperties struct {
	DisableProtectionReason  *DisableProtectionReason `json:"disableProtectionReason,omitempty"`
	ReplicationProviderInput *ProviderSpecificInput   `json:"replicationProviderInput,omitempty"`
}

// AddDisksInput is the body of an add disks request.
type AddDisksInput struct {
	Properties *AddDisksInputProperties `json:"properties,omitempty"`
}

type AddDisksInputProperties struct {
	ProviderSpecificDetails *ProviderSpecificInput `json:"providerSpecificDetails,omitempty"`
}

// RemoveDisksInput is the body of a remove disks request.
type RemoveDisksInput struct {
	Properties *RemoveDisksInputProperties `json:"properties,omitempty"`
}

type RemoveDisksInputProperties struct {
	ProviderSpecificDetails *ProviderSpecificInput `json:"providerSpecificDetails,omitempty"`
}

// ApplyRecoveryPointInput is the body of an apply recovery point request.
type ApplyRecoveryPointInput struct {
	Properties *ApplyRecoveryPointInputProperties `json:"properties,omitempty"`
}

type ApplyRecoveryPointInputProperties struct {
	ProviderSpecificDetails *ProviderSpecificInput `json:"providerSpecificDetails,omitempty"`
	RecoveryPointID         *string                `json:"recoveryPointId,omitempty"`
}

// PlannedFailoverInput is the body of a planned failover request.
type PlannedFailoverInput struct {
	Properties *PlannedFailoverInputProperties `json:"properties,omitempty"`
}

type PlannedFailoverInputProperties struct {
	FailoverDirection       *PossibleOperationsDirections `json:"failoverDirection,omitempty"`
	ProviderSpecificDetails *ProviderSpecificInput        `json:"providerSpecificDetails,omitempty"`
}

// ReverseReplicationInput is the body of a reprotect request.
type ReverseReplicationInput struct {
	Properties *ReverseReplicationInputProperties `json:"properties,omitempty"`
}

type ReverseReplicationInputProperties struct {
	FailoverDirection       *PossibleOperationsDirections `json:"failoverDirection,omitempty"`
	ProviderSpecificDetails *ProviderSpecificInput        `json:"providerSpecificDetails,omitempty"`
}

// TestFailoverInput is the body of a test failover request.
type TestFailoverInput struct {
	Properties *TestFailoverInputProperties `json:"properties,omitempty"`
}

type TestFailoverInputProperties struct {
	FailoverDirection       *PossibleOperationsDirections `json:"failoverDirection,omitempty"`
	NetworkID               *string                       `json:"networkId,omitempty"`
	NetworkType             *string                       `json:"networkType,omitempty"`
	ProviderSpecificDetails *ProviderSpecificInput        `json:"providerSpecificDetails,omitempty"`
}

// TestFailoverCleanupInput is the body of a test failover cleanup request.
type TestFailoverCleanupInput struct {
	Properties *TestFailoverCleanupInputProperties `json:"properties,omitempty"`
}

type TestFailoverCleanupInputProperties struct {
	Comments *string `json:"comments,omitempty"`
}

// UnplannedFailoverInput is the body of an unplanned failover request.
type UnplannedFailoverInput struct {
	Properties *UnplannedFailoverInputProperties `json:"properties,omitempty"`
}

type UnplannedFailoverInputProperties struct {
	FailoverDirection       *PossibleOperationsDirections `json:"failoverDirection,omitempty"`
	ProviderSpecificDetails *ProviderSpecificInput        `json:"providerSpecificDetails,omitempty"`
	SourceSiteOperations    *SourceSiteOperations         `json:"sourceSiteOperations,omitempty"`
}

// UpdateMobilityServiceRequest is the body of an update mobility service
// request.
type UpdateMobilityServiceRequest struct {
	Properties *UpdateMobilityServiceRequestProperties `json:"properties,omitempty"`
}

type UpdateMobilityServiceRequestProperties struct {
	RunAsAccountID *string `json:"runAsAccountId,omitempty"`
}

// SwitchProtectionInput is the body of a switch protection request.
type SwitchProtectionInput struct {
	Properties *SwitchProtectionInputProperties `json:"properties,omitempty"`
}

type SwitchProtectionInputProperties struct {
	ProviderSpecificDetails      *ProviderSpecificInput `json:"providerSpecificDetails,omitempty"`
	ReplicationProtectedItemName *string                `json:"replicationProtectedItemName,omitempty"`
}

// UpdateReplicationProtectedItemInput is the body of an update replication
// protected item request.
type UpdateReplicationProtectedItemInput struct {
	Properties *UpdateReplicationProtectedItemInputProperties `json:"properties,omitempty"`
}

type UpdateReplicationProtectedItemInputProperties struct {
	EnableRdpOnTargetOption        *string                `json:"enableRdpOnTargetOption,omitempty"`
	LicenseType                    *LicenseType           `json:"licenseType,omitempty"`
	ProviderSpecificDetails        *ProviderSpecificInput `json:"providerSpecificDetails,omitempty"`
	RecoveryAvailabilitySetID      *string                `json:"recoveryAvailabilitySetId,omitempty"`
	RecoveryAzureVMName            *string                `json:"recoveryAzureVMName,omitempty"`
	RecoveryAzureVMSize            *string                `json:"recoveryAzureVMSize,omitempty"`
	SelectedRecoveryAzureNetworkID *string                `json:"selectedRecoveryAzureNetworkId,omitempty"`
	SelectedSourceNicID            *string                `json:"selectedSourceNicId,omitempty"`
	SelectedTfoAzureNetworkID      *string                `json:"selectedTfoAzureNetworkId,omitempty"`
	VMNics                         []*VMNicInputDetails   `json:"vmNics,omitempty"`
}

// VMNicInputDetails is the network settings of one recovered NIC.
type VMNicInputDetails struct {
	EnableAcceleratedNetworkingOnRecovery *bool   `json:"enableAcceleratedNetworkingOnRecovery,omitempty"`
	NicID                                 *string `json:"nicId,omitempty"`
	RecoveryNicName                       *string `json:"recoveryNicName,omitempty"`
	RecoveryVMSubnetName                  *string `json:"recoveryVMSubnetName,omitempty"`
	ReplicaNicStaticIPAddress             *string `json:"replicaNicStaticIPAddress,omitempty"`
	SelectionType                         *string `json:"selectionType,omitempty"`
}

// UpdateApplianceForReplicationProtectedItemInput is the body of an update
// appliance request.
type UpdateApplianceForReplicationProtectedItemInput struct {
	Properties *UpdateApplianceForReplicationProtectedItemInputProperties `json:"properties,omitempty"`
}

type UpdateApplianceForReplicationProtectedItemInputProperties struct {
	ProviderSpecificDetails *ProviderSpecificInput `json:"providerSpecificDetails,omitempty"`
	TargetApplianceID       *string                `json:"targetApplianceId,omitempty"`
}

// ProtectionContainer is a replication protection container.
type ProtectionContainer struct {
	Location   *string                        `json:"location,omitempty"`
	Properties *ProtectionContainerProperties `json:"properties,omitempty"`

	// READ-ONLY
	ID   *string `json:"id,omitempty"`
	Name *string `json:"name,omitempty"`
	Type *string `json:"type,omitempty"`
}

type ProtectionContainerProperties struct {
	FabricFriendlyName *string `json:"fabricFriendlyName,omitempty"`
	FabricType         *string `json:"fabricType,omitempty"`
	FriendlyName       *string `json:"friendlyName,omitempty"`
	PairingStatus      *string `json:"pairingStatus,omitempty"`
	ProtectedItemCount *int32  `json:"protectedItemCount,omitempty"`
	Role               *string `json:"role,omitempty"`
}
