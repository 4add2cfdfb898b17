package v20250201

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

// HugepagesSize is the size of the hugepages to allocate on an agent pool
// node.
type HugepagesSize string

const (
	HugepagesSize2M HugepagesSize = "2M"
	HugepagesSize1G HugepagesSize = "1G"
)

func PossibleHugepagesSizeValues() []HugepagesSize {
	return []HugepagesSize{
		HugepagesSize2M,
		HugepagesSize1G,
	}
}

type AgentPoolMode string

const (
	AgentPoolModeSystem        AgentPoolMode = "System"
	AgentPoolModeUser          AgentPoolMode = "User"
	AgentPoolModeNotApplicable AgentPoolMode = "NotApplicable"
)

func PossibleAgentPoolModeValues() []AgentPoolMode {
	return []AgentPoolMode{
		AgentPoolModeSystem,
		AgentPoolModeUser,
		AgentPoolModeNotApplicable,
	}
}

type AgentPoolDetailedStatus string

const (
	AgentPoolDetailedStatusAvailable    AgentPoolDetailedStatus = "Available"
	AgentPoolDetailedStatusError        AgentPoolDetailedStatus = "Error"
	AgentPoolDetailedStatusProvisioning AgentPoolDetailedStatus = "Provisioning"
)

func PossibleAgentPoolDetailedStatusValues() []AgentPoolDetailedStatus {
	return []AgentPoolDetailedStatus{
		AgentPoolDetailedStatusAvailable,
		AgentPoolDetailedStatusError,
		AgentPoolDetailedStatusProvisioning,
	}
}

type AgentPoolProvisioningState string

const (
	AgentPoolProvisioningStateAccepted   AgentPoolProvisioningState = "Accepted"
	AgentPoolProvisioningStateCanceled   AgentPoolProvisioningState = "Canceled"
	AgentPoolProvisioningStateDeleting   AgentPoolProvisioningState = "Deleting"
	AgentPoolProvisioningStateFailed     AgentPoolProvisioningState = "Failed"
	AgentPoolProvisioningStateInProgress AgentPoolProvisioningState = "InProgress"
	AgentPoolProvisioningStateSucceeded  AgentPoolProvisioningState = "Succeeded"
	AgentPoolProvisioningStateUpdating   AgentPoolProvisioningState = "Updating"
)

func PossibleAgentPoolProvisioningStateValues() []AgentPoolProvisioningState {
	return []AgentPoolProvisioningState{
		AgentPoolProvisioningStateAccepted,
		AgentPoolProvisioningStateCanceled,
		AgentPoolProvisioningStateDeleting,
		AgentPoolProvisioningStateFailed,
		AgentPoolProvisioningStateInProgress,
		AgentPoolProvisioningStateSucceeded,
		AgentPoolProvisioningStateUpdating,
	}
}
