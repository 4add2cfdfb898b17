package labservices

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

// EnableState is used on properties which may be switched on or off.
type EnableState string

const (
	EnableStateEnabled  EnableState = "Enabled"
	EnableStateDisabled EnableState = "Disabled"
)

// PossibleEnableStateValues returns the possible values for EnableState.
func PossibleEnableStateValues() []EnableState {
	return []EnableState{
		EnableStateEnabled,
		EnableStateDisabled,
	}
}

// ShutdownOnIdleMode defines what counts as idle for the auto-shutdown
// behaviour of a lab.
type ShutdownOnIdleMode string

const (
	ShutdownOnIdleModeNone        ShutdownOnIdleMode = "None"
	ShutdownOnIdleModeUserAbsence ShutdownOnIdleMode = "UserAbsence"
	ShutdownOnIdleModeLowUsage    ShutdownOnIdleMode = "LowUsage"
)

// PossibleShutdownOnIdleModeValues returns the possible values for ShutdownOnIdleMode.
func PossibleShutdownOnIdleModeValues() []ShutdownOnIdleMode {
	return []ShutdownOnIdleMode{
		ShutdownOnIdleModeNone,
		ShutdownOnIdleModeUserAbsence,
		ShutdownOnIdleModeLowUsage,
	}
}

type ProvisioningState string

const (
	ProvisioningStateCreating  ProvisioningState = "Creating"
	ProvisioningStateUpdating  ProvisioningState = "Updating"
	ProvisioningStateDeleting  ProvisioningState = "Deleting"
	ProvisioningStateSucceeded ProvisioningState = "Succeeded"
	ProvisioningStateFailed    ProvisioningState = "Failed"
	ProvisioningStateLocked    ProvisioningState = "Locked"
)

func PossibleProvisioningStateValues() []ProvisioningState {
	return []ProvisioningState{
		ProvisioningStateCreating,
		ProvisioningStateUpdating,
		ProvisioningStateDeleting,
		ProvisioningStateSucceeded,
		ProvisioningStateFailed,
		ProvisioningStateLocked,
	}
}

// RegistrationState records whether a user has redeemed their invitation.
type RegistrationState string

const (
	RegistrationStateRegistered    RegistrationState = "Registered"
	RegistrationStateNotRegistered RegistrationState = "NotRegistered"
)

func PossibleRegistrationStateValues() []RegistrationState {
	return []RegistrationState{
		RegistrationStateRegistered,
		RegistrationStateNotRegistered,
	}
}

type InvitationState string

const (
	InvitationStateNotSent InvitationState = "NotSent"
	InvitationStateSending InvitationState = "Sending"
	InvitationStateSent    InvitationState = "Sent"
	InvitationStateFailed  InvitationState = "Failed"
)

func PossibleInvitationStateValues() []InvitationState {
	return []InvitationState{
		InvitationStateNotSent,
		InvitationStateSending,
		InvitationStateSent,
		InvitationStateFailed,
	}
}

// LabState is the publishing state of a lab.
type LabState string

const (
	LabStateDraft      LabState = "Draft"
	LabStatePublishing LabState = "Publishing"
	LabStateScaling    LabState = "Scaling"
	LabStateSyncing    LabState = "Syncing"
	LabStatePublished  LabState = "Published"
)

func PossibleLabStateValues() []LabState {
	return []LabState{
		LabStateDraft,
		LabStatePublishing,
		LabStateScaling,
		LabStateSyncing,
		LabStatePublished,
	}
}
