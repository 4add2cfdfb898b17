package armsiterecovery

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

const (
	moduleName    = "github.com/Azure/azps-go/pkg/sdk/armsiterecovery"
	moduleVersion = "v1.0.0"

	apiVersion = "2025-01-01"
)

// DisableProtectionReason is the reason protection is being disabled.
type DisableProtectionReason string

const (
	DisableProtectionReasonMigrationComplete DisableProtectionReason = "MigrationComplete"
	DisableProtectionReasonNotSpecified      DisableProtectionReason = "NotSpecified"
)

// PossibleDisableProtectionReasonValues returns the possible values for the DisableProtectionReason const type.
func PossibleDisableProtectionReasonValues() []DisableProtectionReason {
	return []DisableProtectionReason{
		DisableProtectionReasonMigrationComplete,
		DisableProtectionReasonNotSpecified,
	}
}

// PossibleOperationsDirections is the direction of a failover or reprotect.
type PossibleOperationsDirections string

const (
	PossibleOperationsDirectionsPrimaryToRecovery PossibleOperationsDirections = "PrimaryToRecovery"
	PossibleOperationsDirectionsRecoveryToPrimary PossibleOperationsDirections = "RecoveryToPrimary"
)

// PossiblePossibleOperationsDirectionsValues returns the possible values for the PossibleOperationsDirections const type.
func PossiblePossibleOperationsDirectionsValues() []PossibleOperationsDirections {
	return []PossibleOperationsDirections{
		PossibleOperationsDirectionsPrimaryToRecovery,
		PossibleOperationsDirectionsRecoveryToPrimary,
	}
}

// SourceSiteOperations states whether operations on the source site are
// required during an unplanned failover.
type SourceSiteOperations string

const (
	SourceSiteOperationsNotRequired SourceSiteOperations = "NotRequired"
	SourceSiteOperationsRequired    SourceSiteOperations = "Required"
)

// PossibleSourceSiteOperationsValues returns the possible values for the SourceSiteOperations const type.
func PossibleSourceSiteOperationsValues() []SourceSiteOperations {
	return []SourceSiteOperations{
		SourceSiteOperationsNotRequired,
		SourceSiteOperationsRequired,
	}
}

// LicenseType is the license type of a recovered virtual machine.
type LicenseType string

const (
	LicenseTypeNoLicenseType LicenseType = "NoLicenseType"
	LicenseTypeNotSpecified  LicenseType = "NotSpecified"
	LicenseTypeWindowsServer LicenseType = "WindowsServer"
)

// PossibleLicenseTypeValues returns the possible values for the LicenseType const type.
func PossibleLicenseTypeValues() []LicenseType {
	return []LicenseType{
		LicenseTypeNoLicenseType,
		LicenseTypeNotSpecified,
		LicenseTypeWindowsServer,
	}
}
