package armsiterecovery

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Azure/azps-go/pkg/util/jsonmodel"
)

// Response models decode best effort: a member whose wire type does not
// match its field is skipped and the field keeps its zero value. Only a
// payload which is not an object fails.

// UnmarshalJSON implements the json.Unmarshaller interface for type ReplicationProtectedItem.
func (r *ReplicationProtectedItem) UnmarshalJSON(data []byte) error {
	rawMsg, err := unmarshalObject(data, r)
	if err != nil {
		return err
	}
	for key, val := range rawMsg {
		switch key {
		case "id":
			unpopulate(val, &r.ID)
		case "location":
			unpopulate(val, &r.Location)
		case "name":
			unpopulate(val, &r.Name)
		case "properties":
			unpopulate(val, &r.Properties)
		case "type":
			unpopulate(val, &r.Type)
		}
	}
	return nil
}

// UnmarshalJSON implements the json.Unmarshaller interface for type ReplicationProtectedItemProperties.
func (r *ReplicationProtectedItemProperties) UnmarshalJSON(data []byte) error {
	rawMsg, err := unmarshalObject(data, r)
	if err != nil {
		return err
	}
	for key, val := range rawMsg {
		switch key {
		case "activeLocation":
			unpopulate(val, &r.ActiveLocation)
		case "allowedOperations":
			unpopulateSlice(val, &r.AllowedOperations)
		case "currentScenario":
			unpopulate(val, &r.CurrentScenario)
		case "eventCorrelationId":
			unpopulate(val, &r.EventCorrelationID)
		case "failoverHealth":
			unpopulate(val, &r.FailoverHealth)
		case "failoverRecoveryPointId":
			unpopulate(val, &r.FailoverRecoveryPointID)
		case "friendlyName":
			unpopulate(val, &r.FriendlyName)
		case "healthErrors":
			unpopulateSlice(val, &r.HealthErrors)
		case "lastSuccessfulFailoverTime":
			unpopulateDateTime(val, &r.LastSuccessfulFailoverTime)
		case "lastSuccessfulTestFailoverTime":
			unpopulateDateTime(val, &r.LastSuccessfulTestFailoverTime)
		case "policyFriendlyName":
			unpopulate(val, &r.PolicyFriendlyName)
		case "policyId":
			unpopulate(val, &r.PolicyID)
		case "primaryFabricFriendlyName":
			unpopulate(val, &r.PrimaryFabricFriendlyName)
		case "primaryFabricProvider":
			unpopulate(val, &r.PrimaryFabricProvider)
		case "primaryProtectionContainerFriendlyName":
			unpopulate(val, &r.PrimaryProtectionContainerFriendlyName)
		case "protectableItemId":
			unpopulate(val, &r.ProtectableItemID)
		case "protectedItemType":
			unpopulate(val, &r.ProtectedItemType)
		case "protectionState":
			unpopulate(val, &r.ProtectionState)
		case "protectionStateDescription":
			unpopulate(val, &r.ProtectionStateDescription)
		case "providerSpecificDetails":
			unpopulate(val, &r.ProviderSpecificDetails)
		case "recoveryContainerId":
			unpopulate(val, &r.RecoveryContainerID)
		case "recoveryFabricFriendlyName":
			unpopulate(val, &r.RecoveryFabricFriendlyName)
		case "recoveryFabricId":
			unpopulate(val, &r.RecoveryFabricID)
		case "recoveryProtectionContainerFriendlyName":
			unpopulate(val, &r.RecoveryProtectionContainerFriendlyName)
		case "recoveryServicesProviderId":
			unpopulate(val, &r.RecoveryServicesProviderID)
		case "replicationHealth":
			unpopulate(val, &r.ReplicationHealth)
		case "switchProviderState":
			unpopulate(val, &r.SwitchProviderState)
		case "switchProviderStateDescription":
			unpopulate(val, &r.SwitchProviderStateDescription)
		case "testFailoverState":
			unpopulate(val, &r.TestFailoverState)
		case "testFailoverStateDescription":
			unpopulate(val, &r.TestFailoverStateDescription)
		}
	}
	return nil
}

// UnmarshalJSON implements the json.Unmarshaller interface for type CurrentScenarioDetails.
func (c *CurrentScenarioDetails) UnmarshalJSON(data []byte) error {
	rawMsg, err := unmarshalObject(data, c)
	if err != nil {
		return err
	}
	for key, val := range rawMsg {
		switch key {
		case "jobId":
			unpopulate(val, &c.JobID)
		case "scenarioName":
			unpopulate(val, &c.ScenarioName)
		case "startTime":
			unpopulateDateTime(val, &c.StartTime)
		}
	}
	return nil
}

// UnmarshalJSON implements the json.Unmarshaller interface for type HealthError.
func (h *HealthError) UnmarshalJSON(data []byte) error {
	rawMsg, err := unmarshalObject(data, h)
	if err != nil {
		return err
	}
	for key, val := range rawMsg {
		switch key {
		case "creationTimeUtc":
			unpopulateDateTime(val, &h.CreationTimeUTC)
		case "errorCode":
			unpopulate(val, &h.ErrorCode)
		case "errorMessage":
			unpopulate(val, &h.ErrorMessage)
		case "errorSeverity":
			unpopulate(val, &h.ErrorSeverity)
		case "possibleCauses":
			unpopulate(val, &h.PossibleCauses)
		case "recommendedAction":
			unpopulate(val, &h.RecommendedAction)
		}
	}
	return nil
}

// UnmarshalJSON implements the json.Unmarshaller interface for type ReplicationProtectedItemCollection.
func (r *ReplicationProtectedItemCollection) UnmarshalJSON(data []byte) error {
	rawMsg, err := unmarshalObject(data, r)
	if err != nil {
		return err
	}
	for key, val := range rawMsg {
		switch key {
		case "nextLink":
			unpopulate(val, &r.NextLink)
		case "value":
			unpopulateSlice(val, &r.Value)
		}
	}
	return nil
}

// UnmarshalJSON implements the json.Unmarshaller interface for type ProtectionContainer.
func (p *ProtectionContainer) UnmarshalJSON(data []byte) error {
	rawMsg, err := unmarshalObject(data, p)
	if err != nil {
		return err
	}
	for key, val := range rawMsg {
		switch key {
		case "id":
			unpopulate(val, &p.ID)
		case "location":
			unpopulate(val, &p.Location)
		case "name":
			unpopulate(val, &p.Name)
		case "properties":
			unpopulate(val, &p.Properties)
		case "type":
			unpopulate(val, &p.Type)
		}
	}
	return nil
}

// UnmarshalJSON implements the json.Unmarshaller interface for type ProtectionContainerProperties.
func (p *ProtectionContainerProperties) UnmarshalJSON(data []byte) error {
	rawMsg, err := unmarshalObject(data, p)
	if err != nil {
		return err
	}
	for key, val := range rawMsg {
		switch key {
		case "fabricFriendlyName":
			unpopulate(val, &p.FabricFriendlyName)
		case "fabricType":
			unpopulate(val, &p.FabricType)
		case "friendlyName":
			unpopulate(val, &p.FriendlyName)
		case "pairingStatus":
			unpopulate(val, &p.PairingStatus)
		case "protectedItemCount":
			unpopulate(val, &p.ProtectedItemCount)
		case "role":
			unpopulate(val, &p.Role)
		}
	}
	return nil
}

func unmarshalObject(data []byte, v any) (map[string]json.RawMessage, error) {
	var rawMsg map[string]json.RawMessage
	if err := json.Unmarshal(data, &rawMsg); err != nil {
		return nil, fmt.Errorf("unmarshalling type %T: %v", v, err)
	}
	return rawMsg, nil
}

// unpopulate sets *v from data, leaving it nil when data is null or of the
// wrong type.
func unpopulate[T any](data json.RawMessage, v **T) {
	if data == nil || string(data) == "null" {
		return
	}

	var t T
	if err := json.Unmarshal(data, &t); err != nil {
		return
	}
	*v = &t
}

// unpopulateSlice sets *v from a JSON array, dropping elements of the wrong
// type. A member which is not an array leaves *v nil.
func unpopulateSlice[T any](data json.RawMessage, v *[]*T) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil || raw == nil {
		return
	}

	s := make([]*T, 0, len(raw))
	for _, r := range raw {
		var e *T
		unpopulate(r, &e)
		if e != nil {
			s = append(s, e)
		}
	}
	*v = s
}

// unpopulateDateTime accepts RFC3339 timestamps with or without an offset.
func unpopulateDateTime(data json.RawMessage, v **time.Time) {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return
	}

	t, err := jsonmodel.ParseTime(s)
	if err != nil {
		return
	}
	*v = &t
}
