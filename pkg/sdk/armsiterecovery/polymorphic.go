package armsiterecovery

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ProviderSpecificInput is a replication provider payload. InstanceType
// selects the provider (for example "A2A" or "InMageRcm") and every other
// member is carried unchanged in AdditionalProperties.
type ProviderSpecificInput struct {
	InstanceType         string
	AdditionalProperties map[string]any
}

// NewProviderSpecificInput returns an input for the given provider.
func NewProviderSpecificInput(instanceType string, properties map[string]any) *ProviderSpecificInput {
	return &ProviderSpecificInput{
		InstanceType:         instanceType,
		AdditionalProperties: properties,
	}
}

// MarshalJSON implements the json.Marshaller interface for type ProviderSpecificInput.
func (p ProviderSpecificInput) MarshalJSON() ([]byte, error) {
	objectMap := make(map[string]any, len(p.AdditionalProperties)+1)
	for k, v := range p.AdditionalProperties {
		objectMap[k] = v
	}
	objectMap["instanceType"] = p.InstanceType
	return json.Marshal(objectMap)
}

// UnmarshalJSON implements the json.Unmarshaller interface for type ProviderSpecificInput.
func (p *ProviderSpecificInput) UnmarshalJSON(data []byte) error {
	var rawMsg map[string]json.RawMessage
	if err := json.Unmarshal(data, &rawMsg); err != nil {
		return fmt.Errorf("unmarshalling type %T: %v", p, err)
	}
	for key, val := range rawMsg {
		if key == "instanceType" {
			if err := json.Unmarshal(val, &p.InstanceType); err != nil {
				return fmt.Errorf("unmarshalling field InstanceType of type %T: %v", p, err)
			}
			continue
		}
		var v any
		d := json.NewDecoder(bytes.NewReader(val))
		d.UseNumber()
		if err := d.Decode(&v); err != nil {
			return fmt.Errorf("unmarshalling field %s of type %T: %v", key, p, err)
		}
		if p.AdditionalProperties == nil {
			p.AdditionalProperties = map[string]any{}
		}
		p.AdditionalProperties[key] = v
	}
	return nil
}
