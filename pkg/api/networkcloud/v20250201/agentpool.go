package v20250201

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"github.com/Azure/azps-go/pkg/util/jsonmodel"
)

// AgentPool is a pool of nodes of a Network Cloud Kubernetes cluster.
type AgentPool struct {
	ID               *string
	Name             *string
	Type             *string
	Location         *string
	Tags             map[string]string
	ExtendedLocation *ExtendedLocation
	Properties       *AgentPoolProperties
}

type AgentPoolProperties struct {
	Count             *int64
	Mode              *AgentPoolMode
	VMSKUName         *string
	AgentOptions      *AgentOptions
	AvailabilityZones []string
	Labels            []*KubernetesLabel
	UpgradeSettings   *AgentPoolUpgradeSettings

	DetailedStatus        *AgentPoolDetailedStatus
	DetailedStatusMessage *string
	KubernetesVersion     *string
	ProvisioningState     *AgentPoolProvisioningState
}

var agentPoolCodec = jsonmodel.NewCodec(decodeAgentPool, encodeAgentPool)

var agentPoolPropertiesCodec = jsonmodel.NewCodec(decodeAgentPoolProperties, encodeAgentPoolProperties)

func AgentPoolCodec(hooks jsonmodel.Hooks[AgentPool]) *jsonmodel.Codec[AgentPool] {
	return agentPoolCodec.WithHooks(hooks)
}

func AgentPoolFromJSON(node []byte) *AgentPool {
	return agentPoolCodec.FromJSON(node)
}

func decodeAgentPool(o jsonmodel.Object, a *AgentPool) {
	if v, ok := o.String("id"); ok {
		a.ID = &v
	}
	if v, ok := o.String("name"); ok {
		a.Name = &v
	}
	if v, ok := o.String("type"); ok {
		a.Type = &v
	}
	if v, ok := o.String("location"); ok {
		a.Location = &v
	}
	if v, ok := o.StringMap("tags"); ok {
		a.Tags = v
	}
	if v, ok := o.Object("extendedLocation"); ok {
		a.ExtendedLocation = extendedLocationCodec.FromObject(v)
	}
	if v, ok := o.Object("properties"); ok {
		a.Properties = agentPoolPropertiesCodec.FromObject(v)
	}
}

func encodeAgentPool(a *AgentPool, o jsonmodel.Object, mode jsonmodel.Mode) {
	if mode.Has(jsonmodel.IncludeRead) {
		o.SetString("id", a.ID)
		o.SetString("name", a.Name)
		o.SetString("type", a.Type)
	}
	if mode.Has(jsonmodel.IncludeCreate) || mode.Has(jsonmodel.IncludeRead) {
		o.SetString("location", a.Location)
		if a.ExtendedLocation != nil {
			o.SetObject("extendedLocation", a.ExtendedLocation.ToJSON(nil, mode))
		}
	}
	o.SetStringMap("tags", a.Tags)
	if a.Properties != nil {
		o.SetObject("properties", a.Properties.ToJSON(nil, mode))
	}
}

func decodeAgentPoolProperties(o jsonmodel.Object, p *AgentPoolProperties) {
	if v, ok := o.Int64("count"); ok {
		p.Count = &v
	}
	if v := jsonmodel.EnumPtr(o, "mode", PossibleAgentPoolModeValues()); v != nil {
		p.Mode = v
	}
	if v, ok := o.String("vmSkuName"); ok {
		p.VMSKUName = &v
	}
	if v, ok := o.Object("agentOptions"); ok {
		p.AgentOptions = agentOptionsCodec.FromObject(v)
	}
	if v, ok := o.StringSlice("availabilityZones"); ok {
		p.AvailabilityZones = v
	}
	if v, ok := kubernetesLabelCodec.FromArray(o, "labels"); ok {
		p.Labels = v
	}
	if v, ok := o.Object("upgradeSettings"); ok {
		p.UpgradeSettings = agentPoolUpgradeSettingsCodec.FromObject(v)
	}
	if v := jsonmodel.EnumPtr(o, "detailedStatus", PossibleAgentPoolDetailedStatusValues()); v != nil {
		p.DetailedStatus = v
	}
	if v, ok := o.String("detailedStatusMessage"); ok {
		p.DetailedStatusMessage = &v
	}
	if v, ok := o.String("kubernetesVersion"); ok {
		p.KubernetesVersion = &v
	}
	if v := jsonmodel.EnumPtr(o, "provisioningState", PossibleAgentPoolProvisioningStateValues()); v != nil {
		p.ProvisioningState = v
	}
}

func encodeAgentPoolProperties(p *AgentPoolProperties, o jsonmodel.Object, mode jsonmodel.Mode) {
	o.SetInt64("count", p.Count)
	if mode.Has(jsonmodel.IncludeCreate) || mode.Has(jsonmodel.IncludeRead) {
		jsonmodel.SetEnum(o, "mode", p.Mode)
		o.SetString("vmSkuName", p.VMSKUName)
		if p.AgentOptions != nil {
			o.SetObject("agentOptions", p.AgentOptions.ToJSON(nil, mode))
		}
		o.SetStringSlice("availabilityZones", p.AvailabilityZones)
		o.SetArray("labels", jsonmodel.ToArray(p.Labels, mode))
	}
	if p.UpgradeSettings != nil {
		o.SetObject("upgradeSettings", p.UpgradeSettings.ToJSON(nil, mode))
	}
	if mode.Has(jsonmodel.IncludeRead) {
		jsonmodel.SetEnum(o, "detailedStatus", p.DetailedStatus)
		o.SetString("detailedStatusMessage", p.DetailedStatusMessage)
		o.SetString("kubernetesVersion", p.KubernetesVersion)
		jsonmodel.SetEnum(o, "provisioningState", p.ProvisioningState)
	}
}

func (a *AgentPool) ToJSON(container jsonmodel.Object, mode jsonmodel.Mode) jsonmodel.Object {
	return agentPoolCodec.ToJSON(a, container, mode)
}

func (a AgentPool) MarshalJSON() ([]byte, error) {
	return jsonmodel.Marshal(&a, jsonmodel.IncludeAll)
}

func (a *AgentPool) UnmarshalJSON(b []byte) error {
	return agentPoolCodec.Unmarshal(b, a)
}

func (p *AgentPoolProperties) ToJSON(container jsonmodel.Object, mode jsonmodel.Mode) jsonmodel.Object {
	return agentPoolPropertiesCodec.ToJSON(p, container, mode)
}

// GetAgentOptions returns the hugepage settings of a, or nil.
func (a *AgentPool) GetAgentOptions() *AgentOptions {
	if a.Properties == nil {
		return nil
	}
	return a.Properties.AgentOptions
}

// SetAgentOptions sets the hugepage settings, creating Properties on first
// write.
func (a *AgentPool) SetAgentOptions(o *AgentOptions) {
	if a.Properties == nil {
		a.Properties = &AgentPoolProperties{}
	}
	a.Properties.AgentOptions = o
}

// AgentPoolPatchParameters is the body of a PATCH on an agent pool.
type AgentPoolPatchParameters struct {
	Tags       map[string]string
	Properties *AgentPoolPatchProperties
}

type AgentPoolPatchProperties struct {
	Count           *int64
	UpgradeSettings *AgentPoolUpgradeSettings
}

var agentPoolPatchParametersCodec = jsonmodel.NewCodec(decodeAgentPoolPatchParameters, encodeAgentPoolPatchParameters)

var agentPoolPatchPropertiesCodec = jsonmodel.NewCodec(
	func(o jsonmodel.Object, p *AgentPoolPatchProperties) {
		if v, ok := o.Int64("count"); ok {
			p.Count = &v
		}
		if v, ok := o.Object("upgradeSettings"); ok {
			p.UpgradeSettings = agentPoolUpgradeSettingsCodec.FromObject(v)
		}
	},
	func(p *AgentPoolPatchProperties, o jsonmodel.Object, mode jsonmodel.Mode) {
		o.SetInt64("count", p.Count)
		if p.UpgradeSettings != nil {
			o.SetObject("upgradeSettings", p.UpgradeSettings.ToJSON(nil, mode))
		}
	},
)

func AgentPoolPatchParametersCodec(hooks jsonmodel.Hooks[AgentPoolPatchParameters]) *jsonmodel.Codec[AgentPoolPatchParameters] {
	return agentPoolPatchParametersCodec.WithHooks(hooks)
}

func decodeAgentPoolPatchParameters(o jsonmodel.Object, p *AgentPoolPatchParameters) {
	if v, ok := o.StringMap("tags"); ok {
		p.Tags = v
	}
	if v, ok := o.Object("properties"); ok {
		p.Properties = agentPoolPatchPropertiesCodec.FromObject(v)
	}
}

func encodeAgentPoolPatchParameters(p *AgentPoolPatchParameters, o jsonmodel.Object, mode jsonmodel.Mode) {
	o.SetStringMap("tags", p.Tags)
	if p.Properties != nil {
		o.SetObject("properties", p.Properties.ToJSON(nil, mode))
	}
}

// SetCount sets the node count, creating Properties on first write.
func (p *AgentPoolPatchParameters) SetCount(count *int64) {
	if p.Properties == nil {
		p.Properties = &AgentPoolPatchProperties{}
	}
	p.Properties.Count = count
}

func (p *AgentPoolPatchParameters) ToJSON(container jsonmodel.Object, mode jsonmodel.Mode) jsonmodel.Object {
	return agentPoolPatchParametersCodec.ToJSON(p, container, mode)
}

func (p AgentPoolPatchParameters) MarshalJSON() ([]byte, error) {
	return jsonmodel.Marshal(&p, jsonmodel.IncludeAll)
}

func (p *AgentPoolPatchParameters) UnmarshalJSON(b []byte) error {
	return agentPoolPatchParametersCodec.Unmarshal(b, p)
}

func (p *AgentPoolPatchProperties) ToJSON(container jsonmodel.Object, mode jsonmodel.Mode) jsonmodel.Object {
	return agentPoolPatchPropertiesCodec.ToJSON(p, container, mode)
}

// AgentPoolList is one page of an agent pool listing.
type AgentPoolList struct {
	Value    []*AgentPool
	NextLink *string
}

var agentPoolListCodec = jsonmodel.NewCodec(
	func(o jsonmodel.Object, l *AgentPoolList) {
		if v, ok := agentPoolCodec.FromArray(o, "value"); ok {
			l.Value = v
		}
		if v, ok := o.String("nextLink"); ok {
			l.NextLink = &v
		}
	},
	func(l *AgentPoolList, o jsonmodel.Object, mode jsonmodel.Mode) {
		o.SetArray("value", jsonmodel.ToArray(l.Value, mode))
		o.SetString("nextLink", l.NextLink)
	},
)

func AgentPoolListFromJSON(node []byte) *AgentPoolList {
	return agentPoolListCodec.FromJSON(node)
}

func (l *AgentPoolList) ToJSON(container jsonmodel.Object, mode jsonmodel.Mode) jsonmodel.Object {
	return agentPoolListCodec.ToJSON(l, container, mode)
}

func (l AgentPoolList) MarshalJSON() ([]byte, error) {
	return jsonmodel.Marshal(&l, jsonmodel.IncludeAll)
}

func (l *AgentPoolList) UnmarshalJSON(b []byte) error {
	return agentPoolListCodec.Unmarshal(b, l)
}
