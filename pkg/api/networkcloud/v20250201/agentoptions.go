package v20250201

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"github.com/Azure/azps-go/pkg/util/jsonmodel"
)

// AgentOptions are the hugepage settings applied to every node of an agent
// pool.
type AgentOptions struct {
	HugepagesCount *int64
	HugepagesSize  *HugepagesSize
}

var agentOptionsCodec = jsonmodel.NewCodec(decodeAgentOptions, encodeAgentOptions)

func AgentOptionsCodec(hooks jsonmodel.Hooks[AgentOptions]) *jsonmodel.Codec[AgentOptions] {
	return agentOptionsCodec.WithHooks(hooks)
}

func AgentOptionsFromJSON(node []byte) *AgentOptions {
	return agentOptionsCodec.FromJSON(node)
}

func decodeAgentOptions(o jsonmodel.Object, a *AgentOptions) {
	if v, ok := o.Int64("hugepagesCount"); ok {
		a.HugepagesCount = &v
	}
	if v := jsonmodel.EnumPtr(o, "hugepagesSize", PossibleHugepagesSizeValues()); v != nil {
		a.HugepagesSize = v
	}
}

func encodeAgentOptions(a *AgentOptions, o jsonmodel.Object, mode jsonmodel.Mode) {
	o.SetInt64("hugepagesCount", a.HugepagesCount)
	jsonmodel.SetEnum(o, "hugepagesSize", a.HugepagesSize)
}

func (a *AgentOptions) ToJSON(container jsonmodel.Object, mode jsonmodel.Mode) jsonmodel.Object {
	return agentOptionsCodec.ToJSON(a, container, mode)
}

func (a AgentOptions) MarshalJSON() ([]byte, error) {
	return jsonmodel.Marshal(&a, jsonmodel.IncludeAll)
}

func (a *AgentOptions) UnmarshalJSON(b []byte) error {
	return agentOptionsCodec.Unmarshal(b, a)
}

type KubernetesLabel struct {
	Key   *string
	Value *string
}

var kubernetesLabelCodec = jsonmodel.NewCodec(
	func(o jsonmodel.Object, l *KubernetesLabel) {
		if v, ok := o.String("key"); ok {
			l.Key = &v
		}
		if v, ok := o.String("value"); ok {
			l.Value = &v
		}
	},
	func(l *KubernetesLabel, o jsonmodel.Object, mode jsonmodel.Mode) {
		o.SetString("key", l.Key)
		o.SetString("value", l.Value)
	},
)

func (l *KubernetesLabel) ToJSON(container jsonmodel.Object, mode jsonmodel.Mode) jsonmodel.Object {
	return kubernetesLabelCodec.ToJSON(l, container, mode)
}

func (l KubernetesLabel) MarshalJSON() ([]byte, error) {
	return jsonmodel.Marshal(&l, jsonmodel.IncludeAll)
}

func (l *KubernetesLabel) UnmarshalJSON(b []byte) error {
	return kubernetesLabelCodec.Unmarshal(b, l)
}

// AgentPoolUpgradeSettings controls rolling upgrades of an agent pool.
type AgentPoolUpgradeSettings struct {
	// MaxSurge is a node count ("1") or a percentage of the pool ("33%").
	MaxSurge *string
}

var agentPoolUpgradeSettingsCodec = jsonmodel.NewCodec(
	func(o jsonmodel.Object, s *AgentPoolUpgradeSettings) {
		if v, ok := o.String("maxSurge"); ok {
			s.MaxSurge = &v
		}
	},
	func(s *AgentPoolUpgradeSettings, o jsonmodel.Object, mode jsonmodel.Mode) {
		o.SetString("maxSurge", s.MaxSurge)
	},
)

func (s *AgentPoolUpgradeSettings) ToJSON(container jsonmodel.Object, mode jsonmodel.Mode) jsonmodel.Object {
	return agentPoolUpgradeSettingsCodec.ToJSON(s, container, mode)
}

func (s AgentPoolUpgradeSettings) MarshalJSON() ([]byte, error) {
	return jsonmodel.Marshal(&s, jsonmodel.IncludeAll)
}

func (s *AgentPoolUpgradeSettings) UnmarshalJSON(b []byte) error {
	return agentPoolUpgradeSettingsCodec.Unmarshal(b, s)
}

// ExtendedLocation is the custom location an agent pool is deployed to.
type ExtendedLocation struct {
	Name *string
	Type *string
}

var extendedLocationCodec = jsonmodel.NewCodec(
	func(o jsonmodel.Object, l *ExtendedLocation) {
		if v, ok := o.String("name"); ok {
			l.Name = &v
		}
		if v, ok := o.String("type"); ok {
			l.Type = &v
		}
	},
	func(l *ExtendedLocation, o jsonmodel.Object, mode jsonmodel.Mode) {
		o.SetString("name", l.Name)
		o.SetString("type", l.Type)
	},
)

func (l *ExtendedLocation) ToJSON(container jsonmodel.Object, mode jsonmodel.Mode) jsonmodel.Object {
	return extendedLocationCodec.ToJSON(l, container, mode)
}

func (l ExtendedLocation) MarshalJSON() ([]byte, error) {
	return jsonmodel.Marshal(&l, jsonmodel.IncludeAll)
}

func (l *ExtendedLocation) UnmarshalJSON(b []byte) error {
	return extendedLocationCodec.Unmarshal(b, l)
}
