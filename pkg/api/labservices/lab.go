package labservices

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"github.com/Azure/azps-go/pkg/util/jsonmodel"
)

// Lab is a lab resource.  Only the settings managed by this module are
// modelled; unknown members of the wire object are ignored.
type Lab struct {
	ID         *string
	Name       *string
	Type       *string
	Location   *string
	Tags       map[string]string
	Properties *LabProperties
}

type LabProperties struct {
	AutoShutdownProfile *AutoShutdownProfile
	Title               *string
	Description         *string

	ProvisioningState *ProvisioningState
	State             *LabState
}

var labCodec = jsonmodel.NewCodec(decodeLab, encodeLab)

var labPropertiesCodec = jsonmodel.NewCodec(decodeLabProperties, encodeLabProperties)

func LabCodec(hooks jsonmodel.Hooks[Lab]) *jsonmodel.Codec[Lab] {
	return labCodec.WithHooks(hooks)
}

func LabPropertiesCodec(hooks jsonmodel.Hooks[LabProperties]) *jsonmodel.Codec[LabProperties] {
	return labPropertiesCodec.WithHooks(hooks)
}

func LabFromJSON(node []byte) *Lab {
	return labCodec.FromJSON(node)
}

func decodeLab(o jsonmodel.Object, l *Lab) {
	if v, ok := o.String("id"); ok {
		l.ID = &v
	}
	if v, ok := o.String("name"); ok {
		l.Name = &v
	}
	if v, ok := o.String("type"); ok {
		l.Type = &v
	}
	if v, ok := o.String("location"); ok {
		l.Location = &v
	}
	if v, ok := o.StringMap("tags"); ok {
		l.Tags = v
	}
	if v, ok := o.Object("properties"); ok {
		l.Properties = labPropertiesCodec.FromObject(v)
	}
}

func encodeLab(l *Lab, o jsonmodel.Object, mode jsonmodel.Mode) {
	if mode.Has(jsonmodel.IncludeRead) {
		o.SetString("id", l.ID)
		o.SetString("name", l.Name)
		o.SetString("type", l.Type)
	}
	if mode.Has(jsonmodel.IncludeCreate) || mode.Has(jsonmodel.IncludeRead) {
		o.SetString("location", l.Location)
	}
	o.SetStringMap("tags", l.Tags)
	if l.Properties != nil {
		o.SetObject("properties", l.Properties.ToJSON(nil, mode))
	}
}

func decodeLabProperties(o jsonmodel.Object, p *LabProperties) {
	if v, ok := o.Object("autoShutdownProfile"); ok {
		p.AutoShutdownProfile = autoShutdownProfileCodec.FromObject(v)
	}
	if v, ok := o.String("title"); ok {
		p.Title = &v
	}
	if v, ok := o.String("description"); ok {
		p.Description = &v
	}
	if v := jsonmodel.EnumPtr(o, "provisioningState", PossibleProvisioningStateValues()); v != nil {
		p.ProvisioningState = v
	}
	if v := jsonmodel.EnumPtr(o, "state", PossibleLabStateValues()); v != nil {
		p.State = v
	}
}

func encodeLabProperties(p *LabProperties, o jsonmodel.Object, mode jsonmodel.Mode) {
	if p.AutoShutdownProfile != nil {
		o.SetObject("autoShutdownProfile", p.AutoShutdownProfile.ToJSON(nil, mode))
	}
	o.SetString("title", p.Title)
	o.SetString("description", p.Description)
	if mode.Has(jsonmodel.IncludeRead) {
		jsonmodel.SetEnum(o, "provisioningState", p.ProvisioningState)
		jsonmodel.SetEnum(o, "state", p.State)
	}
}

func (l *Lab) ToJSON(container jsonmodel.Object, mode jsonmodel.Mode) jsonmodel.Object {
	return labCodec.ToJSON(l, container, mode)
}

func (l Lab) MarshalJSON() ([]byte, error) {
	return jsonmodel.Marshal(&l, jsonmodel.IncludeAll)
}

func (l *Lab) UnmarshalJSON(b []byte) error {
	return labCodec.Unmarshal(b, l)
}

func (p *LabProperties) ToJSON(container jsonmodel.Object, mode jsonmodel.Mode) jsonmodel.Object {
	return labPropertiesCodec.ToJSON(p, container, mode)
}

// GetAutoShutdownProfile returns the auto-shutdown settings of l, or nil.
func (l *Lab) GetAutoShutdownProfile() *AutoShutdownProfile {
	if l.Properties == nil {
		return nil
	}
	return l.Properties.AutoShutdownProfile
}

// LabUpdate is the body of a PATCH on a lab.
type LabUpdate struct {
	Tags       map[string]string
	Properties *LabUpdateProperties
}

type LabUpdateProperties struct {
	AutoShutdownProfile *AutoShutdownProfile
	Title               *string
	Description         *string
}

var labUpdateCodec = jsonmodel.NewCodec(decodeLabUpdate, encodeLabUpdate)

var labUpdatePropertiesCodec = jsonmodel.NewCodec(decodeLabUpdateProperties, encodeLabUpdateProperties)

func LabUpdateCodec(hooks jsonmodel.Hooks[LabUpdate]) *jsonmodel.Codec[LabUpdate] {
	return labUpdateCodec.WithHooks(hooks)
}

func LabUpdatePropertiesCodec(hooks jsonmodel.Hooks[LabUpdateProperties]) *jsonmodel.Codec[LabUpdateProperties] {
	return labUpdatePropertiesCodec.WithHooks(hooks)
}

func LabUpdateFromJSON(node []byte) *LabUpdate {
	return labUpdateCodec.FromJSON(node)
}

func decodeLabUpdate(o jsonmodel.Object, l *LabUpdate) {
	if v, ok := o.StringMap("tags"); ok {
		l.Tags = v
	}
	if v, ok := o.Object("properties"); ok {
		l.Properties = labUpdatePropertiesCodec.FromObject(v)
	}
}

func encodeLabUpdate(l *LabUpdate, o jsonmodel.Object, mode jsonmodel.Mode) {
	o.SetStringMap("tags", l.Tags)
	if l.Properties != nil {
		o.SetObject("properties", l.Properties.ToJSON(nil, mode))
	}
}

func decodeLabUpdateProperties(o jsonmodel.Object, p *LabUpdateProperties) {
	if v, ok := o.Object("autoShutdownProfile"); ok {
		p.AutoShutdownProfile = autoShutdownProfileCodec.FromObject(v)
	}
	if v, ok := o.String("title"); ok {
		p.Title = &v
	}
	if v, ok := o.String("description"); ok {
		p.Description = &v
	}
}

func encodeLabUpdateProperties(p *LabUpdateProperties, o jsonmodel.Object, mode jsonmodel.Mode) {
	if p.AutoShutdownProfile != nil {
		o.SetObject("autoShutdownProfile", p.AutoShutdownProfile.ToJSON(nil, mode))
	}
	o.SetString("title", p.Title)
	o.SetString("description", p.Description)
}

// SetAutoShutdownProfile sets the profile, creating Properties on first
// write.
func (l *LabUpdate) SetAutoShutdownProfile(p *AutoShutdownProfile) {
	if l.Properties == nil {
		l.Properties = &LabUpdateProperties{}
	}
	l.Properties.AutoShutdownProfile = p
}

func (l *LabUpdate) ToJSON(container jsonmodel.Object, mode jsonmodel.Mode) jsonmodel.Object {
	return labUpdateCodec.ToJSON(l, container, mode)
}

func (l LabUpdate) MarshalJSON() ([]byte, error) {
	return jsonmodel.Marshal(&l, jsonmodel.IncludeAll)
}

func (l *LabUpdate) UnmarshalJSON(b []byte) error {
	return labUpdateCodec.Unmarshal(b, l)
}

func (p *LabUpdateProperties) ToJSON(container jsonmodel.Object, mode jsonmodel.Mode) jsonmodel.Object {
	return labUpdatePropertiesCodec.ToJSON(p, container, mode)
}
