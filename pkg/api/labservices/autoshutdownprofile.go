package labservices

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"time"

	"github.com/Azure/azps-go/pkg/util/jsonmodel"
)

// AutoShutdownProfile controls when the virtual machines of a lab are shut
// down automatically.
type AutoShutdownProfile struct {
	// ShutdownOnDisconnect shuts a virtual machine down once its user
	// disconnects.
	ShutdownOnDisconnect *EnableState

	// ShutdownWhenNotConnected shuts a virtual machine down when no user
	// connects to it after it starts.
	ShutdownWhenNotConnected *EnableState

	// ShutdownOnIdle selects how idleness is detected.
	ShutdownOnIdle *ShutdownOnIdleMode

	// DisconnectDelay is the wait after a disconnect before shutting down.
	DisconnectDelay *time.Duration

	// NoConnectDelay is the wait after start without a connection before
	// shutting down.
	NoConnectDelay *time.Duration

	// IdleDelay is the wait once a virtual machine is idle before shutting
	// down.
	IdleDelay *time.Duration
}

var autoShutdownProfileCodec = jsonmodel.NewCodec(decodeAutoShutdownProfile, encodeAutoShutdownProfile)

// AutoShutdownProfileCodec returns a codec for AutoShutdownProfile which
// runs hooks around the default conversion.
func AutoShutdownProfileCodec(hooks jsonmodel.Hooks[AutoShutdownProfile]) *jsonmodel.Codec[AutoShutdownProfile] {
	return autoShutdownProfileCodec.WithHooks(hooks)
}

// AutoShutdownProfileFromJSON decodes node, returning nil if it is not a
// JSON object.
func AutoShutdownProfileFromJSON(node []byte) *AutoShutdownProfile {
	return autoShutdownProfileCodec.FromJSON(node)
}

func decodeAutoShutdownProfile(o jsonmodel.Object, p *AutoShutdownProfile) {
	if v := jsonmodel.EnumPtr(o, "shutdownOnDisconnect", PossibleEnableStateValues()); v != nil {
		p.ShutdownOnDisconnect = v
	}
	if v := jsonmodel.EnumPtr(o, "shutdownWhenNotConnected", PossibleEnableStateValues()); v != nil {
		p.ShutdownWhenNotConnected = v
	}
	if v := jsonmodel.EnumPtr(o, "shutdownOnIdle", PossibleShutdownOnIdleModeValues()); v != nil {
		p.ShutdownOnIdle = v
	}
	if v, ok := o.Duration("disconnectDelay"); ok {
		p.DisconnectDelay = &v
	}
	if v, ok := o.Duration("noConnectDelay"); ok {
		p.NoConnectDelay = &v
	}
	if v, ok := o.Duration("idleDelay"); ok {
		p.IdleDelay = &v
	}
}

func encodeAutoShutdownProfile(p *AutoShutdownProfile, o jsonmodel.Object, mode jsonmodel.Mode) {
	jsonmodel.SetEnum(o, "shutdownOnDisconnect", p.ShutdownOnDisconnect)
	jsonmodel.SetEnum(o, "shutdownWhenNotConnected", p.ShutdownWhenNotConnected)
	jsonmodel.SetEnum(o, "shutdownOnIdle", p.ShutdownOnIdle)
	o.SetDuration("disconnectDelay", p.DisconnectDelay)
	o.SetDuration("noConnectDelay", p.NoConnectDelay)
	o.SetDuration("idleDelay", p.IdleDelay)
}

func (p *AutoShutdownProfile) ToJSON(container jsonmodel.Object, mode jsonmodel.Mode) jsonmodel.Object {
	return autoShutdownProfileCodec.ToJSON(p, container, mode)
}

func (p AutoShutdownProfile) MarshalJSON() ([]byte, error) {
	return jsonmodel.Marshal(&p, jsonmodel.IncludeAll)
}

func (p *AutoShutdownProfile) UnmarshalJSON(b []byte) error {
	return autoShutdownProfileCodec.Unmarshal(b, p)
}
