package jsonmodel

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"encoding/json"
)

// Hooks customise the conversion of a model type.  Every hook is optional.
// Hooks apply to the codec's own type only: nested models are converted by
// their package codec, so a hook for a nested type is run by decoding that
// member with its own hooked codec.
type Hooks[T any] struct {
	// BeforeFromJSON runs before any field is decoded.  Returning true skips
	// field decoding and AfterFromJSON.
	BeforeFromJSON func(json Object, m *T) (returnNow bool)

	// AfterFromJSON runs once all fields have been decoded.
	AfterFromJSON func(json Object, m *T)

	// BeforeToJSON runs before any field is encoded.  Returning true skips
	// field encoding and AfterToJSON; the container is returned as is.
	BeforeToJSON func(m *T, container Object) (returnNow bool)

	// AfterToJSON runs once all fields have been encoded.  The returned
	// object, if not nil, replaces the container.
	AfterToJSON func(m *T, container Object) Object
}

// Model is implemented by every type with a Codec.
type Model interface {
	ToJSON(container Object, mode Mode) Object
}

// Codec converts a model type to and from its wire representation.  It is
// immutable once built; WithHooks returns a copy.
type Codec[T any] struct {
	decode func(json Object, m *T)
	encode func(m *T, container Object, mode Mode)
	hooks  Hooks[T]
}

// NewCodec returns a Codec built from per-field decode and encode functions.
// encode is expected to write only the fields that are present.
func NewCodec[T any](decode func(Object, *T), encode func(*T, Object, Mode)) *Codec[T] {
	return &Codec[T]{
		decode: decode,
		encode: encode,
	}
}

// WithHooks returns a copy of c which runs hooks.
func (c *Codec[T]) WithHooks(hooks Hooks[T]) *Codec[T] {
	return &Codec[T]{
		decode: c.decode,
		encode: c.encode,
		hooks:  hooks,
	}
}

// FromJSON returns a new instance decoded from node, or nil if node is not a
// JSON object.
func (c *Codec[T]) FromJSON(node []byte) *T {
	o, ok := ParseObject(node)
	if !ok {
		return nil
	}
	return c.FromObject(o)
}

// FromObject returns a new instance decoded from o, or nil if o is nil.
func (c *Codec[T]) FromObject(o Object) *T {
	if o == nil {
		return nil
	}

	m := new(T)
	c.Decode(o, m)
	return m
}

// Decode overwrites the fields of m which are present in o.  Fields absent
// from o keep their current value.
func (c *Codec[T]) Decode(o Object, m *T) {
	if c.hooks.BeforeFromJSON != nil && c.hooks.BeforeFromJSON(o, m) {
		return
	}

	c.decode(o, m)

	if c.hooks.AfterFromJSON != nil {
		c.hooks.AfterFromJSON(o, m)
	}
}

// ToJSON writes m into container, allocating it if nil, and returns it.
func (c *Codec[T]) ToJSON(m *T, container Object, mode Mode) Object {
	if container == nil {
		container = Object{}
	}

	if c.hooks.BeforeToJSON != nil && c.hooks.BeforeToJSON(m, container) {
		return container
	}

	c.encode(m, container, mode)

	if c.hooks.AfterToJSON != nil {
		if replaced := c.hooks.AfterToJSON(m, container); replaced != nil {
			container = replaced
		}
	}

	return container
}

// Unmarshal decodes b into m.  Input which is not a JSON object leaves m
// unchanged and is not an error.
func (c *Codec[T]) Unmarshal(b []byte, m *T) error {
	o, ok := ParseObject(b)
	if !ok {
		return nil
	}

	c.Decode(o, m)
	return nil
}

// Marshal encodes m using mode.
func Marshal(m Model, mode Mode) ([]byte, error) {
	return json.Marshal(m.ToJSON(nil, mode))
}

// FromArray decodes the array member name.  Elements which are not JSON
// objects are skipped.
func (c *Codec[T]) FromArray(o Object, name string) ([]*T, bool) {
	a, ok := o.Array(name)
	if !ok {
		return nil, false
	}

	items := make([]*T, 0, len(a))
	for _, raw := range a {
		if m := c.FromJSON(raw); m != nil {
			items = append(items, m)
		}
	}
	return items, true
}

// ToArray encodes every non-nil element of items for SetArray.
func ToArray[T any, PT interface {
	*T
	Model
}](items []PT, mode Mode) []Object {
	if len(items) == 0 {
		return nil
	}

	a := make([]Object, 0, len(items))
	for _, m := range items {
		if m != nil {
			a = append(a, m.ToJSON(nil, mode))
		}
	}
	return a
}
