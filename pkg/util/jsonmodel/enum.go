package jsonmodel

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"strings"
)

// ParseEnum matches s case-insensitively against allowed and returns the
// canonical symbol.
func ParseEnum[E ~string](s string, allowed []E) (E, bool) {
	for _, e := range allowed {
		if strings.EqualFold(string(e), s) {
			return e, true
		}
	}
	return "", false
}

// EnumPtr is ParseEnum for an optional member: it returns nil when the
// member is absent or does not match a known symbol.
func EnumPtr[E ~string](o Object, name string, allowed []E) *E {
	s, ok := o.String(name)
	if !ok {
		return nil
	}

	e, ok := ParseEnum(s, allowed)
	if !ok {
		return nil
	}
	return &e
}

// SetEnum writes e under name if e is not nil.
func SetEnum[E ~string](o Object, name string, e *E) {
	if e != nil {
		s := string(*e)
		o.SetString(name, &s)
	}
}
