package jsonmodel

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

// Mode selects which groups of fields a model writes when it is encoded.
// Fields the service populates are only written with IncludeRead; fields
// which may only be sent on create are only written with IncludeCreate.
type Mode uint8

const None Mode = 0

const (
	IncludeHeaders Mode = 1 << iota
	IncludeRead
	IncludeCreate
	IncludeUpdate

	IncludeCreateOrUpdate = IncludeCreate | IncludeUpdate
	IncludeAll            = IncludeHeaders | IncludeRead | IncludeCreate | IncludeUpdate
)

// Has reports whether all the flags in f are set in m.
func (m Mode) Has(f Mode) bool {
	return m&f == f
}
