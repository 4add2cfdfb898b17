package uuid

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"github.com/google/uuid"
)

// Generator generates UUID strings.
type Generator interface {
	Generate() string
}

type defaultGenerator struct{}

func (defaultGenerator) Generate() string {
	return uuid.NewString()
}

var DefaultGenerator Generator = defaultGenerator{}

// IsValid reports whether u parses as a UUID.
func IsValid(u string) bool {
	_, err := uuid.Parse(u)
	return err == nil
}
