package network

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"encoding/json"
	"testing"

	testjson "github.com/Azure/azps-go/test/util/json"
)

func TestModelsMarshalPowerShellNames(t *testing.T) {
	b, err := json.Marshal(&PSPacketCaptureResult{
		Name: "capture",
		ID:   "id",
		StorageLocation: &PSStorageLocation{
			StorageID: "storage",
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	testjson.AssertJsonMatches(t, []byte(`{"Name":"capture","Id":"id","StorageLocation":{"StorageId":"storage"}}`), b)
}
