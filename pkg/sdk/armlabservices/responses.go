package armlabservices

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"github.com/Azure/azps-go/pkg/api/labservices"
)

// LabsClientGetResponse contains the response from method LabsClient.Get.
type LabsClientGetResponse struct {
	labservices.Lab
}

// LabsClientUpdateResponse contains the response from method LabsClient.BeginUpdate.
type LabsClientUpdateResponse struct {
	labservices.Lab
}

// UsersClientGetResponse contains the response from method UsersClient.Get.
type UsersClientGetResponse struct {
	labservices.User
}

// UsersClientCreateOrUpdateResponse contains the response from method UsersClient.BeginCreateOrUpdate.
type UsersClientCreateOrUpdateResponse struct {
	labservices.User
}

// UsersClientUpdateResponse contains the response from method UsersClient.BeginUpdate.
type UsersClientUpdateResponse struct {
	labservices.User
}

// UsersClientDeleteResponse contains the response from method UsersClient.BeginDelete.
type UsersClientDeleteResponse struct {
	// placeholder for future response values
}

// UsersClientInviteResponse contains the response from method UsersClient.BeginInvite.
type UsersClientInviteResponse struct {
	// placeholder for future response values
}

// UsersClientListByLabResponse contains the response from method UsersClient.NewListByLabPager.
type UsersClientListByLabResponse struct {
	labservices.PagedUsers
}
