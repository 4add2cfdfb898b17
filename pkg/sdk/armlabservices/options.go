package armlabservices

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

// LabsClientGetOptions contains the optional parameters for the LabsClient.Get method.
type LabsClientGetOptions struct {
	// placeholder for future optional parameters
}

// LabsClientBeginUpdateOptions contains the optional parameters for the LabsClient.BeginUpdate method.
type LabsClientBeginUpdateOptions struct {
	// Resumes the LRO from the provided token.
	ResumeToken string
}

// UsersClientGetOptions contains the optional parameters for the UsersClient.Get method.
type UsersClientGetOptions struct {
	// placeholder for future optional parameters
}

// UsersClientBeginCreateOrUpdateOptions contains the optional parameters for the UsersClient.BeginCreateOrUpdate method.
type UsersClientBeginCreateOrUpdateOptions struct {
	// Resumes the LRO from the provided token.
	ResumeToken string
}

// UsersClientBeginUpdateOptions contains the optional parameters for the UsersClient.BeginUpdate method.
type UsersClientBeginUpdateOptions struct {
	// Resumes the LRO from the provided token.
	ResumeToken string
}

// UsersClientBeginDeleteOptions contains the optional parameters for the UsersClient.BeginDelete method.
type UsersClientBeginDeleteOptions struct {
	// Resumes the LRO from the provided token.
	ResumeToken string
}

// UsersClientBeginInviteOptions contains the optional parameters for the UsersClient.BeginInvite method.
type UsersClientBeginInviteOptions struct {
	// Resumes the LRO from the provided token.
	ResumeToken string
}

// UsersClientListByLabOptions contains the optional parameters for the UsersClient.NewListByLabPager method.
type UsersClientListByLabOptions struct {
	// The filter to apply to the operation.
	Filter *string
}
