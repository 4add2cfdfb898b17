package armlabservices

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"

	"github.com/Azure/azps-go/pkg/api/labservices"
	"github.com/Azure/azps-go/pkg/sdk/armlabservices"
)

// UsersClientAddons contains addons for UsersClient
type UsersClientAddons interface {
	UpdateAndWait(ctx context.Context, resourceGroupName string, labName string, userName string, body labservices.UserUpdate, options *armlabservices.UsersClientBeginUpdateOptions) (*labservices.User, error)
	InviteAndWait(ctx context.Context, resourceGroupName string, labName string, userName string, body labservices.InviteBody, options *armlabservices.UsersClientBeginInviteOptions) error
	List(ctx context.Context, resourceGroupName string, labName string, options *armlabservices.UsersClientListByLabOptions) ([]*labservices.User, error)
}

func (c *usersClient) UpdateAndWait(ctx context.Context, resourceGroupName string, labName string, userName string, body labservices.UserUpdate, options *armlabservices.UsersClientBeginUpdateOptions) (*labservices.User, error) {
	poller, err := c.UsersClient.BeginUpdate(ctx, resourceGroupName, labName, userName, body, options)
	if err != nil {
		return nil, err
	}
	resp, err := poller.PollUntilDone(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &resp.User, nil
}

func (c *usersClient) InviteAndWait(ctx context.Context, resourceGroupName string, labName string, userName string, body labservices.InviteBody, options *armlabservices.UsersClientBeginInviteOptions) error {
	poller, err := c.UsersClient.BeginInvite(ctx, resourceGroupName, labName, userName, body, options)
	if err != nil {
		return err
	}
	_, err = poller.PollUntilDone(ctx, nil)
	return err
}

func (c *usersClient) List(ctx context.Context, resourceGroupName string, labName string, options *armlabservices.UsersClientListByLabOptions) (result []*labservices.User, err error) {
	pager := c.UsersClient.NewListByLabPager(resourceGroupName, labName, options)

	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		result = append(result, page.Value...)
	}
	return result, nil
}
