package labservices

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/sirupsen/logrus"

	"github.com/Azure/azps-go/pkg/api/labservices"
	"github.com/Azure/azps-go/pkg/util/azureclient"
	"github.com/Azure/azps-go/pkg/util/azureclient/azuresdk/armlabservices"
)

// Client manages the users and shutdown settings of labs.
type Client interface {
	GetUser(ctx context.Context, resourceGroupName, labName, userName string) (*labservices.User, error)
	ListUsers(ctx context.Context, resourceGroupName, labName string) ([]*labservices.User, error)
	UpdateUser(ctx context.Context, resourceGroupName, labName, userName string, body labservices.UserUpdate) (*labservices.User, error)
	InviteUser(ctx context.Context, resourceGroupName, labName, userName string, text *string) error
	GetLab(ctx context.Context, resourceGroupName, labName string) (*labservices.Lab, error)
	UpdateLabAutoShutdown(ctx context.Context, resourceGroupName, labName string, profile *labservices.AutoShutdownProfile) (*labservices.Lab, error)
}

type client struct {
	log *logrus.Entry

	users armlabservices.UsersClient
	labs  armlabservices.LabsClient
}

var _ Client = &client{}

func NewClient(log *logrus.Entry, environment *azureclient.Environment, subscriptionID string, credential azcore.TokenCredential, middlewares ...azureclient.Middleware) (Client, error) {
	options := environment.ArmClientOptions(middlewares...)

	users, err := armlabservices.NewUsersClient(subscriptionID, credential, options)
	if err != nil {
		return nil, err
	}

	labs, err := armlabservices.NewLabsClient(subscriptionID, credential, options)
	if err != nil {
		return nil, err
	}

	return &client{
		log:   log,
		users: users,
		labs:  labs,
	}, nil
}

func (c *client) GetUser(ctx context.Context, resourceGroupName, labName, userName string) (*labservices.User, error) {
	resp, err := c.users.Get(ctx, resourceGroupName, labName, userName, nil)
	if err != nil {
		return nil, err
	}

	return &resp.User, nil
}

// ListUsers returns every user of a lab, following all pages.
func (c *client) ListUsers(ctx context.Context, resourceGroupName, labName string) ([]*labservices.User, error) {
	return c.users.List(ctx, resourceGroupName, labName, nil)
}

// UpdateUser patches a user and waits for the update to complete. Only the
// members set on body are sent.
func (c *client) UpdateUser(ctx context.Context, resourceGroupName, labName, userName string, body labservices.UserUpdate) (*labservices.User, error) {
	c.log.Infof("updating user %s of lab %s", userName, labName)

	return c.users.UpdateAndWait(ctx, resourceGroupName, labName, userName, body, nil)
}

// InviteUser sends the lab invitation email to a user and waits for it to
// be sent.
func (c *client) InviteUser(ctx context.Context, resourceGroupName, labName, userName string, text *string) error {
	c.log.Infof("inviting user %s to lab %s", userName, labName)

	return c.users.InviteAndWait(ctx, resourceGroupName, labName, userName, labservices.InviteBody{Text: text}, nil)
}

func (c *client) GetLab(ctx context.Context, resourceGroupName, labName string) (*labservices.Lab, error) {
	resp, err := c.labs.Get(ctx, resourceGroupName, labName, nil)
	if err != nil {
		return nil, err
	}

	return &resp.Lab, nil
}

// UpdateLabAutoShutdown patches only the auto shutdown profile of a lab and
// waits for the update to complete.
func (c *client) UpdateLabAutoShutdown(ctx context.Context, resourceGroupName, labName string, profile *labservices.AutoShutdownProfile) (*labservices.Lab, error) {
	c.log.Infof("updating auto shutdown profile of lab %s", labName)

	body := labservices.LabUpdate{}
	body.SetAutoShutdownProfile(profile)

	return c.labs.UpdateAndWait(ctx, resourceGroupName, labName, body, nil)
}
