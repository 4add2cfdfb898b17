package networkcloud

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"errors"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/go-test/deep"
	"go.uber.org/mock/gomock"

	networkcloud "github.com/Azure/azps-go/pkg/api/networkcloud/v20250201"
	"github.com/Azure/azps-go/pkg/sdk/armnetworkcloud"
	mock_armnetworkcloud "github.com/Azure/azps-go/pkg/util/mocks/azureclient/azuresdk/armnetworkcloud"
	utilerror "github.com/Azure/azps-go/test/util/error"
	testlog "github.com/Azure/azps-go/test/util/log"
)

func TestAgentPools(t *testing.T) {
	ctx := context.Background()

	pool := &networkcloud.AgentPool{
		Name:     to.Ptr("pool"),
		Location: to.Ptr("eastus"),
		Properties: &networkcloud.AgentPoolProperties{
			Count:     to.Ptr(int64(3)),
			Mode:      to.Ptr(networkcloud.AgentPoolModeUser),
			VMSKUName: to.Ptr("NC_M16_v1"),
			AgentOptions: &networkcloud.AgentOptions{
				HugepagesCount: to.Ptr(int64(0)),
				HugepagesSize:  to.Ptr(networkcloud.HugepagesSize1G),
			},
			ProvisioningState: to.Ptr(networkcloud.AgentPoolProvisioningStateSucceeded),
		},
	}

	type test struct {
		name    string
		mocks   func(*mock_armnetworkcloud.MockAgentPoolsClient)
		call    func(*client) (interface{}, error)
		want    interface{}
		wantErr string
	}

	for _, tt := range []*test{
		{
			name: "get",
			mocks: func(agentPools *mock_armnetworkcloud.MockAgentPoolsClient) {
				agentPools.EXPECT().
					Get(gomock.Any(), "rg", "cluster", "pool", nil).
					Return(armnetworkcloud.AgentPoolsClientGetResponse{AgentPool: *pool}, nil)
			},
			call: func(c *client) (interface{}, error) {
				return c.GetAgentPool(ctx, "rg", "cluster", "pool")
			},
			want: pool,
		},
		{
			name: "list",
			mocks: func(agentPools *mock_armnetworkcloud.MockAgentPoolsClient) {
				agentPools.EXPECT().
					List(gomock.Any(), "rg", "cluster", nil).
					Return([]*networkcloud.AgentPool{pool}, nil)
			},
			call: func(c *client) (interface{}, error) {
				return c.ListAgentPools(ctx, "rg", "cluster")
			},
			want: []*networkcloud.AgentPool{pool},
		},
		{
			name: "create or update",
			mocks: func(agentPools *mock_armnetworkcloud.MockAgentPoolsClient) {
				agentPools.EXPECT().
					CreateOrUpdateAndWait(gomock.Any(), "rg", "cluster", "pool", *pool, nil).
					Return(pool, nil)
			},
			call: func(c *client) (interface{}, error) {
				return c.CreateOrUpdateAgentPool(ctx, "rg", "cluster", "pool", *pool)
			},
			want: pool,
		},
		{
			name: "scale",
			mocks: func(agentPools *mock_armnetworkcloud.MockAgentPoolsClient) {
				agentPools.EXPECT().
					UpdateAndWait(gomock.Any(), "rg", "cluster", "pool", networkcloud.AgentPoolPatchParameters{
						Properties: &networkcloud.AgentPoolPatchProperties{
							Count: to.Ptr(int64(5)),
						},
					}, nil).
					Return(pool, nil)
			},
			call: func(c *client) (interface{}, error) {
				return c.ScaleAgentPool(ctx, "rg", "cluster", "pool", 5)
			},
			want: pool,
		},
		{
			name: "update fault",
			mocks: func(agentPools *mock_armnetworkcloud.MockAgentPoolsClient) {
				agentPools.EXPECT().
					UpdateAndWait(gomock.Any(), "rg", "cluster", "pool", networkcloud.AgentPoolPatchParameters{}, nil).
					Return(nil, errors.New("conflict"))
			},
			call: func(c *client) (interface{}, error) {
				return c.UpdateAgentPool(ctx, "rg", "cluster", "pool", networkcloud.AgentPoolPatchParameters{})
			},
			want:    (*networkcloud.AgentPool)(nil),
			wantErr: "conflict",
		},
		{
			name: "delete",
			mocks: func(agentPools *mock_armnetworkcloud.MockAgentPoolsClient) {
				agentPools.EXPECT().
					DeleteAndWait(gomock.Any(), "rg", "cluster", "pool", nil).
					Return(nil)
			},
			call: func(c *client) (interface{}, error) {
				return nil, c.DeleteAgentPool(ctx, "rg", "cluster", "pool")
			},
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			controller := gomock.NewController(t)
			defer controller.Finish()

			agentPools := mock_armnetworkcloud.NewMockAgentPoolsClient(controller)
			tt.mocks(agentPools)

			_, log := testlog.NewCapturingLogger()
			c := &client{
				log:        log,
				agentPools: agentPools,
			}

			got, err := tt.call(c)
			utilerror.AssertErrorMessage(t, err, tt.wantErr)

			for _, diff := range deep.Equal(got, tt.want) {
				t.Error(diff)
			}
		})
	}
}
