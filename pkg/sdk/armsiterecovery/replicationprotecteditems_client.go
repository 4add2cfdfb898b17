package armsiterecovery

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
)

const (
	vaultPath     = "/subscriptions/{subscriptionId}/resourceGroups/{resourceGroupName}/providers/Microsoft.RecoveryServices/vaults/{resourceName}"
	containerPath = vaultPath + "/replicationFabrics/{fabricName}/replicationProtectionContainers/{protectionContainerName}"
	itemPath      = containerPath + "/replicationProtectedItems/{replicatedProtectedItemName}"
)

// ReplicationProtectedItemsClient contains the methods for the ReplicationProtectedItems group.
// Don't use this type directly, use NewReplicationProtectedItemsClient() instead.
type ReplicationProtectedItemsClient struct {
	internal       *arm.Client
	subscriptionID string
}

// NewReplicationProtectedItemsClient creates a new instance of ReplicationProtectedItemsClient with the specified values.
func NewReplicationProtectedItemsClient(subscriptionID string, credential azcore.TokenCredential, options *arm.ClientOptions) (*ReplicationProtectedItemsClient, error) {
	cl, err := arm.NewClient(moduleName, moduleVersion, credential, options)
	if err != nil {
		return nil, err
	}
	client := &ReplicationProtectedItemsClient{
		subscriptionID: subscriptionID,
		internal:       cl,
	}
	return client, nil
}

func (client *ReplicationProtectedItemsClient) itemPath(resourceName string, resourceGroupName string, fabricName string, protectionContainerName string, replicatedProtectedItemName string) (string, error) {
	return expandPath(itemPath,
		pathParameter{"subscriptionId", client.subscriptionID},
		pathParameter{"resourceGroupName", resourceGroupName},
		pathParameter{"resourceName", resourceName},
		pathParameter{"fabricName", fabricName},
		pathParameter{"protectionContainerName", protectionContainerName},
		pathParameter{"replicatedProtectedItemName", replicatedProtectedItemName},
	)
}

// Get returns the details of a replication protected item.
// If the operation fails it returns an *azcore.ResponseError type.
func (client *ReplicationProtectedItemsClient) Get(ctx context.Context, resourceName string, resourceGroupName string, fabricName string, protectionContainerName string, replicatedProtectedItemName string, options *ReplicationProtectedItemsClientGetOptions) (ReplicationProtectedItemsClientGetResponse, error) {
	urlPath, err := client.itemPath(resourceName, resourceGroupName, fabricName, protectionContainerName, replicatedProtectedItemName)
	if err != nil {
		return ReplicationProtectedItemsClientGetResponse{}, err
	}
	httpResp, err := send(ctx, client.internal, "ReplicationProtectedItemsClient.Get", http.MethodGet, urlPath, nil, http.StatusOK)
	if err != nil {
		return ReplicationProtectedItemsClientGetResponse{}, err
	}
	result := ReplicationProtectedItemsClientGetResponse{}
	if err := runtime.UnmarshalAsJSON(httpResp, &result.ReplicationProtectedItem); err != nil {
		return ReplicationProtectedItemsClientGetResponse{}, err
	}
	return result, nil
}

// BeginCreate creates a replication protected item, enabling protection of a protectable item.
// If the operation fails it returns an *azcore.ResponseError type.
func (client *ReplicationProtectedItemsClient) BeginCreate(ctx context.Context, resourceName string, resourceGroupName string, fabricName string, protectionContainerName string, replicatedProtectedItemName string, input EnableProtectionInput, options *ReplicationProtectedItemsClientBeginCreateOptions) (*runtime.Poller[ReplicationProtectedItemsClientCreateResponse], error) {
	if options != nil && options.ResumeToken != "" {
		return resumePoller[ReplicationProtectedItemsClientCreateResponse](client.internal, options.ResumeToken)
	}
	urlPath, err := client.itemPath(resourceName, resourceGroupName, fabricName, protectionContainerName, replicatedProtectedItemName)
	if err != nil {
		return nil, err
	}
	resp, err := send(ctx, client.internal, "ReplicationProtectedItemsClient.BeginCreate", http.MethodPut, urlPath, input, http.StatusOK, http.StatusAccepted)
	if err != nil {
		return nil, err
	}
	return newPoller[ReplicationProtectedItemsClientCreateResponse](client.internal, resp)
}

// BeginDelete disables protection of a replication protected item.
// If the operation fails it returns an *azcore.ResponseError type.
func (client *ReplicationProtectedItemsClient) BeginDelete(ctx context.Context, resourceName string, resourceGroupName string, fabricName string, protectionContainerName string, replicatedProtectedItemName string, disableProtectionInput DisableProtectionInput, options *ReplicationProtectedItemsClientBeginDeleteOptions) (*runtime.Poller[ReplicationProtectedItemsClientDeleteResponse], error) {
	if options != nil && options.ResumeToken != "" {
		return resumePoller[ReplicationProtectedItemsClientDeleteResponse](client.internal, options.ResumeToken)
	}
	urlPath, err := client.itemPath(resourceName, resourceGroupName, fabricName, protectionContainerName, replicatedProtectedItemName)
	if err != nil {
		return nil, err
	}
	resp, err := send(ctx, client.internal, "ReplicationProtectedItemsClient.BeginDelete", http.MethodPost, urlPath+"/remove", disableProtectionInput, http.StatusAccepted, http.StatusNoContent)
	if err != nil {
		return nil, err
	}
	return newPoller[ReplicationProtectedItemsClientDeleteResponse](client.internal, resp)
}

// BeginPurge removes a replication protected item without cleaning up the source site.
// If the operation fails it returns an *azcore.ResponseError type.
func (client *ReplicationProtectedItemsClient) BeginPurge(ctx context.Context, resourceName string, resourceGroupName string, fabricName string, protectionContainerName string, replicatedProtectedItemName string, options *ReplicationProtectedItemsClientBeginPurgeOptions) (*runtime.Poller[ReplicationProtectedItemsClientPurgeResponse], error) {
	if options != nil && options.ResumeToken != "" {
		return resumePoller[ReplicationProtectedItemsClientPurgeResponse](client.internal, options.ResumeToken)
	}
	urlPath, err := client.itemPath(resourceName, resourceGroupName, fabricName, protectionContainerName, replicatedProtectedItemName)
	if err != nil {
		return nil, err
	}
	resp, err := send(ctx, client.internal, "ReplicationProtectedItemsClient.BeginPurge", http.MethodDelete, urlPath, nil, http.StatusAccepted, http.StatusNoContent)
	if err != nil {
		return nil, err
	}
	return newPoller[ReplicationProtectedItemsClientPurgeResponse](client.internal, resp)
}

// BeginUpdate updates the recovery settings of a replication protected item.
// If the operation fails it returns an *azcore.ResponseError type.
func (client *ReplicationProtectedItemsClient) BeginUpdate(ctx context.Context, resourceName string, resourceGroupName string, fabricName string, protectionContainerName string, replicatedProtectedItemName string, updateProtectionInput UpdateReplicationProtectedItemInput, options *ReplicationProtectedItemsClientBeginUpdateOptions) (*runtime.Poller[ReplicationProtectedItemsClientUpdateResponse], error) {
	if options != nil && options.ResumeToken != "" {
		return resumePoller[ReplicationProtectedItemsClientUpdateResponse](client.internal, options.ResumeToken)
	}
	urlPath, err := client.itemPath(resourceName, resourceGroupName, fabricName, protectionContainerName, replicatedProtectedItemName)
	if err != nil {
		return nil, err
	}
	resp, err := send(ctx, client.internal, "ReplicationProtectedItemsClient.BeginUpdate", http.MethodPatch, urlPath, updateProtectionInput, http.StatusOK, http.StatusAccepted)
	if err != nil {
		return nil, err
	}
	return newPoller[ReplicationProtectedItemsClientUpdateResponse](client.internal, resp)
}

// BeginAddDisks adds disks to the replication protected item.
// If the operation fails it returns an *azcore.ResponseError type.
func (client *ReplicationProtectedItemsClient) BeginAddDisks(ctx context.Context, resourceName string, resourceGroupName string, fabricName string, protectionContainerName string, replicatedProtectedItemName string, addDisksInput AddDisksInput, options *ReplicationProtectedItemsClientBeginAddDisksOptions) (*runtime.Poller[ReplicationProtectedItemsClientAddDisksResponse], error) {
	if options != nil && options.ResumeToken != "" {
		return resumePoller[ReplicationProtectedItemsClientAddDisksResponse](client.internal, options.ResumeToken)
	}
	urlPath, err := client.itemPath(resourceName, resourceGroupName, fabricName, protectionContainerName, replicatedProtectedItemName)
	if err != nil {
		return nil, err
	}
	resp, err := send(ctx, client.internal, "ReplicationProtectedItemsClient.BeginAddDisks", http.MethodPost, urlPath+"/addDisks", addDisksInput, http.StatusOK, http.StatusAccepted)
	if err != nil {
		return nil, err
	}
	return newPoller[ReplicationProtectedItemsClientAddDisksResponse](client.internal, resp)
}

// BeginRemoveDisks removes disks from the replication protected item.
// If the operation fails it returns an *azcore.ResponseError type.
func (client *ReplicationProtectedItemsClient) BeginRemoveDisks(ctx context.Context, resourceName string, resourceGroupName string, fabricName string, protectionContainerName string, replicatedProtectedItemName string, removeDisksInput RemoveDisksInput, options *ReplicationProtectedItemsClientBeginRemoveDisksOptions) (*runtime.Poller[ReplicationProtectedItemsClientRemoveDisksResponse], error) {
	if options != nil && options.ResumeToken != "" {
		return resumePoller[ReplicationProtectedItemsClientRemoveDisksResponse](client.internal, options.ResumeToken)
	}
	urlPath, err := client.itemPath(resourceName, resourceGroupName, fabricName, protectionContainerName, replicatedProtectedItemName)
	if err != nil {
		return nil, err
	}
	resp, err := send(ctx, client.internal, "ReplicationProtectedItemsClient.BeginRemoveDisks", http.MethodPost, urlPath+"/removeDisks", removeDisksInput, http.StatusOK, http.StatusAccepted)
	if err != nil {
		return nil, err
	}
	return newPoller[ReplicationProtectedItemsClientRemoveDisksResponse](client.internal, resp)
}

// BeginApplyRecoveryPoint changes the recovery point of a failed over item.
// If the operation fails it returns an *azcore.ResponseError type.
func (client *ReplicationProtectedItemsClient) BeginApplyRecoveryPoint(ctx context.Context, resourceName string, resourceGroupName string, fabricName string, protectionContainerName string, replicatedProtectedItemName string, applyRecoveryPointInput ApplyRecoveryPointInput, options *ReplicationProtectedItemsClientBeginApplyRecoveryPointOptions) (*runtime.Poller[ReplicationProtectedItemsClientApplyRecoveryPointResponse], error) {
	if options != nil && options.ResumeToken != "" {
		return resumePoller[ReplicationProtectedItemsClientApplyRecoveryPointResponse](client.internal, options.ResumeToken)
	}
	urlPath, err := client.itemPath(resourceName, resourceGroupName, fabricName, protectionContainerName, replicatedProtectedItemName)
	if err != nil {
		return nil, err
	}
	resp, err := send(ctx, client.internal, "ReplicationProtectedItemsClient.BeginApplyRecoveryPoint", http.MethodPost, urlPath+"/applyRecoveryPoint", applyRecoveryPointInput, http.StatusOK, http.StatusAccepted)
	if err != nil {
		return nil, err
	}
	return newPoller[ReplicationProtectedItemsClientApplyRecoveryPointResponse](client.internal, resp)
}

// BeginFailoverCommit commits a failover.
// If the operation fails it returns an *azcore.ResponseError type.
func (client *ReplicationProtectedItemsClient) BeginFailoverCommit(ctx context.Context, resourceName string, resourceGroupName string, fabricName string, protectionContainerName string, replicatedProtectedItemName string, options *ReplicationProtectedItemsClientBeginFailoverCommitOptions) (*runtime.Poller[ReplicationProtectedItemsClientFailoverCommitResponse], error) {
	if options != nil && options.ResumeToken != "" {
		return resumePoller[ReplicationProtectedItemsClientFailoverCommitResponse](client.internal, options.ResumeToken)
	}
	urlPath, err := client.itemPath(resourceName, resourceGroupName, fabricName, protectionContainerName, replicatedProtectedItemName)
	if err != nil {
		return nil, err
	}
	resp, err := send(ctx, client.internal, "ReplicationProtectedItemsClient.BeginFailoverCommit", http.MethodPost, urlPath+"/failoverCommit", nil, http.StatusOK, http.StatusAccepted)
	if err != nil {
		return nil, err
	}
	return newPoller[ReplicationProtectedItemsClientFailoverCommitResponse](client.internal, resp)
}

// BeginFailoverCancel cancels a failover.
// If the operation fails it returns an *azcore.ResponseError type.
func (client *ReplicationProtectedItemsClient) BeginFailoverCancel(ctx context.Context, resourceName string, resourceGroupName string, fabricName string, protectionContainerName string, replicatedProtectedItemName string, options *ReplicationProtectedItemsClientBeginFailoverCancelOptions) (*runtime.Poller[ReplicationProtectedItemsClientFailoverCancelResponse], error) {
	if options != nil && options.ResumeToken != "" {
		return resumePoller[ReplicationProtectedItemsClientFailoverCancelResponse](client.internal, options.ResumeToken)
	}
	urlPath, err := client.itemPath(resourceName, resourceGroupName, fabricName, protectionContainerName, replicatedProtectedItemName)
	if err != nil {
		return nil, err
	}
	resp, err := send(ctx, client.internal, "ReplicationProtectedItemsClient.BeginFailoverCancel", http.MethodPost, urlPath+"/failoverCancel", nil, http.StatusOK, http.StatusAccepted)
	if err != nil {
		return nil, err
	}
	return newPoller[ReplicationProtectedItemsClientFailoverCancelResponse](client.internal, resp)
}

// BeginPlannedFailover starts a planned failover.
// If the operation fails it returns an *azcore.ResponseError type.
func (client *ReplicationProtectedItemsClient) BeginPlannedFailover(ctx context.Context, resourceName string, resourceGroupName string, fabricName string, protectionContainerName string, replicatedProtectedItemName string, failoverInput PlannedFailoverInput, options *ReplicationProtectedItemsClientBeginPlannedFailoverOptions) (*runtime.Poller[ReplicationProtectedItemsClientPlannedFailoverResponse], error) {
	if options != nil && options.ResumeToken != "" {
		return resumePoller[ReplicationProtectedItemsClientPlannedFailoverResponse](client.internal, options.ResumeToken)
	}
	urlPath, err := client.itemPath(resourceName, resourceGroupName, fabricName, protectionContainerName, replicatedProtectedItemName)
	if err != nil {
		return nil, err
	}
	resp, err := send(ctx, client.internal, "ReplicationProtectedItemsClient.BeginPlannedFailover", http.MethodPost, urlPath+"/plannedFailover", failoverInput, http.StatusOK, http.StatusAccepted)
	if err != nil {
		return nil, err
	}
	return newPoller[ReplicationProtectedItemsClientPlannedFailoverResponse](client.internal, resp)
}

// BeginReprotect reverses replication after a failover.
// If the operation fails it returns an *azcore.ResponseError type.
func (client *ReplicationProtectedItemsClient) BeginReprotect(ctx context.Context, resourceName string, resourceGroupName string, fabricName string, protectionContainerName string, replicatedProtectedItemName string, reprotectInput ReverseReplicationInput, options *ReplicationProtectedItemsClientBeginReprotectOptions) (*runtime.Poller[ReplicationProtectedItemsClientReprotectResponse], error) {
	if options != nil && options.ResumeToken != "" {
		return resumePoller[ReplicationProtectedItemsClientReprotectResponse](client.internal, options.ResumeToken)
	}
	urlPath, err := client.itemPath(resourceName, resourceGroupName, fabricName, protectionContainerName, replicatedProtectedItemName)
	if err != nil {
		return nil, err
	}
	resp, err := send(ctx, client.internal, "ReplicationProtectedItemsClient.BeginReprotect", http.MethodPost, urlPath+"/reProtect", reprotectInput, http.StatusOK, http.StatusAccepted)
	if err != nil {
		return nil, err
	}
	return newPoller[ReplicationProtectedItemsClientReprotectResponse](client.internal, resp)
}

// BeginTestFailover starts a test failover.
// If the operation fails it returns an *azcore.ResponseError type.
func (client *ReplicationProtectedItemsClient) BeginTestFailover(ctx context.Context, resourceName string, resourceGroupName string, fabricName string, protectionContainerName string, replicatedProtectedItemName string, testfailoverInput TestFailoverInput, options *ReplicationProtectedItemsClientBeginTestFailoverOptions) (*runtime.Poller[ReplicationProtectedItemsClientTestFailoverResponse], error) {
	if options != nil && options.ResumeToken != "" {
		return resumePoller[ReplicationProtectedItemsClientTestFailoverResponse](client.internal, options.ResumeToken)
	}
	urlPath, err := client.itemPath(resourceName, resourceGroupName, fabricName, protectionContainerName, replicatedProtectedItemName)
	if err != nil {
		return nil, err
	}
	resp, err := send(ctx, client.internal, "ReplicationProtectedItemsClient.BeginTestFailover", http.MethodPost, urlPath+"/testFailover", testfailoverInput, http.StatusOK, http.StatusAccepted)
	if err != nil {
		return nil, err
	}
	return newPoller[ReplicationProtectedItemsClientTestFailoverResponse](client.internal, resp)
}

// BeginTestFailoverCleanup cleans up a test failover.
// If the operation fails it returns an *azcore.ResponseError type.
func (client *ReplicationProtectedItemsClient) BeginTestFailoverCleanup(ctx context.Context, resourceName string, resourceGroupName string, fabricName string, protectionContainerName string, replicatedProtectedItemName string, cleanupInput TestFailoverCleanupInput, options *ReplicationProtectedItemsClientBeginTestFailoverCleanupOptions) (*runtime.Poller[ReplicationProtectedItemsClientTestFailoverCleanupResponse], error) {
	if options != nil && options.ResumeToken != "" {
		return resumePoller[ReplicationProtectedItemsClientTestFailoverCleanupResponse](client.internal, options.ResumeToken)
	}
	urlPath, err := client.itemPath(resourceName, resourceGroupName, fabricName, protectionContainerName, replicatedProtectedItemName)
	if err != nil {
		return nil, err
	}
	resp, err := send(ctx, client.internal, "ReplicationProtectedItemsClient.BeginTestFailoverCleanup", http.MethodPost, urlPath+"/testFailoverCleanup", cleanupInput, http.StatusOK, http.StatusAccepted)
	if err != nil {
		return nil, err
	}
	return newPoller[ReplicationProtectedItemsClientTestFailoverCleanupResponse](client.internal, resp)
}

// BeginUnplannedFailover starts an unplanned failover.
// If the operation fails it returns an *azcore.ResponseError type.
func (client *ReplicationProtectedItemsClient) BeginUnplannedFailover(ctx context.Context, resourceName string, resourceGroupName string, fabricName string, protectionContainerName string, replicatedProtectedItemName string, failoverInput UnplannedFailoverInput, options *ReplicationProtectedItemsClientBeginUnplannedFailoverOptions) (*runtime.Poller[ReplicationProtectedItemsClientUnplannedFailoverResponse], error) {
	if options != nil && options.ResumeToken != "" {
		return resumePoller[ReplicationProtectedItemsClientUnplannedFailoverResponse](client.internal, options.ResumeToken)
	}
	urlPath, err := client.itemPath(resourceName, resourceGroupName, fabricName, protectionContainerName, replicatedProtectedItemName)
	if err != nil {
		return nil, err
	}
	resp, err := send(ctx, client.internal, "ReplicationProtectedItemsClient.BeginUnplannedFailover", http.MethodPost, urlPath+"/unplannedFailover", failoverInput, http.StatusOK, http.StatusAccepted)
	if err != nil {
		return nil, err
	}
	return newPoller[ReplicationProtectedItemsClientUnplannedFailoverResponse](client.internal, resp)
}

// BeginRepairReplication resynchronizes replication of the item.
// If the operation fails it returns an *azcore.ResponseError type.
func (client *ReplicationProtectedItemsClient) BeginRepairReplication(ctx context.Context, resourceName string, resourceGroupName string, fabricName string, protectionContainerName string, replicatedProtectedItemName string, options *ReplicationProtectedItemsClientBeginRepairReplicationOptions) (*runtime.Poller[ReplicationProtectedItemsClientRepairReplicationResponse], error) {
	if options != nil && options.ResumeToken != "" {
		return resumePoller[ReplicationProtectedItemsClientRepairReplicationResponse](client.internal, options.ResumeToken)
	}
	urlPath, err := client.itemPath(resourceName, resourceGroupName, fabricName, protectionContainerName, replicatedProtectedItemName)
	if err != nil {
		return nil, err
	}
	resp, err := send(ctx, client.internal, "ReplicationProtectedItemsClient.BeginRepairReplication", http.MethodPost, urlPath+"/repairReplication", nil, http.StatusOK, http.StatusAccepted)
	if err != nil {
		return nil, err
	}
	return newPoller[ReplicationProtectedItemsClientRepairReplicationResponse](client.internal, resp)
}

// BeginUpdateMobilityService updates the mobility service on the protected machine.
// If the operation fails it returns an *azcore.ResponseError type.
func (client *ReplicationProtectedItemsClient) BeginUpdateMobilityService(ctx context.Context, resourceName string, resourceGroupName string, fabricName string, protectionContainerName string, replicatedProtectedItemName string, updateMobilityServiceRequest UpdateMobilityServiceRequest, options *ReplicationProtectedItemsClientBeginUpdateMobilityServiceOptions) (*runtime.Poller[ReplicationProtectedItemsClientUpdateMobilityServiceResponse], error) {
	if options != nil && options.ResumeToken != "" {
		return resumePoller[ReplicationProtectedItemsClientUpdateMobilityServiceResponse](client.internal, options.ResumeToken)
	}
	urlPath, err := client.itemPath(resourceName, resourceGroupName, fabricName, protectionContainerName, replicatedProtectedItemName)
	if err != nil {
		return nil, err
	}
	resp, err := send(ctx, client.internal, "ReplicationProtectedItemsClient.BeginUpdateMobilityService", http.MethodPost, urlPath+"/updateMobilityService", updateMobilityServiceRequest, http.StatusOK, http.StatusAccepted)
	if err != nil {
		return nil, err
	}
	return newPoller[ReplicationProtectedItemsClientUpdateMobilityServiceResponse](client.internal, resp)
}

// BeginUpdateAppliance switches the appliance serving the replication protected item.
// If the operation fails it returns an *azcore.ResponseError type.
func (client *ReplicationProtectedItemsClient) BeginUpdateAppliance(ctx context.Context, resourceName string, resourceGroupName string, fabricName string, protectionContainerName string, replicatedProtectedItemName string, applianceUpdateInput UpdateApplianceForReplicationProtectedItemInput, options *ReplicationProtectedItemsClientBeginUpdateApplianceOptions) (*runtime.Poller[ReplicationProtectedItemsClientUpdateApplianceResponse], error) {
	if options != nil && options.ResumeToken != "" {
		return resumePoller[ReplicationProtectedItemsClientUpdateApplianceResponse](client.internal, options.ResumeToken)
	}
	urlPath, err := client.itemPath(resourceName, resourceGroupName, fabricName, protectionContainerName, replicatedProtectedItemName)
	if err != nil {
		return nil, err
	}
	resp, err := send(ctx, client.internal, "ReplicationProtectedItemsClient.BeginUpdateAppliance", http.MethodPost, urlPath+"/updateAppliance", applianceUpdateInput, http.StatusOK, http.StatusAccepted)
	if err != nil {
		return nil, err
	}
	return newPoller[ReplicationProtectedItemsClientUpdateApplianceResponse](client.internal, resp)
}

// NewListPager returns the replication protected items of a vault.
func (client *ReplicationProtectedItemsClient) NewListPager(resourceName string, resourceGroupName string, options *ReplicationProtectedItemsClientListOptions) *runtime.Pager[ReplicationProtectedItemsClientListResponse] {
	return runtime.NewPager(runtime.PagingHandler[ReplicationProtectedItemsClientListResponse]{
		More: func(page ReplicationProtectedItemsClientListResponse) bool {
			return page.NextLink != nil && len(*page.NextLink) > 0
		},
		Fetcher: func(ctx context.Context, page *ReplicationProtectedItemsClientListResponse) (ReplicationProtectedItemsClientListResponse, error) {
			ctx = context.WithValue(ctx, runtime.CtxAPINameKey{}, "ReplicationProtectedItemsClient.NewListPager")
			nextLink := ""
			if page != nil {
				nextLink = *page.NextLink
			}
			resp, err := runtime.FetcherForNextLink(ctx, client.internal.Pipeline(), nextLink, func(ctx context.Context) (*policy.Request, error) {
				return client.listCreateRequest(ctx, resourceName, resourceGroupName, options)
			}, nil)
			if err != nil {
				return ReplicationProtectedItemsClientListResponse{}, err
			}
			result := ReplicationProtectedItemsClientListResponse{}
			if err := runtime.UnmarshalAsJSON(resp, &result.ReplicationProtectedItemCollection); err != nil {
				return ReplicationProtectedItemsClientListResponse{}, err
			}
			return result, nil
		},
		Tracer: client.internal.Tracer(),
	})
}

func (client *ReplicationProtectedItemsClient) listCreateRequest(ctx context.Context, resourceName string, resourceGroupName string, options *ReplicationProtectedItemsClientListOptions) (*policy.Request, error) {
	urlPath, err := expandPath(vaultPath+"/replicationProtectedItems",
		pathParameter{"subscriptionId", client.subscriptionID},
		pathParameter{"resourceGroupName", resourceGroupName},
		pathParameter{"resourceName", resourceName},
	)
	if err != nil {
		return nil, err
	}
	req, err := newRequest(ctx, client.internal, http.MethodGet, urlPath, nil)
	if err != nil {
		return nil, err
	}
	reqQP := req.Raw().URL.Query()
	if options != nil && options.Filter != nil {
		reqQP.Set("$filter", *options.Filter)
	}
	if options != nil && options.SkipToken != nil {
		reqQP.Set("skipToken", *options.SkipToken)
	}
	req.Raw().URL.RawQuery = reqQP.Encode()
	return req, nil
}

// NewListByReplicationProtectionContainersPager returns the replication
// protected items of a protection container.
func (client *ReplicationProtectedItemsClient) NewListByReplicationProtectionContainersPager(resourceName string, resourceGroupName string, fabricName string, protectionContainerName string, options *ReplicationProtectedItemsClientListByReplicationProtectionContainersOptions) *runtime.Pager[ReplicationProtectedItemsClientListByReplicationProtectionContainersResponse] {
	return runtime.NewPager(runtime.PagingHandler[ReplicationProtectedItemsClientListByReplicationProtectionContainersResponse]{
		More: func(page ReplicationProtectedItemsClientListByReplicationProtectionContainersResponse) bool {
			return page.NextLink != nil && len(*page.NextLink) > 0
		},
		Fetcher: func(ctx context.Context, page *ReplicationProtectedItemsClientListByReplicationProtectionContainersResponse) (ReplicationProtectedItemsClientListByReplicationProtectionContainersResponse, error) {
			ctx = context.WithValue(ctx, runtime.CtxAPINameKey{}, "ReplicationProtectedItemsClient.NewListByReplicationProtectionContainersPager")
			nextLink := ""
			if page != nil {
				nextLink = *page.NextLink
			}
			resp, err := runtime.FetcherForNextLink(ctx, client.internal.Pipeline(), nextLink, func(ctx context.Context) (*policy.Request, error) {
				urlPath, err := expandPath(containerPath+"/replicationProtectedItems",
					pathParameter{"subscriptionId", client.subscriptionID},
					pathParameter{"resourceGroupName", resourceGroupName},
					pathParameter{"resourceName", resourceName},
					pathParameter{"fabricName", fabricName},
					pathParameter{"protectionContainerName", protectionContainerName},
				)
				if err != nil {
					return nil, err
				}
				return newRequest(ctx, client.internal, http.MethodGet, urlPath, nil)
			}, nil)
			if err != nil {
				return ReplicationProtectedItemsClientListByReplicationProtectionContainersResponse{}, err
			}
			result := ReplicationProtectedItemsClientListByReplicationProtectionContainersResponse{}
			if err := runtime.UnmarshalAsJSON(resp, &result.ReplicationProtectedItemCollection); err != nil {
				return ReplicationProtectedItemsClientListByReplicationProtectionContainersResponse{}, err
			}
			return result, nil
		},
		Tracer: client.internal.Tracer(),
	})
}
