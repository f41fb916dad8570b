package azure

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resourcegraph/armresourcegraph"

	"github.com/thefrederiksen/azprune/telemetry"
	"github.com/thefrederiksen/azprune/types"
)

// Client executes Resource Graph queries against one subscription.
type Client struct {
	graph          *armresourcegraph.Client
	subscriptionID string
	logger         *telemetry.Logger
}

// NewClient builds a Resource Graph client on top of the Azure CLI
// session.
func NewClient(subscriptionID, tenantID string) (*Client, error) {
	cred, err := azidentity.NewAzureCLICredential(&azidentity.AzureCLICredentialOptions{
		TenantID: tenantID,
	})
	if err != nil {
		return nil, fmt.Errorf("creating azure credential: %w", err)
	}

	graph, err := armresourcegraph.NewClient(cred, nil)
	if err != nil {
		return nil, fmt.Errorf("creating resource graph client: %w", err)
	}

	return &Client{
		graph:          graph,
		subscriptionID: subscriptionID,
		logger:         telemetry.NewLogger("azure"),
	}, nil
}

// SubscriptionID returns the subscription this client queries.
func (c *Client) SubscriptionID() string {
	return c.subscriptionID
}

// Query runs one Resource Graph query and returns all rows, following
// skip tokens until the result set is exhausted.
func (c *Client) Query(ctx context.Context, query string) ([]types.Row, error) {
	var rows []types.Row
	var skipToken *string

	for {
		request := armresourcegraph.QueryRequest{
			Query:         to.Ptr(query),
			Subscriptions: []*string{to.Ptr(c.subscriptionID)},
		}
		if skipToken != nil {
			request.Options = &armresourcegraph.QueryRequestOptions{SkipToken: skipToken}
		}

		resp, err := c.graph.Resources(ctx, request, nil)
		if err != nil {
			return nil, fmt.Errorf("resource graph query: %w", err)
		}

		page, err := dataToRows(resp.Data)
		if err != nil {
			return nil, err
		}
		rows = append(rows, page...)

		if resp.SkipToken == nil || *resp.SkipToken == "" {
			break
		}
		skipToken = resp.SkipToken
	}

	c.logger.WithContext(ctx).Debug().
		Int("rows", len(rows)).
		Msg("query executed")

	return rows, nil
}

// dataToRows converts the untyped Resource Graph payload. The service
// returns a JSON array of objects; anything else is a protocol error.
func dataToRows(data any) ([]types.Row, error) {
	if data == nil {
		return nil, nil
	}

	items, ok := data.([]any)
	if !ok {
		return nil, fmt.Errorf("unexpected resource graph response type %T", data)
	}

	rows := make([]types.Row, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		rows = append(rows, types.Row(obj))
	}
	return rows, nil
}
