// README: BigQuery warehouse client initialization.
package infra

import (
	"context"
	"fmt"

	"cloud.google.com/go/bigquery"
)

// NewWarehouse creates a BigQuery client for the analytical warehouse.
// Credentials come from the ambient environment (GOOGLE_APPLICATION_CREDENTIALS
// or application-default credentials), matching the other Google SDKs here.
func NewWarehouse(ctx context.Context, projectID string) (*bigquery.Client, error) {
	client, err := bigquery.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("bigquery.NewClient: %w", err)
	}
	return client, nil
}
