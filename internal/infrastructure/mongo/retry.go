package mongo

import (
	"context"

	"github.com/cenkalti/backoff/v4"
	"go.mongodb.org/mongo-driver/mongo"

	apperrors "salonboard/pkg/errors"
)

// Store queries retry transient failures with exponential backoff, bounded so
// a dead store surfaces quickly as UPSTREAM_UNAVAILABLE instead of hanging
// the dashboard. Retry lives here, at the adapter boundary, never inside
// aggregation logic.
const maxRetries = 3

func withRetry(ctx context.Context, op func() error) error {
	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxRetries), ctx)
	err := backoff.Retry(func() error {
		if err := op(); err != nil {
			if isPermanent(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		return nil
	}, policy)
	if err == nil {
		return nil
	}
	if isPermanent(err) {
		return err
	}
	return apperrors.NewUpstreamUnavailableError("appointment store unavailable").WithCause(err)
}

// isPermanent reports errors retrying cannot help with: document-level
// conditions rather than store-level failures.
func isPermanent(err error) bool {
	return err == mongo.ErrNoDocuments || mongo.IsDuplicateKeyError(err)
}
