package interfaces

import (
	"context"
	"ev_warranty/internal/domain/entities"
)

// IEstimateAuthority is the system of record for estimate versions.
//
// The authority assigns ids, version numbers and timestamps, and enforces the
// claim phase precondition. Implementations:
//   - remote REST authority (default)
//   - local DynamoDB authority (AUTHORITY_MODE=dynamodb)
//
// Lookups return a zero EstimateVersion (ID == "") when nothing matches.

type IEstimateAuthority interface {
	Create(ctx context.Context, draft entities.EstimateDraft) (entities.EstimateVersion, error)
	Update(ctx context.Context, versionID string, draft entities.EstimateDraft) (entities.EstimateVersion, error)
	ListByClaim(ctx context.Context, claimID string) ([]entities.EstimateVersion, error)
	GetVersion(ctx context.Context, claimID string, versionNo int) (entities.EstimateVersion, error)
}
