package interfaces

import (
	"context"
	"ev_warranty/internal/domain/entities"
)

// IClaimSource reads claims owned by the external claim system.
// A zero Claim (ID == "") means the claim does not exist.

type IClaimSource interface {
	GetClaim(ctx context.Context, claimID string) (entities.Claim, error)
}
