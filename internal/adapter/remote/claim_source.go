package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"ev_warranty/internal/domain/entities"
	"ev_warranty/internal/domain/failures"
	"ev_warranty/internal/usecase/interfaces"
)

type ClaimSource struct {
	client *Client
}

var _ interfaces.IClaimSource = (*ClaimSource)(nil)

func NewClaimSource(client *Client) *ClaimSource {
	return &ClaimSource{client: client}
}

// GetClaim returns a zero Claim when the authority has no such claim.
func (s *ClaimSource) GetClaim(ctx context.Context, claimID string) (entities.Claim, error) {
	path := fmt.Sprintf("/claims/%s", url.PathEscape(claimID))
	raw, err := s.client.do(ctx, "get_claim", http.MethodGet, path, nil)
	if errors.Is(err, failures.ErrNotFound) {
		return entities.Claim{}, nil
	}
	if err != nil {
		return entities.Claim{}, err
	}
	obj, err := unwrapObject(raw)
	if err != nil {
		return entities.Claim{}, decodeError("get_claim", err)
	}
	if obj == nil {
		return entities.Claim{}, nil
	}
	var w claimWire
	if err := json.Unmarshal(obj, &w); err != nil {
		return entities.Claim{}, decodeError("get_claim", err)
	}
	c := w.toEntity()
	if c.ID == "" && c.VIN != "" {
		c.ID = claimID
	}
	return c, nil
}
