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

// EstimateAuthority is the remote estimate version store.
type EstimateAuthority struct {
	client *Client
}

var _ interfaces.IEstimateAuthority = (*EstimateAuthority)(nil)

func NewEstimateAuthority(client *Client) *EstimateAuthority {
	return &EstimateAuthority{client: client}
}

func (a *EstimateAuthority) Create(ctx context.Context, draft entities.EstimateDraft) (entities.EstimateVersion, error) {
	raw, err := a.client.do(ctx, "create_estimate", http.MethodPost, "/estimates/create", newEstimateBody(draft))
	if err != nil {
		return entities.EstimateVersion{}, err
	}
	return decodeEstimate("create_estimate", raw)
}

// Update returns a zero version when the authority does not know versionID.
func (a *EstimateAuthority) Update(ctx context.Context, versionID string, draft entities.EstimateDraft) (entities.EstimateVersion, error) {
	path := fmt.Sprintf("/estimates/%s/update", url.PathEscape(versionID))
	raw, err := a.client.do(ctx, "update_estimate", http.MethodPut, path, newEstimateBody(draft))
	if errors.Is(err, failures.ErrNotFound) {
		return entities.EstimateVersion{}, nil
	}
	if err != nil {
		return entities.EstimateVersion{}, err
	}
	return decodeEstimate("update_estimate", raw)
}

// ListByClaim treats a 404 as a claim without estimates.
func (a *EstimateAuthority) ListByClaim(ctx context.Context, claimID string) ([]entities.EstimateVersion, error) {
	path := fmt.Sprintf("/estimates/%s/get-by-claim", url.PathEscape(claimID))
	raw, err := a.client.do(ctx, "list_estimates", http.MethodGet, path, nil)
	if errors.Is(err, failures.ErrNotFound) {
		return []entities.EstimateVersion{}, nil
	}
	if err != nil {
		return nil, err
	}
	elems, err := unwrapList(raw)
	if err != nil {
		return nil, decodeError("list_estimates", err)
	}
	out := make([]entities.EstimateVersion, 0, len(elems))
	for _, e := range elems {
		var w estimateWire
		if err := json.Unmarshal(e, &w); err != nil {
			return nil, decodeError("list_estimates", err)
		}
		v, err := w.toEntity()
		if err != nil {
			return nil, decodeError("list_estimates", err)
		}
		if v.ClaimID == "" {
			v.ClaimID = claimID
		}
		out = append(out, v)
	}
	return out, nil
}

func (a *EstimateAuthority) GetVersion(ctx context.Context, claimID string, versionNo int) (entities.EstimateVersion, error) {
	path := fmt.Sprintf("/estimates/%s/%d/get", url.PathEscape(claimID), versionNo)
	raw, err := a.client.do(ctx, "get_estimate_version", http.MethodGet, path, nil)
	if err != nil {
		return entities.EstimateVersion{}, err
	}
	v, err := decodeEstimate("get_estimate_version", raw)
	if err != nil {
		return entities.EstimateVersion{}, err
	}
	if v.ClaimID == "" && v.ID != "" {
		v.ClaimID = claimID
	}
	return v, nil
}

func decodeEstimate(operation string, raw []byte) (entities.EstimateVersion, error) {
	obj, err := unwrapObject(raw)
	if err != nil {
		return entities.EstimateVersion{}, decodeError(operation, err)
	}
	if obj == nil {
		return entities.EstimateVersion{}, nil
	}
	var w estimateWire
	if err := json.Unmarshal(obj, &w); err != nil {
		return entities.EstimateVersion{}, decodeError(operation, err)
	}
	v, err := w.toEntity()
	if err != nil {
		return entities.EstimateVersion{}, decodeError(operation, err)
	}
	return v, nil
}

// decodeError reports a 2xx body the adapter cannot read. The call reached the
// authority, but its reply is unusable, so it is reported as a transport fault.
func decodeError(operation string, err error) error {
	return &failures.TransportError{Operation: operation, Err: fmt.Errorf("decode response: %w", err)}
}
