package remote

import (
	"context"
	"encoding/json"
	"net/http"

	"ev_warranty/internal/domain/entities"
	"ev_warranty/internal/usecase/interfaces"
)

type PartCatalogSource struct {
	client *Client
}

var _ interfaces.IPartCatalogSource = (*PartCatalogSource)(nil)

func NewPartCatalogSource(client *Client) *PartCatalogSource {
	return &PartCatalogSource{client: client}
}

func (s *PartCatalogSource) ListActiveParts(ctx context.Context) ([]entities.Part, error) {
	raw, err := s.client.do(ctx, "list_parts", http.MethodGet, "/parts/get-active", nil)
	if err != nil {
		return nil, err
	}
	elems, err := unwrapList(raw)
	if err != nil {
		return nil, decodeError("list_parts", err)
	}
	out := make([]entities.Part, 0, len(elems))
	for _, e := range elems {
		var w partWire
		if err := json.Unmarshal(e, &w); err != nil {
			return nil, decodeError("list_parts", err)
		}
		p := w.toEntity()
		if p.ID == "" {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}
