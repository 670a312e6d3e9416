package remote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"ev_warranty/internal/domain/entities"
	"ev_warranty/internal/domain/failures"
	"ev_warranty/internal/usecase/interfaces"
)

type RecallEventSource struct {
	client *Client
}

var _ interfaces.IRecallEventSource = (*RecallEventSource)(nil)

func NewRecallEventSource(client *Client) *RecallEventSource {
	return &RecallEventSource{client: client}
}

// CheckByVIN returns the recall events the authority reports for vin. The
// reply is either {"events": [...]} or one of the usual list envelopes.
func (s *RecallEventSource) CheckByVIN(ctx context.Context, vin string) ([]entities.RecallEvent, error) {
	path := "/events/recall/check?vin=" + url.QueryEscape(vin)
	raw, err := s.client.do(ctx, "recall_check", http.MethodGet, path, nil)
	if errors.Is(err, failures.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	elems, err := unwrapList(raw, "events")
	if err != nil {
		return nil, decodeError("recall_check", err)
	}
	out := make([]entities.RecallEvent, 0, len(elems))
	for _, e := range elems {
		var w recallEventWire
		if err := json.Unmarshal(e, &w); err != nil {
			return nil, decodeError("recall_check", err)
		}
		out = append(out, w.toEntity())
	}
	return out, nil
}
