package response

import (
	"time"

	"ev_warranty/internal/domain/entities"
	"ev_warranty/internal/usecase"
)

const currencyVND = "VND"

type LineItemResponse struct {
	PartID    string `json:"part_id"`
	PartName  string `json:"part_name,omitempty"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
	Subtotal  int64  `json:"subtotal"`
}

type TotalsResponse struct {
	PartsSubtotal int64  `json:"parts_subtotal"`
	LaborSubtotal int64  `json:"labor_subtotal"`
	GrandTotal    int64  `json:"grand_total"`
	Currency      string `json:"currency"`
}

type EstimateVersionResponse struct {
	ID         string             `json:"id"`
	ClaimID    string             `json:"claim_id"`
	VersionNo  int                `json:"version_no"`
	Items      []LineItemResponse `json:"items"`
	LaborHours string             `json:"labor_hours"`
	LaborRate  int64              `json:"labor_rate"`
	Note       string             `json:"note"`
	Totals     TotalsResponse     `json:"totals"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

func FromTotals(t entities.Totals) TotalsResponse {
	return TotalsResponse{
		PartsSubtotal: int64(t.PartsSubtotal),
		LaborSubtotal: int64(t.LaborSubtotal),
		GrandTotal:    int64(t.GrandTotal),
		Currency:      currencyVND,
	}
}

func FromEstimateVersion(v entities.EstimateVersion) EstimateVersionResponse {
	items := make([]LineItemResponse, 0, len(v.Items))
	for _, it := range v.Items {
		items = append(items, LineItemResponse{
			PartID:    it.PartID,
			PartName:  it.PartName,
			Quantity:  it.Quantity,
			UnitPrice: int64(it.UnitPrice),
			Subtotal:  int64(it.Subtotal()),
		})
	}
	return EstimateVersionResponse{
		ID:         v.ID,
		ClaimID:    v.ClaimID,
		VersionNo:  v.VersionNo,
		Items:      items,
		LaborHours: v.LaborHours.String(),
		LaborRate:  int64(v.LaborRate),
		Note:       v.Note,
		Totals:     FromTotals(entities.ComputeTotals(v.Items, v.LaborHours, v.LaborRate)),
		CreatedAt:  v.CreatedAt,
		UpdatedAt:  v.UpdatedAt,
	}
}

// FromEstimateVersions keeps the caller's order.
func FromEstimateVersions(vs []entities.EstimateVersion) []EstimateVersionResponse {
	out := make([]EstimateVersionResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromEstimateVersion(v))
	}
	return out
}

type LineDiffResponse struct {
	PartID         string `json:"part_id"`
	QuantityBefore int    `json:"quantity_before"`
	QuantityAfter  int    `json:"quantity_after"`
	Change         string `json:"change"`
}

type DiffResponse struct {
	FromVersion        int                `json:"from_version"`
	ToVersion          int                `json:"to_version"`
	ItemCountDelta     int                `json:"item_count_delta"`
	PartsSubtotalDelta int64              `json:"parts_subtotal_delta"`
	LaborSubtotalDelta int64              `json:"labor_subtotal_delta"`
	GrandTotalDelta    int64              `json:"grand_total_delta"`
	Lines              []LineDiffResponse `json:"lines"`
}

func FromDiff(d entities.Diff) DiffResponse {
	lines := make([]LineDiffResponse, 0, len(d.Lines))
	for _, l := range d.Lines {
		lines = append(lines, LineDiffResponse{
			PartID:         l.PartID,
			QuantityBefore: l.QuantityBefore,
			QuantityAfter:  l.QuantityAfter,
			Change:         string(l.Change),
		})
	}
	return DiffResponse{
		FromVersion:        d.FromVersion,
		ToVersion:          d.ToVersion,
		ItemCountDelta:     d.ItemCountDelta,
		PartsSubtotalDelta: int64(d.PartsSubtotalDelta),
		LaborSubtotalDelta: int64(d.LaborSubtotalDelta),
		GrandTotalDelta:    int64(d.GrandTotalDelta),
		Lines:              lines,
	}
}

type PartResponse struct {
	ID         string `json:"id"`
	PartNumber string `json:"part_number"`
	Name       string `json:"name"`
	UnitPrice  int64  `json:"unit_price"`
}

// AllowedPartsResponse is what the part picker needs: the restriction, the
// parts that survive it, and a warning when the recall lookup failed.
type AllowedPartsResponse struct {
	VIN          string         `json:"vin"`
	Restricted   bool           `json:"restricted"`
	LookupFailed bool           `json:"lookup_failed"`
	Warning      string         `json:"warning,omitempty"`
	PartIDs      []string       `json:"part_ids"`
	PartNames    []string       `json:"part_names"`
	Parts        []PartResponse `json:"parts"`
}

const recallLookupWarning = "Recall information is unavailable; part selection is not restricted"

func FromAllowedParts(vin string, set entities.AllowedPartSet, parts []entities.Part) AllowedPartsResponse {
	out := AllowedPartsResponse{
		VIN:          vin,
		Restricted:   set.Restricted(),
		LookupFailed: set.LookupFailed,
		PartIDs:      set.SortedIDs(),
		PartNames:    set.SortedNames(),
		Parts:        make([]PartResponse, 0, len(parts)),
	}
	if set.LookupFailed {
		out.Warning = recallLookupWarning
	}
	for _, p := range parts {
		out.Parts = append(out.Parts, PartResponse{
			ID:         p.ID,
			PartNumber: p.PartNumber,
			Name:       p.Name,
			UnitPrice:  int64(p.UnitPrice),
		})
	}
	return out
}

type ClaimResponse struct {
	ID     string `json:"id"`
	VIN    string `json:"vin"`
	Status string `json:"status"`
}

type ClaimViewResponse struct {
	Token    uint64                    `json:"token"`
	ClaimID  string                    `json:"claim_id"`
	State    string                    `json:"state"`
	Claim    *ClaimResponse            `json:"claim,omitempty"`
	Allowed  *AllowedPartsResponse     `json:"allowed,omitempty"`
	Versions []EstimateVersionResponse `json:"versions"`
	Latest   *EstimateVersionResponse  `json:"latest,omitempty"`
	Error    string                    `json:"error,omitempty"`
}

func FromClaimView(v usecase.ClaimView) ClaimViewResponse {
	out := ClaimViewResponse{
		Token:    v.Token,
		ClaimID:  v.ClaimID,
		State:    string(v.State),
		Versions: FromEstimateVersions(v.Versions),
		Error:    v.Error,
	}
	if v.Claim.ID != "" {
		out.Claim = &ClaimResponse{ID: v.Claim.ID, VIN: v.Claim.VIN, Status: string(v.Claim.Status)}
	}
	if v.State == usecase.SelectionReady {
		allowed := FromAllowedParts(v.Claim.VIN, v.Allowed, v.Parts)
		out.Allowed = &allowed
	}
	if v.Latest != nil {
		latest := FromEstimateVersion(*v.Latest)
		out.Latest = &latest
	}
	return out
}

type SelectionAcceptedResponse struct {
	SessionID string `json:"session_id"`
	ClaimID   string `json:"claim_id"`
	Token     uint64 `json:"token"`
}
