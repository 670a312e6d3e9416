package remote

import (
	"encoding/json"
	"strings"
	"time"

	"ev_warranty/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// The authority mixes camelCase and snake_case field names across endpoints
// and releases. Each wire struct carries both spellings and the to* functions
// pick the first populated one.

type partWire struct {
	ID             string          `json:"id"`
	PartID         string          `json:"partId"`
	PartNumber     string          `json:"partNumber"`
	PartNumberAlt  string          `json:"part_number"`
	Name           string          `json:"name"`
	PartName       string          `json:"partName"`
	UnitPrice      decimal.Decimal `json:"unitPrice"`
	UnitPriceSnake decimal.Decimal `json:"unit_price"`
	Price          decimal.Decimal `json:"price"`
}

func (w partWire) toEntity() entities.Part {
	return entities.Part{
		ID:         strings.TrimSpace(firstNonEmpty(w.ID, w.PartID)),
		PartNumber: strings.TrimSpace(firstNonEmpty(w.PartNumber, w.PartNumberAlt)),
		Name:       strings.TrimSpace(firstNonEmpty(w.Name, w.PartName)),
		UnitPrice:  entities.MoneyFromDecimal(firstNonZero(w.UnitPrice, w.UnitPriceSnake, w.Price)),
	}
}

type claimWire struct {
	ID      string `json:"id"`
	ClaimID string `json:"claimId"`
	VIN     string `json:"vin"`
	Status  string `json:"status"`
	Vehicle *struct {
		VIN string `json:"vin"`
	} `json:"vehicle"`
}

func (w claimWire) toEntity() entities.Claim {
	vin := w.VIN
	if vin == "" && w.Vehicle != nil {
		vin = w.Vehicle.VIN
	}
	return entities.Claim{
		ID:     strings.TrimSpace(firstNonEmpty(w.ID, w.ClaimID)),
		VIN:    strings.TrimSpace(vin),
		Status: entities.ClaimStatus(strings.ToUpper(strings.TrimSpace(w.Status))),
	}
}

type lineItemWire struct {
	PartID         string          `json:"partId"`
	PartIDSnake    string          `json:"part_id"`
	PartName       string          `json:"partName"`
	PartNameSnake  string          `json:"part_name"`
	Quantity       decimal.Decimal `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unitPrice"`
	UnitPriceSnake decimal.Decimal `json:"unit_price"`
	Price          decimal.Decimal `json:"price"`
}

func (w lineItemWire) toEntity() entities.EstimateLineItem {
	return entities.EstimateLineItem{
		PartID:    strings.TrimSpace(firstNonEmpty(w.PartID, w.PartIDSnake)),
		PartName:  strings.TrimSpace(firstNonEmpty(w.PartName, w.PartNameSnake)),
		Quantity:  int(w.Quantity.IntPart()),
		UnitPrice: entities.MoneyFromDecimal(firstNonZero(w.UnitPrice, w.UnitPriceSnake, w.Price)),
	}
}

type estimateWire struct {
	ID             string          `json:"id"`
	EstimateID     string          `json:"estimateId"`
	ClaimID        string          `json:"claimId"`
	ClaimIDSnake   string          `json:"claim_id"`
	VersionNo      int             `json:"versionNo"`
	VersionNoSnake int             `json:"version_no"`
	ItemsJSON      json.RawMessage `json:"itemsJson"`
	Items          json.RawMessage `json:"items"`
	LaborSlots     decimal.Decimal `json:"laborSlots"`
	LaborHours     decimal.Decimal `json:"laborHours"`
	LaborRateVND   decimal.Decimal `json:"laborRateVND"`
	LaborRate      decimal.Decimal `json:"laborRate"`
	Note           string          `json:"note"`
	CreatedAt      string          `json:"createdAt"`
	CreatedAtSnake string          `json:"created_at"`
	UpdatedAt      string          `json:"updatedAt"`
	UpdatedAtSnake string          `json:"updated_at"`
}

func (w estimateWire) toEntity() (entities.EstimateVersion, error) {
	var items []lineItemWire
	raw := w.ItemsJSON
	if len(raw) == 0 || string(raw) == "null" {
		raw = w.Items
	}
	if err := decodeEmbedded(raw, &items); err != nil {
		return entities.EstimateVersion{}, err
	}

	v := entities.EstimateVersion{
		ID:         strings.TrimSpace(firstNonEmpty(w.ID, w.EstimateID)),
		ClaimID:    strings.TrimSpace(firstNonEmpty(w.ClaimID, w.ClaimIDSnake)),
		VersionNo:  w.VersionNo,
		Items:      make([]entities.EstimateLineItem, 0, len(items)),
		LaborHours: firstNonZero(w.LaborSlots, w.LaborHours),
		LaborRate:  entities.MoneyFromDecimal(firstNonZero(w.LaborRateVND, w.LaborRate)),
		Note:       w.Note,
		CreatedAt:  parseTime(firstNonEmpty(w.CreatedAt, w.CreatedAtSnake)),
		UpdatedAt:  parseTime(firstNonEmpty(w.UpdatedAt, w.UpdatedAtSnake)),
	}
	if v.VersionNo == 0 {
		v.VersionNo = w.VersionNoSnake
	}
	for _, it := range items {
		v.Items = append(v.Items, it.toEntity())
	}
	return v.WithTotals(), nil
}

// estimateBody is the create/update request payload.
type estimateBody struct {
	ClaimID      string          `json:"claim_id"`
	ItemsJSON    []itemBody      `json:"itemsJson"`
	LaborSlots   decimal.Decimal `json:"laborSlots"`
	LaborRateVND entities.Money  `json:"laborRateVND"`
	Note         string          `json:"note"`
}

type itemBody struct {
	PartID   string `json:"partId"`
	Quantity int    `json:"quantity"`
}

func newEstimateBody(d entities.EstimateDraft) estimateBody {
	items := make([]itemBody, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, itemBody{PartID: it.PartID, Quantity: it.Quantity})
	}
	return estimateBody{
		ClaimID:      d.ClaimID,
		ItemsJSON:    items,
		LaborSlots:   d.LaborHours,
		LaborRateVND: d.LaborRate,
		Note:         d.Note,
	}
}

type recallEventWire struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Title             string          `json:"title"`
	Reason            string          `json:"reason"`
	StartDate         string          `json:"startDate"`
	StartsAt          string          `json:"startsAt"`
	EndDate           string          `json:"endDate"`
	EndsAt            string          `json:"endsAt"`
	AffectedParts     json.RawMessage `json:"affectedParts"`
	AffectedPartsJSON string          `json:"affectedPartsJson"`
	AffectedPartsOld  json.RawMessage `json:"affected_parts"`
	Exclusions        json.RawMessage `json:"exclusions"`
	ModelRanges       json.RawMessage `json:"modelRanges"`
}

type modelRangeWire struct {
	ModelCode    string `json:"modelCode"`
	ProducedFrom string `json:"producedFrom"`
	ProducedTo   string `json:"producedTo"`
}

func (w recallEventWire) toEntity() entities.RecallEvent {
	e := entities.RecallEvent{
		ID:            strings.TrimSpace(w.ID),
		Name:          strings.TrimSpace(firstNonEmpty(w.Name, w.Title)),
		Reason:        w.Reason,
		StartsAt:      parseTime(firstNonEmpty(w.StartsAt, w.StartDate)),
		EndsAt:        parseTimePtr(firstNonEmpty(w.EndsAt, w.EndDate)),
		AffectedParts: w.affectedParts(),
	}

	var codes []string
	if decodeEmbedded(w.Exclusions, &codes) == nil {
		for _, c := range codes {
			code := entities.ExclusionCode(strings.ToUpper(strings.TrimSpace(c)))
			if code.Valid() {
				e.Exclusions = append(e.Exclusions, code)
			}
		}
	}

	var ranges []modelRangeWire
	if decodeEmbedded(w.ModelRanges, &ranges) == nil {
		for _, r := range ranges {
			e.ModelRanges = append(e.ModelRanges, entities.ModelRange{
				ModelCode:    strings.TrimSpace(r.ModelCode),
				ProducedFrom: parseTimePtr(r.ProducedFrom),
				ProducedTo:   parseTimePtr(r.ProducedTo),
			})
		}
	}
	return e
}

// affectedParts takes the first non-empty source in priority order: the
// structured array, the JSON-encoded string, then the legacy snake_case field.
// A source that fails to decode counts as empty.
func (w recallEventWire) affectedParts() []entities.PartReference {
	sources := []json.RawMessage{w.AffectedParts, nil, w.AffectedPartsOld}
	if strings.TrimSpace(w.AffectedPartsJSON) != "" {
		sources[1] = json.RawMessage(w.AffectedPartsJSON)
	}
	for _, src := range sources {
		var entries []json.RawMessage
		if err := decodeEmbedded(src, &entries); err != nil || len(entries) == 0 {
			continue
		}
		refs := make([]entities.PartReference, 0, len(entries))
		for _, raw := range entries {
			if ref, ok := parseAffectedPart(raw); ok {
				refs = append(refs, ref)
			}
		}
		if len(refs) > 0 {
			return refs
		}
	}
	return nil
}

// parseAffectedPart accepts a bare string token or an object carrying an id
// and/or a name. A UUID id wins over a name.
func parseAffectedPart(raw json.RawMessage) (entities.PartReference, bool) {
	var token string
	if json.Unmarshal(raw, &token) == nil {
		return entities.ParsePartReference(token)
	}
	var obj struct {
		ID       string `json:"id"`
		PartID   string `json:"partId"`
		Name     string `json:"name"`
		PartName string `json:"partName"`
	}
	if json.Unmarshal(raw, &obj) != nil {
		return entities.PartReference{}, false
	}
	if ref, ok := entities.ParsePartReference(firstNonEmpty(obj.ID, obj.PartID)); ok && ref.Kind == entities.PartReferenceByID {
		return ref, true
	}
	return entities.ParsePartReference(firstNonEmpty(obj.Name, obj.PartName))
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseTime returns the zero time for blank or unparseable input. Zone-less
// timestamps are read as UTC.
func parseTime(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}

func parseTimePtr(s string) *time.Time {
	t := parseTime(s)
	if t.IsZero() {
		return nil
	}
	return &t
}

func firstNonZero(values ...decimal.Decimal) decimal.Decimal {
	for _, v := range values {
		if !v.IsZero() {
			return v
		}
	}
	return decimal.Zero
}
