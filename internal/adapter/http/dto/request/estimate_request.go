package request

import (
	"strings"

	"ev_warranty/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type EstimateItemRequest struct {
	PartID    string         `json:"part_id" binding:"required"`
	PartName  string         `json:"part_name"`
	Quantity  int            `json:"quantity"`
	UnitPrice entities.Money `json:"unit_price"`
}

// EstimateRequest is the body of create, update and totals calls. Quantities,
// labor and the claim are validated by the use case so the error names the field.
type EstimateRequest struct {
	ClaimID    string                `json:"claim_id"`
	Items      []EstimateItemRequest `json:"items" binding:"required,dive"`
	LaborHours decimal.Decimal       `json:"labor_hours" swaggertype:"string" example:"2.5"`
	LaborRate  entities.Money        `json:"labor_rate"`
	Note       string                `json:"note"`
}

func (r EstimateRequest) ToDraft() entities.EstimateDraft {
	items := make([]entities.EstimateLineItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.EstimateLineItem{
			PartID:    strings.TrimSpace(it.PartID),
			PartName:  strings.TrimSpace(it.PartName),
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	return entities.EstimateDraft{
		ClaimID:    strings.TrimSpace(r.ClaimID),
		Items:      items,
		LaborHours: r.LaborHours,
		LaborRate:  r.LaborRate,
		Note:       r.Note,
	}
}

// SessionEstimateRequest submits through a claim session. An empty EstimateID
// creates a new version; the claim defaults to the session's selection.
type SessionEstimateRequest struct {
	EstimateID string `json:"estimate_id"`
	EstimateRequest
}

type SelectionRequest struct {
	ClaimID string `json:"claim_id" binding:"required"`
}

// ShipmentRequest relays a parts shipment arrival to a session. An empty claim
// means the session's selected claim.
type ShipmentRequest struct {
	ClaimID    string `json:"claim_id"`
	ShipmentID string `json:"shipment_id" binding:"required"`
}
