package entities

import (
	"fmt"
	"sort"
	"time"

	"ev_warranty/internal/domain/failures"

	"github.com/shopspring/decimal"
)

const amountOutOfRange = "amount exceeds the supported range"

// EstimateLineItem is one costed part on an estimate.
//
// UnitPrice is the price captured when the part was selected. It is never
// repriced from the live catalog.
type EstimateLineItem struct {
	PartID    string `json:"part_id"`
	PartName  string `json:"part_name,omitempty"`
	Quantity  int    `json:"quantity"`
	UnitPrice Money  `json:"unit_price"`
}

// Subtotal is quantity × unit price, clamped to the Money range.
func (i EstimateLineItem) Subtotal() Money {
	s, _ := i.UnitPrice.Times(i.Quantity)
	return s
}

// Totals are always derived from the items and labor fields.
type Totals struct {
	PartsSubtotal Money `json:"parts_subtotal"`
	LaborSubtotal Money `json:"labor_subtotal"`
	GrandTotal    Money `json:"grand_total"`
}

// EstimateVersion is a costed quote for a claim.
//
// Domain notes:
//   - VersionNo and CreatedAt are assigned by the authority, never by this service.
//   - Totals are recomputed on every read and write; a stored total is not trusted.
//   - The pre-repair / post-repair convention lives in callers; the store has no cap.
type EstimateVersion struct {
	ID         string             `json:"id"`
	ClaimID    string             `json:"claim_id"`
	VersionNo  int                `json:"version_no"`
	Items      []EstimateLineItem `json:"items"`
	LaborHours decimal.Decimal    `json:"labor_hours"`
	LaborRate  Money              `json:"labor_rate"`
	Note       string             `json:"note"`
	Totals     Totals             `json:"totals"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

// WithTotals returns a copy of v with totals recomputed from its fields.
func (v EstimateVersion) WithTotals() EstimateVersion {
	v.Totals = ComputeTotals(v.Items, v.LaborHours, v.LaborRate)
	return v
}

// ComputeTotals prices a list of line items plus labor.
//
// Parts are summed in integer minor units. Labor is hours × rate in decimal,
// rounded half away from zero to a whole minor unit. Amounts that leave the
// Money range are clamped, so adding a positive line never lowers a total.
func ComputeTotals(items []EstimateLineItem, laborHours decimal.Decimal, laborRate Money) Totals {
	t, _ := sumTotals(items, laborHours, laborRate)
	return t
}

// ComputeTotalsChecked is ComputeTotals failing with a ValidationError that
// names the first amount outside the Money range.
func ComputeTotalsChecked(items []EstimateLineItem, laborHours decimal.Decimal, laborRate Money) (Totals, error) {
	t, field := sumTotals(items, laborHours, laborRate)
	if field != "" {
		return Totals{}, failures.Validation(field, amountOutOfRange)
	}
	return t, nil
}

func sumTotals(items []EstimateLineItem, laborHours decimal.Decimal, laborRate Money) (Totals, string) {
	var (
		t        Totals
		overflow string
		ok       bool
	)
	flag := func(field string) {
		if overflow == "" {
			overflow = field
		}
	}
	for i, it := range items {
		sub, fits := it.UnitPrice.Times(it.Quantity)
		if !fits {
			flag(fmt.Sprintf("items[%d]", i))
		}
		if t.PartsSubtotal, ok = t.PartsSubtotal.Plus(sub); !ok {
			flag(fmt.Sprintf("items[%d]", i))
		}
	}
	if t.LaborSubtotal, ok = MoneyFromDecimalChecked(laborHours.Mul(laborRate.Decimal())); !ok {
		flag("labor_hours")
	}
	if t.GrandTotal, ok = t.PartsSubtotal.Plus(t.LaborSubtotal); !ok {
		flag("totals")
	}
	return t, overflow
}

// LatestVersion picks the version with the greatest CreatedAt, breaking ties by
// the greatest VersionNo. Returns nil for an empty list.
func LatestVersion(versions []EstimateVersion) *EstimateVersion {
	if len(versions) == 0 {
		return nil
	}
	latest := versions[0]
	for _, v := range versions[1:] {
		if v.CreatedAt.After(latest.CreatedAt) ||
			(v.CreatedAt.Equal(latest.CreatedAt) && v.VersionNo > latest.VersionNo) {
			latest = v
		}
	}
	return &latest
}

// SortByVersionNo orders versions ascending for display.
func SortByVersionNo(versions []EstimateVersion) {
	sort.SliceStable(versions, func(i, j int) bool {
		return versions[i].VersionNo < versions[j].VersionNo
	})
}

// EstimateDraft is the mutable part of a version, as submitted for create or update.
type EstimateDraft struct {
	ClaimID    string             `json:"claim_id"`
	Items      []EstimateLineItem `json:"items"`
	LaborHours decimal.Decimal    `json:"labor_hours"`
	LaborRate  Money              `json:"labor_rate"`
	Note       string             `json:"note"`
}
