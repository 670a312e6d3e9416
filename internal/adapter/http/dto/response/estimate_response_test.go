package response

import (
	"testing"
	"time"

	"ev_warranty/internal/domain/entities"
	"ev_warranty/internal/usecase"

	"github.com/shopspring/decimal"
)

func TestFromEstimateVersion(t *testing.T) {
	now := time.Now().UTC()
	v := entities.EstimateVersion{
		ID:         "est-1",
		ClaimID:    "claim-1",
		VersionNo:  2,
		Items:      []entities.EstimateLineItem{{PartID: "p1", Quantity: 2, UnitPrice: 150000}},
		LaborHours: decimal.RequireFromString("1.5"),
		LaborRate:  100000,
		Totals:     entities.Totals{GrandTotal: 1},
		CreatedAt:  now,
	}

	res := FromEstimateVersion(v)
	if res.ID != "est-1" || res.VersionNo != 2 || res.LaborHours != "1.5" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if len(res.Items) != 1 || res.Items[0].Subtotal != 300000 {
		t.Fatalf("unexpected items: %+v", res.Items)
	}
	if res.Totals.GrandTotal != 450000 || res.Totals.Currency != "VND" {
		t.Fatalf("expected recomputed totals, got %+v", res.Totals)
	}
}

func TestFromAllowedParts(t *testing.T) {
	set := entities.NewAllowedPartSet()
	set.AddName("Brake")
	res := FromAllowedParts("VIN001", set, []entities.Part{{ID: "p1", Name: "Brake Pad", UnitPrice: 10}})
	if !res.Restricted || res.Warning != "" || len(res.Parts) != 1 || res.PartNames[0] != "brake" {
		t.Fatalf("unexpected response: %+v", res)
	}

	degraded := FromAllowedParts("VIN001", entities.AllowedPartSet{LookupFailed: true}, nil)
	if degraded.Restricted || degraded.Warning == "" {
		t.Fatalf("expected a warning for a degraded lookup: %+v", degraded)
	}
}

func TestFromClaimView(t *testing.T) {
	latest := entities.EstimateVersion{ID: "v1", VersionNo: 1}
	res := FromClaimView(usecase.ClaimView{
		Token:    3,
		ClaimID:  "claim-1",
		State:    usecase.SelectionReady,
		Claim:    entities.Claim{ID: "claim-1", VIN: "VIN001", Status: entities.ClaimStatusEstimating},
		Versions: []entities.EstimateVersion{latest},
		Latest:   &latest,
	})
	if res.Claim == nil || res.Claim.VIN != "VIN001" || res.Allowed == nil || res.Latest == nil {
		t.Fatalf("unexpected view: %+v", res)
	}

	loading := FromClaimView(usecase.ClaimView{Token: 4, ClaimID: "claim-2", State: usecase.SelectionLoading})
	if loading.Claim != nil || loading.Allowed != nil || loading.Versions == nil {
		t.Fatalf("unexpected loading view: %+v", loading)
	}
}

func TestFromDiff(t *testing.T) {
	res := FromDiff(entities.Diff{
		FromVersion: 1, ToVersion: 2, GrandTotalDelta: -5,
		Lines: []entities.LineDiff{{PartID: "p1", QuantityAfter: 1, Change: entities.LineAdded}},
	})
	if res.GrandTotalDelta != -5 || len(res.Lines) != 1 || res.Lines[0].Change != "added" {
		t.Fatalf("unexpected diff: %+v", res)
	}
}
