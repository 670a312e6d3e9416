package entities

type LineChange string

const (
	LineAdded   LineChange = "added"
	LineRemoved LineChange = "removed"
	LineChanged LineChange = "changed"
)

// LineDiff describes how one part's quantity moved between two versions.
type LineDiff struct {
	PartID         string     `json:"part_id"`
	QuantityBefore int        `json:"quantity_before"`
	QuantityAfter  int        `json:"quantity_after"`
	Change         LineChange `json:"change"`
}

// Diff is presentational only. Deltas are "to" minus "from".
type Diff struct {
	FromVersion        int        `json:"from_version"`
	ToVersion          int        `json:"to_version"`
	ItemCountDelta     int        `json:"item_count_delta"`
	PartsSubtotalDelta Money      `json:"parts_subtotal_delta"`
	LaborSubtotalDelta Money      `json:"labor_subtotal_delta"`
	GrandTotalDelta    Money      `json:"grand_total_delta"`
	Lines              []LineDiff `json:"lines"`
}

// Compare diffs two versions, recomputing both sides' totals first.
func Compare(a, b EstimateVersion) Diff {
	ta := ComputeTotals(a.Items, a.LaborHours, a.LaborRate)
	tb := ComputeTotals(b.Items, b.LaborHours, b.LaborRate)

	return Diff{
		FromVersion:        a.VersionNo,
		ToVersion:          b.VersionNo,
		ItemCountDelta:     len(b.Items) - len(a.Items),
		PartsSubtotalDelta: tb.PartsSubtotal - ta.PartsSubtotal,
		LaborSubtotalDelta: tb.LaborSubtotal - ta.LaborSubtotal,
		GrandTotalDelta:    tb.GrandTotal - ta.GrandTotal,
		Lines:              diffLines(a.Items, b.Items),
	}
}

func diffLines(from, to []EstimateLineItem) []LineDiff {
	before := quantitiesByPart(from)
	after := quantitiesByPart(to)

	ids := make(map[string]struct{}, len(before)+len(after))
	for id := range before {
		ids[id] = struct{}{}
	}
	for id := range after {
		ids[id] = struct{}{}
	}

	lines := make([]LineDiff, 0)
	for _, id := range sortedKeys(ids) {
		qb, inBefore := before[id]
		qa, inAfter := after[id]
		switch {
		case !inBefore:
			lines = append(lines, LineDiff{PartID: id, QuantityAfter: qa, Change: LineAdded})
		case !inAfter:
			lines = append(lines, LineDiff{PartID: id, QuantityBefore: qb, Change: LineRemoved})
		case qa != qb:
			lines = append(lines, LineDiff{PartID: id, QuantityBefore: qb, QuantityAfter: qa, Change: LineChanged})
		}
	}
	return lines
}

func quantitiesByPart(items []EstimateLineItem) map[string]int {
	out := make(map[string]int, len(items))
	for _, it := range items {
		out[it.PartID] += it.Quantity
	}
	return out
}
