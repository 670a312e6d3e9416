package entities

import "time"

// ExclusionCode names a condition under which a recall does not cover the vehicle.
type ExclusionCode string

const (
	ExclusionAccidentDamage    ExclusionCode = "ACCIDENT_DAMAGE"
	ExclusionWaterIngression   ExclusionCode = "WATER_INGRESSION"
	ExclusionUnauthorizedMod   ExclusionCode = "UNAUTHORIZED_MOD"
	ExclusionLackOfMaintenance ExclusionCode = "LACK_OF_MAINTENANCE"
	ExclusionWearAndTear       ExclusionCode = "WEAR_AND_TEAR"
)

var knownExclusions = map[ExclusionCode]struct{}{
	ExclusionAccidentDamage:    {},
	ExclusionWaterIngression:   {},
	ExclusionUnauthorizedMod:   {},
	ExclusionLackOfMaintenance: {},
	ExclusionWearAndTear:       {},
}

func (c ExclusionCode) Valid() bool {
	_, ok := knownExclusions[c]
	return ok
}

// ModelRange scopes a recall to a model code produced inside a date window.
type ModelRange struct {
	ModelCode    string     `json:"model_code"`
	ProducedFrom *time.Time `json:"produced_from,omitempty"`
	ProducedTo   *time.Time `json:"produced_to,omitempty"`
}

// RecallEvent is read-only from the estimate workflow's point of view.
//
// EndsAt nil means the recall is open-ended.
type RecallEvent struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Reason        string          `json:"reason"`
	StartsAt      time.Time       `json:"starts_at"`
	EndsAt        *time.Time      `json:"ends_at,omitempty"`
	AffectedParts []PartReference `json:"affected_parts"`
	Exclusions    []ExclusionCode `json:"exclusions,omitempty"`
	ModelRanges   []ModelRange    `json:"model_ranges,omitempty"`
}

// Active reports whether at falls inside the validity window.
func (e RecallEvent) Active(at time.Time) bool {
	if !e.StartsAt.IsZero() && at.Before(e.StartsAt) {
		return false
	}
	if e.EndsAt != nil && at.After(*e.EndsAt) {
		return false
	}
	return true
}
