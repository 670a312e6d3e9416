package entities

import (
	"strings"

	"github.com/google/uuid"
)

// Part is catalog reference data. It is never modified by the estimate workflow.
type Part struct {
	ID         string `json:"id"`
	PartNumber string `json:"part_number"`
	Name       string `json:"name"`
	UnitPrice  Money  `json:"unit_price"`
}

// PartReferenceKind tells how a recall event points at a part.
type PartReferenceKind string

const (
	PartReferenceByID   PartReferenceKind = "id"
	PartReferenceByName PartReferenceKind = "name"
)

// PartReference is either a catalog identifier or a free-text part name.
//
// The kind is decided once, when the reference is parsed from upstream data.
type PartReference struct {
	Kind  PartReferenceKind `json:"kind"`
	Value string            `json:"value"`
}

func ByID(id string) PartReference {
	return PartReference{Kind: PartReferenceByID, Value: strings.TrimSpace(id)}
}

func ByName(name string) PartReference {
	return PartReference{Kind: PartReferenceByName, Value: strings.TrimSpace(name)}
}

// ParsePartReference classifies a raw affected-part token. UUID-shaped tokens are
// catalog identifiers; anything else is a name. Returns false for blank tokens.
func ParsePartReference(raw string) (PartReference, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return PartReference{}, false
	}
	if _, err := uuid.Parse(raw); err == nil && len(raw) == 36 {
		return ByID(strings.ToLower(raw)), true
	}
	return ByName(raw), true
}

// AllowedPartSet is the set of parts a recall restricts selection to.
// Names are stored lowercased. An empty set means selection is unrestricted.
type AllowedPartSet struct {
	IDs   map[string]struct{} `json:"-"`
	Names map[string]struct{} `json:"-"`

	// LookupFailed is set when the recall source could not be queried and the
	// set degraded to unrestricted.
	LookupFailed bool `json:"lookup_failed"`
}

func NewAllowedPartSet() AllowedPartSet {
	return AllowedPartSet{IDs: map[string]struct{}{}, Names: map[string]struct{}{}}
}

func (s *AllowedPartSet) AddID(id string) {
	id = strings.ToLower(strings.TrimSpace(id))
	if id == "" {
		return
	}
	if s.IDs == nil {
		s.IDs = map[string]struct{}{}
	}
	s.IDs[id] = struct{}{}
}

func (s *AllowedPartSet) AddName(name string) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return
	}
	if s.Names == nil {
		s.Names = map[string]struct{}{}
	}
	s.Names[name] = struct{}{}
}

// Restricted reports whether any recall restriction applies.
func (s AllowedPartSet) Restricted() bool {
	return len(s.IDs) > 0 || len(s.Names) > 0
}

// Allows applies the recall filtering rule to one catalog part: identifier
// membership, or a bidirectional substring match between the part's lowercased
// name or part number and any allowed name.
func (s AllowedPartSet) Allows(p Part) bool {
	if !s.Restricted() {
		return true
	}
	if _, ok := s.IDs[strings.ToLower(strings.TrimSpace(p.ID))]; ok {
		return true
	}
	for _, field := range []string{p.Name, p.PartNumber} {
		field = strings.ToLower(strings.TrimSpace(field))
		if field == "" {
			continue
		}
		for name := range s.Names {
			if strings.Contains(field, name) || strings.Contains(name, field) {
				return true
			}
		}
	}
	return false
}

// SortedIDs and SortedNames give a stable view for responses and tests.
func (s AllowedPartSet) SortedIDs() []string {
	return sortedKeys(s.IDs)
}

func (s AllowedPartSet) SortedNames() []string {
	return sortedKeys(s.Names)
}

// FilterParts keeps the catalog parts allowed by s, preserving catalog order.
func FilterParts(parts []Part, s AllowedPartSet) []Part {
	out := make([]Part, 0, len(parts))
	for _, p := range parts {
		if s.Allows(p) {
			out = append(out, p)
		}
	}
	return out
}
