package usecase

import (
	"context"
	"strings"

	"ev_warranty/internal/domain/entities"
	"ev_warranty/internal/infrastructure/logging"
	"ev_warranty/internal/infrastructure/metrics"
	"ev_warranty/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// IRecallConstraintUseCase derives the parts a recall restricts selection to.
//
// Lookup failures never surface as errors: the set degrades to unrestricted
// and LookupFailed tells the UI to show a non-blocking warning.

type IRecallConstraintUseCase interface {
	ResolveAllowedParts(ctx context.Context, vin string) entities.AllowedPartSet
	AllowedCatalog(ctx context.Context, vin string) (entities.AllowedPartSet, []entities.Part, error)
}

type RecallConstraintUseCase struct {
	events  interfaces.IRecallEventSource
	catalog IPartCatalogUseCase
	logger  *zap.Logger
	metrics *metrics.Metrics
}

var _ IRecallConstraintUseCase = (*RecallConstraintUseCase)(nil)

func NewRecallConstraintUseCase(events interfaces.IRecallEventSource, catalog IPartCatalogUseCase, logger *zap.Logger, m *metrics.Metrics) *RecallConstraintUseCase {
	return &RecallConstraintUseCase{events: events, catalog: catalog, logger: logging.OrNop(logger), metrics: m}
}

func (u *RecallConstraintUseCase) ResolveAllowedParts(ctx context.Context, vin string) entities.AllowedPartSet {
	allowed := entities.NewAllowedPartSet()
	vin = strings.TrimSpace(vin)
	if vin == "" {
		return allowed
	}

	events, err := u.events.CheckByVIN(ctx, vin)
	if err != nil {
		u.logger.Warn("[recall][usecase] recall lookup failed; selection left unrestricted",
			zap.String("vin", vin), zap.Error(err))
		u.metrics.RecallLookup("degraded")
		allowed.LookupFailed = true
		return allowed
	}

	var catalogDown bool
	for _, ev := range events {
		for _, ref := range ev.AffectedParts {
			switch ref.Kind {
			case entities.PartReferenceByID:
				allowed.AddID(ref.Value)
				if catalogDown || u.catalog == nil {
					continue
				}
				part, ok, err := u.catalog.Lookup(ctx, ref.Value)
				if err != nil {
					// Identifiers still restrict selection without their names.
					u.logger.Warn("[recall][usecase] catalog unavailable; ids not resolved to names",
						zap.String("vin", vin), zap.Error(err))
					catalogDown = true
					continue
				}
				if ok {
					allowed.AddName(part.Name)
				}
			case entities.PartReferenceByName:
				allowed.AddName(ref.Value)
			}
		}
	}

	result := "unrestricted"
	if allowed.Restricted() {
		result = "restricted"
	}
	u.metrics.RecallLookup(result)
	u.logger.Debug("[recall][usecase] resolved allowed parts",
		zap.String("vin", vin),
		zap.Int("events", len(events)),
		zap.Int("ids", len(allowed.IDs)),
		zap.Int("names", len(allowed.Names)))
	return allowed
}

// AllowedCatalog resolves the allowed set and filters the active catalog with it.
func (u *RecallConstraintUseCase) AllowedCatalog(ctx context.Context, vin string) (entities.AllowedPartSet, []entities.Part, error) {
	allowed := u.ResolveAllowedParts(ctx, vin)
	parts, err := u.catalog.ListActive(ctx)
	if err != nil {
		return allowed, nil, err
	}
	return allowed, entities.FilterParts(parts, allowed), nil
}
