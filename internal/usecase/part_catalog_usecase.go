package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"ev_warranty/internal/domain/entities"
	"ev_warranty/internal/infrastructure/logging"
	"ev_warranty/internal/infrastructure/metrics"
	"ev_warranty/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const defaultCatalogTTL = 5 * time.Minute

// IPartCatalogUseCase resolves part identifiers to catalog entries.

type IPartCatalogUseCase interface {
	ListActive(ctx context.Context) ([]entities.Part, error)
	Lookup(ctx context.Context, partID string) (entities.Part, bool, error)
	Invalidate()
}

// PartCatalogUseCase caches the active catalog for ttl. A failed reload keeps
// serving the previous snapshot when one exists.
type PartCatalogUseCase struct {
	source  interfaces.IPartCatalogSource
	ttl     time.Duration
	logger  *zap.Logger
	metrics *metrics.Metrics
	now     func() time.Time

	mu       sync.RWMutex
	parts    []entities.Part
	byID     map[string]entities.Part
	loadedAt time.Time
}

var _ IPartCatalogUseCase = (*PartCatalogUseCase)(nil)

func NewPartCatalogUseCase(source interfaces.IPartCatalogSource, ttl time.Duration, logger *zap.Logger, m *metrics.Metrics) *PartCatalogUseCase {
	if ttl <= 0 {
		ttl = defaultCatalogTTL
	}
	return &PartCatalogUseCase{
		source:  source,
		ttl:     ttl,
		logger:  logging.OrNop(logger),
		metrics: m,
		now:     time.Now,
	}
}

func (u *PartCatalogUseCase) ListActive(ctx context.Context) ([]entities.Part, error) {
	parts, _, err := u.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Part, len(parts))
	copy(out, parts)
	return out, nil
}

func (u *PartCatalogUseCase) Lookup(ctx context.Context, partID string) (entities.Part, bool, error) {
	partID = strings.ToLower(strings.TrimSpace(partID))
	if partID == "" {
		return entities.Part{}, false, nil
	}
	_, byID, err := u.snapshot(ctx)
	if err != nil {
		return entities.Part{}, false, err
	}
	p, ok := byID[partID]
	return p, ok, nil
}

func (u *PartCatalogUseCase) Invalidate() {
	u.mu.Lock()
	u.loadedAt = time.Time{}
	u.mu.Unlock()
}

func (u *PartCatalogUseCase) snapshot(ctx context.Context) ([]entities.Part, map[string]entities.Part, error) {
	u.mu.RLock()
	if u.fresh() {
		parts, byID := u.parts, u.byID
		u.mu.RUnlock()
		return parts, byID, nil
	}
	u.mu.RUnlock()

	u.mu.Lock()
	defer u.mu.Unlock()

	// Another caller may have reloaded while we waited for the write lock.
	if u.fresh() {
		return u.parts, u.byID, nil
	}

	u.logger.Debug("[catalog][usecase] reload start")
	parts, err := u.source.ListActiveParts(ctx)
	if err != nil {
		u.metrics.CatalogRefresh("error")
		if u.byID != nil {
			u.logger.Warn("[catalog][usecase] reload failed; serving stale snapshot",
				zap.Error(err), zap.Time("loaded_at", u.loadedAt))
			return u.parts, u.byID, nil
		}
		u.logger.Warn("[catalog][usecase] reload failed", zap.Error(err))
		return nil, nil, err
	}

	byID := make(map[string]entities.Part, len(parts))
	for _, p := range parts {
		byID[strings.ToLower(strings.TrimSpace(p.ID))] = p
	}
	u.parts = parts
	u.byID = byID
	u.loadedAt = u.now()
	u.metrics.CatalogRefresh("ok")
	u.logger.Debug("[catalog][usecase] reload success", zap.Int("parts", len(parts)))
	return u.parts, u.byID, nil
}

// fresh must be called with mu held.
func (u *PartCatalogUseCase) fresh() bool {
	return u.byID != nil && !u.loadedAt.IsZero() && u.now().Sub(u.loadedAt) < u.ttl
}
