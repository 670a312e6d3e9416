package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ev_warranty/internal/domain/entities"
	"ev_warranty/internal/domain/failures"
	"ev_warranty/internal/infrastructure/logging"
	"ev_warranty/internal/infrastructure/metrics"
	"ev_warranty/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrEstimateNotFound = fmt.Errorf("estimate %w", failures.ErrNotFound)
	ErrClaimNotFound    = fmt.Errorf("claim %w", failures.ErrNotFound)

	errEmptyAuthorityResponse = errors.New("authority returned no estimate")
)

// IEstimateUseCase is the estimate version store.
//
// Mutations are proxied to the authority after client-side pre-validation:
//   - Create / Update => ValidationError, ConstraintError, then the authority
//   - GetByClaim      => unordered list
//   - GetLatest       => max created_at, ties broken by max version_no
//   - GetVersion      => nil when the version does not exist

type IEstimateUseCase interface {
	CalculateTotals(items []entities.EstimateLineItem, laborHours decimal.Decimal, laborRate entities.Money) (entities.Totals, error)
	Create(ctx context.Context, draft entities.EstimateDraft) (entities.EstimateVersion, error)
	Update(ctx context.Context, versionID string, draft entities.EstimateDraft) (entities.EstimateVersion, error)
	GetByClaim(ctx context.Context, claimID string) ([]entities.EstimateVersion, error)
	GetLatest(ctx context.Context, claimID string) (*entities.EstimateVersion, error)
	GetVersion(ctx context.Context, claimID string, versionNo int) (*entities.EstimateVersion, error)
	Compare(ctx context.Context, claimID string, fromVersion, toVersion int) (entities.Diff, error)
}

type EstimateUseCase struct {
	authority interfaces.IEstimateAuthority
	claims    interfaces.IClaimSource
	recall    IRecallConstraintUseCase
	catalog   IPartCatalogUseCase
	logger    *zap.Logger
	metrics   *metrics.Metrics
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(
	authority interfaces.IEstimateAuthority,
	claims interfaces.IClaimSource,
	recall IRecallConstraintUseCase,
	catalog IPartCatalogUseCase,
	logger *zap.Logger,
	m *metrics.Metrics,
) *EstimateUseCase {
	return &EstimateUseCase{
		authority: authority,
		claims:    claims,
		recall:    recall,
		catalog:   catalog,
		logger:    logging.OrNop(logger),
		metrics:   m,
	}
}

func (u *EstimateUseCase) CalculateTotals(items []entities.EstimateLineItem, laborHours decimal.Decimal, laborRate entities.Money) (entities.Totals, error) {
	return entities.ComputeTotalsChecked(items, laborHours, laborRate)
}

func (u *EstimateUseCase) Create(ctx context.Context, draft entities.EstimateDraft) (entities.EstimateVersion, error) {
	draft, err := normalizeDraft(draft)
	if err != nil {
		u.metrics.EstimateSubmission("create", "invalid")
		u.logger.Info("[estimate][usecase] create rejected", zap.String("claim_id", draft.ClaimID), zap.Error(err))
		return entities.EstimateVersion{}, err
	}
	if err := u.checkRecallConstraint(ctx, draft); err != nil {
		u.metrics.EstimateSubmission("create", outcomeOf(err))
		return entities.EstimateVersion{}, err
	}

	u.logger.Info("[estimate][usecase] create start", zap.String("claim_id", draft.ClaimID), zap.Int("items", len(draft.Items)))
	created, err := u.authority.Create(ctx, draft)
	if err == nil && created.ID == "" {
		err = &failures.TransportError{Operation: "create estimate", Err: errEmptyAuthorityResponse}
	}
	if err != nil {
		u.metrics.EstimateSubmission("create", outcomeOf(err))
		u.logger.Warn("[estimate][usecase] create failed", zap.String("claim_id", draft.ClaimID), zap.Error(err))
		u.refreshCatalogOnRejection(err)
		return entities.EstimateVersion{}, err
	}
	created = created.WithTotals()
	u.metrics.EstimateSubmission("create", "ok")
	u.logger.Info("[estimate][usecase] create success",
		zap.String("claim_id", created.ClaimID),
		zap.String("estimate_id", created.ID),
		zap.Int("version_no", created.VersionNo),
		zap.Int64("grand_total", int64(created.Totals.GrandTotal)))
	return created, nil
}

func (u *EstimateUseCase) Update(ctx context.Context, versionID string, draft entities.EstimateDraft) (entities.EstimateVersion, error) {
	versionID = strings.TrimSpace(versionID)
	if versionID == "" {
		u.metrics.EstimateSubmission("update", "invalid")
		return entities.EstimateVersion{}, failures.Validation("estimate_id", "is required")
	}
	draft, err := normalizeDraft(draft)
	if err != nil {
		u.metrics.EstimateSubmission("update", "invalid")
		u.logger.Info("[estimate][usecase] update rejected", zap.String("estimate_id", versionID), zap.Error(err))
		return entities.EstimateVersion{}, err
	}
	if err := u.checkRecallConstraint(ctx, draft); err != nil {
		u.metrics.EstimateSubmission("update", outcomeOf(err))
		return entities.EstimateVersion{}, err
	}

	u.logger.Info("[estimate][usecase] update start", zap.String("estimate_id", versionID), zap.String("claim_id", draft.ClaimID))
	updated, err := u.authority.Update(ctx, versionID, draft)
	if err != nil {
		u.metrics.EstimateSubmission("update", outcomeOf(err))
		u.logger.Warn("[estimate][usecase] update failed", zap.String("estimate_id", versionID), zap.Error(err))
		u.refreshCatalogOnRejection(err)
		return entities.EstimateVersion{}, err
	}
	if updated.ID == "" {
		u.metrics.EstimateSubmission("update", "not_found")
		return entities.EstimateVersion{}, ErrEstimateNotFound
	}
	updated = updated.WithTotals()
	u.metrics.EstimateSubmission("update", "ok")
	u.logger.Info("[estimate][usecase] update success",
		zap.String("estimate_id", updated.ID),
		zap.Int("version_no", updated.VersionNo),
		zap.Int64("grand_total", int64(updated.Totals.GrandTotal)))
	return updated, nil
}

func (u *EstimateUseCase) GetByClaim(ctx context.Context, claimID string) ([]entities.EstimateVersion, error) {
	claimID = strings.TrimSpace(claimID)
	if claimID == "" {
		return nil, failures.Validation("claim_id", "is required")
	}
	versions, err := u.authority.ListByClaim(ctx, claimID)
	if err != nil {
		return nil, err
	}
	out := make([]entities.EstimateVersion, 0, len(versions))
	for _, v := range versions {
		out = append(out, v.WithTotals())
	}
	return out, nil
}

func (u *EstimateUseCase) GetLatest(ctx context.Context, claimID string) (*entities.EstimateVersion, error) {
	versions, err := u.GetByClaim(ctx, claimID)
	if err != nil {
		return nil, err
	}
	return entities.LatestVersion(versions), nil
}

func (u *EstimateUseCase) GetVersion(ctx context.Context, claimID string, versionNo int) (*entities.EstimateVersion, error) {
	claimID = strings.TrimSpace(claimID)
	if claimID == "" {
		return nil, failures.Validation("claim_id", "is required")
	}
	if versionNo <= 0 {
		return nil, failures.Validation("version_no", "must be positive")
	}
	v, err := u.authority.GetVersion(ctx, claimID, versionNo)
	if err != nil {
		if errors.Is(err, failures.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if v.ID == "" {
		return nil, nil
	}
	v = v.WithTotals()
	return &v, nil
}

func (u *EstimateUseCase) Compare(ctx context.Context, claimID string, fromVersion, toVersion int) (entities.Diff, error) {
	from, err := u.GetVersion(ctx, claimID, fromVersion)
	if err != nil {
		return entities.Diff{}, err
	}
	if from == nil {
		return entities.Diff{}, ErrEstimateNotFound
	}
	to, err := u.GetVersion(ctx, claimID, toVersion)
	if err != nil {
		return entities.Diff{}, err
	}
	if to == nil {
		return entities.Diff{}, ErrEstimateNotFound
	}
	return entities.Compare(*from, *to), nil
}

// checkRecallConstraint rejects a draft when the claim's VIN has recall
// restrictions and none of the draft's parts fall inside them. Drafts with a
// mix of allowed and other parts are forwarded; the authority owns that policy.
func (u *EstimateUseCase) checkRecallConstraint(ctx context.Context, draft entities.EstimateDraft) error {
	if u.recall == nil || u.claims == nil {
		return nil
	}
	claim, err := u.claims.GetClaim(ctx, draft.ClaimID)
	if err != nil {
		return err
	}
	if claim.ID == "" {
		return ErrClaimNotFound
	}

	allowed := u.recall.ResolveAllowedParts(ctx, claim.VIN)
	if !allowed.Restricted() {
		return nil
	}
	for _, it := range draft.Items {
		if allowed.Allows(u.partForItem(ctx, it)) {
			return nil
		}
	}

	u.logger.Info("[estimate][usecase] recall constraint violated",
		zap.String("claim_id", draft.ClaimID), zap.String("vin", claim.VIN))
	return &failures.ConstraintError{
		VIN:    claim.VIN,
		Reason: "recall applies to this vehicle but no submitted part is covered by it",
	}
}

// refreshCatalogOnRejection drops the cached catalog when the authority rejects a draft.
func (u *EstimateUseCase) refreshCatalogOnRejection(err error) {
	if u.catalog == nil || !errors.Is(err, failures.ErrValidation) {
		return
	}
	u.logger.Info("[estimate][usecase] authority rejected draft; invalidating part catalog", zap.Error(err))
	u.catalog.Invalidate()
}

func (u *EstimateUseCase) partForItem(ctx context.Context, it entities.EstimateLineItem) entities.Part {
	p := entities.Part{ID: it.PartID, Name: it.PartName}
	if u.catalog == nil {
		return p
	}
	if found, ok, err := u.catalog.Lookup(ctx, it.PartID); err == nil && ok {
		return found
	}
	return p
}

func normalizeDraft(d entities.EstimateDraft) (entities.EstimateDraft, error) {
	d.ClaimID = strings.TrimSpace(d.ClaimID)
	d.Note = strings.TrimSpace(d.Note)
	if d.ClaimID == "" {
		return d, failures.Validation("claim_id", "is required")
	}
	if len(d.Items) == 0 {
		return d, failures.Validation("items", "at least one line item is required")
	}

	items := make([]entities.EstimateLineItem, len(d.Items))
	for i, it := range d.Items {
		it.PartID = strings.TrimSpace(it.PartID)
		it.PartName = strings.TrimSpace(it.PartName)
		if it.PartID == "" {
			return d, failures.Validation(fmt.Sprintf("items[%d].part_id", i), "part is not resolved")
		}
		if it.Quantity <= 0 {
			return d, failures.Validation(fmt.Sprintf("items[%d].quantity", i), "must be positive")
		}
		if it.UnitPrice < 0 {
			return d, failures.Validation(fmt.Sprintf("items[%d].unit_price", i), "must not be negative")
		}
		items[i] = it
	}
	d.Items = items

	if d.LaborHours.IsNegative() {
		return d, failures.Validation("labor_hours", "must not be negative")
	}
	if d.LaborRate < 0 {
		return d, failures.Validation("labor_rate", "must not be negative")
	}
	if _, err := entities.ComputeTotalsChecked(d.Items, d.LaborHours, d.LaborRate); err != nil {
		return d, err
	}
	return d, nil
}

func outcomeOf(err error) string {
	switch {
	case errors.Is(err, failures.ErrValidation):
		return "invalid"
	case errors.Is(err, failures.ErrConstraint):
		return "constraint"
	case errors.Is(err, failures.ErrState):
		return "state"
	case errors.Is(err, failures.ErrTransport):
		return "transport"
	case errors.Is(err, failures.ErrNotFound):
		return "not_found"
	default:
		return "error"
	}
}
