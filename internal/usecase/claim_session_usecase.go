package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"ev_warranty/internal/domain/entities"
	"ev_warranty/internal/domain/failures"
	"ev_warranty/internal/infrastructure/eventbus"
	"ev_warranty/internal/infrastructure/logging"
	"ev_warranty/internal/infrastructure/metrics"
	"ev_warranty/internal/usecase/interfaces"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	defaultSessionLoadTimeout = 30 * time.Second
	defaultSessionIdleTTL     = 30 * time.Minute
)

var ErrSessionNotFound = fmt.Errorf("session %w", failures.ErrNotFound)

type SelectionState string

const (
	SelectionEmpty   SelectionState = "empty"
	SelectionLoading SelectionState = "loading"
	SelectionReady   SelectionState = "ready"
	SelectionFailed  SelectionState = "failed"
)

// ClaimView is what a UI session currently displays for its selected claim.
type ClaimView struct {
	Token    uint64                     `json:"token"`
	ClaimID  string                     `json:"claim_id"`
	State    SelectionState             `json:"state"`
	Claim    entities.Claim             `json:"claim"`
	Allowed  entities.AllowedPartSet    `json:"allowed"`
	Parts    []entities.Part            `json:"parts"`
	Versions []entities.EstimateVersion `json:"versions"`
	Latest   *entities.EstimateVersion  `json:"latest,omitempty"`
	Error    string                     `json:"error,omitempty"`
}

// SessionDeps are shared by every session in a registry. IdleTTL is how long
// a session without stream subscribers survives since its last request.
type SessionDeps struct {
	Claims      interfaces.IClaimSource
	Estimates   IEstimateUseCase
	Recall      IRecallConstraintUseCase
	LoadTimeout time.Duration
	IdleTTL     time.Duration
	Logger      *zap.Logger
	Metrics     *metrics.Metrics
}

// ClaimSession holds one UI session's selected claim.
//
// Every Select bumps a token. A background load applies its result only while
// its token is still current, so a late response for a previous selection never
// replaces the view of a newer one.
type ClaimSession struct {
	id   string
	deps SessionDeps
	bus  *eventbus.Bus
	log  *zap.Logger

	mu    sync.Mutex
	token uint64
	view  ClaimView

	inflight sync.WaitGroup
}

func newClaimSession(id string, deps SessionDeps) *ClaimSession {
	if deps.LoadTimeout <= 0 {
		deps.LoadTimeout = defaultSessionLoadTimeout
	}
	log := logging.OrNop(deps.Logger).With(zap.String("session_id", id))
	return &ClaimSession{
		id:   id,
		deps: deps,
		bus:  eventbus.New(),
		log:  log,
		view: ClaimView{State: SelectionEmpty},
	}
}

func (s *ClaimSession) ID() string { return s.id }

// Bus is the session's event channel.
func (s *ClaimSession) Bus() *eventbus.Bus { return s.bus }

// View returns a copy of the current view.
func (s *ClaimSession) View() ClaimView {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.view
	v.Parts = append([]entities.Part(nil), s.view.Parts...)
	v.Versions = append([]entities.EstimateVersion(nil), s.view.Versions...)
	return v
}

// Select switches the session to claimID and loads it in the background.
// It returns the selection token.
func (s *ClaimSession) Select(claimID string) uint64 {
	claimID = strings.TrimSpace(claimID)

	s.mu.Lock()
	s.token++
	token := s.token
	s.view = ClaimView{Token: token, ClaimID: claimID, State: SelectionLoading}
	s.mu.Unlock()

	s.log.Info("[session][usecase] claim selected", zap.String("claim_id", claimID), zap.Uint64("token", token))
	s.bus.Publish(eventbus.Event{Topic: eventbus.TopicClaimSelected, ClaimID: claimID, Payload: token})

	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		ctx, cancel := context.WithTimeout(context.Background(), s.deps.LoadTimeout)
		defer cancel()
		s.apply(s.load(ctx, token, claimID))
	}()
	return token
}

// Wait blocks until every background load started so far has finished.
func (s *ClaimSession) Wait() {
	s.inflight.Wait()
}

// Submit creates (versionID == "") or updates an estimate for the selected
// claim, then refreshes the cached versions if that claim is still selected.
func (s *ClaimSession) Submit(ctx context.Context, versionID string, draft entities.EstimateDraft) (entities.EstimateVersion, error) {
	s.mu.Lock()
	token := s.token
	current := s.view.ClaimID
	s.mu.Unlock()

	if strings.TrimSpace(draft.ClaimID) == "" {
		draft.ClaimID = current
	}
	if strings.TrimSpace(draft.ClaimID) == "" {
		return entities.EstimateVersion{}, failures.Validation("claim_id", "no claim selected")
	}

	var (
		saved entities.EstimateVersion
		err   error
	)
	if strings.TrimSpace(versionID) == "" {
		saved, err = s.deps.Estimates.Create(ctx, draft)
	} else {
		saved, err = s.deps.Estimates.Update(ctx, versionID, draft)
	}
	if err != nil {
		return entities.EstimateVersion{}, err
	}
	s.bus.Publish(eventbus.Event{Topic: eventbus.TopicEstimateSaved, ClaimID: saved.ClaimID, Payload: saved})

	if saved.ClaimID != current {
		return saved, nil
	}
	versions, err := s.deps.Estimates.GetByClaim(ctx, saved.ClaimID)
	if err != nil {
		s.log.Warn("[session][usecase] refresh after save failed", zap.String("claim_id", saved.ClaimID), zap.Error(err))
		return saved, nil
	}
	entities.SortByVersionNo(versions)

	s.mu.Lock()
	if s.token == token && s.view.ClaimID == saved.ClaimID {
		s.view.Versions = versions
		s.view.Latest = entities.LatestVersion(versions)
	}
	s.mu.Unlock()
	return saved, nil
}

// ShipmentReceived relays a parts shipment arrival to the session's
// subscribers. An empty claimID means the selected claim.
func (s *ClaimSession) ShipmentReceived(claimID, shipmentID string) {
	claimID = strings.TrimSpace(claimID)
	if claimID == "" {
		s.mu.Lock()
		claimID = s.view.ClaimID
		s.mu.Unlock()
	}
	s.log.Info("[session][usecase] shipment received", zap.String("claim_id", claimID), zap.String("shipment_id", shipmentID))
	s.bus.Publish(eventbus.Event{Topic: eventbus.TopicShipmentReceived, ClaimID: claimID, Payload: strings.TrimSpace(shipmentID)})
}

func (s *ClaimSession) load(ctx context.Context, token uint64, claimID string) ClaimView {
	view := ClaimView{Token: token, ClaimID: claimID, State: SelectionReady}
	if claimID == "" {
		view.State = SelectionFailed
		view.Error = failures.Validation("claim_id", "is required").Error()
		return view
	}

	claim, err := s.deps.Claims.GetClaim(ctx, claimID)
	if err != nil {
		view.State = SelectionFailed
		view.Error = err.Error()
		return view
	}
	if claim.ID == "" {
		view.State = SelectionFailed
		view.Error = ErrClaimNotFound.Error()
		return view
	}
	view.Claim = claim

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		versions, err := s.deps.Estimates.GetByClaim(gctx, claimID)
		if err != nil {
			return err
		}
		entities.SortByVersionNo(versions)
		view.Versions = versions
		view.Latest = entities.LatestVersion(versions)
		return nil
	})
	g.Go(func() error {
		allowed, parts, err := s.deps.Recall.AllowedCatalog(gctx, claim.VIN)
		view.Allowed = allowed
		if err != nil {
			return err
		}
		view.Parts = parts
		return nil
	})
	if err := g.Wait(); err != nil {
		view.State = SelectionFailed
		view.Error = err.Error()
	}
	return view
}

func (s *ClaimSession) apply(view ClaimView) bool {
	s.mu.Lock()
	if view.Token != s.token {
		current := s.token
		s.mu.Unlock()
		s.deps.Metrics.StaleSelection()
		s.log.Info("[session][usecase] stale load discarded",
			zap.String("claim_id", view.ClaimID),
			zap.Uint64("token", view.Token),
			zap.Uint64("current_token", current))
		s.bus.Publish(eventbus.Event{Topic: eventbus.TopicSelectionDiscarded, ClaimID: view.ClaimID, Payload: view.Token})
		return false
	}
	s.view = view
	s.mu.Unlock()

	s.log.Info("[session][usecase] claim loaded",
		zap.String("claim_id", view.ClaimID),
		zap.String("state", string(view.State)),
		zap.Int("versions", len(view.Versions)))
	s.bus.Publish(eventbus.Event{Topic: eventbus.TopicClaimLoaded, ClaimID: view.ClaimID, Payload: view.State})
	return true
}

func (s *ClaimSession) close() {
	s.inflight.Wait()
	s.bus.Close()
}

// SessionRegistry keys claim sessions by an opaque id supplied by the UI.
// Sessions idle for longer than IdleTTL with no stream subscriber are swept.
type SessionRegistry struct {
	deps SessionDeps
	now  func() time.Time

	mu       sync.Mutex
	sessions map[string]*registeredSession
}

type registeredSession struct {
	session  *ClaimSession
	lastSeen time.Time
}

func NewSessionRegistry(deps SessionDeps) *SessionRegistry {
	if deps.IdleTTL <= 0 {
		deps.IdleTTL = defaultSessionIdleTTL
	}
	return &SessionRegistry{deps: deps, now: time.Now, sessions: map[string]*registeredSession{}}
}

// Get returns the session for id, creating it on first use.
func (r *SessionRegistry) Get(id string) (*ClaimSession, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, failures.Validation("session_id", "is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.sessions[id]; ok {
		e.lastSeen = r.now()
		return e.session, nil
	}
	s := newClaimSession(id, r.deps)
	r.sessions[id] = &registeredSession{session: s, lastSeen: r.now()}
	return s, nil
}

// Lookup returns an existing session without creating one.
func (r *SessionRegistry) Lookup(id string) (*ClaimSession, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, failures.Validation("session_id", "is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	e.lastSeen = r.now()
	return e.session, nil
}

// Close waits for the session's in-flight loads and drops it. It reports
// whether the session existed.
func (r *SessionRegistry) Close(id string) bool {
	r.mu.Lock()
	e, ok := r.sessions[strings.TrimSpace(id)]
	if ok {
		delete(r.sessions, e.session.id)
	}
	r.mu.Unlock()
	if ok {
		e.session.close()
	}
	return ok
}

// SweepIdle closes sessions idle past IdleTTL that have no stream subscriber.
// It returns how many were closed.
func (r *SessionRegistry) SweepIdle() int {
	cutoff := r.now().Add(-r.deps.IdleTTL)

	r.mu.Lock()
	var idle []*ClaimSession
	for id, e := range r.sessions {
		if e.lastSeen.Before(cutoff) && e.session.bus.SubscriberCount() == 0 {
			idle = append(idle, e.session)
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()

	for _, s := range idle {
		s.close()
		s.log.Info("[session][usecase] idle session closed")
	}
	return len(idle)
}

// RunSweeper calls SweepIdle every interval until ctx is done.
func (r *SessionRegistry) RunSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = r.deps.IdleTTL / 2
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.SweepIdle()
		}
	}
}

func (r *SessionRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
