package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ev_warranty/internal/adapter/http/handlers/mocks"
	"ev_warranty/internal/domain/entities"
	"ev_warranty/internal/infrastructure/eventbus"
	"ev_warranty/internal/usecase"
	mock_interfaces "ev_warranty/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type sessionTestDeps struct {
	router    *gin.Engine
	registry  *usecase.SessionRegistry
	claims    *mock_interfaces.MockIClaimSource
	estimates *mocks.MockIEstimateUseCase
	recall    *mocks.MockIRecallConstraintUseCase
}

func newSessionRouter(t *testing.T) sessionTestDeps {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	d := sessionTestDeps{
		claims:    mock_interfaces.NewMockIClaimSource(ctrl),
		estimates: mocks.NewMockIEstimateUseCase(ctrl),
		recall:    mocks.NewMockIRecallConstraintUseCase(ctrl),
	}
	d.registry = usecase.NewSessionRegistry(usecase.SessionDeps{
		Claims:      d.claims,
		Estimates:   d.estimates,
		Recall:      d.recall,
		LoadTimeout: 5 * time.Second,
	})
	h := NewSessionHandler(d.registry, nil)

	r := gin.New()
	r.POST("/v1/sessions/:session_id/selection", h.Select)
	r.GET("/v1/sessions/:session_id/selection", h.GetSelection)
	r.POST("/v1/sessions/:session_id/estimates", h.SubmitEstimate)
	r.GET("/v1/sessions/:session_id/events", h.Events)
	r.POST("/v1/sessions/:session_id/shipments", h.NotifyShipment)
	r.DELETE("/v1/sessions/:session_id", h.CloseSession)
	d.router = r
	return d
}

func (d sessionTestDeps) expectClaimLoad(claimID, vin string, versions []entities.EstimateVersion) {
	d.claims.EXPECT().GetClaim(gomock.Any(), claimID).Return(entities.Claim{ID: claimID, VIN: vin, Status: entities.ClaimStatusEstimating}, nil)
	d.recall.EXPECT().AllowedCatalog(gomock.Any(), vin).Return(entities.NewAllowedPartSet(), []entities.Part{{ID: "p1", Name: "Brake Pad"}}, nil)
	d.estimates.EXPECT().GetByClaim(gomock.Any(), claimID).Return(versions, nil)
}

func (d sessionTestDeps) wait(t *testing.T, sessionID string) {
	t.Helper()
	s, err := d.registry.Get(sessionID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Wait()
}

func TestSessionHandler_SelectAndView(t *testing.T) {
	d := newSessionRouter(t)
	d.expectClaimLoad("claim-1", "VIN001", []entities.EstimateVersion{{ID: "v1", ClaimID: "claim-1", VersionNo: 1}})

	w := doJSON(d.router, http.MethodPost, "/v1/sessions/ui-1/selection", `{"claim_id":"claim-1"}`)
	if w.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", w.Code)
	}
	var accepted struct {
		Token uint64 `json:"token"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &accepted)
	if accepted.Token != 1 {
		t.Fatalf("expected token 1, got %d", accepted.Token)
	}
	d.wait(t, "ui-1")

	w = doJSON(d.router, http.MethodGet, "/v1/sessions/ui-1/selection", "")
	var view struct {
		State   string `json:"state"`
		Allowed struct {
			Parts []struct {
				ID string `json:"id"`
			} `json:"parts"`
		} `json:"allowed"`
		Latest struct {
			ID string `json:"id"`
		} `json:"latest"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &view)
	if w.Code != http.StatusOK || view.State != "ready" || len(view.Allowed.Parts) != 1 || view.Latest.ID != "v1" {
		t.Fatalf("unexpected view %d: %s", w.Code, w.Body.String())
	}
}

func TestSessionHandler_SelectRequiresClaim(t *testing.T) {
	d := newSessionRouter(t)
	w := doJSON(d.router, http.MethodPost, "/v1/sessions/ui-1/selection", `{"claim_id":"  "}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if d.registry.Len() != 0 {
		t.Fatalf("a rejected selection must not open a session")
	}
}

func TestSessionHandler_SubmitEstimate(t *testing.T) {
	t.Run("nothing selected", func(t *testing.T) {
		d := newSessionRouter(t)
		w := doJSON(d.router, http.MethodPost, "/v1/sessions/ui-1/estimates", `{"items":[{"part_id":"p1","quantity":1}]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("create for the selected claim", func(t *testing.T) {
		d := newSessionRouter(t)
		d.expectClaimLoad("claim-1", "VIN001", nil)
		doJSON(d.router, http.MethodPost, "/v1/sessions/ui-1/selection", `{"claim_id":"claim-1"}`)
		d.wait(t, "ui-1")

		saved := entities.EstimateVersion{ID: "est-1", ClaimID: "claim-1", VersionNo: 1}
		d.estimates.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, draft entities.EstimateDraft) (entities.EstimateVersion, error) {
				if draft.ClaimID != "claim-1" {
					t.Fatalf("expected the selected claim, got %q", draft.ClaimID)
				}
				return saved, nil
			},
		)
		d.estimates.EXPECT().GetByClaim(gomock.Any(), "claim-1").Return([]entities.EstimateVersion{saved}, nil)

		w := doJSON(d.router, http.MethodPost, "/v1/sessions/ui-1/estimates", `{"items":[{"part_id":"p1","quantity":1,"unit_price":10}]}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("update by estimate id", func(t *testing.T) {
		d := newSessionRouter(t)
		d.estimates.EXPECT().Update(gomock.Any(), "est-1", gomock.Any()).
			Return(entities.EstimateVersion{ID: "est-1", ClaimID: "claim-9", VersionNo: 1}, nil)

		w := doJSON(d.router, http.MethodPost, "/v1/sessions/ui-1/estimates", `{"estimate_id":"est-1","claim_id":"claim-9","items":[{"part_id":"p1","quantity":1}]}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestSessionHandler_Events(t *testing.T) {
	d := newSessionRouter(t)
	s, _ := d.registry.Get("ui-1")

	req := httptest.NewRequest(http.MethodGet, "/v1/sessions/ui-1/events", nil)
	w := httptest.NewRecorder()
	done := make(chan struct{})
	go func() {
		defer close(done)
		d.router.ServeHTTP(w, req)
	}()

	deadline := time.Now().Add(5 * time.Second)
	for s.Bus().SubscriberCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatalf("stream never subscribed")
		}
		time.Sleep(5 * time.Millisecond)
	}
	s.Bus().Publish(eventbus.Event{Topic: eventbus.TopicShipmentReceived, ClaimID: "claim-1", Payload: "SHP-7"})
	d.registry.Close("ui-1")

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatalf("stream did not end after the session closed")
	}

	body := w.Body.String()
	if !strings.Contains(body, "event:view") || !strings.Contains(body, "event:shipment.received") || !strings.Contains(body, "SHP-7") {
		t.Fatalf("unexpected stream: %q", body)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/event-stream") {
		t.Fatalf("unexpected content type %q", ct)
	}
}

func TestSessionHandler_UnknownSessionIsNotCreated(t *testing.T) {
	cases := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{name: "view", method: http.MethodGet, path: "/v1/sessions/ghost/selection"},
		{name: "events", method: http.MethodGet, path: "/v1/sessions/ghost/events"},
		{name: "shipment", method: http.MethodPost, path: "/v1/sessions/ghost/shipments", body: `{"shipment_id":"SHP-1"}`},
		{name: "close", method: http.MethodDelete, path: "/v1/sessions/ghost"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := newSessionRouter(t)
			w := doJSON(d.router, tc.method, tc.path, tc.body)
			if w.Code != http.StatusNotFound {
				t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
			}
			if e := decodeHTTPError(t, w); e.Code != "SESSION_NOT_FOUND" {
				t.Fatalf("unexpected error code %q", e.Code)
			}
			if d.registry.Len() != 0 {
				t.Fatalf("expected no session created, got %d", d.registry.Len())
			}
		})
	}
}

func TestSessionHandler_CloseSession(t *testing.T) {
	d := newSessionRouter(t)
	if _, err := d.registry.Get("ui-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	w := doJSON(d.router, http.MethodDelete, "/v1/sessions/ui-1", "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if d.registry.Len() != 0 {
		t.Fatalf("expected session dropped")
	}
	w = doJSON(d.router, http.MethodGet, "/v1/sessions/ui-1/selection", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after close, got %d", w.Code)
	}
}

func TestSessionHandler_NotifyShipment(t *testing.T) {
	t.Run("relays to subscribers", func(t *testing.T) {
		d := newSessionRouter(t)
		s, _ := d.registry.Get("ui-1")
		events, unsub := s.Bus().Subscribe(eventbus.TopicShipmentReceived)
		defer unsub()

		w := doJSON(d.router, http.MethodPost, "/v1/sessions/ui-1/shipments", `{"claim_id":"claim-1","shipment_id":"SHP-7"}`)
		if w.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d: %s", w.Code, w.Body.String())
		}
		select {
		case e := <-events:
			if e.ClaimID != "claim-1" || e.Payload != "SHP-7" {
				t.Fatalf("unexpected event: %+v", e)
			}
		case <-time.After(5 * time.Second):
			t.Fatalf("no shipment event published")
		}
	})

	t.Run("shipment id required", func(t *testing.T) {
		d := newSessionRouter(t)
		_, _ = d.registry.Get("ui-1")
		w := doJSON(d.router, http.MethodPost, "/v1/sessions/ui-1/shipments", `{"claim_id":"claim-1"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
