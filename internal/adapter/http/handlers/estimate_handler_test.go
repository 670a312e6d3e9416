package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ev_warranty/internal/adapter/http/handlers/mocks"
	"ev_warranty/internal/domain/entities"
	"ev_warranty/internal/domain/failures"
	"ev_warranty/internal/usecase"
	"ev_warranty/pkg"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

const validEstimateBody = `{"claim_id":"claim-1","items":[{"part_id":"p1","quantity":2,"unit_price":150000}],"labor_hours":"3","labor_rate":100000}`

func newEstimateRouter(t *testing.T) (*gin.Engine, *mocks.MockIEstimateUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIEstimateUseCase(ctrl)
	h := NewEstimateHandler(uc, nil)

	r := gin.New()
	r.POST("/v1/estimates/totals", h.CalculateTotals)
	r.POST("/v1/estimates", h.CreateEstimate)
	r.PUT("/v1/estimates/:estimate_id", h.UpdateEstimate)
	r.GET("/v1/claims/:claim_id/estimates", h.ListByClaim)
	r.GET("/v1/claims/:claim_id/estimates/latest", h.GetLatest)
	r.GET("/v1/claims/:claim_id/estimates/compare", h.Compare)
	r.GET("/v1/claims/:claim_id/estimates/:version_no", h.GetVersion)
	return r, uc
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeHTTPError(t *testing.T, w *httptest.ResponseRecorder) pkg.HTTPError {
	t.Helper()
	var body pkg.HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestEstimateHandler_CreateEstimate(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		r, _ := newEstimateRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/estimates", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if got := decodeHTTPError(t, w).Code; got != "INVALID_ESTIMATE_INPUT" {
			t.Fatalf("expected INVALID_ESTIMATE_INPUT, got %s", got)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newEstimateRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, d entities.EstimateDraft) (entities.EstimateVersion, error) {
				if d.ClaimID != "claim-1" || len(d.Items) != 1 || !d.LaborHours.Equal(decimal.NewFromInt(3)) {
					t.Fatalf("unexpected draft: %+v", d)
				}
				return entities.EstimateVersion{
					ID: "est-1", ClaimID: "claim-1", VersionNo: 1,
					Items: d.Items, LaborHours: d.LaborHours, LaborRate: d.LaborRate,
					CreatedAt: time.Now(),
				}, nil
			},
		)

		w := doJSON(r, http.MethodPost, "/v1/estimates", validEstimateBody)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body struct {
			ID     string `json:"id"`
			Totals struct {
				GrandTotal int64 `json:"grand_total"`
			} `json:"totals"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.ID != "est-1" || body.Totals.GrandTotal != 600000 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	errCases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", failures.Validation("items[0].quantity", "must be positive"), http.StatusBadRequest, "INVALID_ESTIMATE_INPUT"},
		{"recall constraint", &failures.ConstraintError{VIN: "VIN001", Reason: "no covered part"}, http.StatusUnprocessableEntity, "RECALL_CONSTRAINT_VIOLATION"},
		{"claim state", &failures.StateError{Message: "Claim is not in ESTIMATING status"}, http.StatusConflict, "CLAIM_STATE_CONFLICT"},
		{"transport", &failures.TransportError{Operation: "create_estimate", StatusCode: 503}, http.StatusBadGateway, "AUTHORITY_UNAVAILABLE"},
		{"claim missing", usecase.ErrClaimNotFound, http.StatusNotFound, "CLAIM_NOT_FOUND"},
		{"unexpected", errBoom, http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tc := range errCases {
		t.Run(tc.name, func(t *testing.T) {
			r, uc := newEstimateRouter(t)
			uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.EstimateVersion{}, tc.err)

			w := doJSON(r, http.MethodPost, "/v1/estimates", validEstimateBody)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
			if got := decodeHTTPError(t, w).Code; got != tc.code {
				t.Fatalf("expected %s, got %s", tc.code, got)
			}
		})
	}

	t.Run("state conflict message is verbatim", func(t *testing.T) {
		r, uc := newEstimateRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.EstimateVersion{}, &failures.StateError{Message: "Claim CLM-9 is UNDER_REVIEW"})

		w := doJSON(r, http.MethodPost, "/v1/estimates", validEstimateBody)
		if got := decodeHTTPError(t, w).Message; got != "Claim CLM-9 is UNDER_REVIEW" {
			t.Fatalf("expected verbatim message, got %q", got)
		}
	})
}

func TestEstimateHandler_CalculateTotals(t *testing.T) {
	r, uc := newEstimateRouter(t)
	uc.EXPECT().CalculateTotals(gomock.Any(), gomock.Any(), entities.Money(100000)).
		DoAndReturn(entities.ComputeTotalsChecked)

	w := doJSON(r, http.MethodPost, "/v1/estimates/totals", validEstimateBody)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		PartsSubtotal int64 `json:"parts_subtotal"`
		LaborSubtotal int64 `json:"labor_subtotal"`
		GrandTotal    int64 `json:"grand_total"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body.PartsSubtotal != 300000 || body.LaborSubtotal != 300000 || body.GrandTotal != 600000 {
		t.Fatalf("unexpected totals: %s", w.Body.String())
	}

	t.Run("amount out of range", func(t *testing.T) {
		r, uc := newEstimateRouter(t)
		uc.EXPECT().CalculateTotals(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(entities.ComputeTotalsChecked)

		body := `{"items":[{"part_id":"p1","quantity":1000000000,"unit_price":10000000000}]}`
		w := doJSON(r, http.MethodPost, "/v1/estimates/totals", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
		}
		if e := decodeHTTPError(t, w); e.Code != "INVALID_ESTIMATE_INPUT" {
			t.Fatalf("unexpected error code %q", e.Code)
		}
	})
}

func TestEstimateHandler_UpdateEstimate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r, uc := newEstimateRouter(t)
		uc.EXPECT().Update(gomock.Any(), "est-1", gomock.Any()).Return(entities.EstimateVersion{ID: "est-1", VersionNo: 2}, nil)

		w := doJSON(r, http.MethodPut, "/v1/estimates/est-1", validEstimateBody)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		r, uc := newEstimateRouter(t)
		uc.EXPECT().Update(gomock.Any(), "ghost", gomock.Any()).Return(entities.EstimateVersion{}, usecase.ErrEstimateNotFound)

		w := doJSON(r, http.MethodPut, "/v1/estimates/ghost", validEstimateBody)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if got := decodeHTTPError(t, w).Code; got != "ESTIMATE_NOT_FOUND" {
			t.Fatalf("expected ESTIMATE_NOT_FOUND, got %s", got)
		}
	})
}

func TestEstimateHandler_Reads(t *testing.T) {
	t.Run("list is sorted by version", func(t *testing.T) {
		r, uc := newEstimateRouter(t)
		uc.EXPECT().GetByClaim(gomock.Any(), "claim-1").Return([]entities.EstimateVersion{
			{ID: "v2", VersionNo: 2}, {ID: "v1", VersionNo: 1},
		}, nil)

		w := doJSON(r, http.MethodGet, "/v1/claims/claim-1/estimates", "")
		var body []struct {
			VersionNo int `json:"version_no"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if w.Code != http.StatusOK || len(body) != 2 || body[0].VersionNo != 1 {
			t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("latest missing", func(t *testing.T) {
		r, uc := newEstimateRouter(t)
		uc.EXPECT().GetLatest(gomock.Any(), "claim-1").Return(nil, nil)

		w := doJSON(r, http.MethodGet, "/v1/claims/claim-1/estimates/latest", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("version", func(t *testing.T) {
		r, uc := newEstimateRouter(t)
		uc.EXPECT().GetVersion(gomock.Any(), "claim-1", 2).Return(&entities.EstimateVersion{ID: "v2", VersionNo: 2}, nil)

		w := doJSON(r, http.MethodGet, "/v1/claims/claim-1/estimates/2", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("version not a number", func(t *testing.T) {
		r, _ := newEstimateRouter(t)
		w := doJSON(r, http.MethodGet, "/v1/claims/claim-1/estimates/two", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("compare", func(t *testing.T) {
		r, uc := newEstimateRouter(t)
		uc.EXPECT().Compare(gomock.Any(), "claim-1", 1, 2).Return(entities.Diff{FromVersion: 1, ToVersion: 2, GrandTotalDelta: -400000}, nil)

		w := doJSON(r, http.MethodGet, "/v1/claims/claim-1/estimates/compare?from=1&to=2", "")
		var body struct {
			GrandTotalDelta int64 `json:"grand_total_delta"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if w.Code != http.StatusOK || body.GrandTotalDelta != -400000 {
			t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("compare without versions", func(t *testing.T) {
		r, _ := newEstimateRouter(t)
		w := doJSON(r, http.MethodGet, "/v1/claims/claim-1/estimates/compare?from=1", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
