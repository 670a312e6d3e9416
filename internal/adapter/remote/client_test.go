package remote

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ev_warranty/internal/domain/entities"
	"ev_warranty/internal/domain/failures"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const brakePadID = "3f2b8c1e-9d4a-4f6b-8e2a-1c5d7e9f0a11"

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/", "secret", 2*time.Second, nil, nil)
}

func TestClient_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		check  func(t *testing.T, err error)
	}{
		{
			name:   "conflict keeps the authority message",
			status: http.StatusConflict,
			body:   `{"message":"Claim is not in ESTIMATING status"}`,
			check: func(t *testing.T, err error) {
				var se *failures.StateError
				require.ErrorAs(t, err, &se)
				assert.Equal(t, "Claim is not in ESTIMATING status", err.Error())
			},
		},
		{
			name:   "bad request",
			status: http.StatusBadRequest,
			body:   `{"error":"quantity must be positive"}`,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, failures.ErrValidation)
				assert.Contains(t, err.Error(), "quantity must be positive")
			},
		},
		{
			name:   "unprocessable",
			status: http.StatusUnprocessableEntity,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, failures.ErrValidation)
			},
		},
		{
			name:   "server error",
			status: http.StatusBadGateway,
			check: func(t *testing.T, err error) {
				var te *failures.TransportError
				require.ErrorAs(t, err, &te)
				assert.Equal(t, http.StatusBadGateway, te.StatusCode)
			},
		},
		{
			name:   "not found",
			status: http.StatusNotFound,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, failures.ErrNotFound)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				calls++
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})
			_, err := c.do(context.Background(), "test", http.MethodGet, "/x", nil)
			require.Error(t, err)
			tt.check(t, err)
			assert.Equal(t, 1, calls, "requests are never retried")
		})
	}
}

func TestClient_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()
	c := NewClient(srv.URL, "", time.Second, nil, nil)

	_, err := c.do(context.Background(), "test", http.MethodGet, "/x", nil)
	assert.ErrorIs(t, err, failures.ErrTransport)
}

func TestClient_SendsBearerToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Equal(t, "/parts/get-active", r.URL.Path)
		_, _ = io.WriteString(w, `[]`)
	})
	parts, err := NewPartCatalogSource(c).ListActiveParts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, parts)
}

func TestRecallEventSource_CheckByVIN(t *testing.T) {
	var gotVIN string
	body := `{"events":[
		{"id":"rc-1","name":"Brake recall","startDate":"2026-01-01T00:00:00",
		 "affectedParts":["` + brakePadID + `", {"name":"Battery Cell"}],
		 "affectedPartsJson":"[\"ignored\"]",
		 "exclusions":["WATER_INGRESSION","FLOOD"]},
		{"id":"rc-2","affectedPartsJson":"[\"Wiper\"]","affected_parts":["ignored"]},
		{"id":"rc-3","affectedParts":[],"affected_parts":["Fuse"]},
		{"id":"rc-4","affectedPartsJson":"not json","affected_parts":"[\"Mirror\"]"}
	]}`
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotVIN = r.URL.Query().Get("vin")
		_, _ = io.WriteString(w, body)
	})

	events, err := NewRecallEventSource(c).CheckByVIN(context.Background(), "VIN 001")
	require.NoError(t, err)
	assert.Equal(t, "VIN 001", gotVIN)
	require.Len(t, events, 4)

	assert.Equal(t, []entities.PartReference{entities.ByID(brakePadID), entities.ByName("Battery Cell")}, events[0].AffectedParts)
	assert.Equal(t, []entities.ExclusionCode{entities.ExclusionWaterIngression}, events[0].Exclusions)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), events[0].StartsAt)
	assert.Nil(t, events[0].EndsAt)

	assert.Equal(t, []entities.PartReference{entities.ByName("Wiper")}, events[1].AffectedParts)
	assert.Equal(t, []entities.PartReference{entities.ByName("Fuse")}, events[2].AffectedParts)
	assert.Equal(t, []entities.PartReference{entities.ByName("Mirror")}, events[3].AffectedParts)
}

func TestRecallEventSource_BareList(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[{"id":"rc-1","affectedParts":["brake"]}]`)
	})
	events, err := NewRecallEventSource(c).CheckByVIN(context.Background(), "VIN001")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "rc-1", events[0].ID)
}

func TestPartCatalogSource_ListActiveParts(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"content":[
			{"id":"`+brakePadID+`","partNumber":"BP-100","name":"Brake Pad","unitPrice":150000},
			{"partId":"P-2","part_number":"BC-200","partName":"Battery Cell","price":"500000.4"},
			{"name":"no id"}
		]}`)
	})
	parts, err := NewPartCatalogSource(c).ListActiveParts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []entities.Part{
		{ID: brakePadID, PartNumber: "BP-100", Name: "Brake Pad", UnitPrice: 150000},
		{ID: "P-2", PartNumber: "BC-200", Name: "Battery Cell", UnitPrice: 500000},
	}, parts)
}

func TestEstimateAuthority_KeepsOpaquePartIDs(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Items []struct {
				PartID string `json:"partId"`
			} `json:"itemsJson"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Len(t, body.Items, 1)
		assert.Equal(t, "PART-ABC-01", body.Items[0].PartID)

		_, _ = io.WriteString(w, `{"id":"est-1","claimId":"claim-1","versionNo":1,"items":[{"partId":"PART-ABC-01","quantity":1,"unitPrice":10}]}`)
	})

	v, err := NewEstimateAuthority(c).Create(context.Background(), entities.EstimateDraft{
		ClaimID: "claim-1",
		Items:   []entities.EstimateLineItem{{PartID: "PART-ABC-01", Quantity: 1, UnitPrice: 10}},
	})
	require.NoError(t, err)
	require.Len(t, v.Items, 1)
	assert.Equal(t, "PART-ABC-01", v.Items[0].PartID)
}

func TestClaimSource_GetClaim(t *testing.T) {
	t.Run("nested vehicle vin", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/claims/claim-1", r.URL.Path)
			_, _ = io.WriteString(w, `{"data":{"id":"claim-1","status":"estimating","vehicle":{"vin":"VIN001"}}}`)
		})
		claim, err := NewClaimSource(c).GetClaim(context.Background(), "claim-1")
		require.NoError(t, err)
		assert.Equal(t, entities.Claim{ID: "claim-1", VIN: "VIN001", Status: entities.ClaimStatusEstimating}, claim)
	})

	t.Run("missing claim is zero", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})
		claim, err := NewClaimSource(c).GetClaim(context.Background(), "ghost")
		require.NoError(t, err)
		assert.Equal(t, "", claim.ID)
	})
}

func TestEstimateAuthority_Create(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/estimates/create", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "claim-1", body["claim_id"])
		assert.Equal(t, "3", body["laborSlots"])
		assert.EqualValues(t, 100000, body["laborRateVND"])
		assert.Equal(t, []any{map[string]any{"partId": brakePadID, "quantity": float64(2)}}, body["itemsJson"])

		_, _ = io.WriteString(w, `{"data":{
			"id":"est-1","claimId":"claim-1","versionNo":1,
			"itemsJson":"[{\"partId\":\"`+brakePadID+`\",\"quantity\":2,\"unitPrice\":150000}]",
			"laborSlots":3,"laborRateVND":100000,"note":"first",
			"createdAt":"2026-03-01T10:00:00Z"}}`)
	})

	v, err := NewEstimateAuthority(c).Create(context.Background(), entities.EstimateDraft{
		ClaimID:    "claim-1",
		Items:      []entities.EstimateLineItem{{PartID: brakePadID, Quantity: 2, UnitPrice: 150000}},
		LaborHours: decimal.NewFromInt(3),
		LaborRate:  100000,
		Note:       "first",
	})
	require.NoError(t, err)
	assert.Equal(t, "est-1", v.ID)
	assert.Equal(t, 1, v.VersionNo)
	assert.Equal(t, entities.Totals{PartsSubtotal: 300000, LaborSubtotal: 300000, GrandTotal: 600000}, v.Totals)
	assert.Equal(t, time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC), v.CreatedAt)
}

func TestEstimateAuthority_ListAndGet(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/estimates/claim-1/get-by-claim":
			_, _ = io.WriteString(w, `[
				{"id":"v1","versionNo":1,"items":[{"part_id":"a","quantity":"1","unit_price":10}],"created_at":"2026-03-01 09:00:00"},
				{"id":"v2","version_no":2,"items":[],"createdAt":"2026-03-02T09:00:00+07:00"}
			]`)
		case "/estimates/claim-1/2/get":
			_, _ = io.WriteString(w, `{"id":"v2","versionNo":2,"itemsJson":[]}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	a := NewEstimateAuthority(c)

	list, err := a.ListByClaim(context.Background(), "claim-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "claim-1", list[0].ClaimID)
	assert.Equal(t, entities.Money(10), list[0].Totals.GrandTotal)
	assert.Equal(t, 2, list[1].VersionNo)
	assert.Equal(t, time.Date(2026, 3, 2, 2, 0, 0, 0, time.UTC), list[1].CreatedAt)

	v, err := a.GetVersion(context.Background(), "claim-1", 2)
	require.NoError(t, err)
	assert.Equal(t, "v2", v.ID)
	assert.Equal(t, "claim-1", v.ClaimID)

	_, err = a.GetVersion(context.Background(), "claim-1", 9)
	assert.True(t, errors.Is(err, failures.ErrNotFound))

	empty, err := a.ListByClaim(context.Background(), "claim-9")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestEstimateAuthority_UpdateUnknownVersion(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/estimates/ghost/update", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
	})
	v, err := NewEstimateAuthority(c).Update(context.Background(), "ghost", entities.EstimateDraft{ClaimID: "claim-1"})
	require.NoError(t, err)
	assert.Equal(t, "", v.ID)
}
