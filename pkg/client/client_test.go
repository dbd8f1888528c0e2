package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/ryantate314/cant-believe-its-not-ebis-sub000/pkg/models"
)

func TestDoSendsAuthAndQuery(t *testing.T) {
	var gotAuth, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items":[],"total":0,"page":1,"page_size":20}`))
	}))
	defer server.Close()

	c := New(server.URL, WithToken("token-abc"))
	cityID := uuid.New()
	_, err := c.ListWorkOrders(context.Background(), ListWorkOrdersParams{CityID: cityID})

	assert.NoError(t, err)
	assert.Equal(t, "Bearer token-abc", gotAuth)
	assert.Contains(t, gotQuery, "city_id="+cityID.String())
	assert.Contains(t, gotQuery, "page=1")
	assert.Contains(t, gotQuery, "page_size=20")
}

func TestDoMapsDetailToApiError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"detail":"status transition not allowed"}`))
	}))
	defer server.Close()

	c := New(server.URL)
	_, err := c.GetWorkOrder(context.Background(), uuid.New())

	var apiErr *ApiError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
	assert.Equal(t, "status transition not allowed", apiErr.Message)
}

func TestDoFallsBackToGenericMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`<html>not json</html>`))
	}))
	defer server.Close()

	c := New(server.URL)
	_, err := c.GetLaborKit(context.Background(), uuid.New())

	var apiErr *ApiError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "API error: 500", apiErr.Message)
}

func TestDeleteAccepts204(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	c := New(server.URL)
	assert.NoError(t, c.DeleteWorkOrder(context.Background(), uuid.New()))
}

// applyFixture is a stateful fake of the apply endpoint: a kit with a
// fixed set of template items, and a work order whose item list grows
// when the kit is applied.
type applyFixture struct {
	kitID       uuid.UUID
	workOrderID uuid.UUID
	kitItems    []models.LaborKitItem
	woItems     []models.WorkOrderItem
}

func newApplyFixture() *applyFixture {
	f := &applyFixture{kitID: uuid.New(), workOrderID: uuid.New()}
	discrepancies := []string{"100 hour inspection", "Replace brake pads", "Lubricate landing gear"}
	for i, d := range discrepancies {
		text := d
		f.kitItems = append(f.kitItems, models.LaborKitItem{
			ID:            uuid.New(),
			LaborKitID:    f.kitID,
			ItemNumber:    i + 1,
			Discrepancy:   &text,
			BillingMethod: models.BillingHourly,
		})
	}
	return f
}

func (f *applyFixture) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/labor-kits/"+f.kitID.String()+"/apply/"+f.workOrderID.String(),
		func(w http.ResponseWriter, r *http.Request) {
			createdBy := r.URL.Query().Get("created_by")
			if createdBy == "" {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"detail":"created_by parameter is required"}`))
				return
			}
			for _, kitItem := range f.kitItems {
				f.woItems = append(f.woItems, models.WorkOrderItem{
					ID:            uuid.New(),
					WorkOrderID:   f.workOrderID,
					ItemNumber:    len(f.woItems) + 1,
					Status:        models.ItemStatusOpen,
					Discrepancy:   kitItem.Discrepancy,
					BillingMethod: kitItem.BillingMethod,
					CreatedBy:     createdBy,
				})
			}
			json.NewEncoder(w).Encode(models.ApplyLaborKitResult{
				ItemsCreated: len(f.kitItems),
				WorkOrderID:  f.workOrderID,
				LaborKitID:   f.kitID,
			})
		})
	mux.HandleFunc("/api/work-orders/"+f.workOrderID.String()+"/items",
		func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(models.WorkOrderItemList{
				Items: f.woItems, Total: len(f.woItems),
			})
		})
	return mux
}

func TestApplyLaborKitCopiesEveryItem(t *testing.T) {
	fixture := newApplyFixture()
	server := httptest.NewServer(fixture.handler())
	defer server.Close()

	c := New(server.URL)
	result, err := c.ApplyLaborKit(context.Background(), fixture.kitID, fixture.workOrderID, "jsmith")

	assert.NoError(t, err)
	assert.Equal(t, 3, result.ItemsCreated)
	assert.Equal(t, fixture.workOrderID, result.WorkOrderID)
	assert.Equal(t, fixture.kitID, result.LaborKitID)

	// The work order now holds the copies, numbered contiguously.
	list, err := c.ListWorkOrderItems(context.Background(), fixture.workOrderID, "", "")
	assert.NoError(t, err)
	assert.Equal(t, 3, list.Total)
	for i, item := range list.Items {
		assert.Equal(t, i+1, item.ItemNumber)
		assert.Equal(t, "jsmith", item.CreatedBy)
		assert.Equal(t, models.ItemStatusOpen, item.Status)
	}
	assert.Equal(t, "100 hour inspection", *list.Items[0].Discrepancy)
}

func TestApplyLaborKitSurfacesUpstreamRejection(t *testing.T) {
	fixture := newApplyFixture()
	server := httptest.NewServer(fixture.handler())
	defer server.Close()

	c := New(server.URL)
	_, err := c.ApplyLaborKit(context.Background(), fixture.kitID, fixture.workOrderID, "")

	var apiErr *ApiError
	assert.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "created_by parameter is required", apiErr.Message)
	assert.Empty(t, fixture.woItems, "rejected apply must not create items")
}

func TestNewTrimsTrailingSlash(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"items":[],"total":0}`))
	}))
	defer server.Close()

	c := New(server.URL + "/")
	_, err := c.ListLaborKits(context.Background())

	assert.NoError(t, err)
	assert.False(t, strings.Contains(gotPath, "//"))
	assert.Equal(t, "/api/labor-kits", gotPath)
}
