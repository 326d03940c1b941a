package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"onlyflans/internal/db/dbtest"
	analyticsdomain "onlyflans/internal/domain/analytics"
	flansdomain "onlyflans/internal/domain/flans"
	subscribersdomain "onlyflans/internal/domain/subscribers"
	userdomain "onlyflans/internal/domain/user"
	analyticsrepo "onlyflans/internal/repository/postgres/analytics"
	flansrepo "onlyflans/internal/repository/postgres/flans"
	subscribersrepo "onlyflans/internal/repository/postgres/subscribers"
	"onlyflans/pkg/logger"
)

func newTestRouter(t *testing.T) (http.Handler, *Handlers, uint) {
	t.Helper()
	conn := dbtest.New(t)
	log := logger.Discard()

	user := userdomain.User{Username: "chef", Email: "chef@example.com"}
	require.NoError(t, conn.Create(&user).Error)

	subscribers := subscribersdomain.NewService(subscribersrepo.NewPostgres(conn), log)
	flans := flansdomain.NewService(flansrepo.NewPostgres(conn), log)
	analytics := analyticsdomain.NewService(analyticsrepo.NewPostgres(conn), subscribers, nil, log)
	h := New(flans, analytics, subscribers, 2, log)

	r := chi.NewRouter()
	r.Get("/api/flans", h.ListFlans)
	r.Get("/api/flans/{id}", h.GetFlan)
	r.Get("/api/flans/{id}/analytics", h.FlanAnalytics)
	r.Get("/api/analytics/summary", h.Summary)
	r.Get("/api/subscribers/stats", h.SubscriberStats)
	return r, h, user.ID
}

func get(router http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestListFlansPaginates(t *testing.T) {
	router, h, userID := newTestRouter(t)
	ctx := context.Background()
	for _, name := range []string{"Flan One", "Flan Two", "Flan Three"} {
		_, err := h.Flans.Create(ctx, userID, flansdomain.CreateInput{
			Name:        name,
			Description: "A silky baked custard.",
			Type:        flansdomain.FlanTypeVanilla,
		})
		require.NoError(t, err)
	}

	rec := get(router, "/api/flans?page=2")
	require.Equal(t, http.StatusOK, rec.Code)

	var page pageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.EqualValues(t, 3, page.TotalCount)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, 2, page.PageSize)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "Flan One", page.Data[0].Name)
	assert.Equal(t, "FREE", page.Data[0].DisplayPrice)
	assert.False(t, page.HasNext)
	assert.True(t, page.HasPrevious)

	rec = get(router, "/api/flans?page=abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetFlanAndAnalytics(t *testing.T) {
	router, h, userID := newTestRouter(t)
	flan, err := h.Flans.Create(context.Background(), userID, flansdomain.CreateInput{
		Name:        "Mocha Madness",
		Description: "Coffee and chocolate together.",
		Type:        flansdomain.FlanTypeCoffee,
		IsPremium:   true,
		Price:       decimal.RequireFromString("4.99"),
	})
	require.NoError(t, err)

	rec := get(router, "/api/flans/"+strconv.FormatUint(uint64(flan.ID), 10))
	require.Equal(t, http.StatusOK, rec.Code)
	var body flanResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "coffee", body.FlanType)
	assert.Equal(t, "Coffee Delight", body.FlanTypeLabel)
	assert.Equal(t, "$4.99", body.DisplayPrice)

	rec = get(router, "/api/flans/"+strconv.FormatUint(uint64(flan.ID), 10)+"/analytics")
	require.Equal(t, http.StatusOK, rec.Code)
	var stats flanAnalyticsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.EqualValues(t, 100+10*int64(flan.ID), stats.ViewsCount)

	rec = get(router, "/api/flans/999")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":{"code":"flan_not_found","message":"flan not found"}}`, rec.Body.String())

	rec = get(router, "/api/flans/999/analytics")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = get(router, "/api/flans/zero")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSummaryAndSubscriberStats(t *testing.T) {
	router, h, userID := newTestRouter(t)
	ctx := context.Background()

	_, err := h.Flans.Create(ctx, userID, flansdomain.CreateInput{
		Name:        "Bourbon Vanilla",
		Description: "Premium bourbon vanilla beans.",
		Type:        flansdomain.FlanTypeVanilla,
		IsPremium:   true,
		Price:       decimal.RequireFromString("8.00"),
	})
	require.NoError(t, err)
	_, err = h.Subscribers.Subscribe(ctx, "a@example.com", "Ann")
	require.NoError(t, err)

	rec := get(router, "/api/analytics/summary")
	require.Equal(t, http.StatusOK, rec.Code)
	var summary summaryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.EqualValues(t, 1, summary.TotalFlans)
	assert.EqualValues(t, 1, summary.PremiumFlans)
	assert.EqualValues(t, 1, summary.TotalSubscribers)
	assert.InDelta(t, 8.0, summary.TotalRevenue, 0.001)
	assert.InDelta(t, 100.0, summary.PremiumConversionRate, 0.001)

	rec = get(router, "/api/subscribers/stats")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"weekly_digest":1,"new_flan_alerts":1,"total_active":1}`, rec.Body.String())
}
