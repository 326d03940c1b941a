package catalog

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	flansdomain "onlyflans/internal/domain/flans"
)

type flanAnalyticsResponse struct {
	FlanID                 uint    `json:"flan_id"`
	ViewsCount             int64   `json:"views_count"`
	LikesCount             int64   `json:"likes_count"`
	SubscriptionCount      int64   `json:"subscription_count"`
	Revenue                float64 `json:"revenue"`
	EngagementRate         float64 `json:"engagement_rate"`
	RevenuePerSubscription float64 `json:"revenue_per_subscription"`
}

type summaryResponse struct {
	TotalFlans            int64   `json:"total_flans"`
	PremiumFlans          int64   `json:"premium_flans"`
	FreeFlans             int64   `json:"free_flans"`
	TotalSubscribers      int64   `json:"total_subscribers"`
	TotalRevenue          float64 `json:"total_revenue"`
	AvgFlanPrice          float64 `json:"avg_flan_price"`
	PremiumConversionRate float64 `json:"premium_conversion_rate"`
}

type subscriberStatsResponse struct {
	WeeklyDigest  int64 `json:"weekly_digest"`
	NewFlanAlerts int64 `json:"new_flan_alerts"`
	TotalActive   int64 `json:"total_active"`
}

func (h *Handlers) FlanAnalytics(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid id")
		return
	}

	stats, err := h.Analytics.FlanAnalytics(r.Context(), id)
	if err != nil {
		if errors.Is(err, flansdomain.ErrFlanNotFound) {
			h.log.BusinessError("api.analytics.flan: not found", err, "flan_id", id)
			writeError(w, http.StatusNotFound, "flan_not_found", "flan not found")
			return
		}
		h.log.InternalError("api.analytics.flan: failed", err, "flan_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, flanAnalyticsResponse{
		FlanID:                 stats.FlanID,
		ViewsCount:             stats.Views,
		LikesCount:             stats.Likes,
		SubscriptionCount:      stats.Subscriptions,
		Revenue:                stats.Revenue.InexactFloat64(),
		EngagementRate:         stats.EngagementRate(),
		RevenuePerSubscription: stats.RevenuePerSubscription().InexactFloat64(),
	})
}

func (h *Handlers) Summary(w http.ResponseWriter, r *http.Request) {
	summary := h.Analytics.Summary(r.Context())
	writeJSON(w, http.StatusOK, summaryResponse{
		TotalFlans:            summary.TotalFlans,
		PremiumFlans:          summary.PremiumFlans,
		FreeFlans:             summary.FreeFlans,
		TotalSubscribers:      summary.ActiveSubscribers,
		TotalRevenue:          summary.TotalRevenue.InexactFloat64(),
		AvgFlanPrice:          summary.AveragePremiumPrice.InexactFloat64(),
		PremiumConversionRate: summary.PremiumConversionRate,
	})
}

func (h *Handlers) SubscriberStats(w http.ResponseWriter, r *http.Request) {
	counts := h.Subscribers.CountsByPreference(r.Context())
	writeJSON(w, http.StatusOK, subscriberStatsResponse{
		WeeklyDigest:  counts.WeeklyDigest,
		NewFlanAlerts: counts.NewFlanAlerts,
		TotalActive:   counts.TotalActive,
	})
}
