package catalog

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	flansdomain "onlyflans/internal/domain/flans"
)

type flanResponse struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	ImageURL      string    `json:"image_url"`
	FlanType      string    `json:"flan_type"`
	FlanTypeLabel string    `json:"flan_type_label"`
	IsPremium     bool      `json:"is_premium"`
	Price         float64   `json:"price"`
	DisplayPrice  string    `json:"display_price"`
	CreatorID     uint      `json:"creator_id"`
	CreatedAt     time.Time `json:"created_at"`
}

type pageResponse struct {
	Data        []flanResponse `json:"data"`
	TotalCount  int64          `json:"total_count"`
	Page        int            `json:"page"`
	PageSize    int            `json:"page_size"`
	TotalPages  int            `json:"total_pages"`
	HasNext     bool           `json:"has_next"`
	HasPrevious bool           `json:"has_previous"`
}

func (h *Handlers) ListFlans(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page, err := parseIntParam(query.Get("page"), 1)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid page")
		return
	}
	pageSize, err := parseIntParam(query.Get("page_size"), h.pageSize)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid page_size")
		return
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	result := h.Flans.Paginate(r.Context(), page, pageSize)

	data := make([]flanResponse, 0, len(result.Data))
	for _, flan := range result.Data {
		data = append(data, toFlanResponse(flan))
	}
	writeJSON(w, http.StatusOK, pageResponse{
		Data:        data,
		TotalCount:  result.TotalCount,
		Page:        result.Page,
		PageSize:    result.PageSize,
		TotalPages:  result.TotalPages,
		HasNext:     result.HasNext(),
		HasPrevious: result.HasPrevious(),
	})
}

func (h *Handlers) GetFlan(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid id")
		return
	}

	flan, err := h.Flans.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, flansdomain.ErrFlanNotFound) {
			h.log.BusinessError("api.flans.get: not found", err, "flan_id", id)
			writeError(w, http.StatusNotFound, "flan_not_found", "flan not found")
			return
		}
		h.log.InternalError("api.flans.get: query failed", err, "flan_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toFlanResponse(flan))
}

func toFlanResponse(flan flansdomain.Record) flanResponse {
	return flanResponse{
		ID:            flan.ID,
		Name:          flan.Name,
		Description:   flan.Description,
		ImageURL:      flan.ImageURL,
		FlanType:      string(flan.Type),
		FlanTypeLabel: flan.TypeLabel(),
		IsPremium:     flan.IsPremium,
		Price:         flan.Price.InexactFloat64(),
		DisplayPrice:  flan.DisplayPrice(),
		CreatorID:     flan.CreatorID,
		CreatedAt:     flan.CreatedAt,
	}
}
