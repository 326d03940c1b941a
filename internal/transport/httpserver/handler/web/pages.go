package web

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	analyticsdomain "onlyflans/internal/domain/analytics"
	creatorsdomain "onlyflans/internal/domain/creators"
	flansdomain "onlyflans/internal/domain/flans"
	commonhandler "onlyflans/internal/transport/httpserver/handler/common"
)

type indexView struct {
	Stats   analyticsdomain.SystemSummary
	Page    flansdomain.PageResult
	Types   []typeOption
	Query   string
	PrevURL string
	NextURL string
}

func (h *Handlers) Index(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page, err := commonhandler.ParseIntParam(query.Get("page"), 1)
	if err != nil || page < 1 {
		page = 1
	}

	filter := flansdomain.ListFilter{Query: strings.TrimSpace(query.Get("q"))}
	if flanType := flansdomain.FlanType(query.Get("type")); flanType.Valid() {
		filter.Type = flanType
	}

	result := h.Flans.PaginateFiltered(r.Context(), filter, page, h.pageSize)

	h.renderPage(w, r, http.StatusOK, "index", "", indexView{
		Stats:   h.Analytics.Summary(r.Context()),
		Page:    result,
		Types:   typeOptions(filter.Type),
		Query:   filter.Query,
		PrevURL: pageURL(filter, result.Page-1),
		NextURL: pageURL(filter, result.Page+1),
	})
}

func pageURL(filter flansdomain.ListFilter, page int) string {
	values := url.Values{}
	if filter.Type != "" {
		values.Set("type", string(filter.Type))
	}
	if filter.Query != "" {
		values.Set("q", filter.Query)
	}
	values.Set("page", strconv.Itoa(page))
	return "/?" + values.Encode()
}

type flanDetailView struct {
	Flan    flansdomain.Record
	Creator *creatorsdomain.Record
	Stats   *analyticsdomain.FlanAnalytics
}

func (h *Handlers) FlanDetail(w http.ResponseWriter, r *http.Request) {
	id, err := commonhandler.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		redirectWithFlash(w, r, "/", FlashError, "Flan not found.")
		return
	}

	flan, err := h.Flans.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, flansdomain.ErrFlanNotFound) {
			h.log.BusinessError("web.flan_detail: not found", err, "flan_id", id)
		} else {
			h.log.InternalError("web.flan_detail: lookup failed", err, "flan_id", id)
		}
		redirectWithFlash(w, r, "/", FlashError, "Flan not found.")
		return
	}

	view := flanDetailView{Flan: flan}
	if flan.FeaturedCreatorID != nil {
		creator, err := h.Creators.Get(r.Context(), *flan.FeaturedCreatorID)
		if err == nil {
			view.Creator = &creator
		} else if !errors.Is(err, creatorsdomain.ErrCreatorNotFound) {
			h.log.InternalError("web.flan_detail: creator lookup failed", err, "flan_id", id)
		}
	}
	if stats, err := h.Analytics.FlanAnalytics(r.Context(), id); err == nil {
		view.Stats = &stats
	} else {
		h.log.InternalError("web.flan_detail: analytics failed", err, "flan_id", id)
	}

	h.renderPage(w, r, http.StatusOK, "flan_detail", flan.Name, view)
}

func (h *Handlers) FAQ(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, http.StatusOK, "faq", "FAQ", nil)
}

type creatorsView struct {
	Creators []creatorsdomain.Record
}

func (h *Handlers) ListCreators(w http.ResponseWriter, r *http.Request) {
	filter := creatorsdomain.ListFilter{}
	if creatorType := creatorsdomain.CreatorType(r.URL.Query().Get("type")); creatorType.Valid() {
		filter.Type = creatorType
	}
	h.renderPage(w, r, http.StatusOK, "creators", "Creators", creatorsView{
		Creators: h.Creators.List(r.Context(), filter),
	})
}

type creatorDetailView struct {
	Creator creatorsdomain.Record
	Flans   []flansdomain.Record
}

func (h *Handlers) CreatorDetail(w http.ResponseWriter, r *http.Request) {
	id, err := commonhandler.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		redirectWithFlash(w, r, "/creators", FlashError, "Creator not found.")
		return
	}

	creator, err := h.Creators.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, creatorsdomain.ErrCreatorNotFound) {
			h.log.BusinessError("web.creator_detail: not found", err, "creator_id", id)
		} else {
			h.log.InternalError("web.creator_detail: lookup failed", err, "creator_id", id)
		}
		redirectWithFlash(w, r, "/creators", FlashError, "Creator not found.")
		return
	}

	h.renderPage(w, r, http.StatusOK, "creator_detail", creator.Name, creatorDetailView{
		Creator: creator,
		Flans:   h.Flans.List(r.Context(), flansdomain.ListFilter{FeaturedCreatorID: &creator.ID}),
	})
}
