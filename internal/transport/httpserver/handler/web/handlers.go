package web

import (
	"net/http"

	analyticsdomain "onlyflans/internal/domain/analytics"
	creatorsdomain "onlyflans/internal/domain/creators"
	flansdomain "onlyflans/internal/domain/flans"
	subscribersdomain "onlyflans/internal/domain/subscribers"
	"onlyflans/internal/transport/httpserver/middleware"
	"onlyflans/pkg/logger"
)

// AlertDispatcher announces a freshly published flan to subscribers.
type AlertDispatcher interface {
	DispatchNewFlan(flan flansdomain.Record)
}

type Handlers struct {
	Flans       *flansdomain.Service
	Creators    *creatorsdomain.Service
	Subscribers *subscribersdomain.Service
	Analytics   *analyticsdomain.Service
	alerts      AlertDispatcher
	renderer    *Renderer
	pageSize    int
	log         logger.Logger
}

type Options struct {
	PageSize int
	// Alerts is nil when new flan alerts are disabled.
	Alerts AlertDispatcher
}

func New(
	flans *flansdomain.Service,
	creators *creatorsdomain.Service,
	subscribers *subscribersdomain.Service,
	analytics *analyticsdomain.Service,
	renderer *Renderer,
	opts Options,
	log logger.Logger,
) *Handlers {
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = 12
	}
	return &Handlers{
		Flans:       flans,
		Creators:    creators,
		Subscribers: subscribers,
		Analytics:   analytics,
		alerts:      opts.Alerts,
		renderer:    renderer,
		pageSize:    pageSize,
		log:         log,
	}
}

func (h *Handlers) renderPage(w http.ResponseWriter, r *http.Request, status int, name, title string, body any) {
	data := page{
		Title: title,
		Flash: popFlash(w, r),
		Body:  body,
	}
	if user, ok := middleware.UserFromContext(r.Context()); ok {
		data.User = &user
	}

	if err := h.renderer.render(w, status, name, data); err != nil {
		h.log.InternalError("web.render: failed", err, "page", name)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

type typeOption struct {
	Value    string
	Label    string
	Selected bool
}

func typeOptions(selected flansdomain.FlanType) []typeOption {
	options := make([]typeOption, 0, len(flansdomain.FlanTypes))
	for _, flanType := range flansdomain.FlanTypes {
		options = append(options, typeOption{
			Value:    string(flanType),
			Label:    flanType.Label(),
			Selected: flanType == selected,
		})
	}
	return options
}
