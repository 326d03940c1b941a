package web

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	subscribersdomain "onlyflans/internal/domain/subscribers"
)

func (h *Handlers) Subscribe(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.log.BusinessError("web.subscribe: bad form", err)
		redirectWithFlash(w, r, "/", FlashError, "Please enter a valid email address.")
		return
	}

	email := r.PostFormValue("email")
	subscriber, err := h.Subscribers.Subscribe(r.Context(), email, r.PostFormValue("name"))
	switch {
	case err == nil:
		h.Analytics.Invalidate()
		redirectWithFlash(w, r, "/", FlashSuccess, "Thanks for subscribing, "+subscriber.DisplayName()+"! Flan news is on its way.")
	case errors.Is(err, subscribersdomain.ErrDuplicateSubscriber):
		redirectWithFlash(w, r, "/", FlashInfo, "That email is already subscribed.")
	case errors.Is(err, subscribersdomain.ErrInvalidEmail):
		h.log.BusinessError("web.subscribe: invalid email", err)
		redirectWithFlash(w, r, "/", FlashError, "Please enter a valid email address.")
	default:
		h.log.InternalError("web.subscribe: failed", err)
		redirectWithFlash(w, r, "/", FlashError, "Something went wrong. Please try again.")
	}
}

// SubscribeThrottled answers subscribe requests rejected by the rate limiter.
func (h *Handlers) SubscribeThrottled(w http.ResponseWriter, r *http.Request) {
	redirectWithFlash(w, r, "/", FlashError, "Too many attempts. Please wait a minute and try again.")
}

type unsubscribeView struct {
	Subscriber subscribersdomain.Record
}

// UnsubscribeConfirm shows the confirmation form. Deactivation happens on POST.
func (h *Handlers) UnsubscribeConfirm(w http.ResponseWriter, r *http.Request) {
	subscriber, err := h.Subscribers.FindByToken(r.Context(), chi.URLParam(r, "token"))
	switch {
	case err == nil:
		h.renderPage(w, r, http.StatusOK, "unsubscribe", "Unsubscribe", unsubscribeView{Subscriber: subscriber})
	case errors.Is(err, subscribersdomain.ErrSubscriberNotFound):
		h.log.BusinessError("web.unsubscribe: unknown token", err)
		redirectWithFlash(w, r, "/", FlashError, "That unsubscribe link is not valid.")
	default:
		h.log.InternalError("web.unsubscribe: lookup failed", err)
		redirectWithFlash(w, r, "/", FlashError, "Something went wrong. Please try again.")
	}
}

func (h *Handlers) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	_, err := h.Subscribers.Unsubscribe(r.Context(), token)
	switch {
	case err == nil:
		h.Analytics.Invalidate()
		redirectWithFlash(w, r, "/", FlashSuccess, "You have been unsubscribed.")
	case errors.Is(err, subscribersdomain.ErrSubscriberNotFound):
		h.log.BusinessError("web.unsubscribe: unknown token", err)
		redirectWithFlash(w, r, "/", FlashError, "That unsubscribe link is not valid.")
	default:
		h.log.InternalError("web.unsubscribe: failed", err)
		redirectWithFlash(w, r, "/", FlashError, "Something went wrong. Please try again.")
	}
}
