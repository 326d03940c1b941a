package web

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	creatorsdomain "onlyflans/internal/domain/creators"
	flansdomain "onlyflans/internal/domain/flans"
	"onlyflans/internal/transport/httpserver/middleware"
)

const (
	maxNameLength     = 200
	maxImageURLLength = 500
)

type flanForm struct {
	Name              string
	Description       string
	ImageURL          string
	FlanType          string
	IsPremium         bool
	Price             string
	FeaturedCreatorID uint
}

type flanFormView struct {
	Form     flanForm
	Errors   []string
	Types    []typeOption
	Creators []creatorsdomain.Record
}

func (h *Handlers) CreateForm(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.UserFromContext(r.Context()); !ok {
		redirectWithFlash(w, r, "/", FlashError, "Please sign in to publish a flan.")
		return
	}
	h.renderForm(w, r, http.StatusOK, flanForm{FlanType: string(flansdomain.FlanTypeVanilla), Price: "0.00"}, nil)
}

func (h *Handlers) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		redirectWithFlash(w, r, "/", FlashError, "Please sign in to publish a flan.")
		return
	}
	if err := r.ParseForm(); err != nil {
		h.log.BusinessError("web.create: bad form", err)
		h.renderForm(w, r, http.StatusBadRequest, flanForm{}, []string{"The form could not be read."})
		return
	}

	form := readFlanForm(r)
	input, formErrs := h.toCreateInput(r, form)
	if len(formErrs) > 0 {
		messages := append(formErrs, flansdomain.Validate(input).Messages()...)
		h.log.BusinessError("web.create: invalid form", nil, "user_id", user.ID, "errors", len(messages))
		h.renderForm(w, r, http.StatusUnprocessableEntity, form, messages)
		return
	}

	flan, err := h.Flans.Create(r.Context(), user.ID, input)
	if err != nil {
		var validation flansdomain.ValidationErrors
		if errors.As(err, &validation) {
			h.log.BusinessError("web.create: validation failed", err, "user_id", user.ID)
			h.renderForm(w, r, http.StatusUnprocessableEntity, form, validation.Messages())
			return
		}
		h.log.InternalError("web.create: failed", err, "user_id", user.ID)
		h.renderForm(w, r, http.StatusInternalServerError, form, []string{"Something went wrong. Please try again."})
		return
	}

	h.Analytics.Invalidate()
	if h.alerts != nil {
		h.alerts.DispatchNewFlan(flan)
	}
	redirectWithFlash(w, r, "/flan/"+strconv.FormatUint(uint64(flan.ID), 10), FlashSuccess, "Your flan \""+flan.Name+"\" is live!")
}

func (h *Handlers) renderForm(w http.ResponseWriter, r *http.Request, status int, form flanForm, errs []string) {
	h.renderPage(w, r, status, "flan_form", "Publish a flan", flanFormView{
		Form:     form,
		Errors:   errs,
		Types:    typeOptions(flansdomain.FlanType(form.FlanType)),
		Creators: h.Creators.List(r.Context(), creatorsdomain.ListFilter{}),
	})
}

func readFlanForm(r *http.Request) flanForm {
	form := flanForm{
		Name:        strings.TrimSpace(r.PostFormValue("name")),
		Description: strings.TrimSpace(r.PostFormValue("description")),
		ImageURL:    strings.TrimSpace(r.PostFormValue("image_url")),
		FlanType:    strings.TrimSpace(r.PostFormValue("flan_type")),
		IsPremium:   isChecked(r.PostFormValue("is_premium")),
		Price:       strings.TrimSpace(r.PostFormValue("price")),
	}
	if id, err := strconv.ParseUint(strings.TrimSpace(r.PostFormValue("featured_creator_id")), 10, 64); err == nil {
		form.FeaturedCreatorID = uint(id)
	}
	return form
}

// toCreateInput converts the form and collects the checks the form owns. Domain
// rules are applied by the service.
func (h *Handlers) toCreateInput(r *http.Request, form flanForm) (flansdomain.CreateInput, []string) {
	var errs []string

	input := flansdomain.CreateInput{
		Name:        form.Name,
		Description: form.Description,
		ImageURL:    form.ImageURL,
		Type:        flansdomain.FlanType(form.FlanType),
		IsPremium:   form.IsPremium,
		Price:       decimal.Zero,
	}

	if utf8.RuneCountInString(form.Name) > maxNameLength {
		errs = append(errs, "Name must be at most 200 characters")
	}
	if !validImageURL(form.ImageURL) {
		errs = append(errs, "Image URL must be a valid http(s) URL of at most 500 characters")
	}
	if form.Price != "" {
		price, err := decimal.NewFromString(form.Price)
		if err != nil {
			errs = append(errs, "Price must be a number")
		} else {
			input.Price = price
		}
	}
	if form.FeaturedCreatorID != 0 {
		if _, err := h.Creators.Get(r.Context(), form.FeaturedCreatorID); err != nil {
			errs = append(errs, "Featured creator does not exist")
		} else {
			id := form.FeaturedCreatorID
			input.FeaturedCreatorID = &id
		}
	}

	return input, errs
}

func validImageURL(raw string) bool {
	if raw == "" || len(raw) > maxImageURLLength {
		return false
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}

func isChecked(value string) bool {
	switch strings.ToLower(value) {
	case "on", "true", "1", "yes":
		return true
	default:
		return false
	}
}
