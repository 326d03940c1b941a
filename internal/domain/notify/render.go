package notify

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"

	flansdomain "onlyflans/internal/domain/flans"
	subscribersdomain "onlyflans/internal/domain/subscribers"
)

//go:embed templates/*
var templateFS embed.FS

// DigestData is the per-recipient context of the weekly digest.
type DigestData struct {
	Subscriber      subscribersdomain.Record
	Activity        flansdomain.Activity
	SiteURL         string
	UnsubscribeURL  string
	MostPopularName string
}

type AlertData struct {
	Subscriber     subscribersdomain.Record
	Flan           flansdomain.Record
	SiteURL        string
	FlanURL        string
	UnsubscribeURL string
}

type Renderer struct {
	html *htmltemplate.Template
	text *texttemplate.Template
}

func NewRenderer() (*Renderer, error) {
	html, err := htmltemplate.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse html templates: %w", err)
	}
	text, err := texttemplate.ParseFS(templateFS, "templates/*.txt")
	if err != nil {
		return nil, fmt.Errorf("parse text templates: %w", err)
	}
	return &Renderer{html: html, text: text}, nil
}

func (r *Renderer) Digest(data DigestData) (string, string, error) {
	return r.render("weekly_digest", data)
}

func (r *Renderer) Alert(data AlertData) (string, string, error) {
	return r.render("new_flan_alert", data)
}

func (r *Renderer) render(name string, data any) (string, string, error) {
	var html bytes.Buffer
	if err := r.html.ExecuteTemplate(&html, name+".html", data); err != nil {
		return "", "", fmt.Errorf("render %s html: %w", name, err)
	}
	var text bytes.Buffer
	if err := r.text.ExecuteTemplate(&text, name+".txt", data); err != nil {
		return "", "", fmt.Errorf("render %s text: %w", name, err)
	}
	return html.String(), text.String(), nil
}
