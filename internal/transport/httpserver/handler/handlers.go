package handler

import (
	cataloghandler "onlyflans/internal/transport/httpserver/handler/catalog"
	commonhandler "onlyflans/internal/transport/httpserver/handler/common"
	webhandler "onlyflans/internal/transport/httpserver/handler/web"
)

type Handlers struct {
	Common  *commonhandler.Handlers
	Catalog *cataloghandler.Handlers
	Web     *webhandler.Handlers
}

func New(common *commonhandler.Handlers, catalog *cataloghandler.Handlers, web *webhandler.Handlers) *Handlers {
	return &Handlers{
		Common:  common,
		Catalog: catalog,
		Web:     web,
	}
}
