package catalog

import (
	analyticsdomain "onlyflans/internal/domain/analytics"
	flansdomain "onlyflans/internal/domain/flans"
	subscribersdomain "onlyflans/internal/domain/subscribers"
	"onlyflans/pkg/logger"
)

const maxPageSize = 100

type Handlers struct {
	Flans       *flansdomain.Service
	Analytics   *analyticsdomain.Service
	Subscribers *subscribersdomain.Service
	pageSize    int
	log         logger.Logger
}

func New(flans *flansdomain.Service, analytics *analyticsdomain.Service, subscribers *subscribersdomain.Service, pageSize int, log logger.Logger) *Handlers {
	if pageSize <= 0 {
		pageSize = 12
	}
	return &Handlers{
		Flans:       flans,
		Analytics:   analytics,
		Subscribers: subscribers,
		pageSize:    pageSize,
		log:         log,
	}
}
