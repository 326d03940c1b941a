package app

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"onlyflans/pkg/logger"
)

// cronLogger routes cron's own logging through the application logger.
type cronLogger struct {
	log logger.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.InternalError("cron: "+msg, err, keysAndValues...)
}

// newScheduler returns a UTC cron running job on a standard five-field cron expression.
// Overlapping runs are skipped.
func newScheduler(spec string, log logger.Logger, job func()) (*cron.Cron, error) {
	cl := cronLogger{log: log}
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithLogger(cl),
		cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
	)
	if _, err := c.AddFunc(spec, job); err != nil {
		return nil, fmt.Errorf("digest schedule %q: %w", spec, err)
	}
	return c, nil
}
