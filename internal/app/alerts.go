package app

import (
	"context"
	"time"

	flansdomain "onlyflans/internal/domain/flans"
)

const alertBatchTimeout = 10 * time.Minute

// alertDispatcher sends new flan alerts outside the request that created the flan.
type alertDispatcher struct {
	app *App
}

func (d alertDispatcher) DispatchNewFlan(flan flansdomain.Record) {
	d.app.alerts.Add(1)
	go func() {
		defer d.app.alerts.Done()

		ctx, cancel := context.WithTimeout(context.Background(), alertBatchTimeout)
		defer cancel()

		result, err := d.app.sendAlert(ctx, flan)
		if err != nil {
			d.app.log.InternalError("alerts: batch failed", err, "flan_id", flan.ID)
			return
		}
		d.app.log.Info("alerts: batch finished", "flan_id", flan.ID, "attempted", result.Attempted, "sent", result.Sent, "failed", result.Failed)
	}()
}
