package notify

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	flansdomain "onlyflans/internal/domain/flans"
	subscribersdomain "onlyflans/internal/domain/subscribers"
	"onlyflans/pkg/logger"
)

const (
	defaultLookbackDays = 7
	recordTimeout       = 5 * time.Second
)

type Audience interface {
	ListForDigest(ctx context.Context) []subscribersdomain.Record
	ListForAlerts(ctx context.Context, flanType flansdomain.FlanType) []subscribersdomain.Record
	RecordDelivery(ctx context.Context, subscriberID uint, subject string, deliveryErr error) error
}

type Catalog interface {
	RecentActivityDays(ctx context.Context, days int) (flansdomain.Activity, error)
}

type Config struct {
	SiteURL      string
	LookbackDays int
}

type Notifier struct {
	audience Audience
	catalog  Catalog
	sender   Sender
	renderer *Renderer
	log      logger.Logger
	observer DeliveryObserver
	siteURL  string
	lookback int
}

func NewNotifier(audience Audience, catalog Catalog, sender Sender, renderer *Renderer, log logger.Logger, cfg Config) *Notifier {
	lookback := cfg.LookbackDays
	if lookback <= 0 {
		lookback = defaultLookbackDays
	}
	return &Notifier{
		audience: audience,
		catalog:  catalog,
		sender:   sender,
		renderer: renderer,
		log:      log,
		observer: noopObserver{},
		siteURL:  strings.TrimRight(cfg.SiteURL, "/"),
		lookback: lookback,
	}
}

func (n *Notifier) SetObserver(observer DeliveryObserver) {
	if observer == nil {
		observer = noopObserver{}
	}
	n.observer = observer
}

func DigestSubject(newCount int64) string {
	return fmt.Sprintf("🍮 Your Weekly Flan Digest - %d New Flans!", newCount)
}

func AlertSubject(flanName string) string {
	return "🍮 New Flan Alert: " + flanName
}

// SendWeeklyDigest mails the recent activity summary to every digest subscriber.
// Stats are computed once per batch; a failed recipient does not stop the batch.
func (n *Notifier) SendWeeklyDigest(ctx context.Context) (BatchResult, error) {
	activity, err := n.catalog.RecentActivityDays(ctx, n.lookback)
	if err != nil {
		n.log.InternalError("notify.digest: activity failed", err)
		return BatchResult{}, fmt.Errorf("recent activity: %w", err)
	}

	subject := DigestSubject(activity.NewCount)
	recipients := n.audience.ListForDigest(ctx)
	n.log.Info("notify.digest: starting", "recipients", len(recipients), "new_flans", activity.NewCount)

	result, err := n.deliver(ctx, KindWeeklyDigest, subject, recipients, func(subscriber subscribersdomain.Record) (string, string, error) {
		return n.renderer.Digest(DigestData{
			Subscriber:      subscriber,
			Activity:        activity,
			SiteURL:         n.siteURL,
			UnsubscribeURL:  n.unsubscribeURL(subscriber),
			MostPopularName: activity.MostPopularType.Label(),
		})
	})
	n.log.Info("notify.digest: finished", "attempted", result.Attempted, "sent", result.Sent, "failed", result.Failed)
	return result, err
}

// SendNewFlanAlert mails flan to alert subscribers whose favorite type is empty or matches.
func (n *Notifier) SendNewFlanAlert(ctx context.Context, flan flansdomain.Record) (BatchResult, error) {
	subject := AlertSubject(flan.Name)
	recipients := n.audience.ListForAlerts(ctx, flan.Type)
	flanURL := n.siteURL + "/flan/" + strconv.FormatUint(uint64(flan.ID), 10)
	n.log.Info("notify.alert: starting", "flan_id", flan.ID, "recipients", len(recipients))

	result, err := n.deliver(ctx, KindNewFlanAlert, subject, recipients, func(subscriber subscribersdomain.Record) (string, string, error) {
		return n.renderer.Alert(AlertData{
			Subscriber:     subscriber,
			Flan:           flan,
			SiteURL:        n.siteURL,
			FlanURL:        flanURL,
			UnsubscribeURL: n.unsubscribeURL(subscriber),
		})
	})
	n.log.Info("notify.alert: finished", "flan_id", flan.ID, "attempted", result.Attempted, "sent", result.Sent, "failed", result.Failed)
	return result, err
}

type renderFunc func(subscriber subscribersdomain.Record) (string, string, error)

func (n *Notifier) deliver(ctx context.Context, kind, subject string, recipients []subscribersdomain.Record, render renderFunc) (BatchResult, error) {
	var result BatchResult
	for _, subscriber := range recipients {
		if err := ctx.Err(); err != nil {
			n.log.Warn("notify.deliver: cancelled", "kind", kind, "attempted", result.Attempted, "remaining", len(recipients)-result.Attempted)
			return result, err
		}

		result.Attempted++
		sendErr := n.sendOne(ctx, subject, subscriber, render)
		n.observer.ObserveDelivery(kind, sendErr)
		if sendErr != nil {
			result.Failed++
			n.log.BusinessError("notify.deliver: send failed", sendErr, "kind", kind, "subscriber_id", subscriber.ID, "email", subscriber.Email)
		} else {
			result.Sent++
			n.log.Debug("notify.deliver: sent", "kind", kind, "subscriber_id", subscriber.ID)
		}

		n.recordDelivery(ctx, kind, subject, subscriber.ID, sendErr)
	}
	return result, nil
}

// recordDelivery writes the audit row even when the batch context is already done.
func (n *Notifier) recordDelivery(ctx context.Context, kind, subject string, subscriberID uint, sendErr error) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recordTimeout)
	defer cancel()

	if err := n.audience.RecordDelivery(ctx, subscriberID, subject, sendErr); err != nil {
		n.log.InternalError("notify.deliver: email log failed", err, "kind", kind, "subscriber_id", subscriberID)
	}
}

func (n *Notifier) sendOne(ctx context.Context, subject string, subscriber subscribersdomain.Record, render renderFunc) error {
	html, text, err := render(subscriber)
	if err != nil {
		return err
	}
	return n.sender.Send(ctx, Message{
		To:       subscriber.Email,
		ToName:   subscriber.Name,
		Subject:  subject,
		HTMLBody: html,
		TextBody: text,
	})
}

func (n *Notifier) unsubscribeURL(subscriber subscribersdomain.Record) string {
	return n.siteURL + "/unsubscribe/" + subscriber.UnsubscribeToken
}
