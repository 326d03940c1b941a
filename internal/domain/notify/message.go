package notify

import (
	"context"
	"errors"
)

const (
	KindWeeklyDigest = "weekly_digest"
	KindNewFlanAlert = "new_flan_alert"
)

var ErrEmptyRecipient = errors.New("message has no recipient")

type Message struct {
	To       string
	ToName   string
	Subject  string
	HTMLBody string
	TextBody string
}

type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// DeliveryObserver is told about every send attempt after it completes.
type DeliveryObserver interface {
	ObserveDelivery(kind string, err error)
}

type noopObserver struct{}

func (noopObserver) ObserveDelivery(string, error) {}

type BatchResult struct {
	Attempted int
	Sent      int
	Failed    int
}
