package subscribers

import "context"

type Repository interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, subscriber *Subscriber) error
	GetByToken(ctx context.Context, token string) (*Subscriber, error)
	SetActive(ctx context.Context, id uint, active bool) error
	ListActive(ctx context.Context, filter AudienceFilter) ([]Subscriber, error)
	CountByPreference(ctx context.Context) (PreferenceCounts, error)
	CreateEmailLog(ctx context.Context, log *EmailLog) error
	CountEmailLogs(ctx context.Context, subscriberID uint) (DeliveryCounts, error)
}
