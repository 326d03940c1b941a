package subscribers

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"
	flansdomain "onlyflans/internal/domain/flans"
	"onlyflans/pkg/logger"
)

const maxErrorLength = 1000

type Service struct {
	repo Repository
	log  logger.Logger
}

func NewService(repo Repository, log logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Subscribe creates a new active subscriber opted into every mailing. An existing
// address is rejected with ErrDuplicateSubscriber and left untouched.
func (s *Service) Subscribe(ctx context.Context, email, name string) (Record, error) {
	normalized, err := normalizeEmail(email)
	if err != nil {
		return Record{}, err
	}

	exists, err := s.repo.ExistsByEmail(ctx, normalized)
	if err != nil {
		s.log.InternalError("subscribers.subscribe: lookup failed", err, "email", normalized)
		return Record{}, fmt.Errorf("lookup subscriber: %w", err)
	}
	if exists {
		s.log.BusinessError("subscribers.subscribe: duplicate", ErrDuplicateSubscriber, "email", normalized)
		return Record{}, ErrDuplicateSubscriber
	}

	subscriber := Subscriber{
		Email:                normalized,
		Name:                 strings.TrimSpace(name),
		IsActive:             true,
		ReceiveWeeklyDigest:  true,
		ReceiveNewFlanAlerts: true,
		UnsubscribeToken:     uuid.NewString(),
	}
	if err := s.repo.Create(ctx, &subscriber); err != nil {
		if errors.Is(err, ErrDuplicateSubscriber) {
			s.log.BusinessError("subscribers.subscribe: duplicate on insert", err, "email", normalized)
			return Record{}, ErrDuplicateSubscriber
		}
		s.log.InternalError("subscribers.subscribe: insert failed", err, "email", normalized)
		return Record{}, fmt.Errorf("create subscriber: %w", err)
	}

	s.log.Info("subscribers.subscribe: created", "subscriber_id", subscriber.ID, "email", normalized)
	return FromModel(subscriber), nil
}

func (s *Service) ListForDigest(ctx context.Context) []Record {
	return s.listActive(ctx, AudienceFilter{WeeklyDigest: true})
}

func (s *Service) ListForAlerts(ctx context.Context, flanType flansdomain.FlanType) []Record {
	return s.listActive(ctx, AudienceFilter{NewFlanAlert: true, AlertType: flanType})
}

func (s *Service) listActive(ctx context.Context, filter AudienceFilter) []Record {
	subscribers, err := s.repo.ListActive(ctx, filter)
	if err != nil {
		s.log.InternalError("subscribers.list: query failed", err, "weekly_digest", filter.WeeklyDigest, "new_flan_alert", filter.NewFlanAlert)
		return []Record{}
	}

	result := make([]Record, 0, len(subscribers))
	for _, subscriber := range subscribers {
		result = append(result, FromModel(subscriber))
	}
	return result
}

func (s *Service) ActiveCount(ctx context.Context) int64 {
	return s.CountsByPreference(ctx).TotalActive
}

func (s *Service) CountsByPreference(ctx context.Context) PreferenceCounts {
	counts, err := s.repo.CountByPreference(ctx)
	if err != nil {
		s.log.InternalError("subscribers.counts: query failed", err)
		return PreferenceCounts{}
	}
	return counts
}

// FindByToken resolves an unsubscribe token without changing the subscriber.
func (s *Service) FindByToken(ctx context.Context, token string) (Record, error) {
	subscriber, err := s.getByToken(ctx, token)
	if err != nil {
		return Record{}, err
	}
	return FromModel(*subscriber), nil
}

func (s *Service) Unsubscribe(ctx context.Context, token string) (Record, error) {
	subscriber, err := s.getByToken(ctx, token)
	if err != nil {
		return Record{}, err
	}
	if subscriber.IsActive {
		if err := s.repo.SetActive(ctx, subscriber.ID, false); err != nil {
			return Record{}, fmt.Errorf("deactivate subscriber: %w", err)
		}
		subscriber.IsActive = false
		s.log.Info("subscribers.unsubscribe: deactivated", "subscriber_id", subscriber.ID)
	}
	return FromModel(*subscriber), nil
}

func (s *Service) getByToken(ctx context.Context, token string) (*Subscriber, error) {
	token = strings.TrimSpace(token)
	if _, err := uuid.Parse(token); err != nil {
		return nil, ErrSubscriberNotFound
	}
	return s.repo.GetByToken(ctx, token)
}

// RecordDelivery appends the audit row for one send attempt.
func (s *Service) RecordDelivery(ctx context.Context, subscriberID uint, subject string, deliveryErr error) error {
	entry := EmailLog{
		SubscriberID:  subscriberID,
		Subject:       subject,
		WasSuccessful: deliveryErr == nil,
	}
	if deliveryErr != nil {
		entry.Error = truncate(deliveryErr.Error(), maxErrorLength)
	}
	if err := s.repo.CreateEmailLog(ctx, &entry); err != nil {
		return fmt.Errorf("create email log: %w", err)
	}
	return nil
}

func (s *Service) DeliveryCounts(ctx context.Context, subscriberID uint) (DeliveryCounts, error) {
	return s.repo.CountEmailLogs(ctx, subscriberID)
}

func normalizeEmail(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", ErrInvalidEmail
	}
	address, err := mail.ParseAddress(value)
	if err != nil || address.Address != value {
		return "", ErrInvalidEmail
	}
	return strings.ToLower(address.Address), nil
}

func truncate(value string, limit int) string {
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	return string(runes[:limit])
}
