package subscribers

import (
	"context"
	"errors"

	"gorm.io/gorm"
	domain "onlyflans/internal/domain/subscribers"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Subscriber{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create inserts subscriber. A unique violation on email surfaces as
// ErrDuplicateSubscriber.
func (r *PostgresRepository) Create(ctx context.Context, subscriber *domain.Subscriber) error {
	if err := r.db.WithContext(ctx).Create(subscriber).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateSubscriber
		}
		return err
	}
	return nil
}

func (r *PostgresRepository) GetByToken(ctx context.Context, token string) (*domain.Subscriber, error) {
	var subscriber domain.Subscriber
	if err := r.db.WithContext(ctx).Where("unsubscribe_token = ?", token).First(&subscriber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSubscriberNotFound
		}
		return nil, err
	}
	return &subscriber, nil
}

func (r *PostgresRepository) SetActive(ctx context.Context, id uint, active bool) error {
	result := r.db.WithContext(ctx).Model(&domain.Subscriber{}).Where("id = ?", id).Update("is_active", active)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrSubscriberNotFound
	}
	return nil
}

func (r *PostgresRepository) ListActive(ctx context.Context, filter domain.AudienceFilter) ([]domain.Subscriber, error) {
	query := r.db.WithContext(ctx).Model(&domain.Subscriber{}).Where("is_active = ?", true)
	if filter.WeeklyDigest {
		query = query.Where("receive_weekly_digest = ?", true)
	}
	if filter.NewFlanAlert {
		query = query.Where("receive_new_flan_alerts = ?", true)
	}
	if filter.AlertType != "" {
		query = query.Where("(favorite_flan_type = '' OR favorite_flan_type = ?)", filter.AlertType)
	}

	var subscribers []domain.Subscriber
	if err := query.Order("id ASC").Find(&subscribers).Error; err != nil {
		return nil, err
	}
	return subscribers, nil
}

func (r *PostgresRepository) CountByPreference(ctx context.Context) (domain.PreferenceCounts, error) {
	var counts domain.PreferenceCounts
	base := r.db.WithContext(ctx).Model(&domain.Subscriber{})

	if err := base.Session(&gorm.Session{}).Where("receive_weekly_digest = ?", true).Count(&counts.WeeklyDigest).Error; err != nil {
		return domain.PreferenceCounts{}, err
	}
	if err := base.Session(&gorm.Session{}).Where("receive_new_flan_alerts = ?", true).Count(&counts.NewFlanAlerts).Error; err != nil {
		return domain.PreferenceCounts{}, err
	}
	if err := base.Session(&gorm.Session{}).Where("is_active = ?", true).Count(&counts.TotalActive).Error; err != nil {
		return domain.PreferenceCounts{}, err
	}
	return counts, nil
}

func (r *PostgresRepository) CreateEmailLog(ctx context.Context, log *domain.EmailLog) error {
	return r.db.WithContext(ctx).Omit("Subscriber").Create(log).Error
}

func (r *PostgresRepository) CountEmailLogs(ctx context.Context, subscriberID uint) (domain.DeliveryCounts, error) {
	var row struct {
		Total      int64 `gorm:"column:total"`
		Successful int64 `gorm:"column:successful"`
	}
	err := r.db.WithContext(ctx).
		Model(&domain.EmailLog{}).
		Select("COUNT(*) AS total, COALESCE(SUM(CASE WHEN was_successful THEN 1 ELSE 0 END), 0) AS successful").
		Where("subscriber_id = ?", subscriberID).
		Scan(&row).Error
	if err != nil {
		return domain.DeliveryCounts{}, err
	}
	return domain.DeliveryCounts{
		Total:      row.Total,
		Successful: row.Successful,
		Failed:     row.Total - row.Successful,
	}, nil
}
