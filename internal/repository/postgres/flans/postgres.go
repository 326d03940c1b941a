package flans

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"onlyflans/internal/db"
	domain "onlyflans/internal/domain/flans"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context, filter domain.ListFilter) ([]domain.Flan, error) {
	query := r.filtered(ctx, filter).Order("created_at DESC").Order("id DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var flans []domain.Flan
	if err := query.Find(&flans).Error; err != nil {
		return nil, err
	}
	return flans, nil
}

func (r *PostgresRepository) Count(ctx context.Context, filter domain.ListFilter) (int64, error) {
	var count int64
	if err := r.filtered(ctx, filter).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id uint) (*domain.Flan, error) {
	var flan domain.Flan
	if err := r.db.WithContext(ctx).First(&flan, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFlanNotFound
		}
		return nil, err
	}
	return &flan, nil
}

func (r *PostgresRepository) Create(ctx context.Context, flan *domain.Flan) error {
	return r.db.WithContext(ctx).Omit("Creator", "FeaturedCreator").Create(flan).Error
}

func (r *PostgresRepository) CountTypesSince(ctx context.Context, since time.Time) ([]domain.TypeCount, error) {
	var rows []struct {
		FlanType domain.FlanType `gorm:"column:flan_type"`
		Count    int64           `gorm:"column:count"`
	}
	err := r.db.WithContext(ctx).
		Model(&domain.Flan{}).
		Select("flan_type, COUNT(*) AS count").
		Where("created_at >= ?", since.UTC()).
		Group("flan_type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make([]domain.TypeCount, 0, len(rows))
	for _, row := range rows {
		result = append(result, domain.TypeCount{FlanType: row.FlanType, Count: row.Count})
	}
	return result, nil
}

func (r *PostgresRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Flan{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresRepository) filtered(ctx context.Context, filter domain.ListFilter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&domain.Flan{})
	if filter.Type != "" {
		query = query.Where("flan_type = ?", filter.Type)
	}
	if filter.Premium != nil {
		query = query.Where("is_premium = ?", *filter.Premium)
	}
	if filter.FeaturedCreatorID != nil {
		query = query.Where("featured_creator_id = ?", *filter.FeaturedCreatorID)
	}
	if filter.CreatedSince != nil {
		query = query.Where("created_at >= ?", filter.CreatedSince.UTC())
	}
	if term := strings.TrimSpace(filter.Query); term != "" {
		pattern := db.ContainsPattern(r.db, term)
		query = query.Where(
			r.db.Where(db.CaseInsensitiveLikeExpr(r.db, "name"), pattern).
				Or(db.CaseInsensitiveLikeExpr(r.db, "description"), pattern),
		)
	}
	return query
}
