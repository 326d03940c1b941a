package creators

import (
	"context"
	"errors"

	"gorm.io/gorm"
	domain "onlyflans/internal/domain/creators"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List orders featured profiles first, then by name.
func (r *PostgresRepository) List(ctx context.Context, filter domain.ListFilter) ([]domain.FlanCreator, error) {
	query := r.db.WithContext(ctx).Model(&domain.FlanCreator{})
	if filter.FeaturedOnly {
		query = query.Where("is_featured = ?", true)
	}
	if filter.Type != "" {
		query = query.Where("creator_type = ?", filter.Type)
	}

	var creators []domain.FlanCreator
	if err := query.Order("is_featured DESC").Order("name ASC").Order("id ASC").Find(&creators).Error; err != nil {
		return nil, err
	}
	return creators, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id uint) (*domain.FlanCreator, error) {
	var creator domain.FlanCreator
	if err := r.db.WithContext(ctx).First(&creator, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCreatorNotFound
		}
		return nil, err
	}
	return &creator, nil
}

func (r *PostgresRepository) GetByName(ctx context.Context, name string) (*domain.FlanCreator, error) {
	var creator domain.FlanCreator
	if err := r.db.WithContext(ctx).Where("name = ?", name).Order("id ASC").First(&creator).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCreatorNotFound
		}
		return nil, err
	}
	return &creator, nil
}

func (r *PostgresRepository) Create(ctx context.Context, creator *domain.FlanCreator) error {
	return r.db.WithContext(ctx).Create(creator).Error
}
