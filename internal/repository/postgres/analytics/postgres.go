package analytics

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	domain "onlyflans/internal/domain/analytics"
	flansdomain "onlyflans/internal/domain/flans"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CatalogTotals(ctx context.Context) (domain.CatalogTotals, error) {
	var row struct {
		TotalFlans     int64               `gorm:"column:total_flans"`
		PremiumFlans   int64               `gorm:"column:premium_flans"`
		PremiumRevenue decimal.NullDecimal `gorm:"column:premium_revenue"`
		AveragePrice   decimal.NullDecimal `gorm:"column:average_price"`
	}
	err := r.db.WithContext(ctx).
		Model(&flansdomain.Flan{}).
		Select(`COUNT(*) AS total_flans,
			COALESCE(SUM(CASE WHEN is_premium THEN 1 ELSE 0 END), 0) AS premium_flans,
			SUM(CASE WHEN is_premium THEN price END) AS premium_revenue,
			AVG(CASE WHEN is_premium THEN price END) AS average_price`).
		Scan(&row).Error
	if err != nil {
		return domain.CatalogTotals{}, err
	}

	totals := domain.CatalogTotals{
		TotalFlans:          row.TotalFlans,
		PremiumFlans:        row.PremiumFlans,
		PremiumRevenue:      decimal.Zero,
		AveragePremiumPrice: decimal.Zero,
	}
	if row.PremiumRevenue.Valid {
		totals.PremiumRevenue = row.PremiumRevenue.Decimal
	}
	if row.AveragePrice.Valid {
		totals.AveragePremiumPrice = row.AveragePrice.Decimal
	}
	return totals, nil
}

func (r *PostgresRepository) FlanExists(ctx context.Context, flanID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&flansdomain.Flan{}).Where("id = ?", flanID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
