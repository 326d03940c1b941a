package analytics

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"onlyflans/internal/db/dbtest"
	flansdomain "onlyflans/internal/domain/flans"
	userdomain "onlyflans/internal/domain/user"
)

func TestCatalogTotals(t *testing.T) {
	conn := dbtest.New(t)
	repo := NewPostgres(conn)
	ctx := context.Background()

	empty, err := repo.CatalogTotals(ctx)
	require.NoError(t, err)
	assert.Zero(t, empty.TotalFlans)
	assert.True(t, empty.PremiumRevenue.IsZero())
	assert.True(t, empty.AveragePremiumPrice.IsZero())

	user := userdomain.User{Username: "chef"}
	require.NoError(t, conn.Create(&user).Error)
	for _, flan := range []flansdomain.Flan{
		{Name: "Free One", Description: "Costs nothing at all.", FlanType: flansdomain.FlanTypeVanilla},
		{Name: "Premium One", Description: "Costs a little bit.", FlanType: flansdomain.FlanTypeCoffee, IsPremium: true, Price: decimal.RequireFromString("4.00")},
		{Name: "Premium Two", Description: "Costs a bit more.", FlanType: flansdomain.FlanTypeSpecial, IsPremium: true, Price: decimal.RequireFromString("6.00")},
	} {
		flan := flan
		flan.CreatorID = user.ID
		require.NoError(t, conn.Omit("Creator", "FeaturedCreator").Create(&flan).Error)
	}

	totals, err := repo.CatalogTotals(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), totals.TotalFlans)
	assert.Equal(t, int64(2), totals.PremiumFlans)
	assert.Equal(t, "10.00", totals.PremiumRevenue.StringFixed(2))
	assert.Equal(t, "5.00", totals.AveragePremiumPrice.StringFixed(2))

	exists, err := repo.FlanExists(ctx, 1)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.FlanExists(ctx, 99)
	require.NoError(t, err)
	assert.False(t, exists)
}
