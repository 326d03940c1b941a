package creators

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"onlyflans/internal/db/dbtest"
	domain "onlyflans/internal/domain/creators"
)

func TestCreateClampsSatisfaction(t *testing.T) {
	repo := NewPostgres(dbtest.New(t))
	ctx := context.Background()

	creator := domain.FlanCreator{
		Name:             "Chef Overachiever",
		CreatorType:      domain.CreatorTypeChef,
		SatisfactionRate: 140,
		TotalEarnings:    decimal.RequireFromString("1520.50"),
	}
	require.NoError(t, repo.Create(ctx, &creator))

	stored, err := repo.GetByID(ctx, creator.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, stored.SatisfactionRate)
	assert.Equal(t, "1520.50", stored.TotalEarnings.StringFixed(2))
}

func TestListFeaturedFirst(t *testing.T) {
	repo := NewPostgres(dbtest.New(t))
	ctx := context.Background()

	for _, creator := range []domain.FlanCreator{
		{Name: "Zoe", CreatorType: domain.CreatorTypeInfluencer},
		{Name: "Abuela Rosa", CreatorType: domain.CreatorTypeGrandma},
		{Name: "Marco", CreatorType: domain.CreatorTypeChef, IsFeatured: true},
	} {
		creator := creator
		require.NoError(t, repo.Create(ctx, &creator))
	}

	all, err := repo.List(ctx, domain.ListFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Marco", all[0].Name)
	assert.Equal(t, "Abuela Rosa", all[1].Name)
	assert.Equal(t, "Zoe", all[2].Name)

	featured, err := repo.List(ctx, domain.ListFilter{FeaturedOnly: true})
	require.NoError(t, err)
	require.Len(t, featured, 1)

	grandmas, err := repo.List(ctx, domain.ListFilter{Type: domain.CreatorTypeGrandma})
	require.NoError(t, err)
	require.Len(t, grandmas, 1)
	assert.Equal(t, "Abuela Rosa", grandmas[0].Name)
}

func TestLookupsReturnNotFound(t *testing.T) {
	repo := NewPostgres(dbtest.New(t))
	ctx := context.Background()

	_, err := repo.GetByID(ctx, 9)
	assert.ErrorIs(t, err, domain.ErrCreatorNotFound)

	_, err = repo.GetByName(ctx, "Nobody")
	assert.ErrorIs(t, err, domain.ErrCreatorNotFound)
}
