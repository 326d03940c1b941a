// Package seed loads the sample catalog used in development and demos.
package seed

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	creatorsdomain "onlyflans/internal/domain/creators"
	flansdomain "onlyflans/internal/domain/flans"
	userdomain "onlyflans/internal/domain/user"
	"onlyflans/pkg/logger"
)

// DefaultCreator owns the sample flans.
var DefaultCreator = struct {
	Username, Email, Name string
}{"flancreator", "creator@onlyflans.com", "Flan Master"}

// Result counts rows inserted and rows that already existed.
type Result struct {
	Created int
	Skipped int
}

type Seeder struct {
	users    *userdomain.Service
	flans    *flansdomain.Service
	creators *creatorsdomain.Service
	log      logger.Logger
}

func New(users *userdomain.Service, flans *flansdomain.Service, creators *creatorsdomain.Service, log logger.Logger) *Seeder {
	return &Seeder{users: users, flans: flans, creators: creators, log: log}
}

// Flans inserts the sample flans that are not present yet, matched by name.
func (s *Seeder) Flans(ctx context.Context) (Result, error) {
	owner, err := s.users.EnsureUser(ctx, DefaultCreator.Username, DefaultCreator.Email, DefaultCreator.Name)
	if err != nil {
		return Result{}, fmt.Errorf("ensure sample creator: %w", err)
	}

	var result Result
	for _, sample := range sampleFlans {
		exists, err := s.flans.ExistsByName(ctx, sample.name)
		if err != nil {
			return result, fmt.Errorf("lookup flan %q: %w", sample.name, err)
		}
		if exists {
			result.Skipped++
			continue
		}

		input := flansdomain.CreateInput{
			Name:        sample.name,
			Description: sample.description,
			ImageURL:    sample.imageURL,
			Type:        sample.flanType,
		}
		if sample.price != "" {
			input.IsPremium = true
			input.Price = decimal.RequireFromString(sample.price)
		}
		if _, err := s.flans.Create(ctx, owner.ID, input); err != nil {
			return result, fmt.Errorf("create flan %q: %w", sample.name, err)
		}
		result.Created++
	}

	s.log.Info("seed.flans: done", "created", result.Created, "skipped", result.Skipped)
	return result, nil
}

// Creators inserts the sample creator profiles that are not present yet.
func (s *Seeder) Creators(ctx context.Context) (Result, error) {
	var result Result
	for _, sample := range sampleCreators {
		_, created, err := s.creators.EnsureByName(ctx, creatorsdomain.CreateInput{
			Name:               sample.name,
			Type:               sample.kind,
			Bio:                sample.bio,
			ProfileImage:       sample.image,
			IsFeatured:         sample.featured,
			TotalFlans:         sample.totalFlans,
			TotalEarnings:      decimal.RequireFromString(sample.earnings),
			SatisfactionRate:   sample.rate,
			InstagramFollowers: sample.followers,
		})
		if err != nil {
			return result, fmt.Errorf("create creator %q: %w", sample.name, err)
		}
		if created {
			result.Created++
		} else {
			result.Skipped++
		}
	}

	s.log.Info("seed.creators: done", "created", result.Created, "skipped", result.Skipped)
	return result, nil
}
