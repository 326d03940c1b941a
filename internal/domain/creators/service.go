package creators

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"onlyflans/pkg/logger"
)

type Service struct {
	repo Repository
	log  logger.Logger
}

func NewService(repo Repository, log logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// List degrades to an empty slice when storage fails.
func (s *Service) List(ctx context.Context, filter ListFilter) []Record {
	creators, err := s.repo.List(ctx, filter)
	if err != nil {
		s.log.InternalError("creators.list: query failed", err, "featured_only", filter.FeaturedOnly)
		return []Record{}
	}

	result := make([]Record, 0, len(creators))
	for _, creator := range creators {
		result = append(result, FromModel(creator))
	}
	return result
}

func (s *Service) Get(ctx context.Context, id uint) (Record, error) {
	creator, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Record{}, err
	}
	return FromModel(*creator), nil
}

func (s *Service) Create(ctx context.Context, input CreateInput) (Record, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return Record{}, fmt.Errorf("name is required")
	}
	if !input.Type.Valid() {
		return Record{}, ErrInvalidCreatorType
	}

	creator := FlanCreator{
		Name:               name,
		CreatorType:        input.Type,
		Bio:                strings.TrimSpace(input.Bio),
		ProfileImage:       strings.TrimSpace(input.ProfileImage),
		IsFeatured:         input.IsFeatured,
		TotalFlans:         input.TotalFlans,
		TotalEarnings:      input.TotalEarnings,
		SatisfactionRate:   ClampSatisfaction(input.SatisfactionRate),
		InstagramFollowers: strings.TrimSpace(input.InstagramFollowers),
	}
	if err := s.repo.Create(ctx, &creator); err != nil {
		return Record{}, fmt.Errorf("create creator: %w", err)
	}

	s.log.Info("creators.create: created", "creator_id", creator.ID, "name", creator.Name)
	return FromModel(creator), nil
}

// EnsureByName returns the existing creator with the given name or creates it.
func (s *Service) EnsureByName(ctx context.Context, input CreateInput) (Record, bool, error) {
	existing, err := s.repo.GetByName(ctx, strings.TrimSpace(input.Name))
	if err == nil {
		return FromModel(*existing), false, nil
	}
	if !errors.Is(err, ErrCreatorNotFound) {
		return Record{}, false, err
	}

	created, err := s.Create(ctx, input)
	if err != nil {
		return Record{}, false, err
	}
	return created, true, nil
}
