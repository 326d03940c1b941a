package flans

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"onlyflans/pkg/logger"
)

const (
	featuredActivityLimit = 3
	defaultPopularType    = FlanTypeVanilla
)

type Service struct {
	repo Repository
	log  logger.Logger
	now  func() time.Time
}

func NewService(repo Repository, log logger.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
		now:  time.Now,
	}
}

// List returns flans newest first. Storage errors degrade to an empty slice.
func (s *Service) List(ctx context.Context, filter ListFilter) []Record {
	flans, err := s.repo.List(ctx, filter)
	if err != nil {
		s.log.InternalError("flans.list: query failed", err, "flan_type", filter.Type, "query", filter.Query)
		return []Record{}
	}
	return toRecords(flans)
}

func (s *Service) ListByType(ctx context.Context, flanType FlanType) []Record {
	return s.List(ctx, ListFilter{Type: flanType})
}

func (s *Service) ListPremium(ctx context.Context) []Record {
	premium := true
	return s.List(ctx, ListFilter{Premium: &premium})
}

func (s *Service) GetByID(ctx context.Context, id uint) (Record, error) {
	flan, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Record{}, err
	}
	return FromModel(*flan), nil
}

// Paginate returns one page of flans newest first. Out of range requests yield an
// empty page rather than an error.
func (s *Service) Paginate(ctx context.Context, page, pageSize int) PageResult {
	return s.PaginateFiltered(ctx, ListFilter{}, page, pageSize)
}

// PaginateFiltered is Paginate restricted by the type, premium and search fields
// of filter. Limit and Offset in filter are ignored.
func (s *Service) PaginateFiltered(ctx context.Context, filter ListFilter, page, pageSize int) PageResult {
	filter.Limit, filter.Offset = 0, 0
	result := PageResult{
		Data:     []Record{},
		Page:     page,
		PageSize: pageSize,
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		s.log.InternalError("flans.paginate: count failed", err, "page", page, "page_size", pageSize)
		return result
	}
	result.TotalCount = total
	result.TotalPages = totalPages(total, pageSize)

	if pageSize <= 0 || page < 1 || page > result.TotalPages {
		return result
	}

	filter.Limit = pageSize
	filter.Offset = (page - 1) * pageSize
	flans, err := s.repo.List(ctx, filter)
	if err != nil {
		s.log.InternalError("flans.paginate: list failed", err, "page", page, "page_size", pageSize)
		return result
	}
	result.Data = toRecords(flans)
	return result
}

// Create validates input and persists exactly one flan on success. Validation
// failures are returned as ValidationErrors and nothing is written.
func (s *Service) Create(ctx context.Context, creatorID uint, input CreateInput) (Record, error) {
	input.Price = input.Price.Round(2)
	if errs := Validate(input); len(errs) > 0 {
		return Record{}, errs
	}

	flan := Flan{
		Name:              input.Name,
		Description:       input.Description,
		ImageURL:          strings.TrimSpace(input.ImageURL),
		FlanType:          input.Type,
		IsPremium:         input.IsPremium,
		Price:             NormalizePrice(input.IsPremium, input.Price),
		CreatorID:         creatorID,
		FeaturedCreatorID: input.FeaturedCreatorID,
	}
	if err := s.repo.Create(ctx, &flan); err != nil {
		s.log.InternalError("flans.create: insert failed", err, "name", input.Name, "creator_id", creatorID)
		return Record{}, fmt.Errorf("create flan: %w", err)
	}

	s.log.Info("flans.create: created", "flan_id", flan.ID, "name", flan.Name)
	return FromModel(flan), nil
}

// RecentActivity aggregates the flans created at or after since.
func (s *Service) RecentActivity(ctx context.Context, since time.Time) (Activity, error) {
	activity := Activity{Since: since, MostPopularType: defaultPopularType}

	counts, err := s.repo.CountTypesSince(ctx, since)
	if err != nil {
		return activity, fmt.Errorf("count types: %w", err)
	}
	for _, row := range counts {
		activity.NewCount += row.Count
	}
	if popular, ok := MostPopularType(counts); ok {
		activity.MostPopularType = popular
	}

	premium := true
	activity.PremiumCount, err = s.repo.Count(ctx, ListFilter{CreatedSince: &since, Premium: &premium})
	if err != nil {
		return activity, fmt.Errorf("count premium: %w", err)
	}

	featured, err := s.repo.List(ctx, ListFilter{CreatedSince: &since, Limit: featuredActivityLimit})
	if err != nil {
		return activity, fmt.Errorf("list featured: %w", err)
	}
	activity.Featured = toRecords(featured)

	return activity, nil
}

// RecentActivityDays is RecentActivity over the trailing number of days.
func (s *Service) RecentActivityDays(ctx context.Context, days int) (Activity, error) {
	return s.RecentActivity(ctx, s.now().UTC().AddDate(0, 0, -days))
}

// MostPopularType picks the type with the highest count. Ties go to the
// alphabetically smallest type value so the result does not depend on the
// order the database returned the groups in.
func MostPopularType(counts []TypeCount) (FlanType, bool) {
	if len(counts) == 0 {
		return "", false
	}

	sorted := make([]TypeCount, len(counts))
	copy(sorted, counts)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Count != sorted[j].Count {
			return sorted[i].Count > sorted[j].Count
		}
		return sorted[i].FlanType < sorted[j].FlanType
	})
	if sorted[0].Count == 0 {
		return "", false
	}
	return sorted[0].FlanType, true
}

func (s *Service) ExistsByName(ctx context.Context, name string) (bool, error) {
	return s.repo.ExistsByName(ctx, name)
}

func totalPages(total int64, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}

func toRecords(flans []Flan) []Record {
	result := make([]Record, 0, len(flans))
	for _, flan := range flans {
		result = append(result, FromModel(flan))
	}
	return result
}
