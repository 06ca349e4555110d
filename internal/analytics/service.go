package analytics

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"go.uber.org/zap"

	"salonboard/internal/domain/model"
	"salonboard/internal/domain/repository"
)

// Repository is the slice of the appointment store the analytics views need.
type Repository interface {
	Query(ctx context.Context, companyID string, filter repository.AppointmentFilter) ([]model.Appointment, error)
}

// Service coordinates analytics query execution with the cache layer. All
// inputs are explicit; nothing is read from ambient session state.
type Service struct {
	repo   Repository
	agg    *Aggregator
	cache  *Cache
	logger *zap.Logger
}

// NewService wires a Repository with the aggregation and cache helpers.
func NewService(repo Repository, cache *Cache, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		agg:    NewAggregator(logger),
		cache:  cache,
		logger: logger.Named("analytics_service"),
	}
}

// FetchRevenueByMonth returns the company's monthly revenue breakdown for the
// year plus the all-time grand total. A store failure returns a zero-filled
// result and a non-nil error so callers can tell it apart from legitimately
// zero revenue.
func (s *Service) FetchRevenueByMonth(ctx context.Context, companyID string, year int) (MonthlyRevenue, error) {
	key, err := s.cache.BuildKey(ctx, companyID, "revenue", strconv.Itoa(year))
	if err != nil {
		return MonthlyRevenue{Year: year}, fmt.Errorf("build revenue cache key: %w", err)
	}
	var out MonthlyRevenue
	err = s.cache.FetchJSON(ctx, key, &out, func(ctx context.Context) (interface{}, error) {
		appointments, err := s.repo.Query(ctx, companyID, repository.AppointmentFilter{
			Status: model.StatusCompleted,
		})
		if err != nil {
			return nil, fmt.Errorf("query completed appointments: %w", err)
		}
		return s.agg.RevenueByMonth(appointments, year), nil
	})
	if err != nil {
		return MonthlyRevenue{Year: year}, err
	}
	return out, nil
}

// FetchSemesterRevenue derives the half-year slice of the monthly breakdown.
func (s *Service) FetchSemesterRevenue(ctx context.Context, companyID string, year, semester int) (SemesterRevenue, error) {
	rev, err := s.FetchRevenueByMonth(ctx, companyID, year)
	if err != nil {
		return SemesterRevenue{}, err
	}
	return SemesterSlice(rev, semester)
}

// FetchTopServices returns the company's services ranked by booking count,
// optionally narrowed to a year and, within a year, a month (0-11).
func (s *Service) FetchTopServices(ctx context.Context, companyID string, filter RankingFilter) ([]ServiceRanking, error) {
	key, err := s.cache.BuildKey(ctx, companyID, "top-services", optToken(filter.Year), optToken(filter.Month))
	if err != nil {
		return nil, fmt.Errorf("build ranking cache key: %w", err)
	}
	var out []ServiceRanking
	err = s.cache.FetchJSON(ctx, key, &out, func(ctx context.Context) (interface{}, error) {
		// Popularity counts every status, so no status filter here.
		appointments, err := s.repo.Query(ctx, companyID, repository.AppointmentFilter{})
		if err != nil {
			return nil, fmt.Errorf("query appointments: %w", err)
		}
		return s.agg.TopServices(appointments, filter), nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// FetchSemesterOptions lists the selectable year/semester pairs, derived from
// the years that actually carry completed revenue. Years are returned newest
// first.
func (s *Service) FetchSemesterOptions(ctx context.Context, companyID string) ([]SemesterOption, error) {
	key, err := s.cache.BuildKey(ctx, companyID, "semester-options")
	if err != nil {
		return nil, fmt.Errorf("build semester options cache key: %w", err)
	}
	var out []SemesterOption
	err = s.cache.FetchJSON(ctx, key, &out, func(ctx context.Context) (interface{}, error) {
		appointments, err := s.repo.Query(ctx, companyID, repository.AppointmentFilter{
			Status: model.StatusCompleted,
		})
		if err != nil {
			return nil, fmt.Errorf("query completed appointments: %w", err)
		}
		seen := map[int]bool{}
		var years []int
		for _, a := range appointments {
			if a.Date.IsZero() || a.Service.Price <= 0 {
				continue
			}
			y := a.Date.Year()
			if !seen[y] {
				seen[y] = true
				years = append(years, y)
			}
		}
		sort.Sort(sort.Reverse(sort.IntSlice(years)))
		return SemesterOptions(years), nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Invalidate drops the company's cached aggregates after a booking write.
func (s *Service) Invalidate(ctx context.Context, companyID string) error {
	return s.cache.Bump(ctx, companyID)
}

func optToken(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}
