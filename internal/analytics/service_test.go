package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"salonboard/internal/domain/model"
	"salonboard/internal/domain/repository"
)

type mockRepo struct {
	appointments []model.Appointment
	err          error
	calls        int
	lastFilter   repository.AppointmentFilter
}

func (m *mockRepo) Query(ctx context.Context, companyID string, filter repository.AppointmentFilter) ([]model.Appointment, error) {
	m.calls++
	m.lastFilter = filter
	if m.err != nil {
		return nil, m.err
	}
	return m.appointments, nil
}

func newTestService(t *testing.T, repo Repository) *Service {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewService(repo, NewCache(client, time.Minute), zaptest.NewLogger(t))
}

func TestFetchRevenueByMonthCaches(t *testing.T) {
	repo := &mockRepo{appointments: []model.Appointment{
		completedAppointment("a1", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), 100),
	}}
	svc := newTestService(t, repo)
	ctx := context.Background()

	rev, err := svc.FetchRevenueByMonth(ctx, "c1", 2024)
	require.NoError(t, err)
	assert.Equal(t, 100.0, rev.MonthlyTotals[2])
	assert.Equal(t, model.StatusCompleted, repo.lastFilter.Status,
		"revenue only queries completed appointments")
	assert.Equal(t, 1, repo.calls)

	// Second call is served from the cache.
	rev, err = svc.FetchRevenueByMonth(ctx, "c1", 2024)
	require.NoError(t, err)
	assert.Equal(t, 100.0, rev.MonthlyTotals[2])
	assert.Equal(t, 1, repo.calls)

	// A booking write bumps the version and forces a reload.
	require.NoError(t, svc.Invalidate(ctx, "c1"))
	repo.appointments = append(repo.appointments,
		completedAppointment("a2", time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC), 50))
	rev, err = svc.FetchRevenueByMonth(ctx, "c1", 2024)
	require.NoError(t, err)
	assert.Equal(t, 150.0, rev.MonthlyTotals[2])
	assert.Equal(t, 2, repo.calls)
}

func TestFetchRevenueByMonthUpstreamFailure(t *testing.T) {
	repo := &mockRepo{err: errors.New("store unavailable")}
	svc := newTestService(t, repo)

	rev, err := svc.FetchRevenueByMonth(context.Background(), "c1", 2024)
	require.Error(t, err, "a store failure is distinguishable from zero revenue")
	assert.Equal(t, 2024, rev.Year)
	assert.Zero(t, rev.GrandTotal)
	for _, v := range rev.MonthlyTotals {
		assert.Zero(t, v)
	}
}

func TestFetchRevenueByMonthWithoutCache(t *testing.T) {
	repo := &mockRepo{appointments: []model.Appointment{
		completedAppointment("a1", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), 100),
	}}
	svc := NewService(repo, nil, zaptest.NewLogger(t))

	rev, err := svc.FetchRevenueByMonth(context.Background(), "c1", 2024)
	require.NoError(t, err)
	assert.Equal(t, 100.0, rev.MonthlyTotals[2])

	_, err = svc.FetchRevenueByMonth(context.Background(), "c1", 2024)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.calls, "no cache means every call hits the store")
}

func TestFetchSemesterRevenue(t *testing.T) {
	repo := &mockRepo{appointments: []model.Appointment{
		completedAppointment("a1", time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC), 100),
		completedAppointment("a2", time.Date(2024, 8, 5, 0, 0, 0, 0, time.UTC), 70),
	}}
	svc := newTestService(t, repo)
	ctx := context.Background()

	first, err := svc.FetchSemesterRevenue(ctx, "c1", 2024, 1)
	require.NoError(t, err)
	assert.Equal(t, 100.0, first.Total)

	second, err := svc.FetchSemesterRevenue(ctx, "c1", 2024, 2)
	require.NoError(t, err)
	assert.Equal(t, 70.0, second.Total)

	_, err = svc.FetchSemesterRevenue(ctx, "c1", 2024, 9)
	assert.Error(t, err)
}

func TestFetchTopServicesQueriesEveryStatus(t *testing.T) {
	day := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	repo := &mockRepo{appointments: []model.Appointment{
		booking("Manicure", day, 30, model.StatusCanceled),
		booking("Manicure", day, 30, model.StatusScheduled),
		booking("Haircut", day, 50, model.StatusCompleted),
	}}
	svc := newTestService(t, repo)

	ranked, err := svc.FetchTopServices(context.Background(), "c1", RankingFilter{})
	require.NoError(t, err)
	assert.Empty(t, repo.lastFilter.Status, "popularity ignores status at the query level")
	require.Len(t, ranked, 2)
	assert.Equal(t, "Manicure", ranked[0].ServiceName)
	assert.Equal(t, 2, ranked[0].Count)
}

func TestFetchTopServicesCacheKeyIncludesFilter(t *testing.T) {
	day := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	repo := &mockRepo{appointments: []model.Appointment{
		booking("Haircut", day, 50, model.StatusCompleted),
		booking("Haircut", time.Date(2023, 3, 5, 0, 0, 0, 0, time.UTC), 50, model.StatusCompleted),
	}}
	svc := newTestService(t, repo)
	ctx := context.Background()

	all, err := svc.FetchTopServices(ctx, "c1", RankingFilter{})
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, 2, all[0].Count)

	// Different filter, different cache entry: the filtered result must not
	// be served from the unfiltered one.
	filtered, err := svc.FetchTopServices(ctx, "c1", RankingFilter{Year: intPtr(2024)})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, 1, filtered[0].Count)
}

func TestFetchSemesterOptions(t *testing.T) {
	repo := &mockRepo{appointments: []model.Appointment{
		completedAppointment("a1", time.Date(2023, 2, 5, 0, 0, 0, 0, time.UTC), 100),
		completedAppointment("a2", time.Date(2024, 8, 5, 0, 0, 0, 0, time.UTC), 70),
		completedAppointment("a3", time.Date(2024, 9, 5, 0, 0, 0, 0, time.UTC), 70),
		// Malformed records contribute no selectable year.
		completedAppointment("a4", time.Date(2021, 1, 5, 0, 0, 0, 0, time.UTC), 0),
	}}
	svc := newTestService(t, repo)

	options, err := svc.FetchSemesterOptions(context.Background(), "c1")
	require.NoError(t, err)
	require.Len(t, options, 4, "two semesters per revenue-bearing year")
	assert.Equal(t, 2024, options[0].Year)
	assert.Equal(t, 1, options[0].Semester)
	assert.Equal(t, 2024, options[1].Year)
	assert.Equal(t, 2, options[1].Semester)
	assert.Equal(t, 2023, options[2].Year)
}
