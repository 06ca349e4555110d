package analytics

import (
	"fmt"

	"go.uber.org/zap"

	"salonboard/internal/domain/model"
)

// MonthlyRevenue is the revenue chart view model. MonthlyTotals holds the
// twelve month buckets of the requested year; GrandTotal accumulates every
// completed appointment regardless of year. The two metrics intentionally
// differ in scope and both are preserved.
type MonthlyRevenue struct {
	Year          int         `json:"year"`
	MonthlyTotals [12]float64 `json:"monthlyTotals"`
	GrandTotal    float64     `json:"grandTotal"`
}

// SemesterRevenue is the six-month slice of a MonthlyRevenue.
type SemesterRevenue struct {
	Year     int       `json:"year"`
	Semester int       `json:"semester"`
	Totals   []float64 `json:"totals"`
	Total    float64   `json:"total"`
}

// SemesterOption labels one selectable half-year.
type SemesterOption struct {
	Label    string `json:"label"`
	Year     int    `json:"year"`
	Semester int    `json:"semester"`
}

// Aggregator computes revenue and popularity view models from an
// already-fetched appointment snapshot. Aggregation is deterministic and
// fail-soft: malformed records are skipped and logged, never abort a batch.
type Aggregator struct {
	logger *zap.Logger
}

// NewAggregator constructs an Aggregator.
func NewAggregator(logger *zap.Logger) *Aggregator {
	return &Aggregator{logger: logger.Named("analytics")}
}

// RevenueByMonth buckets completed appointments into the twelve months of
// year and accumulates the all-time grand total. A missing price or date
// contributes zero; non-completed appointments never count.
func (a *Aggregator) RevenueByMonth(appointments []model.Appointment, year int) MonthlyRevenue {
	out := MonthlyRevenue{Year: year}
	for _, appt := range appointments {
		if appt.Status != model.StatusCompleted {
			continue
		}
		if appt.Service.Price <= 0 || appt.Date.IsZero() {
			a.logger.Warn("skipping appointment without usable price or date",
				zap.String("appointment_id", appt.ID),
				zap.Float64("price", appt.Service.Price))
			continue
		}
		// The grand total is all-time; only the monthly breakdown is scoped
		// to the requested year.
		out.GrandTotal += appt.Service.Price
		if appt.Date.Year() == year {
			out.MonthlyTotals[int(appt.Date.Month())-1] += appt.Service.Price
		}
	}
	return out
}

// SemesterSlice derives the half-year view from a full monthly breakdown.
// Semester 1 covers January through June, semester 2 July through December.
func SemesterSlice(rev MonthlyRevenue, semester int) (SemesterRevenue, error) {
	if semester != 1 && semester != 2 {
		return SemesterRevenue{}, fmt.Errorf("semester must be 1 or 2, got %d", semester)
	}
	start := 0
	if semester == 2 {
		start = 6
	}
	out := SemesterRevenue{Year: rev.Year, Semester: semester, Totals: make([]float64, 6)}
	for i, v := range rev.MonthlyTotals[start : start+6] {
		out.Totals[i] = v
		out.Total += v
	}
	return out, nil
}

// SemesterOptions enumerates the selectable half-years for the given years,
// preserving input order.
func SemesterOptions(years []int) []SemesterOption {
	opts := make([]SemesterOption, 0, len(years)*2)
	for _, y := range years {
		for _, s := range []int{1, 2} {
			opts = append(opts, SemesterOption{
				Label:    fmt.Sprintf("%d-%d", y, s),
				Year:     y,
				Semester: s,
			})
		}
	}
	return opts
}
