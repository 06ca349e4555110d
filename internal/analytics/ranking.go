package analytics

import (
	"sort"

	"salonboard/internal/domain/model"
)

// ServiceRanking is one entry of the service popularity list.
type ServiceRanking struct {
	ServiceName     string                          `json:"serviceName"`
	Count           int                             `json:"count"`
	RevenueSum      float64                         `json:"revenueSum"`
	StatusBreakdown map[model.AppointmentStatus]int `json:"statusBreakdown"`
}

// RankingFilter narrows the popularity window. Month is 0-11 and is applied
// only when Year is also set, mirroring the dashboard filter behaviour.
type RankingFilter struct {
	Year  *int
	Month *int
}

// TopServices groups appointments by snapshot service name and ranks them by
// booking count, descending. Every status counts: popularity tracks demand,
// not realized income, so canceled and scheduled bookings are included.
// Equal counts keep encounter order; no secondary tie-break key is defined.
func (a *Aggregator) TopServices(appointments []model.Appointment, filter RankingFilter) []ServiceRanking {
	var order []string
	groups := make(map[string]*ServiceRanking)

	for _, appt := range appointments {
		if appt.Service.Name == "" {
			continue
		}
		if filter.Year != nil {
			if appt.Date.IsZero() || appt.Date.Year() != *filter.Year {
				continue
			}
			if filter.Month != nil && int(appt.Date.Month())-1 != *filter.Month {
				continue
			}
		}
		entry, ok := groups[appt.Service.Name]
		if !ok {
			entry = &ServiceRanking{
				ServiceName:     appt.Service.Name,
				StatusBreakdown: make(map[model.AppointmentStatus]int),
			}
			groups[appt.Service.Name] = entry
			order = append(order, appt.Service.Name)
		}
		entry.Count++
		entry.RevenueSum += appt.Service.Price
		entry.StatusBreakdown[appt.Status]++
	}

	ranked := make([]ServiceRanking, 0, len(order))
	for _, name := range order {
		ranked = append(ranked, *groups[name])
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	return ranked
}
